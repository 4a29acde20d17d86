package analyzing

import (
	"testing"
	"time"

	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankingFixture() ([]domain.Sale, []domain.Client) {
	at := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	sales := []domain.Sale{
		{ID: "s1", ClientID: "c1", OfferID: "o1", Amount: 50_000, Approved: true, ToClient: true, CreatedAt: at, Visible: true},
		{ID: "s2", ClientID: "c2", OfferID: "o2", Amount: 30_000, Approved: true, ToClient: true, CreatedAt: at, Visible: true},
		{ID: "s3", ClientID: "c1", OfferID: "o1", Amount: 20_000, Approved: false, ToClient: true, CreatedAt: at, Visible: true},
		{ID: "s4", ClientID: "fantasma", OfferID: "o-fantasma", Amount: 10_000, Approved: true, ToClient: false, CreatedAt: at, Visible: true},
	}

	clients := []domain.Client{
		{ID: "c1", Name: "Loja Alfa", Offers: []domain.Offer{
			{ID: "o1", Name: "Oferta Alfa", UseTax: true, ClientID: "c1"},
			{ID: "o3", Name: "Oferta Alfa 2", UseTax: false, ClientID: "c1"},
		}},
		{ID: "c2", Name: "Loja Beta", Offers: []domain.Offer{
			{ID: "o2", Name: "Oferta Beta", UseTax: false, ClientID: "c2"},
		}},
	}

	return sales, clients
}

func TestClientRanking(t *testing.T) {
	sales, clients := rankingFixture()

	ranking := ClientRanking(sales, clients, 0, nil)
	require.Len(t, ranking, 3)

	assert.Equal(t, 1, ranking[0].Position)
	assert.Equal(t, "Loja Alfa", ranking[0].ClientName)
	assert.Equal(t, int64(50_000), ranking[0].ApprovedRevenue)
	assert.Equal(t, int64(70_000), ranking[0].TotalRevenue, "pendentes contam no total")
	assert.Equal(t, 2, ranking[0].TotalOffers)
	assert.Equal(t, 1, ranking[0].ActiveOffers)
	assert.Equal(t, "Oferta Alfa", ranking[0].TopOfferName)
	assert.Equal(t, int64(50_000), ranking[0].TopOfferRevenue)

	assert.Equal(t, "Loja Beta", ranking[1].ClientName)

	assert.Equal(t, unknownClientName, ranking[2].ClientName, "clientId desconhecido não some do ranking")
	assert.Equal(t, int64(10_000), ranking[2].ApprovedRevenue)
}

func TestClientRanking_Limit(t *testing.T) {
	sales, clients := rankingFixture()

	ranking := ClientRanking(sales, clients, 1, nil)
	require.Len(t, ranking, 1)
	assert.Equal(t, "Loja Alfa", ranking[0].ClientName)
}

func TestClientRanking_StableTies(t *testing.T) {
	at := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	// Três clientes empatados: a ordem de primeira aparição nas vendas decide.
	sales := []domain.Sale{
		{ClientID: "c3", OfferID: "o1", Amount: 100, Approved: true, CreatedAt: at, Visible: true},
		{ClientID: "c1", OfferID: "o2", Amount: 100, Approved: true, CreatedAt: at, Visible: true},
		{ClientID: "c2", OfferID: "o3", Amount: 100, Approved: true, CreatedAt: at, Visible: true},
	}

	first := ClientRanking(sales, nil, 0, nil)
	second := ClientRanking(sales, nil, 0, nil)

	require.Len(t, first, 3)
	assert.Equal(t, "c3", first[0].ClientID)
	assert.Equal(t, "c1", first[1].ClientID)
	assert.Equal(t, "c2", first[2].ClientID)
	assert.Equal(t, first, second, "o mesmo dataset produz sempre o mesmo ranking")
}

func TestClientRanking_OptimisticUseTaxOverlay(t *testing.T) {
	sales, clients := rankingFixture()

	// Overlay simula um toggle otimista ainda não confirmado: o3 passa a ativa.
	resolver := func(offer domain.Offer) bool {
		if offer.ID == "o3" {
			return true
		}
		return offer.UseTax
	}

	ranking := ClientRanking(sales, clients, 0, resolver)
	assert.Equal(t, 2, ranking[0].ActiveOffers)
}

func TestOfferRanking(t *testing.T) {
	sales, clients := rankingFixture()

	ranking := OfferRanking(sales, clients, 0)
	require.Len(t, ranking, 3)

	assert.Equal(t, 1, ranking[0].Position)
	assert.Equal(t, "Oferta Alfa", ranking[0].OfferName)
	assert.Equal(t, "Loja Alfa", ranking[0].ClientName)
	assert.Equal(t, int64(50_000), ranking[0].TotalRevenue)
	assert.Zero(t, ranking[0].AdminRevenue)

	assert.Equal(t, unknownOfferName, ranking[2].OfferName)
	assert.Equal(t, unknownClientName, ranking[2].ClientName)
	assert.Equal(t, int64(10_000), ranking[2].AdminRevenue, "venda roteada ao operador")
}
