package analyzing

import (
	"testing"

	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseClientName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		base     string
		suffix   int
	}{
		{"sem sufixo", "Loja Alfa", "Loja Alfa", 0},
		{"sufixo simples", "Loja Alfa - 2", "Loja Alfa", 2},
		{"sufixo sem espaços", "Loja Alfa-3", "Loja Alfa", 3},
		{"hífen no meio não é sufixo", "Loja Alfa - Matriz", "Loja Alfa - Matriz", 0},
		{"número no nome não é sufixo", "Loja 24h", "Loja 24h", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, suffix := BaseClientName(tt.input)
			assert.Equal(t, tt.base, base)
			assert.Equal(t, tt.suffix, suffix)
		})
	}
}

func TestGroupClients(t *testing.T) {
	clients := []domain.Client{
		{ID: "c3", Name: "Loja Beta", Offers: []domain.Offer{{ID: "o3", UseTax: true}}},
		{ID: "c2", Name: "Loja Alfa - 2", Sales: []domain.Sale{
			{Amount: 5_000, Approved: true},
			{Amount: 9_000, Approved: false},
		}},
		{ID: "c1", Name: "Loja Alfa", Offers: []domain.Offer{{ID: "o1", UseTax: false}}, Sales: []domain.Sale{
			{Amount: 10_000, Approved: true},
		}},
	}

	groups := GroupClients(clients, nil)
	require.Len(t, groups, 2)

	alfa := groups[0]
	assert.Equal(t, "Loja Alfa", alfa.BaseName, "grupos saem em ordem alfabética")
	require.Len(t, alfa.Clients, 2)
	assert.Equal(t, "c1", alfa.Clients[0].ID, "dentro do grupo, ordem por número de réplica")
	assert.Equal(t, "c2", alfa.Clients[1].ID)
	assert.Equal(t, int64(15_000), alfa.TotalRevenue, "só vendas aprovadas somam")
	assert.Equal(t, 2, alfa.TotalSales)
	assert.Equal(t, 1, alfa.TotalOffers)
	assert.Zero(t, alfa.ActiveOffers)

	beta := groups[1]
	assert.Equal(t, "Loja Beta", beta.BaseName)
	assert.Equal(t, 1, beta.ActiveOffers)
}

func TestGroupClients_UseTaxOverlay(t *testing.T) {
	clients := []domain.Client{
		{ID: "c1", Name: "Loja Alfa", Offers: []domain.Offer{{ID: "o1", UseTax: false}}},
	}

	resolver := func(offer domain.Offer) bool { return true }

	groups := GroupClients(clients, resolver)
	require.Len(t, groups, 1)
	assert.Equal(t, 1, groups[0].ActiveOffers)
}
