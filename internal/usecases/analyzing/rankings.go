package analyzing

import (
	"sort"

	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
)

const (
	unknownClientName = "Cliente Desconhecido"
	unknownOfferName  = "Oferta Desconhecida"
)

// UseTaxResolver resolve o valor efetivo da flag useTax de uma oferta,
// considerando alterações otimistas ainda não confirmadas pelo upstream.
type UseTaxResolver func(offer domain.Offer) bool

// ClientRanking ordena os clientes por receita aprovada na janela, empates
// mantidos na ordem de chegada das vendas. Vendas com clientId desconhecido
// entram agrupadas sob um placeholder em vez de sumir do ranking.
func ClientRanking(sales []domain.Sale, clients []domain.Client, limit int, useTax UseTaxResolver) []domain.ClientRankingItem {
	type clientAgg struct {
		item     domain.ClientRankingItem
		byOffer  map[string]int64
		firstIdx int
	}

	aggs := make(map[string]*clientAgg)
	order := make([]string, 0)

	for idx, sale := range sales {
		agg, ok := aggs[sale.ClientID]
		if !ok {
			agg = &clientAgg{
				item:     domain.ClientRankingItem{ClientID: sale.ClientID},
				byOffer:  make(map[string]int64),
				firstIdx: idx,
			}
			aggs[sale.ClientID] = agg
			order = append(order, sale.ClientID)
		}

		agg.item.TotalRevenue += sale.Amount
		agg.item.TotalSales++
		if sale.Approved {
			agg.item.ApprovedRevenue += sale.Amount
			agg.item.ApprovedSales++
			agg.byOffer[sale.OfferID] += sale.Amount
		}
	}

	clientsByID := make(map[string]domain.Client, len(clients))
	for _, client := range clients {
		clientsByID[client.ID] = client
	}

	items := make([]domain.ClientRankingItem, 0, len(order))
	for _, clientID := range order {
		agg := aggs[clientID]
		item := agg.item
		item.AvgTicket = avgTicket(item.ApprovedRevenue, item.ApprovedSales)

		client, known := clientsByID[clientID]
		if !known {
			item.ClientName = unknownClientName
		} else {
			item.ClientName = client.Name
			item.TotalOffers = len(client.Offers)
			for _, offer := range client.Offers {
				active := offer.UseTax
				if useTax != nil {
					active = useTax(offer)
				}
				if active {
					item.ActiveOffers++
				}
			}
		}

		if offerID, revenue := topEntry(agg.byOffer); revenue > 0 {
			item.TopOfferRevenue = revenue
			item.TopOfferName = unknownOfferName
			if known {
				for _, offer := range client.Offers {
					if offer.ID == offerID {
						item.TopOfferName = offer.Name
						break
					}
				}
			}
		}

		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ApprovedRevenue > items[j].ApprovedRevenue
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	for i := range items {
		items[i].Position = i + 1
	}

	return items
}

// OfferRanking ordena as ofertas por receita total na janela, separando quanto
// dela foi roteada para o operador.
func OfferRanking(sales []domain.Sale, clients []domain.Client, limit int) []domain.OfferRankingItem {
	aggs := make(map[string]*domain.OfferRankingItem)
	order := make([]string, 0)

	for _, sale := range sales {
		if !sale.Approved {
			continue
		}

		item, ok := aggs[sale.OfferID]
		if !ok {
			item = &domain.OfferRankingItem{OfferID: sale.OfferID, ClientID: sale.ClientID}
			aggs[sale.OfferID] = item
			order = append(order, sale.OfferID)
		}

		item.TotalRevenue += sale.Amount
		item.TotalSales++
		if !sale.ToClient {
			item.AdminRevenue += sale.Amount
			item.AdminSales++
		}
	}

	offerNames := make(map[string]string)
	clientNames := make(map[string]string)
	for _, client := range clients {
		clientNames[client.ID] = client.Name
		for _, offer := range client.Offers {
			offerNames[offer.ID] = offer.Name
		}
	}

	items := make([]domain.OfferRankingItem, 0, len(order))
	for _, offerID := range order {
		item := *aggs[offerID]

		item.OfferName = offerNames[offerID]
		if item.OfferName == "" {
			item.OfferName = unknownOfferName
		}
		item.ClientName = clientNames[item.ClientID]
		if item.ClientName == "" {
			item.ClientName = unknownClientName
		}

		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].TotalRevenue > items[j].TotalRevenue
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	for i := range items {
		items[i].Position = i + 1
	}

	return items
}

// topEntry devolve a chave de maior valor do mapa. Empate resolve pela menor
// chave para manter o resultado determinístico.
func topEntry(byKey map[string]int64) (string, int64) {
	var bestKey string
	var bestValue int64

	for key, value := range byKey {
		if value > bestValue || (value == bestValue && bestValue > 0 && key < bestKey) {
			bestKey = key
			bestValue = value
		}
	}

	return bestKey, bestValue
}
