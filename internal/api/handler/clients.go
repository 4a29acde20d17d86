package handler

import (
	"net/http"

	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
	"github.com/pauloenterprise/sales-dashboard-api/internal/usecases/analyzing"
	"github.com/pauloenterprise/sales-dashboard-api/pkg/utils"
)

// clientView é o cliente na resposta da listagem: o token sai truncado e a
// flag useTax das ofertas já reflete o overlay otimista.
type clientView struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Token     string         `json:"token"`
	Offers    []domain.Offer `json:"offers"`
	SaleCount int            `json:"sale_count"`
}

type clientGroupView struct {
	BaseName     string       `json:"base_name"`
	Clients      []clientView `json:"clients"`
	TotalRevenue int64        `json:"total_revenue"`
	TotalSales   int          `json:"total_sales"`
	TotalOffers  int          `json:"total_offers"`
	ActiveOffers int          `json:"active_offers"`
}

// GetClients lista os clientes agrupados por nome base.
func GetClients(service *analyzing.Service, useTax analyzing.UseTaxResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups := service.ClientGroups()

		views := make([]clientGroupView, 0, len(groups))
		for _, group := range groups {
			view := clientGroupView{
				BaseName:     group.BaseName,
				TotalRevenue: group.TotalRevenue,
				TotalSales:   group.TotalSales,
				TotalOffers:  group.TotalOffers,
				ActiveOffers: group.ActiveOffers,
			}

			for _, client := range group.Clients {
				offers := make([]domain.Offer, len(client.Offers))
				copy(offers, client.Offers)
				if useTax != nil {
					for i := range offers {
						offers[i].UseTax = useTax(offers[i])
					}
				}

				view.Clients = append(view.Clients, clientView{
					ID:        client.ID,
					Name:      client.Name,
					Token:     utils.TruncateToken(client.Token),
					Offers:    offers,
					SaleCount: len(client.Sales),
				})
			}

			views = append(views, view)
		}

		writeJSON(w, map[string]any{
			"total":  len(views),
			"groups": views,
		})
	}
}
