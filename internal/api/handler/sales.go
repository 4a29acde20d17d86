package handler

import (
	"net/http"

	"github.com/pauloenterprise/sales-dashboard-api/internal/usecases/analyzing"
)

// GetSales lista as vendas visíveis da janela, já normalizadas na ingestão.
func GetSales(service *analyzing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, ok := windowFromRequest(w, r)
		if !ok {
			return
		}

		sales := service.SalesByWindow(window)

		writeJSON(w, map[string]any{
			"window": window,
			"total":  len(sales),
			"sales":  sales,
		})
	}
}
