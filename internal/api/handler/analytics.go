package handler

import (
	"net/http"
	"strconv"

	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
	"github.com/pauloenterprise/sales-dashboard-api/internal/usecases/analyzing"
	"github.com/pauloenterprise/sales-dashboard-api/pkg/apiErrors"
	"github.com/pauloenterprise/sales-dashboard-api/pkg/utils"
)

// defaultRankingLimit limita os rankings quando o cliente não pede um corte.
const defaultRankingLimit = 10

// windowFromRequest extrai e valida o parâmetro de janela da query string.
func windowFromRequest(w http.ResponseWriter, r *http.Request) (domain.TimeWindow, bool) {
	window, err := domain.ParseTimeWindow(r.URL.Query().Get("window"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
		return "", false
	}
	return window, true
}

func limitFromRequest(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultRankingLimit
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return defaultRankingLimit
	}
	return limit
}

// GetDashboardSummary responde o resumo combinado de receita e performance.
// Os valores monetários principais saem também formatados em reais, prontos
// para os cartões do painel.
func GetDashboardSummary(service *analyzing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, ok := windowFromRequest(w, r)
		if !ok {
			return
		}

		summary := service.DashboardSummary(window)

		writeJSON(w, map[string]any{
			"summary": summary,
			"formatted": map[string]string{
				"total_revenue":       utils.FormatBRL(summary.Revenue.TotalRevenue),
				"admin_revenue":       utils.FormatBRL(summary.Revenue.AdminRevenue),
				"client_revenue":      utils.FormatBRL(summary.Revenue.ClientRevenue),
				"commission_estimate": utils.FormatBRL(summary.Revenue.CommissionEstimate),
				"monthly_goal":        utils.FormatBRL(summary.Performance.MonthlyGoal),
			},
		})
	}
}

// GetCategoryBreakdown responde a agregação por categoria de produto.
func GetCategoryBreakdown(service *analyzing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, ok := windowFromRequest(w, r)
		if !ok {
			return
		}

		writeJSON(w, map[string]any{
			"window":     window,
			"categories": service.CategoryBreakdown(window),
		})
	}
}

// GetClientRanking responde o ranking de clientes por receita aprovada.
func GetClientRanking(service *analyzing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, ok := windowFromRequest(w, r)
		if !ok {
			return
		}

		writeJSON(w, map[string]any{
			"window":  window,
			"ranking": service.ClientRanking(window, limitFromRequest(r)),
		})
	}
}

// GetOfferRanking responde o ranking de ofertas por receita.
func GetOfferRanking(service *analyzing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, ok := windowFromRequest(w, r)
		if !ok {
			return
		}

		writeJSON(w, map[string]any{
			"window":  window,
			"ranking": service.OfferRanking(window, limitFromRequest(r)),
		})
	}
}

// GetRevenueRollup responde a série temporal de receita aprovada.
func GetRevenueRollup(service *analyzing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, ok := windowFromRequest(w, r)
		if !ok {
			return
		}

		granularity, err := analyzing.ParseGranularity(r.URL.Query().Get("granularity"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		writeJSON(w, map[string]any{
			"window":      window,
			"granularity": granularity,
			"buckets":     service.RevenueRollup(granularity, window),
		})
	}
}
