package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pauloenterprise/sales-dashboard-api/internal/usecases/managing"
	"github.com/pauloenterprise/sales-dashboard-api/pkg/apiErrors"
)

type ToggleUseTaxRequest struct {
	UseTax bool `json:"useTax"`
}

// ToggleOfferUseTax alterna a flag useTax de uma oferta com atualização
// otimista. A resposta informa se o upstream confirmou; em caso de falha o
// overlay já foi revertido e as leituras seguintes refletem o valor antigo.
func ToggleOfferUseTax(service *managing.OfferService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		offerID := params.ByName("id")
		if offerID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da oferta é obrigatório", nil)
			return
		}

		var req ToggleUseTaxRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if !service.ToggleUseTax(r.Context(), offerID, req.UseTax) {
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Upstream rejeitou a alternância de useTax", nil)
			return
		}

		writeJSON(w, map[string]any{
			"success": true,
			"useTax":  req.UseTax,
		})
	}
}
