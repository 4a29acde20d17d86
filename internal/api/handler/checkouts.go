package handler

import (
	"net/http"

	"github.com/pauloenterprise/sales-dashboard-api/internal/usecases/managing"
	"github.com/pauloenterprise/sales-dashboard-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type UpdateCheckoutRequest struct {
	MyCheckout string `json:"myCheckout"`
	Offer      string `json:"offer"`
}

// GetCheckouts lista as configurações de checkout direto do upstream.
func GetCheckouts(service *managing.CheckoutService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checkouts, err := service.List(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar checkouts no upstream")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao consultar checkouts", nil)
			return
		}

		writeJSON(w, map[string]any{
			"total":     len(checkouts),
			"checkouts": checkouts,
		})
	}
}

// UpdateCheckout troca o link myCheckout da oferta informada. Sem atualização
// otimista: a resposta só confirma depois do upstream aceitar.
func UpdateCheckout(service *managing.CheckoutService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateCheckoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.MyCheckout == "" || req.Offer == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "myCheckout e offer são obrigatórios", nil)
			return
		}

		if !service.Update(r.Context(), req.MyCheckout, req.Offer) {
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Upstream rejeitou a atualização do checkout", nil)
			return
		}

		writeJSON(w, map[string]bool{"success": true})
	}
}
