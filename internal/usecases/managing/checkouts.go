package managing

import (
	"context"

	"github.com/pauloenterprise/sales-dashboard-api/infrastructure/integrator/upstream/upstreamclient"
	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
)

// CheckoutService encapsula a listagem e a atualização dos checkouts. Ao
// contrário do useTax não há atualização otimista: o handler espera a resposta
// do upstream antes de confirmar ao painel.
type CheckoutService struct {
	client upstreamclient.Client
}

func NewCheckoutService(client upstreamclient.Client) *CheckoutService {
	return &CheckoutService{client: client}
}

// List busca as configurações de checkout direto do upstream.
func (s *CheckoutService) List(ctx context.Context) ([]domain.Checkout, error) {
	return s.client.GetCheckouts(ctx)
}

// Update troca o link myCheckout do checkout da oferta informada.
func (s *CheckoutService) Update(ctx context.Context, myCheckout, offer string) bool {
	return s.client.UpdateCheckout(ctx, myCheckout, offer)
}
