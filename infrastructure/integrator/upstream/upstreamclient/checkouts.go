package upstreamclient

import (
	"context"

	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
	"github.com/pauloenterprise/sales-dashboard-api/pkg/log"
	"github.com/pkg/errors"
)

// GetCheckouts lista as configurações de checkout. O endpoint upstream não é
// paginado.
func (c *UpstreamClient) GetCheckouts(ctx context.Context) ([]domain.Checkout, error) {
	body, err := c.getCollection(ctx, "checkout", 0, 0)
	if err != nil {
		return []domain.Checkout{}, err
	}

	var checkouts []domain.Checkout
	if err := json.Unmarshal(body, &checkouts); err != nil {
		return []domain.Checkout{}, errors.Wrap(err, "erro ao decodificar checkouts")
	}

	return checkouts, nil
}

// UpdateCheckout altera o link myCheckout do checkout identificado pelo nome
// da oferta. Devolve apenas sucesso/falha; o erro de rede é logado aqui e não
// propagado, para manter o fluxo de controle do chamador simples.
func (c *UpstreamClient) UpdateCheckout(ctx context.Context, myCheckout, offer string) bool {
	status, err := c.postJSON(ctx, "checkout/update", map[string]string{
		"checkout": myCheckout,
		"offer":    offer,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("offer", offer).
			Error("upstream: erro ao atualizar checkout")
		return false
	}

	if status < 200 || status > 299 {
		log.ForContext(ctx).WithFields(log.Fields{
			"offer":  offer,
			"status": status,
		}).Error("upstream: atualização de checkout rejeitada")
		return false
	}

	return true
}

// ToggleOfferUseTax grava o novo valor da flag useTax de uma oferta.
func (c *UpstreamClient) ToggleOfferUseTax(ctx context.Context, offerID string, useTax bool) bool {
	status, err := c.postJSON(ctx, "use-tax", map[string]any{
		"offerId": offerID,
		"useTax":  useTax,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("offer_id", offerID).
			Error("upstream: erro ao alternar useTax")
		return false
	}

	if status < 200 || status > 299 {
		log.ForContext(ctx).WithFields(log.Fields{
			"offer_id": offerID,
			"status":   status,
		}).Error("upstream: alternância de useTax rejeitada")
		return false
	}

	return true
}
