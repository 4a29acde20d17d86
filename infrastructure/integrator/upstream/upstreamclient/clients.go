package upstreamclient

import (
	"context"

	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
	"github.com/pkg/errors"
)

// GetClients busca uma página de clientes (com ofertas e vendas aninhadas).
// Mesma política fail-soft do GetSales.
func (c *UpstreamClient) GetClients(ctx context.Context, page, limit int) ([]domain.Client, error) {
	body, err := c.getCollection(ctx, "clients", page, limit)
	if err != nil {
		return []domain.Client{}, err
	}

	var clients []domain.Client
	if err := json.Unmarshal(body, &clients); err != nil {
		return []domain.Client{}, errors.Wrap(err, "erro ao decodificar clientes")
	}

	return clients, nil
}
