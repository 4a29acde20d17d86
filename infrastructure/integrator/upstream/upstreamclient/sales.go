package upstreamclient

import (
	"context"
	"strings"
	"time"

	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
	"github.com/pauloenterprise/sales-dashboard-api/pkg/log"
	"github.com/pkg/errors"
)

// saleRecord é o formato de uma venda no JSON da API upstream. O campo
// visible chega como bool, string, null ou simplesmente ausente; a coerção
// acontece em normalizeSale.
type saleRecord struct {
	ID           string    `json:"id"`
	GhostID      string    `json:"ghostId"`
	Approved     bool      `json:"approved"`
	ProductName  string    `json:"productName"`
	CustomerName string    `json:"customerName"`
	Amount       int64     `json:"amount"`
	ToClient     bool      `json:"toClient"`
	CreatedAt    time.Time `json:"createdAt"`
	ClientID     string    `json:"clientId"`
	OfferID      string    `json:"offerId"`
	Visible      any       `json:"visible"`
}

// GetSales busca uma página de vendas e aplica as regras de normalização de
// ingestão. Em caso de falha devolve uma página vazia junto com o erro: uma
// página ruim não pode derrubar uma carga progressiva inteira.
func (c *UpstreamClient) GetSales(ctx context.Context, page, limit int) ([]domain.Sale, error) {
	body, err := c.getCollection(ctx, "sales", page, limit)
	if err != nil {
		return []domain.Sale{}, err
	}

	var records []saleRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return []domain.Sale{}, errors.Wrap(err, "erro ao decodificar vendas")
	}

	sales := make([]domain.Sale, 0, len(records))
	for _, record := range records {
		sales = append(sales, normalizeSale(record))
	}

	return sales, nil
}

// normalizeSale aplica as duas regras de ingestão: coerção do campo visible
// e a correção de valor dos produtos BurgerLab.
func normalizeSale(record saleRecord) domain.Sale {
	sale := domain.Sale{
		ID:           record.ID,
		GhostID:      record.GhostID,
		Approved:     record.Approved,
		ProductName:  record.ProductName,
		CustomerName: record.CustomerName,
		Amount:       record.Amount,
		ToClient:     record.ToClient,
		CreatedAt:    record.CreatedAt,
		ClientID:     record.ClientID,
		OfferID:      record.OfferID,
		Visible:      coerceVisible(record.Visible),
	}

	// Correção de dados documentada: vendas BurgerLab destinadas ao cliente
	// chegam com o valor em reais em vez de centavos.
	if sale.ToClient && strings.Contains(strings.ToLower(sale.ProductName), "burgerlab") {
		sale.Amount *= 100
		log.L.WithFields(log.Fields{
			"product": sale.ProductName,
			"amount":  sale.Amount,
		}).Debug("upstream: valor de produto BurgerLab multiplicado por 100")
	}

	return sale
}

// coerceVisible transforma o visible polimórfico do upstream em um bool
// definitivo: ausente/null vira true; a string "false" (qualquer caixa) vira
// false; qualquer outro valor passa como verdadeiro/falso natural.
func coerceVisible(raw any) bool {
	switch value := raw.(type) {
	case nil:
		return true
	case bool:
		return value
	case string:
		return !strings.EqualFold(value, "false")
	default:
		return true
	}
}
