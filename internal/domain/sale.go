// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Sale representa uma transação individual vinda da API upstream. O valor
// (Amount) é sempre mantido em centavos; a formatação em reais acontece
// apenas na camada de apresentação.
type Sale struct {
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
	Visible      bool      `json:"visible"`
}

// VisibleSales filtra vendas com Visible == false. Todo cálculo de métricas
// parte deste filtro antes de qualquer outro.
func VisibleSales(sales []Sale) []Sale {
	visible := make([]Sale, 0, len(sales))
	for _, sale := range sales {
		if sale.Visible {
			visible = append(visible, sale)
		}
	}
	return visible
}

// ApprovedSales filtra apenas as vendas com pagamento confirmado.
func ApprovedSales(sales []Sale) []Sale {
	approved := make([]Sale, 0, len(sales))
	for _, sale := range sales {
		if sale.Approved {
			approved = append(approved, sale)
		}
	}
	return approved
}
