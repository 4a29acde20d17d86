package analyzing

import (
	"time"

	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
)

// CategoryBreakdown agrega as vendas da janela por categoria de produto, na
// ordem fixa de exibição. Categorias sem venda na janela aparecem zeradas para
// o painel não esconder linhas. O crescimento por categoria é mês corrente
// contra anterior, sobre allSales.
func CategoryBreakdown(windowSales, allSales []domain.Sale, now time.Time) []domain.CategorySummary {
	byCategory := make(map[domain.ProductCategory]*domain.CategorySummary, len(domain.AllCategories))
	for _, category := range domain.AllCategories {
		byCategory[category] = &domain.CategorySummary{Category: category}
	}

	for _, sale := range windowSales {
		summary := byCategory[domain.CategoryForProduct(sale.ProductName)]

		summary.TotalRevenue += sale.Amount
		summary.TotalSales++
		if sale.Approved {
			summary.ApprovedRevenue += sale.Amount
			summary.ApprovedSales++
		} else {
			summary.PendingRevenue += sale.Amount
			summary.PendingSales++
		}
	}

	currentByCategory := make(map[domain.ProductCategory]int64)
	previousByCategory := make(map[domain.ProductCategory]int64)
	lastMonth := now.AddDate(0, -1, 0)

	for _, sale := range allSales {
		if !sale.Approved {
			continue
		}

		category := domain.CategoryForProduct(sale.ProductName)
		switch {
		case sameMonth(sale.CreatedAt, now):
			currentByCategory[category] += sale.Amount
		case sameMonth(sale.CreatedAt, lastMonth):
			previousByCategory[category] += sale.Amount
		}
	}

	result := make([]domain.CategorySummary, 0, len(domain.AllCategories))
	for _, category := range domain.AllCategories {
		summary := byCategory[category]
		summary.AvgTicket = avgTicket(summary.ApprovedRevenue, summary.ApprovedSales)
		summary.Growth = GrowthRate(currentByCategory[category], previousByCategory[category])
		result = append(result, *summary)
	}

	return result
}
