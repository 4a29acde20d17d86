package analyzing

import (
	"fmt"
	"sort"

	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
)

// Granularity é o agrupamento temporal das séries de receita.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// ParseGranularity valida o parâmetro de granularidade. Vazio vale daily.
func ParseGranularity(raw string) (Granularity, error) {
	switch Granularity(raw) {
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return Granularity(raw), nil
	case "":
		return GranularityDaily, nil
	}
	return "", fmt.Errorf("granularidade inválida: %q", raw)
}

// RevenueRollup agrega a receita aprovada em buckets de calendário, ordenados
// cronologicamente. Os rótulos são lexicograficamente ordenáveis de propósito:
// dia "2025-06-01", semana "2025-W23", mês "2025-06".
func RevenueRollup(sales []domain.Sale, granularity Granularity) []domain.RevenueBucket {
	byLabel := make(map[string]*domain.RevenueBucket)

	for _, sale := range sales {
		if !sale.Approved {
			continue
		}

		label := bucketLabel(sale, granularity)
		bucket, ok := byLabel[label]
		if !ok {
			bucket = &domain.RevenueBucket{Label: label}
			byLabel[label] = bucket
		}

		bucket.Revenue += sale.Amount
		bucket.SalesCount++
	}

	buckets := make([]domain.RevenueBucket, 0, len(byLabel))
	for _, bucket := range byLabel {
		buckets = append(buckets, *bucket)
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Label < buckets[j].Label
	})

	return buckets
}

func bucketLabel(sale domain.Sale, granularity Granularity) string {
	switch granularity {
	case GranularityWeekly:
		year, week := sale.CreatedAt.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case GranularityMonthly:
		return sale.CreatedAt.Format("2006-01")
	default:
		return sale.CreatedAt.Format("2006-01-02")
	}
}
