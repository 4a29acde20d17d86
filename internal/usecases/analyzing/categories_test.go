package analyzing

import (
	"testing"

	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categorySale(product string, amount int64, approved bool) domain.Sale {
	s := sale(amount, approved, true, testNow)
	s.ProductName = product
	return s
}

func TestCategoryBreakdown(t *testing.T) {
	sales := []domain.Sale{
		categorySale("Bracelete Coração", 10_000, true),
		categorySale("Bracelete Estrela", 5_000, false),
		categorySale("eBook Renda Extra", 2_000, true),
		categorySale("Sandália Crocs Bistrô", 8_000, true),
		categorySale("Produto Aleatório", 1_000, true),
	}

	breakdown := CategoryBreakdown(sales, sales, testNow)
	require.Len(t, breakdown, len(domain.AllCategories), "todas as categorias aparecem, mesmo zeradas")

	byCategory := make(map[domain.ProductCategory]domain.CategorySummary)
	for _, summary := range breakdown {
		byCategory[summary.Category] = summary
	}

	pandora := byCategory[domain.CategoryPandora]
	assert.Equal(t, int64(15_000), pandora.TotalRevenue)
	assert.Equal(t, int64(10_000), pandora.ApprovedRevenue)
	assert.Equal(t, int64(5_000), pandora.PendingRevenue)
	assert.Equal(t, 2, pandora.TotalSales)
	assert.Equal(t, 1, pandora.ApprovedSales)
	assert.Equal(t, 100.0, pandora.Growth, "categoria sem mês anterior parte do zero")

	assert.Equal(t, int64(2_000), byCategory[domain.CategoryPixDoMilhao].ApprovedRevenue)
	assert.Equal(t, int64(8_000), byCategory[domain.CategoryCrocs].ApprovedRevenue)
	assert.Equal(t, int64(1_000), byCategory[domain.CategoryOutros].ApprovedRevenue)

	sephora := byCategory[domain.CategorySephora]
	assert.Zero(t, sephora.TotalSales)
	assert.Zero(t, sephora.Growth)
}

func TestCategoryBreakdown_MonthOverMonthGrowth(t *testing.T) {
	lastMonth := testNow.AddDate(0, -1, 0)

	previous := sale(10_000, true, true, lastMonth)
	previous.ProductName = "Bracelete Clássico"
	current := categorySale("Bracelete Novo", 15_000, true)

	all := []domain.Sale{previous, current}
	windowed := []domain.Sale{current}

	breakdown := CategoryBreakdown(windowed, all, testNow)
	assert.Equal(t, 50.0, breakdown[0].Growth, "Pandora: 15.000 contra 10.000")
}

func TestCategoryBreakdown_OrderIsStable(t *testing.T) {
	breakdown := CategoryBreakdown(nil, nil, testNow)
	require.Len(t, breakdown, len(domain.AllCategories))
	for i, category := range domain.AllCategories {
		assert.Equal(t, category, breakdown[i].Category)
	}
}
