package analyzing

import (
	"testing"
	"time"

	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGranularity(t *testing.T) {
	granularity, err := ParseGranularity("")
	require.NoError(t, err)
	assert.Equal(t, GranularityDaily, granularity)

	granularity, err = ParseGranularity("monthly")
	require.NoError(t, err)
	assert.Equal(t, GranularityMonthly, granularity)

	_, err = ParseGranularity("hourly")
	assert.Error(t, err)
}

func TestRevenueRollup_Daily(t *testing.T) {
	day1 := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	sales := []domain.Sale{
		sale(10_000, true, false, day2),
		sale(5_000, true, false, day1),
		sale(3_000, true, false, day1.Add(8*time.Hour)),
		sale(99_000, false, false, day1), // pendente fica de fora
	}

	buckets := RevenueRollup(sales, GranularityDaily)
	require.Len(t, buckets, 2)

	assert.Equal(t, "2025-06-01", buckets[0].Label, "buckets saem em ordem cronológica")
	assert.Equal(t, int64(8_000), buckets[0].Revenue)
	assert.Equal(t, 2, buckets[0].SalesCount)

	assert.Equal(t, "2025-06-02", buckets[1].Label)
	assert.Equal(t, int64(10_000), buckets[1].Revenue)
}

func TestRevenueRollup_WeeklyAndMonthly(t *testing.T) {
	// 2025-06-01 é domingo: cai na semana ISO 22; 2025-06-02 abre a semana 23.
	sunday := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	july := time.Date(2025, 7, 15, 9, 0, 0, 0, time.UTC)

	sales := []domain.Sale{
		sale(1_000, true, false, sunday),
		sale(2_000, true, false, monday),
		sale(4_000, true, false, july),
	}

	weekly := RevenueRollup(sales, GranularityWeekly)
	require.Len(t, weekly, 3)
	assert.Equal(t, "2025-W22", weekly[0].Label)
	assert.Equal(t, "2025-W23", weekly[1].Label)
	assert.Equal(t, "2025-W29", weekly[2].Label)

	monthly := RevenueRollup(sales, GranularityMonthly)
	require.Len(t, monthly, 2)
	assert.Equal(t, "2025-06", monthly[0].Label)
	assert.Equal(t, int64(3_000), monthly[0].Revenue)
	assert.Equal(t, "2025-07", monthly[1].Label)
}

func TestRevenueRollup_Empty(t *testing.T) {
	assert.Empty(t, RevenueRollup(nil, GranularityDaily))
}
