package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeWindow(t *testing.T) {
	window, err := ParseTimeWindow("")
	require.NoError(t, err)
	assert.Equal(t, WindowAll, window, "janela ausente equivale a all")

	window, err = ParseTimeWindow("7days")
	require.NoError(t, err)
	assert.Equal(t, Window7Days, window)

	_, err = ParseTimeWindow("ontem")
	assert.Error(t, err)
}

func TestWindowContains_CalendarDaySemantics(t *testing.T) {
	now := time.Date(2025, 6, 12, 1, 0, 0, 0, time.UTC) // 01h da manhã

	lateYesterday := time.Date(2025, 6, 11, 23, 59, 0, 0, time.UTC)
	earlierToday := time.Date(2025, 6, 12, 0, 30, 0, 0, time.UTC)

	// "hoje" é o dia de calendário, não as últimas 24h.
	assert.False(t, WindowToday.Contains(lateYesterday, now))
	assert.True(t, WindowToday.Contains(earlierToday, now))

	// 7 dias contam a partir do início do dia de calendário limite.
	startOfBoundaryDay := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	assert.True(t, Window7Days.Contains(startOfBoundaryDay, now))
	assert.False(t, Window7Days.Contains(startOfBoundaryDay.Add(-time.Minute), now))

	assert.True(t, WindowAll.Contains(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), now))
}

func TestFilterSalesByWindow(t *testing.T) {
	now := time.Date(2025, 6, 12, 12, 0, 0, 0, time.UTC)

	sales := []Sale{
		{ID: "hoje", CreatedAt: now.Add(-time.Hour)},
		{ID: "semana", CreatedAt: now.AddDate(0, 0, -3)},
		{ID: "antiga", CreatedAt: now.AddDate(0, -2, 0)},
	}

	filtered := FilterSalesByWindow(sales, WindowToday, now)
	require.Len(t, filtered, 1)
	assert.Equal(t, "hoje", filtered[0].ID)

	filtered = FilterSalesByWindow(sales, Window7Days, now)
	assert.Len(t, filtered, 2)

	assert.Len(t, FilterSalesByWindow(sales, WindowAll, now), 3)
}
