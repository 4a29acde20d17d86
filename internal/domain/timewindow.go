package domain

import (
	"fmt"
	"time"
)

// TimeWindow é o filtro de período aplicado às agregações. "today" significa
// o dia de calendário corrente no fuso local, não uma janela móvel de 24h.
type TimeWindow string

const (
	WindowToday  TimeWindow = "today"
	Window7Days  TimeWindow = "7days"
	Window30Days TimeWindow = "30days"
	WindowAll    TimeWindow = "all"
)

// ParseTimeWindow valida o parâmetro de janela vindo da query string. Vazio
// equivale a "all".
func ParseTimeWindow(raw string) (TimeWindow, error) {
	switch TimeWindow(raw) {
	case WindowToday, Window7Days, Window30Days, WindowAll:
		return TimeWindow(raw), nil
	case "":
		return WindowAll, nil
	}
	return "", fmt.Errorf("janela de período inválida: %q", raw)
}

// Contains informa se um instante cai dentro da janela, relativo a now. As
// janelas de 7/30 dias começam no início do dia de calendário correspondente.
func (w TimeWindow) Contains(t time.Time, now time.Time) bool {
	today := truncateToDay(now)

	switch w {
	case WindowToday:
		return truncateToDay(t).Equal(today)
	case Window7Days:
		return !t.Before(today.AddDate(0, 0, -7))
	case Window30Days:
		return !t.Before(today.AddDate(0, 0, -30))
	case WindowAll:
		return true
	}
	return true
}

// FilterSalesByWindow devolve apenas as vendas cujo CreatedAt cai na janela.
func FilterSalesByWindow(sales []Sale, window TimeWindow, now time.Time) []Sale {
	if window == WindowAll || window == "" {
		return sales
	}

	filtered := make([]Sale, 0, len(sales))
	for _, sale := range sales {
		if window.Contains(sale.CreatedAt, now) {
			filtered = append(filtered, sale)
		}
	}
	return filtered
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
