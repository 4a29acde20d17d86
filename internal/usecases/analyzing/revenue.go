// Package analyzing deriva as métricas do painel a partir de snapshots dos
// datasets em memória. Todas as funções são puras: recebem fatias de vendas já
// filtradas por visibilidade e devolvem estruturas novas, sem tocar nos stores.
package analyzing

import (
	"time"

	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
	"github.com/pauloenterprise/sales-dashboard-api/pkg/utils"
)

// commissionRate é a fração da receita aprovada dos clientes estimada como
// comissão do operador.
const commissionRate = 0.10

// monthlyGoalFloor é o piso da meta mensal, em centavos (R$ 10.000,00).
const monthlyGoalFloor = int64(1_000_000)

// GrowthRate calcula a variação percentual entre dois valores de receita.
// Sem base de comparação não há crescimento definível: 0→0 vale 0 e
// qualquer receita partindo do zero vale +100.
func GrowthRate(current, previous int64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}

	return utils.RoundWithTwoDecimalPlace(float64(current-previous) / float64(previous) * 100)
}

// ConversionRate é a fração aprovada das vendas visíveis, em porcentagem.
func ConversionRate(sales []domain.Sale) float64 {
	if len(sales) == 0 {
		return 0
	}

	approved := 0
	for _, sale := range sales {
		if sale.Approved {
			approved++
		}
	}

	return utils.RoundWithTwoDecimalPlace(float64(approved) / float64(len(sales)) * 100)
}

// approvedRevenue soma o valor das vendas aprovadas.
func approvedRevenue(sales []domain.Sale) (revenue int64, count int) {
	for _, sale := range sales {
		if sale.Approved {
			revenue += sale.Amount
			count++
		}
	}
	return revenue, count
}

func avgTicket(revenue int64, count int) int64 {
	if count == 0 {
		return 0
	}
	return revenue / int64(count)
}

// sameMonth compara ano e mês de dois instantes.
func sameMonth(t, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}

// monthlyApprovedRevenue devolve a receita aprovada do mês de ref e do mês
// anterior, opcionalmente restrita a um roteamento (toClient).
func monthlyApprovedRevenue(sales []domain.Sale, ref time.Time, toClient *bool) (current, previous int64) {
	lastMonth := ref.AddDate(0, -1, 0)

	for _, sale := range sales {
		if !sale.Approved {
			continue
		}
		if toClient != nil && sale.ToClient != *toClient {
			continue
		}

		switch {
		case sameMonth(sale.CreatedAt, ref):
			current += sale.Amount
		case sameMonth(sale.CreatedAt, lastMonth):
			previous += sale.Amount
		}
	}

	return current, previous
}

// BuildRevenueSummary particiona a receita aprovada da janela entre operador e
// clientes. O crescimento é sempre mês corrente contra mês anterior, calculado
// sobre allSales para não depender da janela escolhida.
func BuildRevenueSummary(windowSales, allSales []domain.Sale, now time.Time) *domain.RevenueSummary {
	summary := &domain.RevenueSummary{}

	for _, sale := range windowSales {
		if !sale.Approved {
			continue
		}

		if sale.ToClient {
			summary.ClientRevenue += sale.Amount
			summary.ClientSalesCount++
		} else {
			summary.AdminRevenue += sale.Amount
			summary.AdminSalesCount++
		}
	}

	summary.TotalRevenue = summary.AdminRevenue + summary.ClientRevenue
	summary.CommissionEstimate = int64(float64(summary.ClientRevenue) * commissionRate)
	summary.AdminAvgTicket = avgTicket(summary.AdminRevenue, summary.AdminSalesCount)
	summary.ClientAvgTicket = avgTicket(summary.ClientRevenue, summary.ClientSalesCount)

	toAdmin, toClient := false, true
	adminCurrent, adminPrevious := monthlyApprovedRevenue(allSales, now, &toAdmin)
	clientCurrent, clientPrevious := monthlyApprovedRevenue(allSales, now, &toClient)
	summary.AdminGrowth = GrowthRate(adminCurrent, adminPrevious)
	summary.ClientGrowth = GrowthRate(clientCurrent, clientPrevious)

	return summary
}

// MonthlyGoal projeta a meta do mês: 1,5× a receita do mês anterior, ou 1,2× a
// do mês corrente quando não há histórico, nunca abaixo do piso.
func MonthlyGoal(currentMonth, lastMonth int64) int64 {
	var goal int64
	if lastMonth > 0 {
		goal = int64(float64(lastMonth) * 1.5)
	} else {
		goal = int64(float64(currentMonth) * 1.2)
	}

	if goal < monthlyGoalFloor {
		goal = monthlyGoalFloor
	}
	return goal
}

// BuildPerformanceSummary monta o cartão de performance a partir de todas as
// vendas visíveis. Janelas internas fixas: hoje, últimos 7 dias e mês corrente.
func BuildPerformanceSummary(allSales []domain.Sale, now time.Time) *domain.PerformanceSummary {
	summary := &domain.PerformanceSummary{}

	todaySales := domain.FilterSalesByWindow(allSales, domain.WindowToday, now)
	summary.TodayRevenue, summary.TodaySalesCount = approvedRevenue(todaySales)

	weekSales := domain.FilterSalesByWindow(allSales, domain.Window7Days, now)
	summary.WeekRevenue, summary.WeekSalesCount = approvedRevenue(weekSales)

	currentMonth, lastMonth := monthlyApprovedRevenue(allSales, now, nil)
	summary.MonthRevenue = currentMonth
	for _, sale := range allSales {
		if sale.Approved && sameMonth(sale.CreatedAt, now) {
			summary.MonthSalesCount++
		}
	}

	summary.MonthlyGrowth = GrowthRate(currentMonth, lastMonth)
	summary.ConversionRate = ConversionRate(allSales)
	summary.BestWeekday, summary.BestWeekdayRevenue = bestWeekday(allSales)

	summary.MonthlyGoal = MonthlyGoal(currentMonth, lastMonth)
	if summary.MonthlyGoal > 0 {
		summary.GoalProgress = utils.RoundWithTwoDecimalPlace(
			float64(currentMonth) / float64(summary.MonthlyGoal) * 100)
	}

	summary.AvgDailyRevenue = currentMonth / int64(now.Day())

	return summary
}

// weekdayNames traduz o dia da semana para o rótulo exibido no painel.
var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
}

// bestWeekday encontra o dia da semana com maior receita aprovada acumulada.
// Empate resolve pela ordem Domingo→Sábado para manter o resultado estável.
func bestWeekday(sales []domain.Sale) (string, int64) {
	var byWeekday [7]int64
	for _, sale := range sales {
		if sale.Approved {
			byWeekday[sale.CreatedAt.Weekday()] += sale.Amount
		}
	}

	best := time.Sunday
	for day := time.Monday; day <= time.Saturday; day++ {
		if byWeekday[day] > byWeekday[best] {
			best = day
		}
	}

	if byWeekday[best] == 0 {
		return "", 0
	}
	return weekdayNames[best], byWeekday[best]
}
