package domain

import "time"

// RevenueSummary particiona a receita aprovada entre operador (ToClient=false)
// e clientes (ToClient=true), dentro da janela ativa. Valores em centavos.
type RevenueSummary struct {
	AdminRevenue       int64   `json:"admin_revenue"`
	ClientRevenue      int64   `json:"client_revenue"`
	TotalRevenue       int64   `json:"total_revenue"`
	CommissionEstimate int64   `json:"commission_estimate"`
	AdminSalesCount    int     `json:"admin_sales_count"`
	ClientSalesCount   int     `json:"client_sales_count"`
	AdminAvgTicket     int64   `json:"admin_avg_ticket"`
	ClientAvgTicket    int64   `json:"client_avg_ticket"`
	AdminGrowth        float64 `json:"admin_growth"`
	ClientGrowth       float64 `json:"client_growth"`
}

// PerformanceSummary agrega os indicadores do cartão de performance: receita
// aprovada de hoje/semana/mês, crescimento mensal, conversão e meta.
type PerformanceSummary struct {
	TodayRevenue       int64   `json:"today_revenue"`
	TodaySalesCount    int     `json:"today_sales_count"`
	WeekRevenue        int64   `json:"week_revenue"`
	WeekSalesCount     int     `json:"week_sales_count"`
	MonthRevenue       int64   `json:"month_revenue"`
	MonthSalesCount    int     `json:"month_sales_count"`
	MonthlyGrowth      float64 `json:"monthly_growth"`
	ConversionRate     float64 `json:"conversion_rate"`
	BestWeekday        string  `json:"best_weekday"`
	BestWeekdayRevenue int64   `json:"best_weekday_revenue"`
	MonthlyGoal        int64   `json:"monthly_goal"`
	GoalProgress       float64 `json:"goal_progress"`
	AvgDailyRevenue    int64   `json:"avg_daily_revenue"`
}

// DashboardSummary é a resposta combinada do painel principal.
type DashboardSummary struct {
	Window      TimeWindow          `json:"window"`
	Revenue     *RevenueSummary     `json:"revenue"`
	Performance *PerformanceSummary `json:"performance"`
	GeneratedAt time.Time           `json:"generated_at"`
}

// CategorySummary agrega receita e contagens de uma categoria de produto.
type CategorySummary struct {
	Category        ProductCategory `json:"category"`
	TotalRevenue    int64           `json:"total_revenue"`
	ApprovedRevenue int64           `json:"approved_revenue"`
	PendingRevenue  int64           `json:"pending_revenue"`
	TotalSales      int             `json:"total_sales"`
	ApprovedSales   int             `json:"approved_sales"`
	PendingSales    int             `json:"pending_sales"`
	AvgTicket       int64           `json:"avg_ticket"`
	Growth          float64         `json:"growth"`
}

// ClientRankingItem é uma posição do ranking de clientes por receita aprovada.
type ClientRankingItem struct {
	Position        int    `json:"position"`
	ClientID        string `json:"client_id"`
	ClientName      string `json:"client_name"`
	ApprovedRevenue int64  `json:"approved_revenue"`
	ApprovedSales   int    `json:"approved_sales"`
	TotalRevenue    int64  `json:"total_revenue"`
	TotalSales      int    `json:"total_sales"`
	AvgTicket       int64  `json:"avg_ticket"`
	ActiveOffers    int    `json:"active_offers"`
	TotalOffers     int    `json:"total_offers"`
	TopOfferName    string `json:"top_offer_name,omitempty"`
	TopOfferRevenue int64  `json:"top_offer_revenue,omitempty"`
}

// OfferRankingItem é uma posição do ranking de ofertas por receita aprovada.
type OfferRankingItem struct {
	Position     int    `json:"position"`
	OfferID      string `json:"offer_id"`
	OfferName    string `json:"offer_name"`
	ClientID     string `json:"client_id"`
	ClientName   string `json:"client_name"`
	TotalRevenue int64  `json:"total_revenue"`
	AdminRevenue int64  `json:"admin_revenue"`
	TotalSales   int    `json:"total_sales"`
	AdminSales   int    `json:"admin_sales"`
}

// RevenueBucket é um ponto das séries de receita por dia/semana/mês.
type RevenueBucket struct {
	Label      string `json:"label"`
	Revenue    int64  `json:"revenue"`
	SalesCount int    `json:"sales_count"`
}

// ClientGroup agrupa clientes cujo nome difere apenas por um sufixo "- N".
// Relação derivada apenas para exibição, nunca persistida.
type ClientGroup struct {
	BaseName     string   `json:"base_name"`
	Clients      []Client `json:"clients"`
	TotalRevenue int64    `json:"total_revenue"`
	TotalSales   int      `json:"total_sales"`
	TotalOffers  int      `json:"total_offers"`
	ActiveOffers int      `json:"active_offers"`
}
