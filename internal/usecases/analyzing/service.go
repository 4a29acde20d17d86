package analyzing

import (
	"time"

	"github.com/pauloenterprise/sales-dashboard-api/internal/domain"
	"github.com/pauloenterprise/sales-dashboard-api/internal/usecases/loading"
)

// SalesSnapshotter expõe o snapshot corrente do dataset de vendas.
type SalesSnapshotter interface {
	Snapshot() loading.Snapshot[domain.Sale]
}

// ClientsSnapshotter expõe o snapshot corrente do dataset de clientes.
type ClientsSnapshotter interface {
	Snapshot() loading.Snapshot[domain.Client]
}

// Service calcula as métricas do painel sob demanda, a partir dos snapshots
// dos dois stores. Não guarda cache: com os datasets em memória o custo de
// recomputar é aceitável e a resposta reflete sempre o estado corrente da
// carga progressiva, mesmo parcial.
type Service struct {
	sales   SalesSnapshotter
	clients ClientsSnapshotter
	useTax  UseTaxResolver
	now     func() time.Time
}

func NewService(sales SalesSnapshotter, clients ClientsSnapshotter, useTax UseTaxResolver) *Service {
	return &Service{
		sales:   sales,
		clients: clients,
		useTax:  useTax,
		now:     time.Now,
	}
}

// visibleSales devolve as vendas visíveis do snapshot corrente, e também o
// subconjunto dentro da janela.
func (s *Service) visibleSales(window domain.TimeWindow, now time.Time) (all, windowed []domain.Sale) {
	all = domain.VisibleSales(s.sales.Snapshot().Data)
	windowed = domain.FilterSalesByWindow(all, window, now)
	return all, windowed
}

// DashboardSummary monta a resposta combinada do painel principal.
func (s *Service) DashboardSummary(window domain.TimeWindow) *domain.DashboardSummary {
	now := s.now()
	all, windowed := s.visibleSales(window, now)

	return &domain.DashboardSummary{
		Window:      window,
		Revenue:     BuildRevenueSummary(windowed, all, now),
		Performance: BuildPerformanceSummary(all, now),
		GeneratedAt: now,
	}
}

// CategoryBreakdown agrega a janela por categoria de produto.
func (s *Service) CategoryBreakdown(window domain.TimeWindow) []domain.CategorySummary {
	now := s.now()
	all, windowed := s.visibleSales(window, now)
	return CategoryBreakdown(windowed, all, now)
}

// ClientRanking ordena os clientes por receita aprovada na janela.
func (s *Service) ClientRanking(window domain.TimeWindow, limit int) []domain.ClientRankingItem {
	now := s.now()
	_, windowed := s.visibleSales(window, now)
	return ClientRanking(windowed, s.clients.Snapshot().Data, limit, s.useTax)
}

// OfferRanking ordena as ofertas por receita na janela.
func (s *Service) OfferRanking(window domain.TimeWindow, limit int) []domain.OfferRankingItem {
	now := s.now()
	_, windowed := s.visibleSales(window, now)
	return OfferRanking(windowed, s.clients.Snapshot().Data, limit)
}

// RevenueRollup produz a série de receita aprovada na granularidade pedida.
func (s *Service) RevenueRollup(granularity Granularity, window domain.TimeWindow) []domain.RevenueBucket {
	now := s.now()
	_, windowed := s.visibleSales(window, now)
	return RevenueRollup(windowed, granularity)
}

// SalesByWindow lista as vendas visíveis da janela, já normalizadas na
// ingestão.
func (s *Service) SalesByWindow(window domain.TimeWindow) []domain.Sale {
	now := s.now()
	_, windowed := s.visibleSales(window, now)
	return windowed
}

// ClientGroups devolve a visão agrupada de clientes com a flag useTax efetiva.
func (s *Service) ClientGroups() []domain.ClientGroup {
	return GroupClients(s.clients.Snapshot().Data, s.useTax)
}
