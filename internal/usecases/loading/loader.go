package loading

import (
	"context"
	"time"

	"github.com/pauloenterprise/sales-dashboard-api/pkg/log"
	"github.com/pauloenterprise/sales-dashboard-api/pkg/utils"
)

// newLoadID gera o identificador curto que correlaciona nos logs os eventos
// de uma mesma invocação de carga.
func newLoadID() string {
	id, err := utils.GenerateID()
	if err != nil {
		return "unknown"
	}
	return id
}

// PageFunc busca uma página 1-based de um recurso remoto. Deve devolver uma
// página vazia junto com o erro em caso de falha (política fail-soft do
// integrador upstream).
type PageFunc[T any] func(ctx context.Context, page, limit int) ([]T, error)

// Callbacks recebe os eventos de uma carga progressiva. Todos os campos são
// opcionais. OnInitialData dispara no máximo uma vez (primeira página não
// vazia); OnComplete dispara exatamente uma vez quando a carga termina
// naturalmente (página curta ou cap de segurança).
type Callbacks[T any] struct {
	OnInitialData func(page []T)
	OnDataUpdate  func(page []T, all []T)
	OnProgress    func(current, estimatedTotal int)
	OnComplete    func(all []T)
	OnError       func(err error)
}

// Config parametriza uma carga progressiva.
type Config struct {
	Resource   string        // nome do recurso, apenas para logs
	PageLimit  int           // tamanho de página pedido ao upstream
	MaxPages   int           // cap de segurança contra paginação quebrada
	TotalFloor int           // piso da estimativa de total
	PageDelay  time.Duration // pausa fixa entre páginas, a partir da 2ª
}

// Loader executa a carga completa de um recurso paginado, página a página,
// estritamente em sequência: só a resposta de uma página revela se existe a
// próxima. Um Loader é sem estado entre invocações; crie um por carga lógica.
type Loader[T any] struct {
	cfg   Config
	fetch PageFunc[T]
}

func NewLoader[T any](cfg Config, fetch PageFunc[T]) *Loader[T] {
	return &Loader[T]{cfg: cfg, fetch: fetch}
}

// LoadAll busca todas as páginas do recurso acumulando os registros em um
// único slice, emitindo os callbacks conforme cada página chega. Uma página
// com erro conta o contador e segue para a próxima em vez de abortar a carga.
// A página curta (len < limit) encerra; o cap de segurança também encerra,
// tratado como conclusão com dataset parcial. Cancelamento via contexto
// interrompe antes da próxima página e NÃO dispara OnComplete.
func (l *Loader[T]) LoadAll(ctx context.Context, cb Callbacks[T]) ([]T, error) {
	loadID := newLoadID()
	logger := log.L.WithFields(log.Fields{
		"resource": l.cfg.Resource,
		"load_id":  loadID,
	})

	all := make([]T, 0, l.cfg.PageLimit)
	page := 1
	firstPage := true

	for {
		if err := ctx.Err(); err != nil {
			logger.WithField("page", page).Debug("carga progressiva cancelada")
			return all, err
		}

		records, err := l.fetch(ctx, page, l.cfg.PageLimit)
		if err != nil {
			if ctx.Err() != nil {
				return all, ctx.Err()
			}

			logger.WithError(err).WithField("page", page).Warn("falha ao buscar página, seguindo para a próxima")
			if cb.OnError != nil {
				cb.OnError(err)
			}

			page++
			if page > l.cfg.MaxPages {
				break
			}
			continue
		}

		if len(records) == 0 {
			break
		}

		all = append(all, records...)

		if firstPage {
			firstPage = false
			if cb.OnInitialData != nil {
				cb.OnInitialData(records)
			}
		} else if cb.OnDataUpdate != nil {
			cb.OnDataUpdate(records, all)
		}

		if cb.OnProgress != nil {
			cb.OnProgress(len(all), EstimateTotal(len(all), l.cfg.PageLimit, len(records), l.cfg.TotalFloor))
		}

		// Página curta significa última página (heurística herdada: o
		// upstream sempre devolve páginas cheias até a última de verdade).
		if len(records) < l.cfg.PageLimit {
			break
		}

		page++
		if page > l.cfg.MaxPages {
			logger.WithField("max_pages", l.cfg.MaxPages).
				Warn("cap de páginas atingido, encerrando carga com dataset parcial")
			break
		}

		// Pausa fixa para não sobrecarregar o upstream; throttle simples,
		// não é backpressure adaptativo.
		if page > 2 && l.cfg.PageDelay > 0 {
			select {
			case <-time.After(l.cfg.PageDelay):
			case <-ctx.Done():
				return all, ctx.Err()
			}
		}
	}

	logger.WithFields(log.Fields{
		"records": len(all),
		"pages":   page,
	}).Info("carga progressiva concluída")

	if cb.OnComplete != nil {
		cb.OnComplete(all)
	}

	return all, nil
}
