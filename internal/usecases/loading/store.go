package loading

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Phase descreve o ciclo de vida de um dataset progressivo.
type Phase string

const (
	// PhaseIdle indica que nenhuma carga foi iniciada ou a última foi cancelada.
	PhaseIdle Phase = "idle"
	// PhaseLoadingInitial indica carga em andamento sem nenhuma página recebida.
	PhaseLoadingInitial Phase = "loading_initial"
	// PhaseLoadingMore indica que já há dados parciais e a carga continua.
	PhaseLoadingMore Phase = "loading_more"
	// PhaseComplete indica dataset completo (ou parcial por cap de segurança).
	PhaseComplete Phase = "complete"
	// PhaseErrored indica que a carga terminou sem conseguir nenhum registro.
	PhaseErrored Phase = "errored"
)

// ErrLoadInProgress é devolvido quando se tenta iniciar uma carga com outra
// ainda em andamento para o mesmo recurso.
var ErrLoadInProgress = errors.New("carga já em andamento para este recurso")

// Snapshot é a visão imutável do estado de um dataset em um instante. Data é
// uma cópia: o chamador pode iterar sem segurar lock nenhum.
type Snapshot[T any] struct {
	Resource     string
	Phase        Phase
	Data         []T
	Progress     Progress
	ETA          time.Duration
	Batches      int
	LastError    string
	LastLoadedAt time.Time
}

// DatasetStore mantém o estado compartilhado de um recurso carregado
// progressivamente: os registros acumulados, a fase corrente, o progresso
// estimado e os assinantes interessados em mudanças. É seguro para uso
// concorrente; todos os consumidores leem via Snapshot.
type DatasetStore[T any] struct {
	cfg   Config
	fetch PageFunc[T]

	mu           sync.RWMutex
	phase        Phase
	data         []T
	progress     Progress
	tracker      *ProgressTracker
	generation   uint64
	loading      bool
	cancel       context.CancelFunc
	lastErr      error
	lastLoadedAt time.Time

	subscribers map[int]chan Snapshot[T]
	nextSubID   int

	now func() time.Time
}

func NewDatasetStore[T any](cfg Config, fetch PageFunc[T]) *DatasetStore[T] {
	return &DatasetStore[T]{
		cfg:         cfg,
		fetch:       fetch,
		phase:       PhaseIdle,
		tracker:     NewProgressTracker(),
		subscribers: make(map[int]chan Snapshot[T]),
		now:         time.Now,
	}
}

// Resource informa o nome do recurso que este store mantém.
func (s *DatasetStore[T]) Resource() string {
	return s.cfg.Resource
}

// Start inicia uma carga progressiva em background. Devolve ErrLoadInProgress
// se já houver uma carga ativa; use Refetch para substituí-la.
func (s *DatasetStore[T]) Start(ctx context.Context) error {
	s.mu.Lock()

	if s.loading {
		s.mu.Unlock()
		return ErrLoadInProgress
	}

	s.generation++
	gen := s.generation
	s.loading = true
	s.phase = PhaseLoadingInitial
	s.data = nil
	s.progress = Progress{}
	s.lastErr = nil
	s.tracker.Start(s.now())

	loadCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.notifyLocked()
	s.mu.Unlock()

	go s.run(loadCtx, gen)

	return nil
}

// Refetch descarta a carga corrente (se houver) e começa do zero. Callbacks
// atrasados da carga anterior são ignorados pela guarda de geração.
func (s *DatasetStore[T]) Refetch(ctx context.Context) error {
	s.Cancel()
	return s.Start(ctx)
}

// Cancel interrompe a carga em andamento mantendo os dados parciais já
// recebidos. Páginas que chegarem depois do cancelamento são descartadas.
func (s *DatasetStore[T]) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loading {
		return
	}

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	// Invalida a geração corrente: o goroutine da carga pode demorar a
	// observar o contexto cancelado e ainda tentar aplicar callbacks.
	s.generation++
	s.loading = false
	s.phase = PhaseIdle
	s.notifyLocked()
}

// Snapshot devolve uma cópia do estado corrente.
func (s *DatasetStore[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registra um assinante de mudanças de estado. O canal recebe um
// Snapshot a cada transição; assinantes lentos perdem snapshots intermediários
// em vez de bloquear a carga. A função devolvida cancela a assinatura e fecha
// o canal.
func (s *DatasetStore[T]) Subscribe() (<-chan Snapshot[T], func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++

	ch := make(chan Snapshot[T], 8)
	s.subscribers[id] = ch

	unsubscribe := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(c)
		}
	}

	return ch, unsubscribe
}

func (s *DatasetStore[T]) run(ctx context.Context, gen uint64) {
	loader := NewLoader(s.cfg, s.fetch)

	callbacks := Callbacks[T]{
		OnInitialData: func(page []T) {
			s.apply(gen, func() {
				s.data = append(s.data[:0], page...)
				s.phase = PhaseLoadingMore
				s.tracker.RecordBatch(s.now())
			})
		},
		OnDataUpdate: func(page []T, _ []T) {
			s.apply(gen, func() {
				s.data = append(s.data, page...)
				s.tracker.RecordBatch(s.now())
			})
		},
		OnProgress: func(current, total int) {
			s.apply(gen, func() {
				s.progress = Progress{Current: current, Total: total}
			})
		},
		OnError: func(err error) {
			s.apply(gen, func() {
				s.lastErr = err
			})
		},
		OnComplete: func(all []T) {
			s.apply(gen, func() {
				s.loading = false
				s.cancel = nil
				s.lastLoadedAt = s.now()
				s.progress = Progress{Current: len(all), Total: len(all)}

				if len(all) == 0 && s.lastErr != nil {
					s.phase = PhaseErrored
				} else {
					s.phase = PhaseComplete
				}
			})
		},
	}

	if _, err := loader.LoadAll(ctx, callbacks); err != nil {
		// Só chega aqui por cancelamento de contexto. Se o Cancel veio pelo
		// store a geração já mudou e este apply é descartado; se o contexto
		// pai morreu por fora, registramos o encerramento.
		s.apply(gen, func() {
			s.loading = false
			s.cancel = nil
			s.phase = PhaseIdle
			s.lastErr = err
		})
	}
}

// apply executa uma mutação de estado somente se a geração do callback ainda
// for a corrente. Callbacks de cargas canceladas ou substituídas viram no-ops.
func (s *DatasetStore[T]) apply(gen uint64, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return
	}

	fn()
	s.notifyLocked()
}

func (s *DatasetStore[T]) snapshotLocked() Snapshot[T] {
	data := make([]T, len(s.data))
	copy(data, s.data)

	snap := Snapshot[T]{
		Resource:     s.cfg.Resource,
		Phase:        s.phase,
		Data:         data,
		Progress:     s.progress,
		Batches:      s.tracker.BatchCount(),
		LastLoadedAt: s.lastLoadedAt,
	}

	if s.loading {
		snap.ETA = s.tracker.EstimateRemaining(s.progress.Current, s.progress.Total, s.now())
	}

	if s.lastErr != nil {
		snap.LastError = s.lastErr.Error()
	}

	return snap
}

func (s *DatasetStore[T]) notifyLocked() {
	snap := s.snapshotLocked()
	for _, ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
		}
	}
}
