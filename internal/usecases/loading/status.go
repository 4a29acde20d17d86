package loading

import "time"

// Status é a visão não genérica do estado de um store, sem o payload de dados.
// É o formato servido pelo endpoint de status e pelo stream de eventos.
type Status struct {
	Resource     string     `json:"resource"`
	Phase        Phase      `json:"phase"`
	Records      int        `json:"records"`
	Progress     Progress   `json:"progress"`
	Percentage   float64    `json:"percentage"`
	ETASeconds   float64    `json:"eta_seconds"`
	Batches      int        `json:"batches"`
	LastError    string     `json:"last_error,omitempty"`
	LastLoadedAt *time.Time `json:"last_loaded_at,omitempty"`
}

func statusFromSnapshot[T any](snap Snapshot[T]) Status {
	status := Status{
		Resource:   snap.Resource,
		Phase:      snap.Phase,
		Records:    len(snap.Data),
		Progress:   snap.Progress,
		Percentage: snap.Progress.Percentage(),
		ETASeconds: snap.ETA.Seconds(),
		Batches:    snap.Batches,
		LastError:  snap.LastError,
	}

	if !snap.LastLoadedAt.IsZero() {
		loadedAt := snap.LastLoadedAt
		status.LastLoadedAt = &loadedAt
	}

	return status
}

// Status devolve a visão de progresso do store, sem os registros.
func (s *DatasetStore[T]) Status() Status {
	return statusFromSnapshot(s.Snapshot())
}

// SubscribeStatus assina as transições de estado no formato de Status. O canal
// fecha quando a função de cancelamento é chamada.
func (s *DatasetStore[T]) SubscribeStatus() (<-chan Status, func()) {
	snapshots, unsubscribe := s.Subscribe()

	out := make(chan Status, 8)
	go func() {
		defer close(out)
		for snap := range snapshots {
			select {
			case out <- statusFromSnapshot(snap):
			default:
			}
		}
	}()

	return out, unsubscribe
}
