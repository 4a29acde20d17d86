package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pauloenterprise/sales-dashboard-api/internal/usecases/loading"
	"github.com/pauloenterprise/sales-dashboard-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// Dataset é a visão que os handlers têm de um dataset store, independente do
// tipo de registro que ele carrega.
type Dataset interface {
	Resource() string
	Status() loading.Status
	Refetch(ctx context.Context) error
	SubscribeStatus() (<-chan loading.Status, func())
}

// GetDatasetStatus responde fase, progresso e ETA de cada dataset.
func GetDatasetStatus(datasets []Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses := make([]loading.Status, 0, len(datasets))
		for _, dataset := range datasets {
			statuses = append(statuses, dataset.Status())
		}

		writeJSON(w, map[string]any{"datasets": statuses})
	}
}

// RefetchDataset descarta o dataset do recurso informado e recarrega do zero.
func RefetchDataset(datasets []Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resource := httprouter.ParamsFromContext(r.Context()).ByName("resource")

		var target Dataset
		for _, dataset := range datasets {
			if dataset.Resource() == resource {
				target = dataset
				break
			}
		}

		if target == nil {
			apiErrors.WriteError(w, apiErrors.ErrUnknownResource,
				fmt.Sprintf("Recurso de dataset desconhecido: %q", resource), nil)
			return
		}

		// O refetch roda em background; a resposta confirma só o disparo. O
		// progresso sai pelo endpoint de status e pelo stream de eventos.
		if err := target.Refetch(context.WithoutCancel(r.Context())); err != nil {
			logrus.WithError(err).WithField("resource", resource).Error("Erro ao iniciar refetch")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar refetch", nil)
			return
		}

		w.WriteHeader(http.StatusAccepted)
		writeJSON(w, map[string]any{
			"resource": resource,
			"status":   target.Status(),
		})
	}
}

// StreamDatasetEvents transmite as transições de estado dos datasets via
// Server-Sent Events. Cada evento carrega o Status serializado do recurso que
// mudou; o estado corrente de todos os recursos abre o stream.
func StreamDatasetEvents(datasets []Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Streaming não suportado", nil)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		merged := make(chan loading.Status, 16)
		for _, dataset := range datasets {
			events, unsubscribe := dataset.SubscribeStatus()
			defer unsubscribe()

			go func() {
				for status := range events {
					select {
					case merged <- status:
					default:
					}
				}
			}()
		}

		for _, dataset := range datasets {
			writeSSE(w, dataset.Status())
		}
		flusher.Flush()

		for {
			select {
			case <-r.Context().Done():
				return
			case status := <-merged:
				writeSSE(w, status)
				flusher.Flush()
			}
		}
	}
}

func writeSSE(w http.ResponseWriter, status loading.Status) {
	payload, err := json.Marshal(status)
	if err != nil {
		logrus.WithError(err).Error("Erro ao serializar evento de dataset")
		return
	}

	fmt.Fprintf(w, "event: dataset\ndata: %s\n\n", payload)
}
