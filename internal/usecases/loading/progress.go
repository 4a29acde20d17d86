// Package loading implementa a carga progressiva das coleções remotas:
// busca paginada sequencial, estimativa de progresso e o estado observável
// que os consumidores do painel compartilham.
package loading

import "time"

// Progress é a estimativa corrente/total exibida na barra de progresso.
// Enquanto as páginas vêm cheias o total é só uma estimativa declarada;
// quando a página curta chega, Total colapsa exatamente para Current.
type Progress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// Percentage converte o progresso em porcentagem, 0 quando o total é
// desconhecido.
func (p Progress) Percentage() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Current) / float64(p.Total) * 100
}

// EstimateTotal produz o total estimado de registros a partir de informação
// incompleta. Enquanto a última página veio cheia o total real é incognoscível:
// usamos o dobro do acumulado, com um piso por recurso, para que a barra de
// progresso renderize sem fingir precisão. A página curta encerra a estimativa
// no valor exato.
func EstimateTotal(current, limit, lastPageLen, floor int) int {
	if lastPageLen < limit {
		return current
	}

	estimated := current * 2
	if estimated < floor {
		estimated = floor
	}
	return estimated
}

// ProgressTracker acumula os instantes de chegada de cada lote para estimar
// tempo restante por extrapolação linear. Ruidoso no começo, converge conforme
// chegam lotes; não é uma média móvel.
type ProgressTracker struct {
	startedAt time.Time
	batches   []time.Time
}

func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{}
}

// Start marca o início da carga. Zera o histórico de lotes.
func (t *ProgressTracker) Start(now time.Time) {
	t.startedAt = now
	t.batches = t.batches[:0]
}

// RecordBatch registra a chegada de um lote.
func (t *ProgressTracker) RecordBatch(now time.Time) {
	t.batches = append(t.batches, now)
}

// BatchCount informa quantos lotes já chegaram.
func (t *ProgressTracker) BatchCount() int {
	return len(t.batches)
}

// EstimateRemaining extrapola o tempo restante: taxa = current/decorrido,
// restante = (total-current)/taxa. Devolve 0 quando current é zero ou a carga
// nunca começou (taxa indefinida).
func (t *ProgressTracker) EstimateRemaining(current, total int, now time.Time) time.Duration {
	if current == 0 || t.startedAt.IsZero() {
		return 0
	}

	elapsed := now.Sub(t.startedAt)
	if elapsed <= 0 {
		return 0
	}

	remaining := total - current
	if remaining <= 0 {
		return 0
	}

	rate := float64(current) / elapsed.Seconds()
	return time.Duration(float64(remaining) / rate * float64(time.Second))
}

// AverageBatchInterval calcula o intervalo médio entre lotes, 0 com menos de
// dois lotes registrados.
func (t *ProgressTracker) AverageBatchInterval() time.Duration {
	if len(t.batches) < 2 {
		return 0
	}

	total := t.batches[len(t.batches)-1].Sub(t.batches[0])
	return total / time.Duration(len(t.batches)-1)
}
