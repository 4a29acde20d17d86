package scheduler

import (
	"context"
	"sync"
	"testing"

	"github.com/pauloenterprise/sales-dashboard-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRefetcher struct {
	name string

	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakeRefetcher) Resource() string { return f.name }

func (f *fakeRefetcher) Refetch(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.err
}

func (f *fakeRefetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func refreshConfig(enabled bool) *config.Config {
	return &config.Config{
		DatasetRefresh: config.DatasetRefresh{
			CronSchedule: "*/30 * * * *",
			Enabled:      enabled,
		},
	}
}

func TestRefreshDatasets_CallsAllStores(t *testing.T) {
	sales := &fakeRefetcher{name: "sales"}
	clients := &fakeRefetcher{name: "clients"}

	service := NewDatasetRefreshService(refreshConfig(true), sales, clients)

	require.NoError(t, service.RefreshDatasets(context.Background()))
	assert.Equal(t, 1, sales.callCount())
	assert.Equal(t, 1, clients.callCount())

	startedAt, completedAt := service.LastRefresh()
	assert.False(t, startedAt.IsZero())
	assert.False(t, completedAt.IsZero())
}

func TestRefreshDatasets_ContinuesAfterStoreError(t *testing.T) {
	sales := &fakeRefetcher{name: "sales", err: assert.AnError}
	clients := &fakeRefetcher{name: "clients"}

	service := NewDatasetRefreshService(refreshConfig(true), sales, clients)

	require.NoError(t, service.RefreshDatasets(context.Background()))
	assert.Equal(t, 1, clients.callCount(), "erro em um store não impede os demais")
}

func TestStart_DisabledByConfig(t *testing.T) {
	sales := &fakeRefetcher{name: "sales"}
	service := NewDatasetRefreshService(refreshConfig(false), sales)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, service.Start(ctx))
	assert.Zero(t, sales.callCount(), "cron desabilitada não agenda nada")
}
