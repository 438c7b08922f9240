package sync

import (
	"context"
	stdsync "sync"
	"time"

	"github.com/kshetty/huntboard/pkg/client"
	"github.com/kshetty/huntboard/pkg/domain"
)

// Snapshot is the result of one dashboard fan-out. Each resource carries
// its own error: a failure in one region never blocks the others, and
// callers swap whole snapshots so a render is never half of one load and
// half of another.
type Snapshot struct {
	Metrics    *domain.Metrics
	MetricsErr error

	Agenda    []domain.AgendaItem
	AgendaErr error

	Pipeline    []domain.Opportunity
	PipelineErr error

	Archived    []domain.Opportunity
	ArchivedErr error

	LoadedAt time.Time
}

// Degraded reports whether any resource in the snapshot failed to load.
func (s Snapshot) Degraded() bool {
	return s.MetricsErr != nil || s.AgendaErr != nil || s.PipelineErr != nil || s.ArchivedErr != nil
}

// Loader fetches dashboard resources from the tracker API.
type Loader struct {
	client *client.Client
}

// NewLoader creates a loader backed by the given API client.
func NewLoader(c *client.Client) *Loader {
	return &Loader{client: c}
}

// Dashboard fans out the four dashboard reads concurrently and joins
// them all; there is no short-circuit on first failure. No retries: a
// failed read surfaces once and is retried only by the next scheduled
// tick or an explicit refresh.
func (l *Loader) Dashboard(ctx context.Context) Snapshot {
	var snap Snapshot
	var wg stdsync.WaitGroup

	wg.Add(4)
	go func() {
		defer wg.Done()
		snap.Metrics, snap.MetricsErr = l.client.Metrics(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Agenda, snap.AgendaErr = l.client.TodaysAgenda(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Pipeline, snap.PipelineErr = l.client.Pipeline(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Archived, snap.ArchivedErr = l.client.ArchivedPipeline(ctx)
	}()
	wg.Wait()

	snap.LoadedAt = time.Now()
	return snap
}
