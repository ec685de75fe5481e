package workers

import (
	"github.com/MKhiriev/go-kv-keeper/internal/config"
	"github.com/MKhiriev/go-kv-keeper/internal/logger"
	"github.com/MKhiriev/go-kv-keeper/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers the configured storage needs.
// Backends without a snapshotter get an empty aggregate; Run and Stop are
// then no-ops.
func NewWorkers(storages *store.Storages, cfg config.Workers, log *logger.Logger) *Workers {
	ws := &Workers{}

	if storages.Snapshotter != nil && cfg.SnapshotInterval > 0 {
		ws.workers = append(ws.workers, NewSnapshotWorker(storages.Snapshotter, cfg.SnapshotInterval, log))
	}

	return ws
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop shuts down every worker that implements [Stopper], in reverse start
// order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		if stopper, ok := w.workers[i].(Stopper); ok {
			stopper.Stop()
		}
	}
}
