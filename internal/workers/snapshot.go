// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-kv-keeper/internal/logger"
	"github.com/MKhiriev/go-kv-keeper/internal/store"
)

// SnapshotWorker periodically flushes the in-memory store to its snapshot
// file. A final snapshot is taken on Stop so a graceful shutdown never loses
// more than the last tick of writes.
type SnapshotWorker struct {
	snapshotter store.Snapshotter
	interval    time.Duration
	logger      *logger.Logger

	done     chan struct{}
	finished sync.WaitGroup
	stopOnce sync.Once
}

func NewSnapshotWorker(snapshotter store.Snapshotter, interval time.Duration, log *logger.Logger) *SnapshotWorker {
	return &SnapshotWorker{
		snapshotter: snapshotter,
		interval:    interval,
		logger:      log,
		done:        make(chan struct{}),
	}
}

// Run starts the flush loop in a background goroutine and returns
// immediately.
func (w *SnapshotWorker) Run() {
	w.logger.Info().Dur("interval", w.interval).Msg("starting snapshot worker")

	w.finished.Add(1)
	go func() {
		defer w.finished.Done()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.snapshot()
			case <-w.done:
				w.snapshot()
				return
			}
		}
	}()
}

// Stop halts the flush loop after one last snapshot and waits for the
// goroutine to exit. Stop is safe to call more than once.
func (w *SnapshotWorker) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.finished.Wait()
		w.logger.Info().Msg("snapshot worker stopped")
	})
}

func (w *SnapshotWorker) snapshot() {
	if err := w.snapshotter.Snapshot(); err != nil {
		w.logger.Err(err).Msg("snapshot flush failed")
	}
}
