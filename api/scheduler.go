/*
scheduler.go - Automated snapshot sync scheduler

PURPOSE:
  Periodically pulls a cap-table snapshot from a pluggable source and
  runs the sync planner against the mirror, committing planned creates
  and edits. Lets the service track an open-format snapshot file (or any
  other feed) without an external cron.

DESIGN:
  - Runs a background goroutine with configurable check interval
  - Each tick loads the snapshot, plans it, commits non-noop decisions
  - No-op runs still record a sync_runs row for audit and UI display
  - A failing tick is logged and retried on the next interval

CONFIGURATION:
  - CheckInterval: How often to sync (default: 1 hour)

USAGE:
  scheduler := NewSyncScheduler(handler, source)
  scheduler.Start()
  // ... later
  scheduler.Stop()

SEE ALSO:
  - sync/planner.go: Batch classification
  - cmd/server/main.go: Wires a file-based snapshot source
*/
package api

import (
	"context"
	"encoding/json"
	"log"
	"os"
	gosync "sync"
	"time"

	"github.com/Fairmint/ocp-canton-sdk-sub006/convert"
	"github.com/Fairmint/ocp-canton-sdk-sub006/sync"
)

// SnapshotSource produces the current batch of open-format objects,
// each carrying its "object_type" discriminator.
type SnapshotSource func(ctx context.Context) ([]convert.Document, error)

// FileSnapshotSource reads an open-format snapshot from a JSON file
// holding either a bare array of objects or {"items": [...]}.
func FileSnapshotSource(path string) SnapshotSource {
	return func(ctx context.Context) ([]convert.Document, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var objects []convert.Document
		if err := json.Unmarshal(data, &objects); err == nil {
			return objects, nil
		}
		var wrapped struct {
			Items []convert.Document `json:"items"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, err
		}
		return wrapped.Items, nil
	}
}

// SyncScheduler runs the planner against a snapshot source on a timer.
type SyncScheduler struct {
	handler *Handler
	source  SnapshotSource

	CheckInterval time.Duration

	mu      gosync.Mutex
	stop    chan struct{}
	stopped chan struct{}
}

// NewSyncScheduler creates a scheduler with the default interval.
func NewSyncScheduler(h *Handler, source SnapshotSource) *SyncScheduler {
	return &SyncScheduler{
		handler:       h,
		source:        source,
		CheckInterval: time.Hour,
	}
}

// Start launches the background sync loop. The first sync runs
// immediately, then on every interval.
func (s *SyncScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	s.stopped = make(chan struct{})

	go func() {
		defer close(s.stopped)
		s.runOnce()
		ticker := time.NewTicker(s.CheckInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.runOnce()
			case <-s.stop:
				return
			}
		}
	}()
}

// Stop halts the background loop and waits for the current tick.
func (s *SyncScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.stopped
	s.stop = nil
}

// RunOnce syncs the snapshot immediately, outside the timer.
func (s *SyncScheduler) RunOnce(ctx context.Context) (sync.RunResult, error) {
	objects, err := s.source(ctx)
	if err != nil {
		return sync.RunResult{}, err
	}
	res, err := s.handler.Planner.PlanBatch(ctx, objects)
	if err != nil {
		return res, err
	}
	byKey := make(map[string]convert.Document, len(objects))
	for _, o := range objects {
		typ, _ := o["object_type"].(string)
		id, _ := o["id"].(string)
		byKey[typ+"/"+id] = o
	}
	for _, d := range res.Decisions {
		if d.Action == sync.ActionNoop {
			continue
		}
		if open, ok := byKey[string(d.Type)+"/"+d.ID]; ok {
			if err := s.handler.Planner.Commit(ctx, d, open); err != nil {
				return res, err
			}
		}
	}
	return res, nil
}

func (s *SyncScheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := s.RunOnce(ctx)
	if err != nil {
		log.Printf("sync scheduler: %v", err)
		return
	}
	log.Printf("sync scheduler: run %s creates=%d edits=%d noops=%d failures=%d",
		res.RunID, res.Creates, res.Edits, res.Noops, res.Failures)
}
