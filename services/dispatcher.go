package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/luismarketmedia/dash-fut/metrics"
	"github.com/luismarketmedia/dash-fut/state"
	"github.com/luismarketmedia/dash-fut/storage"
)

const (
	mirrorTimeout   = 10 * time.Second
	persistQueueLen = 256
)

type persistJob struct {
	workspaceID string
	prev, next  state.State
	action      state.Action
}

// Dispatcher is the single write path for user-driven transitions. The
// in-memory store is updated first and the result returned immediately;
// the record store mirror and the snapshot writes happen on a single
// background worker draining a queue in dispatch order, so a phase
// clear always commits before the matches that replace it. A lost
// write costs at most one refresh worth of drift, the snapshot is
// rewritten on the next transition anyway.
type Dispatcher struct {
	store     *state.Store
	mirror    Mirror
	snapshots []storage.SnapshotStore
	logger    *slog.Logger

	jobs chan persistJob
	wg   sync.WaitGroup
}

func NewDispatcher(store *state.Store, mirror Mirror, snapshots []storage.SnapshotStore, logger *slog.Logger) *Dispatcher {
	if mirror == nil {
		mirror = NewNoopMirror()
	}
	d := &Dispatcher{
		store:     store,
		mirror:    mirror,
		snapshots: snapshots,
		logger:    logger,
		jobs:      make(chan persistJob, persistQueueLen),
	}
	go d.run()
	return d
}

// Store exposes the underlying container for read paths and listeners.
func (d *Dispatcher) Store() *state.Store {
	return d.store
}

// Dispatch applies the action and queues its persistence. The
// returned snapshot is the state the caller's response should render.
func (d *Dispatcher) Dispatch(ctx context.Context, workspaceID string, action state.Action) state.State {
	prev := d.store.State()
	next := d.store.Dispatch(action)
	metrics.ActionsDispatched.WithLabelValues(action.Kind()).Inc()

	d.wg.Add(1)
	d.jobs <- persistJob{workspaceID: workspaceID, prev: prev, next: next, action: action}
	return next
}

func (d *Dispatcher) run() {
	for job := range d.jobs {
		d.persist(job.workspaceID, job.prev, job.next, job.action)
		d.wg.Done()
	}
}

func (d *Dispatcher) persist(workspaceID string, prev, next state.State, action state.Action) {
	ctx, cancel := context.WithTimeout(context.Background(), mirrorTimeout)
	defer cancel()

	if workspaceID != "" {
		if err := d.mirror.Persist(ctx, workspaceID, prev, next, action); err != nil {
			metrics.MirrorFailures.Inc()
			d.logger.Error("failed to mirror action",
				slog.String("action", action.Kind()),
				slog.String("workspace_id", workspaceID),
				slog.Any("error", err))
		}
	}
	d.writeSnapshot(ctx, next)
}

func (d *Dispatcher) writeSnapshot(ctx context.Context, snapshot state.State) {
	if len(d.snapshots) == 0 {
		return
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		d.logger.Error("failed to serialize snapshot", slog.Any("error", err))
		return
	}
	for _, store := range d.snapshots {
		if err := store.Save(ctx, data); err != nil {
			d.logger.Error("failed to write snapshot", slog.Any("error", err))
			continue
		}
		metrics.SnapshotWrites.Inc()
	}
}

// Wait blocks until every queued background write has finished.
// Called on shutdown so the last actions are not lost.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
