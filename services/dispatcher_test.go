package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismarketmedia/dash-fut/models"
	"github.com/luismarketmedia/dash-fut/state"
	"github.com/luismarketmedia/dash-fut/storage"
)

type recordingMirror struct {
	mu      sync.Mutex
	actions []string
}

func (m *recordingMirror) Persist(_ context.Context, _ string, _, _ state.State, action state.Action) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions = append(m.actions, action.Kind())
	return nil
}

func (m *recordingMirror) recorded() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.actions...)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatchAppliesLocallyAndMirrors(t *testing.T) {
	mirror := &recordingMirror{}
	store := state.NewStore(state.Empty())
	d := NewDispatcher(store, mirror, nil, testLogger())

	next := d.Dispatch(context.Background(), "ws-1", state.AddCategory{
		Category: models.Category{ID: "cat-1", Name: "Veteranos"},
	})

	// The caller sees the new state before persistence settles.
	require.Len(t, next.Categories, 1)
	assert.Equal(t, "Veteranos", next.Categories[0].Name)

	d.Wait()
	assert.Equal(t, []string{"ADD_CATEGORY"}, mirror.recorded())
}

func TestDispatchSkipsMirrorWithoutWorkspace(t *testing.T) {
	mirror := &recordingMirror{}
	store := state.NewStore(state.Empty())
	d := NewDispatcher(store, mirror, nil, testLogger())

	d.Dispatch(context.Background(), "", state.SetLoading{Loading: true})
	d.Wait()

	assert.Empty(t, mirror.recorded())
	assert.True(t, store.State().Loading)
}

func TestDispatchWritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	snapshots := []storage.SnapshotStore{storage.NewFileSnapshotStore(path)}
	store := state.NewStore(state.Empty())
	d := NewDispatcher(store, nil, snapshots, testLogger())

	d.Dispatch(context.Background(), "", state.AddCategory{
		Category: models.Category{ID: "cat-1", Name: "Veteranos"},
	})
	d.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var snapshot state.State
	require.NoError(t, json.Unmarshal(data, &snapshot))
	require.Len(t, snapshot.Categories, 1)
	assert.Equal(t, "cat-1", snapshot.Categories[0].ID)
}

// blockingMirror holds one action's persist open so the test can check
// that later actions wait their turn instead of overtaking it.
type blockingMirror struct {
	recordingMirror
	holdKind string
	gate     chan struct{}
}

func (m *blockingMirror) Persist(ctx context.Context, workspaceID string, prev, next state.State, action state.Action) error {
	if action.Kind() == m.holdKind {
		<-m.gate
	}
	return m.recordingMirror.Persist(ctx, workspaceID, prev, next, action)
}

func TestDispatchPersistsInDispatchOrder(t *testing.T) {
	// Regenerating a schedule dispatches ClearPhase then AddMatches; the
	// delete must commit before the inserts or a reload loses the phase.
	mirror := &blockingMirror{holdKind: "CLEAR_PHASE", gate: make(chan struct{})}
	store := state.NewStore(state.Empty())
	d := NewDispatcher(store, mirror, nil, testLogger())

	d.Dispatch(context.Background(), "ws-1", state.ClearPhase{CategoryID: "cat-1", Phase: models.PhaseGroup})
	d.Dispatch(context.Background(), "ws-1", state.AddMatches{Matches: []models.Match{{
		ID:          "m1",
		LeftTeamID:  "t1",
		RightTeamID: "t2",
		Phase:       models.PhaseGroup,
		Half:        1,
		Events:      map[string]models.PlayerStats{},
		CategoryID:  "cat-1",
	}}})

	close(mirror.gate)
	d.Wait()

	assert.Equal(t, []string{"CLEAR_PHASE", "ADD_MATCHES"}, mirror.recorded())
}

func TestDispatchNilMirrorDefaultsToNoop(t *testing.T) {
	store := state.NewStore(state.Empty())
	d := NewDispatcher(store, nil, nil, testLogger())

	next := d.Dispatch(context.Background(), "ws-1", state.SetActiveCategory{ID: "cat-1"})
	d.Wait()

	assert.Equal(t, "cat-1", next.ActiveCategoryID)
}
