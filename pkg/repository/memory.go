package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/interfaces"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/types"
)

// Memory implements Repository with in-memory storage
type Memory struct {
	mu   sync.RWMutex
	runs map[types.BroadcastID]*model.BroadcastRun
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		runs: make(map[types.BroadcastID]*model.BroadcastRun),
	}
}

// SaveBroadcastRun stores a broadcast run record
func (m *Memory) SaveBroadcastRun(ctx context.Context, run *model.BroadcastRun) error {
	if run == nil {
		return goerr.New("broadcast run is nil")
	}
	if run.ID == "" {
		return goerr.New("broadcast run ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs[run.ID] = run
	return nil
}

// GetBroadcastRun retrieves a run by ID
func (m *Memory) GetBroadcastRun(ctx context.Context, id types.BroadcastID) (*model.BroadcastRun, error) {
	if id == "" {
		return nil, goerr.New("broadcast run ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	run, exists := m.runs[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrBroadcastRunNotFound, "no such run", goerr.V("id", id))
	}
	return run, nil
}

// ListBroadcastRuns returns recent runs, newest first
func (m *Memory) ListBroadcastRuns(ctx context.Context, limit int) ([]*model.BroadcastRun, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	runs := make([]*model.BroadcastRun, 0, len(m.runs))
	for _, run := range m.runs {
		runs = append(runs, run)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})

	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// Close is a no-op for the memory repository
func (m *Memory) Close() error {
	return nil
}
