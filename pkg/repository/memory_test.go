package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/types"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/repository"
)

func newRun(startedAt time.Time, results ...*model.BroadcastResult) *model.BroadcastRun {
	return model.NewBroadcastRun(startedAt, results)
}

func TestMemorySaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	run := newRun(time.Now(),
		&model.BroadcastResult{UserID: "u1", Status: model.BroadcastStatusSent},
		&model.BroadcastResult{UserID: "u2", Status: model.BroadcastStatusError, Error: "no chat"},
	)
	gt.NoError(t, repo.SaveBroadcastRun(ctx, run)).Required()

	got, err := repo.GetBroadcastRun(ctx, run.ID)
	gt.NoError(t, err).Required()
	gt.Equal(t, run.ID, got.ID)
	gt.Equal(t, 2, got.UserCount)
	gt.Equal(t, 1, got.SentCount)
	gt.Equal(t, 1, got.ErrorCount)
}

func TestMemoryGetNotFound(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	_, err := repo.GetBroadcastRun(ctx, types.NewBroadcastID())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrBroadcastRunNotFound))
}

func TestMemorySaveRejectsEmptyID(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	gt.Error(t, repo.SaveBroadcastRun(ctx, &model.BroadcastRun{}))
	gt.Error(t, repo.SaveBroadcastRun(ctx, nil))
}

func TestMemoryListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	now := time.Now()
	oldest := newRun(now.Add(-2 * time.Hour))
	middle := newRun(now.Add(-time.Hour))
	newest := newRun(now)

	// Insert out of order
	for _, run := range []*model.BroadcastRun{middle, newest, oldest} {
		gt.NoError(t, repo.SaveBroadcastRun(ctx, run)).Required()
	}

	runs, err := repo.ListBroadcastRuns(ctx, 0)
	gt.NoError(t, err).Required()
	gt.Value(t, 3).Equal(len(runs)).Required()
	gt.Equal(t, newest.ID, runs[0].ID)
	gt.Equal(t, middle.ID, runs[1].ID)
	gt.Equal(t, oldest.ID, runs[2].ID)
}

func TestMemoryListLimit(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	now := time.Now()
	for i := 0; i < 5; i++ {
		gt.NoError(t, repo.SaveBroadcastRun(ctx, newRun(now.Add(time.Duration(i)*time.Minute)))).Required()
	}

	runs, err := repo.ListBroadcastRuns(ctx, 2)
	gt.NoError(t, err).Required()
	gt.Equal(t, 2, len(runs))
}

func TestMemoryClose(t *testing.T) {
	repo := repository.NewMemory()
	gt.NoError(t, repo.Close())
}
