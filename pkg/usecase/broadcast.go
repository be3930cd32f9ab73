package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/interfaces"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/utils/async"
)

// Default pacing for the per-batch fan-out. Intra-batch calls run
// concurrently; between batches the orchestrator pauses to stay under the
// Graph per-application rate limits.
const (
	DefaultBatchSize  = 10
	DefaultBatchDelay = time.Second
)

// Broadcast runs the per-user delivery pipeline (install, resolve chat,
// send card) for every directory user
type Broadcast struct {
	graph      interfaces.GraphClient
	repo       interfaces.Repository
	batchSize  int
	batchDelay time.Duration
	pause      func(ctx context.Context, d time.Duration) error
}

var _ Broadcaster = &Broadcast{}

// BroadcastOption customizes the orchestrator
type BroadcastOption func(*Broadcast)

// WithBatchSize sets how many per-user pipelines run concurrently
func WithBatchSize(n int) BroadcastOption {
	return func(b *Broadcast) {
		if n > 0 {
			b.batchSize = n
		}
	}
}

// WithBatchDelay sets the pause between batches
func WithBatchDelay(d time.Duration) BroadcastOption {
	return func(b *Broadcast) {
		if d >= 0 {
			b.batchDelay = d
		}
	}
}

// WithPause overrides the inter-batch pause, for tests
func WithPause(pause func(ctx context.Context, d time.Duration) error) BroadcastOption {
	return func(b *Broadcast) {
		b.pause = pause
	}
}

// NewBroadcast creates the broadcast orchestrator. repo may be nil when run
// records are not persisted.
func NewBroadcast(graphClient interfaces.GraphClient, repo interfaces.Repository, opts ...BroadcastOption) *Broadcast {
	b := &Broadcast{
		graph:      graphClient,
		repo:       repo,
		batchSize:  DefaultBatchSize,
		batchDelay: DefaultBatchDelay,
		pause:      sleepPause,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// deliveryTask carries one user's slot through the concurrent batch; an
// explicit value rather than a closure over the loop variables
type deliveryTask struct {
	index int
	user  *model.User
}

// Broadcast sends the card to every directory user and returns one result
// per user in listing order. Per-user failures are recorded in the results
// and never abort the run; only token acquisition and directory listing
// failures make the whole operation fail.
func (b *Broadcast) Broadcast(ctx context.Context, card json.RawMessage) ([]*model.BroadcastResult, error) {
	logger := ctxlog.From(ctx)
	startedAt := time.Now()

	session, err := b.graph.NewSession(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open Graph session")
	}

	users, err := session.ListUsers(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list directory users")
	}

	logger.Info("Starting broadcast",
		"userCount", len(users),
		"batchSize", b.batchSize,
		"batchDelay", b.batchDelay,
	)

	results := make([]*model.BroadcastResult, len(users))
	for start := 0; start < len(users); start += b.batchSize {
		end := min(start+b.batchSize, len(users))

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			task := deliveryTask{index: i, user: users[i]}
			wg.Add(1)
			go func() {
				defer wg.Done()
				results[task.index] = b.deliver(ctx, session, task.user, card)
			}()
		}
		wg.Wait()

		if end < len(users) {
			if err := b.pause(ctx, b.batchDelay); err != nil {
				return results, goerr.Wrap(err, "broadcast interrupted between batches")
			}
		}
	}

	run := model.NewBroadcastRun(startedAt, results)
	logger.Info("Broadcast completed",
		"runID", run.ID,
		"sent", run.SentCount,
		"errors", run.ErrorCount,
		"duration", run.CompletedAt.Sub(run.StartedAt),
	)

	if b.repo != nil {
		async.Dispatch(ctx, func(ctx context.Context) error {
			if err := b.repo.SaveBroadcastRun(ctx, run); err != nil {
				return goerr.Wrap(err, "failed to save broadcast run", goerr.V("runID", run.ID))
			}
			return nil
		})
	}

	return results, nil
}

// deliver runs one user's pipeline. Install failures are best-effort (the
// app may already be present via tenant policy) and only logged; chat
// resolution and card send failures become the user's recorded error.
func (b *Broadcast) deliver(ctx context.Context, session interfaces.GraphSession, user *model.User, card json.RawMessage) (result *model.BroadcastResult) {
	defer func() {
		if r := recover(); r != nil {
			result = model.ErrorResult(user, goerr.New("panic in delivery pipeline", goerr.V("recover", r)))
		}
	}()

	logger := ctxlog.From(ctx)

	if err := session.EnsureAppInstalled(ctx, user.ID); err != nil {
		logger.Warn("App install failed, proceeding to chat resolution",
			"user", user.ID,
			"error", err,
		)
	}

	chatID, err := session.ResolveChat(ctx, user.ID)
	if err != nil {
		return model.ErrorResult(user, err)
	}

	if err := session.SendCard(ctx, chatID, card); err != nil {
		return model.ErrorResult(user, err)
	}

	return model.SentResult(user)
}

func sleepPause(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
