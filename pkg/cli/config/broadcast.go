package config

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/usecase"
)

// Broadcast holds fan-out pacing configuration
type Broadcast struct {
	BatchSize  int64
	BatchDelay time.Duration
}

// Flags returns CLI flags for Broadcast configuration
func (b *Broadcast) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "broadcast-batch-size",
			Usage:       "Per-user pipelines run concurrently per batch",
			Category:    "Broadcast",
			Value:       usecase.DefaultBatchSize,
			Sources:     cli.EnvVars("TASKMATE_BROADCAST_BATCH_SIZE"),
			Destination: &b.BatchSize,
		},
		&cli.DurationFlag{
			Name:        "broadcast-batch-delay",
			Usage:       "Pause between broadcast batches",
			Category:    "Broadcast",
			Value:       usecase.DefaultBatchDelay,
			Sources:     cli.EnvVars("TASKMATE_BROADCAST_BATCH_DELAY"),
			Destination: &b.BatchDelay,
		},
	}
}

// Options returns the orchestrator options for this configuration
func (b *Broadcast) Options() []usecase.BroadcastOption {
	return []usecase.BroadcastOption{
		usecase.WithBatchSize(int(b.BatchSize)),
		usecase.WithBatchDelay(b.BatchDelay),
	}
}

// LogValue returns structured log value
func (b Broadcast) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("batch_size", b.BatchSize),
		slog.Duration("batch_delay", b.BatchDelay),
	)
}
