package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/types"
)

// Repository persists broadcast run records
type Repository interface {
	SaveBroadcastRun(ctx context.Context, run *model.BroadcastRun) error
	GetBroadcastRun(ctx context.Context, id types.BroadcastID) (*model.BroadcastRun, error)
	ListBroadcastRuns(ctx context.Context, limit int) ([]*model.BroadcastRun, error)

	// Close closes the repository connection
	Close() error
}
