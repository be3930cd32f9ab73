package usecase

import (
	"context"
	"encoding/json"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
)

// Broadcaster fans an Adaptive Card out to every tenant user
type Broadcaster interface {
	Broadcast(ctx context.Context, card json.RawMessage) ([]*model.BroadcastResult, error)
}
