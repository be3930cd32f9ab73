package interfaces

//go:generate moq -out mocks/connector_mock.go -pkg mocks . Connector

import (
	"context"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/types"
)

// Connector is the Bot Framework connector REST surface the bot consumes.
// All calls go to the service URL reported by the inbound activity.
type Connector interface {
	// SendToConversation posts an activity into an existing conversation
	SendToConversation(ctx context.Context, serviceURL string, conversationID types.ConversationID, activity *model.Activity) (types.ActivityID, error)

	// UpdateActivity replaces a previously sent activity in place
	UpdateActivity(ctx context.Context, serviceURL string, conversationID types.ConversationID, activityID types.ActivityID, activity *model.Activity) error

	// DeleteActivity removes a previously sent activity
	DeleteActivity(ctx context.Context, serviceURL string, conversationID types.ConversationID, activityID types.ActivityID) error

	// PagedMembers returns one page of conversation members
	PagedMembers(ctx context.Context, serviceURL string, conversationID types.ConversationID, continuationToken string, pageSize int) (*model.PagedMembers, error)

	// CreateConversation starts a new conversation for proactive
	// messaging and returns its ID
	CreateConversation(ctx context.Context, serviceURL string, params *model.ConversationParameters) (types.ConversationID, error)
}
