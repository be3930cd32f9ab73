package interfaces

//go:generate moq -out mocks/graph_mock.go -pkg mocks . GraphClient GraphSession

import (
	"context"
	"encoding/json"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/types"
)

// GraphClient opens authenticated Microsoft Graph sessions
type GraphClient interface {
	// NewSession exchanges client credentials for a bearer token. The
	// returned session holds that single token for its whole lifetime;
	// a long-lived session is never refreshed.
	NewSession(ctx context.Context) (GraphSession, error)
}

// GraphSession is one token's view of the Graph API surface used by the
// broadcast pipeline
type GraphSession interface {
	// ListUsers pages through the tenant directory until the
	// continuation link is exhausted
	ListUsers(ctx context.Context) ([]*model.User, error)

	// EnsureAppInstalled installs the bot app for the user unless the
	// installed-apps listing already contains it
	EnsureAppInstalled(ctx context.Context, userID types.UserID) error

	// ResolveChat finds or creates the 1:1 chat between the bot app and
	// the user
	ResolveChat(ctx context.Context, userID types.UserID) (types.ChatID, error)

	// SendCard posts the card as an Adaptive Card attachment into a chat
	SendCard(ctx context.Context, chatID types.ChatID, card json.RawMessage) error
}
