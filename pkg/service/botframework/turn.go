package botframework

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/interfaces"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/types"
)

// membersPageSize is the page size requested from the paged members endpoint
const membersPageSize = 100

// TurnContext carries one inbound activity together with the connector
// operations addressed to its conversation
type TurnContext struct {
	Activity  *model.Activity
	connector interfaces.Connector
}

// NewTurnContext creates a turn context for an inbound activity
func NewTurnContext(connector interfaces.Connector, activity *model.Activity) *TurnContext {
	return &TurnContext{
		Activity:  activity,
		connector: connector,
	}
}

// Connector exposes the underlying connector, for proactive flows that
// address other conversations
func (tc *TurnContext) Connector() interfaces.Connector {
	return tc.connector
}

func (tc *TurnContext) conversationID() types.ConversationID {
	return types.ConversationID(tc.Activity.Conversation.ID)
}

// address fills the reply routing fields from the inbound activity
func (tc *TurnContext) address(a *model.Activity) *model.Activity {
	a.From = tc.Activity.Recipient
	a.Recipient = tc.Activity.From
	a.Conversation = tc.Activity.Conversation
	a.ServiceURL = tc.Activity.ServiceURL
	a.ChannelID = tc.Activity.ChannelID
	a.ReplyToID = tc.Activity.ID
	return a
}

// SendActivity sends an activity back into the conversation
func (tc *TurnContext) SendActivity(ctx context.Context, a *model.Activity) (types.ActivityID, error) {
	return tc.connector.SendToConversation(ctx, tc.Activity.ServiceURL, tc.conversationID(), tc.address(a))
}

// SendText sends a plain text reply
func (tc *TurnContext) SendText(ctx context.Context, text string) (types.ActivityID, error) {
	return tc.SendActivity(ctx, model.NewTextActivity(text))
}

// UpdateActivity replaces a previously sent activity in place
func (tc *TurnContext) UpdateActivity(ctx context.Context, activityID types.ActivityID, a *model.Activity) error {
	return tc.connector.UpdateActivity(ctx, tc.Activity.ServiceURL, tc.conversationID(), activityID, tc.address(a))
}

// DeleteActivity removes a previously sent activity
func (tc *TurnContext) DeleteActivity(ctx context.Context, activityID types.ActivityID) error {
	return tc.connector.DeleteActivity(ctx, tc.Activity.ServiceURL, tc.conversationID(), activityID)
}

// Members gathers all conversation members, following the continuation
// token until exhausted
func (tc *TurnContext) Members(ctx context.Context) ([]model.TeamsMember, error) {
	var members []model.TeamsMember
	token := ""

	for {
		page, err := tc.connector.PagedMembers(ctx, tc.Activity.ServiceURL, tc.conversationID(), token, membersPageSize)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to page conversation members")
		}
		members = append(members, page.Members...)

		if page.ContinuationToken == "" {
			return members, nil
		}
		token = page.ContinuationToken
	}
}

// GetMember looks up a single conversation member by channel account ID
func (tc *TurnContext) GetMember(ctx context.Context, memberID string) (*model.TeamsMember, error) {
	members, err := tc.Members(ctx)
	if err != nil {
		return nil, err
	}

	for i := range members {
		if members[i].ID == memberID {
			return &members[i], nil
		}
	}

	return nil, goerr.Wrap(model.ErrMemberNotFound, "no such member",
		goerr.V("memberID", memberID),
	)
}

// CreateConversation starts a new conversation on the activity's service
// URL for proactive messaging
func (tc *TurnContext) CreateConversation(ctx context.Context, params *model.ConversationParameters) (types.ConversationID, error) {
	return tc.connector.CreateConversation(ctx, tc.Activity.ServiceURL, params)
}
