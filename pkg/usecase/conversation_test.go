package usecase_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/interfaces/mocks"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/types"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/service/botframework"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/usecase"
)

const mentionTemplate = `{
  "type": "AdaptiveCard",
  "version": "1.0",
  "body": [{"type": "TextBlock", "text": "Hi <at>${userName}</at>"}],
  "msteams": {
    "entities": [{
      "type": "mention",
      "text": "<at>${userName}</at>",
      "mentioned": {"id": "${userAAD}", "name": "${userName}"}
    }]
  }
}`

func inboundMessage(text string) *model.Activity {
	return &model.Activity{
		Type:       model.ActivityTypeMessage,
		ID:         "activity-1",
		ChannelID:  "msteams",
		ServiceURL: "https://smba.example.com/apis",
		From:       model.ChannelAccount{ID: "29:user", Name: "Megan Bowen", AADObjectID: "aad-megan"},
		Recipient:  model.ChannelAccount{ID: "28:bot", Name: "Taskmate"},
		Conversation: model.ConversationAccount{
			ID:       "19:conversation",
			TenantID: "tenant-1",
		},
		Text: text,
	}
}

func connectorRecordingSends() (*mocks.ConnectorMock, *[]*model.Activity) {
	var sent []*model.Activity
	connector := &mocks.ConnectorMock{
		SendToConversationFunc: func(ctx context.Context, serviceURL string, conversationID types.ConversationID, activity *model.Activity) (types.ActivityID, error) {
			sent = append(sent, activity)
			return "sent-1", nil
		},
	}
	return connector, &sent
}

func membersPage(members ...model.TeamsMember) func(ctx context.Context, serviceURL string, conversationID types.ConversationID, continuationToken string, pageSize int) (*model.PagedMembers, error) {
	return func(ctx context.Context, serviceURL string, conversationID types.ConversationID, continuationToken string, pageSize int) (*model.PagedMembers, error) {
		return &model.PagedMembers{Members: members}, nil
	}
}

func newConversation(t *testing.T) *usecase.Conversation {
	tmpl, err := model.NewCardTemplate([]byte(mentionTemplate))
	gt.NoError(t, err).Required()
	return usecase.NewConversation(tmpl)
}

func TestConversationHey(t *testing.T) {
	connector, sent := connectorRecordingSends()
	uc := newConversation(t)

	tc := botframework.NewTurnContext(connector, inboundMessage("hey"))
	gt.NoError(t, uc.OnTurn(context.Background(), tc)).Required()

	gt.Value(t, 1).Equal(len(*sent)).Required()
	reply := (*sent)[0]
	gt.Equal(t, "Hey back!", reply.Text)
	// Reply routing swaps the inbound endpoints
	gt.Equal(t, "28:bot", reply.From.ID)
	gt.Equal(t, "29:user", reply.Recipient.ID)
	gt.Equal(t, "activity-1", reply.ReplyToID)
}

func TestConversationHeyStripsBotMention(t *testing.T) {
	connector, sent := connectorRecordingSends()
	uc := newConversation(t)

	activity := inboundMessage("<at>Taskmate</at> hey")
	activity.Entities = []model.Entity{
		{Type: "mention", Text: "<at>Taskmate</at>", Mentioned: &model.ChannelAccount{ID: "28:bot", Name: "Taskmate"}},
	}

	tc := botframework.NewTurnContext(connector, activity)
	gt.NoError(t, uc.OnTurn(context.Background(), tc)).Required()
	gt.Value(t, 1).Equal(len(*sent)).Required()
	gt.Equal(t, "Hey back!", (*sent)[0].Text)
}

func TestConversationMention(t *testing.T) {
	connector, sent := connectorRecordingSends()
	uc := newConversation(t)

	tc := botframework.NewTurnContext(connector, inboundMessage("mention"))
	gt.NoError(t, uc.OnTurn(context.Background(), tc)).Required()

	gt.Value(t, 1).Equal(len(*sent)).Required()
	reply := (*sent)[0]
	gt.True(t, strings.Contains(reply.Text, "<at>Megan Bowen</at>"))
	gt.Value(t, 1).Equal(len(reply.Entities)).Required()
	gt.Equal(t, "mention", reply.Entities[0].Type)
	gt.Equal(t, "29:user", reply.Entities[0].Mentioned.ID)
}

func TestConversationMentionMeRendersCard(t *testing.T) {
	connector, sent := connectorRecordingSends()
	connector.PagedMembersFunc = membersPage(model.TeamsMember{
		ID:                "29:user",
		Name:              "Megan Bowen",
		UserPrincipalName: "megan@contoso.com",
		AADObjectID:       "aad-megan",
	})
	uc := newConversation(t)

	tc := botframework.NewTurnContext(connector, inboundMessage("mention me"))
	gt.NoError(t, uc.OnTurn(context.Background(), tc)).Required()

	gt.Value(t, 1).Equal(len(*sent)).Required()
	reply := (*sent)[0]
	gt.Value(t, 1).Equal(len(reply.Attachments)).Required()
	gt.Equal(t, model.ContentTypeAdaptiveCard, reply.Attachments[0].ContentType)

	card, ok := reply.Attachments[0].Content.(json.RawMessage)
	gt.True(t, ok).Required()
	gt.True(t, json.Valid(card))
	gt.True(t, strings.Contains(string(card), "<at>Megan Bowen</at>"))
	gt.True(t, strings.Contains(string(card), "aad-megan"))
}

func TestConversationMentionMeMemberNotFound(t *testing.T) {
	connector, sent := connectorRecordingSends()
	connector.PagedMembersFunc = membersPage() // empty roster
	uc := newConversation(t)

	tc := botframework.NewTurnContext(connector, inboundMessage("mention me"))
	gt.NoError(t, uc.OnTurn(context.Background(), tc)).Required()

	gt.Value(t, 1).Equal(len(*sent)).Required()
	gt.Equal(t, "Member not found.", (*sent)[0].Text)
}

func TestConversationWhoAmI(t *testing.T) {
	connector, sent := connectorRecordingSends()
	connector.PagedMembersFunc = membersPage(model.TeamsMember{ID: "29:user", Name: "Megan Bowen"})
	uc := newConversation(t)

	tc := botframework.NewTurnContext(connector, inboundMessage("who am i"))
	gt.NoError(t, uc.OnTurn(context.Background(), tc)).Required()

	gt.Value(t, 1).Equal(len(*sent)).Required()
	gt.Equal(t, "You are: Megan Bowen", (*sent)[0].Text)
}

func TestConversationDelete(t *testing.T) {
	var deleted []types.ActivityID
	connector := &mocks.ConnectorMock{
		DeleteActivityFunc: func(ctx context.Context, serviceURL string, conversationID types.ConversationID, activityID types.ActivityID) error {
			deleted = append(deleted, activityID)
			return nil
		},
	}
	uc := newConversation(t)

	activity := inboundMessage("deletecard")
	activity.ReplyToID = "card-activity"

	tc := botframework.NewTurnContext(connector, activity)
	gt.NoError(t, uc.OnTurn(context.Background(), tc)).Required()

	gt.Equal(t, []types.ActivityID{"card-activity"}, deleted)
}

func TestConversationUpdateCard(t *testing.T) {
	var updates []*model.Activity
	connector := &mocks.ConnectorMock{
		UpdateActivityFunc: func(ctx context.Context, serviceURL string, conversationID types.ConversationID, activityID types.ActivityID, activity *model.Activity) error {
			gt.Equal(t, types.ActivityID("card-activity"), activityID)
			updates = append(updates, activity)
			return nil
		},
	}
	uc := newConversation(t)

	activity := inboundMessage("updatecardaction")
	activity.ReplyToID = "card-activity"
	activity.Value = map[string]any{"count": float64(2)}

	tc := botframework.NewTurnContext(connector, activity)
	gt.NoError(t, uc.OnTurn(context.Background(), tc)).Required()

	gt.Value(t, 1).Equal(len(updates)).Required()
	card, ok := updates[0].Attachments[0].Content.(model.HeroCard)
	gt.True(t, ok).Required()
	gt.Equal(t, "Updated card", card.Title)
	gt.Equal(t, "Update count 3", card.Text)

	last := card.Buttons[len(card.Buttons)-1]
	gt.Equal(t, "Update Card", last.Title)
	value, ok := last.Value.(map[string]any)
	gt.True(t, ok).Required()
	gt.Equal(t, 3, value["count"])
}

func TestConversationMessageAllMembers(t *testing.T) {
	var created []*model.ConversationParameters
	var greetings []*model.Activity
	var confirmations []*model.Activity

	connector := &mocks.ConnectorMock{
		PagedMembersFunc: membersPage(
			model.TeamsMember{ID: "29:alice", Name: "Alice"},
			model.TeamsMember{ID: "29:bob", Name: "Bob"},
		),
		CreateConversationFunc: func(ctx context.Context, serviceURL string, params *model.ConversationParameters) (types.ConversationID, error) {
			created = append(created, params)
			return types.ConversationID("19:new-" + params.Members[0].ID), nil
		},
		SendToConversationFunc: func(ctx context.Context, serviceURL string, conversationID types.ConversationID, activity *model.Activity) (types.ActivityID, error) {
			if strings.HasPrefix(conversationID.String(), "19:new-") {
				greetings = append(greetings, activity)
			} else {
				confirmations = append(confirmations, activity)
			}
			return "sent-1", nil
		},
	}
	uc := newConversation(t)

	tc := botframework.NewTurnContext(connector, inboundMessage("messageallmembers"))
	gt.NoError(t, uc.OnTurn(context.Background(), tc)).Required()

	gt.Value(t, 2).Equal(len(created)).Required()
	gt.False(t, created[0].IsGroup)
	gt.Equal(t, "28:bot", created[0].Bot.ID)
	gt.Equal(t, "tenant-1", created[0].TenantID)
	gt.Equal(t, "29:alice", created[0].Members[0].ID)
	gt.Equal(t, "29:bob", created[1].Members[0].ID)

	gt.Value(t, 2).Equal(len(greetings)).Required()
	gt.Equal(t, "Hello Alice. I'm a Teams conversation bot.", greetings[0].Text)
	gt.Equal(t, "Hello Bob. I'm a Teams conversation bot.", greetings[1].Text)

	gt.Value(t, 1).Equal(len(confirmations)).Required()
	gt.Equal(t, "All messages have been sent", confirmations[0].Text)
}

func TestConversationMessageAllMembersSkipsFailedConversations(t *testing.T) {
	var greeted []types.ConversationID
	var confirmations int

	connector := &mocks.ConnectorMock{
		PagedMembersFunc: membersPage(
			model.TeamsMember{ID: "29:alice", Name: "Alice"},
			model.TeamsMember{ID: "29:bob", Name: "Bob"},
		),
		CreateConversationFunc: func(ctx context.Context, serviceURL string, params *model.ConversationParameters) (types.ConversationID, error) {
			if params.Members[0].ID == "29:alice" {
				return "", context.DeadlineExceeded
			}
			return "19:new-bob", nil
		},
		SendToConversationFunc: func(ctx context.Context, serviceURL string, conversationID types.ConversationID, activity *model.Activity) (types.ActivityID, error) {
			if conversationID == "19:new-bob" {
				greeted = append(greeted, conversationID)
			} else {
				confirmations++
			}
			return "sent-1", nil
		},
	}
	uc := newConversation(t)

	tc := botframework.NewTurnContext(connector, inboundMessage("messageallmembers"))
	gt.NoError(t, uc.OnTurn(context.Background(), tc)).Required()

	gt.Equal(t, []types.ConversationID{"19:new-bob"}, greeted)
	gt.Equal(t, 1, confirmations)
}

func TestConversationDefaultSendsWelcomeCard(t *testing.T) {
	connector, sent := connectorRecordingSends()
	uc := newConversation(t)

	tc := botframework.NewTurnContext(connector, inboundMessage("anything else"))
	gt.NoError(t, uc.OnTurn(context.Background(), tc)).Required()

	gt.Value(t, 1).Equal(len(*sent)).Required()
	reply := (*sent)[0]
	gt.Value(t, 1).Equal(len(reply.Attachments)).Required()
	gt.Equal(t, model.ContentTypeHeroCard, reply.Attachments[0].ContentType)

	card, ok := reply.Attachments[0].Content.(model.HeroCard)
	gt.True(t, ok).Required()
	gt.Equal(t, "Welcome Card", card.Title)
	gt.Equal(t, 5, len(card.Buttons))
	gt.Equal(t, "Update Card", card.Buttons[4].Title)
}

func TestConversationMembersAdded(t *testing.T) {
	connector, sent := connectorRecordingSends()
	uc := newConversation(t)

	activity := inboundMessage("")
	activity.Type = model.ActivityTypeConversationUpdate
	activity.MembersAdded = []model.ChannelAccount{
		{ID: "28:bot", Name: "Taskmate"},
		{ID: "29:alice", Name: "Alice"},
		{ID: "29:bob", Name: "Bob"},
	}

	tc := botframework.NewTurnContext(connector, activity)
	gt.NoError(t, uc.OnTurn(context.Background(), tc)).Required()

	// The bot itself is skipped
	gt.Value(t, 2).Equal(len(*sent)).Required()
	gt.Equal(t, "Welcome to the team Alice.", (*sent)[0].Text)
	gt.Equal(t, "Welcome to the team Bob.", (*sent)[1].Text)
}

func TestConversationIgnoresOtherActivityTypes(t *testing.T) {
	connector, sent := connectorRecordingSends()
	uc := newConversation(t)

	activity := inboundMessage("")
	activity.Type = "typing"

	tc := botframework.NewTurnContext(connector, activity)
	gt.NoError(t, uc.OnTurn(context.Background(), tc))
	gt.Equal(t, 0, len(*sent))
}
