package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/types"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/service/botframework"
)

// Conversation is the bot's turn handler: it dispatches message commands
// and welcomes new conversation members
type Conversation struct {
	cardTemplate *model.CardTemplate
}

var _ botframework.TurnHandler = &Conversation{}

// NewConversation creates the turn handler. cardTemplate backs the
// "mention me" Adaptive Card reply.
func NewConversation(cardTemplate *model.CardTemplate) *Conversation {
	return &Conversation{
		cardTemplate: cardTemplate,
	}
}

// OnTurn dispatches one inbound activity
func (u *Conversation) OnTurn(ctx context.Context, tc *botframework.TurnContext) error {
	switch tc.Activity.Type {
	case model.ActivityTypeMessage:
		return u.onMessage(ctx, tc)
	case model.ActivityTypeConversationUpdate:
		return u.onMembersAdded(ctx, tc)
	default:
		ctxlog.From(ctx).Debug("Ignoring activity", "type", tc.Activity.Type)
		return nil
	}
}

// onMessage matches the stripped, lowercased text against the command set.
// Order matters: "mention me" must win over the bare "mention" match.
func (u *Conversation) onMessage(ctx context.Context, tc *botframework.TurnContext) error {
	text := strings.ToLower(tc.Activity.StripRecipientMention())

	switch {
	case text == "hey":
		_, err := tc.SendText(ctx, "Hey back!")
		return err

	case strings.Contains(text, "mention me"):
		return u.mentionAdaptiveCard(ctx, tc)

	case strings.Contains(text, "mention"):
		_, err := tc.SendActivity(ctx, model.NewMentionActivity(tc.Activity.From))
		return err

	case strings.Contains(text, "update"):
		return u.updateCard(ctx, tc)

	case strings.Contains(text, "message"):
		return u.messageAllMembers(ctx, tc)

	case strings.Contains(text, "who"):
		return u.whoAmI(ctx, tc)

	case strings.Contains(text, "delete"):
		return tc.DeleteActivity(ctx, types.ActivityID(tc.Activity.ReplyToID))

	default:
		return u.sendWelcomeCard(ctx, tc)
	}
}

// onMembersAdded welcomes each added member, skipping the bot itself
func (u *Conversation) onMembersAdded(ctx context.Context, tc *botframework.TurnContext) error {
	for _, member := range tc.Activity.MembersAdded {
		if member.ID == tc.Activity.Recipient.ID {
			continue
		}
		if _, err := tc.SendText(ctx, fmt.Sprintf("Welcome to the team %s.", member.Name)); err != nil {
			return err
		}
	}
	return nil
}

// mentionAdaptiveCard renders the card template for the sender and replies
// with the Adaptive Card mentioning them
func (u *Conversation) mentionAdaptiveCard(ctx context.Context, tc *botframework.TurnContext) error {
	member, err := tc.GetMember(ctx, tc.Activity.From.ID)
	if err != nil {
		if errors.Is(err, model.ErrMemberNotFound) {
			_, sendErr := tc.SendText(ctx, "Member not found.")
			return sendErr
		}
		return err
	}

	card, err := u.cardTemplate.Render(member)
	if err != nil {
		return goerr.Wrap(err, "failed to render mention card")
	}

	_, err = tc.SendActivity(ctx, model.NewAttachmentActivity(model.AdaptiveCardAttachment(card)))
	return err
}

// whoAmI replies with the sender's display name
func (u *Conversation) whoAmI(ctx context.Context, tc *botframework.TurnContext) error {
	member, err := tc.GetMember(ctx, tc.Activity.From.ID)
	if err != nil {
		if errors.Is(err, model.ErrMemberNotFound) {
			_, sendErr := tc.SendText(ctx, "Member not found.")
			return sendErr
		}
		return err
	}

	_, err = tc.SendText(ctx, fmt.Sprintf("You are: %s", member.Name))
	return err
}

// proactiveMessage carries one member through the message-all loop; an
// explicit value rather than a closure over the loop variable
type proactiveMessage struct {
	member model.TeamsMember
}

// messageAllMembers creates a 1:1 conversation per member and greets each
// of them, then confirms completion in the originating conversation
func (u *Conversation) messageAllMembers(ctx context.Context, tc *botframework.TurnContext) error {
	logger := ctxlog.From(ctx)

	members, err := tc.Members(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list conversation members")
	}

	for _, member := range members {
		task := proactiveMessage{member: member}

		params := &model.ConversationParameters{
			IsGroup: false,
			Bot:     tc.Activity.Recipient,
			Members: []model.ChannelAccount{
				{ID: task.member.ID, Name: task.member.Name},
			},
			TenantID: tc.Activity.Conversation.TenantID,
		}

		conversationID, err := tc.CreateConversation(ctx, params)
		if err != nil {
			logger.Warn("Failed to create conversation for member",
				"member", task.member.ID,
				"error", err,
			)
			continue
		}

		greeting := model.NewTextActivity(fmt.Sprintf("Hello %s. I'm a Teams conversation bot.", task.member.Name))
		if _, err := tc.Connector().SendToConversation(ctx, tc.Activity.ServiceURL, conversationID, greeting); err != nil {
			logger.Warn("Failed to message member",
				"member", task.member.ID,
				"error", err,
			)
		}
	}

	_, err = tc.SendText(ctx, "All messages have been sent")
	return err
}

// baseCardButtons are the actions shared by the welcome and updated cards
func baseCardButtons() []model.CardAction {
	return []model.CardAction{
		{Type: model.ActionTypeMessageBack, Title: "Message all members", Text: "messageallmembers"},
		{Type: model.ActionTypeMessageBack, Title: "Who am I?", Text: "whoami"},
		{Type: model.ActionTypeMessageBack, Title: "Find me in Adaptive Card", Text: "mention me"},
		{Type: model.ActionTypeMessageBack, Title: "Delete card", Text: "deletecard"},
	}
}

// sendWelcomeCard is the default reply for unrecognized input
func (u *Conversation) sendWelcomeCard(ctx context.Context, tc *botframework.TurnContext) error {
	buttons := append(baseCardButtons(), model.CardAction{
		Type:  model.ActionTypeMessageBack,
		Title: "Update Card",
		Text:  "updatecardaction",
		Value: map[string]any{"count": 0},
	})

	card := model.HeroCard{
		Title:   "Welcome Card",
		Text:    "Click the buttons.",
		Buttons: buttons,
	}

	_, err := tc.SendActivity(ctx, model.NewAttachmentActivity(model.HeroCardAttachment(card)))
	return err
}

// updateCard increments the card's click counter and updates the sent card
// in place
func (u *Conversation) updateCard(ctx context.Context, tc *botframework.TurnContext) error {
	count := 0
	// JSON numbers decode as float64
	if v, ok := tc.Activity.Value["count"].(float64); ok {
		count = int(v)
	}
	count++

	buttons := append(baseCardButtons(), model.CardAction{
		Type:  model.ActionTypeMessageBack,
		Title: "Update Card",
		Text:  "updatecardaction",
		Value: map[string]any{"count": count},
	})

	card := model.HeroCard{
		Title:   "Updated card",
		Text:    fmt.Sprintf("Update count %d", count),
		Buttons: buttons,
	}

	return tc.UpdateActivity(ctx,
		types.ActivityID(tc.Activity.ReplyToID),
		model.NewAttachmentActivity(model.HeroCardAttachment(card)),
	)
}
