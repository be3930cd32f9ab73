package model

import (
	"encoding/json"
	"strings"
	"time"
)

// Activity types used by the bot. The schema has more, but these are the
// only ones the service sends or dispatches on.
const (
	ActivityTypeMessage            = "message"
	ActivityTypeConversationUpdate = "conversationUpdate"
	ActivityTypeTrace              = "trace"
)

// ChannelIDEmulator is the channel ID reported by the Bot Framework Emulator
const ChannelIDEmulator = "emulator"

// ChannelAccount identifies a user or bot on a channel
type ChannelAccount struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	AADObjectID string `json:"aadObjectId,omitempty"`
}

// ConversationAccount identifies the conversation an activity belongs to
type ConversationAccount struct {
	ID               string `json:"id,omitempty"`
	Name             string `json:"name,omitempty"`
	ConversationType string `json:"conversationType,omitempty"`
	TenantID         string `json:"tenantId,omitempty"`
	IsGroup          bool   `json:"isGroup,omitempty"`
}

// Attachment carries a card or other rich content on an activity
type Attachment struct {
	ContentType string `json:"contentType,omitempty"`
	ContentURL  string `json:"contentUrl,omitempty"`
	Content     any    `json:"content,omitempty"`
}

// Entity carries activity metadata; the bot only produces mention entities
type Entity struct {
	Type      string          `json:"type"`
	Text      string          `json:"text,omitempty"`
	Mentioned *ChannelAccount `json:"mentioned,omitempty"`
}

// Activity is the Bot Framework message envelope exchanged with the channel.
// Only the fields this service reads or writes are mapped.
type Activity struct {
	Type         string              `json:"type,omitempty"`
	ID           string              `json:"id,omitempty"`
	Timestamp    *time.Time          `json:"timestamp,omitempty"`
	ChannelID    string              `json:"channelId,omitempty"`
	ServiceURL   string              `json:"serviceUrl,omitempty"`
	From         ChannelAccount      `json:"from,omitempty"`
	Recipient    ChannelAccount      `json:"recipient,omitempty"`
	Conversation ConversationAccount `json:"conversation,omitempty"`
	Text         string              `json:"text,omitempty"`
	ReplyToID    string              `json:"replyToId,omitempty"`
	Attachments  []Attachment        `json:"attachments,omitempty"`
	Entities     []Entity            `json:"entities,omitempty"`
	MembersAdded []ChannelAccount    `json:"membersAdded,omitempty"`
	Value        map[string]any      `json:"value,omitempty"`
	ChannelData  map[string]any      `json:"channelData,omitempty"`

	// Trace activity fields
	Label     string `json:"label,omitempty"`
	Name      string `json:"name,omitempty"`
	ValueType string `json:"valueType,omitempty"`
}

// NewTextActivity creates a plain text message activity
func NewTextActivity(text string) *Activity {
	return &Activity{
		Type: ActivityTypeMessage,
		Text: text,
	}
}

// NewAttachmentActivity creates a message activity carrying attachments
func NewAttachmentActivity(attachments ...Attachment) *Activity {
	return &Activity{
		Type:        ActivityTypeMessage,
		Attachments: attachments,
	}
}

// NewMentionActivity creates a message greeting the account with a mention
// entity, the way the channel renders @-mentions
func NewMentionActivity(account ChannelAccount) *Activity {
	mentionText := "<at>" + account.Name + "</at>"
	return &Activity{
		Type: ActivityTypeMessage,
		Text: "Hello " + mentionText,
		Entities: []Entity{
			{
				Type:      "mention",
				Text:      mentionText,
				Mentioned: &account,
			},
		},
	}
}

// NewTraceActivity creates a trace activity shown by the Bot Framework
// Emulator during debugging
func NewTraceActivity(label, name, valueType string, value any) *Activity {
	now := time.Now().UTC()
	return &Activity{
		Type:      ActivityTypeTrace,
		Timestamp: &now,
		Label:     label,
		Name:      name,
		ValueType: valueType,
		Value:     map[string]any{"error": value},
	}
}

// StripRecipientMention removes the leading @-mention of the recipient from
// the activity text, so command matching sees only the user's words
func (a *Activity) StripRecipientMention() string {
	text := a.Text
	for _, e := range a.Entities {
		if e.Type != "mention" || e.Mentioned == nil {
			continue
		}
		if e.Mentioned.ID == a.Recipient.ID {
			text = strings.ReplaceAll(text, e.Text, "")
		}
	}
	// Mention text may also appear without a matching entity
	if a.Recipient.Name != "" {
		text = strings.ReplaceAll(text, "<at>"+a.Recipient.Name+"</at>", "")
	}
	return strings.TrimSpace(text)
}

// ConversationParameters is the request to create a new conversation for
// proactive messaging
type ConversationParameters struct {
	IsGroup     bool             `json:"isGroup"`
	Bot         ChannelAccount   `json:"bot,omitempty"`
	Members     []ChannelAccount `json:"members,omitempty"`
	TenantID    string           `json:"tenantId,omitempty"`
	TopicName   string           `json:"topicName,omitempty"`
	Activity    *Activity        `json:"activity,omitempty"`
	ChannelData json.RawMessage  `json:"channelData,omitempty"`
}

// TeamsMember is a conversation member as returned by the paged members
// endpoint, carrying the Teams-specific identity fields
type TeamsMember struct {
	ID                string `json:"id"`
	Name              string `json:"name,omitempty"`
	GivenName         string `json:"givenName,omitempty"`
	Surname           string `json:"surname,omitempty"`
	Email             string `json:"email,omitempty"`
	UserPrincipalName string `json:"userPrincipalName,omitempty"`
	AADObjectID       string `json:"aadObjectId,omitempty"`
	TenantID          string `json:"tenantId,omitempty"`
}

// PagedMembers is one page of conversation members with the continuation
// cursor for the next page
type PagedMembers struct {
	ContinuationToken string        `json:"continuationToken,omitempty"`
	Members           []TeamsMember `json:"members"`
}
