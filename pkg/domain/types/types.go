package types

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// UserID represents an Azure AD user object ID
type UserID string

// String returns the string representation
func (id UserID) String() string {
	return string(id)
}

// ChatID represents a Graph chat identifier
type ChatID string

// String returns the string representation
func (id ChatID) String() string {
	return string(id)
}

// TeamsAppID represents a Teams application (catalog) identifier
type TeamsAppID string

// String returns the string representation
func (id TeamsAppID) String() string {
	return string(id)
}

// ConversationID represents a Bot Framework conversation identifier
type ConversationID string

// String returns the string representation
func (id ConversationID) String() string {
	return string(id)
}

// ActivityID represents a Bot Framework activity identifier
type ActivityID string

// String returns the string representation
func (id ActivityID) String() string {
	return string(id)
}

// BroadcastID identifies a single broadcast run
type BroadcastID string

// NewBroadcastID creates a new BroadcastID
func NewBroadcastID() BroadcastID {
	return BroadcastID(uuid.New().String())
}

// String returns the string representation
func (id BroadcastID) String() string {
	return string(id)
}

// AttachmentID represents an Adaptive Card attachment identifier
type AttachmentID string

// NewAttachmentID creates a new AttachmentID in the dashless form the chat
// message API references from the message body
func NewAttachmentID() AttachmentID {
	u := uuid.New()
	return AttachmentID(hex.EncodeToString(u[:]))
}

// String returns the string representation
func (id AttachmentID) String() string {
	return string(id)
}
