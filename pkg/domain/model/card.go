package model

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Card content types understood by the Teams client
const (
	ContentTypeAdaptiveCard = "application/vnd.microsoft.card.adaptive"
	ContentTypeHeroCard     = "application/vnd.microsoft.card.hero"
)

// CardAction is a button on a hero card
type CardAction struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Text  string `json:"text,omitempty"`
	Value any    `json:"value,omitempty"`
}

// ActionTypeMessageBack posts the action text back to the bot as a message
const ActionTypeMessageBack = "messageBack"

// HeroCard is a simple card with a title, text and buttons
type HeroCard struct {
	Title   string       `json:"title,omitempty"`
	Text    string       `json:"text,omitempty"`
	Buttons []CardAction `json:"buttons,omitempty"`
}

// HeroCardAttachment wraps a hero card as an activity attachment
func HeroCardAttachment(card HeroCard) Attachment {
	return Attachment{
		ContentType: ContentTypeHeroCard,
		Content:     card,
	}
}

// AdaptiveCardAttachment wraps raw Adaptive Card JSON as an activity
// attachment
func AdaptiveCardAttachment(card json.RawMessage) Attachment {
	return Attachment{
		ContentType: ContentTypeAdaptiveCard,
		Content:     card,
	}
}

// CardTemplate is an Adaptive Card JSON document with placeholder tokens
// substituted per user at render time
type CardTemplate struct {
	raw string
}

// LoadCardTemplate reads an Adaptive Card template file
func LoadCardTemplate(path string) (*CardTemplate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read card template", goerr.V("path", path))
	}
	if !json.Valid(raw) {
		return nil, goerr.New("card template is not valid JSON", goerr.V("path", path))
	}
	return &CardTemplate{raw: string(raw)}, nil
}

// NewCardTemplate creates a template from in-memory JSON
func NewCardTemplate(raw []byte) (*CardTemplate, error) {
	if !json.Valid(raw) {
		return nil, goerr.New("card template is not valid JSON")
	}
	return &CardTemplate{raw: string(raw)}, nil
}

// Render substitutes the member's identity into the template tokens.
// Supported tokens: ${userName}, ${userUPN}, ${userAAD} and the short
// {user} form used by the alternate template.
func (t *CardTemplate) Render(member *TeamsMember) (json.RawMessage, error) {
	r := strings.NewReplacer(
		"${userName}", escapeJSON(member.Name),
		"${userUPN}", escapeJSON(member.UserPrincipalName),
		"${userAAD}", escapeJSON(member.AADObjectID),
		"{user}", escapeJSON(member.Name),
	)
	rendered := r.Replace(t.raw)
	if !json.Valid([]byte(rendered)) {
		return nil, goerr.New("rendered card is not valid JSON",
			goerr.V("member", member.Name))
	}
	return json.RawMessage(rendered), nil
}

// escapeJSON escapes a substituted value so it stays a valid JSON string
// fragment inside the template
func escapeJSON(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return s
	}
	// Trim the surrounding quotes added by Marshal
	return string(b[1 : len(b)-1])
}
