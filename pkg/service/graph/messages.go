package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/types"
)

// SendCard wraps the card payload as an Adaptive Card attachment with a
// fresh attachment ID and posts it as a chat message. A non-success
// response is an error; the caller records it on the user's result.
func (s *Session) SendCard(ctx context.Context, chatID types.ChatID, card json.RawMessage) error {
	attachmentID := types.NewAttachmentID()

	payload := map[string]any{
		"body": map[string]any{
			"contentType": "html",
			"content":     fmt.Sprintf(`<attachment id="%s"></attachment>`, attachmentID),
		},
		"attachments": []map[string]any{
			{
				"id":          attachmentID.String(),
				"contentType": model.ContentTypeAdaptiveCard,
				// The chat message API takes the card document as a string
				"content": string(card),
			},
		},
	}

	status, body, err := s.request(ctx, http.MethodPost, s.url(fmt.Sprintf("/chats/%s/messages", chatID)), payload)
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		return goerr.New("failed to send card message",
			goerr.T(model.ErrTagUpstream),
			goerr.V("chat", chatID),
			goerr.V("status", status),
			goerr.V("body", string(body)),
		)
	}

	return nil
}
