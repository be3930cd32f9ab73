package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/m-mizutani/goerr/v2"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/types"
)

// ResolveChat finds or creates the 1:1 chat between the bot app and the
// user. A 409 means the chat already exists; in that case the user's
// one-to-one chats are listed and the first one is returned. Any other
// non-success response is a resolution failure for that user.
func (s *Session) ResolveChat(ctx context.Context, userID types.UserID) (types.ChatID, error) {
	payload := map[string]any{
		"chatType": "oneOnOne",
		"members": []map[string]any{
			{
				"@odata.type":     "#microsoft.graph.aadUserConversationMember",
				"roles":           []string{"owner"},
				"user@odata.bind": fmt.Sprintf("https://graph.microsoft.com/v1.0/users('%s')", userID),
			},
			{
				"@odata.type":     "#microsoft.graph.aadUserConversationMember",
				"roles":           []string{"owner"},
				"user@odata.bind": fmt.Sprintf("https://graph.microsoft.com/v1.0/users('%s')", s.client.botAppID),
			},
		},
	}

	status, body, err := s.request(ctx, http.MethodPost, s.url("/chats"), payload)
	if err != nil {
		return "", err
	}

	switch {
	case isSuccess(status):
		var chat struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(body, &chat); err != nil || chat.ID == "" {
			return "", goerr.New("chat create response carried no chat ID",
				goerr.T(model.ErrTagChatResolution),
				goerr.V("user", userID),
				goerr.V("body", string(body)),
			)
		}
		return types.ChatID(chat.ID), nil

	case status == http.StatusConflict:
		// The chat already exists; fall back to the user's listing
		return s.findExistingChat(ctx, userID)

	default:
		return "", goerr.New("failed to create chat",
			goerr.T(model.ErrTagChatResolution),
			goerr.V("user", userID),
			goerr.V("status", status),
			goerr.V("body", string(body)),
		)
	}
}

// findExistingChat lists the user's one-to-one chats and returns the first.
// An empty listing despite the conflict signal is an inconsistency treated
// as unrecoverable for that user.
func (s *Session) findExistingChat(ctx context.Context, userID types.UserID) (types.ChatID, error) {
	filter := url.QueryEscape("chatType eq 'oneOnOne'")
	listURL := s.url(fmt.Sprintf("/users/%s/chats?$filter=%s", userID, filter))

	status, body, err := s.request(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return "", err
	}
	if !isSuccess(status) {
		return "", goerr.New("failed to list existing chats",
			goerr.T(model.ErrTagChatResolution),
			goerr.V("user", userID),
			goerr.V("status", status),
			goerr.V("body", string(body)),
		)
	}

	var page struct {
		Value []struct {
			ID string `json:"id"`
		} `json:"value"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return "", goerr.Wrap(err, "failed to decode chats listing",
			goerr.T(model.ErrTagChatResolution),
			goerr.V("user", userID),
		)
	}

	if len(page.Value) == 0 {
		return "", goerr.New("chat create reported conflict but no existing chat was found",
			goerr.T(model.ErrTagChatResolution),
			goerr.V("user", userID),
		)
	}

	return types.ChatID(page.Value[0].ID), nil
}
