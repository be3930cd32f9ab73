package botframework

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/interfaces"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/types"
)

const (
	connectorTokenURL = "https://login.microsoftonline.com/botframework.com/oauth2/v2.0/token"
	connectorScope    = "https://api.botframework.com/.default"
)

// ConnectorClient talks to the Bot Framework connector REST API at the
// service URL reported by each inbound activity. Outbound calls carry a
// client-credentials token for the bot's app registration.
type ConnectorClient struct {
	httpClient *http.Client
}

var _ interfaces.Connector = &ConnectorClient{}

// NewConnectorClient creates a connector client. With empty credentials
// (local emulator without auth) requests go out unauthenticated.
func NewConnectorClient(ctx context.Context, appID, appPassword string) *ConnectorClient {
	if appID == "" {
		return &ConnectorClient{httpClient: http.DefaultClient}
	}

	creds := clientcredentials.Config{
		ClientID:     appID,
		ClientSecret: appPassword,
		TokenURL:     connectorTokenURL,
		Scopes:       []string{connectorScope},
	}
	return &ConnectorClient{httpClient: creds.Client(ctx)}
}

// NewConnectorClientWithHTTPClient creates a connector client over a
// caller-supplied HTTP client, mainly for tests
func NewConnectorClientWithHTTPClient(hc *http.Client) *ConnectorClient {
	return &ConnectorClient{httpClient: hc}
}

// SendToConversation posts an activity into a conversation
func (c *ConnectorClient) SendToConversation(ctx context.Context, serviceURL string, conversationID types.ConversationID, activity *model.Activity) (types.ActivityID, error) {
	endpoint := joinServiceURL(serviceURL, fmt.Sprintf("v3/conversations/%s/activities", url.PathEscape(conversationID.String())))

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, endpoint, activity, &resp); err != nil {
		return "", err
	}
	return types.ActivityID(resp.ID), nil
}

// UpdateActivity replaces a previously sent activity in place
func (c *ConnectorClient) UpdateActivity(ctx context.Context, serviceURL string, conversationID types.ConversationID, activityID types.ActivityID, activity *model.Activity) error {
	endpoint := joinServiceURL(serviceURL, fmt.Sprintf("v3/conversations/%s/activities/%s",
		url.PathEscape(conversationID.String()), url.PathEscape(activityID.String())))
	return c.do(ctx, http.MethodPut, endpoint, activity, nil)
}

// DeleteActivity removes a previously sent activity
func (c *ConnectorClient) DeleteActivity(ctx context.Context, serviceURL string, conversationID types.ConversationID, activityID types.ActivityID) error {
	endpoint := joinServiceURL(serviceURL, fmt.Sprintf("v3/conversations/%s/activities/%s",
		url.PathEscape(conversationID.String()), url.PathEscape(activityID.String())))
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

// PagedMembers returns one page of conversation members
func (c *ConnectorClient) PagedMembers(ctx context.Context, serviceURL string, conversationID types.ConversationID, continuationToken string, pageSize int) (*model.PagedMembers, error) {
	endpoint := joinServiceURL(serviceURL, fmt.Sprintf("v3/conversations/%s/pagedmembers", url.PathEscape(conversationID.String())))

	query := url.Values{}
	if pageSize > 0 {
		query.Set("pageSize", fmt.Sprintf("%d", pageSize))
	}
	if continuationToken != "" {
		query.Set("continuationToken", continuationToken)
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var page model.PagedMembers
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateConversation starts a new conversation for proactive messaging
func (c *ConnectorClient) CreateConversation(ctx context.Context, serviceURL string, params *model.ConversationParameters) (types.ConversationID, error) {
	endpoint := joinServiceURL(serviceURL, "v3/conversations")

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, endpoint, params, &resp); err != nil {
		return "", err
	}
	return types.ConversationID(resp.ID), nil
}

func (c *ConnectorClient) do(ctx context.Context, method, endpoint string, payload, out any) error {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return goerr.Wrap(err, "failed to marshal connector payload")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return goerr.Wrap(err, "failed to create connector request", goerr.V("endpoint", endpoint))
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "connector request failed",
			goerr.T(model.ErrTagUpstream),
			goerr.V("endpoint", endpoint),
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return goerr.Wrap(err, "failed to read connector response", goerr.V("endpoint", endpoint))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return goerr.New("connector returned non-success status",
			goerr.T(model.ErrTagUpstream),
			goerr.V("endpoint", endpoint),
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
		)
	}

	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return goerr.Wrap(err, "failed to decode connector response", goerr.V("endpoint", endpoint))
		}
	}
	return nil
}

func joinServiceURL(serviceURL, path string) string {
	return strings.TrimRight(serviceURL, "/") + "/" + path
}
