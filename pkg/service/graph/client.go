package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/interfaces"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/types"
)

const (
	// DefaultBaseURL is the Microsoft Graph v1.0 endpoint
	DefaultBaseURL = "https://graph.microsoft.com/v1.0"

	// DefaultScope is the application-permission scope for client
	// credential tokens
	DefaultScope = "https://graph.microsoft.com/.default"
)

// Client opens authenticated sessions against Microsoft Graph
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      clientcredentials.Config
	botAppID   string
	teamsAppID types.TeamsAppID
}

var _ interfaces.GraphClient = &Client{}

// Option customizes the client, mainly for tests
type Option func(*Client)

// WithBaseURL overrides the Graph API endpoint
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTokenURL overrides the identity-provider token endpoint
func WithTokenURL(url string) Option {
	return func(c *Client) {
		c.creds.TokenURL = url
	}
}

// WithHTTPClient overrides the HTTP client used for Graph calls
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Graph client for the tenant. botAppID is the bot's Azure AD
// application ID (bound as the second chat member); teamsAppID is the Teams
// catalog app installed per user.
func New(tenantID, clientID, clientSecret, botAppID string, teamsAppID types.TeamsAppID, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		creds: clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", tenantID),
			Scopes:       []string{DefaultScope},
		},
		botAppID:   botAppID,
		teamsAppID: teamsAppID,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewSession exchanges the client credentials for a bearer token. The token
// is fetched once and held read-only for the session's lifetime; it is not
// refreshed mid-broadcast.
func (c *Client) NewSession(ctx context.Context) (interfaces.GraphSession, error) {
	token, err := c.creds.Token(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to acquire Graph token",
			goerr.T(model.ErrTagAuth),
			goerr.V("tokenURL", c.creds.TokenURL),
		)
	}
	if token.AccessToken == "" {
		return nil, goerr.New("identity provider returned no access token",
			goerr.T(model.ErrTagAuth),
		)
	}

	return &Session{client: c, token: token.AccessToken}, nil
}

// Session is one token's view of the Graph API
type Session struct {
	client *Client
	token  string
}

var _ interfaces.GraphSession = &Session{}

// request performs one Graph call and returns the status code with the raw
// response body. url may be absolute (continuation links come absolute) or
// a path relative to the base URL.
func (s *Session) request(ctx context.Context, method, url string, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, goerr.Wrap(err, "failed to marshal request payload")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return 0, nil, goerr.Wrap(err, "failed to create request", goerr.V("url", url))
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.httpClient.Do(req)
	if err != nil {
		return 0, nil, goerr.Wrap(err, "graph request failed",
			goerr.T(model.ErrTagUpstream),
			goerr.V("url", url),
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, goerr.Wrap(err, "failed to read graph response", goerr.V("url", url))
	}

	return resp.StatusCode, body, nil
}

func (s *Session) url(path string) string {
	return s.client.baseURL + path
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
