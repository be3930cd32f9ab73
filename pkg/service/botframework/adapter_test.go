package botframework_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/interfaces/mocks"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/types"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/service/botframework"
)

type turnFunc func(ctx context.Context, tc *botframework.TurnContext) error

func (f turnFunc) OnTurn(ctx context.Context, tc *botframework.TurnContext) error {
	return f(ctx, tc)
}

func testActivity(channelID string) *model.Activity {
	return &model.Activity{
		Type:       model.ActivityTypeMessage,
		ID:         "activity-1",
		ChannelID:  channelID,
		ServiceURL: "https://smba.example.com/apis",
		From:       model.ChannelAccount{ID: "29:user", Name: "User"},
		Recipient:  model.ChannelAccount{ID: "28:bot", Name: "Bot"},
		Conversation: model.ConversationAccount{
			ID: "19:conversation",
		},
		Text: "hello",
	}
}

func TestAdapterRunsHandler(t *testing.T) {
	ctx := context.Background()
	connector := &mocks.ConnectorMock{}
	adapter := botframework.NewAdapter(connector, nil)

	var gotText string
	handler := turnFunc(func(ctx context.Context, tc *botframework.TurnContext) error {
		gotText = tc.Activity.Text
		return nil
	})

	resp, err := adapter.ProcessActivity(ctx, testActivity("msteams"), "", handler)
	gt.NoError(t, err).Required()
	gt.V(t, resp).Nil()
	gt.Equal(t, "hello", gotText)
}

func TestAdapterApologizesOnTurnError(t *testing.T) {
	ctx := context.Background()

	var sent []*model.Activity
	connector := &mocks.ConnectorMock{
		SendToConversationFunc: func(ctx context.Context, serviceURL string, conversationID types.ConversationID, activity *model.Activity) (types.ActivityID, error) {
			sent = append(sent, activity)
			return "sent-1", nil
		},
	}
	adapter := botframework.NewAdapter(connector, nil)

	handler := turnFunc(func(ctx context.Context, tc *botframework.TurnContext) error {
		return goerr.New("handler exploded")
	})

	// The turn error is handled, not propagated
	_, err := adapter.ProcessActivity(ctx, testActivity("msteams"), "", handler)
	gt.NoError(t, err).Required()

	gt.Value(t, 1).Equal(len(sent)).Required()
	gt.Equal(t, "The bot encountered an error or bug.", sent[0].Text)
}

func TestAdapterSendsTraceOnEmulator(t *testing.T) {
	ctx := context.Background()

	var sent []*model.Activity
	connector := &mocks.ConnectorMock{
		SendToConversationFunc: func(ctx context.Context, serviceURL string, conversationID types.ConversationID, activity *model.Activity) (types.ActivityID, error) {
			sent = append(sent, activity)
			return "sent-1", nil
		},
	}
	adapter := botframework.NewAdapter(connector, nil)

	handler := turnFunc(func(ctx context.Context, tc *botframework.TurnContext) error {
		return goerr.New("handler exploded")
	})

	_, err := adapter.ProcessActivity(ctx, testActivity(model.ChannelIDEmulator), "", handler)
	gt.NoError(t, err).Required()

	gt.Value(t, 2).Equal(len(sent)).Required()
	gt.Equal(t, "The bot encountered an error or bug.", sent[0].Text)

	trace := sent[1]
	gt.Equal(t, model.ActivityTypeTrace, trace.Type)
	gt.Equal(t, "TurnError", trace.Label)
	gt.Equal(t, "https://www.botframework.com/schemas/error", trace.ValueType)
}

func TestAdapterRejectsUnauthenticatedRequest(t *testing.T) {
	ctx := context.Background()
	verifier, _ := newTestVerifier(t, ctx, "bot-app-id")

	connector := &mocks.ConnectorMock{}
	adapter := botframework.NewAdapter(connector, verifier)

	handlerCalled := false
	handler := turnFunc(func(ctx context.Context, tc *botframework.TurnContext) error {
		handlerCalled = true
		return nil
	})

	_, err := adapter.ProcessActivity(ctx, testActivity("msteams"), "", handler)
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagAuth))
	gt.B(t, handlerCalled).False()
}

// newTestVerifier builds a verifier against a local JWKS endpoint and
// returns the signing key for minting channel tokens
func newTestVerifier(t *testing.T, ctx context.Context, appID string) (*botframework.JWTVerifier, jwk.Key) {
	raw, err := rsa.GenerateKey(rand.Reader, 2048)
	gt.NoError(t, err).Required()

	key, err := jwk.FromRaw(raw)
	gt.NoError(t, err).Required()
	gt.NoError(t, key.Set(jwk.KeyIDKey, "test-key")).Required()
	gt.NoError(t, key.Set(jwk.AlgorithmKey, jwa.RS256)).Required()

	public, err := key.PublicKey()
	gt.NoError(t, err).Required()
	set := jwk.NewSet()
	gt.NoError(t, set.AddKey(public)).Required()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		buf, err := json.Marshal(set)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write(buf)
	}))
	t.Cleanup(server.Close)

	verifier, err := botframework.NewJWTVerifier(ctx, appID, botframework.WithJWKSURL(server.URL))
	gt.NoError(t, err).Required()

	return verifier, key
}

func mintToken(t *testing.T, key jwk.Key, issuer, audience string) string {
	token, err := jwt.NewBuilder().
		Issuer(issuer).
		Audience([]string{audience}).
		IssuedAt(time.Now()).
		Expiration(time.Now().Add(time.Hour)).
		Build()
	gt.NoError(t, err).Required()

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.RS256, key))
	gt.NoError(t, err).Required()
	return string(signed)
}

func TestJWTVerifier(t *testing.T) {
	ctx := context.Background()
	verifier, key := newTestVerifier(t, ctx, "bot-app-id")

	t.Run("valid token", func(t *testing.T) {
		token := mintToken(t, key, "https://api.botframework.com", "bot-app-id")
		gt.NoError(t, verifier.Verify(ctx, "Bearer "+token))
	})

	t.Run("missing bearer prefix", func(t *testing.T) {
		err := verifier.Verify(ctx, "Basic abc")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagAuth))
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token := mintToken(t, key, "https://evil.example.com", "bot-app-id")
		err := verifier.Verify(ctx, "Bearer "+token)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagAuth))
	})

	t.Run("wrong audience", func(t *testing.T) {
		token := mintToken(t, key, "https://api.botframework.com", "another-app")
		err := verifier.Verify(ctx, "Bearer "+token)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagAuth))
	})
}

func TestTurnContextAddressing(t *testing.T) {
	ctx := context.Background()

	var sent *model.Activity
	var sentConversation types.ConversationID
	connector := &mocks.ConnectorMock{
		SendToConversationFunc: func(ctx context.Context, serviceURL string, conversationID types.ConversationID, activity *model.Activity) (types.ActivityID, error) {
			sent = activity
			sentConversation = conversationID
			return "sent-1", nil
		},
	}

	tc := botframework.NewTurnContext(connector, testActivity("msteams"))
	id, err := tc.SendText(ctx, "reply")
	gt.NoError(t, err).Required()
	gt.Equal(t, "sent-1", id.String())

	gt.Equal(t, types.ConversationID("19:conversation"), sentConversation)
	gt.Equal(t, "28:bot", sent.From.ID)
	gt.Equal(t, "29:user", sent.Recipient.ID)
	gt.Equal(t, "https://smba.example.com/apis", sent.ServiceURL)
	gt.Equal(t, "msteams", sent.ChannelID)
	gt.Equal(t, "activity-1", sent.ReplyToID)
}

func TestTurnContextMembersPagination(t *testing.T) {
	ctx := context.Background()

	connector := &mocks.ConnectorMock{
		PagedMembersFunc: func(ctx context.Context, serviceURL string, conversationID types.ConversationID, continuationToken string, pageSize int) (*model.PagedMembers, error) {
			if continuationToken == "" {
				return &model.PagedMembers{
					ContinuationToken: "page-2",
					Members:           []model.TeamsMember{{ID: "29:alice", Name: "Alice"}},
				}, nil
			}
			return &model.PagedMembers{
				Members: []model.TeamsMember{{ID: "29:bob", Name: "Bob"}},
			}, nil
		},
	}

	tc := botframework.NewTurnContext(connector, testActivity("msteams"))
	members, err := tc.Members(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, 2).Equal(len(members)).Required()
	gt.Equal(t, "29:alice", members[0].ID)
	gt.Equal(t, "29:bob", members[1].ID)
	gt.Equal(t, 2, len(connector.PagedMembersCalls()))
}

func TestTurnContextGetMemberNotFound(t *testing.T) {
	ctx := context.Background()

	connector := &mocks.ConnectorMock{
		PagedMembersFunc: func(ctx context.Context, serviceURL string, conversationID types.ConversationID, continuationToken string, pageSize int) (*model.PagedMembers, error) {
			return &model.PagedMembers{}, nil
		},
	}

	tc := botframework.NewTurnContext(connector, testActivity("msteams"))
	_, err := tc.GetMember(ctx, "29:nobody")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, model.ErrMemberNotFound))
}
