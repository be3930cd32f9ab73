package botframework_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/service/botframework"
)

func TestConnectorSendToConversation(t *testing.T) {
	ctx := context.Background()

	var gotPath string
	var gotActivity model.Activity
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gt.Equal(t, http.MethodPost, r.Method)
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&gotActivity))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"activity-42"}`))
	}))
	defer server.Close()

	connector := botframework.NewConnectorClientWithHTTPClient(server.Client())

	activity := model.NewTextActivity("hello")
	id, err := connector.SendToConversation(ctx, server.URL, "19:conversation", activity)
	gt.NoError(t, err).Required()
	gt.Equal(t, "activity-42", id.String())
	gt.Equal(t, "/v3/conversations/19:conversation/activities", gotPath)
	gt.Equal(t, "hello", gotActivity.Text)
}

func TestConnectorUpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	type call struct {
		method string
		path   string
	}
	var calls []call
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, call{method: r.Method, path: r.URL.Path})
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	connector := botframework.NewConnectorClientWithHTTPClient(server.Client())

	gt.NoError(t, connector.UpdateActivity(ctx, server.URL, "19:conversation", "activity-1", model.NewTextActivity("edited")))
	gt.NoError(t, connector.DeleteActivity(ctx, server.URL, "19:conversation", "activity-1"))

	gt.Value(t, 2).Equal(len(calls)).Required()
	gt.Equal(t, http.MethodPut, calls[0].method)
	gt.Equal(t, "/v3/conversations/19:conversation/activities/activity-1", calls[0].path)
	gt.Equal(t, http.MethodDelete, calls[1].method)
	gt.Equal(t, "/v3/conversations/19:conversation/activities/activity-1", calls[1].path)
}

func TestConnectorPagedMembers(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, "/v3/conversations/19:conversation/pagedmembers", r.URL.Path)
		gt.Equal(t, "100", r.URL.Query().Get("pageSize"))

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("continuationToken") == "" {
			_, _ = w.Write([]byte(`{"continuationToken":"next","members":[{"id":"29:alice","name":"Alice"}]}`))
			return
		}
		gt.Equal(t, "next", r.URL.Query().Get("continuationToken"))
		_, _ = w.Write([]byte(`{"members":[{"id":"29:bob","name":"Bob"}]}`))
	}))
	defer server.Close()

	connector := botframework.NewConnectorClientWithHTTPClient(server.Client())

	page, err := connector.PagedMembers(ctx, server.URL, "19:conversation", "", 100)
	gt.NoError(t, err).Required()
	gt.Equal(t, "next", page.ContinuationToken)
	gt.Value(t, 1).Equal(len(page.Members)).Required()
	gt.Equal(t, "29:alice", page.Members[0].ID)

	page, err = connector.PagedMembers(ctx, server.URL, "19:conversation", "next", 100)
	gt.NoError(t, err).Required()
	gt.Equal(t, "", page.ContinuationToken)
	gt.Equal(t, "29:bob", page.Members[0].ID)
}

func TestConnectorCreateConversation(t *testing.T) {
	ctx := context.Background()

	var gotParams model.ConversationParameters
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, "/v3/conversations", r.URL.Path)
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&gotParams))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"19:new-conversation"}`))
	}))
	defer server.Close()

	connector := botframework.NewConnectorClientWithHTTPClient(server.Client())

	id, err := connector.CreateConversation(ctx, server.URL, &model.ConversationParameters{
		IsGroup:  false,
		Bot:      model.ChannelAccount{ID: "28:bot"},
		Members:  []model.ChannelAccount{{ID: "29:alice", Name: "Alice"}},
		TenantID: "tenant-1",
	})
	gt.NoError(t, err).Required()
	gt.Equal(t, "19:new-conversation", id.String())
	gt.Equal(t, "tenant-1", gotParams.TenantID)
	gt.Equal(t, "29:alice", gotParams.Members[0].ID)
}

func TestConnectorNonSuccessStatus(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	connector := botframework.NewConnectorClientWithHTTPClient(server.Client())

	_, err := connector.SendToConversation(ctx, server.URL, "19:conversation", model.NewTextActivity("hello"))
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagUpstream))
}

func TestConnectorTrailingSlashServiceURL(t *testing.T) {
	ctx := context.Background()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id":"a1"}`))
	}))
	defer server.Close()

	connector := botframework.NewConnectorClientWithHTTPClient(server.Client())

	_, err := connector.SendToConversation(ctx, server.URL+"/", "19:conversation", model.NewTextActivity("hello"))
	gt.NoError(t, err).Required()
	gt.Equal(t, "/v3/conversations/19:conversation/activities", gotPath)
}
