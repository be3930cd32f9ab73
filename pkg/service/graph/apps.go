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

// EnsureAppInstalled installs the Teams app for the user unless the
// installed-apps listing already contains it. A user who already has the
// app gets no install POST at all.
func (s *Session) EnsureAppInstalled(ctx context.Context, userID types.UserID) error {
	appsURL := s.url(fmt.Sprintf("/users/%s/teamwork/installedApps?$expand=teamsApp", userID))

	status, body, err := s.request(ctx, http.MethodGet, appsURL, nil)
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		return goerr.New("failed to list installed apps",
			goerr.T(model.ErrTagUpstream),
			goerr.V("user", userID),
			goerr.V("status", status),
			goerr.V("body", string(body)),
		)
	}

	var page struct {
		Value []struct {
			TeamsApp struct {
				ID string `json:"id"`
			} `json:"teamsApp"`
		} `json:"value"`
	}
	if err := json.Unmarshal(body, &page); err != nil {
		return goerr.Wrap(err, "failed to decode installed apps",
			goerr.T(model.ErrTagUpstream),
			goerr.V("user", userID),
		)
	}

	for _, app := range page.Value {
		if app.TeamsApp.ID == s.client.teamsAppID.String() {
			return nil
		}
	}

	payload := map[string]any{
		"teamsApp@odata.bind": fmt.Sprintf("https://graph.microsoft.com/v1.0/appCatalogs/teamsApps/%s", s.client.teamsAppID),
	}
	status, body, err = s.request(ctx, http.MethodPost, appsURL, payload)
	if err != nil {
		return err
	}
	if !isSuccess(status) {
		return goerr.New("failed to install app for user",
			goerr.T(model.ErrTagUpstream),
			goerr.V("user", userID),
			goerr.V("status", status),
			goerr.V("body", string(body)),
		)
	}

	return nil
}
