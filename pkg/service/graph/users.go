package graph

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
)

// ListUsers pages through the tenant directory, following the server's
// continuation link until none remains. A failure on any page aborts the
// whole listing; no partial user set is returned.
func (s *Session) ListUsers(ctx context.Context) ([]*model.User, error) {
	var users []*model.User

	url := s.url("/users?$select=id,displayName,mail,userPrincipalName")
	for url != "" {
		status, body, err := s.request(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		if !isSuccess(status) {
			return nil, goerr.New("failed to list directory users",
				goerr.T(model.ErrTagUpstream),
				goerr.V("status", status),
				goerr.V("body", string(body)),
			)
		}

		var page struct {
			Value    []*model.User `json:"value"`
			NextLink string        `json:"@odata.nextLink"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, goerr.Wrap(err, "failed to decode users page",
				goerr.T(model.ErrTagUpstream),
			)
		}

		users = append(users, page.Value...)
		url = page.NextLink
	}

	return users, nil
}
