package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/types"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/service/graph"
)

// Graph holds Microsoft Graph configuration for the broadcast path
type Graph struct {
	TenantID     string
	ClientID     string
	ClientSecret string
	TeamsAppID   string
}

// Flags returns CLI flags for Graph configuration
func (g *Graph) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "graph-tenant-id",
			Usage:       "Azure AD tenant ID",
			Category:    "Graph",
			Sources:     cli.EnvVars("TASKMATE_TENANT_ID"),
			Destination: &g.TenantID,
		},
		&cli.StringFlag{
			Name:        "graph-client-id",
			Usage:       "Azure AD application (client) ID for Graph",
			Category:    "Graph",
			Sources:     cli.EnvVars("TASKMATE_CLIENT_ID"),
			Destination: &g.ClientID,
		},
		&cli.StringFlag{
			Name:        "graph-client-secret",
			Usage:       "Azure AD client secret for Graph",
			Category:    "Graph",
			Sources:     cli.EnvVars("TASKMATE_CLIENT_SECRET"),
			Destination: &g.ClientSecret,
		},
		&cli.StringFlag{
			Name:        "teams-app-id",
			Usage:       "Teams catalog app ID installed per user",
			Category:    "Graph",
			Sources:     cli.EnvVars("TASKMATE_TEAMS_APP_ID"),
			Destination: &g.TeamsAppID,
		},
	}
}

// Configure creates the Graph client. botAppID is the bot's application ID,
// bound as the second member when creating 1:1 chats. An unconfigured
// Graph section still yields a client; broadcast calls will then fail with
// auth errors at run time.
func (g *Graph) Configure(ctx context.Context, botAppID string) *graph.Client {
	if !g.IsConfigured() {
		ctxlog.From(ctx).Warn("Graph not configured - the /send-card endpoint will fail until it is")
	}

	return graph.New(g.TenantID, g.ClientID, g.ClientSecret, botAppID, types.TeamsAppID(g.TeamsAppID))
}

// IsConfigured checks if Graph is fully configured
func (g *Graph) IsConfigured() bool {
	return g.TenantID != "" && g.ClientID != "" && g.ClientSecret != "" && g.TeamsAppID != ""
}

// LogValue returns structured log value
func (g Graph) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_tenant_id", g.TenantID != ""),
		slog.Bool("has_client_id", g.ClientID != ""),
		slog.Bool("has_client_secret", g.ClientSecret != ""),
		slog.Bool("has_teams_app_id", g.TeamsAppID != ""),
	)
}
