package config

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/service/botframework"
)

// Bot holds Bot Framework channel configuration
type Bot struct {
	AppID        string
	AppPassword  string
	CardTemplate string
}

// Flags returns CLI flags for Bot configuration. The MicrosoftAppId and
// MicrosoftAppPassword env vars are honored for parity with the Azure bot
// service conventions.
func (b *Bot) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bot-app-id",
			Usage:       "Bot Framework application ID",
			Category:    "Bot",
			Sources:     cli.EnvVars("TASKMATE_APP_ID", "MicrosoftAppId"),
			Destination: &b.AppID,
		},
		&cli.StringFlag{
			Name:        "bot-app-password",
			Usage:       "Bot Framework application password",
			Category:    "Bot",
			Sources:     cli.EnvVars("TASKMATE_APP_PASSWORD", "MicrosoftAppPassword"),
			Destination: &b.AppPassword,
		},
		&cli.StringFlag{
			Name:        "card-template",
			Usage:       "Path to the user mention Adaptive Card template",
			Category:    "Bot",
			Value:       "resources/UserMentionCardTemplate.json",
			Sources:     cli.EnvVars("TASKMATE_CARD_TEMPLATE"),
			Destination: &b.CardTemplate,
		},
	}
}

// Configure creates the Bot Framework adapter. Without app credentials the
// adapter skips inbound token verification and uses a generated app ID;
// that mode is for the emulator only.
func (b *Bot) Configure(ctx context.Context) (*botframework.Adapter, error) {
	logger := ctxlog.From(ctx)

	connector := botframework.NewConnectorClient(ctx, b.AppID, b.AppPassword)

	if b.AppID == "" {
		b.AppID = uuid.New().String()
		logger.Warn("No bot app ID configured - channel authentication disabled, emulator use only",
			"generatedAppID", b.AppID,
		)
		return botframework.NewAdapter(connector, nil), nil
	}

	verifier, err := botframework.NewJWTVerifier(ctx, b.AppID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create channel token verifier")
	}

	return botframework.NewAdapter(connector, verifier), nil
}

// LogValue returns structured log value
func (b Bot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_app_id", b.AppID != ""),
		slog.Bool("has_app_password", b.AppPassword != ""),
		slog.String("card_template", b.CardTemplate),
	)
}
