package botframework

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/interfaces"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
)

// turnErrorText is the fixed apology sent to the user when turn processing
// fails
const turnErrorText = "The bot encountered an error or bug."

// TurnHandler processes one inbound activity
type TurnHandler interface {
	OnTurn(ctx context.Context, tc *TurnContext) error
}

// InvokeResponse is the envelope some activity types expect the webhook to
// relay back to the channel
type InvokeResponse struct {
	Status int `json:"status"`
	Body   any `json:"body,omitempty"`
}

// Adapter is the turn-processing entry point: it authenticates the inbound
// request, builds a turn context and runs the handler, converting handler
// failures into the user-facing error flow.
type Adapter struct {
	connector interfaces.Connector
	verifier  TokenVerifier
}

// NewAdapter creates an adapter. A nil verifier disables inbound
// authentication (emulator/local use only).
func NewAdapter(connector interfaces.Connector, verifier TokenVerifier) *Adapter {
	return &Adapter{
		connector: connector,
		verifier:  verifier,
	}
}

// ProcessActivity verifies the request, runs the handler and returns the
// response envelope to relay, if any
func (a *Adapter) ProcessActivity(ctx context.Context, activity *model.Activity, authHeader string, handler TurnHandler) (*InvokeResponse, error) {
	if a.verifier != nil {
		if err := a.verifier.Verify(ctx, authHeader); err != nil {
			return nil, goerr.Wrap(err, "channel authentication failed",
				goerr.T(model.ErrTagAuth),
			)
		}
	}

	tc := NewTurnContext(a.connector, activity)
	if err := handler.OnTurn(ctx, tc); err != nil {
		a.onTurnError(ctx, tc, err)
	}

	return nil, nil
}

// onTurnError logs the failure, apologizes to the user and, on the
// emulator channel, sends a trace activity with the error detail
func (a *Adapter) onTurnError(ctx context.Context, tc *TurnContext, turnErr error) {
	logger := ctxlog.From(ctx)
	logger.Error("Turn processing failed",
		"error", turnErr,
		"serviceURL", tc.Activity.ServiceURL,
		"channelID", tc.Activity.ChannelID,
		"conversationID", tc.Activity.Conversation.ID,
	)

	if _, err := tc.SendText(ctx, turnErrorText); err != nil {
		logger.Error("Failed to send turn error message", "error", err)
		return
	}

	if tc.Activity.ChannelID == model.ChannelIDEmulator {
		trace := model.NewTraceActivity(
			"TurnError",
			"on_turn_error Trace",
			"https://www.botframework.com/schemas/error",
			turnErr.Error(),
		)
		if _, err := tc.SendActivity(ctx, trace); err != nil {
			logger.Error("Failed to send trace activity", "error", err)
		}
	}
}
