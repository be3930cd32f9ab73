package teams

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/service/botframework"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/usecase"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/utils/apperr"
)

// ActivityProcessor is the adapter's turn-processing entry point
type ActivityProcessor interface {
	ProcessActivity(ctx context.Context, activity *model.Activity, authHeader string, handler botframework.TurnHandler) (*botframework.InvokeResponse, error)
}

// Handler handles the Teams-facing HTTP endpoints: the bot webhook and the
// broadcast trigger
type Handler struct {
	processor   ActivityProcessor
	bot         botframework.TurnHandler
	broadcaster usecase.Broadcaster
}

// NewHandler creates a new Teams handler
func NewHandler(ctx context.Context, processor ActivityProcessor, bot botframework.TurnHandler, broadcaster usecase.Broadcaster) *Handler {
	return &Handler{
		processor:   processor,
		bot:         bot,
		broadcaster: broadcaster,
	}
}

// HandleMessages receives one Bot Framework activity and relays whatever
// response envelope the adapter produces, or a bare 200
func (h *Handler) HandleMessages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// The content-type guard runs before the adapter sees anything
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		ctxlog.From(ctx).Warn("Unsupported content type", "contentType", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusUnsupportedMediaType)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, ctx, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var activity model.Activity
	if err := json.Unmarshal(body, &activity); err != nil {
		h.writeError(w, ctx, goerr.Wrap(err, "failed to parse activity"), http.StatusBadRequest)
		return
	}

	authHeader := r.Header.Get("Authorization")

	resp, err := h.processor.ProcessActivity(ctx, &activity, authHeader, h.bot)
	if err != nil {
		status := http.StatusInternalServerError
		if goerr.HasTag(err, model.ErrTagAuth) {
			status = http.StatusUnauthorized
		}
		h.writeError(w, ctx, err, status)
		return
	}

	if resp != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(resp.Status)
		if err := json.NewEncoder(w).Encode(resp.Body); err != nil {
			ctxlog.From(ctx).Error("Failed to encode invoke response", "error", err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleSendCard broadcasts the posted Adaptive Card to every tenant user
// and returns the per-user results
func (h *Handler) HandleSendCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	card, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, ctx, goerr.Wrap(err, "failed to read card payload"), http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	// The card document is opaque; only well-formedness is checked
	if !json.Valid(card) {
		h.writeError(w, ctx, goerr.New("card payload is not valid JSON"), http.StatusBadRequest)
		return
	}

	results, err := h.broadcaster.Broadcast(ctx, card)
	if err != nil {
		h.writeError(w, ctx, goerr.Wrap(err, "broadcast failed"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]any{
		"results": results,
	}); err != nil {
		ctxlog.From(ctx).Error("Failed to encode broadcast results", "error", err)
	}
}

// writeError logs the failure and writes a JSON error response
func (h *Handler) writeError(w http.ResponseWriter, ctx context.Context, err error, status int) {
	apperr.Handle(ctx, err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(map[string]string{
		"error": err.Error(),
	}); encErr != nil {
		ctxlog.From(ctx).Error("Failed to encode error response", "error", encErr)
	}
}
