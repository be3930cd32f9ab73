package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/interfaces"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/types"
)

// broadcastHandler serves the broadcast run history
type broadcastHandler struct {
	repo interfaces.Repository
}

func newBroadcastHandler(repo interfaces.Repository) *broadcastHandler {
	return &broadcastHandler{repo: repo}
}

// HandleList returns recent broadcast runs, newest first
func (h *broadcastHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	runs, err := h.repo.ListBroadcastRuns(r.Context(), parseLimit(r))
	if err != nil {
		writeError(w, r.Context(), err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]any{
		"broadcasts": runs,
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode broadcasts response", "error", err)
	}
}

// HandleGet returns one broadcast run by ID
func (h *broadcastHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	runID := types.BroadcastID(chi.URLParam(r, "runID"))

	run, err := h.repo.GetBroadcastRun(r.Context(), runID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrBroadcastRunNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, r.Context(), err, status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(run); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode broadcast run", "error", err)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, ctx context.Context, err error, status int) {
	ctxlog.From(ctx).Error("HTTP request failed", "error", err, "status", status)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(map[string]string{
		"error": err.Error(),
	}); encErr != nil {
		ctxlog.From(ctx).Error("Failed to encode error response", "error", encErr)
	}
}
