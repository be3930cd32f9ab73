package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"

	teamsCtrl "github.com/ritik-wo/taskmate-ai-ms-teams/pkg/controller/teams"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/interfaces"
)

// defaultRunListLimit caps the broadcasts listing when no limit is given
const defaultRunListLimit = 20

// Server represents the HTTP server
type Server struct {
	*http.Server
	router       chi.Router
	teamsHandler *teamsCtrl.Handler
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	addr string,
	teamsHandler *teamsCtrl.Handler,
	repo interfaces.Repository,
) (*Server, error) {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	broadcastHandler := newBroadcastHandler(repo)

	router.Get("/", handleRoot)
	router.Get("/health", handleHealth)

	// Bot Framework webhook
	router.Post("/api/messages", teamsHandler.HandleMessages)

	// Tenant-wide card broadcast
	router.Post("/send-card", teamsHandler.HandleSendCard)

	// Broadcast run history
	router.Route("/api/broadcasts", func(r chi.Router) {
		r.Get("/", broadcastHandler.HandleList)
		r.Get("/{runID}", broadcastHandler.HandleGet)
	})

	server := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:       router,
		teamsHandler: teamsHandler,
	}

	return server, nil
}

// handleRoot confirms the process is up
func handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("Welcome to the Taskmate AI Teams Bot!")); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write root response", "error", err)
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "taskmate-teams-bot",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

// parseLimit reads the limit query parameter with a default
func parseLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultRunListLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return defaultRunListLimit
	}
	return limit
}
