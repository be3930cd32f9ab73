package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/cli/config"
	controller "github.com/ritik-wo/taskmate-ai-ms-teams/pkg/controller/http"
	teamsCtrl "github.com/ritik-wo/taskmate-ai-ms-teams/pkg/controller/teams"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		botCfg       config.Bot
		graphCfg     config.Graph
		broadcastCfg config.Broadcast
		firestoreCfg config.Firestore
	)

	flags := joinFlags(
		serverCfg.Flags(),
		botCfg.Flags(),
		graphCfg.Flags(),
		broadcastCfg.Flags(),
		firestoreCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting taskmate server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("bot", botCfg),
				slog.Any("graph", graphCfg),
				slog.Any("broadcast", broadcastCfg),
				slog.Any("firestore", firestoreCfg),
			)

			// Broadcast run store
			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			// Bot Framework adapter (channel auth + connector)
			adapter, err := botCfg.Configure(ctx)
			if err != nil {
				return err
			}

			cardTemplate, err := model.LoadCardTemplate(botCfg.CardTemplate)
			if err != nil {
				return goerr.Wrap(err, "failed to load card template")
			}

			graphClient := graphCfg.Configure(ctx, botCfg.AppID)

			// Use cases
			bot := usecase.NewConversation(cardTemplate)
			broadcastUC := usecase.NewBroadcast(graphClient, repo, broadcastCfg.Options()...)

			teamsHandler := teamsCtrl.NewHandler(ctx, adapter, bot, broadcastUC)

			server, err := controller.NewServer(ctx, serverCfg.Addr, teamsHandler, repo)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
