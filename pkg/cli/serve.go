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
	"github.com/reliefops/kestrel/pkg/cli/config"
	controller "github.com/reliefops/kestrel/pkg/controller/http"
	"github.com/reliefops/kestrel/pkg/repository"
	"github.com/reliefops/kestrel/pkg/service/feed"
	"github.com/reliefops/kestrel/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		feedCfg   config.Feed
	)

	flags := joinFlags(
		serverCfg.Flags(),
		feedCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the coordination console server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := feedCfg.Validate(); err != nil {
				return err
			}

			logger.Info("Starting kestrel server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("feed", feedCfg),
			)

			table, err := feedCfg.TypeTable()
			if err != nil {
				return err
			}

			repo := repository.NewMemory()
			feedClient := feed.New(feedCfg.BaseURL)

			console := usecase.NewConsole(repo, feedClient)
			poller := usecase.NewPoller(repo, feedClient, table, feedCfg.PollInterval, feedCfg.Limit)

			pollCtx, stopPoller := context.WithCancel(ctx)
			defer stopPoller()
			poller.Start(pollCtx)

			server, err := controller.NewServer(ctx, serverCfg.Addr, console, poller)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			stopPoller()

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
