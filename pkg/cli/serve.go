package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/rubyjane88/genai-maturity-explorer/pkg/cli/config"
	httpctrl "github.com/rubyjane88/genai-maturity-explorer/pkg/controller/http"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/repository/memory"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/service/worker"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/usecase"
	"github.com/rubyjane88/genai-maturity-explorer/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var sentryDSN string
	var sessionTTL time.Duration
	var datasetCfg config.Dataset

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("MATURITY_EXPLORER_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "session-ttl",
			Usage:       "Idle time after which a dashboard session is removed",
			Value:       time.Hour,
			Sources:     cli.EnvVars("MATURITY_EXPLORER_SESSION_TTL"),
			Destination: &sessionTTL,
		},
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for error reporting (disabled when empty)",
			Sources:     cli.EnvVars("MATURITY_EXPLORER_SENTRY_DSN"),
			Destination: &sentryDSN,
		},
	}
	flags = append(flags, datasetCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if sentryDSN != "" {
				if err := sentry.Init(sentry.ClientOptions{
					Dsn:     sentryDSN,
					Release: c.Root().Version,
				}); err != nil {
					return goerr.Wrap(err, "failed to initialize sentry")
				}
				defer sentry.Flush(2 * time.Second)
				logging.Default().Info("Sentry error reporting enabled")
			}

			dataset, err := datasetCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load dataset")
			}

			repo := memory.New()
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			uc := usecase.New(repo, dataset)

			sweeper := worker.NewSessionSweeper(repo, sessionTTL, 10*time.Minute)
			if err := sweeper.Start(ctx); err != nil {
				return goerr.Wrap(err, "failed to start session sweeper")
			}
			defer sweeper.Stop()

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc, httpctrl.WithVersion(c.Root().Version)),
				ReadHeaderTimeout: 30 * time.Second,
			}

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			eg, ctx := errgroup.WithContext(ctx)
			eg.Go(func() error {
				logging.Default().Info("Starting HTTP server",
					"addr", addr,
					"dataset", &datasetCfg,
				)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return goerr.Wrap(err, "failed to start server")
				}
				return nil
			})
			eg.Go(func() error {
				<-ctx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
				logging.Default().Info("Server shutdown completed")
				return nil
			})

			return eg.Wait()
		},
	}
}
