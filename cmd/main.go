package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpadapter "mesa-budget/internal/adapter/http"
	"mesa-budget/internal/config"
)

// main is the entry point of mesa-budget. Without a subcommand it serves the
// HTTP API; `run` executes a single allocation run and exits.
func main() {
	root := &cobra.Command{
		Use:           "mesa-budget",
		Short:         "Profit-based ad budget allocation",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the HTTP API",
			Args:  cobra.NoArgs,
			RunE:  serve,
		},
		newRunCommand(),
	)

	if err := root.Execute(); err != nil {
		var ec exitCode
		if errors.As(err, &ec) {
			os.Exit(int(ec))
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// exitCode ends the process with the given status without printing.
type exitCode int

func (c exitCode) Error() string { return fmt.Sprintf("exit status %d", int(c)) }

// bootstrap loads configuration and the logger shared by all commands.
func bootstrap() (config.Config, *slog.Logger, error) {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, cfg.Log.NewLogger(os.Stdout), nil
}

// serve starts the HTTP server. On receiving a termination signal it
// gracefully shuts down the server. Background runs are not waited for.
func serve(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup error", slog.Any("error", err))
		return exitCode(1)
	}
	defer a.close()

	handler := httpadapter.NewHandler(a.svc, logger, a.metrics, a.metricsHandler())
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var code exitCode
	select {
	case value := <-quit:
		code = exitCode(128 + int(value.(syscall.Signal)))
	case err := <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		code = 1
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	return code
}
