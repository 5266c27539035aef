// Package main is the entry point for the dashboard server and its backup tools.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fastygo/dashboard/internal/app"
	"github.com/fastygo/dashboard/internal/config"
	"github.com/fastygo/dashboard/pkg/logger"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dashboard",
		Short:         "Personal productivity dashboard",
		Long:          "Serve the task board, notes editor and analytics API, or export and inspect backups.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newImportCmd())

	return cmd
}

// bootstrap loads config, builds the logger and the application container.
func bootstrap(ctx context.Context, logOut io.Writer) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
		App:      cfg.AppName,
		Output:   logOut,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	a, err := app.New(ctx, cfg, zapLogger, app.Options{})
	if err != nil {
		_ = zapLogger.Sync()
		return nil, fmt.Errorf("init: %w", err)
	}
	return a, nil
}

func shutdown(a *app.App) {
	if err := a.Shutdown(context.Background()); err != nil {
		a.Logger.Error("graceful shutdown error", zap.Error(err))
	}
	_ = a.Logger.Sync()
}
