package main

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/dashboard/api/handler"
	"github.com/fastygo/dashboard/internal/app"
	"github.com/fastygo/dashboard/internal/middleware"
	"github.com/fastygo/dashboard/internal/router"
	"github.com/fastygo/dashboard/pkg/httpcontext"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer shutdown(a)

			appCtx, stop := a.Lifecycle.WatchSignals(cmd.Context())
			defer stop()
			a.Start()

			server := &fasthttp.Server{
				Handler:      newHandler(a),
				ReadTimeout:  a.Config.HTTP.ReadTimeout,
				WriteTimeout: a.Config.HTTP.WriteTimeout,
				IdleTimeout:  a.Config.HTTP.IdleTimeout,
				Name:         a.Config.AppName,
			}

			serveErr := make(chan error, 1)
			go func() {
				a.Logger.Info("server started", zap.String("address", a.Config.Address()))
				serveErr <- server.ListenAndServe(a.Config.Address())
			}()

			a.Lifecycle.Register("http_server", func(ctx context.Context) error {
				return server.ShutdownWithContext(ctx)
			})

			select {
			case <-appCtx.Done():
				return nil
			case err := <-serveErr:
				a.Logger.Error("server crashed", zap.Error(err))
				return err
			}
		},
	}
}

func newHandler(a *app.App) fasthttp.RequestHandler {
	ctxAdapter := httpcontext.NewAdapter(a.Config.Context.RequestTimeout)
	log := a.Logger.Named("http")

	handlers := router.Handlers{
		Auth:          apiHandler.NewAuthHandler(a.Dispatcher, ctxAdapter, log),
		Profile:       apiHandler.NewProfileHandler(a.Dispatcher, ctxAdapter, log),
		Task:          apiHandler.NewTaskHandler(a.Dispatcher, ctxAdapter, log),
		Note:          apiHandler.NewNoteHandler(a.Dispatcher, ctxAdapter, log),
		Dashboard:     apiHandler.NewDashboardHandler(a.Dispatcher, ctxAdapter, log),
		Settings:      apiHandler.NewSettingsHandler(a.Dispatcher, ctxAdapter, log),
		Notifications: apiHandler.NewNotificationHandler(a.Dispatcher, ctxAdapter, log),
		Health:        apiHandler.NewHealthHandler(a.Monitor, ctxAdapter, log),
	}
	if a.Config.HTTP.EnableMetrics {
		handlers.Metrics = a.Metrics.Handler()
	}

	return router.New(handlers, middleware.RequireSession(a.Auth, log)).Handler
}
