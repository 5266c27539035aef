package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/dashboard/api/handler"
)

type Handlers struct {
	Auth          *apiHandler.AuthHandler
	Profile       *apiHandler.ProfileHandler
	Task          *apiHandler.TaskHandler
	Note          *apiHandler.NoteHandler
	Dashboard     *apiHandler.DashboardHandler
	Settings      *apiHandler.SettingsHandler
	Notifications *apiHandler.NotificationHandler
	Health        *apiHandler.HealthHandler
	// Metrics is mounted at /metrics when set.
	Metrics fasthttp.RequestHandler
}

func New(handlers Handlers, requireSession func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)
	if handlers.Metrics != nil {
		r.GET("/metrics", handlers.Metrics)
	}

	// Public routes
	r.POST("/api/v1/auth/register", handlers.Auth.Register)
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/demo", handlers.Auth.Demo)
	r.POST("/api/v1/auth/logout", handlers.Auth.Logout)
	r.GET("/api/v1/auth/session", handlers.Auth.Session)
	r.GET("/api/v1/settings/theme", handlers.Settings.Theme)
	r.PUT("/api/v1/settings/theme", handlers.Settings.SetTheme)
	r.POST("/api/v1/settings/theme/toggle", handlers.Settings.ToggleTheme)
	r.GET("/api/v1/notifications", handlers.Notifications.List)
	r.DELETE("/api/v1/notifications/{id}", handlers.Notifications.Dismiss)

	// Protected routes
	api := r.Group("/api/v1")
	protect := func(method, path string, h fasthttp.RequestHandler) {
		api.Handle(method, path, requireSession(h))
	}

	protect(fasthttp.MethodGet, "/profile", handlers.Profile.GetProfile)
	protect(fasthttp.MethodPut, "/profile", handlers.Profile.UpdateProfile)

	protect(fasthttp.MethodGet, "/tasks", handlers.Task.Board)
	protect(fasthttp.MethodPost, "/tasks", handlers.Task.CreateTask)
	protect(fasthttp.MethodGet, "/tasks/{id}", handlers.Task.GetTask)
	protect(fasthttp.MethodPut, "/tasks/{id}", handlers.Task.UpdateTask)
	protect(fasthttp.MethodDelete, "/tasks/{id}", handlers.Task.DeleteTask)
	protect(fasthttp.MethodPost, "/tasks/{id}/drop", handlers.Task.Drop)

	protect(fasthttp.MethodGet, "/notes", handlers.Note.List)
	protect(fasthttp.MethodDelete, "/notes/{id}", handlers.Note.Delete)
	protect(fasthttp.MethodPost, "/notes/{id}/select", handlers.Note.Select)
	protect(fasthttp.MethodGet, "/editor", handlers.Note.Editor)
	protect(fasthttp.MethodPost, "/editor/new", handlers.Note.New)
	protect(fasthttp.MethodPost, "/editor/edit", handlers.Note.Edit)
	protect(fasthttp.MethodPatch, "/editor/draft", handlers.Note.Change)
	protect(fasthttp.MethodPost, "/editor/insert", handlers.Note.Insert)
	protect(fasthttp.MethodPost, "/editor/preview", handlers.Note.Preview)
	protect(fasthttp.MethodPost, "/editor/save", handlers.Note.Save)
	protect(fasthttp.MethodPost, "/editor/cancel", handlers.Note.Cancel)
	protect(fasthttp.MethodPut, "/editor/filter", handlers.Note.Filter)

	protect(fasthttp.MethodGet, "/dashboard", handlers.Dashboard.Dashboard)
	protect(fasthttp.MethodGet, "/analytics/stats", handlers.Dashboard.Stats)
	protect(fasthttp.MethodGet, "/analytics/weekly", handlers.Dashboard.Weekly)
	protect(fasthttp.MethodGet, "/activity", handlers.Dashboard.Activity)

	protect(fasthttp.MethodGet, "/settings/export", handlers.Settings.Export)
	protect(fasthttp.MethodPost, "/settings/import", handlers.Settings.Import)
	protect(fasthttp.MethodDelete, "/account", handlers.Settings.DeleteAccount)

	return r
}
