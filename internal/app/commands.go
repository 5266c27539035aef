package app

import (
	"context"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/internal/services/notify"
	"github.com/fastygo/dashboard/usecase"
	"github.com/fastygo/dashboard/usecase/analytics"
	"github.com/fastygo/dashboard/usecase/kanban"
	"github.com/fastygo/dashboard/usecase/notes"
	"github.com/fastygo/dashboard/usecase/settings"
)

// none is the payload of commands and queries that take no input.
type none = struct{}

func (a *App) registerCommands() {
	d := a.Dispatcher

	d.RegisterCommand(usecase.CmdCreateTask, usecase.Handle(func(ctx context.Context, in domain.TaskInput) (domain.Task, error) {
		return a.Kanban.CreateTask(ctx, in), nil
	}))
	d.RegisterCommand(usecase.CmdUpdateTask, usecase.Handle(func(ctx context.Context, p usecase.UpdateTaskPayload) (domain.Task, error) {
		task, ok := a.Kanban.UpdateTask(ctx, p.ID, p.Input)
		if !ok {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return task, nil
	}))
	d.RegisterCommand(usecase.CmdDeleteTask, usecase.Handle(func(ctx context.Context, id string) (bool, error) {
		return a.Kanban.DeleteTask(ctx, id), nil
	}))
	d.RegisterCommand(usecase.CmdDropTask, usecase.Handle(func(ctx context.Context, p usecase.DropPayload) (kanban.DropResult, error) {
		return a.Kanban.HandleDrop(ctx, p.TaskID, p.Target)
	}))

	d.RegisterCommand(usecase.CmdNoteNew, usecase.Handle(func(ctx context.Context, _ none) (notes.State, error) {
		return a.Editor.New(ctx), nil
	}))
	d.RegisterCommand(usecase.CmdNoteSelect, usecase.Handle(func(ctx context.Context, id string) (notes.State, error) {
		st, ok := a.Editor.Select(ctx, id)
		if !ok {
			return st, domain.ErrNoteNotFound
		}
		return st, nil
	}))
	d.RegisterCommand(usecase.CmdNoteEdit, usecase.Handle(func(ctx context.Context, _ none) (notes.State, error) {
		return a.Editor.Edit(ctx)
	}))
	d.RegisterCommand(usecase.CmdNoteChange, usecase.Handle(func(ctx context.Context, p notes.DraftPatch) (notes.State, error) {
		return a.Editor.Change(ctx, p), nil
	}))
	d.RegisterCommand(usecase.CmdNoteInsert, usecase.Handle(func(ctx context.Context, syntax string) (notes.State, error) {
		return a.Editor.InsertSyntax(ctx, syntax), nil
	}))
	d.RegisterCommand(usecase.CmdNotePreview, usecase.Handle(func(ctx context.Context, _ none) (notes.State, error) {
		return a.Editor.TogglePreview(ctx), nil
	}))
	d.RegisterCommand(usecase.CmdNoteSave, usecase.Handle(func(ctx context.Context, _ none) (domain.Note, error) {
		return a.Editor.Save(ctx)
	}))
	d.RegisterCommand(usecase.CmdNoteCancel, usecase.Handle(func(ctx context.Context, _ none) (notes.State, error) {
		return a.Editor.Cancel(ctx), nil
	}))
	d.RegisterCommand(usecase.CmdNoteDelete, usecase.Handle(func(ctx context.Context, id string) (bool, error) {
		return a.Editor.Delete(ctx, id), nil
	}))
	d.RegisterCommand(usecase.CmdNoteFilter, usecase.Handle(func(ctx context.Context, f notes.Filter) (notes.State, error) {
		return a.Editor.SetFilter(ctx, f), nil
	}))

	d.RegisterCommand(usecase.CmdRegister, usecase.Handle(a.Auth.Register))
	d.RegisterCommand(usecase.CmdLogin, usecase.Handle(func(ctx context.Context, p usecase.LoginPayload) (domain.Session, error) {
		return a.Auth.Login(ctx, p.User, p.Remember)
	}))
	d.RegisterCommand(usecase.CmdDemoLogin, usecase.Handle(func(ctx context.Context, _ none) (domain.Session, error) {
		return a.Auth.DemoLogin(ctx)
	}))
	d.RegisterCommand(usecase.CmdLogout, usecase.Handle(func(ctx context.Context, _ none) (domain.Session, error) {
		return domain.Anonymous(), a.Auth.Logout(ctx)
	}))
	d.RegisterCommand(usecase.CmdUpdateProfile, usecase.Handle(a.Auth.UpdateProfile))

	d.RegisterCommand(usecase.CmdSetTheme, usecase.Handle(a.Settings.SetTheme))
	d.RegisterCommand(usecase.CmdToggleTheme, usecase.Handle(func(ctx context.Context, _ none) (domain.Theme, error) {
		return a.Settings.ToggleTheme(ctx)
	}))
	d.RegisterCommand(usecase.CmdExport, usecase.Handle(func(ctx context.Context, _ none) (settings.ExportFile, error) {
		return a.Settings.Export(ctx)
	}))
	d.RegisterCommand(usecase.CmdImport, usecase.Handle(a.Settings.Import))
	d.RegisterCommand(usecase.CmdDeleteAccount, usecase.Handle(func(ctx context.Context, _ none) (bool, error) {
		if err := a.Settings.DeleteAccount(ctx); err != nil {
			return false, err
		}
		return true, nil
	}))

	d.RegisterCommand(usecase.CmdDismissToast, usecase.Handle(func(_ context.Context, id string) (bool, error) {
		a.Toasts.Dismiss(id)
		return true, nil
	}))
}

func (a *App) registerQueries() {
	d := a.Dispatcher

	d.RegisterQuery(usecase.QryBoard, usecase.Ask(func(ctx context.Context, f kanban.BoardFilter) (kanban.Board, error) {
		return a.Kanban.Board(ctx, f), nil
	}))
	d.RegisterQuery(usecase.QryTask, usecase.Ask(func(ctx context.Context, id string) (domain.Task, error) {
		task, ok := a.Kanban.GetTask(ctx, id)
		if !ok {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return task, nil
	}))
	d.RegisterQuery(usecase.QryNotes, usecase.Ask(func(ctx context.Context, _ none) ([]notes.View, error) {
		return notes.Views(a.Editor.Visible(ctx), a.clock.Now()), nil
	}))
	d.RegisterQuery(usecase.QryNoteEditor, usecase.Ask(func(ctx context.Context, _ none) (notes.State, error) {
		return a.Editor.State(ctx), nil
	}))
	d.RegisterQuery(usecase.QryActivities, usecase.Ask(func(ctx context.Context, limit int) ([]analytics.ActivityView, error) {
		return a.Analytics.Activities(ctx, limit), nil
	}))
	d.RegisterQuery(usecase.QrySession, usecase.Ask(func(_ context.Context, _ none) (domain.Session, error) {
		return a.Auth.Current(), nil
	}))
	d.RegisterQuery(usecase.QryTheme, usecase.Ask(func(ctx context.Context, _ none) (domain.Theme, error) {
		return a.Settings.Theme(ctx)
	}))
	d.RegisterQuery(usecase.QryStats, usecase.Ask(func(ctx context.Context, _ none) (analytics.Stats, error) {
		return a.Analytics.Stats(ctx), nil
	}))
	d.RegisterQuery(usecase.QryWeekly, usecase.Ask(func(ctx context.Context, _ none) ([]analytics.DayCount, error) {
		return a.Analytics.Weekly(ctx), nil
	}))
	d.RegisterQuery(usecase.QryDashboard, usecase.Ask(func(ctx context.Context, _ none) (analytics.Dashboard, error) {
		return a.Analytics.Dashboard(ctx), nil
	}))
	d.RegisterQuery(usecase.QryNotification, usecase.Ask(func(_ context.Context, _ none) ([]notify.Toast, error) {
		return a.Toasts.Active(), nil
	}))
}
