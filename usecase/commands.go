package usecase

import "github.com/fastygo/dashboard/domain"

// Command names.
const (
	CmdCreateTask = "task.create"
	CmdUpdateTask = "task.update"
	CmdDeleteTask = "task.delete"
	CmdDropTask   = "task.drop"

	CmdNoteNew     = "note.new"
	CmdNoteSelect  = "note.select"
	CmdNoteEdit    = "note.edit"
	CmdNoteChange  = "note.change"
	CmdNoteInsert  = "note.insert"
	CmdNotePreview = "note.preview"
	CmdNoteSave    = "note.save"
	CmdNoteCancel  = "note.cancel"
	CmdNoteDelete  = "note.delete"
	CmdNoteFilter  = "note.filter"

	CmdRegister      = "auth.register"
	CmdLogin         = "auth.login"
	CmdDemoLogin     = "auth.demo"
	CmdLogout        = "auth.logout"
	CmdUpdateProfile = "profile.update"

	CmdSetTheme      = "settings.theme"
	CmdToggleTheme   = "settings.theme.toggle"
	CmdExport        = "settings.export"
	CmdImport        = "settings.import"
	CmdDeleteAccount = "settings.delete_account"

	CmdDismissToast = "notify.dismiss"
)

// Query names.
const (
	QryBoard        = "task.board"
	QryTask         = "task.get"
	QryNotes        = "note.list"
	QryNoteEditor   = "note.editor"
	QryActivities   = "activity.recent"
	QrySession      = "auth.session"
	QryTheme        = "settings.theme"
	QryStats        = "analytics.stats"
	QryWeekly       = "analytics.weekly"
	QryDashboard    = "analytics.dashboard"
	QryNotification = "notify.active"
)

// UpdateTaskPayload carries a task form submitted for an existing task.
type UpdateTaskPayload struct {
	ID    string
	Input domain.TaskInput
}

// DropPayload is a card dropped on a column.
type DropPayload struct {
	TaskID string
	Target domain.Status
}

type LoginPayload struct {
	User     domain.User
	Remember bool
}
