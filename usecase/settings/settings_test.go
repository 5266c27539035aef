package settings

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/internal/infrastructure/memkv"
	"github.com/fastygo/dashboard/internal/testutil"
	"github.com/fastygo/dashboard/pkg/idgen"
	"github.com/fastygo/dashboard/repository/local"
	"github.com/fastygo/dashboard/repository/memory"
	"github.com/fastygo/dashboard/usecase/auth"
)

type fixture struct {
	uc       *UseCase
	auth     *auth.UseCase
	kv       *memkv.Store
	tasks    *memory.TaskStore
	notes    *memory.NoteStore
	notifier *testutil.Notifier
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	kv := memkv.New()
	clock := testutil.NewClock(time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC))
	tasks := memory.NewTaskStore(clock, idgen.NewSequence("task-"), nil)
	notes := memory.NewNoteStore(clock, idgen.NewSequence("note-"), nil)
	notifier := &testutil.Notifier{}
	gate := auth.New(local.NewSessionRepository(kv), nil, nil, nil)

	uc := New(Dependencies{
		Preferences: local.NewPreferenceRepository(kv),
		Tasks:       tasks,
		Notes:       notes,
		Storage:     kv,
		Session:     gate,
		Clock:       clock,
		Notifier:    notifier,
	}, nil)
	return fixture{uc: uc, auth: gate, kv: kv, tasks: tasks, notes: notes, notifier: notifier}
}

func TestTheme(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	theme, err := f.uc.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)

	theme, err = f.uc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
	assert.Equal(t, "Theme changed to light", f.notifier.Last().Message)

	raw, err := f.kv.Get(ctx, local.KeyTheme)
	require.NoError(t, err)
	assert.Equal(t, "light", string(raw))

	_, err = f.uc.SetTheme(ctx, "sepia")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.auth.Login(ctx, domain.User{Name: "Ada", Email: "ada@example.com"}, false)
	require.NoError(t, err)
	f.tasks.Add(domain.TaskInput{Title: "Ship release", Priority: domain.PriorityHigh, DueDate: domain.MustParseDate("2026-02-01")})
	f.notes.Add(domain.NoteInput{Title: "Plan", Category: domain.CategoryIdeas})

	file, err := f.uc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dashboard-backup-2026-01-20.json", file.Filename)
	assert.Contains(t, string(file.Body), "\n  \"tasks\": [")

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(file.Body, &decoded))
	assert.ElementsMatch(t, []string{"user", "tasks", "notes", "exportedAt"}, keys(decoded))
	assert.Len(t, file.Data.Tasks, 1)
	assert.Equal(t, "Ada", file.Data.User.Name)
}

func TestImport_ReportsWithoutMerging(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	payload := `{"user":{"name":"Ada"},"tasks":[{"id":"a"},{"id":"b"}],"notes":[{"id":"n"}],"exportedAt":"2026-01-19T10:00:00Z"}`
	report, err := f.uc.Import(ctx, []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, ImportReport{HasUser: true, Tasks: 2, Notes: 1, ExportedAt: "2026-01-19T10:00:00Z"}, report)
	assert.Empty(t, f.tasks.List())
	assert.Empty(t, f.notes.List())
	assert.Equal(t, "Data imported successfully!", f.notifier.Last().Message)
}

func TestImport_Invalid(t *testing.T) {
	ctx := context.Background()
	for name, payload := range map[string]string{
		"empty":     "",
		"not json":  "hello",
		"array":     "[1,2]",
		"truncated": `{"tasks":[`,
		"bad shape": `{"tasks":"many"}`,
	} {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.uc.Import(ctx, []byte(payload))
			require.ErrorIs(t, err, domain.ErrImportInvalid)
			assert.Equal(t, testutil.Toast{Kind: "error", Message: "Failed to import data. Invalid file format."}, f.notifier.Last())
		})
	}
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.auth.Register(ctx, auth.Registration{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	_, err = f.uc.SetTheme(ctx, domain.ThemeLight)
	require.NoError(t, err)
	require.Equal(t, 2, f.kv.Len())

	require.NoError(t, f.uc.DeleteAccount(ctx))
	assert.Zero(t, f.kv.Len())
	assert.False(t, f.auth.Authenticated())
}

func keys(m map[string]json.RawMessage) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
