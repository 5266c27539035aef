package notes

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/internal/testutil"
	"github.com/fastygo/dashboard/pkg/idgen"
	"github.com/fastygo/dashboard/repository/memory"
)

type fixture struct {
	editor   *Editor
	notes    *memory.NoteStore
	activity *memory.ActivityStore
	clock    *testutil.Clock
	notifier *testutil.Notifier
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	clock := testutil.NewClock(time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC))
	notes := memory.NewNoteStore(clock, idgen.NewSequence("note-"), nil)
	activity := memory.NewActivityStore(clock, idgen.NewSequence("act-"), 0)
	notifier := &testutil.Notifier{}
	return fixture{
		editor:   NewEditor(notes, activity, notifier, nil),
		notes:    notes,
		activity: activity,
		clock:    clock,
		notifier: notifier,
	}
}

func strPtr(s string) *string { return &s }

func TestSave_RejectsBlankTitleButStoreAcceptsIt(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.editor.New(ctx)
	f.editor.Change(ctx, DraftPatch{Title: strPtr("   "), Content: strPtr("body")})

	_, err := f.editor.Save(ctx)
	require.ErrorIs(t, err, domain.ErrTitleRequired)
	assert.Empty(t, f.notes.List())
	assert.Empty(t, f.activity.List())
	assert.Equal(t, testutil.Toast{Kind: "error", Message: "Title is required"}, f.notifier.Last())

	// the store itself does not validate
	stored := f.notes.Add(domain.NoteInput{Title: "", Content: "x", Category: domain.CategoryCode})
	assert.Equal(t, "Untitled", stored.DisplayTitle())
	assert.Len(t, f.notes.List(), 1)
}

func TestSave_CreatesThenUpdates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	st := f.editor.New(ctx)
	assert.True(t, st.Editing)
	assert.Equal(t, domain.DefaultCategory, st.Draft.Category)

	f.editor.Change(ctx, DraftPatch{Title: strPtr("Standup"), Content: strPtr("- item")})
	created, err := f.editor.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Standup", created.Title)
	assert.Equal(t, "Note created!", f.notifier.Last().Message)

	st = f.editor.State(ctx)
	assert.Equal(t, created.ID, st.SelectedID)
	assert.False(t, st.Editing)

	f.clock.Advance(time.Hour)
	_, err = f.editor.Edit(ctx)
	require.NoError(t, err)
	f.editor.InsertSyntax(ctx, "**bold**")
	updated, err := f.editor.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "- item**bold**", updated.Content)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, "Note updated!", f.notifier.Last().Message)

	entries := f.activity.List()
	require.Len(t, entries, 2)
	assert.Equal(t, "Updated note", entries[0].Action)
	assert.Equal(t, "Created note", entries[1].Action)
	assert.Equal(t, domain.ActivityNoteCreated, entries[0].Type)
}

func TestChange_DoesNotTouchStore(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	note := f.notes.Add(domain.NoteInput{Title: "Plan", Content: "v1", Category: domain.CategoryIdeas})

	_, ok := f.editor.Select(ctx, note.ID)
	require.True(t, ok)
	_, err := f.editor.Edit(ctx)
	require.NoError(t, err)
	f.editor.Change(ctx, DraftPatch{Content: strPtr("v2")})

	stored, _ := f.notes.Get(note.ID)
	assert.Equal(t, "v1", stored.Content)

	st := f.editor.Cancel(ctx)
	assert.Equal(t, "v1", st.Draft.Content)
	assert.Equal(t, note.ID, st.SelectedID)
	assert.False(t, st.Editing)
}

func TestCancel_UnsavedNoteClearsSelection(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.editor.New(ctx)
	f.editor.Change(ctx, DraftPatch{Title: strPtr("scratch")})
	st := f.editor.Cancel(ctx)

	assert.Empty(t, st.SelectedID)
	assert.False(t, st.Composing)
	assert.Empty(t, st.Draft.Title)
	assert.Empty(t, f.notes.List())
}

func TestEdit_WithoutSelection(t *testing.T) {
	f := newFixture(t)
	_, err := f.editor.Edit(context.Background())
	assert.ErrorIs(t, err, domain.ErrNothingSelected)
}

func TestSelect_UnknownID(t *testing.T) {
	f := newFixture(t)
	_, ok := f.editor.Select(context.Background(), "missing")
	assert.False(t, ok)
}

func TestDelete_ClearsSelection(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	note := f.notes.Add(domain.NoteInput{Title: "Gone", Category: domain.CategoryPersonal})
	f.editor.Select(ctx, note.ID)

	assert.True(t, f.editor.Delete(ctx, note.ID))
	assert.Empty(t, f.editor.State(ctx).SelectedID)
	assert.Empty(t, f.notes.List())
	assert.Equal(t, "Deleted note", f.activity.List()[0].Action)
	assert.Equal(t, "Note deleted", f.notifier.Last().Message)

	assert.False(t, f.editor.Delete(ctx, note.ID))
	assert.Len(t, f.activity.List(), 1)
}

func TestSave_SelectedNoteVanished(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	note := f.notes.Add(domain.NoteInput{Title: "Old", Category: domain.CategoryIdeas})
	f.editor.Select(ctx, note.ID)
	f.editor.Edit(ctx)
	f.notes.Delete(note.ID)

	saved, err := f.editor.Save(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, note.ID, saved.ID)
	assert.Equal(t, "Old", saved.Title)
	assert.Len(t, f.notes.List(), 1)
}

func TestVisible_Filter(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.notes.Replace(memory.DemoNotes())
	total := len(f.notes.List())

	assert.Len(t, f.editor.Visible(ctx), total)

	f.editor.SetFilter(ctx, Filter{Category: string(domain.CategoryMeeting)})
	for _, n := range f.editor.Visible(ctx) {
		assert.Equal(t, domain.CategoryMeeting, n.Category)
	}

	st := f.editor.SetFilter(ctx, Filter{Query: "zzz-no-match"})
	assert.Equal(t, CategoryAll, st.Filter.Category)
	assert.Empty(t, f.editor.Visible(ctx))
}

func TestFilter_Matches(t *testing.T) {
	n := domain.Note{Title: "Release Plan", Content: "Ship on Friday", Category: domain.CategoryCode}

	assert.True(t, Filter{Query: "release"}.Matches(n))
	assert.True(t, Filter{Query: "FRIDAY"}.Matches(n))
	assert.True(t, Filter{Category: CategoryAll, Query: "plan"}.Matches(n))
	assert.False(t, Filter{Category: "ideas"}.Matches(n))
	assert.False(t, Filter{Query: "monday"}.Matches(n))
}

func TestTogglePreview(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	assert.True(t, f.editor.TogglePreview(ctx).Preview)
	assert.False(t, f.editor.TogglePreview(ctx).Preview)
}

func TestViews(t *testing.T) {
	now := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
	views := Views([]domain.Note{
		{ID: "a", Title: "", UpdatedAt: now.Add(-3 * time.Hour)},
		{ID: "b", Title: "Plan", UpdatedAt: now},
	}, now)

	require.Len(t, views, 2)
	assert.Equal(t, "Untitled", views[0].DisplayTitle)
	assert.Equal(t, "3 hours ago", views[0].Edited)
	assert.Equal(t, "Plan", views[1].DisplayTitle)
	assert.Equal(t, "just now", views[1].Edited)
}
