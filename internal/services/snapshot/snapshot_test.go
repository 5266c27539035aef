package snapshot

import (
	"context"
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
)

type offline struct{}

func (offline) IsOnline() bool { return false }

func newStores(clock domain.Clock) Stores {
	return Stores{
		Tasks:    memory.NewTaskStore(clock, idgen.NewSequence("task-"), nil),
		Notes:    memory.NewNoteStore(clock, idgen.NewSequence("note-"), nil),
		Activity: memory.NewActivityStore(clock, idgen.NewSequence("act-"), 0),
	}
}

func TestSaveAndRestore(t *testing.T) {
	ctx := context.Background()
	clock := testutil.NewClock(time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC))
	kv := memkv.New()
	repo := local.NewWorkspaceRepository(kv)

	src := newStores(clock)
	src.Tasks.Add(domain.TaskInput{Title: "Ship release", Priority: domain.PriorityHigh, DueDate: domain.MustParseDate("2026-02-01")})
	src.Notes.Add(domain.NoteInput{Title: "Plan", Category: domain.CategoryIdeas})
	src.Activity.Add(domain.ActivityInput{Action: "Created task", Item: "Ship release", Type: domain.ActivityTaskStarted})

	var results []error
	saver := New(repo, src, nil, clock, nil, Config{Interval: time.Minute})
	saver.OnSave(func(err error) { results = append(results, err) })
	require.NoError(t, saver.Save(ctx))
	assert.Equal(t, []error{nil}, results)

	dst := newStores(clock)
	restorer := New(repo, dst, nil, clock, nil, Config{})
	ok, err := restorer.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, src.Tasks.List(), dst.Tasks.List())
	assert.Equal(t, src.Notes.List()[0].Title, dst.Notes.List()[0].Title)
	assert.Len(t, dst.Activity.List(), 1)
}

func TestRestore_NothingSaved(t *testing.T) {
	clock := testutil.NewClock(time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC))
	stores := newStores(clock)
	stores.Tasks.Replace(memory.DemoTasks())

	s := New(local.NewWorkspaceRepository(memkv.New()), stores, nil, clock, nil, Config{})
	ok, err := s.Restore(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, stores.Tasks.List(), len(memory.DemoTasks()))
}

func TestSave_SkippedWhenOffline(t *testing.T) {
	clock := testutil.NewClock(time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC))
	kv := memkv.New()
	s := New(local.NewWorkspaceRepository(kv), newStores(clock), offline{}, clock, nil, Config{})

	require.NoError(t, s.Save(context.Background()))
	assert.Zero(t, kv.Len())
}

func TestStop_WritesFinalSnapshot(t *testing.T) {
	clock := testutil.NewClock(time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC))
	kv := memkv.New()
	s := New(local.NewWorkspaceRepository(kv), newStores(clock), nil, clock, nil, Config{Interval: time.Hour})
	s.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.Equal(t, 1, kv.Len())
}
