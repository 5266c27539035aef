package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/dashboard/domain"
)

func TestDispatcher_TypedHandlers(t *testing.T) {
	ctx := context.Background()
	d := NewDispatcher()
	d.RegisterCommand("echo", Handle(func(_ context.Context, s string) (int, error) {
		return len(s), nil
	}))
	d.RegisterQuery("answer", Ask(func(_ context.Context, _ struct{}) (string, error) {
		return "42", nil
	}))

	n, err := Command[int](ctx, d, "echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	s, err := Query[string](ctx, d, "answer", struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	_, err = Command[int](ctx, d, "echo", 7)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)

	_, err = Command[string](ctx, d, "echo", "x")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInternal))
}

func TestDispatcher_Unregistered(t *testing.T) {
	d := NewDispatcher()
	_, err := d.ExecuteCommand(context.Background(), "missing", nil)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
	_, err = d.ExecuteQuery(context.Background(), "missing", nil)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestDispatcher_CancelledContext(t *testing.T) {
	d := NewDispatcher()
	called := false
	d.RegisterCommand("noop", func(context.Context, interface{}) (interface{}, error) {
		called = true
		return nil, nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.ExecuteCommand(ctx, "noop", nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestDispatcher_SerializesExecution(t *testing.T) {
	d := NewDispatcher()
	var (
		mu      sync.Mutex
		running int
		maxSeen int
	)
	d.RegisterCommand("work", func(context.Context, interface{}) (interface{}, error) {
		mu.Lock()
		running++
		if running > maxSeen {
			maxSeen = running
		}
		mu.Unlock()

		time.Sleep(time.Millisecond)

		mu.Lock()
		running--
		mu.Unlock()
		return nil, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = d.ExecuteCommand(context.Background(), "work", nil)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxSeen)
}

func TestDispatcher_Observer(t *testing.T) {
	d := NewDispatcher()
	d.RegisterCommand("fail", func(context.Context, interface{}) (interface{}, error) {
		return nil, domain.ErrTitleRequired
	})

	var gotKind, gotName string
	var gotErr error
	d.Observe(func(kind, name string, _ time.Duration, err error) {
		gotKind, gotName, gotErr = kind, name, err
	})

	_, err := d.ExecuteCommand(context.Background(), "fail", nil)
	require.Error(t, err)
	assert.Equal(t, KindCommand, gotKind)
	assert.Equal(t, "fail", gotName)
	assert.ErrorIs(t, gotErr, domain.ErrTitleRequired)
}
