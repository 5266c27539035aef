package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fastygo/dashboard/domain"
)

type CommandHandler func(ctx context.Context, payload interface{}) (interface{}, error)
type QueryHandler func(ctx context.Context, params interface{}) (interface{}, error)

// Observer is told about every executed command or query.
type Observer func(kind, name string, elapsed time.Duration, err error)

const (
	KindCommand = "command"
	KindQuery   = "query"
)

// Dispatcher routes named commands and queries to their handlers. Execution is
// serialized: one handler runs at a time, in arrival order, so each UI event
// completes before the next one starts.
type Dispatcher struct {
	cmdHandlers map[string]CommandHandler
	qryHandlers map[string]QueryHandler
	mu          sync.RWMutex

	exec     sync.Mutex
	observer Observer
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		cmdHandlers: make(map[string]CommandHandler),
		qryHandlers: make(map[string]QueryHandler),
	}
}

// Observe installs the execution observer. Passing nil removes it.
func (d *Dispatcher) Observe(o Observer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.observer = o
}

func (d *Dispatcher) RegisterCommand(name string, handler CommandHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cmdHandlers[name] = handler
}

func (d *Dispatcher) RegisterQuery(name string, handler QueryHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.qryHandlers[name] = handler
}

// Commands lists registered command names.
func (d *Dispatcher) Commands() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	names := make([]string, 0, len(d.cmdHandlers))
	for name := range d.cmdHandlers {
		names = append(names, name)
	}
	return names
}

func (d *Dispatcher) ExecuteCommand(ctx context.Context, name string, payload interface{}) (interface{}, error) {
	d.mu.RLock()
	handler, ok := d.cmdHandlers[name]
	d.mu.RUnlock()
	if !ok {
		return nil, domain.WrapError(domain.ErrCodeNotFound, fmt.Sprintf("command handler %s not registered", name), nil)
	}
	return d.run(ctx, KindCommand, name, func(ctx context.Context) (interface{}, error) {
		return handler(ctx, payload)
	})
}

func (d *Dispatcher) ExecuteQuery(ctx context.Context, name string, params interface{}) (interface{}, error) {
	d.mu.RLock()
	handler, ok := d.qryHandlers[name]
	d.mu.RUnlock()
	if !ok {
		return nil, domain.WrapError(domain.ErrCodeNotFound, fmt.Sprintf("query handler %s not registered", name), nil)
	}
	return d.run(ctx, KindQuery, name, func(ctx context.Context) (interface{}, error) {
		return handler(ctx, params)
	})
}

func (d *Dispatcher) run(ctx context.Context, kind, name string, fn func(context.Context) (interface{}, error)) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.exec.Lock()
	start := time.Now()
	out, err := fn(ctx)
	elapsed := time.Since(start)
	d.exec.Unlock()

	d.mu.RLock()
	observer := d.observer
	d.mu.RUnlock()
	if observer != nil {
		observer(kind, name, elapsed, err)
	}
	return out, err
}

// Handle adapts a typed function into a CommandHandler.
func Handle[P, R any](fn func(ctx context.Context, payload P) (R, error)) CommandHandler {
	return func(ctx context.Context, payload interface{}) (interface{}, error) {
		p, ok := payload.(P)
		if !ok {
			var zero P
			return nil, domain.WrapError(domain.ErrCodeInvalid, fmt.Sprintf("expected payload %T, got %T", zero, payload), domain.ErrInvalidPayload)
		}
		return fn(ctx, p)
	}
}

// Ask adapts a typed function into a QueryHandler.
func Ask[P, R any](fn func(ctx context.Context, params P) (R, error)) QueryHandler {
	return QueryHandler(Handle(fn))
}

// Command executes a command and asserts its result type.
func Command[R any](ctx context.Context, d *Dispatcher, name string, payload interface{}) (R, error) {
	out, err := d.ExecuteCommand(ctx, name, payload)
	return typed[R](name, out, err)
}

// Query executes a query and asserts its result type.
func Query[R any](ctx context.Context, d *Dispatcher, name string, params interface{}) (R, error) {
	out, err := d.ExecuteQuery(ctx, name, params)
	return typed[R](name, out, err)
}

func typed[R any](name string, out interface{}, err error) (R, error) {
	var zero R
	if err != nil {
		return zero, err
	}
	if out == nil {
		return zero, nil
	}
	r, ok := out.(R)
	if !ok {
		return zero, domain.NewError(domain.ErrCodeInternal, fmt.Sprintf("%s returned %T, want %T", name, out, zero))
	}
	return r, nil
}
