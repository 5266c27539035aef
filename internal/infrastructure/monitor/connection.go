package monitor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fastygo/dashboard/repository"
)

// Monitor periodically pings the local key-value store.
type Monitor struct {
	store  repository.KeyValueStore
	driver string

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	onChange func(online bool)
	stopOnce sync.Once
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(store repository.KeyValueStore, driver string, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		store:    store,
		driver:   driver,
		status:   Status{Driver: driver},
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

// OnCheck registers a callback run after every check. Call before Start.
func (m *Monitor) OnCheck(fn func(online bool)) {
	m.onChange = fn
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Storage
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Refresh()
	for {
		select {
		case <-ticker.C:
			m.Refresh()
		case <-m.stopCh:
			return
		}
	}
}

// Refresh runs one check synchronously.
func (m *Monitor) Refresh() Status {
	status := Status{Driver: m.driver, LastCheck: time.Now()}
	if err := m.checkStorage(); err != nil {
		status.Error = err.Error()
	} else {
		status.Storage = true
	}

	m.mu.Lock()
	wasOnline := m.status.Storage
	m.status = status
	m.mu.Unlock()

	if wasOnline && !status.Storage {
		m.logger.Warn("storage went offline", zap.String("driver", m.driver), zap.String("error", status.Error))
	}
	if m.onChange != nil {
		m.onChange(status.Storage)
	}
	return status
}

func (m *Monitor) checkStorage() error {
	if m.store == nil {
		return errNoStore
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return m.store.Ping(ctx)
}
