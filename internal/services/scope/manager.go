package scope

import (
	"context"
	"log/slog"
	"sync"

	"github.com/aixtraball/pinadmin/internal/model"
)

// Backend is the slice of the backend client the manager needs.
type Backend interface {
	ActiveTournament(ctx context.Context) (string, error)
	SetActiveTournament(ctx context.Context, name string) error
	Tournaments(ctx context.Context) ([]string, error)
	CreateTournament(ctx context.Context, name, template string) error
}

// Manager owns the active tournament scope. It is the only component that
// changes the scope and the only emitter of reload notifications. All
// fetch paths take the scope as an explicit value from Current rather than
// reading ambient state.
//
// Observable states: no-active-tournament (before the first successful
// Refresh or SetActive) and active(name).
type Manager struct {
	backend Backend
	logger  *slog.Logger

	mu       sync.RWMutex
	active   model.Scope
	hasScope bool
	subs     []chan struct{}
}

// New creates a scope manager. The scope starts out unset; call Refresh to
// adopt the backend's active tournament.
func New(backend Backend, logger *slog.Logger) *Manager {
	return &Manager{
		backend: backend,
		logger:  logger.With(slog.String("component", "scope")),
	}
}

// Current returns the active scope and whether one is set.
func (m *Manager) Current() (model.Scope, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active, m.hasScope
}

// Refresh adopts the backend's active tournament as the local scope. It
// does not notify subscribers; it brings this client in line with state
// that already changed elsewhere.
func (m *Manager) Refresh(ctx context.Context) error {
	name, err := m.backend.ActiveTournament(ctx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if name == "" {
		m.active = ""
		m.hasScope = false
		return nil
	}
	m.active = model.Scope(name)
	m.hasScope = true
	return nil
}

// SetActive asks the backend to activate the named tournament. Only on
// success does the local scope move and a reload notification go out; a
// failed call leaves the prior scope untouched and emits nothing.
func (m *Manager) SetActive(ctx context.Context, name string) error {
	if err := m.backend.SetActiveTournament(ctx, name); err != nil {
		return err
	}

	m.mu.Lock()
	m.active = model.Scope(name)
	m.hasScope = true
	m.mu.Unlock()

	m.logger.Info("active tournament changed", slog.String("tournament", name))
	m.notify()
	return nil
}

// Create creates a tournament, optionally cloned from a template. Creation
// never changes the active scope and never notifies.
func (m *Manager) Create(ctx context.Context, name, template string) error {
	return m.backend.CreateTournament(ctx, name, template)
}

// Tournaments lists the known tournament names.
func (m *Manager) Tournaments(ctx context.Context) ([]string, error) {
	return m.backend.Tournaments(ctx)
}

// Subscribe registers for scope-change notifications. The notification
// carries no payload beyond "reload now"; subscribers are expected to
// re-run their full fetch pipeline, which is always safe to repeat. The
// channel is buffered so one pending reload can queue while a subscriber
// works; further broadcasts into a full buffer are dropped, which still
// leaves a reload queued for the subscriber to pick up.
func (m *Manager) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

// notify broadcasts a fire-and-forget reload signal to all subscribers.
func (m *Manager) notify() {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, ch := range m.subs {
		select {
		case ch <- struct{}{}:
		default:
			m.logger.Warn("reload notification dropped - subscriber buffer full")
		}
	}
}
