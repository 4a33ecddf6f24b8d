package theme

import (
	"context"
	"errors"
	"sync"
)

// ErrUninitializedThemeContext is returned when the theme is requested before
// the application session established it.
var ErrUninitializedThemeContext = errors.New("theme context used before initialization")

var session = struct {
	mu      sync.RWMutex
	manager *Manager
}{}

// Init establishes m as the process-wide theme context. It is called once at
// application start; calling it again replaces the manager.
func Init(m *Manager) error {
	if m == nil {
		return errors.New("theme manager is required")
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	session.manager = m
	return nil
}

// Teardown ends the session. Later Current calls fail until Init runs again.
func Teardown() {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.manager = nil
}

// Current returns the process-wide manager.
func Current() (*Manager, error) {
	session.mu.RLock()
	defer session.mu.RUnlock()
	if session.manager == nil {
		return nil, ErrUninitializedThemeContext
	}
	return session.manager, nil
}

// MustCurrent is Current for code paths that cannot run without a theme.
// It panics when the session has not been initialized.
func MustCurrent() *Manager {
	m, err := Current()
	if err != nil {
		panic(err)
	}
	return m
}

type contextKey struct{}

// WithManager returns a context carrying m.
func WithManager(ctx context.Context, m *Manager) context.Context {
	return context.WithValue(ctx, contextKey{}, m)
}

// FromContext returns the manager carried by ctx.
func FromContext(ctx context.Context) (*Manager, error) {
	if ctx == nil {
		return nil, ErrUninitializedThemeContext
	}
	m, ok := ctx.Value(contextKey{}).(*Manager)
	if !ok || m == nil {
		return nil, ErrUninitializedThemeContext
	}
	return m, nil
}
