package colorscheme

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// SourceFallback indicates no detector provided the preference.
const SourceFallback = "fallback"

type callbackWrapper struct {
	fn func(Preference)
}

// Resolver folds registered detectors into a single preference.
// When no detector answers the host is treated as light. Detection runs on
// construction, RegisterDetector and Refresh; Resolve returns the cached answer.
type Resolver struct {
	mu        sync.RWMutex
	logger    zerolog.Logger
	detectors []Detector
	current   Preference
	callbacks []*callbackWrapper
}

// NewResolver creates a resolver with the given detectors.
func NewResolver(logger zerolog.Logger, detectors ...Detector) *Resolver {
	r := &Resolver{logger: logger}
	for _, d := range detectors {
		if d != nil {
			r.detectors = append(r.detectors, d)
		}
	}
	r.current = r.resolveLocked()
	return r
}

// NewDefaultResolver wires the standard detector chain: the configured scheme,
// the scheme environment variable, GTK_THEME and gsettings. gsettings is only
// consulted on hosts where the binary exists.
func NewDefaultResolver(logger zerolog.Logger, configuredScheme, envVar string) *Resolver {
	r := NewResolver(logger,
		NewStaticDetector(configuredScheme),
		NewEnvDetector(envVar),
		NewGTKThemeDetector(),
	)
	if gsettings := NewGsettingsDetector(); gsettings.Available() {
		r.RegisterDetector(gsettings)
	}
	return r
}

// Resolve returns the preference from the last detection.
func (r *Resolver) Resolve() Preference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *Resolver) resolveLocked() Preference {
	sorted := make([]Detector, len(r.detectors))
	copy(sorted, r.detectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})

	for _, detector := range sorted {
		if !detector.Available() {
			continue
		}
		if prefersDark, ok := detector.Detect(); ok {
			return Preference{PrefersDark: prefersDark, Source: detector.Name()}
		}
	}

	return Preference{PrefersDark: false, Source: SourceFallback}
}

// RegisterDetector adds a detector and re-detects without notifying callbacks.
func (r *Resolver) RegisterDetector(detector Detector) {
	if detector == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
	r.current = r.resolveLocked()
}

// Refresh re-resolves and notifies callbacks when the dark/light answer changed.
func (r *Resolver) Refresh() Preference {
	r.mu.Lock()
	next := r.resolveLocked()
	changed := next.PrefersDark != r.current.PrefersDark
	r.current = next
	var callbacks []*callbackWrapper
	if changed {
		callbacks = make([]*callbackWrapper, len(r.callbacks))
		copy(callbacks, r.callbacks)
	}
	r.mu.Unlock()

	if changed {
		r.logger.Debug().
			Bool("prefers_dark", next.PrefersDark).
			Str("source", next.Source).
			Msg("host color scheme changed")
		for _, cb := range callbacks {
			cb.fn(next)
		}
	}
	return next
}

// OnChange registers a callback for Refresh-detected changes and returns an
// unregister function.
func (r *Resolver) OnChange(callback func(Preference)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	wrapper := &callbackWrapper{fn: callback}
	r.callbacks = append(r.callbacks, wrapper)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, cb := range r.callbacks {
			if cb == wrapper {
				r.callbacks = append(r.callbacks[:i], r.callbacks[i+1:]...)
				return
			}
		}
	}
}
