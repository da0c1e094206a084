// Package theme persists the display-mode preference under the "theme"
// storage key.
package theme

import (
	"context"
	"sync"
	"time"

	"github.com/mkoval-dev/bookmarket-backend/pkg/enums"
	"github.com/mkoval-dev/bookmarket-backend/pkg/kvstore"
	"github.com/mkoval-dev/bookmarket-backend/pkg/logger"
	"github.com/mkoval-dev/bookmarket-backend/pkg/observer"
)

// Preference tracks the dark-mode flag. On first run, with nothing stored,
// the default comes from the local clock: dark from 21:00 until 06:00. The
// heuristic runs exactly once; any stored value wins on later starts.
type Preference struct {
	mu      sync.RWMutex
	dark    bool
	storage kvstore.Store
	hub     *observer.Hub
	logg    *logger.Logger
}

// Option tweaks Preference construction.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the clock used for the first-run default.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func NewPreference(ctx context.Context, storage kvstore.Store, hub *observer.Hub, logg *logger.Logger, opts ...Option) *Preference {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	pref := &Preference{storage: storage, hub: hub, logg: logg}

	stored, err := storage.Get(ctx, kvstore.KeyTheme)
	if err == nil {
		pref.dark = stored == string(enums.ThemeModeDark)
		return pref
	}

	hour := o.now().Hour()
	pref.dark = hour >= 21 || hour < 6
	pref.persist(ctx)
	return pref
}

// IsDark reports the current display mode.
func (p *Preference) IsDark() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.dark
}

// Mode returns the persisted representation of the current state.
func (p *Preference) Mode() enums.ThemeMode {
	if p.IsDark() {
		return enums.ThemeModeDark
	}
	return enums.ThemeModeLight
}

// Toggle flips the flag and persists the new value.
func (p *Preference) Toggle(ctx context.Context) bool {
	p.mu.Lock()
	p.dark = !p.dark
	dark := p.dark
	p.mu.Unlock()

	p.persist(ctx)
	p.hub.Publish(observer.Event{Store: "theme", Op: "toggle"})
	return dark
}

func (p *Preference) persist(ctx context.Context) {
	if err := p.storage.Set(ctx, kvstore.KeyTheme, string(p.Mode())); err != nil {
		if p.logg != nil {
			p.logg.Error(ctx, "write theme to storage", err)
		}
	}
}
