package theme

import (
	"context"
	"testing"
	"time"

	"github.com/mkoval-dev/bookmarket-backend/pkg/kvstore"
)

func clockAt(hour int) func() time.Time {
	return func() time.Time {
		return time.Date(2024, 3, 15, hour, 30, 0, 0, time.Local)
	}
}

func TestFirstRunNightHoursDefaultDark(t *testing.T) {
	ctx := context.Background()
	for _, hour := range []int{21, 23, 0, 5} {
		storage := kvstore.NewMemory()
		pref := NewPreference(ctx, storage, nil, nil, WithClock(clockAt(hour)))
		if !pref.IsDark() {
			t.Fatalf("hour %d should default to dark", hour)
		}
		stored, err := storage.Get(ctx, kvstore.KeyTheme)
		if err != nil || stored != "dark" {
			t.Fatalf("hour %d: first-run default not persisted, got %q err=%v", hour, stored, err)
		}
	}
}

func TestFirstRunDayHoursDefaultLight(t *testing.T) {
	ctx := context.Background()
	for _, hour := range []int{6, 12, 20} {
		storage := kvstore.NewMemory()
		pref := NewPreference(ctx, storage, nil, nil, WithClock(clockAt(hour)))
		if pref.IsDark() {
			t.Fatalf("hour %d should default to light", hour)
		}
	}
}

func TestStoredValueBeatsClock(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()
	if err := storage.Set(ctx, kvstore.KeyTheme, "light"); err != nil {
		t.Fatalf("seed storage: %v", err)
	}

	// 22:00 would default dark, but the stored preference wins.
	pref := NewPreference(ctx, storage, nil, nil, WithClock(clockAt(22)))
	if pref.IsDark() {
		t.Fatal("stored light preference must override the clock heuristic")
	}
}

func TestTogglePersists(t *testing.T) {
	ctx := context.Background()
	storage := kvstore.NewMemory()
	pref := NewPreference(ctx, storage, nil, nil, WithClock(clockAt(22)))

	if !pref.IsDark() {
		t.Fatal("expected initial dark at 22:00")
	}

	if dark := pref.Toggle(ctx); dark {
		t.Fatal("toggle from dark should yield light")
	}

	stored, err := storage.Get(ctx, kvstore.KeyTheme)
	if err != nil || stored != "light" {
		t.Fatalf("expected persisted light, got %q err=%v", stored, err)
	}
}
