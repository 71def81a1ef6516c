package sun

import (
	"testing"
	"time"
)

func TestCompute_Helsinki(t *testing.T) {
	// Midsummer in Helsinki: long day, but dawn and dusk still exist
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	w, err := Compute(60.1695, 24.9354, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !w.Dusk.After(w.Dawn) {
		t.Fatalf("dusk %s not after dawn %s", w.Dusk, w.Dawn)
	}
	if w.DayLength() <= 12*time.Hour {
		t.Errorf("midsummer day length suspiciously short: %s", w.DayLength())
	}
	if w.DayLength() >= 24*time.Hour {
		t.Errorf("day length exceeds a day: %s", w.DayLength())
	}
}

func TestCompute_Equator(t *testing.T) {
	now := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

	w, err := Compute(0, 0, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Dawn-to-dusk at the equator stays near 12-13 hours year round
	if w.DayLength() < 11*time.Hour || w.DayLength() > 14*time.Hour {
		t.Errorf("equatorial day length out of range: %s", w.DayLength())
	}
}

func TestWindow_Cursor(t *testing.T) {
	dawn := time.Date(2026, 8, 27, 6, 0, 0, 0, time.UTC)
	w := Window{Dawn: dawn, Dusk: dawn.Add(10 * time.Hour)}

	if got := w.Cursor(dawn); got != 0 {
		t.Errorf("cursor at dawn: expected 0, got %s", got)
	}
	if got := w.Cursor(dawn.Add(4 * time.Hour)); got != 4*time.Hour {
		t.Errorf("cursor mid-morning: expected 4h, got %s", got)
	}
	if got := w.Cursor(dawn.Add(-time.Hour)); got != -time.Hour {
		t.Errorf("cursor before dawn: expected -1h, got %s", got)
	}
	if got := w.Cursor(w.Dusk.Add(time.Hour)); got != 11*time.Hour {
		t.Errorf("cursor past dusk: expected 11h, got %s", got)
	}
}

func TestWindow_DayLength(t *testing.T) {
	dawn := time.Date(2026, 8, 27, 6, 0, 0, 0, time.UTC)
	w := Window{Dawn: dawn, Dusk: dawn.Add(36000 * time.Second)}

	if got := w.DayLength(); got != 10*time.Hour {
		t.Errorf("expected 10h, got %s", got)
	}
}

func TestCompute_LocalTimezone(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, loc)

	w, err := Compute(60.1695, 24.9354, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.Dawn.Location() != loc || w.Dusk.Location() != loc {
		t.Error("sun window should be expressed in the reference time's location")
	}
}
