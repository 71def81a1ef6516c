package transition

import (
	"math"
	"testing"
	"time"
)

const (
	dayLength = 36000 * time.Second // 10 hours
	frames    = 16
	duskIndex = 13
)

// cursorAt returns the cursor whose fractional position equals pos for
// the test fixture above
func cursorAt(pos float64) time.Duration {
	return time.Duration(pos / duskIndex * dayLength.Seconds() * float64(time.Second))
}

func TestLocate_AtDawn(t *testing.T) {
	// cursor 0 -> position 0, below the interpolatable interior
	b := Locate(0, dayLength, frames, duskIndex)

	if b.From != 15 || b.To != 15 || b.Fraction != 1 {
		t.Errorf("expected boundary (15, 15, 1), got (%d, %d, %f)", b.From, b.To, b.Fraction)
	}
	if !b.Boundary() {
		t.Error("expected boundary blend at dawn")
	}
}

func TestLocate_Midday(t *testing.T) {
	// dawn 08:00, now 12:00 -> cursor 14400s -> position 13*14400/36000 = 5.2
	b := Locate(14400*time.Second, dayLength, frames, duskIndex)

	if b.From != 5 || b.To != 6 {
		t.Errorf("expected frames (5, 6), got (%d, %d)", b.From, b.To)
	}
	if math.Abs(b.Fraction-0.2) > 1e-9 {
		t.Errorf("expected fraction 0.2, got %f", b.Fraction)
	}
	if b.Boundary() {
		t.Error("midday blend should not be a boundary")
	}
}

func TestLocate_PastDusk(t *testing.T) {
	// one hour after dusk: cursor exceeds day length, position > n-2
	b := Locate(dayLength+time.Hour, dayLength, frames, duskIndex)

	if b.From != 15 || b.To != 15 || b.Fraction != 1 {
		t.Errorf("expected boundary (15, 15, 1), got (%d, %d, %f)", b.From, b.To, b.Fraction)
	}
}

func TestLocate_Boundaries(t *testing.T) {
	tests := []struct {
		name   string
		cursor time.Duration
		clamp  bool
	}{
		{"before dawn", -2 * time.Hour, true},
		{"position just under 1", cursorAt(1) - time.Second, true},
		{"position just above 1", cursorAt(1) + time.Millisecond, false},
		{"interior", dayLength / 2, false},
		{"position just under n-2", cursorAt(frames-2) - time.Second, false},
		{"position above n-2", cursorAt(frames-2) + time.Second, true},
		{"far past dusk", 3 * dayLength, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Locate(tt.cursor, dayLength, frames, duskIndex)
			if b.Boundary() != tt.clamp {
				t.Errorf("cursor %v: expected clamp=%v, got (%d, %d, %f)", tt.cursor, tt.clamp, b.From, b.To, b.Fraction)
			}
		})
	}
}

func TestLocate_InteriorInvariants(t *testing.T) {
	// Over the whole interior the fraction stays in [0, 1) and the
	// second index never escapes the sequence
	start := cursorAt(1)
	end := cursorAt(frames - 2)

	for cursor := start; cursor <= end; cursor += 30 * time.Second {
		b := Locate(cursor, dayLength, frames, duskIndex)
		if b.Boundary() {
			continue
		}
		if b.Fraction < 0 || b.Fraction >= 1 {
			t.Fatalf("cursor %v: fraction %f out of [0, 1)", cursor, b.Fraction)
		}
		if b.To != b.From+1 || b.To > frames-1 {
			t.Fatalf("cursor %v: invalid frame pair (%d, %d)", cursor, b.From, b.To)
		}
	}
}

func TestLocate_MonotonicInterior(t *testing.T) {
	start := cursorAt(1)
	end := cursorAt(frames - 2)

	prevFrom := -1
	prevPos := -1.0
	for cursor := start; cursor <= end; cursor += time.Minute {
		b := Locate(cursor, dayLength, frames, duskIndex)
		if b.Boundary() {
			continue
		}
		if b.From < prevFrom {
			t.Fatalf("cursor %v: frame index decreased from %d to %d", cursor, prevFrom, b.From)
		}
		pos := float64(b.From) + b.Fraction
		if pos < prevPos {
			t.Fatalf("cursor %v: position decreased from %f to %f", cursor, prevPos, pos)
		}
		prevFrom = b.From
		prevPos = pos
	}
}

func TestLocate_DegenerateInputs(t *testing.T) {
	tests := []struct {
		name      string
		cursor    time.Duration
		dayLength time.Duration
		n         int
		duskIndex int
		wantLast  int
	}{
		{"single frame", time.Hour, dayLength, 1, 0, 0},
		{"two frames, no interior", time.Hour, dayLength, 2, 1, 1},
		{"zero day length", time.Hour, 0, frames, duskIndex, 15},
		{"negative day length", time.Hour, -time.Hour, frames, duskIndex, 15},
		{"dusk index zero", time.Hour, dayLength, frames, 0, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Locate(tt.cursor, tt.dayLength, tt.n, tt.duskIndex)
			if b.From != tt.wantLast || b.To != tt.wantLast || b.Fraction != 1 {
				t.Errorf("expected (%d, %d, 1), got (%d, %d, %f)", tt.wantLast, tt.wantLast, b.From, b.To, b.Fraction)
			}
		})
	}
}
