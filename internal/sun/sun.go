package sun

import (
	"fmt"
	"time"

	"github.com/sixdouglas/suncalc"
)

// Window is the dawn-to-dusk interval for one day at one location.
// It is recomputed every tick: it is cheap, and recomputing avoids
// stale windows across midnight and seasonal day-length drift.
type Window struct {
	Dawn time.Time
	Dusk time.Time
}

// DayLength returns the dawn-to-dusk duration
func (w Window) DayLength() time.Duration {
	return w.Dusk.Sub(w.Dawn)
}

// Cursor returns the elapsed time between dawn and t. Negative before
// dawn, beyond DayLength after dusk; the caller clamps.
func (w Window) Cursor(t time.Time) time.Duration {
	return t.Sub(w.Dawn)
}

// Compute derives the sun window for the day containing t at the given
// coordinates. Times are returned in t's location.
func Compute(lat, lon float64, t time.Time) (Window, error) {
	times := suncalc.GetTimes(t, lat, lon)

	w := Window{
		Dawn: times[suncalc.Dawn].Value.In(t.Location()),
		Dusk: times[suncalc.Dusk].Value.In(t.Location()),
	}

	// Polar day/night yields NaN julian dates, which surface as wildly
	// out-of-range timestamps rather than zero times
	if !plausible(w.Dawn, t) || !plausible(w.Dusk, t) {
		return Window{}, fmt.Errorf("no dawn/dusk at %.4f,%.4f on %s (polar day or night)", lat, lon, t.Format("2006-01-02"))
	}
	if !w.Dusk.After(w.Dawn) {
		return Window{}, fmt.Errorf("degenerate sun window at %.4f,%.4f: dawn %s, dusk %s", lat, lon, w.Dawn, w.Dusk)
	}

	return w, nil
}

// plausible reports whether a computed sun event lands within two days
// of the reference time
func plausible(event, ref time.Time) bool {
	d := event.Sub(ref)
	if d < 0 {
		d = -d
	}
	return d < 48*time.Hour
}
