package wallpaper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ilmanen/sunpaper/internal/gallery"
	"github.com/ilmanen/sunpaper/internal/location"
	"github.com/ilmanen/sunpaper/internal/render"
	"github.com/ilmanen/sunpaper/internal/sun"
	"github.com/ilmanen/sunpaper/internal/transition"
	"github.com/ilmanen/sunpaper/pkg/config"
	"github.com/ilmanen/sunpaper/pkg/mqtt"
)

// Agent is the wallpaper render loop. Each tick recomputes the sun
// window for today, locates the frame pair for the current time,
// renders the blend to the output path and invokes the set-wallpaper
// command. A failing tick is logged and skipped; the previous wallpaper
// stays in place until the next tick.
type Agent struct {
	cfg    *config.Config
	coords location.Coordinates
	seq    *gallery.Sequence
	setter *Setter
	mqtt   mqtt.Client // nil when telemetry is disabled
	logger *slog.Logger

	ticker   *time.Ticker
	stopChan chan struct{}

	mu         sync.RWMutex
	lastRender time.Time
}

// NewAgent creates a new wallpaper agent with the given dependencies.
// mqttClient may be nil; the agent then runs without telemetry.
func NewAgent(cfg *config.Config, coords location.Coordinates, seq *gallery.Sequence, setter *Setter, mqttClient mqtt.Client, logger *slog.Logger) *Agent {
	return &Agent{
		cfg:      cfg,
		coords:   coords,
		seq:      seq,
		setter:   setter,
		mqtt:     mqttClient,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start starts the render loop and blocks until ctx is cancelled.
// The first frame is rendered immediately, then once per rate interval.
func (a *Agent) Start(ctx context.Context) error {
	a.logger.Info("Starting wallpaper agent",
		"service_name", a.cfg.ServiceName,
		"frames", a.seq.Len(),
		"dusk_index", a.cfg.DuskIndex,
		"rate_minutes", a.cfg.RateMinutes,
		"output", a.cfg.TempPath)

	if a.cfg.DuskIndex >= a.seq.Len() {
		return fmt.Errorf("dusk image index %d out of range for %d frames", a.cfg.DuskIndex, a.seq.Len())
	}

	if a.mqtt != nil {
		if err := a.mqtt.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to MQTT: %w", err)
		}
		a.publishStatus("started")
	}

	// Create the ticker before the first render: the first tick can be
	// slow (image encoding) and Stop reads the ticker from another
	// goroutine
	a.mu.Lock()
	a.ticker = time.NewTicker(time.Duration(a.cfg.RateMinutes) * time.Minute)
	ticker := a.ticker
	a.mu.Unlock()

	// First render right away so the wallpaper does not wait a full
	// interval after startup
	a.tick(ctx)

	go func() {
		for {
			select {
			case <-ticker.C:
				a.tick(ctx)
			case <-a.stopChan:
				return
			}
		}
	}()

	a.logger.Info("Wallpaper agent started and ready")

	// Block until context is cancelled
	<-ctx.Done()
	a.logger.Info("Wallpaper agent stopping")

	return nil
}

// Stop gracefully stops the render loop
func (a *Agent) Stop() error {
	a.logger.Info("Stopping wallpaper agent")

	a.mu.Lock()
	if a.ticker != nil {
		a.ticker.Stop()
	}
	a.mu.Unlock()
	close(a.stopChan)

	if a.mqtt != nil {
		a.publishStatus("stopped")
		a.mqtt.Disconnect()
	}

	a.logger.Info("Wallpaper agent stopped")
	return nil
}

// LastRender returns the time of the last successful tick (zero before
// the first one). Used by the health endpoint.
func (a *Agent) LastRender() time.Time {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastRender
}

// tick runs one render cycle. Every failure is a transient per-tick
// error: log and wait for the next tick.
func (a *Agent) tick(ctx context.Context) {
	now := time.Now()

	window, err := sun.Compute(a.coords.Latitude, a.coords.Longitude, now)
	if err != nil {
		a.logger.Error("Sun window computation failed, keeping previous wallpaper", "error", err)
		return
	}

	blend := transition.Locate(window.Cursor(now), window.DayLength(), a.seq.Len(), a.cfg.DuskIndex)

	a.logger.Debug("Located frame pair",
		"dawn", window.Dawn.Format(time.RFC3339),
		"dusk", window.Dusk.Format(time.RFC3339),
		"day_length_sec", int(window.DayLength().Seconds()),
		"from", blend.From,
		"to", blend.To,
		"fraction", blend.Fraction,
		"boundary", blend.Boundary())

	frame := render.Blend(a.seq.Frame(blend.From), a.seq.Frame(blend.To), blend.Fraction)
	if err := render.Write(frame, a.cfg.TempPath); err != nil {
		a.logger.Error("Render failed, keeping previous wallpaper", "error", err)
		return
	}

	if err := a.setter.Set(ctx, a.cfg.TempPath); err != nil {
		a.logger.Error("Wallpaper command failed, keeping previous wallpaper", "error", err)
		return
	}

	a.mu.Lock()
	a.lastRender = now
	a.mu.Unlock()

	a.logger.Info("Wallpaper updated",
		"from", a.seq.Path(blend.From),
		"to", a.seq.Path(blend.To),
		"fraction", blend.Fraction)

	a.publishTransition(now, window, blend)
}

// publishStatus publishes a retained lifecycle message
func (a *Agent) publishStatus(state string) {
	if a.mqtt == nil {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"service":   a.cfg.ServiceName,
		"state":     state,
		"timestamp": time.Now().Format(time.RFC3339),
	})
	if err != nil {
		a.logger.Error("Failed to marshal status message", "error", err)
		return
	}

	if err := a.mqtt.Publish(mqtt.TopicStatus, 0, true, payload); err != nil {
		a.logger.Warn("Failed to publish status", "error", err)
	}
}

// publishTransition publishes the frame pair chosen for this tick.
// Telemetry failures never fail the tick.
func (a *Agent) publishTransition(now time.Time, window sun.Window, blend transition.Blend) {
	if a.mqtt == nil {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"from":      a.seq.Path(blend.From),
		"to":        a.seq.Path(blend.To),
		"fraction":  blend.Fraction,
		"boundary":  blend.Boundary(),
		"dawn":      window.Dawn.Format(time.RFC3339),
		"dusk":      window.Dusk.Format(time.RFC3339),
		"timestamp": now.Format(time.RFC3339),
	})
	if err != nil {
		a.logger.Error("Failed to marshal transition message", "error", err)
		return
	}

	if err := a.mqtt.Publish(mqtt.TopicTransition, 0, false, payload); err != nil {
		a.logger.Warn("Failed to publish transition", "error", err)
	}
}
