package wallpaper

import (
	"context"
	"log/slog"
	"os"
	"reflect"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSetter_Argv(t *testing.T) {
	tests := []struct {
		name     string
		template string
		path     string
		want     []string
	}{
		{
			"feh default",
			"feh --bg-scale {}",
			"/tmp/wallpaper.png",
			[]string{"feh", "--bg-scale", "/tmp/wallpaper.png"},
		},
		{
			"gsettings",
			"gsettings set org.gnome.desktop.background picture-uri file://{}",
			"/tmp/out.png",
			[]string{"gsettings", "set", "org.gnome.desktop.background", "picture-uri", "file:///tmp/out.png"},
		},
		{
			"placeholder repeated",
			"swaybg -i {} -o {}",
			"/tmp/w.png",
			[]string{"swaybg", "-i", "/tmp/w.png", "-o", "/tmp/w.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSetter(tt.template, testLogger())
			if got := s.Argv(tt.path); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSetter_Disabled(t *testing.T) {
	s := NewSetter("", testLogger())

	if s.Enabled() {
		t.Error("empty template should disable the setter")
	}
	if err := s.Set(context.Background(), "/tmp/wallpaper.png"); err != nil {
		t.Errorf("disabled setter should be a no-op, got %v", err)
	}
}

func TestSetter_MissingCommand(t *testing.T) {
	s := NewSetter("/nonexistent/wallpaper-setter {}", testLogger())

	if err := s.Set(context.Background(), "/tmp/wallpaper.png"); err == nil {
		t.Error("expected error for missing command")
	}
}

func TestSetter_RunsCommand(t *testing.T) {
	s := NewSetter("true {}", testLogger())

	if err := s.Set(context.Background(), "/tmp/wallpaper.png"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
