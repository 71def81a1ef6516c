package wallpaper

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Setter invokes the external command that actually sets the desktop
// background (feh, gsettings, osascript, ...). The command is a
// template where "{}" is replaced with the rendered image path.
type Setter struct {
	template string
	logger   *slog.Logger
}

// NewSetter creates a setter for the given command template. An empty
// template yields a disabled setter.
func NewSetter(template string, logger *slog.Logger) *Setter {
	return &Setter{
		template: template,
		logger:   logger,
	}
}

// Enabled reports whether a command is configured
func (s *Setter) Enabled() bool {
	return s.template != ""
}

// Argv expands the template with the image path and splits it on
// whitespace. The path is substituted verbatim, so output paths with
// spaces are not supported by the template mechanism.
func (s *Setter) Argv(imagePath string) []string {
	expanded := strings.ReplaceAll(s.template, "{}", imagePath)
	return strings.Fields(expanded)
}

// Set runs the configured command with the image path substituted in
func (s *Setter) Set(ctx context.Context, imagePath string) error {
	if !s.Enabled() {
		return nil
	}

	argv := s.Argv(imagePath)
	if len(argv) == 0 {
		return fmt.Errorf("wallpaper command expanded to nothing")
	}

	s.logger.Debug("Running wallpaper command", "argv", argv)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("wallpaper command %q failed: %w (output: %s)", argv[0], err, strings.TrimSpace(string(out)))
	}

	return nil
}
