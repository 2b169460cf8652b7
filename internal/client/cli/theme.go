package cli

import (
	"sync"

	"github.com/dkarpov/jobseekr/internal/client/models"
)

// ANSI palettes for the prompt. ThemeAuto clears the override so the
// terminal's own colors apply.
const (
	ansiLight = "\x1b[30;47m"
	ansiDark  = "\x1b[97;40m"
	ansiReset = "\x1b[0m"
)

// TerminalTheme applies the theme preference to terminal output. It is the
// CLI's implementation of services.ThemeApplier. Apply is idempotent.
type TerminalTheme struct {
	mu      sync.Mutex
	current models.Theme
}

func NewTerminalTheme() *TerminalTheme {
	return &TerminalTheme{current: models.ThemeAuto}
}

func (t *TerminalTheme) Apply(theme models.Theme) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !theme.Valid() {
		theme = models.ThemeAuto
	}
	t.current = theme
}

// Current returns the theme in effect.
func (t *TerminalTheme) Current() models.Theme {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Colorize wraps s in the active palette, or returns it unchanged when the
// theme defers to the terminal default.
func (t *TerminalTheme) Colorize(s string) string {
	switch t.Current() {
	case models.ThemeLight:
		return ansiLight + s + ansiReset
	case models.ThemeDark:
		return ansiDark + s + ansiReset
	default:
		return s
	}
}
