package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkarpov/jobseekr/internal/client/models"
)

func TestTerminalTheme_DefaultsToAuto(t *testing.T) {
	th := NewTerminalTheme()
	require.Equal(t, models.ThemeAuto, th.Current())
	require.Equal(t, "plain", th.Colorize("plain"))
}

func TestTerminalTheme_ApplyAndColorize(t *testing.T) {
	th := NewTerminalTheme()

	th.Apply(models.ThemeDark)
	require.Equal(t, models.ThemeDark, th.Current())
	colored := th.Colorize("x")
	require.True(t, strings.HasPrefix(colored, "\x1b["))
	require.True(t, strings.HasSuffix(colored, ansiReset))

	// auto removes the override
	th.Apply(models.ThemeAuto)
	require.Equal(t, "x", th.Colorize("x"))
}

func TestTerminalTheme_ApplyIsIdempotent(t *testing.T) {
	th := NewTerminalTheme()
	th.Apply(models.ThemeLight)
	first := th.Colorize("x")
	th.Apply(models.ThemeLight)
	require.Equal(t, first, th.Colorize("x"))
}

func TestTerminalTheme_InvalidThemeFallsBackToAuto(t *testing.T) {
	th := NewTerminalTheme()
	th.Apply(models.Theme("sepia"))
	require.Equal(t, models.ThemeAuto, th.Current())
}
