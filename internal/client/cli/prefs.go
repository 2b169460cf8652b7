package cli

import (
	"context"

	"github.com/dkarpov/jobseekr/internal/client/models"
	"github.com/dkarpov/jobseekr/internal/client/session"
)

// Language shows or sets the language preference. With no argument it
// prints the stored value (or "auto" when nothing is stored).
func (a *App) Language(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Language:", string(a.prefs.Language(ctx)))
		return nil
	}

	lang := models.Language(args[0])
	if err := a.prefs.SetLanguage(ctx, lang); err != nil {
		printlnFn(err.Error(), "(one of: en, es, fr, de, pt, la, auto)")
		return err
	}
	printlnFn("Language set to", string(lang))
	return nil
}

// Theme shows or sets the theme preference. Setting also applies the
// palette immediately.
func (a *App) Theme(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Theme:", string(a.prefs.Theme(ctx)))
		return nil
	}

	theme := models.Theme(args[0])
	if err := a.prefs.SetTheme(ctx, theme); err != nil {
		printlnFn(err.Error(), "(one of: light, dark, auto)")
		return err
	}
	printlnFn("Theme set to", string(theme))
	return nil
}

// Status prints a session and connectivity overview.
func (a *App) Status(ctx context.Context) error {
	snap := a.session.Current()
	switch {
	case snap.Checking:
		printlnFn("Session: checking...")
	case snap.State == session.StateAuthenticated:
		printlnFn("Session: signed in as", snap.User.Username)
	default:
		printlnFn("Session: not signed in")
	}
	printlnFn("Server: ", string(a.getMode()))
	printlnFn("Language:", string(a.prefs.Language(ctx)))
	printlnFn("Theme:   ", string(a.prefs.Theme(ctx)))
	return nil
}
