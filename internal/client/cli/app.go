package cli

import (
	"bufio"
	"context"
	"os"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dkarpov/jobseekr/internal/client/client"
	"github.com/dkarpov/jobseekr/internal/client/config"
	"github.com/dkarpov/jobseekr/internal/client/repositories/prefs"
	"github.com/dkarpov/jobseekr/internal/client/services"
	"github.com/dkarpov/jobseekr/internal/client/session"
	"github.com/dkarpov/jobseekr/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config  *config.Config
	api     client.Client
	session *session.Controller
	prefs   *services.PrefsService
	theme   *TerminalTheme
	log     logging.Logger
	reader  *bufio.Reader

	modeMu sync.Mutex
	mode   Mode
}

// NewApp wires the CLI: local preferences storage (with an in-memory
// fallback when the database cannot be opened), the API client, the session
// controller, and the preference service.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	var repo prefs.Repository
	db, err := client.InitDatabase(ctx, c.PreferencesDSN)
	if err != nil {
		log.Warn(ctx, "preferences database unavailable, using in-memory store", "dsn", c.PreferencesDSN, "error", err)
		repo = prefs.NewMemoryRepository()
	} else {
		repo = prefs.NewSQLiteRepository(db)
	}

	api, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	if err != nil {
		return nil, err
	}

	theme := NewTerminalTheme()
	ps := services.NewPrefsService(repo, theme, log)
	ctrl := session.NewController(api, log)

	return &App{
		config:  c,
		api:     api,
		session: ctrl,
		prefs:   ps,
		theme:   theme,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		mode:    ModeOnline,
	}, nil
}

// Run restores preferences, kicks off the initial session reconciliation
// and the connectivity watcher, and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.api.Close()

	a.prefs.ApplyTheme(a.prefs.Theme(ctx))

	// Announce sign-outs decided elsewhere (e.g. a background re-sync that
	// learned the server no longer recognizes the session).
	last := a.session.Current().State
	unsubscribe := a.session.Subscribe(func(snap session.Snapshot) {
		if snap.State == session.StateUnauthenticated && last == session.StateAuthenticated {
			printlnFn("Your session has ended. Use 'login' to sign in again.")
		}
		last = snap.State
	})
	defer unsubscribe()

	go a.session.Start(ctx)
	go a.StartHealthWatcher(ctx, a.config.HealthcheckInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.Current().State == session.StateAuthenticated
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()
	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

func (a *App) getMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

// getStatus renders the REPL prompt status: username when signed in, plus
// connectivity when degraded.
func (a *App) getStatus() string {
	s := ""
	snap := a.session.Current()
	switch {
	case snap.Checking:
		s = "checking"
	case snap.State == session.StateAuthenticated:
		s = snap.User.Username
	}
	if mode := a.getMode(); mode == ModeOffline {
		if s != "" {
			s += " "
		}
		s += string(mode)
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

// StartHealthWatcher probes the healthcheck endpoint on the given interval
// and maintains the online/offline mode. Each probe retries transient
// failures a couple of times before the mode flips, so one dropped packet
// does not mark the server offline.
func (a *App) StartHealthWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, interval)
			err := retry.Do(probeCtx, retry.WithMaxRetries(2, retry.NewConstant(500*time.Millisecond)), func(ctx context.Context) error {
				if err := a.api.Healthcheck(ctx); err != nil {
					return retry.RetryableError(err)
				}
				return nil
			})
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
