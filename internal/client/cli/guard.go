package cli

import (
	"context"
	"time"

	"github.com/dkarpov/jobseekr/internal/client/session"
)

// readyTimeout bounds how long a guarded command waits for the initial
// session check before treating the session as unauthenticated.
const readyTimeout = 35 * time.Second

// requireAuth is the gate in front of commands that need a signed-in user.
// While the initial reconciliation is still running it waits with a neutral
// notice instead of pushing the user to login, so a slow first check does
// not produce a misleading prompt. It reports whether the command may
// proceed.
func (a *App) requireAuth(ctx context.Context) bool {
	snap := a.session.Current()

	if snap.Checking {
		printlnFn("Checking session...")
		waitCtx, cancel := context.WithTimeout(ctx, readyTimeout)
		defer cancel()
		if err := a.session.WaitReady(waitCtx); err != nil {
			printlnFn("Could not verify the session. Please try again.")
			return false
		}
		snap = a.session.Current()
	}

	if snap.State != session.StateAuthenticated {
		printlnFn("You are not signed in. Use 'login' first.")
		return false
	}
	return true
}
