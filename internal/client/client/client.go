package client

import (
	"context"

	"github.com/dkarpov/jobseekr/internal/client/models"
)

// Client is the account API surface consumed by the session controller.
//
// All network methods honor context cancellation and resolve every HTTP
// outcome to a typed error: *ValidationError (400), *UnauthorizedError (401),
// or a wrapped ErrUnavailable (transport failure, timeout, 5xx). They never
// panic and never return raw transport errors.
type Client interface {
	Close() error

	// Register creates an account and returns the server's user record.
	// The server validates credentials; the client sends them verbatim.
	Register(ctx context.Context, username, password string) (*models.User, error)

	// Login authenticates and returns the server's user record. The session
	// cookie set by the server is retained for subsequent calls.
	Login(ctx context.Context, username, password string) (*models.User, error)

	// CurrentUser fetches the server's authoritative view of the session.
	CurrentUser(ctx context.Context) (*models.User, error)

	// DeleteAccount removes the authenticated account.
	DeleteAccount(ctx context.Context) error

	// Healthcheck probes server liveness.
	Healthcheck(ctx context.Context) error

	// ClearSession drops the ambient session credentials (client-side logout).
	ClearSession()
}
