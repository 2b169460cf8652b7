package cli

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dkarpov/jobseekr/internal/client/client"
	"github.com/dkarpov/jobseekr/internal/client/models"
	"github.com/dkarpov/jobseekr/internal/client/session"
	"github.com/dkarpov/jobseekr/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// stubClient implements client.Client for guard tests.
type stubClient struct {
	user *models.User
	err  error
}

func (s *stubClient) Close() error                            { return nil }
func (s *stubClient) ClearSession()                           {}
func (s *stubClient) Healthcheck(ctx context.Context) error   { return nil }
func (s *stubClient) DeleteAccount(ctx context.Context) error { return nil }
func (s *stubClient) CurrentUser(ctx context.Context) (*models.User, error) {
	return s.user, s.err
}
func (s *stubClient) Login(ctx context.Context, u, p string) (*models.User, error) {
	return s.user, s.err
}
func (s *stubClient) Register(ctx context.Context, u, p string) (*models.User, error) {
	return s.user, s.err
}

func muteOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		s := ""
		for _, a := range args {
			if s != "" {
				s += " "
			}
			s += toString(a)
		}
		lines = append(lines, s)
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func toString(a any) string {
	if s, ok := a.(string); ok {
		return s
	}
	return ""
}

func TestRequireAuth_Authenticated_Proceeds(t *testing.T) {
	muteOutput(t)
	ctrl := session.NewController(&stubClient{user: &models.User{Username: "ada"}}, testLogger())
	require.NoError(t, ctrl.Login(context.Background(), "ada", "pw"))
	a := &App{session: ctrl}

	require.True(t, a.requireAuth(context.Background()))
}

func TestRequireAuth_Unauthenticated_Refuses(t *testing.T) {
	lines := muteOutput(t)
	ctrl := session.NewController(&stubClient{err: &client.UnauthorizedError{}}, testLogger())
	ctrl.Start(context.Background())
	a := &App{session: ctrl}

	require.False(t, a.requireAuth(context.Background()))
	require.NotEmpty(t, *lines)
}

func TestRequireAuth_WaitsOutInitialCheck(t *testing.T) {
	muteOutput(t)
	ctrl := session.NewController(&stubClient{user: &models.User{Username: "ada"}}, testLogger())
	a := &App{session: ctrl}

	go func() {
		time.Sleep(30 * time.Millisecond)
		ctrl.Start(context.Background())
	}()

	require.True(t, a.requireAuth(context.Background()))
}

func TestRequireAuth_CheckNeverCompletes_Refuses(t *testing.T) {
	muteOutput(t)
	ctrl := session.NewController(&stubClient{}, testLogger())
	a := &App{session: ctrl}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.False(t, a.requireAuth(ctx))
}
