package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dkarpov/jobseekr/internal/client/models"
	"github.com/dkarpov/jobseekr/internal/logging"
)

// DefaultRequestTimeout bounds every API exchange. The backend defines no
// normative timeout, so the client enforces its own.
const DefaultRequestTimeout = 30 * time.Second

// HTTPClient talks to the account API over HTTP/JSON. Credentials are
// ambient: the server sets a session cookie on login/register and the jar
// replays it on every call. The client is stateless between calls apart
// from that jar and never caches responses.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	jar     *sessionJar
	log     logging.Logger
}

// sessionJar is the cookie jar installed on the HTTP client for its whole
// lifetime. http.Client reads its Jar field without synchronization, so the
// field must never be reassigned while requests are in flight; clearing the
// session instead swaps the inner jar under a lock.
type sessionJar struct {
	mu  sync.Mutex
	jar http.CookieJar
}

func newSessionJar() (*sessionJar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &sessionJar{jar: inner}, nil
}

func (j *sessionJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.jar.SetCookies(u, cookies)
}

func (j *sessionJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.jar.Cookies(u)
}

// Reset discards all stored cookies. Safe to call while requests are in
// flight; a request already past its cookie lookup still completes with the
// old credentials.
func (j *sessionJar) Reset() {
	inner, err := cookiejar.New(nil)
	if err != nil {
		// cookiejar.New with nil options cannot fail today; keep the old
		// jar rather than dropping connectivity if that ever changes.
		return
	}
	j.mu.Lock()
	j.jar = inner
	j.mu.Unlock()
}

// credentials is the request body for login and register.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// errorBody is the shape of 4xx responses.
type errorBody struct {
	Detail string `json:"detail"`
}

// NewHTTPClient constructs a client bound to baseURL (e.g. "https://api.example.com").
// A non-positive timeout falls back to DefaultRequestTimeout.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	jar, err := newSessionJar()
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Jar: jar, Timeout: timeout},
		jar:     jar,
		log:     log,
	}, nil
}

// do executes one API exchange and returns the response body for 2xx
// statuses. Non-2xx statuses and transport failures are mapped to the
// package's typed errors.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	reqID := uuid.NewString()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "api request failed", "req_id", reqID, "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn(ctx, "api response read failed", "req_id", reqID, "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "api request", "req_id", reqID, "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}
	return nil, c.mapStatus(resp.StatusCode, data)
}

// mapStatus converts a non-2xx response into a typed error. The detail of
// 400/401 bodies is preserved verbatim.
func (c *HTTPClient) mapStatus(status int, body []byte) error {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)

	switch {
	case status == http.StatusBadRequest:
		return &ValidationError{Detail: eb.Detail}
	case status == http.StatusUnauthorized:
		return &UnauthorizedError{Detail: eb.Detail}
	case status >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, status)
	default:
		return fmt.Errorf("unexpected status %d", status)
	}
}

func (c *HTTPClient) Register(ctx context.Context, username, password string) (*models.User, error) {
	data, err := c.do(ctx, http.MethodPost, "/auth/register", credentials{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	return decodeUser(data)
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.User, error) {
	data, err := c.do(ctx, http.MethodPost, "/auth/login", credentials{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	return decodeUser(data)
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	data, err := c.do(ctx, http.MethodGet, "/auth/me", nil)
	if err != nil {
		return nil, err
	}
	return decodeUser(data)
}

func (c *HTTPClient) DeleteAccount(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, "/auth/account", nil)
	return err
}

// Healthcheck calls the monitoring endpoint and verifies the literal
// JSON-encoded "OK" the server is contracted to return.
func (c *HTTPClient) Healthcheck(ctx context.Context) error {
	data, err := c.do(ctx, http.MethodGet, "/api/healthcheck", nil)
	if err != nil {
		return err
	}
	var status string
	if err := json.Unmarshal(data, &status); err != nil {
		return fmt.Errorf("%w: malformed healthcheck response", ErrUnavailable)
	}
	if status != "OK" {
		return ErrUnavailable
	}
	return nil
}

// ClearSession resets the cookie jar, invalidating the ambient session
// credentials without a server round trip.
func (c *HTTPClient) ClearSession() {
	c.jar.Reset()
}

// Close releases idle transport connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func decodeUser(data []byte) (*models.User, error) {
	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &u, nil
}
