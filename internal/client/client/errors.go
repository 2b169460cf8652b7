package client

import "errors"

var (
	// ErrUnavailable marks transport failures and server outages. Actions
	// failing with it are safe to retry.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized marks a 401 from the server: the session cookie is
	// missing, expired, or the submitted credentials were rejected.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation marks a 400 from the server; the detail message is
	// user-correctable and shown verbatim.
	ErrValidation = errors.New("validation error")
)

// ValidationError carries the server-supplied detail of a 400 response.
// The detail is preserved verbatim and never reformatted.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }

// Is lets errors.Is(err, ErrValidation) match a *ValidationError.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// UnauthorizedError carries the optional detail of a 401 response
// (e.g. "Invalid credentials").
type UnauthorizedError struct {
	Detail string
}

func (e *UnauthorizedError) Error() string {
	if e.Detail == "" {
		return ErrUnauthorized.Error()
	}
	return e.Detail
}

// Is lets errors.Is(err, ErrUnauthorized) match an *UnauthorizedError.
func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }
