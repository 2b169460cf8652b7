// Package prefs persists user preferences as key-value pairs. The storage
// mechanism is a port: the sqlite implementation is the default and an
// in-memory implementation serves environments where the local database
// cannot be opened.
package prefs

import (
	"context"
)

// Repository is the preference persistence port. Get returns (nil, nil)
// when the key is absent; callers supply their own defaults.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Well-known preference keys.
const (
	KeyLanguage = "language"
	KeyTheme    = "theme"
)
