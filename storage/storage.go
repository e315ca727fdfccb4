package storage

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/spachava753/abook/book"
)

const dateLayout = time.DateOnly

// Gateway loads and saves a whole address book at a path.
type Gateway interface {
	Load(ctx context.Context, path string) (*book.AddressBook, error)
	Save(ctx context.Context, ab *book.AddressBook, path string) error
}

// For picks the backend for path by extension: .db, .sqlite and .sqlite3
// select SQLite, anything else the CBOR file format.
func For(path string) Gateway {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return SQLite{}
	default:
		return CBORFile{}
	}
}

// Load reads the address book at path. A missing file yields an empty book.
func Load(ctx context.Context, path string) (*book.AddressBook, error) {
	return For(path).Load(ctx, path)
}

// Save replaces the contents at path with ab.
func Save(ctx context.Context, ab *book.AddressBook, path string) error {
	return For(path).Save(ctx, ab, path)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}
