package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nalgeon/be"

	"github.com/spachava753/abook/book"
)

var refNow = time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC)

func sampleBook(t *testing.T) *book.AddressBook {
	t.Helper()
	ab := book.New()

	alice, err := ab.Create("Alice Smith")
	be.Err(t, err, nil)
	for _, p := range []string{"380501234567", "+38 (067) 111-22-33"} {
		_, err := alice.AddPhone(book.MustPhone(p))
		be.Err(t, err, nil)
	}
	birthday, err := book.ParseBirthday("1990-05-12", refNow)
	be.Err(t, err, nil)
	_, err = alice.SetBirthday(birthday)
	be.Err(t, err, nil)

	_, err = ab.Create("Bob")
	be.Err(t, err, nil)

	carol, err := ab.Create("Carol")
	be.Err(t, err, nil)
	_, err = carol.AddPhone(book.MustPhone("0931234567"))
	be.Err(t, err, nil)

	return ab
}

func TestFor(t *testing.T) {
	be.Equal(t, For("users.db"), Gateway(SQLite{}))
	be.Equal(t, For("users.SQLITE3"), Gateway(SQLite{}))
	be.Equal(t, For("users.cbor"), Gateway(CBORFile{}))
	be.Equal(t, For("users.bin"), Gateway(CBORFile{}))
}

func TestRoundTrip(t *testing.T) {
	for _, file := range []string{"users.cbor", "users.db"} {
		t.Run(file, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), file)
			ab := sampleBook(t)

			be.Err(t, Save(ctx, ab, path), nil)
			loaded, err := Load(ctx, path)
			be.Err(t, err, nil)
			be.Equal(t, loaded.Entries(), ab.Entries())

			// A second save replaces the previous contents.
			be.Err(t, ab.Remove("Bob"), nil)
			be.Err(t, Save(ctx, ab, path), nil)
			loaded, err = Load(ctx, path)
			be.Err(t, err, nil)
			be.Equal(t, loaded.Names(), []string{"Alice Smith", "Carol"})
			be.Equal(t, loaded.Entries(), ab.Entries())
		})
	}
}

func TestSQLitePathWithURICharacters(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "my?book#1%.db")
	ab := sampleBook(t)

	be.Err(t, Save(ctx, ab, path), nil)
	_, err := os.Stat(path)
	be.Err(t, err, nil)

	loaded, err := Load(ctx, path)
	be.Err(t, err, nil)
	be.Equal(t, loaded.Entries(), ab.Entries())

	be.Equal(t, sqliteDSN("/tmp/a?b#c%d.db"), "file:/tmp/a%3fb%23c%25d.db?_foreign_keys=on")
}

func TestLoadMissingFile(t *testing.T) {
	for _, file := range []string{"missing.cbor", "missing.db"} {
		path := filepath.Join(t.TempDir(), file)
		ab, err := Load(context.Background(), path)
		be.Err(t, err, nil)
		be.Equal(t, ab.Len(), 0)

		_, err = os.Stat(path)
		be.True(t, os.IsNotExist(err))
	}
}

func TestSaveEmptyBook(t *testing.T) {
	for _, file := range []string{"empty.cbor", "empty.db"} {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), file)
		be.Err(t, Save(ctx, book.New(), path), nil)

		ab, err := Load(ctx, path)
		be.Err(t, err, nil)
		be.Equal(t, ab.Len(), 0)
	}
}

func TestCBORFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users.cbor")
	for range 3 {
		be.Err(t, CBORFile{}.Save(context.Background(), sampleBook(t), path), nil)
	}

	entries, err := os.ReadDir(dir)
	be.Err(t, err, nil)
	be.Equal(t, len(entries), 1)
	be.Equal(t, entries[0].Name(), "users.cbor")
}

func TestCBORFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.cbor")
	be.Err(t, os.WriteFile(path, []byte{0xff, 0x00}, 0o600), nil)

	_, err := CBORFile{}.Load(context.Background(), path)
	be.Err(t, err, "storage: decoding")
}

func TestCBORFileHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "users.cbor")
	be.Err(t, CBORFile{}.Save(ctx, sampleBook(t), path), context.Canceled)
	_, err := CBORFile{}.Load(ctx, path)
	be.Err(t, err, context.Canceled)
}
