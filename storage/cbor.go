package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"

	"github.com/spachava753/abook/book"
)

const (
	fileFormatVersion = 1
	filePermission    = 0o600
)

type fileStore struct {
	Version  int           `cbor:"1,keyasint"`
	Contacts []fileContact `cbor:"2,keyasint"`
}

type fileContact struct {
	Name     string   `cbor:"1,keyasint"`
	Phones   []string `cbor:"2,keyasint,omitempty"`
	Birthday string   `cbor:"3,keyasint,omitempty"`
}

// CBORFile stores the address book as a single CBOR document.
//
// Saves write a sibling temp file and rename it over the target, so a crash
// leaves either the old or the new file in place.
type CBORFile struct{}

var _ Gateway = CBORFile{}

// Load implements [Gateway].
func (CBORFile) Load(ctx context.Context, path string) (*book.AddressBook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return book.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: reading %q failed: %w", path, err)
	}

	var store fileStore
	if err := cbor.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("storage: decoding %q failed: %w", path, err)
	}
	if store.Version != fileFormatVersion {
		return nil, fmt.Errorf("storage: %q has unsupported format version %d", path, store.Version)
	}

	entries := make([]book.Entry, 0, len(store.Contacts))
	for _, c := range store.Contacts {
		birthday, err := parseDate(c.Birthday)
		if err != nil {
			return nil, fmt.Errorf("storage: contact %q birthday: %w", c.Name, err)
		}
		entries = append(entries, book.Entry{Name: c.Name, Phones: c.Phones, Birthday: birthday})
	}

	ab, err := book.FromEntries(entries)
	if err != nil {
		return nil, fmt.Errorf("storage: loading %q failed: %w", path, err)
	}
	return ab, nil
}

// Save implements [Gateway].
func (CBORFile) Save(ctx context.Context, ab *book.AddressBook, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	store := fileStore{Version: fileFormatVersion}
	for _, e := range ab.Entries() {
		store.Contacts = append(store.Contacts, fileContact{
			Name:     e.Name,
			Phones:   e.Phones,
			Birthday: formatDate(e.Birthday),
		})
	}

	data, err := cbor.Marshal(store)
	if err != nil {
		return fmt.Errorf("storage: encoding failed: %w", err)
	}
	return writeFileAtomic(path, data)
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: creating temp file failed: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: writing temp file failed: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: syncing temp file failed: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: closing temp file failed: %w", err)
	}
	if err := os.Chmod(tmpName, filePermission); err != nil {
		return fmt.Errorf("storage: setting permissions failed: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("storage: replacing %q failed: %w", path, err)
	}
	return nil
}
