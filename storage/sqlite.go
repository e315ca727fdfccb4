package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/spachava753/abook/book"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS contacts (
	name     TEXT PRIMARY KEY,
	position INTEGER NOT NULL,
	birthday TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS phones (
	contact  TEXT NOT NULL REFERENCES contacts(name) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	value    TEXT NOT NULL,
	PRIMARY KEY (contact, value)
);`

// SQLite stores the address book in a SQLite database. Each save replaces
// every row inside a single transaction.
type SQLite struct{}

var _ Gateway = SQLite{}

// Load implements [Gateway].
func (SQLite) Load(ctx context.Context, path string) (*book.AddressBook, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return book.New(), nil
	}

	db, err := openDB(ctx, path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	entries, err := selectEntries(ctx, db)
	if err != nil {
		return nil, err
	}

	ab, err := book.FromEntries(entries)
	if err != nil {
		return nil, fmt.Errorf("storage: loading %q failed: %w", path, err)
	}
	return ab, nil
}

// Save implements [Gateway].
func (SQLite) Save(ctx context.Context, ab *book.AddressBook, path string) (err error) {
	db, err := openDB(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: begin failed: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM phones; DELETE FROM contacts;`); err != nil {
		return fmt.Errorf("storage: clearing tables failed: %w", err)
	}

	insertContact, err := tx.PrepareContext(ctx, `INSERT INTO contacts (name, position, birthday) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("storage: preparing contact insert failed: %w", err)
	}
	defer insertContact.Close()

	insertPhone, err := tx.PrepareContext(ctx, `INSERT INTO phones (contact, position, value) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("storage: preparing phone insert failed: %w", err)
	}
	defer insertPhone.Close()

	for i, e := range ab.Entries() {
		if _, err := insertContact.ExecContext(ctx, e.Name, i, formatDate(e.Birthday)); err != nil {
			return fmt.Errorf("storage: inserting contact %q failed: %w", e.Name, err)
		}
		for j, phone := range e.Phones {
			if _, err := insertPhone.ExecContext(ctx, e.Name, j, phone); err != nil {
				return fmt.Errorf("storage: inserting phone %q for %q failed: %w", phone, e.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: commit failed: %w", err)
	}
	return nil
}

func openDB(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("storage: opening %q failed: %w", path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: opening %q failed: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: creating schema in %q failed: %w", path, err)
	}
	return db, nil
}

// uriPathEscaper escapes the characters that end or corrupt the path part of
// a SQLite file: URI.
var uriPathEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

func sqliteDSN(path string) string {
	return "file:" + uriPathEscaper.Replace(path) + "?_foreign_keys=on"
}

func selectEntries(ctx context.Context, db *sql.DB) ([]book.Entry, error) {
	rows, err := db.QueryContext(ctx, `SELECT name, birthday FROM contacts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("storage: selecting contacts failed: %w", err)
	}
	defer rows.Close()

	var entries []book.Entry
	index := map[string]int{}
	for rows.Next() {
		var name, birthday string
		if err := rows.Scan(&name, &birthday); err != nil {
			return nil, fmt.Errorf("storage: scanning contact failed: %w", err)
		}
		date, err := parseDate(birthday)
		if err != nil {
			return nil, fmt.Errorf("storage: contact %q birthday: %w", name, err)
		}
		index[name] = len(entries)
		entries = append(entries, book.Entry{Name: name, Birthday: date})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: selecting contacts failed: %w", err)
	}

	phoneRows, err := db.QueryContext(ctx, `SELECT contact, value FROM phones ORDER BY contact, position`)
	if err != nil {
		return nil, fmt.Errorf("storage: selecting phones failed: %w", err)
	}
	defer phoneRows.Close()

	for phoneRows.Next() {
		var contact, value string
		if err := phoneRows.Scan(&contact, &value); err != nil {
			return nil, fmt.Errorf("storage: scanning phone failed: %w", err)
		}
		i, ok := index[contact]
		if !ok {
			return nil, fmt.Errorf("storage: phone %q belongs to unknown contact %q", value, contact)
		}
		entries[i].Phones = append(entries[i].Phones, value)
	}
	if err := phoneRows.Err(); err != nil {
		return nil, fmt.Errorf("storage: selecting phones failed: %w", err)
	}
	return entries, nil
}
