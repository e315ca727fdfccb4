package book

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// AddressBook holds records keyed by name. Insertion order is kept for
// paging; it carries no other meaning.
//
// An AddressBook is not safe for concurrent use.
type AddressBook struct {
	index map[string]*Record
	names []string
}

// New returns an empty address book.
func New() *AddressBook {
	return &AddressBook{index: map[string]*Record{}}
}

// Add stores r under its name, replacing any record with that name. It does
// not check for an existing entry; use [AddressBook.Create] for that.
func (b *AddressBook) Add(r *Record) {
	key := r.Name().String()
	if _, ok := b.index[key]; !ok {
		b.names = append(b.names, key)
	}
	b.index[key] = r
}

// Create adds an empty record named name.
func (b *AddressBook) Create(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	if b.Has(name) {
		return nil, ErrUserAlreadyExists
	}
	r := NewRecord(n)
	b.Add(r)
	return r, nil
}

// Has reports whether a record named name exists.
func (b *AddressBook) Has(name string) bool {
	_, ok := b.index[name]
	return ok
}

// Get returns the record named name.
func (b *AddressBook) Get(name string) (*Record, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	r, ok := b.index[name]
	if !ok {
		return nil, ErrUnknownUser
	}
	return r, nil
}

// Remove deletes the record named name.
func (b *AddressBook) Remove(name string) error {
	if _, err := b.Get(name); err != nil {
		return err
	}
	delete(b.index, name)
	b.names = slices.DeleteFunc(b.names, func(n string) bool { return n == name })
	return nil
}

// Len returns the number of records.
func (b *AddressBook) Len() int { return len(b.names) }

// Names returns record names in insertion order.
func (b *AddressBook) Names() []string { return slices.Clone(b.names) }

// Records returns records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.names))
	for _, name := range b.names {
		out = append(out, b.index[name])
	}
	return out
}

// Search returns the records whose name or any phone contains substr,
// case-sensitively. The result shares records with b. It returns false when
// nothing matched.
func (b *AddressBook) Search(substr string) (*AddressBook, bool) {
	found := New()
	for _, r := range b.Records() {
		if recordContains(r, substr) {
			found.Add(r)
		}
	}
	if found.Len() == 0 {
		return nil, false
	}
	return found, true
}

func recordContains(r *Record, substr string) bool {
	if strings.Contains(r.Name().String(), substr) {
		return true
	}
	for _, p := range r.phones {
		if strings.Contains(p.String(), substr) {
			return true
		}
	}
	return false
}

// Entry is the plain data form of a record used by persistence backends. A
// zero Birthday means none.
type Entry struct {
	Name     string
	Phones   []string
	Birthday time.Time
}

// Entries returns every record as an Entry, in insertion order.
func (b *AddressBook) Entries() []Entry {
	entries := make([]Entry, 0, b.Len())
	for _, r := range b.Records() {
		e := Entry{Name: r.Name().String(), Birthday: r.Birthday().Date()}
		for _, p := range r.phones {
			e.Phones = append(e.Phones, p.String())
		}
		entries = append(entries, e)
	}
	return entries
}

// FromEntries rebuilds an address book. Names and phones are validated again;
// birthdays are taken as stored since they were checked against the clock at
// the time they were entered.
func FromEntries(entries []Entry) (*AddressBook, error) {
	b := New()
	for _, e := range entries {
		name, err := NewName(e.Name)
		if err != nil {
			return nil, err
		}
		if b.Has(e.Name) {
			return nil, fmt.Errorf("book: entry %q: %w", e.Name, ErrUserAlreadyExists)
		}
		r := NewRecord(name)
		for _, raw := range e.Phones {
			p, err := NewPhone(raw)
			if err != nil {
				return nil, fmt.Errorf("book: entry %q phone %q: %w", e.Name, raw, err)
			}
			if _, err := r.AddPhone(p); err != nil {
				return nil, fmt.Errorf("book: entry %q phone %q: %w", e.Name, raw, err)
			}
		}
		if !e.Birthday.IsZero() {
			r.birthday = Birthday{date: dateOnly(e.Birthday)}
		}
		b.Add(r)
	}
	return b, nil
}
