package book

import (
	"iter"
	"slices"
	"strings"
	"unicode/utf8"
)

// DefaultPageSize is the page size used when a non-positive size is given.
const DefaultPageSize = 10

const (
	colUser     = 33
	colPhones   = 20
	colBirthday = 13
	tableWidth  = colUser + colPhones + colBirthday + 4
)

// Pager walks a snapshot of an address book in insertion order, one page at a
// time. Each call to [AddressBook.Pages] returns an independent Pager.
type Pager struct {
	records []*Record
	size    int
	pos     int
}

// Pages returns a pager over the current records with size records per page.
func (b *AddressBook) Pages(size int) *Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Pager{records: b.Records(), size: size}
}

// NextRecords returns the next batch sorted by name, or ErrEndOfSequence once
// every record has been returned.
func (p *Pager) NextRecords() ([]*Record, error) {
	if p.pos >= len(p.records) {
		return nil, ErrEndOfSequence
	}
	end := min(p.pos+p.size, len(p.records))
	batch := slices.Clone(p.records[p.pos:end])
	p.pos = end

	slices.SortFunc(batch, func(a, b *Record) int {
		return strings.Compare(a.Name().String(), b.Name().String())
	})
	return batch, nil
}

// Next renders the next batch as a table, or returns ErrEndOfSequence.
func (p *Pager) Next() (string, error) {
	batch, err := p.NextRecords()
	if err != nil {
		return "", err
	}
	return RenderTable(batch), nil
}

// All yields the remaining pages as rendered tables.
func (p *Pager) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			page, err := p.Next()
			if err != nil || !yield(page) {
				return
			}
		}
	}
}

// RenderTable draws records as a fixed-width User/Phones/Birthday table. A
// record with several phones takes one row per phone; rows after the first
// leave the user and birthday cells blank.
func RenderTable(records []*Record) string {
	var sb strings.Builder
	rule := strings.Repeat("-", tableWidth) + "\n"

	sb.WriteString(rule)
	sb.WriteString("|" + center("User", colUser) + "|" + center("Phones", colPhones) + "|" + center("Birthday", colBirthday) + "|\n")
	sb.WriteString(rule)
	for _, r := range records {
		name, birthday := r.Name().String(), r.Birthday().String()
		if len(r.phones) == 0 {
			writeRow(&sb, name, "", birthday)
		}
		for i, phone := range r.phones {
			if i == 0 {
				writeRow(&sb, name, phone.String(), birthday)
				continue
			}
			writeRow(&sb, "", phone.String(), "")
		}
		sb.WriteString(rule)
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, user, phone, birthday string) {
	sb.WriteString("| ")
	sb.WriteString(padRight(user, colUser-1))
	sb.WriteString("|")
	sb.WriteString(padLeft(phone, colPhones-1))
	sb.WriteString(" |")
	sb.WriteString(center(birthday, colBirthday))
	sb.WriteString("|\n")
}

func padRight(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-utf8.RuneCountInString(s)))
}

func padLeft(s string, width int) string {
	return strings.Repeat(" ", max(0, width-utf8.RuneCountInString(s))) + s
}

func center(s string, width int) string {
	pad := max(0, width-utf8.RuneCountInString(s))
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
