package book_test

import (
	"errors"
	"strings"
	"time"

	"github.com/spachava753/abook/book"
)

func composeImportContacts(rows [][2]string, now time.Time) (*book.AddressBook, []error) {
	ab := book.New()
	var failures []error
	for _, row := range rows {
		name, values := row[0], strings.Fields(row[1])
		r, err := ab.Get(name)
		if errors.Is(err, book.ErrUnknownUser) {
			r, err = ab.Create(name)
		}
		if err != nil {
			failures = append(failures, err)
			continue
		}
		for _, value := range values {
			if p, err := book.NewPhone(value); err == nil {
				if _, err := r.AddPhone(p); err != nil && !errors.Is(err, book.ErrDuplicatePhone) {
					failures = append(failures, err)
				}
				continue
			}
			b, err := book.ParseBirthday(value, now)
			if err != nil {
				failures = append(failures, err)
				continue
			}
			if r.Birthday().IsZero() {
				_, err = r.SetBirthday(b)
			} else {
				_, err = r.ReplaceBirthday(b)
			}
			if err != nil && !errors.Is(err, book.ErrDuplicateBirthday) {
				failures = append(failures, err)
			}
		}
	}
	return ab, failures
}

func composeMovePhone(ab *book.AddressBook, from, to, phone string) error {
	src, err := ab.Get(from)
	if err != nil {
		return err
	}
	dst, err := ab.Get(to)
	if err != nil {
		return err
	}
	p, err := book.NewPhone(phone)
	if err != nil {
		return err
	}
	if !src.HasPhone(p) {
		return nil
	}
	if _, err := dst.AddPhone(p); err != nil && !errors.Is(err, book.ErrDuplicatePhone) {
		return err
	}
	src.RemovePhone(p)
	return nil
}

func composeBirthdaysThisWeek(ab *book.AddressBook, now time.Time) []string {
	var names []string
	pager := ab.Pages(50)
	for {
		batch, err := pager.NextRecords()
		if errors.Is(err, book.ErrEndOfSequence) {
			return names
		}
		for _, r := range batch {
			if days, ok := r.DaysToBirthday(now); ok && days < 7 {
				names = append(names, r.Name().String())
			}
		}
	}
}

func composePrintMatches(ab *book.AddressBook, query string) string {
	found, ok := ab.Search(query)
	if !ok {
		return ""
	}
	var sb strings.Builder
	for page := range found.Pages(book.DefaultPageSize).All() {
		sb.WriteString(page)
	}
	return sb.String()
}
