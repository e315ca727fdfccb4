package book

import (
	"slices"
	"time"
)

const (
	msgPhoneAdded       = "Phone number added successfully."
	msgPhoneRemoved     = "Phone number deleted successfully."
	msgPhoneChanged     = "The phone number has been changed successfully."
	msgPhoneNotFound    = "The user does not have such a phone number"
	msgBirthdayAdded    = "Birthday added successfully."
	msgBirthdayReplaced = "Birthday changed successfully."
)

// Result is the outcome of a lookup-and-modify operation on a record. A miss
// is a normal outcome rather than an error.
type Result struct {
	Found   bool
	Message string
}

// String returns the result message.
func (r Result) String() string { return r.Message }

// Record is one contact: a name, an ordered list of distinct phones and an
// optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday Birthday
}

// NewRecord returns a record with the given phones. Unset and repeated phones
// are skipped. A record starts without a birthday; set one with
// [Record.SetBirthday].
func NewRecord(name Name, phones ...Phone) *Record {
	r := &Record{name: name}
	for _, p := range phones {
		if !p.IsZero() && r.phoneIndex(p) < 0 {
			r.phones = append(r.phones, p)
		}
	}
	return r
}

// Name returns the record name.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phones in insertion order.
func (r *Record) Phones() []Phone { return slices.Clone(r.phones) }

// Birthday returns the birthday; check IsZero for absence.
func (r *Record) Birthday() Birthday { return r.birthday }

// DaysToBirthday returns the whole days from now until the next birthday, or
// false when no birthday is set.
//
// The celebration is midnight of (month, day) in now's location. Once that
// moment has passed this year the count targets next year, so on the birthday
// itself the answer is roughly a year rather than 0. A February 29 birthday
// falls on March 1 in non-leap years.
func (r *Record) DaysToBirthday(now time.Time) (int, bool) {
	if r.birthday.IsZero() {
		return 0, false
	}
	// Count on now's wall clock in UTC so a DST shift between now and the
	// birthday does not stretch or shrink a day.
	wall := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.UTC)
	month, day := r.birthday.date.Month(), r.birthday.date.Day()
	next := time.Date(wall.Year(), month, day, 0, 0, 0, 0, time.UTC)
	if wall.After(next) {
		next = time.Date(wall.Year()+1, month, day, 0, 0, 0, 0, time.UTC)
	}
	return int(next.Sub(wall) / (24 * time.Hour)), true
}

// SetBirthday sets the birthday whether or not one is present.
func (r *Record) SetBirthday(b Birthday) (string, error) {
	if b.IsZero() {
		return "", ErrInvalidBirthday
	}
	if r.birthday.Equal(b) {
		return "", ErrDuplicateBirthday
	}
	r.birthday = b
	return msgBirthdayAdded, nil
}

// ReplaceBirthday swaps an existing birthday for b. It fails with
// ErrInvalidBirthday when the record has no birthday yet.
func (r *Record) ReplaceBirthday(b Birthday) (string, error) {
	if r.birthday.IsZero() || b.IsZero() {
		return "", ErrInvalidBirthday
	}
	if r.birthday.Equal(b) {
		return "", ErrDuplicateBirthday
	}
	r.birthday = b
	return msgBirthdayReplaced, nil
}

// RemoveBirthday clears the birthday.
func (r *Record) RemoveBirthday() { r.birthday = Birthday{} }

// AddPhone appends p unless the record already has it.
func (r *Record) AddPhone(p Phone) (string, error) {
	if r.phoneIndex(p) >= 0 {
		return "", ErrDuplicatePhone
	}
	if p.IsZero() {
		return "", ErrInvalidPhone
	}
	r.phones = append(r.phones, p)
	return msgPhoneAdded, nil
}

// RemovePhone drops the first phone equal to p.
func (r *Record) RemovePhone(p Phone) Result {
	i := r.phoneIndex(p)
	if i < 0 {
		return Result{Message: msgPhoneNotFound}
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return Result{Found: true, Message: msgPhoneRemoved}
}

// EditPhone replaces old with updated in place.
func (r *Record) EditPhone(old, updated Phone) (Result, error) {
	if updated.IsZero() {
		return Result{}, ErrInvalidPhone
	}
	i := r.phoneIndex(old)
	if i < 0 {
		return Result{Message: msgPhoneNotFound}, nil
	}
	if j := r.phoneIndex(updated); j >= 0 && j != i {
		return Result{}, ErrDuplicatePhone
	}
	r.phones[i] = updated
	return Result{Found: true, Message: msgPhoneChanged}, nil
}

// HasPhone reports whether the record holds p.
func (r *Record) HasPhone(p Phone) bool { return r.phoneIndex(p) >= 0 }

func (r *Record) phoneIndex(p Phone) int {
	return slices.Index(r.phones, p)
}
