package book

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	phoneMinDigits = 9
	phoneMaxDigits = 12
	phoneMaxLen    = 19
	birthdayMaxAge = 100

	// BirthdaySeparators lists the characters accepted between the year,
	// month and day of a birthday.
	BirthdaySeparators = ".,-/_"
)

// Name identifies a record. The zero value is unset.
type Name struct {
	value string
}

// NewName returns a Name, or ErrEmptyName for an empty value.
func NewName(value string) (Name, error) {
	if value == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: value}, nil
}

// String returns the name.
func (n Name) String() string { return n.value }

// IsZero reports whether the name is unset.
func (n Name) IsZero() bool { return n.value == "" }

// Phone is a phone number as entered, separators included. The zero value is
// unset.
type Phone struct {
	value string
}

// ValidPhone reports whether value holds 9 to 12 digits once separators are
// dropped and is shorter than 20 characters overall.
func ValidPhone(value string) bool {
	digits := 0
	for _, r := range value {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= phoneMinDigits && digits <= phoneMaxDigits && utf8.RuneCountInString(value) <= phoneMaxLen
}

// NewPhone returns a Phone, or ErrInvalidPhone when [ValidPhone] fails.
func NewPhone(value string) (Phone, error) {
	if !ValidPhone(value) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: value}, nil
}

// MustPhone is NewPhone that panics on invalid input.
func MustPhone(value string) Phone {
	p, err := NewPhone(value)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the phone as entered.
func (p Phone) String() string { return p.value }

// IsZero reports whether the phone is unset.
func (p Phone) IsZero() bool { return p.value == "" }

// Birthday is a calendar date of birth. Only month and day matter for
// countdowns. The zero value is unset.
type Birthday struct {
	date time.Time
}

// NewBirthday returns a Birthday for date if it lies strictly before now and
// at most 100 calendar years back; otherwise ErrInvalidBirthday.
func NewBirthday(date, now time.Time) (Birthday, error) {
	if date.IsZero() || !date.Before(now) {
		return Birthday{}, ErrInvalidBirthday
	}
	if age := now.Year() - date.Year(); age <= 0 || age > birthdayMaxAge {
		return Birthday{}, ErrInvalidBirthday
	}
	return Birthday{date: dateOnly(date)}, nil
}

// ParseBirthday parses "YYYY-MM-DD", allowing any of [BirthdaySeparators]
// between the parts, and validates it with [NewBirthday].
func ParseBirthday(raw string, now time.Time) (Birthday, error) {
	parts := strings.Split(strings.Map(func(r rune) rune {
		if strings.ContainsRune(BirthdaySeparators, r) {
			return '-'
		}
		return r
	}, raw), "-")
	if len(parts) != 3 {
		return Birthday{}, ErrInvalidBirthday
	}

	var ymd [3]int
	for i, part := range parts {
		if part == "" || strings.TrimLeft(part, "0123456789") != "" {
			return Birthday{}, ErrInvalidBirthday
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return Birthday{}, ErrInvalidBirthday
		}
		ymd[i] = n
	}

	date := time.Date(ymd[0], time.Month(ymd[1]), ymd[2], 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow, so 2001-02-30 comes back as March 2.
	if date.Year() != ymd[0] || int(date.Month()) != ymd[1] || date.Day() != ymd[2] {
		return Birthday{}, ErrInvalidBirthday
	}
	return NewBirthday(date, now)
}

// Date returns the birthday at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

// IsZero reports whether the birthday is unset.
func (b Birthday) IsZero() bool { return b.date.IsZero() }

// Equal reports whether both birthdays fall on the same calendar date.
func (b Birthday) Equal(other Birthday) bool { return b.date.Equal(other.date) }

// String formats the birthday as DD.MM.YYYY, or "" when unset.
func (b Birthday) String() string {
	if b.IsZero() {
		return ""
	}
	return b.date.Format("02.01.2006")
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
