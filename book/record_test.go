package book

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/nalgeon/be"
)

func mustBirthday(t *testing.T, raw string) Birthday {
	t.Helper()
	b, err := ParseBirthday(raw, refNow)
	be.Err(t, err, nil)
	return b
}

func newAlice(t *testing.T, phones ...string) *Record {
	t.Helper()
	name, err := NewName("Alice")
	be.Err(t, err, nil)
	r := NewRecord(name)
	for _, p := range phones {
		_, err := r.AddPhone(MustPhone(p))
		be.Err(t, err, nil)
	}
	return r
}

func phoneValues(r *Record) []string {
	var out []string
	for _, p := range r.Phones() {
		out = append(out, p.String())
	}
	return out
}

func TestDaysToBirthday(t *testing.T) {
	tests := []struct {
		name     string
		birthday string
		now      time.Time
		want     int
	}{
		{"later this month", "1990-10-20", refNow, 4},
		{"tomorrow before midnight", "1990-10-16", refNow, 0},
		{"today after midnight rolls over", "1990-10-15", refNow, 364},
		{"yesterday", "1990-10-14", refNow, 363},
		{"today at midnight", "1990-10-15", time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC), 0},
		{"early next year", "1990-01-01", refNow, 77},
		{"leap day in common year", "2000-02-29", time.Date(2027, time.February, 27, 10, 0, 0, 0, time.UTC), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAlice(t)
			_, err := r.SetBirthday(mustBirthday(t, tt.birthday))
			be.Err(t, err, nil)

			days, ok := r.DaysToBirthday(tt.now)
			be.True(t, ok)
			be.Equal(t, days, tt.want)
		})
	}
}

func TestDaysToBirthdayAcrossDST(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	be.Err(t, err, nil)

	tests := []struct {
		name     string
		birthday string
		now      time.Time
		want     int
	}{
		{"fall back night", "1990-11-02", time.Date(2026, time.November, 1, 0, 30, 0, 0, newYork), 0},
		{"spring forward weekend", "1990-03-10", time.Date(2026, time.March, 7, 0, 0, 0, 0, newYork), 3},
		{"spring forward day", "1990-03-09", time.Date(2026, time.March, 8, 12, 0, 0, 0, newYork), 0},
		{"after fall back", "1990-11-03", time.Date(2026, time.November, 1, 23, 0, 0, 0, newYork), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newAlice(t)
			_, err := r.SetBirthday(mustBirthday(t, tt.birthday))
			be.Err(t, err, nil)

			days, ok := r.DaysToBirthday(tt.now)
			be.True(t, ok)
			be.Equal(t, days, tt.want)
		})
	}
}

func TestDaysToBirthdayRange(t *testing.T) {
	start := time.Date(1992, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 366; i++ {
		b, err := NewBirthday(start.AddDate(0, 0, i), refNow)
		be.Err(t, err, nil)

		r := newAlice(t)
		_, err = r.SetBirthday(b)
		be.Err(t, err, nil)

		for _, now := range []time.Time{refNow, refNow.Add(13 * time.Hour), time.Date(2028, time.March, 1, 0, 0, 0, 0, time.UTC)} {
			days, ok := r.DaysToBirthday(now)
			be.True(t, ok)
			be.True(t, days >= 0 && days < 366)
		}
	}
}

func TestDaysToBirthdayUnset(t *testing.T) {
	_, ok := newAlice(t).DaysToBirthday(refNow)
	be.True(t, !ok)
}

func TestSetBirthday(t *testing.T) {
	r := newAlice(t)
	b := mustBirthday(t, "1990-05-12")

	msg, err := r.SetBirthday(b)
	be.Err(t, err, nil)
	be.Equal(t, msg, "Birthday added successfully.")

	_, err = r.SetBirthday(b)
	be.Err(t, err, ErrDuplicateBirthday)

	_, err = r.SetBirthday(Birthday{})
	be.Err(t, err, ErrInvalidBirthday)
	be.Equal(t, r.Birthday().String(), "12.05.1990")
}

func TestReplaceBirthday(t *testing.T) {
	r := newAlice(t)
	first := mustBirthday(t, "1990-05-12")
	second := mustBirthday(t, "1991-06-13")

	_, err := r.ReplaceBirthday(first)
	be.Err(t, err, ErrInvalidBirthday)
	be.True(t, r.Birthday().IsZero())

	_, err = r.SetBirthday(first)
	be.Err(t, err, nil)

	_, err = r.ReplaceBirthday(first)
	be.Err(t, err, ErrDuplicateBirthday)

	msg, err := r.ReplaceBirthday(second)
	be.Err(t, err, nil)
	be.Equal(t, msg, "Birthday changed successfully.")
	be.True(t, r.Birthday().Equal(second))

	r.RemoveBirthday()
	be.True(t, r.Birthday().IsZero())
	r.RemoveBirthday()
	be.True(t, r.Birthday().IsZero())
}

func TestAddPhone(t *testing.T) {
	r := newAlice(t, "380501234567")

	_, err := r.AddPhone(MustPhone("380501234567"))
	be.Err(t, err, ErrDuplicatePhone)
	be.Equal(t, phoneValues(r), []string{"380501234567"})

	_, err = r.AddPhone(Phone{})
	be.Err(t, err, ErrInvalidPhone)
	be.Equal(t, phoneValues(r), []string{"380501234567"})

	msg, err := r.AddPhone(MustPhone("0501234567"))
	be.Err(t, err, nil)
	be.Equal(t, msg, "Phone number added successfully.")
	be.Equal(t, phoneValues(r), []string{"380501234567", "0501234567"})
}

func TestRemovePhone(t *testing.T) {
	r := newAlice(t, "380501234567", "0501234567", "0671234567")

	res := r.RemovePhone(MustPhone("0501234567"))
	be.True(t, res.Found)
	be.Equal(t, res.String(), "Phone number deleted successfully.")
	be.Equal(t, phoneValues(r), []string{"380501234567", "0671234567"})

	res = r.RemovePhone(MustPhone("0501234567"))
	be.True(t, !res.Found)
	be.Equal(t, res.Message, "The user does not have such a phone number")

	_, err := r.AddPhone(MustPhone("0501234567"))
	be.Err(t, err, nil)
	be.Equal(t, len(r.Phones()), 3)
	be.True(t, r.HasPhone(MustPhone("0501234567")))
}

func TestEditPhone(t *testing.T) {
	r := newAlice(t, "380501234567", "0501234567", "0671234567")

	res, err := r.EditPhone(MustPhone("0501234567"), MustPhone("0931234567"))
	be.Err(t, err, nil)
	be.True(t, res.Found)
	be.Equal(t, res.Message, "The phone number has been changed successfully.")
	be.Equal(t, phoneValues(r), []string{"380501234567", "0931234567", "0671234567"})

	res, err = r.EditPhone(MustPhone("0501234567"), MustPhone("0991234567"))
	be.Err(t, err, nil)
	be.True(t, !res.Found)

	_, err = r.EditPhone(MustPhone("0931234567"), Phone{})
	be.Err(t, err, ErrInvalidPhone)

	_, err = r.EditPhone(MustPhone("0931234567"), MustPhone("0671234567"))
	be.Err(t, err, ErrDuplicatePhone)
	be.Equal(t, phoneValues(r), []string{"380501234567", "0931234567", "0671234567"})
}

func TestNewRecordSkipsUnsetAndRepeatedPhones(t *testing.T) {
	name, err := NewName("Bob")
	be.Err(t, err, nil)
	r := NewRecord(name, MustPhone("0501234567"), Phone{}, MustPhone("0501234567"))
	be.Equal(t, phoneValues(r), []string{"0501234567"})
	be.True(t, r.Birthday().IsZero())

	_, err = r.SetBirthday(mustBirthday(t, "1990-05-12"))
	be.Err(t, err, nil)
	be.Equal(t, r.Birthday().String(), "12.05.1990")
}
