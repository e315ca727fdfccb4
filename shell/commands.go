package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spachava753/abook/book"
	"github.com/spachava753/abook/remind"
)

type command struct {
	run      func(s *Shell, args []string) (string, error)
	mutating bool
}

var commands = map[string]command{
	"add user":        {run: (*Shell).addUser, mutating: true},
	"remove user":     {run: (*Shell).removeUser, mutating: true},
	"add phone":       {run: (*Shell).addPhone, mutating: true},
	"change phone":    {run: (*Shell).changePhone, mutating: true},
	"show phone":      {run: (*Shell).showPhone},
	"remove phone":    {run: (*Shell).removePhone, mutating: true},
	"add birthday":    {run: (*Shell).addBirthday, mutating: true},
	"change birthday": {run: (*Shell).changeBirthday, mutating: true},
	"show birthday":   {run: (*Shell).showBirthday},
	"when birthday":   {run: (*Shell).whenBirthday},
	"remove birthday": {run: (*Shell).removeBirthday, mutating: true},
	"upcoming":        {run: (*Shell).upcoming},
	"find":            {run: (*Shell).find},
	"show all":        {run: (*Shell).showAll},
	"hello":           {run: (*Shell).hello},
	"help":            {run: (*Shell).help},
}

func (s *Shell) addUser(args []string) (string, error) {
	name, values := splitName(args)
	r, err := s.Book.Create(name)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s - User added successfully.\n", green(name))
	for _, value := range values {
		if book.ValidPhone(value) {
			msg, err := r.AddPhone(book.MustPhone(value))
			writeOutcome(&sb, value, msg, err)
			continue
		}
		if b, err := book.ParseBirthday(value, s.now()); err == nil {
			msg, err := r.SetBirthday(b)
			writeOutcome(&sb, value, msg, err)
			continue
		}
		fmt.Fprintf(&sb, "%s - Format is incorrect.\n", red(value))
	}
	return sb.String(), nil
}

func (s *Shell) removeUser(args []string) (string, error) {
	name, _ := splitName(args)
	if name == "" {
		return "", book.ErrEmptyName
	}
	if err := s.Book.Remove(name); err != nil {
		return "", err
	}
	return "User deleted successfully.", nil
}

func (s *Shell) addPhone(args []string) (string, error) {
	r, phones, err := s.record(args)
	if err != nil {
		return "", err
	}
	if len(phones) == 0 {
		return "", ErrEmptyPhone
	}

	var sb strings.Builder
	for _, raw := range phones {
		p, err := book.NewPhone(raw)
		if err != nil {
			writeOutcome(&sb, raw, "", err)
			continue
		}
		msg, err := r.AddPhone(p)
		writeOutcome(&sb, raw, msg, err)
	}
	return sb.String(), nil
}

func (s *Shell) changePhone(args []string) (string, error) {
	r, phones, err := s.record(args)
	if err != nil {
		return "", err
	}
	if len(phones) != 2 {
		return "", ErrPhonePair
	}

	// An invalid old phone was never stored, so its zero value reports not found.
	old, _ := book.NewPhone(phones[0])
	updated, err := book.NewPhone(phones[1])
	if err != nil {
		return "", err
	}
	res, err := r.EditPhone(old, updated)
	if err != nil {
		return "", err
	}
	return colorResult(res), nil
}

func (s *Shell) showPhone(args []string) (string, error) {
	r, _, err := s.record(args)
	if err != nil {
		return "", err
	}
	phones := r.Phones()
	if len(phones) == 0 {
		return fmt.Sprintf("There are no phone number records for the user %s", r.Name()), nil
	}

	var sb strings.Builder
	for _, p := range phones {
		sb.WriteString(p.String() + "\n")
	}
	return sb.String(), nil
}

func (s *Shell) removePhone(args []string) (string, error) {
	r, phones, err := s.record(args)
	if err != nil {
		return "", err
	}
	if len(phones) == 0 {
		return "", ErrEmptyPhone
	}

	var sb strings.Builder
	for _, raw := range phones {
		p, _ := book.NewPhone(raw)
		res := r.RemovePhone(p)
		if res.Found {
			fmt.Fprintf(&sb, "%s - %s\n", green(raw), res)
		} else {
			fmt.Fprintf(&sb, "%s - %s\n", red(raw), res)
		}
	}
	return sb.String(), nil
}

func (s *Shell) addBirthday(args []string) (string, error) {
	return s.setBirthday(args, (*book.Record).SetBirthday)
}

func (s *Shell) changeBirthday(args []string) (string, error) {
	return s.setBirthday(args, (*book.Record).ReplaceBirthday)
}

func (s *Shell) setBirthday(args []string, set func(*book.Record, book.Birthday) (string, error)) (string, error) {
	r, values, err := s.record(args)
	if err != nil {
		return "", err
	}
	if len(values) == 0 {
		return "", ErrEmptyBirthday
	}

	b, err := book.ParseBirthday(values[0], s.now())
	if err != nil {
		return "", err
	}
	msg, err := set(r, b)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s - %s", green(values[0]), msg), nil
}

func (s *Shell) showBirthday(args []string) (string, error) {
	r, _, err := s.record(args)
	if err != nil {
		return "", err
	}
	if r.Birthday().IsZero() {
		return fmt.Sprintf("There are no birthday record for the user %s", r.Name()), nil
	}
	return r.Birthday().String(), nil
}

func (s *Shell) whenBirthday(args []string) (string, error) {
	r, _, err := s.record(args)
	if err != nil {
		return "", err
	}
	days, known := r.DaysToBirthday(s.now())
	if !known {
		return fmt.Sprintf("The birthday of the user %s is not known", r.Name()), nil
	}
	return fmt.Sprintf("%d days remain until the birthday of the user %s", days, r.Name()), nil
}

func (s *Shell) removeBirthday(args []string) (string, error) {
	r, _, err := s.record(args)
	if err != nil {
		return "", err
	}
	if r.Birthday().IsZero() {
		return fmt.Sprintf("There are no birthday record for the user %s", r.Name()), nil
	}
	r.RemoveBirthday()
	return "Birthday deleted successfully.", nil
}

func (s *Shell) upcoming(args []string) (string, error) {
	within := remind.DefaultWithin
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return "", fmt.Errorf("%w: %s", inputError("Please enter a number of days"), args[0])
		}
		within = n
	}

	items := remind.Find(s.Book, s.now(), within)
	if len(items) == 0 {
		return fmt.Sprintf("No birthdays in the next %d days", within), nil
	}
	return remind.FormatDigest(items), nil
}

func (s *Shell) find(args []string) (string, error) {
	found, ok := s.Book.Search(strings.Join(args, " "))
	if !ok {
		return "Nothing was found for your request", nil
	}
	return s.render(found), nil
}

func (s *Shell) showAll(_ []string) (string, error) {
	if s.Book.Len() == 0 {
		return "The address book is empty.", nil
	}
	return s.render(s.Book), nil
}

func (s *Shell) hello(_ []string) (string, error) {
	return "How can I help you?", nil
}

func (s *Shell) help(_ []string) (string, error) {
	return Manual(), nil
}

// record resolves the contact named by the leading tokens of args.
func (s *Shell) record(args []string) (*book.Record, []string, error) {
	name, rest := splitName(args)
	r, err := s.Book.Get(name)
	if err != nil {
		return nil, nil, err
	}
	return r, rest, nil
}

func (s *Shell) render(ab *book.AddressBook) string {
	var pages []string
	for page := range ab.Pages(s.PageSize).All() {
		pages = append(pages, page)
	}
	return strings.Join(pages, "\n")
}

func writeOutcome(sb *strings.Builder, value, msg string, err error) {
	if err != nil {
		fmt.Fprintf(sb, "%s - %s\n", red(value), err)
		return
	}
	fmt.Fprintf(sb, "%s - %s\n", green(value), msg)
}

func colorResult(res book.Result) string {
	if res.Found {
		return green(res.Message)
	}
	return red(res.Message)
}
