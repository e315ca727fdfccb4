package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/spachava753/abook/book"
)

const prompt = ">>> "

// ErrQuit is returned by Exec for an exit command.
var ErrQuit = errors.New("shell: quit")

type inputError string

func (e inputError) Error() string { return string(e) }

// Input errors raised by the shell before any book operation runs.
const (
	ErrUnknownCommand inputError = "Enter one of the commands"
	ErrEmptyPhone     inputError = "Please enter phone number."
	ErrEmptyBirthday  inputError = "Please enter date of birth."
	ErrPhonePair      inputError = "Please enter old and new phone numbers without spaces."
)

var exitWords = []string{"exit", "close", "goodbye", "quit", "q"}

// Shell dispatches text commands against one address book.
//
// Save, when set, is called with the book after every successful command that
// changed it.
type Shell struct {
	Book     *book.AddressBook
	Save     func(context.Context, *book.AddressBook) error
	Now      func() time.Time
	Log      zerolog.Logger
	PageSize int
}

// New returns a shell over ab that uses the wall clock and logs nothing.
func New(ab *book.AddressBook, save func(context.Context, *book.AddressBook) error) *Shell {
	return &Shell{Book: ab, Save: save, Now: time.Now, Log: zerolog.Nop(), PageSize: book.DefaultPageSize}
}

// Exec runs one command line and returns its report.
func (s *Shell) Exec(ctx context.Context, line string) (string, error) {
	line = strings.TrimSpace(line)
	if slices.Contains(exitWords, strings.ToLower(line)) {
		return "Good bye!", ErrQuit
	}

	name, args, cmd, ok := lookup(strings.Fields(line))
	if !ok {
		return "", fmt.Errorf("%w: %s.", ErrUnknownCommand, strings.Join(commandNames(), ", "))
	}

	s.Log.Debug().Str("command", name).Strs("args", args).Msg("dispatching")
	out, err := cmd.run(s, args)
	if err != nil {
		s.Log.Debug().Str("command", name).Err(err).Msg("command failed")
		return out, err
	}

	if cmd.mutating && s.Save != nil {
		if err := s.Save(ctx, s.Book); err != nil {
			s.Log.Error().Str("command", name).Err(err).Msg("saving address book failed")
			return out, fmt.Errorf("shell: saving address book failed: %w", err)
		}
		s.Log.Debug().Str("command", name).Int("records", s.Book.Len()).Msg("address book saved")
	}
	return out, nil
}

// Run prints the manual, then reads commands from in until an exit command or
// end of input, writing each report to out.
func (s *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, Manual())

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		report, err := s.Exec(ctx, scanner.Text())
		switch {
		case errors.Is(err, ErrQuit):
			fmt.Fprintln(out, report)
			return nil
		case err != nil:
			if report != "" {
				fmt.Fprintln(out, strings.TrimRight(report, "\n"))
			}
			fmt.Fprintln(out, red(err.Error()))
		default:
			fmt.Fprintln(out, strings.TrimRight(report, "\n"))
		}
	}
}

func (s *Shell) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// lookup matches a one-word command first, then a two-word one.
func lookup(tokens []string) (string, []string, command, bool) {
	if len(tokens) == 0 {
		return "", nil, command{}, false
	}
	if cmd, ok := commands[tokens[0]]; ok {
		return tokens[0], tokens[1:], cmd, true
	}
	if len(tokens) < 2 {
		return "", nil, command{}, false
	}
	name := tokens[0] + " " + tokens[1]
	cmd, ok := commands[name]
	return name, tokens[2:], cmd, ok
}

func commandNames() []string {
	return slices.Sorted(maps.Keys(commands))
}

// splitName joins the leading tokens without digits into the contact name and
// returns the rest, starting at the first token that has a digit.
func splitName(args []string) (string, []string) {
	i := slices.IndexFunc(args, func(arg string) bool {
		return strings.ContainsAny(arg, "0123456789")
	})
	if i < 0 {
		i = len(args)
	}
	return strings.Join(args[:i], " "), args[i:]
}
