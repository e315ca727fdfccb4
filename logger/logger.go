// Package logger builds the zerolog logger shared by the abook commands.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const permission = 0o600

// Options selects where logs go and how they look.
type Options struct {
	Level  string // debug, info, warn, error or disabled
	File   string // append to this file; "" or "-" means stderr
	Format string // text or json
}

// New builds a logger from options. Unusable options fall back to defaults
// and the fallback is logged as a warning. The returned closer releases the
// log file, if any.
func New(options Options) (zerolog.Logger, io.Closer) {
	return newLogger(options, os.Stderr)
}

func newLogger(options Options, stderr io.Writer) (zerolog.Logger, io.Closer) {
	var warnings []string

	level := zerolog.WarnLevel
	if options.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(options.Level))
		if err != nil || parsed == zerolog.NoLevel {
			warnings = append(warnings, "could not parse logger level")
		} else {
			level = parsed
		}
	}

	var output io.Writer = stderr
	var closer io.Closer = nopCloser{}
	switch options.File {
	case "", "-":
	case os.DevNull:
		return zerolog.Nop(), closer
	default:
		f, err := os.OpenFile(options.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			warnings = append(warnings, "could not open logger file: "+err.Error())
			break
		}
		output, closer = zerolog.SyncWriter(f), f
	}

	switch strings.ToLower(options.Format) {
	case "", "text":
		output = zerolog.ConsoleWriter{Out: output, NoColor: options.File != "" && options.File != "-"}
	case "json":
	default:
		warnings = append(warnings, "could not parse logger format")
		output = zerolog.ConsoleWriter{Out: output}
	}

	log := zerolog.New(output).Level(level).With().Timestamp().Logger()
	for _, w := range warnings {
		log.Warn().Msg(w)
	}
	return log, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
