package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"github.com/rs/zerolog"
)

func TestNewLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	log, closer := newLogger(Options{Level: "INFO", Format: "json"}, &buf)
	defer closer.Close()

	log.Debug().Msg("hidden")
	log.Info().Str("cmd", "add user").Msg("dispatch")

	out := buf.String()
	be.True(t, !strings.Contains(out, "hidden"))
	be.True(t, strings.Contains(out, `"level":"info"`))
	be.True(t, strings.Contains(out, `"cmd":"add user"`))
}

func TestNewFallbacks(t *testing.T) {
	var buf bytes.Buffer
	log, closer := newLogger(Options{Level: "loud", Format: "yaml"}, &buf)
	defer closer.Close()

	be.Equal(t, log.GetLevel(), zerolog.WarnLevel)
	out := buf.String()
	be.True(t, strings.Contains(out, "could not parse logger level"))
	be.True(t, strings.Contains(out, "could not parse logger format"))
}

func TestNewDevNull(t *testing.T) {
	log, closer := New(Options{File: os.DevNull})
	defer closer.Close()
	be.Equal(t, log.GetLevel(), zerolog.Disabled)
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abook.log")
	log, closer := New(Options{Level: "debug", File: path, Format: "json"})
	log.Debug().Msg("saved")
	be.Err(t, closer.Close(), nil)

	data, err := os.ReadFile(path)
	be.Err(t, err, nil)
	be.True(t, strings.Contains(string(data), `"message":"saved"`))
}
