package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/spachava753/abook/book"
	"github.com/spachava753/abook/logger"
)

const (
	flagFile      = "file"
	flagPageSize  = "page-size"
	flagNoColor   = "no-color"
	flagLogLevel  = "log-level"
	flagLogFile   = "log-file"
	flagLogFormat = "log-format"

	defaultFile = "users.cbor"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagFile,
			Aliases: []string{"f"},
			Usage:   "address book file; .db, .sqlite and .sqlite3 use SQLite, anything else CBOR",
			Value:   defaultFile,
			EnvVars: []string{"ABOOK_FILE"},
		},
		&cli.IntFlag{
			Name:    flagPageSize,
			Usage:   "records per table page",
			Value:   book.DefaultPageSize,
			EnvVars: []string{"ABOOK_PAGE_SIZE"},
		},
		&cli.BoolFlag{
			Name:  flagNoColor,
			Usage: "disable coloured output",
		},
		&cli.StringFlag{
			Name:    flagLogLevel,
			Usage:   "debug, info, warn, error or disabled",
			Value:   "warn",
			EnvVars: []string{"ABOOK_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    flagLogFile,
			Usage:   "append logs to this file instead of stderr",
			EnvVars: []string{"ABOOK_LOG_FILE"},
		},
		&cli.StringFlag{
			Name:    flagLogFormat,
			Usage:   "text or json",
			Value:   "text",
			EnvVars: []string{"ABOOK_LOG_FORMAT"},
		},
	}
}

func newLogger(c *cli.Context) (zerolog.Logger, io.Closer) {
	return logger.New(logger.Options{
		Level:  c.String(flagLogLevel),
		File:   c.String(flagLogFile),
		Format: c.String(flagLogFormat),
	})
}
