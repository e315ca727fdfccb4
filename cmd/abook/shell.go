package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/spachava753/abook/book"
	"github.com/spachava753/abook/shell"
	"github.com/spachava753/abook/storage"
)

func shellCommand() *cli.Command {
	return &cli.Command{
		Name:   "shell",
		Usage:  "start the interactive shell (default)",
		Action: runShell,
	}
}

func runShell(c *cli.Context) error {
	log, closer := newLogger(c)
	defer closer.Close()

	if c.Bool(flagNoColor) {
		color.NoColor = true
	}

	path := c.String(flagFile)
	ab, err := storage.Load(c.Context, path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("loading address book failed")
		return fmt.Errorf("abook: %w", err)
	}
	log.Info().Str("file", path).Int("records", ab.Len()).Msg("address book loaded")

	sh := shell.New(ab, func(ctx context.Context, ab *book.AddressBook) error {
		return storage.Save(ctx, ab, path)
	})
	sh.Log = log
	sh.PageSize = c.Int(flagPageSize)
	return sh.Run(c.Context, c.App.Reader, c.App.Writer)
}
