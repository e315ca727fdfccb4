package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/spachava753/abook/remind"
	"github.com/spachava753/abook/storage"
)

const (
	flagTo     = "to"
	flagWithin = "within"
	flagDryRun = "dry-run"
)

func remindCommand() *cli.Command {
	return &cli.Command{
		Name:  "remind",
		Usage: "mail a digest of upcoming birthdays",
		Description: "SMTP settings come from ABOOK_SMTP_ADDR, ABOOK_SMTP_USERNAME,\n" +
			"ABOOK_SMTP_PASSWORD and ABOOK_SMTP_FROM. The server must accept implicit TLS.",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     flagTo,
				Usage:    "recipient address, may be repeated",
				EnvVars:  []string{"ABOOK_REMIND_TO"},
				Required: true,
			},
			&cli.IntFlag{
				Name:  flagWithin,
				Usage: "include birthdays this many days ahead",
				Value: remind.DefaultWithin,
			},
			&cli.BoolFlag{
				Name:  flagDryRun,
				Usage: "print the message instead of sending it",
			},
		},
		Action: runRemind,
	}
}

func runRemind(c *cli.Context) error {
	log, closer := newLogger(c)
	defer closer.Close()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	within := c.Int(flagWithin)
	if within < 0 {
		return fmt.Errorf("abook: --%s must not be negative", flagWithin)
	}

	path := c.String(flagFile)
	ab, err := storage.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("abook: %w", err)
	}

	now := time.Now()
	items := remind.Find(ab, now, within)
	if len(items) == 0 {
		fmt.Fprintf(c.App.Writer, "No birthdays in the next %d days\n", within)
		return nil
	}

	dryRun := c.Bool(flagDryRun)
	cfg, err := remind.ConfigFromEnv()
	if err != nil && !dryRun {
		return err
	}

	out, err := remind.Send(ctx, cfg, remind.SendInput{
		To:       c.StringSlice(flagTo),
		Upcoming: items,
		Within:   within,
		Now:      now,
		DryRun:   dryRun,
	})
	if errors.Is(err, remind.ErrNothingToSend) {
		return nil
	}
	if err != nil {
		log.Error().Err(err).Msg("sending birthday digest failed")
		return err
	}

	if dryRun {
		_, err := c.App.Writer.Write(out.Message)
		return err
	}
	log.Info().Str("message_id", out.MessageID).Strs("recipients", out.Recipients).Int("birthdays", len(items)).Msg("digest sent")
	fmt.Fprintf(c.App.Writer, "Sent %d upcoming birthdays to %s\n", len(items), strings.Join(out.Recipients, ", "))
	return nil
}
