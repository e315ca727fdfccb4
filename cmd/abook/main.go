// Command abook is a terminal address book. Without a subcommand it starts the
// interactive shell over the file named by --file.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:     "abook",
		Usage:    "keep names, phone numbers and birthdays in a local file",
		Version:  fmt.Sprintf("%s (%s)", version, commit),
		Flags:    globalFlags(),
		Action:   runShell,
		Commands: []*cli.Command{shellCommand(), remindCommand()},
	}
}
