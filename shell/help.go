package shell

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/spachava753/abook/book"
)

var (
	green    = color.New(color.FgGreen).SprintFunc()
	red      = color.New(color.FgRed).SprintFunc()
	bold     = color.New(color.Bold).SprintFunc()
	optional = color.New(color.Italic, color.FgBlue).SprintFunc()
)

// Manual returns the help text.
func Manual() string {
	usage := func(cmd, required, opt, desc string) string {
		line := green(cmd)
		if required != "" {
			line += " " + red(required)
		}
		if opt != "" {
			line += " " + optional(opt)
		}
		return line + ": " + desc
	}

	lines := []string{
		"",
		bold("Address Book"),
		"A simple address book that keeps names, phone numbers and birthdays,",
		"and finds contacts by part of their name or phone number.",
		"",
		bold("Commands"),
		usage("add user", "<name>", "[phone1] [phone2] [birthday] ...", "Add a new user to the address book."),
		usage("remove user", "<name>", "", "Delete a user from the address book."),
		"",
		usage("add phone", "<name> <phone1>", "[phone2] ...", "Add a phone number to an existing user."),
		usage("change phone", "<name> <old_phone> <new_phone>", "", "Change a phone number of a user."),
		usage("show phone", "<name>", "", "Show all phone numbers of a user."),
		usage("remove phone", "<name> <phone1>", "[phone2] ...", "Delete phone numbers from an existing user."),
		"",
		usage("add birthday", "<name> <date>", "", "Set the birthday of an existing user."),
		usage("change birthday", "<name> <date>", "", "Replace the birthday of a user who already has one."),
		usage("show birthday", "<name>", "", "Show the birthday of a user."),
		usage("when birthday", "<name>", "", "Show the number of days until the next birthday of a user."),
		usage("remove birthday", "<name>", "", "Delete the birthday of an existing user."),
		usage("upcoming", "", "[days]", "List birthdays in the next days, 7 by default."),
		"",
		usage("find", "<query>", "", "Search for users by part of their name or phone number."),
		usage("show all", "", "", "Show all users in the address book."),
		usage("hello", "", "", "Display a welcome message."),
		usage("help", "", "", "Show the list of available commands."),
		fmt.Sprintf("To exit the program use one of: %s.", strings.Join(colorAll(exitWords), ", ")),
		"",
		"Note:",
		fmt.Sprintf("• Parameters in %s are required, parameters in %s are optional.", red("<angle brackets>"), optional("[square brackets]")),
		"• Names must not contain digits.",
		fmt.Sprintf("• Phone numbers and dates are entered without spaces; allowed separators: %s.", optional(book.BirthdaySeparators)),
		"• Dates use the format YYYY-MM-DD.",
	}
	return strings.Join(lines, "\n")
}

func colorAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, green(w))
	}
	return out
}
