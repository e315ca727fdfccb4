// Package shell is the interactive front end of the address book.
//
// A [Shell] turns one line of text into one operation on a
// [book.AddressBook]. Commands are one or two words ("find", "add user")
// followed by arguments. The leading arguments without digits form the
// contact name, so names may contain spaces:
//
//	add user John Smith 0501234567 1990-05-12
//
// Every command returns a printable report. Validation failures come back as
// errors whose text is meant for the user; [Shell.Run] prints them in red and
// keeps reading. An exit word ("exit", "close", "goodbye", "quit", "q") makes
// [Shell.Exec] return [ErrQuit].
//
// After each successful command that changed the book, the shell calls
// Shell.Save so the file on disk never lags behind the session.
package shell
