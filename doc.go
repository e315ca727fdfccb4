// Package abook is a lightweight index for the packages in this module.
//
// This root package is documentation-only. Run the cmd/abook binary for the
// interactive address book, or import a subpackage directly.
//
// Available subpackages:
//   - github.com/spachava753/abook/book
//     Contacts, field validation, search, birthday countdowns and paging.
//   - github.com/spachava753/abook/storage
//     Loading and saving a whole address book as CBOR or SQLite.
//   - github.com/spachava753/abook/shell
//     The command interpreter behind the interactive session.
//   - github.com/spachava753/abook/remind
//     Upcoming birthday digests delivered over SMTP.
//   - github.com/spachava753/abook/logger
//     The zerolog setup shared by the commands.
//
// Discovery workflow:
//   - Run: go doc github.com/spachava753/abook
//   - Then drill in with:
//     go doc github.com/spachava753/abook/book
//     go doc github.com/spachava753/abook/shell
package abook
