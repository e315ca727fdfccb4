// Package storage persists a whole address book to a local file.
//
// Two formats are supported and picked by file extension through [For]:
//
//   - CBORFile: one CBOR document, replaced atomically by rename.
//   - SQLite: contacts and phones tables, replaced inside one transaction.
//
// Loading a path that does not exist returns an empty book so the first run
// needs no setup. Insertion order survives a round trip.
package storage
