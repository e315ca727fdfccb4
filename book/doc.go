// Package book is the in-memory contact store: validated fields, records and
// the address book that keys records by name.
//
// # Fields
//
// Name, Phone and Birthday are value types built only through their
// constructors, so a set field is always valid. The zero value means unset.
//
//   - Name: any non-empty string.
//   - Phone: 9 to 12 digits once separators are dropped, under 20 characters.
//   - Birthday: a past date at most 100 calendar years back.
//
// # Records
//
// A Record owns its phones and birthday. Phone lookups that miss return a
// [Result] with Found set to false rather than an error. Operations that
// depend on the current date take it as an argument.
//
// # Paging
//
// [AddressBook.Pages] returns a fresh [Pager] per call. Pages are cut in
// insertion order and each page is sorted by name. A drained pager returns
// [ErrEndOfSequence].
//
//	pager := ab.Pages(book.DefaultPageSize)
//	for {
//		page, err := pager.Next()
//		if errors.Is(err, book.ErrEndOfSequence) {
//			break
//		}
//		fmt.Print(page)
//	}
//
// # Errors
//
// Every failure is an [Error] whose code identifies its kind. The exported
// Err values match any error with the same code under [errors.Is].
package book
