package book

import "fmt"

// ErrorCode classifies address book failures.
type ErrorCode string

const (
	// ErrorCodeEmptyName indicates a missing contact name.
	ErrorCodeEmptyName ErrorCode = "empty_name"
	// ErrorCodeInvalidPhone indicates a phone outside the accepted format.
	ErrorCodeInvalidPhone ErrorCode = "invalid_phone"
	// ErrorCodeInvalidBirthday indicates a malformed or out-of-range birthday,
	// or a replace with no birthday to replace.
	ErrorCodeInvalidBirthday ErrorCode = "invalid_birthday"
	// ErrorCodeDuplicatePhone indicates the record already holds the phone.
	ErrorCodeDuplicatePhone ErrorCode = "duplicate_phone"
	// ErrorCodeDuplicateBirthday indicates the record already holds the birthday.
	ErrorCodeDuplicateBirthday ErrorCode = "duplicate_birthday"
	// ErrorCodeUnknownUser indicates no record with the given name.
	ErrorCodeUnknownUser ErrorCode = "unknown_user"
	// ErrorCodeUserAlreadyExists indicates a record with the name is present.
	ErrorCodeUserAlreadyExists ErrorCode = "user_already_exists"
	// ErrorCodeEndOfSequence indicates a pager with no records left.
	ErrorCodeEndOfSequence ErrorCode = "end_of_sequence"
)

// Error is a typed address book error. Errors compare equal under
// [errors.Is] when their codes match, so callers may wrap or reword them.
type Error struct {
	Code    ErrorCode
	Message string
}

// Error returns the human readable message.
func (e *Error) Error() string {
	if e == nil {
		return "book: <nil>"
	}
	if e.Message == "" {
		return fmt.Sprintf("book: %s", e.Code)
	}
	return e.Message
}

// Is matches any *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

var (
	ErrEmptyName         = &Error{Code: ErrorCodeEmptyName, Message: "Please enter username."}
	ErrInvalidPhone      = &Error{Code: ErrorCodeInvalidPhone, Message: "Phone number format is incorrect."}
	ErrInvalidBirthday   = &Error{Code: ErrorCodeInvalidBirthday, Message: "Birthday format is incorrect."}
	ErrDuplicatePhone    = &Error{Code: ErrorCodeDuplicatePhone, Message: "This user already has this phone number."}
	ErrDuplicateBirthday = &Error{Code: ErrorCodeDuplicateBirthday, Message: "This user already has this date of birth."}
	ErrUnknownUser       = &Error{Code: ErrorCodeUnknownUser, Message: "User with that name does not exist."}
	ErrUserAlreadyExists = &Error{Code: ErrorCodeUserAlreadyExists, Message: "A user with this name already exists."}
	ErrEndOfSequence     = &Error{Code: ErrorCodeEndOfSequence, Message: "No more records."}
)
