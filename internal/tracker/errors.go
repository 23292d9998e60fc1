package tracker

import "errors"

var (
	// ErrBusy means a mutation is already in flight.
	ErrBusy = errors.New("another operation is in progress")

	// ErrValidation marks required form fields left empty.
	ErrValidation = errors.New("required fields missing")

	// ErrNotFound means no record in the authoritative set carries the
	// given client identity.
	ErrNotFound = errors.New("company not found")

	// ErrConfirmationRequired guards the irreversible delete.
	ErrConfirmationRequired = errors.New("delete requires confirmation")

	// ErrNoRecipients means the bulk-mail selection came up empty; it is a
	// warning, no store call was issued.
	ErrNoRecipients = errors.New("no companies with unsent mail in the current view")
)
