package client

import (
	"errors"
	"fmt"
)

// ErrStoreUnavailable marks transport-level failures: the caller should flip
// the store status indicator to inactive and must not retry automatically.
var ErrStoreUnavailable = errors.New("store unavailable")

// ErrWriteRejected marks a non-2xx response on create/update/delete. The
// wrapped message carries the store's diagnostic.
var ErrWriteRejected = errors.New("write rejected")

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrStoreUnavailable, err)
}

func rejected(op, message, details string) error {
	if details != "" {
		return fmt.Errorf("%s: %w: %s (%s)", op, ErrWriteRejected, message, details)
	}
	return fmt.Errorf("%s: %w: %s", op, ErrWriteRejected, message)
}
