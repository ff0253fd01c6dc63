package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicate is returned when an insert would violate a uniqueness rule.
	ErrDuplicate = errors.New("document already exists")

	// ErrInvalidID is returned when an identifier does not parse as the
	// store's native id format.
	ErrInvalidID = errors.New("invalid id format")

	// ErrAccountNotFound indicates that no account matched the lookup.
	ErrAccountNotFound = fmt.Errorf("%w: account", ErrNotFound)

	// ErrSwapNotFound indicates that no swap request has the given id.
	ErrSwapNotFound = fmt.Errorf("%w: swap", ErrNotFound)
)

// IsNotFoundError reports whether err is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func invalidID(id string) error {
	return fmt.Errorf("%w: %q", ErrInvalidID, id)
}
