package services

import (
	"errors"
	"fmt"

	"skillswap_server/store"
)

var (
	// ErrEmailExists is returned by Signup when the email is already registered.
	ErrEmailExists = fmt.Errorf("%w: email already exists", store.ErrDuplicate)

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountNotFound is returned when a profile lookup matches nothing.
	ErrAccountNotFound = store.ErrAccountNotFound

	// ErrNotParticipant is returned when the caller is neither the sender nor
	// the recipient of a swap.
	ErrNotParticipant = errors.New("not a participant of the swap")
)
