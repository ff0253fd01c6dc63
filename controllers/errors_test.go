package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"skillswap_server/services"
	"skillswap_server/store"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"account not found", fmt.Errorf("lookup: %w", services.ErrAccountNotFound), http.StatusNotFound, "User not found"},
		{"not a participant", services.ErrNotParticipant, http.StatusForbidden, "You can only act on your own swap requests"},
		{"email exists", services.ErrEmailExists, http.StatusBadRequest, "Email already exists"},
		{"invalid id", fmt.Errorf("%w: %q", store.ErrInvalidID, "x"), http.StatusBadRequest, "Invalid id format"},
		{"timeout", fmt.Errorf("scan: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "Request timed out"},
		{"anything else", errors.New("connection reset by peer"), http.StatusInternalServerError, "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, MapErrorToStatusCode(tt.err))
			assert.Equal(t, tt.message, GetSafeErrorMessage(tt.err))
		})
	}
}
