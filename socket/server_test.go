package socket

import (
	"testing"

	"skillswap_server/logger"
	"skillswap_server/services"

	"github.com/stretchr/testify/assert"
)

var _ services.Notifier = (*Hub)(nil)

func TestRoomsFor(t *testing.T) {
	tests := []struct {
		name string
		req  joinRequest
		want []string
	}{
		{"email", joinRequest{Email: "a@x.com"}, []string{"user:a@x.com"}},
		{"swap", joinRequest{SwapID: "42"}, []string{services.SwapRoom("42")}},
		{"both", joinRequest{Email: "a@x.com", SwapID: "42"}, []string{"user:a@x.com", "swap:42"}},
		{"blank", joinRequest{Email: "  "}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, roomsFor(tt.req))
		})
	}
}

func TestNotifyWithoutClients(t *testing.T) {
	h := NewHub(logger.Discard())

	assert.NotPanics(t, func() {
		h.NotifyUser("a@x.com", services.EventSwapRequested, map[string]string{"_id": "1"})
		h.Broadcast(services.EventAnnouncement, map[string]string{"message": "hi"})
	})
}
