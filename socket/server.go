// Package socket pushes live events to browser clients over Socket.IO.
package socket

import (
	"log/slog"
	"strings"

	"skillswap_server/services"

	socketio "github.com/googollee/go-socket.io"
)

const namespace = "/"

// joinRequest names the rooms a client wants to follow.
type joinRequest struct {
	Email  string `json:"email"`
	SwapID string `json:"swap_id"`
}

// Hub wraps the Socket.IO server. Clients join their own email room and the
// rooms of swaps they are watching.
type Hub struct {
	server *socketio.Server
	logger *slog.Logger
}

// NewHub creates the server and registers its event handlers.
func NewHub(logger *slog.Logger) *Hub {
	h := &Hub{
		server: socketio.NewServer(nil),
		logger: logger.With("component", "socket_hub"),
	}

	h.server.OnConnect(namespace, func(c socketio.Conn) error {
		h.logger.Debug("socket connected", "conn_id", c.ID())
		return nil
	})

	h.server.OnEvent(namespace, "join", func(c socketio.Conn, req joinRequest) {
		rooms := roomsFor(req)
		if len(rooms) == 0 {
			h.logger.Debug("join request without email or swap_id", "conn_id", c.ID())
			return
		}
		for _, room := range rooms {
			c.Join(room)
		}
		h.logger.Debug("socket joined rooms", "conn_id", c.ID(), "rooms", rooms)
	})

	h.server.OnError(namespace, func(c socketio.Conn, err error) {
		h.logger.Warn("socket error", "error", err)
	})

	h.server.OnDisconnect(namespace, func(c socketio.Conn, reason string) {
		h.logger.Debug("socket disconnected", "conn_id", c.ID(), "reason", reason)
	})

	return h
}

// UserRoom is the room every connection of email joins.
func UserRoom(email string) string {
	return "user:" + email
}

func roomsFor(req joinRequest) []string {
	var rooms []string
	if email := strings.TrimSpace(req.Email); email != "" {
		rooms = append(rooms, UserRoom(email))
	}
	if id := strings.TrimSpace(req.SwapID); id != "" {
		rooms = append(rooms, services.SwapRoom(id))
	}
	return rooms
}

// Handler is mounted at /socket.io/.
func (h *Hub) Handler() *socketio.Server {
	return h.server
}

// Serve runs the server loop until Close is called.
func (h *Hub) Serve() error {
	return h.server.Serve()
}

func (h *Hub) Close() error {
	return h.server.Close()
}

func (h *Hub) NotifyUser(email, event string, payload interface{}) {
	h.NotifyRoom(UserRoom(email), event, payload)
}

func (h *Hub) NotifyRoom(room, event string, payload interface{}) {
	if !h.server.BroadcastToRoom(namespace, room, event, payload) {
		h.logger.Debug("no socket namespace for event", "room", room, "event", event)
	}
}

func (h *Hub) Broadcast(event string, payload interface{}) {
	h.server.BroadcastToNamespace(namespace, event, payload)
}
