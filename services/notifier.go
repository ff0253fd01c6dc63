package services

// Notifier pushes events to connected clients. Delivery is best effort and
// never fails the operation that triggered it.
type Notifier interface {
	// NotifyUser sends to every connection that joined the email's room.
	NotifyUser(email, event string, payload interface{})
	// NotifyRoom sends to every connection in room.
	NotifyRoom(room, event string, payload interface{})
	// Broadcast sends to every connection.
	Broadcast(event string, payload interface{})
}

// Event names pushed to clients.
const (
	EventSwapRequested = "swap_requested"
	EventSwapUpdated   = "swap_updated"
	EventAnnouncement  = "announcement"
)

// SwapRoom is the room that follows a single swap request.
func SwapRoom(id string) string {
	return "swap:" + id
}

// NopNotifier drops every event.
type NopNotifier struct{}

func (NopNotifier) NotifyUser(email, event string, payload interface{}) {}
func (NopNotifier) NotifyRoom(room, event string, payload interface{})  {}
func (NopNotifier) Broadcast(event string, payload interface{})         {}
