package services

// Realtime event types pushed to connected clients.
const (
	EventBookingStatusUpdated = "booking-status-updated"
	EventNewSessionRequest    = "new-session-request"
	EventNewChatRequest       = "new-chat-request"
	EventNewMessage           = "new-message"
)

// Notifier pushes a realtime event to the user identified by email.
// Implementations must not block and must tolerate the user being
// offline; delivery is fire and forget.
type Notifier interface {
	SendToUser(email string, eventType string, data any)
}

// noopNotifier keeps services usable when no realtime layer is wired,
// e.g. in tests.
type noopNotifier struct{}

func (noopNotifier) SendToUser(string, string, any) {}

// NoopNotifier returns a Notifier that drops every event.
func NoopNotifier() Notifier {
	return noopNotifier{}
}
