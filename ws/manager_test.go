package ws

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendToOfflineUserIsSilent(t *testing.T) {
	m := NewManager()
	// No Run loop needed; the presence map is empty.
	m.SendToUser("ghost@example.com", "booking-status-updated", nil)
	assert.False(t, m.IsOnline("ghost@example.com"))
	assert.Equal(t, 0, m.ClientCount())
}

func TestRegisteredClientReceivesEvents(t *testing.T) {
	m := NewManager()
	go m.Run()

	client := &Client{
		Email:   "mentee@example.com",
		send:    make(chan Event, sendBuffer),
		manager: m,
	}
	m.register <- client

	require.Eventually(t, func() bool {
		return m.IsOnline("mentee@example.com")
	}, time.Second, 10*time.Millisecond)

	m.SendToUser("mentee@example.com", "booking-status-updated", map[string]string{"status": "confirmed"})

	select {
	case event := <-client.send:
		assert.Equal(t, "booking-status-updated", event.Type)
	case <-time.After(time.Second):
		t.Fatal("expected an event on the client channel")
	}

	m.unregister <- client
	require.Eventually(t, func() bool {
		return !m.IsOnline("mentee@example.com")
	}, time.Second, 10*time.Millisecond)
}

func TestFullSendBufferDropsEvent(t *testing.T) {
	m := NewManager()
	go m.Run()

	client := &Client{
		Email:   "busy@example.com",
		send:    make(chan Event), // unbuffered, nobody reading
		manager: m,
	}
	m.register <- client

	require.Eventually(t, func() bool {
		return m.IsOnline("busy@example.com")
	}, time.Second, 10*time.Millisecond)

	// Must not block even though the channel can't take the event.
	done := make(chan struct{})
	go func() {
		m.SendToUser("busy@example.com", "new-session-request", nil)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("SendToUser blocked on a full send buffer")
	}
}
