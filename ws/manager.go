package ws

import (
	"sync"

	"mentorhub_backend/internal/logger"
)

// Event is the envelope for every server-pushed message.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Manager tracks connected clients keyed by user email and pushes
// events to them. Delivery is best effort: offline users and slow
// consumers are skipped, never retried.
type Manager struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processes register/unregister traffic. Call once, in a goroutine.
func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.mu.Lock()
			// A reconnect replaces the previous socket for the same user.
			if old, ok := m.clients[client.Email]; ok {
				close(old.send)
			}
			m.clients[client.Email] = client
			total := len(m.clients)
			m.mu.Unlock()
			logger.Debug("ws client connected", "email", client.Email, "total", total)

		case client := <-m.unregister:
			m.mu.Lock()
			if current, ok := m.clients[client.Email]; ok && current == client {
				close(client.send)
				delete(m.clients, client.Email)
			}
			total := len(m.clients)
			m.mu.Unlock()
			logger.Debug("ws client disconnected", "email", client.Email, "total", total)
		}
	}
}

// SendToUser delivers an event to the named user if they are connected.
// It never blocks: a full send buffer drops the event.
func (m *Manager) SendToUser(email string, eventType string, data any) {
	m.mu.RLock()
	client, ok := m.clients[email]
	m.mu.RUnlock()
	if !ok {
		return
	}

	select {
	case client.send <- Event{Type: eventType, Data: data}:
	default:
		logger.Warn("ws send buffer full, dropping event", "email", email, "event", eventType)
	}
}

// IsOnline reports whether the user currently holds a connection.
func (m *Manager) IsOnline(email string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.clients[email]
	return ok
}

// ClientCount returns the number of connected clients.
func (m *Manager) ClientCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}
