// Package realtime pushes notifications to connected websocket clients.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// EventNotification is the envelope type for a new notification.
const EventNotification = "notification.created"

// ConnectionObserver receives the open connection count whenever it changes.
type ConnectionObserver func(open int)

// Hub fans messages out to every connection of a user.
type Hub struct {
	mu         sync.RWMutex
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan message
	done       chan struct{}
	logger     *zap.Logger
	observer   ConnectionObserver
}

type message struct {
	userID  string
	payload []byte
}

// NewHub creates an idle hub; call Run to start it.
func NewHub(logger *zap.Logger, observer ConnectionObserver) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan message, 64),
		done:       make(chan struct{}),
		logger:     logger.With(zap.String("component", "realtime")),
		observer:   observer,
	}
}

// Run processes registrations and broadcasts until ctx is cancelled, then
// closes every connection.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case msg := <-h.broadcast:
			h.send(msg.userID, msg.payload)
		}
	}
}

// Register attaches a client. It returns false once the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister detaches a client.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Publish queues an event for every connection of userID. It never blocks:
// when the buffer is full the event is dropped and an error returned.
func (h *Hub) Publish(userID, event string, data interface{}) error {
	raw, err := json.Marshal(map[string]interface{}{"type": event, "data": data})
	if err != nil {
		return fmt.Errorf("marshal realtime event: %w", err)
	}
	select {
	case <-h.done:
		return fmt.Errorf("realtime hub stopped")
	default:
	}
	select {
	case h.broadcast <- message{userID: userID, payload: raw}:
		return nil
	default:
		return fmt.Errorf("realtime buffer full")
	}
}

// Connections returns the number of open connections.
func (h *Hub) Connections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.countLocked()
}

func (h *Hub) countLocked() int {
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client.userID]; !ok {
		h.clients[client.userID] = make(map[*Client]struct{})
	}
	h.clients[client.userID][client] = struct{}{}
	n := h.countLocked()
	h.mu.Unlock()

	h.logger.Debug("client connected", zap.String("user_id", client.userID), zap.Int("open", n))
	h.notify(n)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	set, ok := h.clients[client.userID]
	if !ok {
		h.mu.Unlock()
		return
	}
	if _, present := set[client]; !present {
		h.mu.Unlock()
		return
	}
	delete(set, client)
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}
	close(client.send)
	n := h.countLocked()
	h.mu.Unlock()

	h.logger.Debug("client disconnected", zap.String("user_id", client.userID), zap.Int("open", n))
	h.notify(n)
}

// send drops slow clients rather than stalling the hub loop.
func (h *Hub) send(userID string, payload []byte) {
	h.mu.RLock()
	var slow []*Client
	for client := range h.clients[userID] {
		select {
		case client.send <- payload:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.logger.Warn("dropping slow realtime client", zap.String("user_id", userID))
		h.removeClient(client)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	for userID, set := range h.clients {
		for client := range set {
			close(client.send)
		}
		delete(h.clients, userID)
	}
	h.mu.Unlock()
	h.notify(0)
}

func (h *Hub) notify(n int) {
	if h.observer != nil {
		h.observer(n)
	}
}
