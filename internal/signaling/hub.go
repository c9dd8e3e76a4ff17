package signaling

import (
	"log/slog"
)

// Frame is a raw inbound websocket payload paired with the client that
// sent it. Parsing happens on the hub's loop, not in the read pump, so
// a malformed frame never tears down its connection.
type Frame struct {
	Client *Client
	Data   []byte
}

// Hub is the central brain of the signaling server. Every event
// (register, inbound frame, disconnect, stats query) funnels through
// one goroutine, so the registry and all room state are mutated by a
// single writer and each event is fully processed before the next.
type Hub struct {
	registry *Registry
	router   *Router

	// Register is a channel for registering new clients.
	Register chan *Client

	// Unregister is a channel for unregistering clients.
	Unregister chan *Client

	// Inbound carries raw frames from client read pumps.
	Inbound chan Frame

	statsReq chan chan [2]int
}

// NewHub creates a new Hub instance.
func NewHub() *Hub {
	registry := NewRegistry()
	return &Hub{
		registry:   registry,
		router:     NewRouter(registry),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Inbound:    make(chan Frame),
		statsReq:   make(chan chan [2]int),
	}
}

// Run starts the hub's main processing loop.
// This is the single goroutine that safely manages all state.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			// The client is not in a room yet; it has to send
			// CREATE_ROOM or JOIN_ROOM first.
			slog.Info("client connected", "clientId", client.ID(), "remote", client.RemoteAddr())

		case client := <-h.Unregister:
			slog.Info("client disconnected", "clientId", client.ID(), "remote", client.RemoteAddr())
			h.registry.Disconnect(client)
			client.shutdown()

		case frame := <-h.Inbound:
			h.router.Dispatch(frame.Client, frame.Data)

		case reply := <-h.statsReq:
			rooms, clients := h.registry.Stats()
			reply <- [2]int{rooms, clients}
		}
	}
}

// Stats reports the current number of rooms and tracked connections.
// The query runs on the hub loop, so it observes a consistent snapshot.
func (h *Hub) Stats() (rooms, clients int) {
	reply := make(chan [2]int, 1)
	h.statsReq <- reply
	s := <-reply
	return s[0], s[1]
}
