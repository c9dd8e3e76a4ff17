package signaling

import (
	"encoding/json"
	"errors"
	"log/slog"
)

// Router parses inbound envelopes, validates the sender's role for the
// target room, and applies the requested operation. Failures fall into
// three deliberate buckets: malformed input is logged and dropped,
// negotiation errors get an ERROR reply, and protocol misuse (a sender
// acting outside its role) is silently ignored.
type Router struct {
	registry *Registry
}

// NewRouter creates a Router over the given registry.
func NewRouter(registry *Registry) *Router {
	return &Router{registry: registry}
}

// Dispatch is the single entry point for inbound frames.
func (rt *Router) Dispatch(peer Peer, data []byte) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		slog.Warn("dropping malformed message", "clientId", peer.ID(), "error", err)
		return
	}

	switch msg.Type {
	case TypeCreateRoom:
		rt.handleCreateRoom(peer)

	case TypeJoinRoom:
		rt.handleJoinRoom(peer, &msg)

	case TypeRegisterCandidate:
		rt.handleRegisterCandidate(peer, &msg)

	case TypeRequestClientCandidates:
		rt.handleConfirm(peer, &msg)

	default:
		// Unknown tags are malformed input, not a silent success.
		slog.Warn("dropping message with unknown type", "clientId", peer.ID(), "type", msg.Type)
	}
}

func (rt *Router) handleCreateRoom(peer Peer) {
	room := rt.registry.CreateRoom(peer)
	rt.send(peer, &Message{Type: TypeRoomCreated, Code: room.Code})
}

func (rt *Router) handleJoinRoom(peer Peer, msg *Message) {
	// The friend code rides in the message field on JOIN_ROOM.
	_, err := rt.registry.JoinRoom(msg.Code, peer, msg.Message)
	if err != nil {
		rt.sendError(peer, err)
		return
	}
	rt.send(peer, &Message{Type: TypeJoinSuccess, Code: msg.Code})
}

func (rt *Router) handleRegisterCandidate(peer Peer, msg *Message) {
	room := rt.registry.RoomFor(peer)
	if room == nil {
		return
	}

	primary := &Endpoint{IP: msg.IP, Port: msg.Port}

	switch {
	case room.isHost(peer):
		room.HostPrimary = primary
		if len(msg.Candidates) > 0 {
			room.HostCandidates = msg.Candidates
		}
		slog.Info("host registered candidates", "room", room.Code,
			"endpoint", msg.IP, "port", msg.Port, "candidates", len(msg.Candidates))

	case room.isClient(peer):
		room.ClientPrimary = primary
		if len(msg.Candidates) > 0 {
			room.ClientCandidates = msg.Candidates
		}
		slog.Info("client registered candidates", "room", room.Code,
			"endpoint", msg.IP, "port", msg.Port, "candidates", len(msg.Candidates))

	default:
		// Stale reference: the sender is no longer either role.
		return
	}

	tryExchange(room)
}

func (rt *Router) handleConfirm(peer Peer, msg *Message) {
	// Here the code field carries the friend code the host is
	// acknowledging, not a room code.
	room, ok := rt.registry.LookupByFriendCode(msg.Code)
	if !ok {
		rt.sendError(peer, ErrClientCodeNotFound)
		return
	}
	if !room.isHost(peer) {
		// Only the host may confirm; anyone else gets no reply.
		return
	}

	room.HostConfirmed = true
	slog.Info("host confirmed client", "room", room.Code)
	tryExchange(room)
}

func (rt *Router) send(peer Peer, msg *Message) {
	if err := peer.Send(msg); err != nil {
		slog.Debug("dropped outbound message", "clientId", peer.ID(), "type", msg.Type, "error", err)
	}
}

// sendError maps a negotiation error to its wire message.
func (rt *Router) sendError(peer Peer, err error) {
	var text string
	switch {
	case errors.Is(err, ErrRoomFull):
		text = "Room full"
	case errors.Is(err, ErrRoomNotFound):
		text = "Room not found"
	case errors.Is(err, ErrClientCodeNotFound):
		text = "Client code not found"
	default:
		text = err.Error()
	}
	rt.send(peer, &Message{Type: TypeError, Message: text})
}
