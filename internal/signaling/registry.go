package signaling

import (
	"errors"
	"log/slog"
)

// Negotiation errors reported back to the requester.
var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomFull           = errors.New("room full")
	ErrClientCodeNotFound = errors.New("client code not found")
)

// session is the per-connection state, kept in a side table keyed by
// the connection's ID rather than on the transport object itself.
type session struct {
	roomCode   string
	friendCode string
}

// Registry owns every live room, the friend-code index, and the
// per-connection session table. It is single-writer: all mutation
// happens on the hub's event loop, so no locking is needed.
type Registry struct {
	rooms       map[string]*Room
	friendIndex map[string]string // friend code -> room code
	sessions    map[string]*session
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		rooms:       make(map[string]*Room),
		friendIndex: make(map[string]string),
		sessions:    make(map[string]*session),
	}
}

// CreateRoom makes a new room with host as its owner and returns it.
// Room creation always succeeds; codes regenerate on collision. A peer
// that is already in a room leaves it first, exactly as if it had
// disconnected, so no room is left holding a reference to it.
func (r *Registry) CreateRoom(host Peer) *Room {
	r.detach(host)

	code := r.newRoomCode()
	room := &Room{
		Code: code,
		Host: host,
	}
	r.rooms[code] = room
	r.sessions[host.ID()] = &session{roomCode: code}

	slog.Info("room created", "room", code, "clientId", host.ID())
	return room
}

// JoinRoom attaches client as the room's client and notifies the host
// that a client joined, carrying the presented friend code. It fails
// with ErrRoomNotFound or ErrRoomFull; on failure nothing changes. A
// joiner that is already in a room leaves it first, as on disconnect.
func (r *Registry) JoinRoom(code string, client Peer, friendCode string) (*Room, error) {
	room, ok := r.rooms[code]
	if !ok {
		return nil, ErrRoomNotFound
	}
	if room.Client != nil {
		return nil, ErrRoomFull
	}

	// Leaving the old room can delete the target room itself, when the
	// joiner is its host. Look it up again before attaching.
	r.detach(client)
	if room, ok = r.rooms[code]; !ok {
		return nil, ErrRoomNotFound
	}

	room.Client = client
	room.ClientFriendCode = friendCode
	r.sessions[client.ID()] = &session{roomCode: code, friendCode: friendCode}
	if friendCode != "" {
		r.friendIndex[friendCode] = code
	}

	slog.Info("client joined room", "room", code, "clientId", client.ID())

	if room.Host != nil {
		if err := room.Host.Send(&Message{Type: TypeClientJoined, ClientFriendCode: friendCode}); err != nil {
			slog.Debug("dropped join notification", "room", code, "error", err)
		}
	}
	return room, nil
}

// RoomFor resolves the room the peer currently belongs to, or nil.
func (r *Registry) RoomFor(p Peer) *Room {
	sess, ok := r.sessions[p.ID()]
	if !ok || sess.roomCode == "" {
		return nil
	}
	return r.rooms[sess.roomCode]
}

// LookupByFriendCode resolves a friend code to its room.
func (r *Registry) LookupByFriendCode(friendCode string) (*Room, bool) {
	code, ok := r.friendIndex[friendCode]
	if !ok {
		return nil, false
	}
	room, ok := r.rooms[code]
	return room, ok
}

// DeleteRoom removes the room, its friend-code index entry, and both
// peers' session associations.
func (r *Registry) DeleteRoom(code string) {
	room, ok := r.rooms[code]
	if !ok {
		return
	}
	if room.ClientFriendCode != "" {
		delete(r.friendIndex, room.ClientFriendCode)
	}
	if room.Host != nil {
		delete(r.sessions, room.Host.ID())
	}
	if room.Client != nil {
		delete(r.sessions, room.Client.ID())
	}
	delete(r.rooms, code)
	slog.Info("room deleted", "room", code)
}

// ResetClientSide clears everything the client contributed to the room
// so a new client can join under the same code. The host and its
// candidate state, including HostConfirmed, are preserved.
func (r *Registry) ResetClientSide(room *Room) {
	if room.Client != nil {
		delete(r.sessions, room.Client.ID())
	}
	if room.ClientFriendCode != "" {
		delete(r.friendIndex, room.ClientFriendCode)
	}
	room.Client = nil
	room.ClientPrimary = nil
	room.ClientCandidates = nil
	room.ClientFriendCode = ""
}

// Disconnect handles a connection closing. Host loss ends the session:
// the client is notified and the room deleted. Client loss keeps the
// room alive: the host is notified and the client side reset. A stale
// reference that matches neither role deletes the room defensively.
func (r *Registry) Disconnect(p Peer) {
	r.detach(p)
}

// detach removes p from whatever room its session names, notifying the
// other peer. It is the shared leave path: disconnects use it directly,
// and CreateRoom/JoinRoom run it before re-associating a peer so that
// no room ever keeps a reference to a peer that has moved on.
func (r *Registry) detach(p Peer) {
	sess, ok := r.sessions[p.ID()]
	delete(r.sessions, p.ID())
	if !ok || sess.roomCode == "" {
		return
	}
	room, ok := r.rooms[sess.roomCode]
	if !ok {
		return
	}
	if sess.friendCode != "" {
		delete(r.friendIndex, sess.friendCode)
	}

	switch {
	case room.isHost(p):
		slog.Info("host left room", "room", room.Code, "clientId", p.ID())
		if room.Client != nil {
			if err := room.Client.Send(&Message{Type: TypePeerDisconnected}); err != nil {
				slog.Debug("dropped disconnect notification", "room", room.Code, "error", err)
			}
		}
		r.DeleteRoom(room.Code)

	case room.isClient(p):
		slog.Info("client left room", "room", room.Code, "clientId", p.ID())
		if room.Host != nil {
			if err := room.Host.Send(&Message{Type: TypePeerDisconnected}); err != nil {
				slog.Debug("dropped disconnect notification", "room", room.Code, "error", err)
			}
		}
		r.ResetClientSide(room)

	default:
		r.DeleteRoom(room.Code)
	}
}

// Stats returns the number of live rooms and tracked connections.
func (r *Registry) Stats() (rooms, sessions int) {
	return len(r.rooms), len(r.sessions)
}
