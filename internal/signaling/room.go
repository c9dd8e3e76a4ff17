package signaling

// Room holds the state of one signaling session between a host and at
// most one client. The host reference lives as long as the room; the
// client side may be cleared and re-acquired when a client disconnects
// and a new one joins under the same code.
type Room struct {
	// Code is the room's identifier, assigned at creation and immutable.
	Code string

	// Host is the peer that created the room.
	Host Peer

	// Client is the joined peer, or nil while the room is waiting for one.
	Client Peer

	// HostPrimary and ClientPrimary are the legacy single endpoints,
	// set by REGISTER_CANDIDATE and used as a fallback when the
	// corresponding candidate list is empty.
	HostPrimary   *Endpoint
	ClientPrimary *Endpoint

	// HostCandidates and ClientCandidates are the ICE candidate lists.
	// Each registration overwrites the previous list; the latest wins.
	HostCandidates   []Candidate
	ClientCandidates []Candidate

	// ClientFriendCode is the code the client presented on join, if any.
	ClientFriendCode string

	// HostConfirmed is set when the host acknowledges the client's
	// friend code. Endpoint exchange never happens before this.
	HostConfirmed bool
}

// isHost reports whether p is the room's host.
func (r *Room) isHost(p Peer) bool {
	return r.Host != nil && r.Host.ID() == p.ID()
}

// isClient reports whether p is the room's client.
func (r *Room) isClient(p Peer) bool {
	return r.Client != nil && r.Client.ID() == p.ID()
}
