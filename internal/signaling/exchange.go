package signaling

import "log/slog"

// tryExchange releases both peers' endpoint sets to each other once the
// room is ready: both primaries registered and the host has confirmed
// the client's friend code. Until then it is a no-op, and callers are
// expected to invoke it opportunistically after any state change.
//
// The exchange is not one-shot. Every registration after confirmation
// fires it again with the updated sets, so receivers must treat
// PUNCH_TARGET as an overwrite, never an append. Delivery is
// best-effort: a closed peer is skipped, not retried.
func tryExchange(room *Room) {
	if room.HostPrimary == nil || room.ClientPrimary == nil || !room.HostConfirmed {
		return
	}

	slog.Info("exchanging candidates", "room", room.Code)

	// Client's endpoints go to the host, and vice versa.
	sendPunchTarget(room.Host, room.ClientPrimary, room.ClientCandidates, room.Code)
	sendPunchTarget(room.Client, room.HostPrimary, room.HostCandidates, room.Code)
}

// sendPunchTarget delivers one side's endpoint set to the opposite peer.
// The flat ip/port fields always carry the primary endpoint so that
// clients predating candidate lists keep working.
func sendPunchTarget(to Peer, primary *Endpoint, candidates []Candidate, roomCode string) {
	if to == nil {
		return
	}

	list := candidates
	if len(list) == 0 {
		list = []Candidate{{IP: primary.IP, Port: primary.Port}}
	}

	msg := &Message{
		Type:       TypePunchTarget,
		IP:         primary.IP,
		Port:       primary.Port,
		Candidates: list,
	}
	if err := to.Send(msg); err != nil {
		slog.Debug("dropped punch target", "room", roomCode, "clientId", to.ID(), "error", err)
	}
}
