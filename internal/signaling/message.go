package signaling

// Inbound message types (client to server).
const (
	TypeCreateRoom              = "CREATE_ROOM"
	TypeJoinRoom                = "JOIN_ROOM"
	TypeRegisterCandidate       = "REGISTER_CANDIDATE"
	TypeRequestClientCandidates = "REQUEST_CLIENT_CANDIDATES"
)

// Outbound message types (server to client).
const (
	TypeRoomCreated      = "ROOM_CREATED"
	TypeJoinSuccess      = "JOIN_SUCCESS"
	TypeClientJoined     = "CLIENT_JOINED"
	TypeError            = "ERROR"
	TypePunchTarget      = "PUNCH_TARGET"
	TypePeerDisconnected = "PEER_DISCONNECTED"
)

// Candidate is a reachable network endpoint a peer advertises as a
// possible connection path (an ICE candidate). Type and Priority are
// optional hints passed through verbatim.
type Candidate struct {
	IP       string `json:"ip"`
	Port     int    `json:"port"`
	Type     string `json:"type,omitempty"`
	Priority int    `json:"priority,omitempty"`
}

// Endpoint is the single legacy ip/port pair kept as a fallback when a
// peer registers no candidate list.
type Endpoint struct {
	IP   string
	Port int
}

// Message defines the structure for all C2S (Client to Server)
// and S2C (Server to Client) websocket messages. One envelope carries
// the union of all tag-specific fields; unused fields are omitted on
// the wire.
type Message struct {
	Type string `json:"type"`

	// Code is a room code on JOIN_ROOM / ROOM_CREATED / JOIN_SUCCESS,
	// and a friend code on REQUEST_CLIENT_CANDIDATES.
	Code string `json:"code,omitempty"`

	// Message carries the friend code on JOIN_ROOM and the error text
	// on ERROR.
	Message string `json:"message,omitempty"`

	// Flat endpoint fields on REGISTER_CANDIDATE and PUNCH_TARGET,
	// kept for clients that predate candidate lists.
	IP   string `json:"ip,omitempty"`
	Port int    `json:"port,omitempty"`

	Candidates []Candidate `json:"candidates,omitempty"`

	// ClientFriendCode is set on CLIENT_JOINED so the host can match
	// the joiner against an out-of-band-shared code.
	ClientFriendCode string `json:"clientFriendCode,omitempty"`
}

// Peer is the transport-facing side of a connected endpoint. The core
// never touches the websocket directly; it addresses peers through this
// interface, keyed by a stable connection identity.
type Peer interface {
	// ID returns a stable identifier for the connection, assigned once
	// at upgrade time.
	ID() string

	// Send queues an outbound message. Delivery is best-effort: an
	// error means the message was dropped, not that it will be retried.
	Send(*Message) error
}
