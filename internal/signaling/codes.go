package signaling

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeLength   = 6
)

// newRoomCode generates a random 6-character room code over 0-9A-Z.
// It keeps generating until it finds one not held by a live room.
func (r *Registry) newRoomCode() string {
	for {
		b := make([]byte, codeLength)
		for i := range b {
			b[i] = codeAlphabet[randomIndex(len(codeAlphabet))]
		}
		code := string(b)

		// Check if a room already holds this code
		if _, ok := r.rooms[code]; !ok {
			return code
		}
	}
}

// randomIndex returns a cryptographically secure random index for a slice of given length.
func randomIndex(max int) int {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(fmt.Sprintf("failed to generate random index: %v", err))
	}
	return int(n.Int64())
}
