package server

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/zzkontaz/slidebattle-signaling/internal/signaling"
)

// ServeWs returns an http.HandlerFunc that upgrades requests to
// websocket connections and hands them to the hub. When allowedOrigin
// is non-empty, upgrades from any other Origin are rejected.
func ServeWs(hub *signaling.Hub, allowedOrigin string) http.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  64 * 1024, // 64 KB
		WriteBufferSize: 64 * 1024, // 64 KB
		CheckOrigin: func(r *http.Request) bool {
			if allowedOrigin == "" {
				return true
			}
			return r.Header.Get("Origin") == allowedOrigin
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("failed to upgrade connection", "error", err)
			return
		}

		// Each connection gets a stable identity the session table is
		// keyed by; the transport object itself carries no room state.
		client := signaling.NewClient(hub, conn, uuid.New().String())

		hub.Register <- client

		// Start the client's read and write pumps in separate
		// goroutines; they own the connection from here on.
		go client.WritePump()
		go client.ReadPump()
	}
}
