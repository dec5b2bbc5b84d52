// File: server/handlers.go
package server

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"golang.org/x/net/websocket"
)

// HandleSubscribe upgrades a connection to a spectator WebSocket: it
// registers the connection with the BroadcasterActor and blocks reading
// (spectators send nothing meaningful; any read error, including a
// client-initiated close, ends the subscription) until the connection
// drops, then unregisters it.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		addr := ws.RemoteAddr().String()

		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("PANIC recovered in HandleSubscribe for %s: %v\nStack trace:\n%s\n", addr, r, string(debug.Stack()))
			}
			s.Engine().Send(s.BroadcasterPID(), RemoveClient{Conn: ws}, nil)
			_ = ws.Close()
		}()

		s.Engine().Send(s.BroadcasterPID(), AddClient{Conn: ws}, nil)

		buf := make([]byte, 256)
		for {
			if _, err := ws.Read(buf); err != nil {
				return
			}
		}
	}
}

// HandleHealthCheck is a plain liveness probe, unrelated to game state.
func HandleHealthCheck() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status": "ok"}`))
	}
}
