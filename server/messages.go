// File: server/messages.go
package server

import "golang.org/x/net/websocket"

// AddClient registers a spectator connection with the BroadcasterActor.
type AddClient struct {
	Conn *websocket.Conn
}

// RemoveClient unregisters a spectator connection.
type RemoveClient struct {
	Conn *websocket.Conn
}

// BroadcastSnapshot carries one tick's spectator payload to every
// registered client. The broadcaster never reads simulation state
// itself -- it only relays what Game.Snapshot already produced
// downstream of Step.
type BroadcastSnapshot struct {
	Payload []byte
}
