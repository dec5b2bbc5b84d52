// File: server/broadcaster_actor.go
package server

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/arnozoon/haxgo/bollywood"
	"golang.org/x/net/websocket"
)

// BroadcasterActor fans out spectator snapshots to every subscribed
// WebSocket connection, handling registration, fan-out and disconnects
// for the single running Game. It runs entirely outside the synchronous
// tick -- it is only ever fed a Snapshot that Game.Step already
// produced, never a live reference into the simulation.
type BroadcasterActor struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
	selfPID *bollywood.PID
}

// NewBroadcasterProducer creates a producer for BroadcasterActor.
func NewBroadcasterProducer() bollywood.Producer {
	return func() bollywood.Actor {
		return &BroadcasterActor{clients: make(map[*websocket.Conn]bool)}
	}
}

func (a *BroadcasterActor) Receive(ctx bollywood.Context) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("PANIC recovered in BroadcasterActor %s Receive: %v\nStack trace:\n%s\n", a.selfPID, r, string(debug.Stack()))
		}
	}()

	if a.selfPID == nil {
		a.selfPID = ctx.Self()
	}

	switch msg := ctx.Message().(type) {
	case bollywood.Started:
	case AddClient:
		if msg.Conn != nil {
			a.mu.Lock()
			a.clients[msg.Conn] = true
			a.mu.Unlock()
		}
	case RemoveClient:
		if msg.Conn != nil {
			a.mu.Lock()
			delete(a.clients, msg.Conn)
			a.mu.Unlock()
		}
	case BroadcastSnapshot:
		a.broadcast(msg.Payload)
	case bollywood.Stopping:
		a.closeAll()
	case bollywood.Stopped:
	}
}

// broadcast writes the same payload bytes to every registered client,
// dropping clients whose connection has gone away.
func (a *BroadcasterActor) broadcast(payload []byte) {
	if len(payload) == 0 {
		return
	}

	a.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(a.clients))
	for c := range a.clients {
		clients = append(clients, c)
	}
	a.mu.RUnlock()

	var dead []*websocket.Conn
	for _, c := range clients {
		if _, err := c.Write(payload); err != nil {
			if isClosedConnErr(err) {
				dead = append(dead, c)
			} else {
				fmt.Printf("ERROR: BroadcasterActor %s: write to %s failed: %v\n", a.selfPID, c.RemoteAddr(), err)
			}
		}
	}

	if len(dead) > 0 {
		a.mu.Lock()
		for _, c := range dead {
			delete(a.clients, c)
		}
		a.mu.Unlock()
	}
}

func (a *BroadcasterActor) closeAll() {
	a.mu.Lock()
	clients := make([]*websocket.Conn, 0, len(a.clients))
	for c := range a.clients {
		clients = append(clients, c)
	}
	a.clients = make(map[*websocket.Conn]bool)
	a.mu.Unlock()

	for _, c := range clients {
		_ = c.Close()
	}
}

func isClosedConnErr(err error) bool {
	s := err.Error()
	return strings.Contains(s, "use of closed network connection") ||
		strings.Contains(s, "broken pipe") ||
		strings.Contains(s, "connection reset by peer") ||
		strings.Contains(s, "EOF")
}
