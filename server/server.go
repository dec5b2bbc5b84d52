// File: server/server.go
package server

import (
	"github.com/arnozoon/haxgo/bollywood"
	"github.com/arnozoon/haxgo/utils"
)

// Server is the spectator-facing half of haxgo: it owns the bollywood
// engine and the single BroadcasterActor that fans out per-tick
// snapshots to every connected viewer. It never touches a Game directly
// -- the caller (main.go's tick loop) pushes a Snapshot in after every
// Game.Step; externally owned collaborators like this one must not
// mutate game state. One broadcaster is all there is: haxgo runs one
// authoritative simulation fed by a local or headless caller, not a
// multi-room matchmaking service.
type Server struct {
	engine         *bollywood.Engine
	broadcasterPID *bollywood.PID
}

// New spawns the BroadcasterActor on engine and returns a Server wired
// to it.
func New(engine *bollywood.Engine) *Server {
	props := bollywood.NewProps(NewBroadcasterProducer())
	pid := engine.Spawn(props)
	return &Server{engine: engine, broadcasterPID: pid}
}

// Engine exposes the underlying actor engine (used by handlers.go and
// tests that need to Send directly).
func (s *Server) Engine() *bollywood.Engine {
	return s.engine
}

// BroadcasterPID returns the spawned broadcaster's address.
func (s *Server) BroadcasterPID() *bollywood.PID {
	return s.broadcasterPID
}

// Publish marshals a tick's snapshot and hands it to the broadcaster.
// Safe to call from the tick loop after every Game.Step returns; the
// payload is serialized here, before crossing onto the actor's
// goroutine, so the broadcaster never touches the snapshot itself.
func (s *Server) Publish(snapshot utils.JSONable) {
	s.engine.Send(s.broadcasterPID, BroadcastSnapshot{Payload: snapshot.ToJson()}, nil)
}
