package bollywood

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Engine runs the actor(s) backing haxgo's tick-decoupled collaborators.
// haxgo spawns exactly one: the spectator BroadcasterActor that mirrors
// every Game.Step's Snapshot to connected websocket viewers (see
// server.New). The engine is never touched by the simulation's
// synchronous Step path itself -- Publish only ever hands a Snapshot
// that Step has already produced to an actor running on its own
// goroutine.
type Engine struct {
	spectatorCounter uint64
	actors           map[string]*process
	mu               sync.RWMutex // protects actors
	stopping         atomic.Bool
}

// NewEngine creates a new actor engine.
func NewEngine() *Engine {
	return &Engine{
		actors: make(map[string]*process),
	}
}

// nextPID allocates the address for the next spawned spectator actor.
func (e *Engine) nextPID() *PID {
	id := atomic.AddUint64(&e.spectatorCounter, 1)
	return &PID{ID: fmt.Sprintf("spectator-%d", id)}
}

// Spawn creates and starts a new actor based on the provided Props.
// It returns the PID of the newly created actor, or nil if the engine
// is already shutting down.
func (e *Engine) Spawn(props *Props) *PID {
	if e.stopping.Load() {
		fmt.Println("bollywood: engine is stopping, refusing to spawn a new actor")
		return nil
	}

	pid := e.nextPID()
	proc := newProcess(e, pid, props)

	e.mu.Lock()
	e.actors[pid.ID] = proc
	e.mu.Unlock()

	go proc.run()

	e.Send(pid, Started{}, nil)

	return pid
}

// isSystemMessage reports whether msg is part of the actor lifecycle
// protocol (Started/Stopping/Stopped) and so must be delivered even
// while the engine is draining toward Shutdown.
func isSystemMessage(msg interface{}) bool {
	switch msg.(type) {
	case Started, Stopping, Stopped:
		return true
	default:
		return false
	}
}

// Send delivers a message to the actor identified by the PID. A
// message to an unknown PID (already stopped, or never spawned) is
// silently dropped -- haxgo's broadcaster fan-out tolerates a missed
// tick far better than it tolerates Publish blocking the tick loop.
func (e *Engine) Send(pid *PID, message interface{}, sender *PID) {
	if e.stopping.Load() && !isSystemMessage(message) {
		return
	}

	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()

	if ok {
		proc.sendMessage(message, sender)
	}
}

// Stop requests an actor to stop processing messages and shut down. It
// sends the Stopping message and also directly signals the actor's stop
// channel so shutdown completes even if the actor's mailbox is full.
func (e *Engine) Stop(pid *PID) {
	e.mu.RLock()
	proc, ok := e.actors[pid.ID]
	e.mu.RUnlock()

	if !ok {
		return
	}

	e.Send(pid, Stopping{}, nil)

	select {
	case <-proc.stopCh: // already closed
	default:
		close(proc.stopCh)
	}
}

// remove removes an actor process from the engine's tracking, called by
// a process's run loop right before its goroutine exits.
func (e *Engine) remove(pid *PID) {
	e.mu.Lock()
	delete(e.actors, pid.ID)
	e.mu.Unlock()
}

// Shutdown stops every running actor (in haxgo's case, the one
// BroadcasterActor) and waits up to timeout for it to terminate, used
// by main.go once the HTTP listener returns.
func (e *Engine) Shutdown(timeout time.Duration) {
	if !e.stopping.CompareAndSwap(false, true) {
		fmt.Println("bollywood: engine already shutting down")
		return
	}

	e.mu.RLock()
	pidsToStop := make([]*PID, 0, len(e.actors))
	for _, proc := range e.actors {
		pidsToStop = append(pidsToStop, proc.pid)
	}
	e.mu.RUnlock()

	fmt.Printf("bollywood: stopping %d actor(s)...\n", len(pidsToStop))
	for _, pid := range pidsToStop {
		e.Stop(pid)
	}

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		e.mu.RLock()
		remaining := len(e.actors)
		e.mu.RUnlock()
		if remaining == 0 {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	e.mu.Lock()
	if remaining := len(e.actors); remaining > 0 {
		fmt.Printf("bollywood: shutdown timed out with %d actor(s) still running, forcing removal\n", remaining)
		e.actors = make(map[string]*process)
	}
	e.mu.Unlock()

	fmt.Println("bollywood: engine shutdown complete")
}
