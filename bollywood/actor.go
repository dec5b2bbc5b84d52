package bollywood

// Actor is anything that can react to a message delivered through an
// Engine. Receive runs on the actor's own goroutine; it must not block
// on anything outside ctx.
type Actor interface {
	Receive(ctx Context)
}

// PID addresses a spawned actor within an Engine.
type PID struct {
	ID string
}

func (p *PID) String() string {
	if p == nil {
		return "<nil>"
	}
	return p.ID
}

// Producer constructs a fresh Actor instance; Engine.Spawn calls it once
// per actor, on the actor's own goroutine, so per-actor state never
// needs its own lock.
type Producer func() Actor

// Props bundles whatever an Engine needs to spawn an actor.
type Props struct {
	producer Producer
}

// NewProps wraps a Producer for Engine.Spawn.
func NewProps(producer Producer) *Props {
	return &Props{producer: producer}
}

// Produce invokes the wrapped Producer.
func (p *Props) Produce() Actor {
	return p.producer()
}

// messageEnvelope carries a message and its sender through a process's
// mailbox channel.
type messageEnvelope struct {
	Sender  *PID
	Message interface{}
}

// Started is delivered once, immediately after an actor's goroutine
// begins running.
type Started struct{}

// Stopping is delivered when an actor has been asked to stop, before
// its goroutine exits; Stopped follows once the Receive(Stopping) call
// returns.
type Stopping struct{}

// Stopped is delivered last, after the actor's run loop has exited.
type Stopped struct{}
