package bollywood

import (
	"fmt"
	"runtime/debug"
)

const defaultMailboxSize = 1024

// process is the running instance of an actor -- in haxgo, always the
// spectator BroadcasterActor -- including its mailbox and lifecycle
// state.
type process struct {
	engine  *Engine
	pid     *PID
	actor   Actor
	mailbox chan *messageEnvelope
	props   *Props
	stopCh  chan struct{}
	stopped bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, defaultMailboxSize),
		stopCh:  make(chan struct{}),
	}
}

// sendMessage enqueues a message for the actor's mailbox, dropping it
// if the mailbox is full rather than blocking the caller -- the tick
// loop that calls Server.Publish must never stall waiting on a
// spectator fan-out that has fallen behind.
func (p *process) sendMessage(message interface{}, sender *PID) {
	envelope := &messageEnvelope{
		Sender:  sender,
		Message: message,
	}

	select {
	case p.mailbox <- envelope:
	default:
		fmt.Printf("bollywood: actor %s mailbox full, dropping snapshot message of type %T\n", p.pid.ID, message)
	}
}

// run is the actor's message loop: produce the actor instance, then
// dispatch Started/Stopping/Stopped lifecycle messages and every
// regular message (in haxgo, BroadcastSnapshot/AddClient/RemoveClient)
// to Receive until stopCh closes.
func (p *process) run() {
	defer func() {
		p.stopped = true
		p.invokeReceive(Stopped{}, nil)
		p.engine.remove(p.pid)
	}()

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("bollywood: actor %s panicked: %v\nstack trace:\n%s\n", p.pid.ID, r, string(debug.Stack()))
			p.stopped = true
		}
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		panic(fmt.Sprintf("bollywood: actor %s producer returned a nil actor", p.pid.ID))
	}

	for {
		select {
		case <-p.stopCh:
			if !p.stopped {
				p.stopped = true
				p.invokeReceive(Stopping{}, nil)
			}
			return

		case envelope := <-p.mailbox:
			if p.stopped {
				continue
			}

			switch msg := envelope.Message.(type) {
			case Started:
				p.invokeReceive(msg, envelope.Sender)
			case Stopping:
				p.stopped = true
				p.invokeReceive(msg, envelope.Sender)
				select {
				case <-p.stopCh: // already closed by Engine.Stop
				default:
					close(p.stopCh)
				}
			case Stopped:
				fmt.Printf("bollywood: actor %s received an unexpected Stopped message via its mailbox\n", p.pid.ID)
				p.stopped = true
				p.invokeReceive(msg, envelope.Sender)
				select {
				case <-p.stopCh: // already closed
				default:
					close(p.stopCh)
				}
			default:
				p.invokeReceive(envelope.Message, envelope.Sender)
			}
		}
	}
}

// invokeReceive builds the per-message Context and calls the actor's
// Receive. Panic recovery is handled by run's deferred recover, not
// here, so a panicking Receive still tears down the process cleanly.
func (p *process) invokeReceive(msg interface{}, sender *PID) {
	ctx := &context{
		engine:  p.engine,
		self:    p.pid,
		sender:  sender,
		message: msg,
	}
	p.actor.Receive(ctx)
}
