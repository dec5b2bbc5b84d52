package bollywood

// Context is the per-message handle an Actor's Receive uses to read the
// incoming message and its own identity, and to send replies.
type Context interface {
	Engine() *Engine
	Self() *PID
	Sender() *PID
	Message() interface{}
	Send(pid *PID, message interface{})
	Reply(message interface{})
}

type context struct {
	engine  *Engine
	self    *PID
	sender  *PID
	message interface{}
}

func (c *context) Engine() *Engine        { return c.engine }
func (c *context) Self() *PID             { return c.self }
func (c *context) Sender() *PID           { return c.sender }
func (c *context) Message() interface{}   { return c.message }
func (c *context) Send(pid *PID, msg interface{}) {
	c.engine.Send(pid, msg, c.self)
}
func (c *context) Reply(msg interface{}) {
	if c.sender == nil {
		return
	}
	c.engine.Send(c.sender, msg, c.self)
}
