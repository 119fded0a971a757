package machine

import (
	"github.com/sarchlab/akita/v4/sim"
)

// Core runs a Machine under an event engine, one instruction per cycle.
// Emitted values leave through the Out port, one message per cycle, with
// backpressure when the collector cannot keep up.
type Core struct {
	*sim.TickingComponent

	mach   *Machine
	out    sim.Port
	remote sim.RemotePort

	pending []uint8
	sent    int
	halted  bool
	err     error
}

// OutPort returns the port the output stream leaves through.
func (c *Core) OutPort() sim.Port {
	return c.out
}

// SetRemotePort sets where the output stream is delivered.
func (c *Core) SetRemotePort(remote sim.RemotePort) {
	c.remote = remote
}

// Machine exposes the wrapped interpreter, e.g. to read final registers.
func (c *Core) Machine() *Machine {
	return c.mach
}

// Err returns the decode error that stopped the core, if any.
func (c *Core) Err() error {
	return c.err
}

// Tick forwards at most one pending output value and advances the machine by
// one instruction.
func (c *Core) Tick() (madeProgress bool) {
	madeProgress = c.doSend() || madeProgress
	madeProgress = c.step() || madeProgress

	return madeProgress
}

func (c *Core) doSend() bool {
	if len(c.pending) == 0 {
		return false
	}
	if c.remote == "" {
		panic("core has no remote port to deliver output to")
	}

	msg := DigitMsgBuilder{}.
		WithSrc(c.out.AsRemote()).
		WithDst(c.remote).
		WithDigit(c.pending[0]).
		WithSeq(c.sent).
		Build()
	if err := c.out.Send(msg); err != nil {
		// Backpressure. Retry next cycle.
		return false
	}

	Trace("Emit",
		"Digit", c.pending[0],
		"Seq", c.sent,
		"Time", float64(c.Engine.CurrentTime()*1e9),
	)

	c.pending = c.pending[1:]
	c.sent++

	return true
}

func (c *Core) step() bool {
	if c.halted {
		return false
	}

	before := len(c.mach.state.Output)
	running, err := c.mach.Tick()
	if err != nil {
		c.err = err
		c.halted = true
		Trace("Fault",
			"Err", err.Error(),
			"Time", float64(c.Engine.CurrentTime()*1e9),
		)
		return false
	}

	if out := c.mach.state.Output; len(out) > before {
		c.pending = append(c.pending, out[len(out)-1])
	}

	if !running {
		c.halted = true
		return false
	}

	return true
}
