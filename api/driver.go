// Package api provides the driver that owns a simulation, feeds a core, and
// collects its output stream.
package api

import (
	"fmt"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/akita/v4/sim/directconnection"

	"github.com/sarchlab/octovm/machine"
)

// Driver runs a core to completion and collects everything it emits.
type Driver interface {
	// RegisterCore connects a core to the driver.
	RegisterCore(core *machine.Core)

	// Run drives the simulation until no events remain. It returns the decode
	// fault that stopped the core, if any.
	Run() error

	// Output returns the values collected so far, in emission order.
	Output() []uint8

	// OutputString renders the collected values as comma-joined decimals.
	OutputString() string
}

type driverImpl struct {
	*sim.TickingComponent

	portFactory portFactory
	core        *machine.Core
	collectPort sim.Port
	collected   []uint8
}

// Tick drains the collect port.
func (d *driverImpl) Tick() (madeProgress bool) {
	for {
		item := d.collectPort.PeekIncoming()
		if item == nil {
			return madeProgress
		}

		msg := item.(*machine.DigitMsg)
		d.collected = append(d.collected, msg.Digit)
		d.collectPort.RetrieveIncoming()

		machine.Trace("Collect",
			"Digit", msg.Digit,
			"Seq", msg.Seq,
			"Time", float64(d.Engine.CurrentTime()*1e9),
		)

		madeProgress = true
	}
}

func (d *driverImpl) RegisterCore(core *machine.Core) {
	d.core = core

	d.collectPort = d.portFactory.make(d, d.Name()+".Collect")
	d.AddPort("Collect", d.collectPort)

	conn := directconnection.MakeBuilder().
		WithEngine(d.Engine).
		WithFreq(d.Freq).
		Build(core.Name() + "To" + d.Name())
	conn.PlugIn(core.OutPort())
	conn.PlugIn(d.collectPort)

	core.SetRemotePort(d.collectPort.AsRemote())
}

func (d *driverImpl) Run() error {
	if d.core == nil {
		panic("driver has no core registered")
	}

	d.core.TickNow()
	d.TickNow()

	if err := d.Engine.Run(); err != nil {
		return fmt.Errorf("running engine: %w", err)
	}

	if err := d.core.Err(); err != nil {
		return fmt.Errorf("core %s: %w", d.core.Name(), err)
	}

	return nil
}

func (d *driverImpl) Output() []uint8 {
	out := make([]uint8, len(d.collected))
	copy(out, d.collected)
	return out
}

func (d *driverImpl) OutputString() string {
	return machine.FormatOutput(d.collected)
}
