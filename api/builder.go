package api

import "github.com/sarchlab/akita/v4/sim"

type portFactory interface {
	make(c sim.Component, name string) sim.Port
}

type defaultPortFactory struct{}

func (defaultPortFactory) make(c sim.Component, name string) sim.Port {
	return sim.NewPort(c, 1, 1, name)
}

// DriverBuilder can create drivers.
type DriverBuilder struct {
	engine sim.Engine
	freq   sim.Freq
}

// WithEngine sets the engine the driver runs on.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the driver.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// Build creates a driver.
func (b DriverBuilder) Build(name string) Driver {
	if b.engine == nil {
		panic("driver needs an engine")
	}
	if b.freq == 0 {
		b.freq = 1 * sim.GHz
	}

	d := &driverImpl{
		portFactory: defaultPortFactory{},
	}
	d.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, d)

	return d
}
