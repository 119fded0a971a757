package machine

import (
	"github.com/sarchlab/akita/v4/sim"
)

// Builder can create new cores.
type Builder struct {
	engine    sim.Engine
	freq      sim.Freq
	program   Program
	registers [3]uint64
}

// NewBuilder creates a builder with the default frequency.
func NewBuilder() Builder {
	return Builder{
		freq: 1 * sim.GHz,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithProgram sets the program the core runs.
func (b Builder) WithProgram(program Program) Builder {
	b.program = program
	return b
}

// WithRegisters sets the initial register values.
func (b Builder) WithRegisters(a, b2, c uint64) Builder {
	b.registers = [3]uint64{a, b2, c}
	return b
}

// Build creates a core.
func (b Builder) Build(name string) *Core {
	if b.engine == nil {
		panic("core needs an engine")
	}

	c := &Core{
		mach: NewMachine(
			b.program, b.registers[0], b.registers[1], b.registers[2]),
	}
	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)

	c.out = sim.NewPort(c, 1, 1, name+".Out")
	c.AddPort("Out", c.out)

	return c
}
