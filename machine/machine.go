// Package machine implements an eight-opcode register machine: three
// unsigned 64-bit registers, a program of 3-bit values, and an append-only
// output stream. The pure interpreter lives in Machine; Core wraps one in an
// akita ticking component for cycle-level simulation.
package machine

import "fmt"

// Register file indices.
const (
	RegA = iota
	RegB
	RegC
)

// machineState holds everything one execution mutates.
type machineState struct {
	Registers [3]uint64
	PC        int
	Output    []uint8
	Program   Program
}

// instEmulator executes single instructions against a machineState.
type instEmulator struct{}

// Tick fetches, decodes, and executes one instruction. It reports false,
// without doing any work, once the instruction pointer is at or past the end
// of the program.
func (i instEmulator) Tick(s *machineState) (running bool, err error) {
	if s.PC < 0 || s.PC >= len(s.Program) {
		return false, nil
	}

	code := s.Program[s.PC]
	if code > 7 {
		return false, fmt.Errorf("PC %d: %w: %d", s.PC, ErrUnknownOpcode, code)
	}
	op := Opcode(code)

	if op == OpJnz {
		if err := i.runJnz(s); err != nil {
			return false, fmt.Errorf("PC %d: %s: %w", s.PC, op, err)
		}
		return true, nil
	}

	switch op {
	case OpShrA:
		err = i.runShr(s, RegA)
	case OpXorI:
		err = i.runXorI(s)
	case OpMovB:
		err = i.runMovB(s)
	case OpXorC:
		err = i.runXorC(s)
	case OpEmit:
		err = i.runEmit(s)
	case OpShrB:
		err = i.runShr(s, RegB)
	case OpShrC:
		err = i.runShr(s, RegC)
	}
	if err != nil {
		return false, fmt.Errorf("PC %d: %s: %w", s.PC, op, err)
	}

	s.PC += 2
	return true, nil
}

// runShr implements SHRA, SHRB, and SHRC: the value of A shifted right by the
// combo operand, stored in dst. For unsigned values this is exactly "divide
// by 2^count, truncated"; counts of 64 or more drain the register to zero.
func (i instEmulator) runShr(s *machineState, dst int) error {
	count, err := i.comboOperand(s)
	if err != nil {
		return err
	}
	if count >= 64 {
		s.Registers[dst] = 0
		return nil
	}
	s.Registers[dst] = s.Registers[RegA] >> count
	return nil
}

func (i instEmulator) runXorI(s *machineState) error {
	lit, err := i.literalOperand(s)
	if err != nil {
		return err
	}
	s.Registers[RegB] ^= uint64(lit)
	return nil
}

func (i instEmulator) runMovB(s *machineState) error {
	v, err := i.comboOperand(s)
	if err != nil {
		return err
	}
	s.Registers[RegB] = v & 0b111
	return nil
}

// runJnz updates the instruction pointer itself: the literal operand is an
// absolute program index, odd ones included.
func (i instEmulator) runJnz(s *machineState) error {
	target, err := i.literalOperand(s)
	if err != nil {
		return err
	}
	if s.Registers[RegA] != 0 {
		s.PC = int(target)
	} else {
		s.PC += 2
	}
	return nil
}

// runXorC ignores its operand slot entirely, so a program may end right
// after the opcode.
func (i instEmulator) runXorC(s *machineState) error {
	s.Registers[RegB] ^= s.Registers[RegC]
	return nil
}

func (i instEmulator) runEmit(s *machineState) error {
	v, err := i.comboOperand(s)
	if err != nil {
		return err
	}
	s.Output = append(s.Output, uint8(v&0b111))
	return nil
}

// Machine is a complete interpreter instance: a program plus the mutable
// state that one execution owns exclusively. Machines are cheap to build;
// callers that evaluate many candidates construct a fresh one per trial (or
// Reset between trials) so no state leaks across runs.
type Machine struct {
	init  [3]uint64
	state machineState
	emu   instEmulator
}

// NewMachine creates a machine over program with the given initial register
// values. The program is referenced, not copied; it must not change.
func NewMachine(program Program, a, b, c uint64) *Machine {
	m := &Machine{init: [3]uint64{a, b, c}}
	m.state.Program = program
	m.Reset()
	return m
}

// Tick executes one instruction. It reports false once the machine has
// halted. A decode error aborts the tick; the machine cannot continue.
func (m *Machine) Tick() (running bool, err error) {
	return m.emu.Tick(&m.state)
}

// Run drives the machine until it halts.
func (m *Machine) Run() error {
	for {
		running, err := m.Tick()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
	}
}

// RunUntilEmit executes until the machine appends one value to its output
// stream, returning that value, or until it halts, reporting ok == false.
// This evaluates one pass of a drain loop without assuming anything about
// the loop body beyond "it emits".
func (m *Machine) RunUntilEmit() (digit uint8, ok bool, err error) {
	before := len(m.state.Output)
	for {
		running, err := m.Tick()
		if err != nil {
			return 0, false, err
		}
		if len(m.state.Output) > before {
			return m.state.Output[len(m.state.Output)-1], true, nil
		}
		if !running {
			return 0, false, nil
		}
	}
}

// Reset restores the initial register values, rewinds the instruction
// pointer, and clears the output stream.
func (m *Machine) Reset() {
	m.state.Registers = m.init
	m.state.PC = 0
	m.state.Output = nil
}

// Registers returns a copy of the register file.
func (m *Machine) Registers() [3]uint64 {
	return m.state.Registers
}

// PC returns the instruction pointer.
func (m *Machine) PC() int {
	return m.state.PC
}

// Halted reports whether the instruction pointer is past the program.
func (m *Machine) Halted() bool {
	return m.state.PC < 0 || m.state.PC >= len(m.state.Program)
}

// Output returns a copy of the output stream.
func (m *Machine) Output() []uint8 {
	return append([]uint8(nil), m.state.Output...)
}

// OutputString returns the output stream as comma-joined decimals.
func (m *Machine) OutputString() string {
	return FormatOutput(m.state.Output)
}

// Program returns the loaded program.
func (m *Machine) Program() Program {
	return m.state.Program
}
