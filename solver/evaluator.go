package solver

import "github.com/sarchlab/octovm/machine"

//go:generate mockgen -write_package_comment=false -package=solver -source=evaluator.go -destination=mock_evaluator_test.go

// Evaluator answers questions about a program's behavior for candidate
// accumulator values. Every call starts from a fresh machine with B and C
// cleared.
type Evaluator interface {
	// FirstDigit runs the program with the accumulator set to a and returns
	// the first value it emits. ok is false when the program halts without
	// emitting anything.
	FirstDigit(a uint64) (digit uint8, ok bool, err error)

	// RunOutput runs the program to completion with the accumulator set to a
	// and returns everything it emitted.
	RunOutput(a uint64) ([]uint8, error)
}

type machineEvaluator struct {
	program machine.Program
}

// NewEvaluator creates an evaluator that runs the given program directly.
func NewEvaluator(program machine.Program) Evaluator {
	return &machineEvaluator{program: program}
}

func (e *machineEvaluator) FirstDigit(a uint64) (uint8, bool, error) {
	m := machine.NewMachine(e.program, a, 0, 0)
	return m.RunUntilEmit()
}

func (e *machineEvaluator) RunOutput(a uint64) ([]uint8, error) {
	m := machine.NewMachine(e.program, a, 0, 0)
	if err := m.Run(); err != nil {
		return nil, err
	}
	return m.Output(), nil
}
