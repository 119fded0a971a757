// Package solver searches for the smallest accumulator value that makes a
// program reproduce a target output, most notably its own code.
package solver

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sarchlab/octovm/machine"
)

// ErrInconsistentSolution reports that the search accepted a value the full
// run rejects. It indicates the program consumes more than 3 bits of the
// accumulator per emitted value, which breaks the chunk-by-chunk search.
var ErrInconsistentSolution = errors.New(
	"search accepted a value the full run rejects")

// Result summarizes one search.
type Result struct {
	// A is the smallest accumulator value found. Only meaningful when Found.
	A     uint64
	Found bool

	// Search statistics.
	Evaluations int // program runs performed
	Nodes       int // partial candidates expanded
	Hits        int // full-length matches seen, including non-minimal ones
}

// A node is a partial candidate: a reproduces the last rightIndex+1 values of
// the target when its chunks are consumed from the top.
type node struct {
	rightIndex int
	a          uint64
}

// Solver inverts a program, finding accumulator values from desired outputs.
type Solver struct {
	program machine.Program
	eval    Evaluator
}

// NewSolver creates a solver for the given program.
func NewSolver(program machine.Program) *Solver {
	return &Solver{
		program: program,
		eval:    NewEvaluator(program),
	}
}

// WithEvaluator substitutes the evaluator. Mainly for tests.
func (s *Solver) WithEvaluator(eval Evaluator) *Solver {
	s.eval = eval
	return s
}

// Solve finds the smallest accumulator value that makes the program emit its
// own code.
func (s *Solver) Solve() (Result, error) {
	return s.SolveFor([]uint8(s.program))
}

// SolveFor finds the smallest accumulator value that makes the program emit
// the target sequence. It builds the value 3 bits at a time from the last
// target value to the first, keeping every candidate whose run so far matches
// the target's tail. When no value works, Found is false and err is nil.
func (s *Solver) SolveFor(target []uint8) (Result, error) {
	var res Result

	if len(target) == 0 {
		return res, nil
	}

	var best uint64
	queue := []node{{rightIndex: 0, a: 0}}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		res.Nodes++

		expected := target[len(target)-1-n.rightIndex]

		for chunk := uint64(0); chunk < 8; chunk++ {
			trial := n.a<<3 | chunk

			res.Evaluations++
			digit, ok, err := s.eval.FirstDigit(trial)
			if err != nil {
				return res, fmt.Errorf("evaluating A=%d: %w", trial, err)
			}
			if !ok || digit != expected {
				continue
			}

			if n.rightIndex == len(target)-1 {
				// Several trials can reach full length because the lowest
				// chunk may be unconstrained. Keep the smallest.
				res.Hits++
				if !res.Found || trial < best {
					best = trial
					res.Found = true
				}
				continue
			}

			queue = append(queue, node{rightIndex: n.rightIndex + 1, a: trial})
		}
	}

	if !res.Found {
		return res, nil
	}

	res.A = best

	out, err := s.eval.RunOutput(best)
	if err != nil {
		return res, fmt.Errorf("verifying A=%d: %w", best, err)
	}
	if !slices.Equal(out, target) {
		return res, fmt.Errorf(
			"%w: A=%d output=%v", ErrInconsistentSolution, best, out)
	}

	return res, nil
}
