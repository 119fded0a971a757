package solver

import (
	"slices"

	"github.com/sarchlab/octovm/machine"
)

// BruteForce scans accumulator values from 0 through limit and returns the
// first one that makes the program emit the target sequence. It exists to
// cross-check the chunk search on small inputs.
func BruteForce(
	program machine.Program,
	target []uint8,
	limit uint64,
) (uint64, bool, error) {
	eval := NewEvaluator(program)

	for a := uint64(0); a <= limit; a++ {
		out, err := eval.RunOutput(a)
		if err != nil {
			return 0, false, err
		}
		if slices.Equal(out, target) {
			return a, true, nil
		}
	}

	return 0, false, nil
}
