// Package proggen has some helpers using closures to generate test programs.
package proggen

import "github.com/sarchlab/octovm/machine"

// MakeEchoLoop returns a generator for the program that shifts A right by 3
// and emits its new low chunk, looping until A is zero.
func MakeEchoLoop() func() machine.Program {
	return func() machine.Program {
		return machine.Program{0, 3, 5, 4, 3, 0}
	}
}

// MakeXorLoop returns a generator for a drain loop that emits the low chunk
// of A xored with tweak before each shift.
func MakeXorLoop(tweak uint8) func() machine.Program {
	return func() machine.Program {
		return machine.Program{2, 4, 1, tweak & 7, 5, 5, 0, 3, 3, 0}
	}
}
