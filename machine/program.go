package machine

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Program is an immutable ordered sequence of 3-bit values. It is loaded
// once and never mutated afterwards.
type Program []uint8

var numberRE = regexp.MustCompile(`\d+`)

// ParseInput scans free-form input text for numbers. The first three are the
// initial values of registers A, B, and C; every following number is one
// program value and must fit in 3 bits.
func ParseInput(input string) (registers [3]uint64, program Program, err error) {
	numbers := numberRE.FindAllString(input, -1)
	if len(numbers) < 3 {
		return registers, nil, fmt.Errorf(
			"expected three register values, found %d numbers", len(numbers))
	}

	for i := 0; i < 3; i++ {
		registers[i], err = strconv.ParseUint(numbers[i], 10, 64)
		if err != nil {
			return registers, nil, fmt.Errorf(
				"parsing register %c: %w", rune('A'+i), err)
		}
	}

	program = make(Program, 0, len(numbers)-3)
	for _, n := range numbers[3:] {
		v, err := strconv.ParseUint(n, 10, 8)
		if err != nil || v > 7 {
			return registers, nil, fmt.Errorf(
				"program value %q out of range for 3 bits", n)
		}
		program = append(program, uint8(v))
	}

	return registers, program, nil
}

// LoadInputFile reads a file and parses it with ParseInput.
func LoadInputFile(path string) ([3]uint64, Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return [3]uint64{}, nil, err
	}
	return ParseInput(string(data))
}

// String renders the program the same way the machine renders its output,
// as comma-joined decimal digits.
func (p Program) String() string {
	return FormatOutput(p)
}

// FormatOutput joins 3-bit values into their comma-separated decimal form.
func FormatOutput(digits []uint8) string {
	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, ",")
}
