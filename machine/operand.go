package machine

import "fmt"

// operand reads the raw 3-bit value at the operand position of the
// instruction currently under the instruction pointer.
func (i instEmulator) operand(s *machineState) (uint8, error) {
	pos := s.PC + 1
	if pos >= len(s.Program) {
		return 0, ErrMissingOperand
	}
	v := s.Program[pos]
	if v > 7 {
		return 0, fmt.Errorf("%w: %d", ErrOperandRange, v)
	}
	return v, nil
}

// literalOperand reads the operand as its numeric value.
func (i instEmulator) literalOperand(s *machineState) (uint8, error) {
	return i.operand(s)
}

// comboOperand resolves the operand: 0-3 are literals, 4-6 read registers
// A, B, and C, and 7 is reserved.
func (i instEmulator) comboOperand(s *machineState) (uint64, error) {
	v, err := i.operand(s)
	if err != nil {
		return 0, err
	}
	switch {
	case v <= 3:
		return uint64(v), nil
	case v <= 6:
		return s.Registers[v-4], nil
	default:
		return 0, ErrReservedOperand
	}
}
