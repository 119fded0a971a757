package machine

import "errors"

var (
	// ErrMissingOperand reports an instruction whose operand position lies
	// past the end of the program.
	ErrMissingOperand = errors.New("instruction has no operand")

	// ErrOperandRange reports an operand value that does not fit in 3 bits.
	ErrOperandRange = errors.New("operand out of range for a 3-bit value")

	// ErrReservedOperand reports a combo operand of 7, which is reserved and
	// never appears in valid programs.
	ErrReservedOperand = errors.New("combo operand 7 is reserved")

	// ErrUnknownOpcode reports an opcode value outside 0-7.
	ErrUnknownOpcode = errors.New("unknown opcode")
)
