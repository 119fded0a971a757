package machine

import "fmt"

// Opcode identifies one of the eight machine instructions. Program values
// alternate between opcode and operand positions, but the split is only
// enforced at execution time: a jump may land on any index.
type Opcode uint8

const (
	// OpShrA shifts A right by the combo operand, into A.
	OpShrA Opcode = iota
	// OpXorI xors B with the literal operand.
	OpXorI
	// OpMovB stores the low three bits of the combo operand in B.
	OpMovB
	// OpJnz sets the instruction pointer to the literal operand when A is
	// nonzero, and falls through otherwise.
	OpJnz
	// OpXorC xors B with C. The operand slot is present but ignored.
	OpXorC
	// OpEmit appends the low three bits of the combo operand to the output
	// stream.
	OpEmit
	// OpShrB shifts A right by the combo operand, into B.
	OpShrB
	// OpShrC shifts A right by the combo operand, into C.
	OpShrC
)

// Name returns the mnemonic of the opcode.
func (o Opcode) Name() string {
	switch o {
	case OpShrA:
		return "SHRA"
	case OpXorI:
		return "XORI"
	case OpMovB:
		return "MOVB"
	case OpJnz:
		return "JNZ"
	case OpXorC:
		return "XORC"
	case OpEmit:
		return "EMIT"
	case OpShrB:
		return "SHRB"
	case OpShrC:
		return "SHRC"
	default:
		return fmt.Sprintf("OP%d", uint8(o))
	}
}

func (o Opcode) String() string {
	return o.Name()
}

// UsesCombo reports whether the opcode reads its operand with combo
// addressing. JNZ and XORI read the operand literally; XORC never reads it.
func (o Opcode) UsesCombo() bool {
	switch o {
	case OpXorI, OpJnz, OpXorC:
		return false
	default:
		return true
	}
}
