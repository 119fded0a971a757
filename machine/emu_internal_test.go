package machine

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("InstEmulator", func() {
	var (
		emu instEmulator
		s   *machineState
	)

	run := func(program ...uint8) (bool, error) {
		s.Program = Program(program)
		return emu.Tick(s)
	}

	BeforeEach(func() {
		emu = instEmulator{}
		s = &machineState{}
	})

	Describe("SHRA, SHRB, SHRC", func() {
		samples := []uint64{0, 1, 7, 1 << 63, 1<<63 + 12345, ^uint64(0)}

		It("should divide A by powers of two", func() {
			for _, a := range samples {
				for count := uint64(0); count <= 7; count++ {
					// Counts 0 through 3 fit a literal combo; larger ones
					// come from register C.
					operand := uint8(count)
					s = &machineState{Registers: [3]uint64{a, 0, 0}}
					if count > 3 {
						operand = 6
						s.Registers[RegC] = count
					}

					running, err := run(uint8(OpShrA), operand)

					Expect(err).ToNot(HaveOccurred())
					Expect(running).To(BeTrue())
					Expect(s.Registers[RegA]).To(Equal(a >> count))
					Expect(s.PC).To(Equal(2))
				}
			}
		})

		It("should read the count from a register via combo operands", func() {
			s.Registers = [3]uint64{1024, 0, 5}
			_, err := run(uint8(OpShrB), 6)

			Expect(err).ToNot(HaveOccurred())
			Expect(s.Registers[RegB]).To(Equal(uint64(1024 >> 5)))
			Expect(s.Registers[RegA]).To(Equal(uint64(1024)))
		})

		It("should write to C without touching A", func() {
			s.Registers = [3]uint64{100, 0, 0}
			_, err := run(uint8(OpShrC), 2)

			Expect(err).ToNot(HaveOccurred())
			Expect(s.Registers[RegC]).To(Equal(uint64(25)))
			Expect(s.Registers[RegA]).To(Equal(uint64(100)))
		})

		It("should drain the register when the count reaches 64", func() {
			s.Registers = [3]uint64{^uint64(0), 64, 0}
			_, err := run(uint8(OpShrA), 5)

			Expect(err).ToNot(HaveOccurred())
			Expect(s.Registers[RegA]).To(Equal(uint64(0)))
		})
	})

	Describe("XORI", func() {
		It("should xor the literal into B", func() {
			s.Registers = [3]uint64{0, 0b1100, 0}
			_, err := run(uint8(OpXorI), 0b1010)

			Expect(err).ToNot(HaveOccurred())
			Expect(s.Registers[RegB]).To(Equal(uint64(0b0110)))
		})

		It("should accept literal 7 even though combo 7 is reserved", func() {
			s.Registers = [3]uint64{0, 0, 0}
			_, err := run(uint8(OpXorI), 7)

			Expect(err).ToNot(HaveOccurred())
			Expect(s.Registers[RegB]).To(Equal(uint64(7)))
		})
	})

	Describe("MOVB", func() {
		It("should keep only the low 3 bits of the combo value", func() {
			s.Registers = [3]uint64{0, 0, 0xFFF8 | 5}
			_, err := run(uint8(OpMovB), 6)

			Expect(err).ToNot(HaveOccurred())
			Expect(s.Registers[RegB]).To(Equal(uint64(5)))
		})
	})

	Describe("JNZ", func() {
		It("should jump to the absolute target when A is non-zero", func() {
			s.Registers = [3]uint64{1, 0, 0}
			s.Program = Program{1, 1, uint8(OpJnz), 0}
			s.PC = 2

			running, err := emu.Tick(s)

			Expect(err).ToNot(HaveOccurred())
			Expect(running).To(BeTrue())
			Expect(s.PC).To(Equal(0))
		})

		It("should fall through when A is zero", func() {
			running, err := run(uint8(OpJnz), 0)

			Expect(err).ToNot(HaveOccurred())
			Expect(running).To(BeTrue())
			Expect(s.PC).To(Equal(2))
		})

		It("should allow odd jump targets", func() {
			s.Registers = [3]uint64{1, 0, 0}
			_, err := run(uint8(OpJnz), 1)

			Expect(err).ToNot(HaveOccurred())
			Expect(s.PC).To(Equal(1))
		})
	})

	Describe("XORC", func() {
		It("should xor C into B", func() {
			s.Registers = [3]uint64{0, 0b1111, 0b0101}
			_, err := run(uint8(OpXorC), 0)

			Expect(err).ToNot(HaveOccurred())
			Expect(s.Registers[RegB]).To(Equal(uint64(0b1010)))
		})

		It("should not need an operand slot", func() {
			s.Registers = [3]uint64{0, 3, 1}
			running, err := run(uint8(OpXorC))

			Expect(err).ToNot(HaveOccurred())
			Expect(running).To(BeTrue())
			Expect(s.Registers[RegB]).To(Equal(uint64(2)))
			Expect(s.PC).To(Equal(2))
		})
	})

	Describe("EMIT", func() {
		It("should append the combo value masked to 3 bits", func() {
			s.Registers = [3]uint64{0, 0, 0}
			_, err := run(uint8(OpEmit), 2)

			Expect(err).ToNot(HaveOccurred())
			Expect(s.Output).To(Equal([]uint8{2}))
		})

		It("should mask register values", func() {
			s.Registers = [3]uint64{0, 14, 0}
			_, err := run(uint8(OpEmit), 5)

			Expect(err).ToNot(HaveOccurred())
			Expect(s.Output).To(Equal([]uint8{6}))
		})
	})

	Describe("decode faults", func() {
		It("should reject combo operand 7 for every combo instruction", func() {
			for _, op := range []Opcode{OpShrA, OpMovB, OpEmit, OpShrB, OpShrC} {
				s = &machineState{}
				running, err := run(uint8(op), 7)

				Expect(err).To(MatchError(ErrReservedOperand))
				Expect(running).To(BeFalse())
			}
		})

		It("should reject a missing operand", func() {
			running, err := run(uint8(OpEmit))

			Expect(err).To(MatchError(ErrMissingOperand))
			Expect(running).To(BeFalse())
		})

		It("should reject an operand above 7", func() {
			running, err := run(uint8(OpXorI), 9)

			Expect(err).To(MatchError(ErrOperandRange))
			Expect(running).To(BeFalse())
		})

		It("should reject an opcode above 7", func() {
			running, err := run(9, 0)

			Expect(err).To(MatchError(ErrUnknownOpcode))
			Expect(running).To(BeFalse())
		})
	})

	Describe("halting", func() {
		It("should halt on an empty program", func() {
			running, err := run()

			Expect(err).ToNot(HaveOccurred())
			Expect(running).To(BeFalse())
		})

		It("should halt once the pointer passes the program", func() {
			running, err := run(uint8(OpXorI), 1)
			Expect(running).To(BeTrue())
			Expect(err).ToNot(HaveOccurred())

			running, err = emu.Tick(s)
			Expect(running).To(BeFalse())
			Expect(err).ToNot(HaveOccurred())
		})
	})
})
