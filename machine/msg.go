package machine

import "github.com/sarchlab/akita/v4/sim"

// DigitMsg carries one emitted 3-bit value from a core to its collector.
type DigitMsg struct {
	sim.MsgMeta

	Digit uint8
	Seq   int // position in the output stream, starting at 0
}

// Meta returns the meta data of the msg.
func (m *DigitMsg) Meta() *sim.MsgMeta {
	return &m.MsgMeta
}

// Clone duplicates the msg with a fresh ID.
func (m *DigitMsg) Clone() sim.Msg {
	clone := *m
	clone.ID = sim.GetIDGenerator().Generate()
	return &clone
}

// DigitMsgBuilder is a factory for DigitMsg.
type DigitMsgBuilder struct {
	src, dst sim.RemotePort
	digit    uint8
	seq      int
}

// WithSrc sets the source port of the msg.
func (b DigitMsgBuilder) WithSrc(src sim.RemotePort) DigitMsgBuilder {
	b.src = src
	return b
}

// WithDst sets the destination port of the msg.
func (b DigitMsgBuilder) WithDst(dst sim.RemotePort) DigitMsgBuilder {
	b.dst = dst
	return b
}

// WithDigit sets the emitted value.
func (b DigitMsgBuilder) WithDigit(digit uint8) DigitMsgBuilder {
	b.digit = digit
	return b
}

// WithSeq sets the position of the value in the output stream.
func (b DigitMsgBuilder) WithSeq(seq int) DigitMsgBuilder {
	b.seq = seq
	return b
}

// Build creates a DigitMsg.
func (b DigitMsgBuilder) Build() *DigitMsg {
	return &DigitMsg{
		MsgMeta: sim.MsgMeta{
			ID:  sim.GetIDGenerator().Generate(),
			Src: b.src,
			Dst: b.dst,
		},
		Digit: b.digit,
		Seq:   b.seq,
	}
}
