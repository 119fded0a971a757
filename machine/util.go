package machine

import (
	"context"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

// LevelTrace is the level simulation events are logged at.
const LevelTrace slog.Level = slog.LevelInfo + 1

// Trace logs a simulation event.
func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// DumpState renders the register file, instruction pointer, and output
// stream of a machine as a table.
func DumpState(w io.Writer, m *Machine) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle("Machine State")

	regs := m.Registers()
	t.AppendHeader(table.Row{"A", "B", "C", "PC", "Halted", "Output"})
	t.AppendRow(table.Row{
		regs[RegA], regs[RegB], regs[RegC],
		m.PC(), m.Halted(), m.OutputString(),
	})

	t.Render()
}
