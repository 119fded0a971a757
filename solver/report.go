package solver

import (
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/octovm/machine"
)

// Report bundles the outcome of one inversion for printing.
type Report struct {
	Program machine.Program
	Target  []uint8
	Result  Result
	Err     error
}

// GenerateReport inverts the program against its own code and collects the
// outcome.
func GenerateReport(program machine.Program) Report {
	s := NewSolver(program)
	res, err := s.Solve()

	return Report{
		Program: program,
		Target:  []uint8(program),
		Result:  res,
		Err:     err,
	}
}

// WriteReport renders the report.
func (r Report) WriteReport(w io.Writer) {
	sep := strings.Repeat("=", 60)

	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, "PROGRAM INVERSION REPORT")
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "Program:      %s\n", r.Program)
	fmt.Fprintf(w, "Target:       %s\n", machine.FormatOutput(r.Target))
	fmt.Fprintf(w, "Nodes:        %d\n", r.Result.Nodes)
	fmt.Fprintf(w, "Evaluations:  %d\n", r.Result.Evaluations)
	fmt.Fprintf(w, "Full matches: %d\n", r.Result.Hits)

	switch {
	case r.Err != nil:
		fmt.Fprintf(w, "Outcome:      FAILED: %v\n", r.Err)
	case !r.Result.Found:
		fmt.Fprintln(w, "Outcome:      no solution found")
	default:
		fmt.Fprintf(w, "Outcome:      A = %d\n", r.Result.A)
	}

	fmt.Fprintln(w, sep)
}
