package main

import (
	_ "embed"
	"log"
	"os"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/octovm/machine"
	"github.com/sarchlab/octovm/solver"
)

//go:embed quine.txt
var input string

func main() {
	_, program, err := machine.ParseInput(input)
	if err != nil {
		log.Fatalf("parsing input: %v", err)
	}

	report := solver.GenerateReport(program)
	report.WriteReport(os.Stdout)

	if report.Err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
