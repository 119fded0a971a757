package main

import (
	_ "embed"
	"fmt"
	"log"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/octovm/api"
	"github.com/sarchlab/octovm/machine"
)

//go:embed example.txt
var input string

func main() {
	registers, program, err := machine.ParseInput(input)
	if err != nil {
		log.Fatalf("parsing input: %v", err)
	}

	engine := sim.NewSerialEngine()

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		Build("Driver")

	core := machine.NewBuilder().
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithProgram(program).
		WithRegisters(registers[0], registers[1], registers[2]).
		Build("Core")

	driver.RegisterCore(core)

	if err := driver.Run(); err != nil {
		log.Fatalf("running program: %v", err)
	}

	fmt.Printf("Output: %s\n", driver.OutputString())
	machine.DumpState(os.Stdout, core.Machine())

	atexit.Exit(0)
}
