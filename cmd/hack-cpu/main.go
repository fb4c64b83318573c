package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/teris-io/cli"

	"hacktoolchain.dev/hack/pkg/asm"
	"hacktoolchain.dev/hack/pkg/cpu"
	"hacktoolchain.dev/hack/pkg/memory"
)

var Description = strings.ReplaceAll(`
hack-cpu loads a compiled (.hack) or source (.asm) program and runs it against
the Hack CPU core for a bounded number of cycles, then prints the final
register and RAM state. Since most Hack programs end in an infinite loop by
design, a step budget rather than a halt condition is what ends execution.
`, "\n", " ")

const defaultSteps = 1000

var HackCpu = cli.New(Description).
	WithArg(cli.NewArg("program", "The program (.hack or .asm) to execute")).
	WithOption(cli.NewOption("steps", "Maximum number of CPU cycles to execute").WithType(cli.TypeString)).
	WithAction(Handler)

func Handler(args []string, options map[string]string) int {
	path := args[0]
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("ERROR: Unable to open program: %s\n", err)
		return -1
	}

	var binary string
	switch {
	case strings.HasSuffix(path, ".asm"):
		binary, err = asm.Assemble(string(source))
		if err != nil {
			fmt.Printf("ERROR: Unable to assemble %q: %s\n", path, err)
			return -1
		}
	case strings.HasSuffix(path, ".hack"):
		binary = string(source)
	default:
		fmt.Printf("ERROR: Unsupported file type: %s\n", path)
		return -1
	}

	rom, err := memory.LoadROM(binary)
	if err != nil {
		fmt.Printf("ERROR: Unable to load ROM: %s\n", err)
		return -1
	}

	steps := defaultSteps
	if raw, ok := options["steps"]; ok && raw != "" {
		steps, err = strconv.Atoi(raw)
		if err != nil {
			fmt.Printf("ERROR: Invalid --steps value %q: %s\n", raw, err)
			return -1
		}
	}

	c := cpu.New(rom)
	for i := 0; i < steps; i++ {
		if err := c.Step(); err != nil {
			fmt.Printf("ERROR: %s\n", err)
			return -1
		}
	}

	fmt.Printf("PC=%d A=%d D=%d\n", c.PC, c.A, c.D)
	fmt.Printf("RAM[0..15] = %v\n", c.RAM[:16])
	return 0
}

func main() { os.Exit(HackCpu.Run(os.Args, os.Stdout)) }
