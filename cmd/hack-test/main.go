package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/teris-io/cli"

	"hacktoolchain.dev/hack/pkg/runner"
	"hacktoolchain.dev/hack/pkg/tst"
)

var Description = strings.ReplaceAll(`
hack-test drives a test script (.tst) against the Hack CPU core: loading
programs, stepping the clock, and comparing formatted output against a
golden transcript, exactly as the reference test tool does.
`, "\n", " ")

var HackTest = cli.New(Description).
	WithArg(cli.NewArg("script", "The test script (.tst) to run")).
	WithOption(cli.NewOption("r", "Run the script (accepted for parity with the reference tool; running is always implied)").
		WithType(cli.TypeBool)).
	WithAction(Handler)

func Handler(args []string, options map[string]string) int {
	path := args[0]
	if !strings.HasSuffix(path, ".tst") {
		fmt.Printf("ERROR: Unsupported file type: %s\n", path)
		return -1
	}

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("ERROR: Unable to open test script: %s\n", err)
		return -1
	}

	commands, err := tst.NewParser(string(source)).Parse()
	if err != nil {
		fmt.Printf("ERROR: Unable to parse %q: %s\n", path, err)
		return -1
	}

	r, err := runner.NewRunner(path)
	if err != nil {
		fmt.Printf("ERROR: Unable to initialize runner: %s\n", err)
		return -1
	}

	if err := r.Run(commands); err != nil {
		fmt.Printf("ERROR: Failure running %q:\n\t%s\n", path, err)
		return -1
	}

	fmt.Printf("%s: PASS\n", path)
	return 0
}

func main() { os.Exit(HackTest.Run(os.Args, os.Stdout)) }
