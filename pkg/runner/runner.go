// Package runner drives a ".tst" test script (parsed by pkg/tst) against a
// pkg/cpu.Cpu: loading programs, stepping the clock, writing formatted
// output lines and comparing them against a golden ".cmp" transcript.
package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hacktoolchain.dev/hack/pkg/asm"
	"hacktoolchain.dev/hack/pkg/cpu"
	"hacktoolchain.dev/hack/pkg/memory"
	"hacktoolchain.dev/hack/pkg/tst"
)

// Runner executes a parsed test script against a single Cpu instance. A
// fresh Runner starts with an empty, fully zero-padded ROM loaded; commands
// that run before any 'load' execute against that empty ROM.
type Runner struct {
	scriptDir string

	cpu *cpu.Cpu

	outputPath string
	comparison string
	formats    []FormatSpec
	output     strings.Builder
}

// NewRunner returns a Runner rooted at scriptPath's directory, so that every
// filename a script command names (load/output-file/compare-to) resolves
// relative to the script itself rather than the process's working directory.
func NewRunner(scriptPath string) (*Runner, error) {
	empty, err := memory.LoadROM("")
	if err != nil {
		return nil, err
	}
	return &Runner{
		scriptDir: filepath.Dir(scriptPath),
		cpu:       cpu.New(empty),
	}, nil
}

// Run executes every command in order, flushing accumulated output to the
// configured output file (if any) even when a command fails partway through,
// exactly as the reference runner does.
func (r *Runner) Run(commands []tst.Command) error {
	for _, cmd := range commands {
		if err := r.step(cmd); err != nil {
			_ = r.flush()
			return err
		}
	}
	return r.flush()
}

func (r *Runner) step(cmd tst.Command) error {
	switch cmd.Kind {
	case tst.Repeat:
		for i := 0; i < cmd.Count; i++ {
			for _, inner := range cmd.Body {
				if err := r.step(inner); err != nil {
					return err
				}
			}
		}
		return nil

	case tst.OutputFile:
		r.outputPath = filepath.Join(r.scriptDir, cmd.Filename)
		return nil

	case tst.OutputList:
		return r.setFormatting(cmd.Formats)

	case tst.TickTock:
		return r.cpu.Step()

	case tst.Output:
		return r.checkOutputLine()

	case tst.Load:
		return r.load(cmd.Filename)

	case tst.CompareTo:
		return r.compareWith(cmd.Filename)

	case tst.Set:
		return r.set(cmd.Location, cmd.Value)

	default:
		return fmt.Errorf("tst: unhandled command kind %v", cmd.Kind)
	}
}

func (r *Runner) compareWith(filename string) error {
	path := filepath.Join(r.scriptDir, filename)
	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("tst: reading comparison file %q: %w", path, err)
	}
	r.comparison = string(contents)
	return nil
}

// load replaces the Cpu with a fresh one running 'filename', assembling it
// first if it is source rather than already-binary.
func (r *Runner) load(filename string) error {
	path := filepath.Join(r.scriptDir, filename)
	contents, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("tst: reading program %q: %w", path, err)
	}

	var rom memory.ROM
	switch {
	case strings.HasSuffix(filename, ".asm"):
		binary, err := asm.Assemble(string(contents))
		if err != nil {
			return fmt.Errorf("tst: assembling %q: %w", filename, err)
		}
		rom, err = memory.LoadROM(binary)
		if err != nil {
			return err
		}
	case strings.HasSuffix(filename, ".hack"):
		rom, err = memory.LoadROM(string(contents))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("tst: unsupported file type: %s", filename)
	}

	r.cpu = cpu.New(rom)
	return nil
}

func (r *Runner) set(dest string, val int16) error {
	loc, err := parseLocation(dest)
	if err != nil {
		return err
	}
	if loc.isPC {
		r.cpu.PC = uint16(val)
		return nil
	}
	if loc.ramAt < 0 || loc.ramAt >= len(r.cpu.RAM) {
		return fmt.Errorf("tst: RAM[%d] is out of bounds", loc.ramAt)
	}
	r.cpu.RAM[loc.ramAt] = uint16(val)
	return nil
}

func (r *Runner) flush() error {
	if r.outputPath == "" {
		return fmt.Errorf("tst: no output file specified")
	}
	return os.WriteFile(r.outputPath, []byte(r.output.String()), 0644)
}

func (r *Runner) setFormatting(raw []string) error {
	formats := make([]FormatSpec, len(raw))
	for i, spec := range raw {
		parsed, err := ParseFormatSpec(spec)
		if err != nil {
			return err
		}
		formats[i] = parsed
	}
	r.formats = formats
	return r.writeOutputLine(true)
}

// checkOutputLine appends a data line, then re-checks every accumulated
// output line against the comparison transcript cell by cell. This mirrors
// the reference runner's non-incremental re-check: cheap at the script
// sizes test scripts use, and it means a failure always reports the exact
// line and cells that differ.
func (r *Runner) checkOutputLine() error {
	if err := r.writeOutputLine(false); err != nil {
		return err
	}

	actual := strings.Split(r.output.String(), "\n")
	expected := strings.Split(r.comparison, "\n")

	for lineno := 0; lineno < len(actual) && lineno < len(expected); lineno++ {
		a, b := actual[lineno], expected[lineno]
		aCells, bCells := strings.Split(a, "|"), strings.Split(b, "|")
		for i := 0; i < len(aCells) && i < len(bCells); i++ {
			if strings.TrimSpace(aCells[i]) != strings.TrimSpace(bCells[i]) {
				return fmt.Errorf("comparison failed at line %d:\ngot: %q\nwant: %q", lineno, a, b)
			}
		}
	}
	return nil
}

func (r *Runner) writeOutputLine(isHeader bool) error {
	for _, format := range r.formats {
		if err := format.writeCell(&r.output, r.cpu, isHeader); err != nil {
			return err
		}
	}
	r.output.WriteString("|\n")
	return nil
}
