package runner

import (
	"fmt"
	"strconv"
	"strings"
)

// location identifies one addressable cell a test script can read or
// write: either the program counter or a RAM cell.
type location struct {
	isPC  bool
	ramAt int
}

// parseLocation tokenizes a destination string on whitespace and square
// brackets, so "RAM[3]", "ram[3]" and "RAM [ 3 ]" are all accepted, exactly
// as 'PC'/'pc' are.
func parseLocation(raw string) (location, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '[' || r == ']'
	})
	if len(fields) == 0 {
		return location{}, fmt.Errorf("tst: empty location")
	}

	switch strings.ToUpper(fields[0]) {
	case "PC":
		return location{isPC: true}, nil
	case "RAM":
		if len(fields) < 2 {
			return location{}, fmt.Errorf("tst: missing index for RAM[?]")
		}
		idx, err := strconv.Atoi(fields[1])
		if err != nil {
			return location{}, fmt.Errorf("tst: invalid RAM index %q: %s", fields[1], err)
		}
		return location{ramAt: idx}, nil
	default:
		return location{}, fmt.Errorf("tst: unhandled location: %q", raw)
	}
}
