package runner

import (
	"fmt"
	"strconv"
	"strings"

	"hacktoolchain.dev/hack/pkg/cpu"
)

// FormatSpec is one column of a '.tst' output-list: "<loc>%<type><lpad>.<len>.<rpad>".
type FormatSpec struct {
	raw      string // the location text as written, e.g. "RAM[0]" - used verbatim in the header
	loc      location
	kind     byte // 'B', 'X', 'D' or 'S'
	lpad     int
	len      int
	rpad     int
}

// ParseFormatSpec parses a single output-list column, e.g. "RAM[0]%D2.6.2".
func ParseFormatSpec(spec string) (FormatSpec, error) {
	locText, rest, found := strings.Cut(spec, "%")
	if !found {
		return FormatSpec{}, fmt.Errorf("tst: malformed format spec %q: missing '%%'", spec)
	}
	if rest == "" {
		return FormatSpec{}, fmt.Errorf("tst: malformed format spec %q: missing type", spec)
	}

	loc, err := parseLocation(locText)
	if err != nil {
		return FormatSpec{}, fmt.Errorf("tst: format spec %q: %s", spec, err)
	}

	kind := rest[0]
	fields := strings.SplitN(rest[1:], ".", 3)
	if len(fields) != 3 {
		return FormatSpec{}, fmt.Errorf("tst: malformed format spec %q: expected <lpad>.<len>.<rpad>", spec)
	}

	lpad, err1 := strconv.Atoi(fields[0])
	length, err2 := strconv.Atoi(fields[1])
	rpad, err3 := strconv.Atoi(fields[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return FormatSpec{}, fmt.Errorf("tst: malformed padding in format spec %q", spec)
	}

	return FormatSpec{raw: locText, loc: loc, kind: kind, lpad: lpad, len: length, rpad: rpad}, nil
}

// value reads the cell's current Word off the CPU.
func (fs FormatSpec) value(c *cpu.Cpu) (uint16, error) {
	if fs.loc.isPC {
		return c.PC, nil
	}
	if fs.loc.ramAt < 0 || fs.loc.ramAt >= len(c.RAM) {
		return 0, fmt.Errorf("tst: RAM[%d] is out of bounds", fs.loc.ramAt)
	}
	return c.RAM[fs.loc.ramAt], nil
}

// render produces the unpadded body of the cell: the location text for a
// header line, or the radix-converted value for a data line.
func (fs FormatSpec) render(c *cpu.Cpu, isHeader bool) (string, error) {
	if isHeader {
		return fs.raw, nil
	}

	raw, err := fs.value(c)
	if err != nil {
		return "", err
	}

	switch fs.kind {
	case 'B':
		return fmt.Sprintf("%b", raw), nil
	case 'X':
		return fmt.Sprintf("%X", raw), nil
	case 'D':
		return strconv.FormatInt(int64(int16(raw)), 10), nil
	case 'S':
		return "", fmt.Errorf("tst: string format (%%S) is not implemented")
	default:
		return "", fmt.Errorf("tst: unknown format type %q", fs.kind)
	}
}

// writeCell appends one padded, '|'-delimited cell to 'out'.
func (fs FormatSpec) writeCell(out *strings.Builder, c *cpu.Cpu, isHeader bool) error {
	body, err := fs.render(c, isHeader)
	if err != nil {
		return err
	}

	maxLen := fs.lpad + fs.len + fs.rpad
	bodyLen := len(body)

	out.WriteByte('|')

	// The reference formatter applies lpad first, then rpad, then
	// truncates silently on headers - only a header is allowed to not
	// fit, since its text is cosmetic.
	lpad := fs.lpad + (fs.len - bodyLen)
	if lpad > 0 {
		out.WriteString(strings.Repeat(" ", lpad))
	}

	rpad := fs.rpad
	switch {
	case bodyLen > maxLen:
		if !isHeader {
			return fmt.Errorf("tst: value %q could not fit in the specified formatting: %q", body, fs.raw)
		}
		body = body[:maxLen]
		rpad = 0
	case bodyLen+fs.rpad > maxLen:
		rpad = maxLen - bodyLen
	}

	out.WriteString(body)
	if rpad > 0 {
		out.WriteString(strings.Repeat(" ", rpad))
	}
	return nil
}
