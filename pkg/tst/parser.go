package tst

import (
	"fmt"
	"strconv"
	"strings"
)

// ----------------------------------------------------------------------------
// Parser

// Parser walks a test script as a cursor over the remaining, unconsumed
// text, splitting top-level commands on ',' or ';' and recursing into
// itself for the body of a 'repeat' block. It never runs the program it
// describes; that is pkg/runner's job.
type Parser struct {
	remaining string
}

// NewParser returns a Parser positioned at the start of 'script'.
func NewParser(script string) *Parser {
	return &Parser{remaining: script}
}

// Parse consumes the whole script (or the body handed to it by a 'repeat'
// block) and returns the resulting Commands in source order.
func (p *Parser) Parse() ([]Command, error) {
	var commands []Command

	for {
		p.remaining = strings.TrimLeft(p.remaining, " \t\r\n")
		if p.remaining == "" {
			return commands, nil
		}

		if strings.HasPrefix(p.remaining, "//") {
			p.skipLineComment()
			continue
		}

		if strings.HasPrefix(p.remaining, "repeat") {
			cmd, err := p.parseRepeat()
			if err != nil {
				return nil, err
			}
			commands = append(commands, cmd)
			continue
		}

		idx := strings.IndexAny(p.remaining, ",;")
		if idx == -1 {
			return nil, fmt.Errorf("tst: missing ',' or ';' to terminate command %q", p.remaining)
		}

		cmd, err := parseCommand(p.remaining[:idx])
		if err != nil {
			return nil, err
		}
		p.remaining = p.remaining[idx+1:]
		commands = append(commands, cmd)
	}
}

func (p *Parser) skipLineComment() {
	if idx := strings.IndexByte(p.remaining, '\n'); idx != -1 {
		p.remaining = p.remaining[idx+1:]
	} else {
		p.remaining = ""
	}
}

// parseRepeat handles 'repeat N { ... }'. Nested repeat is explicitly
// unsupported: the block ends at the NEXT '}', whatever it contains.
func (p *Parser) parseRepeat() (Command, error) {
	start := strings.IndexByte(p.remaining, '{')
	if start == -1 {
		return Command{}, fmt.Errorf("tst: missing '{' after 'repeat'")
	}

	countText := strings.TrimSpace(p.remaining[len("repeat"):start])
	count, err := strconv.Atoi(countText)
	if err != nil {
		return Command{}, fmt.Errorf("tst: failed to parse iteration count for 'repeat': %q: %s", countText, err)
	}

	end := strings.IndexByte(p.remaining, '}')
	if end == -1 {
		return Command{}, fmt.Errorf("tst: missing '}' after 'repeat'")
	}

	body, err := NewParser(p.remaining[start+1 : end]).Parse()
	if err != nil {
		return Command{}, err
	}

	// The block may itself be followed by a ',' or ';' terminator, as any
	// other top-level command is; consume it so it is not read as an empty
	// command.
	p.remaining = strings.TrimLeft(p.remaining[end+1:], " \t\r\n")
	if strings.HasPrefix(p.remaining, ",") || strings.HasPrefix(p.remaining, ";") {
		p.remaining = p.remaining[1:]
	}
	return Command{Kind: Repeat, Count: count, Body: body}, nil
}

// parseCommand tokenizes a single top-level command (everything up to its
// ',' or ';' terminator) by whitespace and dispatches on the first token.
func parseCommand(raw string) (Command, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\r' || r == '\n'
	})
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("tst: empty command")
	}

	switch fields[0] {
	case "load":
		filename, err := field(fields, 1, "filename for load")
		return Command{Kind: Load, Filename: filename}, err
	case "output-file":
		filename, err := field(fields, 1, "filename for output-file")
		return Command{Kind: OutputFile, Filename: filename}, err
	case "compare-to":
		filename, err := field(fields, 1, "filename for compare-to")
		return Command{Kind: CompareTo, Filename: filename}, err
	case "output-list":
		return Command{Kind: OutputList, Formats: fields[1:]}, nil
	case "set":
		location, err := field(fields, 1, "location for set")
		if err != nil {
			return Command{}, err
		}
		rawValue, err := field(fields, 2, "value for set")
		if err != nil {
			return Command{}, err
		}
		if len(fields) > 3 {
			// "set RAM [ 3 ] 5": the location spans every token but the last.
			location = strings.Join(fields[1:len(fields)-1], " ")
			rawValue = fields[len(fields)-1]
		}
		value, err := strconv.ParseInt(rawValue, 10, 16)
		if err != nil {
			return Command{}, fmt.Errorf("tst: invalid value for set %q: %s", rawValue, err)
		}
		return Command{Kind: Set, Location: location, Value: int16(value)}, nil
	case "ticktock":
		return Command{Kind: TickTock}, nil
	case "output":
		return Command{Kind: Output}, nil
	default:
		return Command{}, fmt.Errorf("tst: unexpected command: %q", fields[0])
	}
}

func field(fields []string, idx int, what string) (string, error) {
	if idx >= len(fields) {
		return "", fmt.Errorf("tst: expected %s", what)
	}
	return fields[idx], nil
}
