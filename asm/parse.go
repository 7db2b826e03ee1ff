package asm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coregx/nfabc"
)

// Parse assembles a tiny textual bytecode format into an nfabc.Instruction
// program. Each non-blank, non-comment line is:
//
//	[label:] opcode [operands...]
//
// Comments start with ';' or '#' and run to the end of the line. A label is
// an identifier immediately followed by ':' and names the program counter
// of the instruction that follows it on the same or a later line. Opcodes:
//
//	ConsumeRange <lo> <hi>   consume one code unit in [lo, hi]
//	ConsumeByte <c>          consume exactly the code unit c
//	Fork <label>             spawn a lower-priority sibling at <label>
//	Jmp <label>              jump to <label>
//	Accept                   record a match
//
// Operands naming a code unit accept either a single-quoted character
// literal ('a') or a decimal/0x-prefixed hexadecimal integer. Comments are
// stripped and operands split on whitespace before literals are read, so
// ';', '#' and a space cannot be written as plain character literals; an
// escaped literal ('\x3b') or an integer works for them.
//
// Example, assembling `a*`:
//
//	L0: Fork L2
//	    ConsumeRange 'a' 'a'
//	    Jmp L0
//	L2: Accept
func Parse(source string) ([]nfabc.Instruction, error) {
	lines := strings.Split(source, "\n")

	type pending struct {
		lineNo int
		op     string
		args   []string
	}
	labels := map[string]int32{}
	var instrs []pending

	for lineNo, raw := range lines {
		line := stripComment(raw)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if idx := strings.Index(line, ":"); idx >= 0 && isLabelPrefix(line[:idx]) {
			name := line[:idx]
			if _, dup := labels[name]; dup {
				return nil, &ParseError{Line: lineNo + 1, Text: raw, Err: fmt.Errorf("duplicate label %q", name)}
			}
			labels[name] = int32(len(instrs))
			line = strings.TrimSpace(line[idx+1:])
			if line == "" {
				continue
			}
		}

		fields := strings.Fields(line)
		instrs = append(instrs, pending{lineNo: lineNo + 1, op: fields[0], args: fields[1:]})
	}

	if len(instrs) == 0 {
		return nil, ErrEmptyProgram
	}

	b := NewBuilder()
	for _, in := range instrs {
		switch strings.ToLower(in.op) {
		case "consumerange":
			if len(in.args) != 2 {
				return nil, &ParseError{Line: in.lineNo, Text: in.op, Err: fmt.Errorf("ConsumeRange wants 2 operands, got %d", len(in.args))}
			}
			lo, err := parseUnit(in.args[0])
			if err != nil {
				return nil, &ParseError{Line: in.lineNo, Text: in.op, Err: err}
			}
			hi, err := parseUnit(in.args[1])
			if err != nil {
				return nil, &ParseError{Line: in.lineNo, Text: in.op, Err: err}
			}
			b.ConsumeRange(lo, hi)

		case "consumebyte":
			if len(in.args) != 1 {
				return nil, &ParseError{Line: in.lineNo, Text: in.op, Err: fmt.Errorf("ConsumeByte wants 1 operand, got %d", len(in.args))}
			}
			c, err := parseUnit(in.args[0])
			if err != nil {
				return nil, &ParseError{Line: in.lineNo, Text: in.op, Err: err}
			}
			b.ConsumeByte(c)

		case "fork":
			target, err := resolveLabel(in.args, labels)
			if err != nil {
				return nil, &ParseError{Line: in.lineNo, Text: in.op, Err: err}
			}
			b.Fork(target)

		case "jmp":
			target, err := resolveLabel(in.args, labels)
			if err != nil {
				return nil, &ParseError{Line: in.lineNo, Text: in.op, Err: err}
			}
			b.Jmp(target)

		case "accept":
			if len(in.args) != 0 {
				return nil, &ParseError{Line: in.lineNo, Text: in.op, Err: fmt.Errorf("Accept takes no operands")}
			}
			b.Accept()

		default:
			return nil, &ParseError{Line: in.lineNo, Text: in.op, Err: fmt.Errorf("unknown opcode %q", in.op)}
		}
	}

	prog := b.Program()
	if err := Validate(prog); err != nil {
		return nil, err
	}
	return prog, nil
}

func resolveLabel(args []string, labels map[string]int32) (int32, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("wants 1 label operand, got %d", len(args))
	}
	target, ok := labels[args[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnresolvedLabel, args[0])
	}
	return target, nil
}

func parseUnit(s string) (uint16, error) {
	if len(s) >= 3 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r := s[1 : len(s)-1]
		if len(r) == 1 {
			return uint16(r[0]), nil
		}
		unquoted, err := strconv.Unquote("\"" + r + "\"")
		if err != nil || len([]rune(unquoted)) != 1 {
			return 0, fmt.Errorf("invalid character literal %q", s)
		}
		return uint16([]rune(unquoted)[0]), nil
	}
	n, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid code unit %q: %w", s, err)
	}
	return uint16(n), nil
}

func stripComment(line string) string {
	if i := strings.IndexAny(line, ";#"); i >= 0 {
		return line[:i]
	}
	return line
}

func isLabelPrefix(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		isDigit := r >= '0' && r <= '9'
		if i == 0 && !isAlpha {
			return false
		}
		if i > 0 && !isAlpha && !isDigit {
			return false
		}
	}
	return true
}
