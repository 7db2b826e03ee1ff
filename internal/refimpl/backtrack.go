// Package refimpl is a priority-aware backtracking reference matcher over
// the nfabc instruction set, used only by tests to check the breadth-first
// interpreter against ground truth (spec.md's testable property 5:
// equivalence with a backtracking reference). It is never used on any
// production path and makes no attempt at nfabc's linear-time guarantee.
package refimpl

import "github.com/coregx/nfabc"

// Backtrack finds the leftmost, highest-priority match a straightforward
// recursive-descent backtracking VM would find for bytecode against input,
// starting the search no earlier than startIndex. At each Fork it tries the
// fall-through branch (higher priority) before the fork target (lower
// priority) and returns the first Accept reached, exactly the semantics
// nfabc.FindMatches8 is designed to reproduce without ever backtracking.
func Backtrack(bytecode []nfabc.Instruction, input []byte, startIndex int) (nfabc.MatchRange, bool) {
	for start := startIndex; start <= len(input); start++ {
		if end, ok := run(bytecode, input, 0, start, map[int64]bool{}); ok {
			return nfabc.MatchRange{Begin: start, End: end}, true
		}
	}
	return nfabc.MatchRange{}, false
}

// run walks bytecode from pc with the input cursor at pos. visited guards
// against a pure Fork/Jmp cycle recursing forever at a fixed pos — the same
// cycle nfabc's PC-visitation filter is built to terminate at runtime.
func run(bytecode []nfabc.Instruction, input []byte, pc int32, pos int, visited map[int64]bool) (int, bool) {
	key := int64(pc)<<32 | int64(pos)
	if visited[key] {
		return 0, false
	}
	visited[key] = true
	defer delete(visited, key)

	in := bytecode[pc]
	switch in.Op {
	case nfabc.OpAccept:
		return pos, true

	case nfabc.OpJmp:
		return run(bytecode, input, in.Target, pos, visited)

	case nfabc.OpFork:
		// Fall-through is higher priority than the fork target.
		if end, ok := run(bytecode, input, pc+1, pos, visited); ok {
			return end, true
		}
		return run(bytecode, input, in.Target, pos, visited)

	case nfabc.OpConsumeRange:
		if pos >= len(input) {
			return 0, false
		}
		c := uint16(input[pos])
		if c >= in.Min && c <= in.Max {
			return run(bytecode, input, pc+1, pos+1, visited)
		}
		return 0, false

	default:
		return 0, false
	}
}
