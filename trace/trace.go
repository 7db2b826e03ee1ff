// Package trace renders nfabc bytecode and, on demand, a step-by-step log
// of the scheduling decisions the interpreter makes while matching. It is a
// read-only debugging aid — nothing here sits on the hot path, and nfabc's
// core interpreter never depends on it.
package trace

import (
	"fmt"
	"strings"

	"github.com/coregx/nfabc"
)

// Disassemble renders prog as one instruction per line, prefixed with its
// program counter, e.g.:
//
//	0: Fork 2
//	1: ConsumeRange 'a'
//	2: Accept
func Disassemble(prog []nfabc.Instruction) string {
	var b strings.Builder
	for pc, in := range prog {
		fmt.Fprintf(&b, "%d: %s\n", pc, in)
	}
	return b.String()
}

// Event is one scheduling decision recorded while tracing a search.
type Event struct {
	Kind       string // "claim", "coalesce", "block", "accept"
	PC         int
	InputIndex int
	Match      nfabc.MatchRange
	Discarded  int
}

// String renders an Event the way a reader following the search would want
// to see it.
func (e Event) String() string {
	switch e.Kind {
	case "claim":
		return fmt.Sprintf("pos %d: pc %d claimed", e.InputIndex, e.PC)
	case "coalesce":
		return fmt.Sprintf("pos %d: pc %d already claimed, thread dropped", e.InputIndex, e.PC)
	case "block":
		return fmt.Sprintf("pos %d: pc %d blocked on input", e.InputIndex, e.PC)
	case "accept":
		return fmt.Sprintf("pos %d: accept [%d,%d), discarding %d lower-priority thread(s)",
			e.InputIndex, e.Match.Begin, e.Match.End, e.Discarded)
	default:
		return fmt.Sprintf("pos %d: %s", e.InputIndex, e.Kind)
	}
}

// Explain8 runs an 8-bit search exactly as FindMatches8 would, but also
// returns the sequence of scheduling Events observed, for debugging why a
// program matched — or didn't — the way it did.
func Explain8(bytecode []nfabc.Instruction, input []byte, startIndex int, out []nfabc.MatchRange) (int, []Event) {
	var events []Event
	hooks := &nfabc.Hooks{
		OnClaim:    func(pc, pos int) { events = append(events, Event{Kind: "claim", PC: pc, InputIndex: pos}) },
		OnCoalesce: func(pc, pos int) { events = append(events, Event{Kind: "coalesce", PC: pc, InputIndex: pos}) },
		OnBlock:    func(pc, pos int) { events = append(events, Event{Kind: "block", PC: pc, InputIndex: pos}) },
		OnAccept: func(match nfabc.MatchRange, discarded int) {
			events = append(events, Event{Kind: "accept", InputIndex: match.End, Match: match, Discarded: discarded})
		},
	}
	n := nfabc.FindMatches8WithHooks(bytecode, input, startIndex, out, hooks)
	return n, events
}
