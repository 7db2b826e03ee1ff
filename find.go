package nfabc

// FindMatches8 finds up to len(out) non-overlapping matches in an 8-bit
// input, searching from startIndex, and writes them into out in increasing
// order. It returns the number of matches written.
//
// bytecode must be non-empty and well-formed: every Fork/Jmp Target must be
// a valid index into bytecode, and every reachable control path must
// eventually reach ConsumeRange or Accept. Malformed bytecode is a contract
// violation (see the asm package's Validate for a pre-flight check) and
// triggers a panic rather than an error return, matching the "no I/O-layer
// failures" design of the interpreter: a regex over a finite input either
// matches or it doesn't, and there is no third outcome to report through
// the return value. The exception is a cycle made only of Fork/Jmp
// instructions: the PC-visitation filter ends it without a panic.
func FindMatches8(bytecode []Instruction, input []byte, startIndex int, out []MatchRange) int {
	return newInterpreter(bytecode, input, nil).findMatches(startIndex, out)
}

// FindMatches16 is FindMatches8 for 16-bit input code units.
func FindMatches16(bytecode []Instruction, input []uint16, startIndex int, out []MatchRange) int {
	return newInterpreter(bytecode, input, nil).findMatches(startIndex, out)
}

// FindMatches8WithHooks is FindMatches8, additionally reporting scheduling
// decisions through hooks as the search runs. hooks may be nil. Intended for
// debugging and the trace package; it has no effect on which matches are
// returned.
func FindMatches8WithHooks(bytecode []Instruction, input []byte, startIndex int, out []MatchRange, hooks *Hooks) int {
	return newInterpreter(bytecode, input, hooks).findMatches(startIndex, out)
}

// FindMatches16WithHooks is FindMatches16 with the same hook support as
// FindMatches8WithHooks.
func FindMatches16WithHooks(bytecode []Instruction, input []uint16, startIndex int, out []MatchRange, hooks *Hooks) int {
	return newInterpreter(bytecode, input, hooks).findMatches(startIndex, out)
}
