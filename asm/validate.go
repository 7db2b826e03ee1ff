package asm

import "github.com/coregx/nfabc"

// Validate checks the well-formedness contract nfabc's interpreter assumes
// of its bytecode (spec: "the bytecode is externally produced and assumed
// well-formed"): the program is non-empty, and every Fork/Jmp target is a
// valid index into it. It does not, and cannot in general, prove that every
// control path reaches ConsumeRange or Accept — the interpreter's
// PC-visitation filter is precisely what makes a bytecode cycle of pure
// Fork/Jmp instructions terminate at runtime instead of looping forever, so
// such a cycle is tolerated rather than rejected here.
func Validate(prog []nfabc.Instruction) error {
	if len(prog) == 0 {
		return ErrEmptyProgram
	}

	for pc, in := range prog {
		switch in.Op {
		case nfabc.OpFork, nfabc.OpJmp:
			if in.Target < 0 || int(in.Target) >= len(prog) {
				return &ValidationError{PC: int32(pc), Err: ErrTargetOutOfRange}
			}
		case nfabc.OpConsumeRange, nfabc.OpAccept:
			// No target payload to check.
		}
	}
	return nil
}
