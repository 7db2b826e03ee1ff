// Package wire implements the binary wire format for nfabc bytecode
// described in spec.md §6: a sequence of fixed-size instructions, each an
// opcode tag plus a payload union. It's the format an out-of-process
// compiler (or a serialized cache of one) would use to hand a program to
// this interpreter; nfabc itself only ever consumes an in-memory
// []Instruction and has no wire format of its own to speak of.
package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/coregx/nfabc"
	"github.com/coregx/nfabc/internal/conv"
)

// recordSize is the size in bytes of one encoded instruction: a 1-byte
// opcode tag, 3 bytes of padding, a 2-byte Min, a 2-byte Max, and a 4-byte
// Target.
const recordSize = 12

var order = binary.LittleEndian

// Encode serializes prog as a 4-byte little-endian instruction count
// followed by one recordSize-byte record per instruction. Min, Max and
// Target are written as they are for every opcode, including fields that
// don't apply to it (e.g. Min/Max on a Jmp); the nfabc constructors leave
// those fields zero.
func Encode(prog []nfabc.Instruction) []byte {
	buf := make([]byte, 4+len(prog)*recordSize)
	order.PutUint32(buf[0:4], conv.IntToUint32(len(prog)))

	for i, in := range prog {
		rec := buf[4+i*recordSize : 4+(i+1)*recordSize]
		rec[0] = byte(in.Op)
		order.PutUint16(rec[4:6], in.Min)
		order.PutUint16(rec[6:8], in.Max)
		order.PutUint32(rec[8:12], uint32(in.Target))
	}
	return buf
}

// Decode parses the format Encode produces. It reports an error if buf is
// truncated or names an opcode tag this package doesn't know about; it does
// not check well-formedness beyond that (see the asm package's Validate).
func Decode(buf []byte) ([]nfabc.Instruction, error) {
	if len(buf) < 4 {
		return nil, fmt.Errorf("wire: truncated header: have %d bytes, want at least 4", len(buf))
	}
	count := order.Uint32(buf[0:4])
	want := 4 + int(count)*recordSize
	if len(buf) < want {
		return nil, fmt.Errorf("wire: truncated body: have %d bytes, want %d", len(buf), want)
	}

	prog := make([]nfabc.Instruction, count)
	for i := range prog {
		rec := buf[4+i*recordSize : 4+(i+1)*recordSize]
		op := nfabc.Opcode(rec[0])
		switch op {
		case nfabc.OpConsumeRange, nfabc.OpFork, nfabc.OpJmp, nfabc.OpAccept:
		default:
			return nil, fmt.Errorf("wire: instruction %d: unknown opcode tag %d", i, rec[0])
		}
		prog[i] = nfabc.Instruction{
			Op:     op,
			Min:    order.Uint16(rec[4:6]),
			Max:    order.Uint16(rec[6:8]),
			Target: int32(order.Uint32(rec[8:12])),
		}
	}
	return prog, nil
}
