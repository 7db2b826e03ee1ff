// Package asm provides a hand-written assembler for nfabc bytecode.
//
// nfabc's interpreter deliberately consumes an externally produced
// instruction stream and never validates it at runtime beyond debug
// assertions (see the nfabc package doc). Builder is the low-level API a
// real regex compiler would target; Parse offers a small textual assembly
// syntax on top of it for tests, benchmarks, and the nfabcrun command line
// tool, none of which have a regex parser of their own to lower patterns
// from.
package asm

import "github.com/coregx/nfabc"

// Builder constructs an nfabc.Instruction program incrementally, returning
// the program counter of each instruction as it's appended so callers can
// wire up Fork/Jmp targets, including forward references patched in later
// with PatchTarget.
type Builder struct {
	prog []nfabc.Instruction
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Len returns the number of instructions appended so far; it is also the
// program counter the next appended instruction will receive.
func (b *Builder) Len() int32 {
	return int32(len(b.prog))
}

// ConsumeRange appends a ConsumeRange instruction and returns its PC.
func (b *Builder) ConsumeRange(min, max uint16) int32 {
	return b.push(nfabc.ConsumeRange(min, max))
}

// ConsumeByte appends a ConsumeRange instruction matching exactly one code
// unit and returns its PC.
func (b *Builder) ConsumeByte(c uint16) int32 {
	return b.push(nfabc.ConsumeByte(c))
}

// Fork appends a Fork instruction targeting target and returns its PC.
// Pass -1 (or any placeholder) and fix it up later with PatchTarget if
// target isn't known yet.
func (b *Builder) Fork(target int32) int32 {
	return b.push(nfabc.Fork(target))
}

// Jmp appends a Jmp instruction targeting target and returns its PC.
func (b *Builder) Jmp(target int32) int32 {
	return b.push(nfabc.Jmp(target))
}

// Accept appends an Accept instruction and returns its PC.
func (b *Builder) Accept() int32 {
	return b.push(nfabc.Accept())
}

func (b *Builder) push(in nfabc.Instruction) int32 {
	pc := b.Len()
	b.prog = append(b.prog, in)
	return pc
}

// PatchTarget rewrites the Target of the Fork or Jmp instruction at pc. It
// panics if pc is out of range or the instruction at pc isn't Fork or Jmp.
func (b *Builder) PatchTarget(pc, target int32) {
	if pc < 0 || int(pc) >= len(b.prog) {
		panic("asm: PatchTarget: pc out of range")
	}
	in := &b.prog[pc]
	if in.Op != nfabc.OpFork && in.Op != nfabc.OpJmp {
		panic("asm: PatchTarget: instruction at pc is not Fork or Jmp")
	}
	in.Target = target
}

// Program returns the assembled instruction stream. The returned slice
// aliases the Builder's internal storage; callers that keep using the
// Builder after calling Program should copy it first.
func (b *Builder) Program() []nfabc.Instruction {
	return b.prog
}
