package nfabc

// unit is the input code-unit width the interpreter is parameterized over.
// The two intended instantiations are byte (8-bit input) and uint16 (16-bit
// input); see FindMatches8 and FindMatches16.
type unit interface {
	~uint8 | ~uint16
}

// interpreter executes bytecode against an input sequence in breadth-first,
// backtracking-free fashion. It simulates a non-deterministic finite
// automaton (NFA) in time linear in the length of the input, while matching
// the leftmost, highest-priority result a priority-ordered backtracking VM
// would have produced.
//
// To follow the semantics of a backtracking VM, the interpreter has to be
// careful about whether it stops as soon as some thread executes Accept.
// Consider /abc|..|[a-c]{10,}/ against "abcccccccccccccc": all three
// alternatives match, but a backtracking engine reports "abc" because it
// explores the first alternative before the others. Run breadth-first, the
// second alternative would ACCEPT after two characters — before the first
// alternative's three. So an ACCEPT only ever retires threads of strictly
// lower priority than the accepting thread; any thread of higher priority
// still gets to run to completion, and its match (if any) wins instead.
type interpreter[U unit] struct {
	bytecode []Instruction
	input    []U
	hooks    *Hooks

	inputIndex int

	// lastSeen[pc] records the input index at which some thread was most
	// recently admitted at pc. Reset to -1 at the start of every
	// single-match search. This is the PC-visitation filter: at most one
	// thread per (pc, inputIndex) pair is ever run, and since active
	// threads run highest-priority-first, the one that claims a pc is
	// always the highest-priority thread that could reach it.
	lastSeen []int32

	// active is sorted low-to-high priority; the run phase pops from the
	// back (highest priority first).
	active []thread
	// blocked is sorted high-to-low priority; the flush phase walks it
	// back-to-front so admitted threads land on active in low-to-high
	// order.
	blocked []thread

	bestMatch    MatchRange
	hasBestMatch bool
}

func newInterpreter[U unit](bytecode []Instruction, input []U, hooks *Hooks) *interpreter[U] {
	assert(len(bytecode) > 0, "empty bytecode")

	lastSeen := make([]int32, len(bytecode))
	for i := range lastSeen {
		lastSeen[i] = -1
	}

	return &interpreter[U]{
		bytecode: bytecode,
		input:    input,
		hooks:    hooks,
		lastSeen: lastSeen,
	}
}

// findMatches is the public driver (spec §4.1): it repeatedly runs a
// single-match search, writes each result into out, and advances the
// search's start index to that match's end. It stops when a search finds no
// match or out is full, and returns the number of matches written.
func (p *interpreter[U]) findMatches(startIndex int, out []MatchRange) int {
	assert(startIndex >= 0 && startIndex <= len(p.input), "start index out of range")

	p.inputIndex = startIndex

	count := 0
	for count < len(out) {
		match, ok := p.findNextMatch()
		if !ok {
			break
		}
		out[count] = match
		count++
		p.inputIndex = match.End
	}
	return count
}

// findNextMatch runs a single-match search starting at p.inputIndex (spec
// §4.2). Both thread lists must be empty on entry and are empty again on
// return.
func (p *interpreter[U]) findNextMatch() (MatchRange, bool) {
	assert(len(p.active) == 0, "active threads not drained between searches")
	assert(len(p.blocked) == 0, "blocked threads not drained between searches")

	for i := range p.lastSeen {
		p.lastSeen[i] = -1
	}

	p.active = append(p.active, thread{pc: 0, matchBegin: int32(p.inputIndex)})
	p.runActiveThreads()

	for p.inputIndex != len(p.input) && !(p.hasBestMatch && len(p.blocked) == 0) {
		c := p.input[p.inputIndex]
		p.inputIndex++

		if !p.hasBestMatch {
			p.active = append(p.active, thread{pc: 0, matchBegin: int32(p.inputIndex)})
		}

		p.flushBlockedThreads(c)
		p.runActiveThreads()
	}

	result, ok := p.bestMatch, p.hasBestMatch
	p.hasBestMatch = false
	p.blocked = p.blocked[:0]
	p.active = p.active[:0]
	return result, ok
}

// runActiveThreads drains active by repeatedly popping the highest-priority
// thread (the back of the slice) and running it. active is empty when this
// returns.
func (p *interpreter[U]) runActiveThreads() {
	for len(p.active) > 0 {
		n := len(p.active) - 1
		t := p.active[n]
		p.active = p.active[:n]
		p.runActiveThread(t)
	}
}

// runActiveThread steps t through non-consuming instructions until it
// blocks on ConsumeRange, executes Accept, or is coalesced away because a
// higher-priority thread already claimed its program counter this
// generation.
func (p *interpreter[U]) runActiveThread(t thread) {
	for {
		if p.lastSeen[t.pc] == int32(p.inputIndex) {
			p.hooks.coalesce(int(t.pc), p.inputIndex)
			return
		}
		p.lastSeen[t.pc] = int32(p.inputIndex)
		p.hooks.claim(int(t.pc), p.inputIndex)

		inst := p.bytecode[t.pc]
		switch inst.Op {
		case OpConsumeRange:
			p.hooks.block(int(t.pc), p.inputIndex)
			p.blocked = append(p.blocked, t)
			return

		case OpFork:
			fork := thread{pc: inst.Target, matchBegin: t.matchBegin}
			p.active = append(p.active, fork)
			t.pc++

		case OpJmp:
			t.pc = inst.Target

		case OpAccept:
			p.bestMatch = MatchRange{Begin: int(t.matchBegin), End: p.inputIndex}
			p.hasBestMatch = true
			p.hooks.accept(p.bestMatch, len(p.active))
			p.active = p.active[:0]
			return

		default:
			assert(false, "malformed instruction")
		}
	}
}

// flushBlockedThreads admits every blocked thread whose ConsumeRange
// accepts c back onto active, advancing its program counter by one, and
// drops the rest. blocked is walked from its low-priority end (the back,
// since blocked is stored high-to-low) to its high-priority end so that
// active ends up ordered low-to-high, as runActiveThreads requires.
func (p *interpreter[U]) flushBlockedThreads(c U) {
	for i := len(p.blocked); i > 0; i-- {
		t := p.blocked[i-1]
		inst := p.bytecode[t.pc]
		assert(inst.Op == OpConsumeRange, "blocked thread not parked on ConsumeRange")

		if uint16(c) >= inst.Min && uint16(c) <= inst.Max {
			t.pc++
			p.active = append(p.active, t)
		}
	}
	p.blocked = p.blocked[:0]
}
