package nfabc

// Hooks lets a caller observe scheduling decisions made during a search, for
// debugging and tracing (see the trace package). All fields are optional; a
// nil *Hooks, or a zero-value one, costs nothing beyond a nil check per
// event. No hook is ever required for correct operation — the interpreter
// core has no logging or tracing dependency of its own.
type Hooks struct {
	// OnClaim fires when a thread claims a program counter at the current
	// input index (i.e. it is the highest-priority thread to reach pc this
	// generation, per the PC-visitation filter).
	OnClaim func(pc, inputIndex int)

	// OnCoalesce fires when a thread is discarded because a higher-priority
	// thread already claimed the same program counter at the same input
	// index.
	OnCoalesce func(pc, inputIndex int)

	// OnAccept fires when a thread executes Accept, reporting the match it
	// produced and the number of lower-priority active threads discarded as
	// a result.
	OnAccept func(match MatchRange, discardedActive int)

	// OnBlock fires when a thread suspends at ConsumeRange, waiting for the
	// next input code unit.
	OnBlock func(pc, inputIndex int)
}

func (h *Hooks) claim(pc, inputIndex int) {
	if h != nil && h.OnClaim != nil {
		h.OnClaim(pc, inputIndex)
	}
}

func (h *Hooks) coalesce(pc, inputIndex int) {
	if h != nil && h.OnCoalesce != nil {
		h.OnCoalesce(pc, inputIndex)
	}
}

func (h *Hooks) accept(match MatchRange, discardedActive int) {
	if h != nil && h.OnAccept != nil {
		h.OnAccept(match, discardedActive)
	}
}

func (h *Hooks) block(pc, inputIndex int) {
	if h != nil && h.OnBlock != nil {
		h.OnBlock(pc, inputIndex)
	}
}
