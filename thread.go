package nfabc

// thread is the state of a single NFA simulation thread: a program counter
// and the input index at which this thread's match attempt began. Threads
// are values — forking one copies matchBegin into the sibling.
//
// Not to be confused with an OS thread.
type thread struct {
	pc         int32
	matchBegin int32
}
