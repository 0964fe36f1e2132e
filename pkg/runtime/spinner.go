package runtime

import (
	goruntime "runtime"
)

// Adaptive Spinning strategy.
// Active spin: use PAUSE instruction (low power, keeps CPU warm).
// Passive spin: yield to scheduler.
const (
	activeSpinCycles = 4  // Number of PAUSE cycles per active spin iteration
	activeSpinTries  = 30 // Max active spin iterations before yielding
)

// Spinner implements adaptive spinning: a bounded run of active PAUSE
// spins, then a single scheduler yield. The zero value is ready to use.
type Spinner struct {
	tries int
}

// Spin performs one wait step and reports whether the caller should keep
// spinning. While the active budget lasts it executes PAUSE cycles and
// returns true; once exhausted it yields to the scheduler, resets, and
// returns false.
func (s *Spinner) Spin() bool {
	if s.tries < activeSpinTries {
		Procyield(activeSpinCycles)
		s.tries++
		return true
	}
	goruntime.Gosched()
	s.tries = 0
	return false
}

// Reset restores the full active spin budget.
func (s *Spinner) Reset() {
	s.tries = 0
}
