// internal/solver/types.go
//
// Core type definitions for the solver.
// Defines:
//   - Mark: per-letter result of a guess (exact/present/absent).
//   - State: coarse session state (not started/in progress/solved/exhausted).

package solver

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "exact":   letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "absent":  letter does not exist in the answer at all.
type Mark string

const (
	MarkExact   Mark = "exact"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// State is the coarse lifecycle state of a session.
type State string

const (
	StateNotStarted State = "not started"
	StateInProgress State = "in progress"
	StateSolved     State = "solved"
	StateExhausted  State = "exhausted"
)
