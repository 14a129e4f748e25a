// internal/stats/stats.go
//
// In-memory aggregation of simulation results.
// Concurrency-safe via mutex so `sim` can play games on several goroutines;
// sessions themselves stay single-threaded, only the tally is shared.

package stats

import "sync"

// Recorder tallies game outcomes.
type Recorder struct {
	mu     sync.Mutex
	games  int
	solved int
	moves  map[int]int // moves → count, 7 meaning failed
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{moves: make(map[int]int)}
}

// Record adds one finished game.
func (r *Recorder) Record(moves int, solved bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games++
	if solved {
		r.solved++
	}
	r.moves[moves]++
}

// Summary is a point-in-time aggregate of recorded games.
type Summary struct {
	Games     int
	Solved    int
	SolveRate float64
	AvgMoves  float64     // average over solved games only
	Moves     map[int]int // distribution, 7 = failed
}

// Summary returns the current aggregate.
func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Summary{
		Games:  r.games,
		Solved: r.solved,
		Moves:  make(map[int]int, len(r.moves)),
	}
	var solvedMoves int
	for m, n := range r.moves {
		s.Moves[m] = n
		if m <= 6 {
			solvedMoves += m * n
		}
	}
	if s.Games > 0 {
		s.SolveRate = float64(s.Solved) / float64(s.Games)
	}
	if s.Solved > 0 {
		s.AvgMoves = float64(solvedMoves) / float64(s.Solved)
	}
	return s
}
