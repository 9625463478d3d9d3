package quiz

// Stats counts finished rounds.
type Stats struct {
	Rounds   int
	Found    int
	TimedOut int
	Misses   int // Wrong colors shown to the robot
	Hints    int // Hint cube taps
}

func (s *Stats) add(o Stats) {
	s.Rounds += o.Rounds
	s.Found += o.Found
	s.TimedOut += o.TimedOut
	s.Misses += o.Misses
	s.Hints += o.Hints
}

// Tally keeps per-mode stats for the current session. It lives in memory
// only and is not safe for concurrent use.
type Tally struct {
	byMode map[Mode]Stats
}

// NewTally creates an empty tally.
func NewTally() *Tally {
	return &Tally{byMode: make(map[Mode]Stats)}
}

// Record adds a finished round.
func (t *Tally) Record(o Outcome) {
	s := Stats{Rounds: 1, Misses: o.Misses, Hints: o.Hints}
	if o.Found {
		s.Found = 1
	}
	if o.TimedOut {
		s.TimedOut = 1
	}

	cur := t.byMode[o.Round.Mode]
	cur.add(s)
	t.byMode[o.Round.Mode] = cur
}

// ByMode returns stats for one mode.
func (t *Tally) ByMode(m Mode) Stats {
	return t.byMode[m]
}

// Total returns stats across all modes.
func (t *Tally) Total() Stats {
	var total Stats
	for _, s := range t.byMode {
		total.add(s)
	}
	return total
}
