package random

import "sync"

// Scripted is a deterministic Source for testing.
// IntN returns queued values in FIFO order (reduced modulo n) and falls back
// to 0 once the queue is empty. Shuffle leaves the order untouched unless
// Reverse is set.
type Scripted struct {
	mu      sync.Mutex
	values  []int
	Reverse bool
	Calls   []int // n argument of every IntN call
}

// NewScripted creates a Scripted source with the given queued IntN results.
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

// IntN returns the next queued value modulo n.
func (s *Scripted) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls = append(s.Calls, n)
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	if v < 0 {
		v = -v
	}
	return v % n
}

// Shuffle is a no-op, or a full reversal when Reverse is set.
func (s *Scripted) Shuffle(n int, swap func(i, j int)) {
	if !s.Reverse {
		return
	}
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}
