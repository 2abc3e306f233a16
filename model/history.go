package model

// Status describes how the recent generations of a grid relate to each other
type Status string

const (
	// StatusActive means the current generation differs from every recorded one
	StatusActive Status = "Active"
	// StatusStable means the current generation repeats the previous one
	StatusStable Status = "Stable"
	// StatusOscillating means the current generation repeats an older one
	StatusOscillating Status = "Oscillating"
	// StatusExtinct means no cell is alive
	StatusExtinct Status = "Extinct"
)

// DefaultHistorySize keeps enough generations to spot period 2 and 3 oscillators
const DefaultHistorySize = 5

// History remembers the hashes of recent generations. It only reports on the
// simulation; nothing stops because a grid went stable or extinct.
type History struct {
	size   int
	hashes []string
}

// NewHistory returns a history holding at most size generations
func NewHistory(size int) *History {
	if size < 1 {
		size = DefaultHistorySize
	}
	return &History{size: size}
}

// Record adds the current generation of g and drops the oldest beyond the limit
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Status compares the current generation of g against the recorded ones
func (h *History) Status(g *Grid) Status {
	if g.CountLivingCells() == 0 {
		return StatusExtinct
	}

	current := g.Hash()
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] != current {
			continue
		}
		if i == len(h.hashes)-1 {
			return StatusStable
		}
		return StatusOscillating
	}
	return StatusActive
}

// Observe returns the status of g and then records it
func (h *History) Observe(g *Grid) Status {
	status := h.Status(g)
	h.Record(g)
	return status
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}
