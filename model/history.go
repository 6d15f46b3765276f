package model

const historySize = 5

// History keeps the hashes of recent generations for cycle detection
type History struct {
	hashes []string
}

// Push records a generation hash, keeping only the most recent entries
func (h *History) Push(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Len returns the number of hashes held
func (h *History) Len() int {
	return len(h.hashes)
}

// IsStagnant reports whether hash repeats one of the last three generations,
// which catches still lifes and period-2 and period-3 oscillators
func (h *History) IsStagnant(hash string) bool {
	if len(h.hashes) < 3 {
		return false
	}

	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == hash {
			return true
		}
	}
	return false
}
