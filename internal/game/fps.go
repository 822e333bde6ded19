package game

import "time"

// fpsSamples is how many frame durations the counter averages over.
const fpsSamples = 32

// fpsHistory is a ring of recent frame durations.
type fpsHistory struct {
	samples [fpsSamples]time.Duration
	next    int
	filled  int
}

func (h *fpsHistory) record(dt time.Duration) {
	h.samples[h.next] = dt
	h.next = (h.next + 1) % fpsSamples
	h.filled = min(h.filled+1, fpsSamples)
}

// FPS is the frame rate over the recorded samples, or 0 before the first.
func (h *fpsHistory) FPS() float64 {
	var total time.Duration
	for i := 0; i < h.filled; i++ {
		total += h.samples[i]
	}
	if total <= 0 {
		return 0
	}
	return float64(h.filled) / total.Seconds()
}
