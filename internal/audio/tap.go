package audio

import (
	"sync"

	"github.com/faiface/beep"
)

// ScopeSize is the ring length kept for the HUD scope.
const ScopeSize = 2048

// tap wraps a beep.Streamer and records the last N samples into a ring buffer
// so the HUD can draw what the bank is playing.
type tap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	mu        sync.RWMutex
}

func newTap(src beep.Streamer, ringSize int) *tap {
	return &tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex = (t.nextIndex + 1) % len(t.buffer)
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *tap) Err() error { return t.Source.Err() }

// snapshot returns up to the last n mono samples, oldest first.
func (t *tap) snapshot(n int) []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	out := make([]float64, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := 0; i < n; i++ {
		s := t.buffer[idx]
		out[i] = (s[0] + s[1]) * 0.5
		idx = (idx + 1) % len(t.buffer)
	}
	return out
}
