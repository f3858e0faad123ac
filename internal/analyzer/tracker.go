package analyzer

import "sync"

// Tracker enforces latest-photo-wins ordering for analysis results.
// Each photo submission takes a generation number; a completed result is
// applied only if its generation is still the most recent one, so a slow
// detection for an already-replaced photo is silently discarded.
type Tracker struct {
	mu      sync.Mutex
	current uint64
	result  *FaceAnalysisResult
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Begin registers a new photo submission and returns its generation.
// Any earlier in-flight submission becomes stale immediately.
func (t *Tracker) Begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current++
	return t.current
}

// Apply stores the result if its generation is still current.
// Returns false when the result is stale and was discarded.
func (t *Tracker) Apply(generation uint64, result *FaceAnalysisResult) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if generation != t.current {
		return false
	}
	t.result = result
	return true
}

// Current returns the most recently applied result, or nil before the first
// completed analysis.
func (t *Tracker) Current() *FaceAnalysisResult {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result
}
