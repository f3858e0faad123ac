package detector

import "context"

// Fake is a deterministic in-memory Provider for tests and offline use.
// It returns a preconfigured result for every Detect call.
type Fake struct {
	Result    *Result
	Err       error
	NotReady  bool
	CallCount int
}

// Name returns the provider name.
func (f *Fake) Name() string {
	return "fake"
}

// Ready reports the configured readiness.
func (f *Fake) Ready() bool {
	return !f.NotReady
}

// Detect returns the preconfigured result or error.
func (f *Fake) Detect(_ context.Context, _ []byte) (*Result, error) {
	f.CallCount++
	if f.Err != nil {
		return nil, f.Err
	}
	if f.NotReady {
		return &Result{Present: false, Reason: ReasonModelUnavailable}, nil
	}
	return f.Result, nil
}

// UniformLandmarks builds a full landmark set with every point at (x, y, z).
// Useful as a base for tests that then pin specific indices.
func UniformLandmarks(x, y, z float64) []Landmark {
	landmarks := make([]Landmark, LandmarkCount)
	for i := range landmarks {
		landmarks[i] = Landmark{X: x, Y: y, Z: z}
	}
	return landmarks
}
