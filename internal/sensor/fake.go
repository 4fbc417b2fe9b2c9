package sensor

import "context"

// FakeSource is a test double that returns scripted readings.
// Each call to Read consumes the next value; when exhausted, the last
// value repeats. A scripted error entry makes that call fail.
type FakeSource struct {
	// Values are the scripted readings, consumed in order.
	Values []float64

	// Errs, when non-nil at the current index, is returned instead of a value.
	Errs []error

	// Closed tracks whether Close was called.
	Closed bool

	index int
}

// NewFakeSource creates a FakeSource with the given scripted values.
func NewFakeSource(values ...float64) *FakeSource {
	return &FakeSource{Values: values}
}

// Read returns the next scripted value or error.
func (f *FakeSource) Read(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	i := f.index
	limit := len(f.Values)
	if len(f.Errs) > limit {
		limit = len(f.Errs)
	}
	if f.index < limit-1 {
		f.index++
	}

	if i < len(f.Errs) && f.Errs[i] != nil {
		return 0, f.Errs[i]
	}
	if i < len(f.Values) {
		return f.Values[i], nil
	}
	if len(f.Values) > 0 {
		return f.Values[len(f.Values)-1], nil
	}
	return 0, ErrIO
}

// Describe labels the fake for header assertions.
func (f *FakeSource) Describe() string {
	return "fake sensor"
}

// Close marks the fake closed.
func (f *FakeSource) Close() error {
	f.Closed = true
	return nil
}
