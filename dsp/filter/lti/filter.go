package lti

import (
	"fmt"

	"github.com/cwbudde/algo-lti/dsp/core"
)

// Capacity bounds for coefficient and history storage. Every Filter embeds
// arrays of these sizes; the runtime order ranges from 1 up to the bound.
const (
	// MaxOrderA is the maximum number of output (feedback) coefficients.
	MaxOrderA = 16

	// MaxOrderB is the maximum number of input (feedforward) coefficients.
	MaxOrderB = 16
)

// Both bounds must be at least 2; a smaller constant fails to compile.
var (
	_ [MaxOrderA - 2]struct{}
	_ [MaxOrderB - 2]struct{}
)

// Filter is a difference-equation LTI filter with fixed-capacity storage.
// The zero value is not usable; construct via New, NewIdentity, Combine, or
// one of the factory constructors.
type Filter struct {
	orderA int
	orderB int

	a [MaxOrderA]float64 // feedback coefficients, a[0] normalized to 1
	b [MaxOrderB]float64 // feedforward coefficients

	y [MaxOrderA]float64 // output history, index 0 most recent
	x [MaxOrderB]float64 // input history, index 0 most recent

	frame int // samples since reset, saturates at orderB
}

// New creates a filter from explicit coefficient sets. a holds the output
// (feedback) coefficients, b the input (feedforward) coefficients; both are
// copied. All coefficients are scaled by 1/a[0] at construction so the
// stored a[0] is exactly 1; no separate initialization call exists or is
// needed.
func New(a, b []float64) (*Filter, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyCoeffs
	}
	if len(a) > MaxOrderA || len(b) > MaxOrderB {
		return nil, fmt.Errorf("%w: orders %d/%d, capacity %d/%d",
			ErrCapacity, len(a), len(b), MaxOrderA, MaxOrderB)
	}
	if a[0] == 0 {
		return nil, ErrZeroLeadingCoeff
	}

	f := &Filter{
		orderA: len(a),
		orderB: len(b),
	}

	scale := 1 / a[0]
	for k, c := range a {
		f.a[k] = c * scale
	}
	for k, c := range b {
		f.b[k] = c * scale
	}
	// c*(1/c) can round away from 1; the invariant is exact.
	f.a[0] = 1

	f.Reset()

	return f, nil
}

// NewIdentity returns the pass-through filter y[n] = x[n].
func NewIdentity() *Filter {
	f := &Filter{orderA: 1, orderB: 1}
	f.a[0] = 1
	f.b[0] = 1
	f.Reset()

	return f
}

// ProcessSample feeds one input sample and returns one output sample.
//
// The recurrence value is always computed and stored in the output history,
// but the returned value is forced to 0 for the first OrderB-1 calls after
// construction or Reset, while the input history still contains implicit
// zeros rather than real samples.
func (f *Filter) ProcessSample(xn float64) float64 {
	for n := f.orderA - 1; n > 0; n-- {
		f.y[n] = f.y[n-1]
	}
	for n := f.orderB - 1; n > 0; n-- {
		f.x[n] = f.x[n-1]
	}
	f.x[0] = xn

	var yn float64
	for k := 0; k < f.orderB; k++ {
		yn += f.b[k] * f.x[k]
	}
	for k := 1; k < f.orderA; k++ {
		yn -= f.a[k] * f.y[k]
	}
	f.y[0] = yn

	// Only the relation of frame to orderB matters, so it saturates there.
	if f.frame < f.orderB {
		f.frame++
	}
	if f.frame < f.orderB {
		return 0
	}

	return yn
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears both histories and restarts the warm-up period, restoring the
// externally observable behavior of a freshly constructed filter.
func (f *Filter) Reset() {
	core.Zero(f.y[:])
	core.Zero(f.x[:])
	f.frame = 0
}

// OrderA returns the number of output (feedback) coefficients.
func (f *Filter) OrderA() int { return f.orderA }

// OrderB returns the number of input (feedforward) coefficients.
func (f *Filter) OrderB() int { return f.orderB }

// Coefficients returns copies of the normalized coefficient sets.
func (f *Filter) Coefficients() (a, b []float64) {
	a = make([]float64, f.orderA)
	core.CopyInto(a, f.a[:f.orderA])
	b = make([]float64, f.orderB)
	core.CopyInto(b, f.b[:f.orderB])

	return a, b
}

// Clone returns an independent copy of the filter, including its current
// history and warm-up state.
func (f *Filter) Clone() *Filter {
	clone := *f
	return &clone
}
