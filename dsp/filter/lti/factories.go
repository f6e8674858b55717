package lti

import (
	"fmt"
	"math"
)

// NewLowPass creates a first-order low-pass filter from a cutoff frequency
// and sample rate, both in Hz. The discretization matches an RC stage:
//
//	alpha = 1 / (1 + 2*pi*cutoff/sampleRate)
//	a = [1, -alpha], b = [1-alpha]
//
// giving unity gain at DC.
func NewLowPass(cutoffHz, sampleRateHz float64) (*Filter, error) {
	alpha, err := smoothingAlpha(cutoffHz, sampleRateHz)
	if err != nil {
		return nil, err
	}

	return New([]float64{1, -alpha}, []float64{1 - alpha})
}

// NewHighPass creates a first-order high-pass filter, the low-pass
// complement with the same pole: unity gain at Nyquist, zero gain at DC.
func NewHighPass(cutoffHz, sampleRateHz float64) (*Filter, error) {
	alpha, err := smoothingAlpha(cutoffHz, sampleRateHz)
	if err != nil {
		return nil, err
	}

	return New([]float64{1, -alpha}, []float64{alpha, -alpha})
}

// NewIntegrator creates a discrete integrator y[n] = y[n-1] + x[n]/sampleRate.
func NewIntegrator(sampleRateHz float64) (*Filter, error) {
	if err := validateSampleRate(sampleRateHz); err != nil {
		return nil, err
	}

	return New([]float64{sampleRateHz, -sampleRateHz}, []float64{1})
}

// NewDifferentiator creates a discrete differentiator
// y[n] = (x[n] - x[n-1]) * sampleRate.
func NewDifferentiator(sampleRateHz float64) (*Filter, error) {
	if err := validateSampleRate(sampleRateHz); err != nil {
		return nil, err
	}

	return New([]float64{1}, []float64{sampleRateHz, -sampleRateHz})
}

// smoothingAlpha computes the shared first-order pole for the low-pass and
// high-pass factories.
func smoothingAlpha(cutoffHz, sampleRateHz float64) (float64, error) {
	if err := validateSampleRate(sampleRateHz); err != nil {
		return 0, err
	}
	if cutoffHz <= 0 {
		return 0, fmt.Errorf("lti: cutoff frequency must be > 0: %g", cutoffHz)
	}

	return 1 / (1 + 2*math.Pi*cutoffHz/sampleRateHz), nil
}

func validateSampleRate(sampleRateHz float64) error {
	if sampleRateHz <= 0 {
		return fmt.Errorf("lti: sample rate must be > 0: %g", sampleRateHz)
	}
	return nil
}
