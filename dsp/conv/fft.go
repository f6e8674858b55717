package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// FFT performs one-shot linear convolution in the frequency domain.
// Both sequences are zero-padded to a power-of-two FFT size covering the
// full result length len(a) + len(b) - 1, multiplied bin-wise, and
// transformed back. The result matches Direct up to floating-point error.
func FFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	outputLen := len(a) + len(b) - 1
	fftSize := nextPowerOf2(outputLen)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	for i, v := range a {
		aPadded[i] = complex(v, 0)
	}

	bPadded := make([]complex128, fftSize)
	for i, v := range b {
		bPadded[i] = complex(v, 0)
	}

	if err := plan.Forward(aPadded, aPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	if err := plan.Forward(bPadded, bPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range aPadded {
		aPadded[i] *= bPadded[i]
	}

	if err := plan.Inverse(aPadded, aPadded); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	output := make([]float64, outputLen)
	for i := range output {
		output[i] = real(aPadded[i])
	}

	return output, nil
}
