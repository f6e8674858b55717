package testutil

import (
	"math"
	"math/rand"
)

// Sine generates a deterministic sine wave of the given length.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Noise generates white noise with a fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Step generates a unit step: zeros before pos, ones from pos onward.
func Step(length, pos int) []float64 {
	out := make([]float64, length)
	for i := pos; i < length; i++ {
		if i >= 0 {
			out[i] = 1
		}
	}
	return out
}
