// Package conv provides linear convolution of finite real sequences.
//
// Two strategies are available:
//
//   - Direct convolution: O(N*M) time-domain evaluation, best for short
//     sequences such as filter coefficient sets
//   - FFT convolution: frequency-domain evaluation, efficient once both
//     sequences grow long
//
// For one-shot use, Convolve selects a strategy automatically:
//
//	result, err := conv.Convolve(a, b)
//
// Callers that manage their own storage (fixed-capacity filter state, hot
// loops) use DirectTo with a pre-allocated destination:
//
//	conv.DirectTo(dst, a, b) // len(dst) == len(a)+len(b)-1, no allocation
package conv
