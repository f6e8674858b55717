// Package lti implements discrete-time linear time-invariant filters
// evaluated through a general difference equation:
//
//	a[0]*y[n] + a[1]*y[n-1] + ... + a[A-1]*y[n-(A-1)] =
//	b[0]*x[n] + b[1]*x[n-1] + ... + b[B-1]*x[n-(B-1)]
//
// Coefficients are normalized at construction so a[0] == 1, making the
// recurrence directly solvable for y[n]. After construction or [Filter.Reset]
// the filter outputs 0 until all B input-history slots hold real samples.
//
// Storage is fixed-capacity: every Filter embeds coefficient and history
// arrays sized by [MaxOrderA] and [MaxOrderB], so per-sample processing never
// allocates and instances never resize. Filters compose in series via
// [Combine], which convolves the two coefficient sets.
//
// First-order building blocks (low-pass, high-pass, integrator,
// differentiator) are available as factory constructors taking frequencies
// in Hz.
package lti
