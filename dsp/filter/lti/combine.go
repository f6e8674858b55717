package lti

import (
	"fmt"

	"github.com/cwbudde/algo-lti/dsp/conv"
)

// Combine returns the series composition of f1 and f2: applying the result
// to a signal is equivalent to applying f1 then f2 (their transfer functions
// multiply). Both coefficient sets are convolved in the time domain and the
// result is constructed through New, which re-normalizes the coefficients
// and starts with cleared history.
//
// The combined orders are f1.OrderA+f2.OrderA-1 and f1.OrderB+f2.OrderB-1;
// if either exceeds its capacity bound, ErrCapacity is returned rather than
// silently truncating the transfer function.
func Combine(f1, f2 *Filter) (*Filter, error) {
	orderA := f1.orderA + f2.orderA - 1
	orderB := f1.orderB + f2.orderB - 1

	if orderA > MaxOrderA || orderB > MaxOrderB {
		return nil, fmt.Errorf("%w: combined orders %d/%d, capacity %d/%d",
			ErrCapacity, orderA, orderB, MaxOrderA, MaxOrderB)
	}

	var a [MaxOrderA]float64
	var b [MaxOrderB]float64
	conv.DirectTo(a[:orderA], f1.a[:f1.orderA], f2.a[:f2.orderA])
	conv.DirectTo(b[:orderB], f1.b[:f1.orderB], f2.b[:f2.orderB])

	return New(a[:orderA], b[:orderB])
}
