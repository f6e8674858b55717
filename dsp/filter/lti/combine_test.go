package lti

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-lti/internal/testutil"
)

func TestCombineOrders(t *testing.T) {
	f1, _ := New([]float64{1, -0.5}, []float64{0.5})
	f2, _ := New([]float64{1, -0.2, 0.1}, []float64{0.4, 0.4})

	combined, err := Combine(f1, f2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if combined.OrderA() != 4 {
		t.Errorf("OrderA = %d, want 4", combined.OrderA())
	}
	if combined.OrderB() != 2 {
		t.Errorf("OrderB = %d, want 2", combined.OrderB())
	}

	a, _ := combined.Coefficients()
	if a[0] != 1 {
		t.Errorf("combined a[0] = %v, want exactly 1", a[0])
	}
}

func TestCombineCommutative(t *testing.T) {
	f1, _ := NewLowPass(10, 100)
	f2, _ := NewHighPass(50, 1000)

	c12, err := Combine(f1, f2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c21, err := Combine(f2, f1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a12, b12 := c12.Coefficients()
	a21, b21 := c21.Coefficients()
	testutil.RequireSliceNearlyEqual(t, a12, a21, 1e-12)
	testutil.RequireSliceNearlyEqual(t, b12, b21, 1e-12)
}

func TestCombineWithIdentity(t *testing.T) {
	f, _ := NewLowPass(10, 100)
	combined, err := Combine(f, NewIdentity())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reference, _ := NewLowPass(10, 100)
	for _, x := range testutil.Noise(9, 1, 100) {
		got := combined.ProcessSample(x)
		want := reference.ProcessSample(x)
		testutil.RequireNearlyEqual(t, got, want, 1e-12)
	}
}

func TestCombineEquivalentToSeries(t *testing.T) {
	// Feeding a signal through f1 then f2 matches the combined filter.
	f1, _ := NewLowPass(10, 100)
	f2, _ := NewLowPass(25, 100)

	combined, err := Combine(f1, f2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	input := testutil.Sine(5, 100, 1, 256)
	for i, x := range input {
		series := f2.ProcessSample(f1.ProcessSample(x))
		direct := combined.ProcessSample(x)
		if i == 0 {
			continue // transient start, both near zero anyway
		}
		testutil.RequireNearlyEqual(t, series, direct, 1e-9)
	}
}

func TestCombineWarmUp(t *testing.T) {
	// Two differentiators (orderB = 2 each) combine to orderB = 3:
	// exactly two suppressed outputs.
	d1, _ := NewDifferentiator(100)
	d2, _ := NewDifferentiator(100)

	combined, err := Combine(d1, d2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if combined.OrderB() != 3 {
		t.Fatalf("OrderB = %d, want 3", combined.OrderB())
	}

	if y := combined.ProcessSample(1); y != 0 {
		t.Fatalf("sample 1 = %v, want 0", y)
	}
	if y := combined.ProcessSample(2); y != 0 {
		t.Fatalf("sample 2 = %v, want 0", y)
	}
	if y := combined.ProcessSample(3); y == 0 {
		t.Fatal("sample 3 still suppressed, warm-up too long")
	}
}

func TestCombineCapacity(t *testing.T) {
	// Two filters of output order 9 combine to 17, past MaxOrderA.
	a := make([]float64, 9)
	a[0] = 1
	f1, err := New(a, []float64{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = Combine(f1, f1)
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("Combine error = %v, want ErrCapacity", err)
	}
}
