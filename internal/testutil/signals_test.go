package testutil

import (
	"math"
	"testing"
)

func TestSine(t *testing.T) {
	s := Sine(1, 8, 1, 9)
	if len(s) != 9 {
		t.Fatalf("length %d, want 9", len(s))
	}
	if s[0] != 0 {
		t.Errorf("s[0] = %v, want 0", s[0])
	}
	if math.Abs(s[2]-1) > 1e-12 {
		t.Errorf("quarter period s[2] = %v, want 1", s[2])
	}
	if math.Abs(s[8]) > 1e-12 {
		t.Errorf("full period s[8] = %v, want 0", s[8])
	}
}

func TestNoiseDeterministic(t *testing.T) {
	a := Noise(42, 1, 64)
	b := Noise(42, 1, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: same seed produced different values", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("index %d: value %v outside amplitude bound", i, a[i])
		}
	}
}

func TestStep(t *testing.T) {
	s := Step(5, 2)
	want := []float64{0, 0, 1, 1, 1}
	for i := range want {
		if s[i] != want[i] {
			t.Errorf("s[%d] = %v, want %v", i, s[i], want[i])
		}
	}
}
