package sketch

import (
	"math"
	"testing"
)

func TestMapLinear(t *testing.T) {
	tests := []struct {
		x, a1, a2, b1, b2 float64
		want              float64
	}{
		{0, 0, 1, 0, 10, 0},
		{1, 0, 1, 0, 10, 10},
		{0.5, 0, 1, -1, 1, 0},
		{2, 0, 1, 0, 10, 20}, // no clamping
		{-0.25, -0.25, 2.5, -1, 1, -1},
		{2.5, -0.25, 2.5, -1, 1, 1},
	}
	for _, tt := range tests {
		if got := MapLinear(tt.x, tt.a1, tt.a2, tt.b1, tt.b2); !approx(got, tt.want, 1e-12) {
			t.Errorf("MapLinear(%v, %v, %v, %v, %v) = %v, want %v", tt.x, tt.a1, tt.a2, tt.b1, tt.b2, got, tt.want)
		}
	}
}

func TestTargetVolume(t *testing.T) {
	const amp = 2.5
	tests := []struct {
		name string
		y    float64
		want float64
	}{
		{"bottom of range", -amp / 10, math.Inf(-1)},
		{"rest", 0, math.Inf(-1)},
		{"remap zero", 1.125, math.Inf(-1)},
		{"top of range", amp, 0},
		{"above range", 2 * amp, 20 * math.Log10(-1+(2*amp+amp/10)*2/(1.1*amp))},
		{"clamped", 10 * amp, 20 * math.Log10(3)},
		{"partial", 2, 20 * math.Log10(-1+2.25*2/2.75)},
	}
	for _, tt := range tests {
		got := TargetVolume(tt.y, amp)
		if math.IsInf(tt.want, -1) {
			if !math.IsInf(got, -1) {
				t.Errorf("%s: TargetVolume(%v) = %v, want -Inf", tt.name, tt.y, got)
			}
			continue
		}
		if !approx(got, tt.want, 1e-9) {
			t.Errorf("%s: TargetVolume(%v) = %v, want %v", tt.name, tt.y, got, tt.want)
		}
	}
}

func TestTargetVolumeIsPure(t *testing.T) {
	for _, y := range []float64{-3, -0.25, 0, 0.7, 1.9, 2.5, 4.4, 9} {
		first := TargetVolume(y, 2.5)
		for i := 0; i < 5; i++ {
			again := TargetVolume(y, 2.5)
			if again != first && !(math.IsNaN(again) && math.IsNaN(first)) {
				t.Fatalf("TargetVolume(%v) changed from %v to %v", y, first, again)
			}
		}
	}
}

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(5), NewRand(5)
	for i := 0; i < 50; i++ {
		if a.NextU64() != b.NextU64() {
			t.Fatalf("streams diverged at %d", i)
		}
	}
	z := NewRand(0)
	for i := 0; i < 50; i++ {
		f := z.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v out of [0,1)", f)
		}
		if z.Int63() < 0 {
			t.Fatal("Int63() negative")
		}
	}
}
