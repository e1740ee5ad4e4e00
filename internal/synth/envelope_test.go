package synth

import (
	"math"
	"testing"
)

func TestEnvelopeLevel(t *testing.T) {
	e := Envelope{Attack: 0.1, Decay: 0.2, Sustain: 0.5}
	tests := []struct {
		t    float64
		want float64
	}{
		{-1, 0},
		{0, 0},
		{0.05, 0.5},
		{0.1, 1},
		{0.2, 0.75},
		{0.3, 0.5},
		{10, 0.5},
	}
	for _, tt := range tests {
		if got := e.Level(tt.t); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Level(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
	if e.Settled(0.29) || !e.Settled(0.31) {
		t.Fatal("Settled boundary wrong")
	}
}

func TestFilterEnvelopeCutoff(t *testing.T) {
	f := DefaultFilterEnvelope
	if got := f.Cutoff(0); got != 3000 {
		t.Fatalf("Cutoff(0) = %v, want base 3000", got)
	}
	if got := f.Cutoff(f.Attack); math.Abs(got-24000) > 1e-6 {
		t.Fatalf("Cutoff at peak = %v, want 24000", got)
	}
	want := 3000 * math.Pow(2, 1.5)
	if got := f.Cutoff(100); math.Abs(got-want) > 1e-6 {
		t.Fatalf("sustained cutoff = %v, want %v", got, want)
	}
}
