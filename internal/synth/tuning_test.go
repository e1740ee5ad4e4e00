package synth

import (
	"math"
	"testing"
)

func TestNote(t *testing.T) {
	tests := []struct {
		voice  int
		octave int
		note   int
	}{
		{0, 0, 36},
		{1, 0, 40},
		{4, 0, 50},
		{5, 0, 36},
		{11, 0, 40},
		{12, 1, 55},
		{13, 1, 59},
		{16, 1, 52},
		{35, 2, 60},
	}
	for _, tt := range tests {
		if got := Octave(tt.voice); got != tt.octave {
			t.Errorf("Octave(%d) = %d, want %d", tt.voice, got, tt.octave)
		}
		if got := Note(tt.voice); got != tt.note {
			t.Errorf("Note(%d) = %d, want %d", tt.voice, got, tt.note)
		}
	}
}

func TestMidiToFrequency(t *testing.T) {
	tests := []struct {
		note float64
		hz   float64
	}{
		{69, 440},
		{57, 220},
		{81, 880},
		{36, 65.40639132514966},
		{69.5, 440 * math.Pow(2, 0.5/12)},
	}
	for _, tt := range tests {
		if got := MidiToFrequency(tt.note); math.Abs(got-tt.hz) > 1e-9 {
			t.Errorf("MidiToFrequency(%v) = %v, want %v", tt.note, got, tt.hz)
		}
	}
}
