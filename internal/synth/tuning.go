// Package synth renders the sketch's bank of sustained sawtooth voices as a
// float32 stereo stream.
package synth

import "math"

// Scale holds the five pitch degrees, in semitones above the voice's octave.
var Scale = [5]int{0, 4, 7, 11, 14}

const BaseNote = 36 // C2

// Octave groups voices twelve at a time.
func Octave(i int) int { return i / 12 }

// Note returns the MIDI note of voice i.
func Note(i int) int {
	return BaseNote + Scale[i%len(Scale)] + Octave(i)*12
}

// MidiToFrequency converts a MIDI note number to Hz (A4 = 69 = 440 Hz).
func MidiToFrequency(note float64) float64 {
	return 440 * math.Pow(2, (note-69)/12)
}
