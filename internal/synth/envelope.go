package synth

import "math"

// Envelope is an attack/decay/sustain shape with no release: voices here
// are held forever once triggered.
type Envelope struct {
	Attack  float64 // seconds
	Decay   float64 // seconds
	Sustain float64 // level, 0..1
}

// Level returns the envelope value t seconds after the trigger.
func (e Envelope) Level(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t < e.Attack:
		return t / e.Attack
	case t < e.Attack+e.Decay:
		return 1 - (t-e.Attack)/e.Decay*(1-e.Sustain)
	default:
		return e.Sustain
	}
}

// Settled reports whether the envelope has reached its sustain level.
func (e Envelope) Settled(t float64) bool {
	return t >= e.Attack+e.Decay
}

// FilterEnvelope sweeps a cutoff exponentially: Base at level 0, Base·2^Octaves
// at level 1.
type FilterEnvelope struct {
	Envelope
	Base    float64 // Hz
	Octaves float64
}

func (f FilterEnvelope) Cutoff(t float64) float64 {
	return f.Base * math.Pow(2, f.Octaves*f.Level(t))
}
