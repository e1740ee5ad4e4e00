package synth

import (
	"math"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design"
)

// Voice defaults, after a classic mono synth patch.
var (
	DefaultAmpEnvelope = Envelope{Attack: 0.01, Decay: 0.1, Sustain: 0.9}

	DefaultFilterEnvelope = FilterEnvelope{
		Envelope: Envelope{Attack: 0.6, Decay: 0.2, Sustain: 0.5},
		Base:     3000,
		Octaves:  3,
	}
)

const (
	DefaultVelocity = 0.01
	FilterQ         = 1.0

	// Cutoff is recomputed at most this often while the filter envelope moves.
	filterUpdateSamples = 64
	// Cutoff ceiling as a fraction of the sample rate.
	maxCutoffRatio = 0.45
)

// Voice is one monophonic sawtooth through a swept lowpass, scaled by an
// amplitude envelope, the trigger velocity and a rampable volume.
type Voice struct {
	sampleRate float64
	amp        Envelope
	filterEnv  FilterEnvelope

	freq     float64
	velocity float64
	phase    float64
	t        float64 // seconds since trigger
	active   bool

	filter      *biquad.Section
	cutoff      float64
	filterClock int

	volume Param // linear gain
}

func newVoice(sampleRate float64) *Voice {
	return &Voice{
		sampleRate: sampleRate,
		amp:        DefaultAmpEnvelope,
		filterEnv:  DefaultFilterEnvelope,
		filter:     biquad.NewSection(biquad.Coefficients{B0: 1}),
	}
}

// TriggerAttack starts the voice at freq Hz. It is never released.
func (v *Voice) TriggerAttack(freq, velocity float64) {
	v.freq = freq
	v.velocity = velocity
	v.phase = 0
	v.t = 0
	v.active = true
	v.filter.Reset()
	v.filterClock = 0
	v.setCutoff(v.filterEnv.Cutoff(0))
}

func (v *Voice) Frequency() float64 { return v.freq }
func (v *Voice) Cutoff() float64    { return v.cutoff }

func (v *Voice) setCutoff(hz float64) {
	hz = math.Min(hz, v.sampleRate*maxCutoffRatio)
	if hz == v.cutoff {
		return
	}
	v.cutoff = hz
	v.filter.Coefficients = design.Lowpass(hz, FilterQ, v.sampleRate)
}

// next renders one mono sample.
func (v *Voice) next() float64 {
	vol := v.volume.Next()
	if !v.active {
		return 0
	}

	if v.filterClock == 0 && !v.filterEnv.Settled(v.t-float64(filterUpdateSamples)/v.sampleRate) {
		v.setCutoff(v.filterEnv.Cutoff(v.t))
	}
	v.filterClock = (v.filterClock + 1) % filterUpdateSamples

	dt := v.freq / v.sampleRate
	s := 2*v.phase - 1 - polyBLEP(v.phase, dt)
	v.phase += dt
	if v.phase >= 1 {
		v.phase -= math.Floor(v.phase)
	}

	s *= v.amp.Level(v.t) * v.velocity
	v.t += 1 / v.sampleRate
	return v.filter.ProcessSample(s) * vol
}

// polyBLEP smooths the sawtooth's reset step to keep aliasing down.
func polyBLEP(t, dt float64) float64 {
	switch {
	case t < dt:
		t /= dt
		return t + t - t*t - 1
	case t > 1-dt:
		t = (t - 1) / dt
		return t*t + t + t + 1
	}
	return 0
}
