package synth

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/cwbudde/algo-dsp/dsp/core"
)

const (
	DefaultSampleRate = 44100
	ChannelCount      = 2
	FrameSize         = ChannelCount * 4 // stereo float32
)

type options struct {
	sampleRate float64
	velocity   float64
	detune     func() float64
}

// Option configures a Bank.
type Option func(*options)

func WithSampleRate(sampleRate float64) Option {
	return func(o *options) {
		if sampleRate > 0 {
			o.sampleRate = sampleRate
		}
	}
}

func WithVelocity(velocity float64) Option {
	return func(o *options) { o.velocity = velocity }
}

// WithDetune sets the source of the per-voice frequency offset in Hz, drawn
// once per voice at trigger time.
func WithDetune(fn func() float64) Option {
	return func(o *options) {
		if fn != nil {
			o.detune = fn
		}
	}
}

// Bank holds one voice per sketch row, all triggered at construction and held.
// It is an io.Reader of interleaved stereo float32 little-endian frames; reads
// and volume commands may come from different goroutines.
type Bank struct {
	mu         sync.Mutex
	sampleRate float64
	voices     []*Voice
}

func NewBank(n int, opts ...Option) (*Bank, error) {
	if n <= 0 {
		return nil, fmt.Errorf("synth: bank needs at least one voice, got %d", n)
	}
	o := options{
		sampleRate: DefaultSampleRate,
		velocity:   DefaultVelocity,
		detune:     func() float64 { return 0 },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	b := &Bank{
		sampleRate: o.sampleRate,
		voices:     make([]*Voice, n),
	}
	for i := range b.voices {
		v := newVoice(o.sampleRate)
		v.TriggerAttack(MidiToFrequency(float64(Note(i)))+o.detune(), o.velocity)
		b.voices[i] = v
	}
	return b, nil
}

func (b *Bank) Len() int                { return len(b.voices) }
func (b *Bank) SampleRate() float64     { return b.sampleRate }
func (b *Bank) Frequency(i int) float64 { return b.voices[i].Frequency() }

// RampTo moves voice i's volume to db decibels over d, linearly in gain.
// -Inf silences the voice.
func (b *Bank) RampTo(i int, db float64, d time.Duration) {
	n := int(math.Round(d.Seconds() * b.sampleRate))
	b.mu.Lock()
	b.voices[i].volume.RampTo(core.DBToLinear(db), n)
	b.mu.Unlock()
}

// Volume returns voice i's current volume in dB as of the last rendered sample.
func (b *Bank) Volume(i int) float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return core.LinearToDB(b.voices[i].volume.Value())
}

// TargetVolume returns the dB value voice i is ramping toward.
func (b *Bank) TargetVolume(i int) float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return core.LinearToDB(b.voices[i].volume.Target())
}

// Read renders len(p)/FrameSize frames of the mixed bank.
func (b *Bank) Read(p []byte) (int, error) {
	frames := len(p) / FrameSize
	if frames == 0 {
		return 0, nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for f := 0; f < frames; f++ {
		var s float64
		for _, v := range b.voices {
			s += v.next()
		}
		putStereoF32(p, f, softSat(s))
	}
	return frames * FrameSize, nil
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	o := i * FrameSize
	for c := 0; c < ChannelCount; c++ {
		buf[o+c*4] = byte(v)
		buf[o+c*4+1] = byte(v >> 8)
		buf[o+c*4+2] = byte(v >> 16)
		buf[o+c*4+3] = byte(v >> 24)
	}
}

// softSat is a cubic soft clipper: near-linear for small signals, flat at
// ±2/3 beyond ±1.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 2.0 / 3.0
	}
	if x < -1.0 {
		return -2.0 / 3.0
	}
	return x - x*x*x/3.0
}
