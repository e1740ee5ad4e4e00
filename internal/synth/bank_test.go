package synth

import (
	"encoding/binary"
	"math"
	"sync"
	"testing"
	"time"
)

func TestNewBankValidation(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := NewBank(n); err == nil {
			t.Fatalf("NewBank(%d): expected error", n)
		}
	}
}

func TestBankFrequencies(t *testing.T) {
	b, err := NewBank(36, WithDetune(func() float64 { return 0.5 }), WithSampleRate(48000))
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != 36 || b.SampleRate() != 48000 {
		t.Fatalf("len %d rate %v", b.Len(), b.SampleRate())
	}
	for i := 0; i < b.Len(); i++ {
		want := MidiToFrequency(float64(Note(i))) + 0.5
		if got := b.Frequency(i); math.Abs(got-want) > 1e-9 {
			t.Fatalf("voice %d at %v Hz, want %v", i, got, want)
		}
	}
}

func frames(t *testing.T, b *Bank, n int) []float32 {
	t.Helper()
	buf := make([]byte, n*FrameSize)
	got, err := b.Read(buf)
	if err != nil || got != len(buf) {
		t.Fatalf("Read() = %d, %v", got, err)
	}
	out := make([]float32, 0, n)
	for f := 0; f < n; f++ {
		l := math.Float32frombits(binary.LittleEndian.Uint32(buf[f*FrameSize:]))
		r := math.Float32frombits(binary.LittleEndian.Uint32(buf[f*FrameSize+4:]))
		if l != r {
			t.Fatalf("frame %d: left %v right %v", f, l, r)
		}
		out = append(out, l)
	}
	return out
}

func TestBankSilentUntilRamped(t *testing.T) {
	b, err := NewBank(4)
	if err != nil {
		t.Fatal(err)
	}
	for f, s := range frames(t, b, 2048) {
		if s != 0 {
			t.Fatalf("frame %d = %v, want silence", f, s)
		}
	}
}

func TestBankShortRead(t *testing.T) {
	b, err := NewBank(1)
	if err != nil {
		t.Fatal(err)
	}
	if n, err := b.Read(make([]byte, FrameSize-1)); n != 0 || err != nil {
		t.Fatalf("Read(short) = %d, %v", n, err)
	}
}

func TestBankRampTo(t *testing.T) {
	b, err := NewBank(2, WithVelocity(0.5))
	if err != nil {
		t.Fatal(err)
	}
	b.RampTo(0, 0, 10*time.Millisecond)
	if !math.IsInf(b.Volume(0), -1) || b.TargetVolume(0) != 0 {
		t.Fatalf("volume %v target %v", b.Volume(0), b.TargetVolume(0))
	}

	out := frames(t, b, 4410)
	if b.Volume(0) != 0 {
		t.Fatalf("volume after ramp = %v dB, want 0", b.Volume(0))
	}
	if !math.IsInf(b.Volume(1), -1) {
		t.Fatalf("untouched voice at %v dB", b.Volume(1))
	}

	var peak float64
	for _, s := range out {
		peak = math.Max(peak, math.Abs(float64(s)))
		if math.Abs(float64(s)) > 2.0/3.0 {
			t.Fatalf("sample %v beyond the clipper ceiling", s)
		}
	}
	if peak == 0 {
		t.Fatal("ramped voice is silent")
	}

	b.RampTo(0, math.Inf(-1), 0)
	if !math.IsInf(b.Volume(0), -1) {
		t.Fatalf("volume = %v after jump to -Inf", b.Volume(0))
	}
}

func TestBankConcurrentAccess(t *testing.T) {
	b, err := NewBank(8)
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		buf := make([]byte, 256*FrameSize)
		for i := 0; i < 50; i++ {
			b.Read(buf)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			b.RampTo(i%8, -float64(i%40), 10*time.Millisecond)
			b.Volume(i % 8)
		}
	}()
	wg.Wait()
}

func TestSoftSat(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.5, 0.5 - 0.125/3},
		{1, 2.0 / 3.0},
		{5, 2.0 / 3.0},
		{-5, -2.0 / 3.0},
	}
	for _, tt := range tests {
		if got := softSat(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("softSat(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
