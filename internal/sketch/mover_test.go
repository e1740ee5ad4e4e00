package sketch

import (
	"math"
	"testing"
)

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestMoverUpdate(t *testing.T) {
	const seed = 42
	for _, offset := range []float64{0, 0.25, 4.5, 8.75} {
		m := NewMover(-20, 0, -10, offset, NewNoiseSource(seed))
		twin := NewNoiseSource(seed)
		perl := twin.Sample(offset, m.Amplitude.Y()) * NoiseScale

		m.Update()

		if !approx(m.Phase.Y(), offset+0.01, 1e-12) {
			t.Fatalf("offset %v: phase.y = %v, want %v", offset, m.Phase.Y(), offset+0.01)
		}
		if !approx(m.Phase.X(), 0.1, 1e-12) || !approx(m.Phase.Z(), 0.01, 1e-12) {
			t.Fatalf("offset %v: phase = %v, want x=0.1 z=0.01", offset, m.Phase)
		}
		want := math.Sin(offset+0.01)*m.Amplitude.Y() + perl
		if !approx(m.Y, want, 1e-12) {
			t.Fatalf("offset %v: y = %v, want %v", offset, m.Y, want)
		}
		if m.X != -20 || m.Z != -10 {
			t.Fatalf("offset %v: x/z moved to %v/%v", offset, m.X, m.Z)
		}
	}
}

func TestMoverUpdateIsDeterministicPerSeed(t *testing.T) {
	a := NewMover(0, 0, 0, 1.5, NewNoiseSource(7))
	b := NewMover(0, 0, 0, 1.5, NewNoiseSource(7))
	for i := 0; i < 200; i++ {
		a.Update()
		b.Update()
		if a.Y != b.Y {
			t.Fatalf("step %d: %v != %v", i, a.Y, b.Y)
		}
	}
}

func TestMoverDisplay(t *testing.T) {
	m := NewMover(3, 0, -4, 0, NewNoiseSource(1))
	if m.Box.Color != MoverBaseColor {
		t.Fatalf("initial color = %v, want %v", m.Box.Color, MoverBaseColor)
	}

	// Heights above 1 give color channels above 1; they are kept as is.
	m.Y = 12
	m.Display()

	if m.Box.Position[0] != 3 || m.Box.Position[1] != 12 || m.Box.Position[2] != -4 {
		t.Fatalf("position = %v", m.Box.Position)
	}
	c := m.Box.Color
	if !approx(float64(c[0]), 1.2, 1e-6) || c[1] != 12 || !approx(float64(c[2]), 0.4, 1e-6) {
		t.Fatalf("color = %v, want (1.2, 12, 0.4)", c)
	}
}

func TestNoiseSource(t *testing.T) {
	a := NewNoiseSource(99)
	b := NewNoiseSource(99)
	c := NewNoiseSource(100)
	if a.Seed() != 99 {
		t.Fatalf("Seed() = %d", a.Seed())
	}

	differs := false
	for i := 0; i < 100; i++ {
		x := 0.37 + float64(i)*0.113
		y := 2.5
		va, vb := a.Sample(x, y), b.Sample(x, y)
		if va != vb {
			t.Fatalf("same seed gave %v and %v at %v", va, vb, x)
		}
		if va < -2 || va > 2 {
			t.Fatalf("sample %v out of range at %v", va, x)
		}
		if c.Sample(x, y) != va {
			differs = true
		}
	}
	if !differs {
		t.Fatal("different seeds produced identical fields")
	}
}
