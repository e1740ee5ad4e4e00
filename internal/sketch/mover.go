package sketch

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Mover is one animated box. Only Y moves; X and Z are fixed at construction.
type Mover struct {
	X, Y, Z float64

	// Phase advances by Velocity every Update. Only the y components feed
	// the motion.
	Phase     mgl64.Vec3
	Velocity  mgl64.Vec3
	Amplitude mgl64.Vec3

	Box   *Box
	noise *NoiseSource
}

func NewMover(x, y, z, offset float64, noise *NoiseSource) *Mover {
	return &Mover{
		X:         x,
		Y:         y,
		Z:         z,
		Phase:     mgl64.Vec3{0, offset, 0},
		Velocity:  MoverVelocity,
		Amplitude: MoverAmplitude,
		Box: &Box{
			Position: mgl32.Vec3{float32(x), float32(y), float32(z)},
			Color:    MoverBaseColor,
			Size:     MoverBoxSize,
		},
		noise: noise,
	}
}

// Update samples noise at the current phase, then advances the phase and
// recomputes the height.
func (m *Mover) Update() {
	perl := m.noise.Sample(m.Phase.Y(), m.Amplitude.Y()) * NoiseScale
	m.Phase = m.Phase.Add(m.Velocity)
	m.Y = math.Sin(m.Phase.Y())*m.Amplitude.Y() + perl
}

// Display copies the position into the box and recolors it from the height.
// The color channels are not clamped.
func (m *Mover) Display() {
	m.Box.Position = mgl32.Vec3{float32(m.X), float32(m.Y), float32(m.Z)}
	m.Box.Color = mgl32.Vec3{float32(m.Y / 10), float32(m.Y), 0.4}
}

func (m *Mover) Noise() *NoiseSource { return m.noise }
