package sketch

import "github.com/aquilax/go-perlin"

const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = 3
)

// NoiseSource is a seeded 2D Perlin field. Each mover owns one.
type NoiseSource struct {
	seed int64
	p    *perlin.Perlin
}

func NewNoiseSource(seed int64) *NoiseSource {
	return &NoiseSource{
		seed: seed,
		p:    perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
	}
}

// Sample returns the field value at (a, b), roughly in [-1, 1].
func (n *NoiseSource) Sample(a, b float64) float64 {
	return n.p.Noise2D(a, b)
}

func (n *NoiseSource) Seed() int64 { return n.seed }
