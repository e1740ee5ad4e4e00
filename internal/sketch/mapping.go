package sketch

import "github.com/cwbudde/algo-dsp/dsp/core"

// TargetVolume maps a mover height to the voice volume in dB: remap from
// [-ampY/10, ampY] to [-1, 1], clamp to [GainClampMin, GainClampMax], then
// convert the linear gain to decibels. Heights at or below the bottom of the
// clamp map to -Inf.
func TargetVolume(y, ampY float64) float64 {
	m := MapLinear(y, -ampY/10, ampY, -1, 1)
	return GainToDB(core.Clamp(m, GainClampMin, GainClampMax))
}

// GainToDB converts a linear amplitude to decibels (20*log10).
func GainToDB(gain float64) float64 {
	return core.LinearToDB(gain)
}
