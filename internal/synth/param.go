package synth

// Param is a per-sample control value with linear ramps, advanced on the
// audio clock by Next.
type Param struct {
	value     float64
	target    float64
	step      float64
	remaining int
}

// RampTo schedules a linear move to target over n samples, starting from the
// current value. n <= 0 jumps immediately.
func (p *Param) RampTo(target float64, n int) {
	p.target = target
	if n <= 0 {
		p.value = target
		p.remaining = 0
		return
	}
	p.step = (target - p.value) / float64(n)
	p.remaining = n
}

// Next advances one sample and returns the new value. The last step lands
// exactly on the target.
func (p *Param) Next() float64 {
	if p.remaining > 0 {
		p.remaining--
		if p.remaining == 0 {
			p.value = p.target
		} else {
			p.value += p.step
		}
	}
	return p.value
}

func (p *Param) Value() float64  { return p.value }
func (p *Param) Target() float64 { return p.target }
func (p *Param) Ramping() bool   { return p.remaining > 0 }
