package sketch

import (
	"fmt"
	"math"
	"time"
)

// Renderer draws a scene through its camera.
type Renderer interface {
	Render(s *Scene)
}

// VoiceRamper is the audio side of the loop: one voice per grid row whose
// volume can be ramped toward a decibel target.
type VoiceRamper interface {
	Len() int
	RampTo(voice int, db float64, d time.Duration)
}

// State is everything one run owns.
type State struct {
	Grid   *Grid
	Scene  *Scene
	Orbit  *OrbitControls
	Voices VoiceRamper
}

// NewState builds the mover grid, adds every box to the scene and attaches
// orbit controls to the scene camera. rng seeds each mover's noise source.
func NewState(scene *Scene, voices VoiceRamper, rng *Rand) (*State, error) {
	if voices.Len() != NumMovers {
		return nil, fmt.Errorf("state: %d voices for %d mover rows", voices.Len(), NumMovers)
	}
	grid, err := NewGrid(NumMovers, NumColumns, func(i, j int) *Mover {
		m := NewMover(
			float64(i+MoverOriginX),
			0,
			float64(j+MoverOriginZ),
			float64(i)*MoverPhaseStep,
			NewNoiseSource(rng.Int63()),
		)
		scene.Add(m.Box)
		return m
	})
	if err != nil {
		return nil, fmt.Errorf("state: %w", err)
	}
	return &State{
		Grid:   grid,
		Scene:  scene,
		Orbit:  NewOrbitControls(scene),
		Voices: voices,
	}, nil
}

// Loop is the per-frame driver. Frame does nothing until Start and after Stop.
type Loop struct {
	state    *State
	renderer Renderer
	running  bool
	delta    float64
	frames   uint64
}

func NewLoop(state *State, r Renderer) *Loop {
	return &Loop{state: state, renderer: r}
}

func (l *Loop) Start()        { l.running = true }
func (l *Loop) Stop()         { l.running = false }
func (l *Loop) Running() bool { return l.running }

func (l *Loop) State() *State  { return l.state }
func (l *Loop) Delta() float64 { return l.delta }
func (l *Loop) Frames() uint64 { return l.frames }

// Frame advances one animation frame of dt seconds and draws it. It reports
// whether the frame ran.
func (l *Loop) Frame(dt float64) bool {
	if !l.running {
		return false
	}
	l.update(dt)
	l.render()
	l.frames++
	return true
}

func (l *Loop) update(dt float64) {
	s := l.state
	s.Orbit.Update()

	// The interval boundary has no action attached; only the wrap is kept.
	l.delta += dt
	if l.delta > TickInterval {
		l.delta = math.Mod(l.delta, TickInterval)
	}

	for i := 0; i < s.Grid.Voices(); i++ {
		lead := s.Grid.At(i, 0)
		s.Voices.RampTo(i, TargetVolume(lead.Y, lead.Amplitude.Y()), VolumeRamp)
	}

	s.Grid.Each(func(m *Mover) { m.Update() })
}

func (l *Loop) render() {
	l.state.Grid.Each(func(m *Mover) { m.Display() })
	if l.renderer != nil {
		l.renderer.Render(l.state.Scene)
	}
}
