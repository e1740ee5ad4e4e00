package sketch

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Grid shape: one row per voice, NumColumns movers per row.
const (
	NumMovers  = 36
	NumColumns = NumMovers / 2
)

// Mover placement.
const (
	MoverOriginX   = -20
	MoverOriginZ   = -10
	MoverPhaseStep = 0.25 // phase offset per voice row
	MoverBoxSize   = 0.5
	NoiseScale     = 3.0
)

// Mover motion. Constant for the whole run.
var (
	MoverVelocity  = mgl64.Vec3{0.1, 0.01, 0.01}
	MoverAmplitude = mgl64.Vec3{0.5, 2.5, 0.5}
	MoverBaseColor = mgl32.Vec3{0.2, 0.2, 0.2}
)

// Loop timing and volume mapping.
const (
	TickInterval = 0.5 // seconds
	VolumeRamp   = 10 * time.Millisecond
	GainClampMin = 0.0
	GainClampMax = 3.0 // wider than the [-1,1] remap range; kept as tuned
	MaxFrameStep = 0.1
)

// Camera.
const (
	CameraFOV      = 75.0 // degrees, vertical
	CameraNear     = 0.1
	CameraFar      = 1000.0
	CameraDistance = 25.0
)

// Scene dressing.
const (
	BackgroundColor   = 0xdfdfdf
	FogColor          = 0xffffff
	FogDensity        = 0.021
	SunColor          = 0xffffff
	SunIntensity      = 1.0
	AmbientColor      = 0xffffff
	AmbientIntensity  = 0.5
	GridSize          = 1000
	GridDivisions     = 100
	GridCenterColor   = 0x444444
	GridLineColor     = 0x888888
	MaterialShininess = 30
	MaterialSpecular  = 0x111111
)

// SunPosition is where the directional light sits; it shines toward the origin.
var SunPosition = mgl32.Vec3{-1, 2, 4}

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "movers"
)

// Overlay start button, in framebuffer pixels.
const (
	StartButtonWidth  = 220
	StartButtonHeight = 72
)

// Config holds the run-time choices made on the command line.
type Config struct {
	Seed       uint64
	Width      int
	Height     int
	Fullscreen bool
}

func DefaultConfig() Config {
	return Config{
		Width:  WindowWidth,
		Height: WindowHeight,
	}
}
