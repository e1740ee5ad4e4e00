package sketch

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const polarEpsilon = 1e-6

type spherical struct {
	radius, theta, phi float64
}

func toSpherical(v mgl32.Vec3) spherical {
	x, y, z := float64(v[0]), float64(v[1]), float64(v[2])
	r := math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		return spherical{}
	}
	return spherical{
		radius: r,
		theta:  math.Atan2(x, z),
		phi:    math.Acos(math.Max(-1, math.Min(1, y/r))),
	}
}

func (s spherical) vec() mgl32.Vec3 {
	sp := math.Sin(s.phi) * s.radius
	return mgl32.Vec3{
		float32(sp * math.Sin(s.theta)),
		float32(math.Cos(s.phi) * s.radius),
		float32(sp * math.Cos(s.theta)),
	}
}

// OrbitControls rotates, pans and dollies the scene camera around a target.
// Input methods queue deltas in surface pixels; Update applies them once per
// frame. With a non-zero DampingFactor the deltas decay over several frames.
type OrbitControls struct {
	Target mgl32.Vec3

	RotateSpeed   float64
	ZoomSpeed     float64
	PanSpeed      float64
	MinDistance   float64
	MaxDistance   float64
	DampingFactor float64
	EnableZoom    bool

	scene *Scene

	delta     spherical // theta/phi only
	scale     float64
	panOffset mgl32.Vec3
}

func NewOrbitControls(scene *Scene) *OrbitControls {
	return &OrbitControls{
		Target:      scene.Camera.Target,
		RotateSpeed: 1,
		ZoomSpeed:   1,
		PanSpeed:    1,
		MaxDistance: math.Inf(1),
		EnableZoom:  true,
		scene:       scene,
		scale:       1,
	}
}

func (o *OrbitControls) viewHeight() float64 {
	if h := o.scene.Surface.Height; h > 0 {
		return float64(h)
	}
	return 1
}

// Rotate orbits by a pointer drag of (dx, dy) pixels. A drag of the full
// surface height turns a full circle.
func (o *OrbitControls) Rotate(dx, dy float64) {
	h := o.viewHeight()
	o.delta.theta -= 2 * math.Pi * dx / h * o.RotateSpeed
	o.delta.phi -= 2 * math.Pi * dy / h * o.RotateSpeed
}

// Pan moves the target in the camera plane so the scene follows the pointer.
func (o *OrbitControls) Pan(dx, dy float64) {
	cam := o.scene.Camera
	dist := float64(cam.Position.Sub(o.Target).Len())
	dist *= math.Tan(cam.FOV / 2 * math.Pi / 180)
	h := o.viewHeight()

	right, up := cam.Basis()
	left := float32(-2 * dx * dist / h * o.PanSpeed)
	upward := float32(2 * dy * dist / h * o.PanSpeed)
	o.panOffset = o.panOffset.Add(right.Mul(left)).Add(up.Mul(upward))
}

// Dolly zooms by scroll steps; positive steps move the camera closer.
func (o *OrbitControls) Dolly(steps float64) {
	if !o.EnableZoom || steps == 0 {
		return
	}
	o.scale *= math.Pow(math.Pow(0.95, o.ZoomSpeed), steps)
}

// Update applies queued input and repositions the camera.
func (o *OrbitControls) Update() {
	cam := o.scene.Camera
	s := toSpherical(cam.Position.Sub(o.Target))

	f := 1.0
	if o.DampingFactor > 0 {
		f = o.DampingFactor
	}
	s.theta += o.delta.theta * f
	s.phi += o.delta.phi * f
	s.phi = math.Max(polarEpsilon, math.Min(math.Pi-polarEpsilon, s.phi))
	s.radius *= o.scale
	s.radius = math.Max(o.MinDistance, math.Min(o.MaxDistance, s.radius))
	o.Target = o.Target.Add(o.panOffset.Mul(float32(f)))

	cam.Position = o.Target.Add(s.vec())
	cam.Target = o.Target

	if o.DampingFactor > 0 {
		keep := 1 - o.DampingFactor
		o.delta.theta *= keep
		o.delta.phi *= keep
		o.panOffset = o.panOffset.Mul(float32(keep))
	} else {
		o.delta = spherical{}
		o.panOffset = mgl32.Vec3{}
	}
	o.scale = 1
}
