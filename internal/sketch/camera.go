package sketch

import "github.com/go-gl/mathgl/mgl32"

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	FOV    float64 // vertical, degrees
	Aspect float64 // width / height
	Near   float64
	Far    float64

	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
}

func NewCamera(aspect float64) *Camera {
	return &Camera{
		FOV:      CameraFOV,
		Aspect:   aspect,
		Near:     CameraNear,
		Far:      CameraFar,
		Position: mgl32.Vec3{0, 0, CameraDistance},
		Up:       mgl32.Vec3{0, 1, 0},
	}
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(
		mgl32.DegToRad(float32(c.FOV)),
		float32(c.Aspect),
		float32(c.Near),
		float32(c.Far),
	)
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

// Basis returns the camera's right and up axes in world space.
func (c *Camera) Basis() (right, up mgl32.Vec3) {
	forward := c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward)
	return right, up
}
