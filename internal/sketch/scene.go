package sketch

import "github.com/go-gl/mathgl/mgl32"

// Box is the rendered form of a mover: a cube of edge Size at Position.
type Box struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Size     float32
}

type Fog struct {
	Color   mgl32.Vec3
	Density float32 // exponential-squared
}

type DirectionalLight struct {
	Color     mgl32.Vec3
	Intensity float32
	Position  mgl32.Vec3
}

// Direction points from the origin toward the light.
func (l DirectionalLight) Direction() mgl32.Vec3 {
	return l.Position.Normalize()
}

type AmbientLight struct {
	Color     mgl32.Vec3
	Intensity float32
}

type Material struct {
	Specular  mgl32.Vec3
	Shininess float32
}

// GridHelper is the flat reference grid on the XZ plane.
type GridHelper struct {
	Size        float32
	Divisions   int
	CenterColor mgl32.Vec3
	LineColor   mgl32.Vec3
}

// Lines returns the grid as line-list vertices, six floats each
// (x, y, z, r, g, b). The centre lines use CenterColor.
func (g GridHelper) Lines() []float32 {
	step := g.Size / float32(g.Divisions)
	half := g.Size / 2
	center := g.Divisions / 2
	buf := make([]float32, 0, (g.Divisions+1)*4*6)
	for i := 0; i <= g.Divisions; i++ {
		k := -half + float32(i)*step
		c := g.LineColor
		if i == center {
			c = g.CenterColor
		}
		buf = append(buf,
			-half, 0, k, c[0], c[1], c[2],
			half, 0, k, c[0], c[1], c[2],
			k, 0, -half, c[0], c[1], c[2],
			k, 0, half, c[0], c[1], c[2],
		)
	}
	return buf
}

// Surface is the render target size in framebuffer pixels.
type Surface struct {
	Width, Height int
}

type Scene struct {
	Background mgl32.Vec3
	Camera     *Camera
	Fog        Fog
	Sun        DirectionalLight
	Ambient    AmbientLight
	Material   Material
	Grid       GridHelper
	Surface    Surface

	boxes []*Box
}

func NewScene(width, height int) *Scene {
	s := &Scene{
		Background: HexColor(BackgroundColor),
		Camera:     NewCamera(1),
		Fog: Fog{
			Color:   HexColor(FogColor),
			Density: FogDensity,
		},
		Sun: DirectionalLight{
			Color:     HexColor(SunColor),
			Intensity: SunIntensity,
			Position:  SunPosition,
		},
		Ambient: AmbientLight{
			Color:     HexColor(AmbientColor),
			Intensity: AmbientIntensity,
		},
		Material: Material{
			Specular:  HexColor(MaterialSpecular),
			Shininess: MaterialShininess,
		},
		Grid: GridHelper{
			Size:        GridSize,
			Divisions:   GridDivisions,
			CenterColor: HexColor(GridCenterColor),
			LineColor:   HexColor(GridLineColor),
		},
	}
	s.Resize(width, height)
	return s
}

func (s *Scene) Add(b *Box) {
	s.boxes = append(s.boxes, b)
}

func (s *Scene) Boxes() []*Box { return s.boxes }

// Resize matches the surface and the camera aspect to a new framebuffer size.
// Non-positive sizes (a minimized window) are ignored.
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Surface = Surface{Width: width, Height: height}
	s.Camera.Aspect = float64(width) / float64(height)
}

// HexColor converts 0xRRGGBB to a 0..1 RGB vector.
func HexColor(v uint32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32((v>>16)&0xff) / 255,
		float32((v>>8)&0xff) / 255,
		float32(v&0xff) / 255,
	}
}
