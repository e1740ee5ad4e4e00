//go:build !android

package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"movers/internal/sketch"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

const (
	instanceFloats = 6 // offset xyz, color rgb
	lineFloats     = 6 // pos xyz, color rgb
	overlayFloats  = 6 // pos xy, color rgba
)

// Renderer draws a sketch.Scene: the reference grid as lines, every box as
// one instanced cube, and the startup overlay as flat triangles.
type Renderer struct {
	boxProg     uint32
	boxVAO      uint32
	cubeVBO     uint32
	instanceVBO uint32
	boxU        map[string]int32
	instances   []float32

	lineProg  uint32
	lineVAO   uint32
	lineVBO   uint32
	lineU     map[string]int32
	lineCount int32
	lineGrid  sketch.GridHelper

	overlayProg uint32
	overlayVAO  uint32
	overlayVBO  uint32
	overlayU    map[string]int32
	overlayBuf  []float32
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{}
	var err error
	if r.boxProg, err = linkProgram(boxVertSrc, boxFragSrc); err != nil {
		return nil, fmt.Errorf("box program: %w", err)
	}
	if r.lineProg, err = linkProgram(lineVertSrc, lineFragSrc); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("line program: %w", err)
	}
	if r.overlayProg, err = linkProgram(overlayVertSrc, overlayFragSrc); err != nil {
		r.Destroy()
		return nil, fmt.Errorf("overlay program: %w", err)
	}

	r.initBoxes()
	r.initLines()
	r.initOverlay()
	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	return r, nil
}

func (r *Renderer) initBoxes() {
	gl.GenVertexArrays(1, &r.boxVAO)
	gl.BindVertexArray(r.boxVAO)

	cube := cubeVertices()
	gl.GenBuffers(1, &r.cubeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cube)*4, gl.Ptr(&cube[0]), gl.STATIC_DRAW)
	stride := int32(6 * 4)
	// aPos (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	// aNormal (vec3)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))

	gl.GenBuffers(1, &r.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)
	stride = int32(instanceFloats * 4)
	// aOffset (vec3), per instance
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, glOffset(0))
	gl.VertexAttribDivisor(2, 1)
	// aColor (vec3), per instance
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 3, gl.FLOAT, false, stride, glOffset(3*4))
	gl.VertexAttribDivisor(3, 1)

	r.boxU = uniforms(r.boxProg,
		"uProjection", "uView", "uSize",
		"uLightDir", "uLightColor", "uAmbient", "uSpecular", "uShininess",
		"uFogColor", "uFogDensity",
	)
}

func (r *Renderer) initLines() {
	gl.GenVertexArrays(1, &r.lineVAO)
	gl.BindVertexArray(r.lineVAO)
	gl.GenBuffers(1, &r.lineVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	stride := int32(lineFloats * 4)
	// aPos (vec3)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, glOffset(0))
	// aColor (vec3)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, glOffset(3*4))

	r.lineU = uniforms(r.lineProg, "uProjection", "uView", "uFogColor", "uFogDensity")
}

func (r *Renderer) initOverlay() {
	gl.GenVertexArrays(1, &r.overlayVAO)
	gl.BindVertexArray(r.overlayVAO)
	gl.GenBuffers(1, &r.overlayVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.overlayVBO)
	stride := int32(overlayFloats * 4)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aColor (vec4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))

	r.overlayU = uniforms(r.overlayProg, "uResolution")
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.cubeVBO, r.instanceVBO, r.lineVBO, r.overlayVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.boxVAO, r.lineVAO, r.overlayVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.boxProg, r.lineProg, r.overlayProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

func (r *Renderer) clear(bg mgl32.Vec3, w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(bg[0], bg[1], bg[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Render draws the scene through its camera into the current framebuffer.
func (r *Renderer) Render(s *sketch.Scene) {
	r.clear(s.Background, s.Surface.Width, s.Surface.Height)
	proj := s.Camera.Projection()
	view := s.Camera.View()
	r.drawGrid(s, proj, view)
	r.drawBoxes(s, proj, view)
	gl.BindVertexArray(0)
}

func (r *Renderer) drawGrid(s *sketch.Scene, proj, view mgl32.Mat4) {
	gl.UseProgram(r.lineProg)
	gl.BindVertexArray(r.lineVAO)
	if r.lineCount == 0 || r.lineGrid != s.Grid {
		lines := s.Grid.Lines()
		gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(lines)*4, gl.Ptr(&lines[0]), gl.STATIC_DRAW)
		r.lineCount = int32(len(lines) / lineFloats)
		r.lineGrid = s.Grid
	}
	gl.UniformMatrix4fv(r.lineU["uProjection"], 1, false, &proj[0])
	gl.UniformMatrix4fv(r.lineU["uView"], 1, false, &view[0])
	gl.Uniform3f(r.lineU["uFogColor"], s.Fog.Color[0], s.Fog.Color[1], s.Fog.Color[2])
	gl.Uniform1f(r.lineU["uFogDensity"], s.Fog.Density)
	gl.DrawArrays(gl.LINES, 0, r.lineCount)
}

func (r *Renderer) drawBoxes(s *sketch.Scene, proj, view mgl32.Mat4) {
	boxes := s.Boxes()
	if len(boxes) == 0 {
		return
	}
	r.instances = r.instances[:0]
	for _, b := range boxes {
		r.instances = append(r.instances,
			b.Position[0], b.Position[1], b.Position[2],
			b.Color[0], b.Color[1], b.Color[2],
		)
	}

	gl.UseProgram(r.boxProg)
	gl.BindVertexArray(r.boxVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.instanceVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.instances)*4, gl.Ptr(&r.instances[0]), gl.STREAM_DRAW)

	// Light direction goes to view space, like the normals.
	dir := view.Mul4x1(s.Sun.Direction().Vec4(0)).Vec3().Normalize()
	sun := s.Sun.Color.Mul(s.Sun.Intensity)
	amb := s.Ambient.Color.Mul(s.Ambient.Intensity)
	spec := s.Material.Specular

	gl.UniformMatrix4fv(r.boxU["uProjection"], 1, false, &proj[0])
	gl.UniformMatrix4fv(r.boxU["uView"], 1, false, &view[0])
	gl.Uniform1f(r.boxU["uSize"], boxes[0].Size)
	gl.Uniform3f(r.boxU["uLightDir"], dir[0], dir[1], dir[2])
	gl.Uniform3f(r.boxU["uLightColor"], sun[0], sun[1], sun[2])
	gl.Uniform3f(r.boxU["uAmbient"], amb[0], amb[1], amb[2])
	gl.Uniform3f(r.boxU["uSpecular"], spec[0], spec[1], spec[2])
	gl.Uniform1f(r.boxU["uShininess"], s.Material.Shininess)
	gl.Uniform3f(r.boxU["uFogColor"], s.Fog.Color[0], s.Fog.Color[1], s.Fog.Color[2])
	gl.Uniform1f(r.boxU["uFogDensity"], s.Fog.Density)

	gl.DrawArraysInstanced(gl.TRIANGLES, 0, 36, int32(len(boxes)))
}

// DrawOverlay paints the startup screen: a dimmed backdrop and the start
// button with a play glyph.
func (r *Renderer) DrawOverlay(o *sketch.Overlay, bg mgl32.Vec3, w, h int) {
	r.clear(bg, w, h)

	b := o.Button
	cx, cy := b.X+b.W/2, b.Y+b.H/2
	tri := b.H * 0.22
	buf := r.overlayBuf[:0]
	buf = appendQuad(buf, sketch.Rect{W: float64(w), H: float64(h)}, [4]float32{0.08, 0.08, 0.1, 0.85})
	buf = appendQuad(buf, b, [4]float32{0.95, 0.95, 0.95, 1})
	buf = appendQuad(buf, sketch.Rect{X: b.X + 3, Y: b.Y + 3, W: b.W - 6, H: b.H - 6}, [4]float32{0.15, 0.15, 0.18, 1})
	buf = appendTri(buf,
		[2]float64{cx - tri*0.8, cy - tri},
		[2]float64{cx - tri*0.8, cy + tri},
		[2]float64{cx + tri, cy},
		[4]float32{0.95, 0.95, 0.95, 1},
	)
	r.overlayBuf = buf

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(r.overlayProg)
	gl.BindVertexArray(r.overlayVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.overlayVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(&buf[0]), gl.STREAM_DRAW)
	gl.Uniform2f(r.overlayU["uResolution"], float32(w), float32(h))
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(buf)/overlayFloats))

	gl.Disable(gl.BLEND)
	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
	gl.BindVertexArray(0)
}

func appendTri(buf []float32, a, b, c [2]float64, col [4]float32) []float32 {
	for _, p := range [3][2]float64{a, b, c} {
		buf = append(buf, float32(p[0]), float32(p[1]), col[0], col[1], col[2], col[3])
	}
	return buf
}

func appendQuad(buf []float32, r sketch.Rect, col [4]float32) []float32 {
	tl := [2]float64{r.X, r.Y}
	tr := [2]float64{r.X + r.W, r.Y}
	bl := [2]float64{r.X, r.Y + r.H}
	br := [2]float64{r.X + r.W, r.Y + r.H}
	buf = appendTri(buf, tl, bl, br, col)
	return appendTri(buf, tl, br, tr, col)
}

// cubeVertices returns a unit cube centred on the origin as 36 vertices of
// (x, y, z, nx, ny, nz), counter-clockwise from outside.
func cubeVertices() []float32 {
	faces := [6]struct{ n, u, v mgl32.Vec3 }{
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	}
	corners := [6][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, -1}, {1, 1}, {-1, 1}}
	buf := make([]float32, 0, 36*6)
	for _, f := range faces {
		for _, c := range corners {
			p := f.n.Add(f.u.Mul(c[0])).Add(f.v.Mul(c[1])).Mul(0.5)
			buf = append(buf, p[0], p[1], p[2], f.n[0], f.n[1], f.n[2])
		}
	}
	return buf
}
