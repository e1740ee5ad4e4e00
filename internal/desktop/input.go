//go:build !android

package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"movers/internal/sketch"
)

// Input tracks edge-triggered keys and buttons between polls, plus pointer
// motion and scroll for the orbit controls.
type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool

	lastX, lastY float64
	haveCursor   bool
	scroll       float64
}

func NewInput(window *glfw.Window) *Input {
	in := &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
	// Scroll has no polling API.
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		in.scroll += yoff
	})
	return in
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// CursorPos returns the cursor in framebuffer pixels, which differ from
// window coordinates on high-DPI displays.
func CursorPos(window *glfw.Window, fbW, fbH int) (float64, float64) {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 {
		return cx, cy
	}
	return cx * float64(fbW) / float64(winW), cy * float64(fbH) / float64(winH)
}

// DriveOrbit feeds this frame's pointer input to the orbit controls: left
// drag rotates, right drag pans, scroll dollies.
func (in *Input) DriveOrbit(window *glfw.Window, orbit *sketch.OrbitControls, fbW, fbH int) {
	x, y := CursorPos(window, fbW, fbH)
	dx, dy := x-in.lastX, y-in.lastY
	if !in.haveCursor {
		dx, dy = 0, 0
		in.haveCursor = true
	}
	in.lastX, in.lastY = x, y

	switch {
	case window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press:
		orbit.Rotate(dx, dy)
	case window.GetMouseButton(glfw.MouseButtonRight) == glfw.Press:
		orbit.Pan(dx, dy)
	}
	if in.scroll != 0 {
		orbit.Dolly(in.scroll)
		in.scroll = 0
	}
}
