package sketch

// Rect is an axis-aligned rectangle in framebuffer pixels, origin top-left.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Overlay is the startup screen: one centred start button over the whole
// surface. It is shown until the first start gesture.
type Overlay struct {
	Button  Rect
	Surface Surface
	visible bool
}

func NewOverlay(width, height int) *Overlay {
	o := &Overlay{visible: true}
	o.Layout(width, height)
	return o
}

// Layout recentres the button for a new surface size.
func (o *Overlay) Layout(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	o.Surface = Surface{Width: width, Height: height}
	o.Button = Rect{
		X: float64(width-StartButtonWidth) / 2,
		Y: float64(height-StartButtonHeight) / 2,
		W: StartButtonWidth,
		H: StartButtonHeight,
	}
}

func (o *Overlay) Visible() bool { return o.visible }

// Hit reports whether (x, y) lands on the start button of a visible overlay.
func (o *Overlay) Hit(x, y float64) bool {
	return o.visible && o.Button.Contains(x, y)
}

// Dismiss hides the overlay. It reports false if it was already gone.
func (o *Overlay) Dismiss() bool {
	if !o.visible {
		return false
	}
	o.visible = false
	return true
}
