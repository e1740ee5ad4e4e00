package sketch

import "testing"

func TestOverlayLayout(t *testing.T) {
	o := NewOverlay(1280, 720)
	want := Rect{X: 530, Y: 324, W: StartButtonWidth, H: StartButtonHeight}
	if o.Button != want {
		t.Fatalf("button = %+v, want %+v", o.Button, want)
	}

	o.Layout(400, 200)
	if o.Button.X != 90 || o.Button.Y != 64 {
		t.Fatalf("button after layout = %+v", o.Button)
	}
	o.Layout(0, 300)
	if o.Surface != (Surface{Width: 400, Height: 200}) {
		t.Fatalf("zero layout changed surface to %+v", o.Surface)
	}
}

func TestOverlayHitAndDismiss(t *testing.T) {
	o := NewOverlay(1280, 720)
	if !o.Visible() {
		t.Fatal("overlay starts hidden")
	}

	tests := []struct {
		x, y float64
		hit  bool
	}{
		{640, 360, true},
		{530, 324, true},
		{749.9, 395.9, true},
		{750, 360, false},
		{529, 360, false},
		{640, 10, false},
	}
	for _, tt := range tests {
		if got := o.Hit(tt.x, tt.y); got != tt.hit {
			t.Errorf("Hit(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.hit)
		}
	}

	if !o.Dismiss() {
		t.Fatal("first Dismiss() = false")
	}
	if o.Dismiss() {
		t.Fatal("second Dismiss() = true")
	}
	if o.Visible() || o.Hit(640, 360) {
		t.Fatal("dismissed overlay still takes clicks")
	}
}
