//go:build !android

// Package desktop runs the sketch in a native window: GLFW for the window and
// input, OpenGL for drawing, oto for sound.
package desktop

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"movers/internal/sketch"
	"movers/internal/synth"
)

// RunDesktop opens the window, shows the start overlay and, after the start
// gesture, drives the sketch once per display refresh until the window closes.
func RunDesktop(cfg sketch.Config) error {
	runtime.LockOSThread()

	window, err := initWindow(cfg)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	slog.Info("window ready",
		"gl", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	audio, err := InitAudio()
	if err != nil {
		slog.Warn("audio init failed, continuing without sound", "err", err)
		audio = nil
	}
	defer audio.Close()

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	fbW, fbH := window.GetFramebufferSize()
	overlay := sketch.NewOverlay(fbW, fbH)
	input := NewInput(window)
	background := sketch.HexColor(sketch.BackgroundColor)

	var loop *sketch.Loop
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		overlay.Layout(w, h)
		if loop != nil {
			loop.State().Scene.Resize(w, h)
		}
	})

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > sketch.MaxFrameStep {
			dt = sketch.MaxFrameStep
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH = window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		if overlay.Visible() {
			cx, cy := CursorPos(window, fbW, fbH)
			clicked := input.JustClicked(window, glfw.MouseButtonLeft) && overlay.Hit(cx, cy)
			space := input.JustPressed(window, glfw.KeySpace)
			enter := input.JustPressed(window, glfw.KeyEnter)
			if !clicked && !space && !enter {
				rend.DrawOverlay(overlay, background, fbW, fbH)
				window.SwapBuffers()
				continue
			}
			overlay.Dismiss()
			loop, err = start(cfg, fbW, fbH, rend, audio)
			if err != nil {
				return err
			}
		}

		input.DriveOrbit(window, loop.State().Orbit, fbW, fbH)
		loop.Frame(dt)
		window.SwapBuffers()
	}

	if loop != nil {
		loop.Stop()
		slog.Info("stopped", "frames", loop.Frames())
	}
	return nil
}

// start performs the one-time setup behind the start gesture: voices first,
// then the scene and movers, then the audio stream.
func start(cfg sketch.Config, w, h int, rend sketch.Renderer, audio *AudioOutput) (*sketch.Loop, error) {
	rng := sketch.NewRand(cfg.Seed)
	bank, err := synth.NewBank(sketch.NumMovers,
		synth.WithSampleRate(SampleRate),
		synth.WithDetune(rng.Float64),
	)
	if err != nil {
		return nil, fmt.Errorf("voices: %w", err)
	}

	scene := sketch.NewScene(w, h)
	state, err := sketch.NewState(scene, bank, rng)
	if err != nil {
		return nil, err
	}

	if err := audio.Play(bank); err != nil {
		slog.Warn("audio stream not started", "err", err)
	}

	loop := sketch.NewLoop(state, rend)
	loop.Start()
	slog.Info("started",
		"seed", cfg.Seed,
		"voices", bank.Len(),
		"movers", state.Grid.Len())
	return loop, nil
}
