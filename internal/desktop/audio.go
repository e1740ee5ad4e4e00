package desktop

import (
	"errors"
	"io"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"movers/internal/synth"
)

const (
	SampleRate   = synth.DefaultSampleRate
	ChannelCount = synth.ChannelCount
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	audioReadyTimeout = 2 * time.Second
)

var errAudioNotReady = errors.New("audio device not ready")

// AudioOutput owns the oto context and the one player that pulls the voice
// bank. A nil *AudioOutput is valid and silent.
type AudioOutput struct {
	ctx    *oto.Context
	ready  chan struct{}
	player oto.Player
}

func InitAudio() (*AudioOutput, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &AudioOutput{ctx: ctx, ready: ready}, nil
}

// Play starts streaming src to the device. The player reads src on its own
// goroutine until Close.
func (a *AudioOutput) Play(src io.Reader) error {
	if a == nil {
		return nil
	}
	select {
	case <-a.ready:
	case <-time.After(audioReadyTimeout):
		return errAudioNotReady
	}
	if a.player != nil {
		a.player.Close()
	}
	a.player = a.ctx.NewPlayer(src)
	a.player.Play()
	return nil
}

func (a *AudioOutput) Close() error {
	if a == nil || a.player == nil {
		return nil
	}
	err := a.player.Close()
	a.player = nil
	return err
}
