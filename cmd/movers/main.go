// Command movers is a generative audio-visual sketch: a grid of boxes bobbing
// on Perlin noise, each row singing through its own sawtooth voice.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"movers/internal/desktop"
	"movers/internal/sketch"
)

const seedEnv = "MOVERS_SEED"

// initLogger installs a text slog handler on stderr as the default logger.
func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	slog.SetDefault(slog.New(h))
}

// resolveSeed picks the run seed: the -seed flag if given, then $MOVERS_SEED,
// then the clock.
func resolveSeed(flagSeed uint64, flagSet bool, env string, now time.Time) (uint64, error) {
	if flagSet {
		return flagSeed, nil
	}
	if env != "" {
		v, err := strconv.ParseUint(env, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", seedEnv, err)
		}
		return v, nil
	}
	return uint64(now.UnixNano()), nil
}

func main() {
	cfg := sketch.DefaultConfig()
	seed := flag.Uint64("seed", 0, "seed for noise and detune (default: $"+seedEnv+" or the clock)")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	flag.BoolVar(&cfg.Fullscreen, "fullscreen", false, "use the primary monitor's video mode")
	debug := flag.Bool("debug", false, "debug logging with source locations")
	flag.Parse()

	initLogger(*debug)

	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	var err error
	cfg.Seed, err = resolveSeed(*seed, seedSet, os.Getenv(seedEnv), time.Now())
	if err != nil {
		slog.Error("bad seed", "err", err)
		os.Exit(2)
	}

	if err := desktop.RunDesktop(cfg); err != nil {
		slog.Error("movers", "err", err)
		os.Exit(1)
	}
}
