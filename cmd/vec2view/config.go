package main

import (
	"flag"

	"github.com/pkg/errors"
)

type config struct {
	debug         bool
	mute          bool
	width, height int
	speed         float64 // follower speed in px/s
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("vec2view", flag.ContinueOnError)
	fs.BoolVar(&cfg.debug, "debug", false, "Write debug log to logs/vec2view.log")
	fs.BoolVar(&cfg.mute, "mute", false, "Disable blips")
	fs.IntVar(&cfg.width, "width", 960, "Window width in pixels")
	fs.IntVar(&cfg.height, "height", 640, "Window height in pixels")
	fs.Float64Var(&cfg.speed, "speed", 240, "Follower speed in px/s")

	if err := fs.Parse(args); err != nil {
		return config{}, errors.Wrap(err, "parse flags")
	}
	if cfg.width <= 0 || cfg.height <= 0 {
		return config{}, errors.Errorf("window size must be positive, got %dx%d", cfg.width, cfg.height)
	}
	if cfg.speed < 0 {
		return config{}, errors.Errorf("speed must not be negative, got %g", cfg.speed)
	}
	return cfg, nil
}
