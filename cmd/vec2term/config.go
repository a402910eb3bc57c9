package main

import (
	"flag"
	"time"

	"github.com/pkg/errors"
)

type config struct {
	debug bool
	mute  bool
	tick  time.Duration
	speed float64 // chaser speed in world units (columns) per second
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("vec2term", flag.ContinueOnError)
	fs.BoolVar(&cfg.debug, "debug", false, "Write debug log to logs/vec2term.log")
	fs.BoolVar(&cfg.mute, "mute", false, "Disable the catch tone")
	fs.DurationVar(&cfg.tick, "tick", 16*time.Millisecond, "Frame interval")
	fs.Float64Var(&cfg.speed, "speed", 8, "Chaser speed in columns per second")

	if err := fs.Parse(args); err != nil {
		return config{}, errors.Wrap(err, "parse flags")
	}
	if cfg.tick <= 0 {
		return config{}, errors.Errorf("tick must be positive, got %v", cfg.tick)
	}
	if cfg.speed < 0 {
		return config{}, errors.Errorf("speed must not be negative, got %g", cfg.speed)
	}
	return cfg, nil
}
