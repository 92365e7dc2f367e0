package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
)

// config holds sandbox settings; flags override environment
type config struct {
	Preset      string  `env:"PARAM_SANDBOX_PRESET"`
	Audio       bool    `env:"PARAM_SANDBOX_AUDIO" envDefault:"true"`
	Volume      float64 `env:"PARAM_SANDBOX_VOLUME" envDefault:"0.3"`
	Wave        string  `env:"PARAM_SANDBOX_WAVE" envDefault:"sine"`
	MetricsAddr string  `env:"PARAM_SANDBOX_METRICS_ADDR"`
	LogPath     string  `env:"PARAM_SANDBOX_LOG" envDefault:"param-sandbox.log"`
	Step        float64 `env:"PARAM_SANDBOX_STEP" envDefault:"1"`
}

// loadConfig parses environment then args
func loadConfig(args []string, environ map[string]string, stderr io.Writer) (config, error) {
	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("param-sandbox", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Preset, "preset", cfg.Preset, "YAML preset file (built-in preset if empty)")
	fs.BoolVar(&cfg.Audio, "audio", cfg.Audio, "Play a tone on value changes")
	fs.Float64Var(&cfg.Volume, "volume", cfg.Volume, "Tone volume 0..1")
	fs.StringVar(&cfg.Wave, "wave", cfg.Wave, "Tone wave: sine, square, saw, triangle")
	fs.StringVar(&cfg.MetricsAddr, "metrics", cfg.MetricsAddr, "Serve Prometheus metrics on this address")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "Log file while the terminal is in use")
	fs.Float64Var(&cfg.Step, "step", cfg.Step, "Raw value nudge per key press")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.Step <= 0 {
		return cfg, fmt.Errorf("step must be positive, got %v", cfg.Step)
	}
	return cfg, nil
}
