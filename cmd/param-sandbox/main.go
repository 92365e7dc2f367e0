// Command param-sandbox is an interactive terminal playground for parameter presets
package main

import (
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"

	"github.com/lixenwraith/gameparam/audio"
	"github.com/lixenwraith/gameparam/preset"
	"github.com/lixenwraith/gameparam/status"
)

//go:embed default.yaml
var defaultPreset []byte

const redrawInterval = 100 * time.Millisecond

func main() {
	cfg, err := loadConfig(os.Args[1:], nil, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	// tcell owns stdout; keep log lines out of the UI
	logFile, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	p, err := loadPreset(cfg.Preset)
	if err != nil {
		log.Fatalf("Failed to load preset: %v", err)
	}
	bundle, err := preset.Build(p)
	if err != nil {
		log.Fatalf("Failed to build preset: %v", err)
	}
	log.Printf("Loaded %d parameters: %v", len(bundle.Names()), bundle.Names())

	tracker := status.NewTracker()

	var fb *audio.Feedback
	if cfg.Audio {
		var player *audio.SpeakerPlayer
		fb, player, err = newFeedback(cfg)
		if err != nil {
			// Non-fatal, sandbox can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer player.Close()
		}
	}

	if cfg.MetricsAddr != "" {
		reg, err := newRegistry(tracker)
		if err != nil {
			log.Fatalf("Failed to register metrics: %v", err)
		}
		srv, err := serveMetrics(cfg.MetricsAddr, reg)
		if err != nil {
			log.Fatalf("Failed to serve metrics: %v", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.Printf("Metrics server shutdown failed: %v", err)
			}
		}()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	crashScreen = screen
	defer func() {
		if r := recover(); r != nil {
			handleCrash(r)
		}
	}()
	defer screen.Fini()

	sb := NewSandbox(bundle, tracker, fb, cfg.Step)
	defer sb.Close()

	run(screen, sb)
	log.Printf("Exited cleanly")
}

// loadPreset reads path, or the built-in preset when path is empty
func loadPreset(path string) (*preset.Preset, error) {
	if path == "" {
		return preset.Parse(defaultPreset)
	}
	return preset.Load(path)
}

// newFeedback opens the speaker and builds tone feedback from cfg
func newFeedback(cfg config) (*audio.Feedback, *audio.SpeakerPlayer, error) {
	wave, err := audio.ParseWave(cfg.Wave)
	if err != nil {
		return nil, nil, err
	}
	acfg := audio.DefaultConfig()
	acfg.Volume = cfg.Volume
	acfg.Wave = wave

	player, err := audio.NewSpeakerPlayer(beep.SampleRate(acfg.SampleRate), redrawInterval)
	if err != nil {
		return nil, nil, err
	}
	fb, err := audio.NewFeedback(player, acfg)
	if err != nil {
		player.Close()
		return nil, nil, err
	}
	return fb, player, nil
}

// run drives the event loop until the sandbox asks to quit
func run(screen tcell.Screen, sb *Sandbox) {
	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	goSafe(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			events <- ev
		}
	})

	sb.Draw(screen)
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !sb.HandleKey(ev) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
			sb.Draw(screen)

		case <-ticker.C:
			sb.Draw(screen)
		}
	}
}
