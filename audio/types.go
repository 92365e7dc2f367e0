// Package audio plays short tones that follow parameter values
package audio

import (
	"errors"
	"fmt"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

var waveNames = map[string]WaveType{
	"sine":     WaveSine,
	"square":   WaveSquare,
	"saw":      WaveSaw,
	"triangle": WaveTriangle,
}

// ParseWave maps a wave name to its WaveType
func ParseWave(name string) (WaveType, error) {
	w, ok := waveNames[name]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownWave, name)
	}
	return w, nil
}

// Sentinel errors
var (
	ErrUnknownWave = errors.New("unknown wave")
	ErrInvalidRate = errors.New("sample rate must be positive")
)
