package audio

import (
	"fmt"
	"math"
	"time"
)

const toneAttack = 5 * time.Millisecond

// ToneMap converts values to frequencies on an exponential scale
// Every Span units above Ref doubles the frequency
type ToneMap struct {
	Base    float64 // Frequency at Ref in Hz
	Ref     float64
	Span    float64
	MinFreq float64
	MaxFreq float64
}

// DefaultToneMap centers A4 at zero with one octave per ten units
func DefaultToneMap() ToneMap {
	return ToneMap{
		Base:    440,
		Ref:     0,
		Span:    10,
		MinFreq: 110,
		MaxFreq: 1760,
	}
}

// Frequency maps v to Hz clamped to [MinFreq, MaxFreq]
func (m ToneMap) Frequency(v float64) float64 {
	if math.IsNaN(v) || m.Span == 0 {
		return m.clamp(m.Base)
	}
	return m.clamp(m.Base * math.Exp2((v-m.Ref)/m.Span))
}

func (m ToneMap) clamp(f float64) float64 {
	if m.MaxFreq > 0 && f > m.MaxFreq {
		f = m.MaxFreq
	}
	if f < m.MinFreq {
		f = m.MinFreq
	}
	return f
}

// Config controls tone feedback
type Config struct {
	Enabled    bool
	Volume     float64 // Linear gain in [0, 1]
	SampleRate int
	Duration   time.Duration
	Wave       WaveType
	Tones      ToneMap
}

// DefaultConfig returns the default feedback configuration
func DefaultConfig() *Config {
	return &Config{
		Enabled:    true,
		Volume:     0.5,
		SampleRate: 44100,
		Duration:   80 * time.Millisecond,
		Wave:       WaveSine,
		Tones:      DefaultToneMap(),
	}
}

// Validate clamps volume and rejects unusable rates
func (c *Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRate, c.SampleRate)
	}
	c.Volume = min(max(c.Volume, 0), 1)
	return nil
}
