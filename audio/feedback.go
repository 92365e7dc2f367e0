package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/gameparam/parameter"
)

// Feedback plays a tone whose pitch tracks a value
type Feedback struct {
	player Player
	rate   beep.SampleRate

	mu     sync.RWMutex // Protects config
	config Config

	muted  atomic.Bool
	played atomic.Int64
}

// NewFeedback creates feedback for player; nil cfg uses DefaultConfig
func NewFeedback(player Player, cfg *Config) (*Feedback, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	if err := c.Validate(); err != nil {
		return nil, err
	}
	f := &Feedback{
		player: player,
		rate:   beep.SampleRate(c.SampleRate),
		config: c,
	}
	f.muted.Store(!c.Enabled)
	return f, nil
}

// Play emits one tone for v; returns false when muted
func (f *Feedback) Play(v float64) bool {
	if f.muted.Load() {
		return false
	}
	f.mu.RLock()
	c := f.config
	f.mu.RUnlock()

	f.player.Play(NewTone(c.Tones.Frequency(v), c.Duration, c.Wave, c.Volume, f.rate))
	f.played.Add(1)
	return true
}

// SetVolume changes the gain of later tones
func (f *Feedback) SetVolume(v float64) {
	f.mu.Lock()
	f.config.Volume = min(max(v, 0), 1)
	f.mu.Unlock()
}

// Volume returns the current gain
func (f *Feedback) Volume() float64 {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.config.Volume
}

// ToggleMute toggles mute state, returns true if now enabled
func (f *Feedback) ToggleMute() bool {
	next := !f.muted.Load()
	f.muted.Store(next)
	return !next
}

// IsMuted returns current mute state
func (f *Feedback) IsMuted() bool {
	return f.muted.Load()
}

// Played returns the number of tones emitted
func (f *Feedback) Played() int64 {
	return f.played.Load()
}

// Attach plays a tone on every effective value change of n
func Attach[T parameter.Numeric](f *Feedback, n *parameter.Number[T]) (cancel func()) {
	return n.OnChangedValue(func(next T) {
		f.Play(float64(next))
	})
}
