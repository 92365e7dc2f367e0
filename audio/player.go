package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player queues streamers for playback
type Player interface {
	Play(s beep.Streamer)
}

// SpeakerPlayer plays through the system audio device
type SpeakerPlayer struct {
	mu     sync.Mutex
	closed bool
}

// NewSpeakerPlayer initializes the speaker; buffer sets output latency
func NewSpeakerPlayer(rate beep.SampleRate, buffer time.Duration) (*SpeakerPlayer, error) {
	if rate <= 0 {
		return nil, ErrInvalidRate
	}
	if err := speaker.Init(rate, rate.N(buffer)); err != nil {
		return nil, err
	}
	return &SpeakerPlayer{}, nil
}

// Play mixes s into the speaker output
func (p *SpeakerPlayer) Play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	speaker.Play(s)
}

// Close drops pending sounds and releases the device
func (p *SpeakerPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Clear()
	speaker.Close()
}
