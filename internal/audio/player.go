package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/arcade-vanilla/internal/config"
)

// Player plays cues on the system speaker. A nil or uninitialized Player
// ignores Play, so callers need no checks when sound is disabled.
type Player struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	volume      float64
	initialized bool
	cache       map[Cue]*beep.Buffer
}

// NewPlayer creates a player from the sound configuration.
// The speaker is not opened until Init.
func NewPlayer(cfg config.SoundConfig) *Player {
	return &Player{
		sampleRate: beep.SampleRate(cfg.SampleRate),
		volume:     cfg.Volume,
		cache:      make(map[Cue]*beep.Buffer),
	}
}

// Init opens the speaker and pre-renders every cue.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	for c := range cueNotes {
		buf, err := p.render(c)
		if err != nil {
			return err
		}
		p.cache[c] = buf
	}

	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// render synthesizes a cue into a replayable buffer.
func (p *Player) render(c Cue) (*beep.Buffer, error) {
	s, err := Build(c, p.sampleRate, p.volume)
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: p.sampleRate, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf, nil
}

// Play starts a cue without waiting for it to finish.
func (p *Player) Play(c Cue) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	buf, ok := p.cache[c]
	if !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
