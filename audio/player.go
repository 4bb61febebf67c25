// Package audio synthesizes run cues and the background melody through the beep speaker
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Player mixes cues onto the speaker
// Every method is a no-op until Init succeeds
type Player struct {
	mu     sync.Mutex
	cfg    Config
	cache  *cueCache
	mixer  *beep.Mixer
	master *masterGain
	log    zerolog.Logger

	initialized bool
	lastShot    time.Time
	musicTimer  float64
	musicStep   int

	now func() time.Time
}

// masterGain scales the mixed output, read under the speaker lock
type masterGain struct {
	streamer beep.Streamer
	gain     float64
}

func (m *masterGain) Stream(samples [][2]float64) (int, bool) {
	n, ok := m.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		samples[i][0] *= m.gain
		samples[i][1] *= m.gain
	}
	return n, ok
}

func (m *masterGain) Err() error { return m.streamer.Err() }

// NewPlayer creates an uninitialized player
func NewPlayer(cfg Config, log zerolog.Logger) *Player {
	cfg.Volume = clampVolume(cfg.Volume)
	mixer := &beep.Mixer{}
	return &Player{
		cfg:    cfg,
		cache:  newCueCache(sampleRate),
		mixer:  mixer,
		master: &masterGain{streamer: mixer, gain: parameter.AudioMasterGain * cfg.Volume},
		log:    log,
		now:    time.Now,
	}
}

// Init opens the speaker
// Failure leaves the player silent and is returned for logging only
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferMs*time.Millisecond)); err != nil {
		p.log.Warn().Err(err).Msg("Audio unavailable, running silent")
		return fmt.Errorf("init speaker: %w", err)
	}
	p.cache.preload()
	speaker.Play(p.master)
	p.initialized = true
	p.log.Info().Int("rate", int(sampleRate)).Float64("volume", p.cfg.Volume).Msg("Audio initialized")
	return nil
}

// Close stops output
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// SetSettings mirrors the persisted sfx and music toggles
func (p *Player) SetSettings(sfx, music bool) {
	p.mu.Lock()
	p.cfg.SFX = sfx
	p.cfg.Music = music
	p.mu.Unlock()
}

// SetVolume updates master volume (0.0-1.0)
func (p *Player) SetVolume(vol float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cfg.Volume = clampVolume(vol)
	if p.initialized {
		speaker.Lock()
		p.master.gain = parameter.AudioMasterGain * p.cfg.Volume
		speaker.Unlock()
	} else {
		p.master.gain = parameter.AudioMasterGain * p.cfg.Volume
	}
}

// admit applies the sfx toggle and the shot throttle
func (p *Player) admit(c Cue) bool {
	if !p.cfg.SFX || c < 0 || c >= cueCount {
		return false
	}
	if c == CueShot {
		now := p.now()
		if now.Sub(p.lastShot) < parameter.AudioShotThrottle {
			return false
		}
		p.lastShot = now
	}
	return true
}

// Play mixes cue in, reports whether it was admitted
func (p *Player) Play(c Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.admit(c) {
		return false
	}
	p.add(p.cache.get(c))
	return true
}

// UpdateMusic advances the melody by dt seconds, reports whether a note started
func (p *Player) UpdateMusic(dt float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return false
	}
	step, ok := p.advanceMusic(dt)
	if ok {
		p.add(MusicNote(step, sampleRate))
	}
	return ok
}

func (p *Player) advanceMusic(dt float64) (int, bool) {
	if !p.cfg.Music {
		return 0, false
	}
	p.musicTimer -= dt
	if p.musicTimer > 0 {
		return 0, false
	}
	step := p.musicStep
	p.musicStep++
	p.musicTimer = parameter.MusicStepInterval.Seconds()
	return step, true
}

func (p *Player) add(s beep.Streamer) {
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// CueFor maps a drained run event to its cue
func CueFor(ev event.GameEvent) (Cue, bool) {
	switch ev.Type {
	case event.EventShot:
		return CueShot, true
	case event.EventXPCollected:
		return CueXP, true
	case event.EventLevelUp:
		return CueLevelUp, true
	case event.EventChoiceResolved:
		return CueClick, true
	case event.EventPlayerHit:
		if p, ok := ev.Payload.(*event.PlayerHitPayload); ok && !p.Absorbed {
			return CueHit, true
		}
	case event.EventRunEnded:
		if p, ok := ev.Payload.(*event.RunEndedPayload); ok && p.Died {
			return CueDeath, true
		}
	}
	return 0, false
}

// Handle plays the cue for ev if it has one
func (p *Player) Handle(ev event.GameEvent) {
	if c, ok := CueFor(ev); ok {
		p.Play(c)
	}
}
