package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/parameter"
)

func drain(s beep.Streamer) (samples int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		samples += n
		if !ok {
			return samples, peak
		}
	}
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveTriangle, WaveNoise} {
		osc := NewOscillator(440, 50*time.Millisecond, wave, rate)
		n, peak := drain(osc)
		assert.Equal(t, rate.N(50*time.Millisecond), n, "wave %d", wave)
		assert.LessOrEqual(t, peak, 1.0, "wave %d", wave)
		assert.NoError(t, osc.Err())
	}
}

func TestSquareWaveValues(t *testing.T) {
	osc := NewOscillator(220, 10*time.Millisecond, WaveSquare, beep.SampleRate(44100))
	samples := make([][2]float64, 64)
	n, ok := osc.Stream(samples)
	require.True(t, ok)
	for i := 0; i < n; i++ {
		assert.Contains(t, []float64{-1, 1}, samples[i][0])
	}
}

func TestEnvelopePeakAndSilence(t *testing.T) {
	rate := beep.SampleRate(48000)
	osc := NewOscillator(440, 300*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 200*time.Millisecond, 20*time.Millisecond, 0.25, rate)

	n, peak := drain(env)
	assert.Equal(t, rate.N(300*time.Millisecond), n)
	assert.InDelta(t, 0.25, peak, 0.01)

	// Past duration the envelope is silent
	tail := NewEnvelope(NewOscillator(440, 300*time.Millisecond, WaveSquare, rate), 200*time.Millisecond, 20*time.Millisecond, 0.25, rate)
	skip := make([][2]float64, rate.N(210*time.Millisecond))
	tail.Stream(skip)
	_, after := drain(tail)
	assert.Zero(t, after)
}

func TestCueStreamers(t *testing.T) {
	for c := CueClick; c < cueCount; c++ {
		s := CueStreamer(c, sampleRate)
		require.NotNil(t, s, c.String())
		n, peak := drain(s)
		want := sampleRate.N(seconds(cueTones[c].seconds) + parameter.AudioTail)
		assert.Equal(t, want, n, c.String())
		assert.LessOrEqual(t, peak, parameter.AudioPeakGain+1e-9, c.String())
	}
	assert.Nil(t, CueStreamer(cueCount, sampleRate))
	assert.Equal(t, "unknown", Cue(-1).String())
}

func TestCacheReusesBuffer(t *testing.T) {
	c := newCueCache(sampleRate)
	a, _ := drain(c.get(CueXP))
	b, _ := drain(c.get(CueXP))
	assert.Equal(t, a, b)
	assert.Nil(t, c.get(Cue(99)))
}

func TestShotThrottle(t *testing.T) {
	p := NewPlayer(DefaultConfig(), zerolog.Nop())
	clock := time.Unix(100, 0)
	p.now = func() time.Time { return clock }

	assert.True(t, p.admit(CueShot))
	clock = clock.Add(50 * time.Millisecond)
	assert.False(t, p.admit(CueShot))
	assert.True(t, p.admit(CueHit), "other cues are not throttled")
	clock = clock.Add(parameter.AudioShotThrottle)
	assert.True(t, p.admit(CueShot))
}

func TestSFXToggle(t *testing.T) {
	p := NewPlayer(DefaultConfig(), zerolog.Nop())
	p.SetSettings(false, true)
	assert.False(t, p.admit(CueClick))
}

func TestMusicSteps(t *testing.T) {
	p := NewPlayer(DefaultConfig(), zerolog.Nop())

	step, ok := p.advanceMusic(0.016)
	require.True(t, ok)
	assert.Equal(t, 0, step)

	_, ok = p.advanceMusic(1.0)
	assert.False(t, ok)
	step, ok = p.advanceMusic(0.25)
	require.True(t, ok)
	assert.Equal(t, 1, step)

	p.SetSettings(true, false)
	_, ok = p.advanceMusic(5)
	assert.False(t, ok)
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(DefaultConfig(), zerolog.Nop())
	assert.False(t, p.Play(CueClick))
	assert.False(t, p.UpdateMusic(2))
	p.SetVolume(3)
	assert.Equal(t, 1.0, p.cfg.Volume)
	p.Handle(event.GameEvent{Type: event.EventLevelUp})
	p.Close()
}

func TestDisabledInitSkipsSpeaker(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	p := NewPlayer(cfg, zerolog.Nop())
	require.NoError(t, p.Init())
	assert.False(t, p.Play(CueClick))
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		name string
		ev   event.GameEvent
		want Cue
		ok   bool
	}{
		{"shot", event.GameEvent{Type: event.EventShot}, CueShot, true},
		{"xp", event.GameEvent{Type: event.EventXPCollected}, CueXP, true},
		{"level", event.GameEvent{Type: event.EventLevelUp}, CueLevelUp, true},
		{"choice", event.GameEvent{Type: event.EventChoiceResolved}, CueClick, true},
		{"hit", event.GameEvent{Type: event.EventPlayerHit, Payload: &event.PlayerHitPayload{Amount: 5}}, CueHit, true},
		{"absorbed", event.GameEvent{Type: event.EventPlayerHit, Payload: &event.PlayerHitPayload{Absorbed: true}}, 0, false},
		{"death", event.GameEvent{Type: event.EventRunEnded, Payload: &event.RunEndedPayload{Died: true}}, CueDeath, true},
		{"abandon", event.GameEvent{Type: event.EventRunEnded, Payload: &event.RunEndedPayload{}}, 0, false},
		{"kill", event.GameEvent{Type: event.EventEnemyKilled}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CueFor(tt.ev)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
