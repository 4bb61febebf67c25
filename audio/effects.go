package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	o := &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
	if wave == WaveNoise {
		o.noise = vmath.NewFastRand(0)
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps up over the attack then decays exponentially toward silence
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	total    int
	peak     float64
}

const envelopeFloor = 0.0001

// NewEnvelope shapes s to peak gain over duration, silent after it
func NewEnvelope(s beep.Streamer, duration, attack time.Duration, peak float64, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	return &envelope{streamer: s, attack: att, total: total, peak: peak}
}

func (e *envelope) gain() float64 {
	p := e.position
	switch {
	case p >= e.total:
		return 0
	case p < e.attack:
		return envelopeFloor * math.Pow(e.peak/envelopeFloor, float64(p)/float64(e.attack))
	default:
		span := e.total - e.attack
		if span <= 0 {
			return e.peak
		}
		return e.peak * math.Pow(envelopeFloor/e.peak, float64(p-e.attack)/float64(span))
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := e.gain()
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, zero volume becomes silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Note renders one enveloped tone plus its release tail at unity master gain
func Note(freq, secs float64, wave WaveType, rate beep.SampleRate) beep.Streamer {
	d := seconds(secs)
	osc := NewOscillator(freq, d+parameter.AudioTail, wave, rate)
	return NewEnvelope(osc, d, parameter.AudioAttack, parameter.AudioPeakGain, rate)
}

// CueStreamer returns a fresh streamer for cue, nil when unknown
func CueStreamer(c Cue, rate beep.SampleRate) beep.Streamer {
	if c < 0 || c >= cueCount {
		return nil
	}
	t := cueTones[c]
	return Note(t.freq, t.seconds, t.wave, rate)
}

// MusicNote returns the background melody note at step
func MusicNote(step int, rate beep.SampleRate) beep.Streamer {
	freq := parameter.MusicPattern[step%len(parameter.MusicPattern)]
	return Note(freq, parameter.MusicNoteLength.Seconds(), WaveSine, rate)
}
