package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// cueCache stores pre-rendered cue buffers
type cueCache struct {
	mu     sync.RWMutex
	format beep.Format
	store  [cueCount]*beep.Buffer
}

func newCueCache(rate beep.SampleRate) *cueCache {
	return &cueCache{format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}}
}

// get returns a streamer over the cached buffer, rendering on first use
func (c *cueCache) get(cue Cue) beep.Streamer {
	if cue < 0 || cue >= cueCount {
		return nil
	}

	c.mu.RLock()
	buf := c.store[cue]
	c.mu.RUnlock()
	if buf == nil {
		c.mu.Lock()
		if buf = c.store[cue]; buf == nil {
			buf = beep.NewBuffer(c.format)
			buf.Append(CueStreamer(cue, c.format.SampleRate))
			c.store[cue] = buf
		}
		c.mu.Unlock()
	}
	return buf.Streamer(0, buf.Len())
}

// preload renders the most frequent cues at init
func (c *cueCache) preload() {
	c.get(CueShot)
	c.get(CueXP)
}
