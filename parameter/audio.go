package parameter

import "time"

// Audio synthesis
const (
	AudioSampleRate   = 48000
	AudioBufferMs     = 100
	AudioMasterGain   = 0.12
	AudioPeakGain     = 0.25
	AudioAttack       = 20 * time.Millisecond
	AudioTail         = 50 * time.Millisecond
	AudioShotThrottle = 120 * time.Millisecond

	// MusicStepInterval is the time between background melody notes
	MusicStepInterval = 1200 * time.Millisecond
	MusicNoteLength   = 250 * time.Millisecond
)

// MusicPattern is the looping background melody in Hz
var MusicPattern = [...]float64{220, 247, 196, 247, 261, 247}
