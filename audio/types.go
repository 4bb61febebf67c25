package audio

// Cue is a short synthesized sound tied to a run event
type Cue int

const (
	CueClick Cue = iota // Overlay choice
	CueXP               // Orb collected
	CueLevelUp
	CueHit // Hull damage
	CueDeath
	CueShot // Weapon discharge, throttled
	cueCount
)

var cueNames = [cueCount]string{"click", "xp", "levelup", "hit", "death", "shot"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

// tone describes a single enveloped note
type tone struct {
	freq    float64
	seconds float64
	wave    WaveType
}

var cueTones = [cueCount]tone{
	CueClick:   {520, 0.08, WaveSquare},
	CueXP:      {740, 0.10, WaveTriangle},
	CueLevelUp: {320, 0.30, WaveSaw},
	CueHit:     {140, 0.20, WaveSquare},
	CueDeath:   {80, 0.50, WaveSaw},
	CueShot:    {220, 0.06, WaveSquare},
}
