package audio

// Config holds runtime audio preferences
type Config struct {
	// Enabled gates speaker initialization
	Enabled bool
	// Volume scales the master gain, 0.0-1.0
	Volume float64
	SFX    bool
	Music  bool
}

// DefaultConfig returns full volume with both channels on
func DefaultConfig() Config {
	return Config{Enabled: true, Volume: 1, SFX: true, Music: true}
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
