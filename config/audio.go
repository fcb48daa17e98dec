package config

// SoundID identifies a synthesized sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundFlip
	SoundHit
	SoundMenuNavigate
	SoundMenuSelect
	SoundNewBest
)

// AudioConfig contains audio system configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Audio is the global audio configuration
var Audio AudioConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
	}
}
