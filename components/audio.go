package components

import (
	cfg "github.com/automoto/gravibox/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised by gameplay systems, drained by UpdateAudio
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
