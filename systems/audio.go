package systems

import (
	"bytes"
	"math"
	"math/rand"
	"sync"

	"github.com/automoto/gravibox/components"
	cfg "github.com/automoto/gravibox/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes.
// Every sound is synthesized at init; there are no audio assets.
var (
	globalAudioContext *audio.Context
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	sfxCache           map[cfg.SoundID][]byte
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		sfxCache = map[cfg.SoundID][]byte{
			cfg.SoundFlip:         synthSweep(520, 880, 0.07, 0.5),
			cfg.SoundHit:          synthNoise(0.14, 0.6),
			cfg.SoundMenuNavigate: synthSweep(440, 440, 0.04, 0.3),
			cfg.SoundMenuSelect:   synthSweep(660, 660, 0.06, 0.4),
			cfg.SoundNewBest:      synthSweep(440, 1320, 0.25, 0.5),
		}
	})
}

// UpdateAudio drains the pending SFX queue and starts a player per sound
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFXNow(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := getOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMuted silences or restores all sound effects
func SetMuted(muted bool) {
	globalMuted = muted
}

// IsMuted returns whether sound is currently muted
func IsMuted() bool {
	return globalMuted
}

func playSFXNow(sound cfg.SoundID) {
	if globalMuted || globalAudioContext == nil {
		return
	}
	data, ok := sfxCache[sound]
	if !ok {
		return
	}
	player, err := globalAudioContext.NewPlayer(bytes.NewReader(data))
	if err != nil {
		return
	}
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// getOrCreateAudio returns the singleton Audio component, creating if needed
func getOrCreateAudio(e *ecs.ECS) *components.AudioData {
	if _, ok := components.Audio.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(ent, components.AudioData{})
	}

	ent, _ := components.Audio.First(e.World)
	return components.Audio.Get(ent)
}

// synthSweep renders a square wave sweeping linearly between two pitches,
// with a linear fade-out envelope, as 16-bit LE stereo PCM.
func synthSweep(fromHz, toHz float64, seconds, amplitude float64) []byte {
	sampleRate := float64(cfg.Audio.SampleRate)
	n := int(seconds * sampleRate)
	out := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := fromHz + (toHz-fromHz)*progress
		phase += freq / sampleRate
		v := amplitude * (1 - progress)
		if math.Mod(phase, 1) >= 0.5 {
			v = -v
		}
		writeSample(out[i*4:], v)
	}
	return out
}

// synthNoise renders decaying white noise as 16-bit LE stereo PCM
func synthNoise(seconds, amplitude float64) []byte {
	sampleRate := float64(cfg.Audio.SampleRate)
	n := int(seconds * sampleRate)
	out := make([]byte, n*4)

	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		v := amplitude * (1 - progress) * (rand.Float64()*2 - 1)
		writeSample(out[i*4:], v)
	}
	return out
}

// writeSample writes one stereo sample frame at b, v in [-1, 1]
func writeSample(b []byte, v float64) {
	s := int16(v * math.MaxInt16)
	b[0] = byte(s)
	b[1] = byte(s >> 8)
	b[2] = byte(s)
	b[3] = byte(s >> 8)
}
