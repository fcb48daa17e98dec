package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Position
	X    float64 // Fixed horizontal position
	Size float64 // Square side length

	// Physics
	Gravity      float64 // Gravity magnitude (sign comes from the run state)
	MaxFallSpeed float64 // Clamp for |vertical speed|

	// Visual
	FlipTweenDuration float64 // Seconds for the rotation tween after a flip
	Color             color.RGBA
}

// ObstacleConfig contains obstacle generator configuration values
type ObstacleConfig struct {
	Width          float64
	MinHeight      float64 // Inclusive
	MaxHeight      float64 // Exclusive
	BaseSpeed      float64 // Initial horizontal speed for every obstacle
	SpeedIncrement float64 // Per-tick speed gain, applied per obstacle

	// Spawn throttle
	MinGap float64 // Inclusive
	MaxGap float64 // Exclusive

	Color color.RGBA
}

// ParticleConfig contains flip-burst particle configuration values
type ParticleConfig struct {
	BurstCount int     // Particles per gravity flip
	MaxSpeed   float64 // Velocity drawn uniformly from [-MaxSpeed, MaxSpeed) on both axes
	MinDecay   float64 // Life lost per tick, drawn uniformly
	MaxDecay   float64
	MinSize    float64
	MaxSize    float64
	Color      color.RGBA
}

// ScoreConfig contains scoring configuration values
type ScoreConfig struct {
	PerTick float64 // Score gained per running tick (display shows the floor)
}

// HUDConfig contains in-run HUD configuration values
type HUDConfig struct {
	Margin    float64
	TextColor color.RGBA
	BestColor color.RGBA
}

// MenuConfig contains main menu screen configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TitleY          float64
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	NewBestColor      color.RGBA
	TitleY            float64
	ScoreY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
	FadeDuration      float64 // Seconds for the overlay fade-in
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Obstacle ObstacleConfig
var Particle ParticleConfig
var Score ScoreConfig
var HUD HUDConfig
var Menu MenuConfig
var GameOver GameOverConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	DarkBg       = color.RGBA{R: 20, G: 20, B: 30, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 400,
	}

	Player = PlayerConfig{
		X:    120,
		Size: 30,

		Gravity:      0.5,
		MaxFallSpeed: 10.0,

		FlipTweenDuration: 0.25,
		Color:             White,
	}

	Obstacle = ObstacleConfig{
		Width:          25,
		MinHeight:      100,
		MaxHeight:      200,
		BaseSpeed:      4.0,
		SpeedIncrement: 0.003,

		MinGap: 250,
		MaxGap: 500,

		Color: Orange,
	}

	Particle = ParticleConfig{
		BurstCount: 15,
		MaxSpeed:   3.0,
		MinDecay:   0.02,
		MaxDecay:   0.04,
		MinSize:    2,
		MaxSize:    5,
		Color:      Yellow,
	}

	Score = ScoreConfig{
		PerTick: 0.1,
	}

	HUD = HUDConfig{
		Margin:    10,
		TextColor: White,
		BestColor: DarkBlue,
	}

	Menu = MenuConfig{
		BackgroundColor: DarkBg,
		TitleColor:      White,
		TitleY:          90,
	}

	GameOver = GameOverConfig{
		BackgroundColor:   DarkBg,
		TitleColor:        Red,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		NewBestColor:      Yellow,
		TitleY:            110,
		ScoreY:            170,
		MenuStartY:        230,
		MenuItemHeight:    24,
		MenuItemGap:       8,
		MenuOptions:       []string{"Retry", "Menu"},
		FadeDuration:      0.5,
	}
}
