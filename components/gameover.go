package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// GameOverData stores the current state of the game over menu
type GameOverData struct {
	SelectedOption GameOverOption
	FinalScore     int
	Best           int
	NewBest        bool

	// Overlay fade-in
	Fade      *gween.Tween
	FadeAlpha float64
}

// GameOver is the component type for game over menu state
var GameOver = donburi.NewComponentType[GameOverData]()
