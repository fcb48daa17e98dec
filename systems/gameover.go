package systems

import (
	"fmt"

	"github.com/automoto/gravibox/components"
	cfg "github.com/automoto/gravibox/config"
	"github.com/automoto/gravibox/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateGameOver creates an UpdateGameOver system with scene transition
// capability
func NewUpdateGameOver(sceneChanger SceneChanger, createRunScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver, ok := getGameOver(e)
		if !ok {
			return
		}
		input := getOrCreateInput(e)

		// Advance the fade-in overlay
		if gameOver.Fade != nil {
			value, finished := gameOver.Fade.Update(tickSeconds)
			gameOver.FadeAlpha = float64(value)
			if finished {
				gameOver.Fade = nil
			}
		}

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.GameOverMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
		}

		// Handle selection
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				sceneChanger.ChangeScene(createRunScene())
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			sceneChanger.ChangeScene(createMenuScene())
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver, ok := getGameOver(e)
	if !ok {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	// Title
	titleFont := fonts.Title.Get()
	title := "GAME OVER"
	titleWidth := len(title) * 20 // Approximate width for the title face
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	// Final score and best
	menuFont := fonts.Bold.Get()
	scoreLine := fmt.Sprintf("SCORE %d   BEST %d", gameOver.FinalScore, gameOver.Best)
	if gameOver.NewBest {
		scoreLine = fmt.Sprintf("NEW BEST %d", gameOver.FinalScore)
	}
	scoreColor := cfg.GameOver.TextColorNormal
	if gameOver.NewBest {
		scoreColor = cfg.GameOver.NewBestColor
	}
	scoreWidth := len(scoreLine) * 12
	text.Draw(screen, scoreLine, menuFont,
		int((width-float64(scoreWidth))/2), int(cfg.GameOver.ScoreY), scoreColor)

	// Menu options
	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)

		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}

		textWidth := len(option) * 12
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, option, menuFont, x, int(y)+int(cfg.GameOver.MenuItemHeight), textColor)
	}

	// Fade in from black
	if gameOver.FadeAlpha > 0 {
		overlay := cfg.BlackOverlay
		overlay.A = uint8(gameOver.FadeAlpha)
		vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), overlay, false)
	}
}

func getGameOver(e *ecs.ECS) (*components.GameOverData, bool) {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		return nil, false
	}
	return components.GameOver.Get(entry), true
}
