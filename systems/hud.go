package systems

import (
	"fmt"

	cfg "github.com/automoto/gravibox/config"
	"github.com/automoto/gravibox/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the live score and the best score
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	run := GetRun(e)
	if run == nil {
		return
	}

	width := float64(screen.Bounds().Dx())
	margin := cfg.HUD.Margin
	face := fonts.Bold.Get()

	text.Draw(screen, fmt.Sprintf("SCORE %d", int(run.Score)), face,
		int(margin), int(margin)+16, cfg.HUD.TextColor)

	best := fmt.Sprintf("BEST %d", run.Best)
	bestWidth := len(best) * 12 // Approximate width for the bold face
	text.Draw(screen, best, face,
		int(width-float64(bestWidth)-margin), int(margin)+16, cfg.HUD.BestColor)
}
