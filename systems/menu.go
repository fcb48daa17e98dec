package systems

import (
	cfg "github.com/automoto/gravibox/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates the menu keyboard handler. Pointer input goes
// through the ebitenui widgets; this covers keyboard-only starts.
func NewUpdateMenu(startRun func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			startRun()
		}
	}
}
