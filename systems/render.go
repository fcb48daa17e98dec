package systems

import (
	"image/color"

	"github.com/automoto/gravibox/components"
	cfg "github.com/automoto/gravibox/config"
	"github.com/automoto/gravibox/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp    = &ebiten.DrawImageOptions{}
	playerImg *ebiten.Image
)

// DrawBackground clears the screen and marks the floor and ceiling planes
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	planeColor := color.RGBA{60, 60, 80, 255}
	vector.DrawFilledRect(screen, 0, 0, width, 2, planeColor, false)
	vector.DrawFilledRect(screen, 0, height-2, width, 2, planeColor, false)
}

// DrawPlayer renders the player square with its flip rotation
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	obj := components.Object.Get(entry)

	// Lazy build the square texture
	if playerImg == nil {
		size := int(cfg.Player.Size)
		playerImg = ebiten.NewImage(size, size)
		playerImg.Fill(cfg.Player.Color)
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(-obj.W/2, -obj.H/2)
	drawOp.GeoM.Rotate(player.Rotation)
	drawOp.GeoM.Translate(obj.X+obj.W/2, obj.Y+obj.H/2)
	screen.DrawImage(playerImg, drawOp)
}

// DrawObstacles renders every live obstacle rectangle
func DrawObstacles(e *ecs.ECS, screen *ebiten.Image) {
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		vector.DrawFilledRect(screen,
			float32(obj.X), float32(obj.Y),
			float32(obj.W), float32(obj.H),
			cfg.Obstacle.Color, false)
	})
}

// DrawParticles renders flip-burst particles with opacity proportional to
// remaining life
func DrawParticles(e *ecs.ECS, screen *ebiten.Image) {
	base := cfg.Particle.Color
	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		particle := components.Particle.Get(entry)
		alpha := particle.Life
		if alpha > 1 {
			alpha = 1
		}
		if alpha <= 0 {
			return
		}
		faded := color.RGBA{
			R: uint8(float64(base.R) * alpha),
			G: uint8(float64(base.G) * alpha),
			B: uint8(float64(base.B) * alpha),
			A: uint8(255 * alpha),
		}
		half := particle.Size / 2
		vector.DrawFilledRect(screen,
			float32(particle.Position.X-half), float32(particle.Position.Y-half),
			float32(particle.Size), float32(particle.Size),
			faded, false)
	})
}
