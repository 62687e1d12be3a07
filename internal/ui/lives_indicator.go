// internal/ui/lives_indicator.go
package ui

import (
	"strconv"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/gfx"
	"go-space-shooter/pkg/render"
)

const lostLifeDim = 0.3

// LivesIndicator отображает жизни игрока рядом квадратов.
type LivesIndicator struct {
	X, Y float64
}

func NewLivesIndicator(x, y float64) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// Draw рисует по квадрату на каждую жизнь, потерянные тусклее.
func (i *LivesIndicator) Draw(canvas gfx.Canvas, lives, maxLives int) {
	step := config.LivesBoxSize + config.LivesBoxSpacer
	lost := render.DarkenColor(config.LivesColor, lostLifeDim)
	for j := 0; j < maxLives; j++ {
		clr := lost
		if j < lives {
			clr = config.LivesColor
		}
		canvas.StrokeRect(i.X+float64(j)*step, i.Y, config.LivesBoxSize, config.LivesBoxSize, clr)
	}
	textX := int(i.X + float64(maxLives)*step)
	canvas.DrawText(strconv.Itoa(lives)+"/"+strconv.Itoa(maxLives), textX, int(i.Y+config.LivesBoxSize), config.TextLightColor)
}
