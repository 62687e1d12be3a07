// internal/ui/score_indicator.go
package ui

import (
	"fmt"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/gfx"
	"go-space-shooter/pkg/render"
)

const scoreFlashTime = 0.3

// ScoreIndicator хранит и отображает счёт. Это приёмник очков для систем.
type ScoreIndicator struct {
	X, Y  int
	score int
	flash float64 // Подсветка после начисления очков
}

func NewScoreIndicator(x, y int) *ScoreIndicator {
	return &ScoreIndicator{X: x, Y: y}
}

// IncreaseScore adds points and briefly highlights the counter.
func (i *ScoreIndicator) IncreaseScore(points int) {
	i.score += points
	i.flash = scoreFlashTime
}

func (i *ScoreIndicator) Score() int { return i.score }

func (i *ScoreIndicator) SetScore(score int) {
	i.score = score
	i.flash = 0
}

func (i *ScoreIndicator) Update(deltaTime float64) {
	if i.flash > 0 {
		i.flash -= deltaTime
	}
}

func (i *ScoreIndicator) Draw(canvas gfx.Canvas) {
	clr := render.LerpColor(config.TextLightColor, config.TextAccentColor, i.flash/scoreFlashTime)
	canvas.DrawText(fmt.Sprintf("SCORE %06d", i.score), i.X, i.Y, clr)
}
