// internal/state/game_state.go
package state

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/gfx/ebitengfx"
	"go-space-shooter/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameState — состояние игры
type GameState struct {
	sm      *StateMachine
	session *Session
}

func NewGameState(sm *StateMachine) *GameState {
	return &GameState{sm: sm, session: sm.Session()}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	game := g.session.Game

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		if err := game.SaveTo(g.session.SavePath); err != nil {
			g.session.Logger.Error().Err(err).Msg("save failed")
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF9):
		if err := game.LoadFrom(g.session.SavePath); err != nil {
			g.session.Logger.Error().Err(err).Msg("load failed")
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		game.ShowHitboxes = !game.ShowHitboxes
	}

	if game.GameOver() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			game.Reset()
		}
		return
	}
	game.Update(deltaTime, readInput())
}

// readInput собирает ввод игрока с клавиатуры.
func readInput() system.PlayerInput {
	var in system.PlayerInput
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		in.MoveX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		in.MoveX++
	}
	in.Fire = ebiten.IsKeyPressed(ebiten.KeySpace)
	return in
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.session.Game.Draw(ebitengfx.NewCanvas(screen, nil))
}

func (g *GameState) Exit() {}
