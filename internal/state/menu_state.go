// internal/state/menu_state.go
package state

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/gfx/ebitengfx"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — титульный экран
type MenuState struct {
	sm *StateMachine
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s := m.sm.Session()
		if err := s.Game.LoadFrom(s.SavePath); err != nil {
			s.Logger.Error().Err(err).Msg("load failed")
			return
		}
		m.sm.SetState(NewGameState(m.sm))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	canvas := ebitengfx.NewCanvas(screen, nil)
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	canvas.DrawText("SPACE SHOOTER", cx-45, cy-30, config.TextAccentColor)
	canvas.DrawText("Enter - start    F9 - load save", cx-105, cy, config.TextLightColor)
	canvas.DrawText("Arrows/A-D move, Space fire, P pause, F5 save, H hitboxes", cx-200, cy+30, config.TextLightColor)
}

func (m *MenuState) Exit() {}
