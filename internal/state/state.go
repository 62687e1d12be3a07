// internal/state/state.go
package state

import (
	"go-space-shooter/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Session — то, что разделяют все состояния одного запуска.
type Session struct {
	Game     *app.Game
	SavePath string
	Logger   zerolog.Logger
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	session *Session
}

// NewStateMachine создаёт машину состояний без начального состояния
func NewStateMachine(session *Session) *StateMachine {
	return &StateMachine{session: session}
}

func (sm *StateMachine) Session() *Session { return sm.session }

func (sm *StateMachine) Current() State { return sm.current }

// SetState выходит из текущего состояния и входит в новое
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
