// internal/ui/kill_counter.go
package ui

import (
	"fmt"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/gfx"
)

// KillCounter подписывается на события уничтожения и считает сбитых врагов.
// Метеориты и корабли, ушедшие за край экрана, не засчитываются.
type KillCounter struct {
	X, Y    int
	Meteors int
	Ships   int
	UFOs    int
}

func NewKillCounter(x, y int) *KillCounter {
	return &KillCounter{X: x, Y: y}
}

// Subscribe registers the counter for every kill event.
func (k *KillCounter) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.MeteorDestroyed, k)
	d.Subscribe(event.EnemyDestroyed, k)
	d.Subscribe(event.UFODestroyed, k)
}

func (k *KillCounter) Unsubscribe(d *event.Dispatcher) {
	d.Unsubscribe(event.MeteorDestroyed, k)
	d.Unsubscribe(event.EnemyDestroyed, k)
	d.Unsubscribe(event.UFODestroyed, k)
}

// OnEvent обрабатывает события, на которые подписан счётчик.
func (k *KillCounter) OnEvent(e event.Event) {
	info, ok := e.Data.(event.KillInfo)
	if !ok || info.Cause == event.CauseOffScreen {
		return
	}
	switch e.Type {
	case event.MeteorDestroyed:
		k.Meteors++
	case event.EnemyDestroyed:
		k.Ships++
	case event.UFODestroyed:
		k.UFOs++
	}
}

func (k *KillCounter) Total() int { return k.Meteors + k.Ships + k.UFOs }

func (k *KillCounter) Reset() {
	k.Meteors, k.Ships, k.UFOs = 0, 0, 0
}

func (k *KillCounter) Draw(canvas gfx.Canvas) {
	text := fmt.Sprintf("METEORS %d  SHIPS %d  UFO %d", k.Meteors, k.Ships, k.UFOs)
	canvas.DrawText(text, k.X, k.Y, config.TextLightColor)
}
