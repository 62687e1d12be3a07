// internal/ui/toast.go
package ui

import (
	"path/filepath"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/gfx"
)

const toastTime = 1.5

// Toast коротко показывает, что игра сохранена или загружена.
type Toast struct {
	X, Y  int
	text  string
	timer float64
}

func NewToast(x, y int) *Toast {
	return &Toast{X: x, Y: y}
}

func (t *Toast) Subscribe(d *event.Dispatcher) {
	d.Subscribe(event.GameSaved, t)
	d.Subscribe(event.GameLoaded, t)
}

func (t *Toast) Unsubscribe(d *event.Dispatcher) {
	d.Unsubscribe(event.GameSaved, t)
	d.Unsubscribe(event.GameLoaded, t)
}

// OnEvent запоминает сообщение; путь к файлу сокращается до имени.
func (t *Toast) OnEvent(e event.Event) {
	path, _ := e.Data.(string)
	switch e.Type {
	case event.GameSaved:
		t.show("SAVED " + filepath.Base(path))
	case event.GameLoaded:
		t.show("LOADED " + filepath.Base(path))
	}
}

func (t *Toast) show(text string) {
	t.text = text
	t.timer = toastTime
}

// Text returns the message on screen, or "" once it has faded.
func (t *Toast) Text() string {
	if t.timer <= 0 {
		return ""
	}
	return t.text
}

func (t *Toast) Update(deltaTime float64) {
	if t.timer > 0 {
		t.timer -= deltaTime
	}
}

func (t *Toast) Draw(canvas gfx.Canvas) {
	if text := t.Text(); text != "" {
		canvas.DrawText(text, t.X, t.Y, config.TextAccentColor)
	}
}
