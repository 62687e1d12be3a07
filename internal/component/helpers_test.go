package component

import (
	"image/color"

	"go-space-shooter/internal/gfx"
	"go-space-shooter/pkg/utils"
)

type fakeTexture struct{ name string }

func (fakeTexture) Size() (int, int) { return 64, 64 }

type spriteCall struct {
	tex        gfx.Texture
	x, y, w, h float64
	rotation   float64
}

type recordingCanvas struct {
	sprites []spriteCall
}

func (c *recordingCanvas) DrawSprite(tex gfx.Texture, x, y, w, h, rotation float64) {
	c.sprites = append(c.sprites, spriteCall{tex, x, y, w, h, rotation})
}

func (c *recordingCanvas) StrokeRect(x, y, w, h float64, clr color.Color) {}

func (c *recordingCanvas) DrawText(s string, x, y int, clr color.Color) {}

// stubPlayer is a PlayerCollider with a fixed body rect and no bullets.
type stubPlayer struct {
	body      utils.Rect
	bodyCalls int
}

func (p *stubPlayer) CheckCollisionBullet(r utils.Rect) bool { return false }

func (p *stubPlayer) CheckCollisionPlayer(r utils.Rect) bool {
	p.bodyCalls++
	return p.body.Intersects(r)
}

func (p *stubPlayer) Position() (float64, float64) { return p.body.Center() }

const eps = 1e-9

func near(a, b float64) bool {
	d := a - b
	return d < eps && d > -eps
}
