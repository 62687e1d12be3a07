// internal/component/bullet.go
package component

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/gamedata"
	"go-space-shooter/internal/gfx"
	"go-space-shooter/pkg/utils"
)

// Bullet — снаряд, летящий строго по вертикали.
// Положительная скорость — вниз, отрицательная — вверх.
type Bullet struct {
	X, Y  float64 // Левый верхний угол
	W, H  float64
	Speed float64
}

// NewBullet creates a bullet whose top-left corner is placed so that it is
// horizontally centred on cx.
func NewBullet(cx, y, w, h, speed float64) *Bullet {
	return &Bullet{X: cx - w/2, Y: y, W: w, H: h, Speed: speed}
}

func (b *Bullet) Update(deltaTime float64) {
	b.Y += b.Speed * deltaTime
}

func (b *Bullet) Rect() utils.Rect {
	return utils.NewRect(b.X, b.Y, b.W, b.H)
}

// OffScreen reports whether the bullet has fully left the playfield.
func (b *Bullet) OffScreen() bool {
	return b.Y+b.H <= 0 || b.Y >= config.PlayfieldBottom
}

func (b *Bullet) Draw(canvas gfx.Canvas, tex gfx.Texture) {
	canvas.DrawSprite(tex, b.X, b.Y, b.W, b.H, 0)
}

func (b *Bullet) Save() gamedata.Document {
	doc := gamedata.New()
	doc.Set("PositionX", b.X)
	doc.Set("PositionY", b.Y)
	return doc
}

// saveBullets and loadBullets are shared by every owner of a bullet list.
func saveBullets(bullets []*Bullet) []gamedata.Document {
	out := make([]gamedata.Document, 0, len(bullets))
	for _, b := range bullets {
		out = append(out, b.Save())
	}
	return out
}

func loadBullets(docs []gamedata.Document, w, h, speed float64) []*Bullet {
	out := make([]*Bullet, 0, len(docs))
	for _, d := range docs {
		x, okX := d.Float("PositionX")
		y, okY := d.Float("PositionY")
		if !okX || !okY {
			continue
		}
		out = append(out, &Bullet{X: x, Y: y, W: w, H: h, Speed: speed})
	}
	return out
}
