// internal/component/meteor.go
package component

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/gamedata"
	"go-space-shooter/internal/gfx"
	"go-space-shooter/pkg/utils"
)

// MeteorSize is the size class of a meteor. The numeric value is what gets
// persisted as TextureNum.
type MeteorSize int

const (
	MeteorBig   MeteorSize = 1
	MeteorSmall MeteorSize = 2
)

// MeteorSizeFromTextureNum maps a saved TextureNum to a size class.
// Anything other than the big class loads as small.
func MeteorSizeFromTextureNum(num int) MeteorSize {
	if MeteorSize(num) == MeteorBig {
		return MeteorBig
	}
	return MeteorSmall
}

// Dimension returns the side of the square hitbox.
func (s MeteorSize) Dimension() float64 {
	if s == MeteorSmall {
		return config.SmallMeteorSize
	}
	return config.BigMeteorSize
}

// Speed returns the falling speed in pixels per second.
func (s MeteorSize) Speed() float64 {
	if s == MeteorSmall {
		return config.SmallMeteorSpeed
	}
	return config.BigMeteorSpeed
}

func (s MeteorSize) String() string {
	switch s {
	case MeteorBig:
		return "big"
	case MeteorSmall:
		return "small"
	}
	return "unknown"
}

// Meteor — падающий вращающийся метеорит.
type Meteor struct {
	X, Y      float64    // Левый верхний угол
	Rotation  float64    // Градусы
	SpinSpeed float64    // Градусы в секунду
	Size      MeteorSize // Класс размера
	texture   gfx.Texture
}

// NewMeteor places a meteor at x with its bottom edge on the top of the screen.
func NewMeteor(tex gfx.Texture, size MeteorSize, spinSpeed, x float64) *Meteor {
	return &Meteor{
		X:         x,
		Y:         -size.Dimension(),
		SpinSpeed: spinSpeed,
		Size:      size,
		texture:   tex,
	}
}

func (m *Meteor) Update(deltaTime float64) {
	m.Y += m.Size.Speed() * deltaTime
	m.Rotation = utils.WrapDegrees(m.Rotation + m.SpinSpeed*deltaTime)
}

func (m *Meteor) Rect() utils.Rect {
	d := m.Size.Dimension()
	return utils.NewRect(m.X, m.Y, d, d)
}

// OffScreen reports whether the meteor reached the bottom of the playfield.
func (m *Meteor) OffScreen() bool {
	return m.Y >= config.PlayfieldBottom
}

func (m *Meteor) Draw(canvas gfx.Canvas) {
	d := m.Size.Dimension()
	canvas.DrawSprite(m.texture, m.X, m.Y, d, d, m.Rotation)
}

// Destroy drops the borrowed texture. The meteor must not be used afterwards.
func (m *Meteor) Destroy() {
	m.texture = nil
}

func (m *Meteor) Save() gamedata.Document {
	doc := gamedata.New()
	doc.Set("TextureNum", int(m.Size))
	doc.Set("PositionX", m.X)
	doc.Set("PositionY", m.Y)
	doc.Set("Rotation", m.Rotation)
	doc.Set("SpinSpeed", m.SpinSpeed)
	return doc
}

// Load restores the scalar state. Missing keys keep their current value.
func (m *Meteor) Load(doc gamedata.Document) {
	if v, ok := doc.Float("PositionX"); ok {
		m.X = v
	}
	if v, ok := doc.Float("PositionY"); ok {
		m.Y = v
	}
	if v, ok := doc.Float("Rotation"); ok {
		m.Rotation = v
	}
	if v, ok := doc.Float("SpinSpeed"); ok {
		m.SpinSpeed = v
	}
}
