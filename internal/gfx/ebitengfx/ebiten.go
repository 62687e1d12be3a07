// internal/gfx/ebitengfx/ebiten.go
package ebitengfx

import (
	"fmt"
	"go-space-shooter/internal/gfx"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Texture wraps an ebiten image.
type Texture struct {
	img *ebiten.Image
}

func (t *Texture) Size() (int, int) {
	if t == nil || t.img == nil {
		return 0, 0
	}
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Loader loads textures from disk through ebitenutil.
type Loader struct{}

var _ gfx.Loader = Loader{}

func (Loader) LoadTexture(path string) (gfx.Texture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture %s: %w", path, err)
	}
	return &Texture{img: img}, nil
}

func (Loader) Placeholder(w, h int, clr color.Color) gfx.Texture {
	img := ebiten.NewImage(w, h)
	img.Fill(clr)
	return &Texture{img: img}
}

func (Loader) Release(tex gfx.Texture) {
	if t, ok := tex.(*Texture); ok && t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
}

// Canvas draws onto an ebiten screen image.
type Canvas struct {
	Screen *ebiten.Image
	Face   font.Face
}

var _ gfx.Canvas = (*Canvas)(nil)

// NewCanvas wraps the frame's screen image. A nil face falls back to basicfont.
func NewCanvas(screen *ebiten.Image, face font.Face) *Canvas {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Canvas{Screen: screen, Face: face}
}

func (c *Canvas) DrawSprite(tex gfx.Texture, x, y, w, h, rotation float64) {
	t, ok := tex.(*Texture)
	if !ok || t == nil || t.img == nil {
		return
	}
	sw, sh := t.Size()
	if sw == 0 || sh == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(sw)/2, -float64(sh)/2)
	op.GeoM.Scale(w/float64(sw), h/float64(sh))
	op.GeoM.Rotate(rotation * math.Pi / 180)
	op.GeoM.Translate(x+w/2, y+h/2)
	op.Filter = ebiten.FilterLinear
	c.Screen.DrawImage(t.img, op)
}

func (c *Canvas) StrokeRect(x, y, w, h float64, clr color.Color) {
	vector.StrokeRect(c.Screen, float32(x), float32(y), float32(w), float32(h), 1, clr, false)
}

func (c *Canvas) DrawText(s string, x, y int, clr color.Color) {
	text.Draw(c.Screen, s, c.Face, x, y, clr)
}
