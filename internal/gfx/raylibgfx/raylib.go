// internal/gfx/raylibgfx/raylib.go
package raylibgfx

import (
	"fmt"
	"go-space-shooter/internal/gfx"
	"image/color"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const textSize = 20

// Texture wraps a GPU texture owned by raylib.
type Texture struct {
	tex rl.Texture2D
}

func (t *Texture) Size() (int, int) {
	if t == nil {
		return 0, 0
	}
	return int(t.tex.Width), int(t.tex.Height)
}

// Loader loads textures with raylib. It must be used after rl.InitWindow.
type Loader struct{}

var _ gfx.Loader = Loader{}

func (Loader) LoadTexture(path string) (gfx.Texture, error) {
	// raylib only logs on a missing file, so check first
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to load texture %s: %w", path, err)
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return nil, fmt.Errorf("failed to load texture %s: raylib returned an empty texture", path)
	}
	return &Texture{tex: tex}, nil
}

func (Loader) Placeholder(w, h int, clr color.Color) gfx.Texture {
	img := rl.GenImageColor(w, h, toRL(clr))
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	return &Texture{tex: tex}
}

func (Loader) Release(tex gfx.Texture) {
	if t, ok := tex.(*Texture); ok && t.tex.ID != 0 {
		rl.UnloadTexture(t.tex)
		t.tex = rl.Texture2D{}
	}
}

// Canvas draws between rl.BeginDrawing and rl.EndDrawing.
type Canvas struct{}

var _ gfx.Canvas = Canvas{}

func (Canvas) DrawSprite(tex gfx.Texture, x, y, w, h, rotation float64) {
	t, ok := tex.(*Texture)
	if !ok || t == nil || t.tex.ID == 0 {
		return
	}
	src := rl.NewRectangle(0, 0, float32(t.tex.Width), float32(t.tex.Height))
	// DrawTexturePro places dst by its origin, so shift to the centre to rotate in place
	dst := rl.NewRectangle(float32(x+w/2), float32(y+h/2), float32(w), float32(h))
	origin := rl.NewVector2(float32(w/2), float32(h/2))
	rl.DrawTexturePro(t.tex, src, dst, origin, float32(rotation), rl.White)
}

func (Canvas) StrokeRect(x, y, w, h float64, clr color.Color) {
	rl.DrawRectangleLines(int32(x), int32(y), int32(w), int32(h), toRL(clr))
}

func (Canvas) DrawText(s string, x, y int, clr color.Color) {
	// ebiten places text by baseline, raylib by top-left
	rl.DrawText(s, int32(x), int32(y-textSize+4), textSize, toRL(clr))
}

func toRL(c color.Color) rl.Color {
	r, g, b, a := c.RGBA()
	return rl.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8))
}
