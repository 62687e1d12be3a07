// Package gfx describes the drawing capabilities the game logic needs from a
// rendering backend. Backends live in the ebitengfx and raylibgfx subpackages.
package gfx

import "image/color"

// Texture is an opaque, backend-owned image.
type Texture interface {
	Size() (w, h int)
}

// Loader creates and frees textures.
type Loader interface {
	LoadTexture(path string) (Texture, error)
	// Placeholder returns a solid texture used when an asset is missing.
	Placeholder(w, h int, clr color.Color) Texture
	Release(tex Texture)
}

// Canvas draws onto the current frame.
type Canvas interface {
	// DrawSprite stretches tex over the rect (x, y, w, h) and rotates it
	// about the rect centre by rotation degrees.
	DrawSprite(tex Texture, x, y, w, h, rotation float64)
	StrokeRect(x, y, w, h float64, clr color.Color)
	DrawText(s string, x, y int, clr color.Color)
}
