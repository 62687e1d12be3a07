// internal/system/deps.go
package system

import "go-space-shooter/internal/gfx"

// Roller is the source of every random roll the systems make.
// utils.PRNGService satisfies it.
type Roller interface {
	Intn(n int) int
}

// TextureSource hands out shared textures by path.
// assets.TextureManager satisfies it.
type TextureSource interface {
	Load(path string) (gfx.Texture, error)
	Release(path string)
}

// textureSet remembers which textures a system holds so it can release each
// of them exactly once.
type textureSet struct {
	source TextureSource
	held   []string
}

func (t *textureSet) load(source TextureSource, path string) (gfx.Texture, error) {
	tex, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	t.source = source
	t.held = append(t.held, path)
	return tex, nil
}

func (t *textureSet) releaseAll() {
	for _, path := range t.held {
		t.source.Release(path)
	}
	t.held = nil
}
