package assets

import (
	"fmt"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/gfx"

	"github.com/rs/zerolog"
)

type textureEntry struct {
	tex  gfx.Texture
	refs int
}

// TextureManager loads, caches and frees textures by path.
// Each Load must be paired with one Release; the texture is freed on the last Release.
type TextureManager struct {
	loader       gfx.Loader
	entries      map[string]*textureEntry
	placeholders bool
	logger       zerolog.Logger
}

// NewTextureManager creates a manager. With placeholders enabled a missing
// file yields a solid placeholder texture instead of an error.
func NewTextureManager(loader gfx.Loader, placeholders bool, logger zerolog.Logger) *TextureManager {
	return &TextureManager{
		loader:       loader,
		entries:      make(map[string]*textureEntry),
		placeholders: placeholders,
		logger:       logger,
	}
}

// Load returns the texture for path, loading it on first use.
func (m *TextureManager) Load(path string) (gfx.Texture, error) {
	if e, ok := m.entries[path]; ok {
		e.refs++
		return e.tex, nil
	}

	tex, err := m.loader.LoadTexture(path)
	if err != nil {
		if !m.placeholders {
			return nil, fmt.Errorf("texture manager: %w", err)
		}
		m.logger.Warn().Err(err).Str("path", path).Msg("using placeholder texture")
		tex = m.loader.Placeholder(config.PlaceholderSize, config.PlaceholderSize, config.PlaceholderColor)
	} else {
		m.logger.Debug().Str("path", path).Msg("texture loaded")
	}

	m.entries[path] = &textureEntry{tex: tex, refs: 1}
	return tex, nil
}

// Release drops one reference to path.
func (m *TextureManager) Release(path string) {
	e, ok := m.entries[path]
	if !ok {
		return
	}
	e.refs--
	if e.refs > 0 {
		return
	}
	m.loader.Release(e.tex)
	delete(m.entries, path)
	m.logger.Debug().Str("path", path).Msg("texture released")
}

// Cleanup frees every texture still held, regardless of references.
func (m *TextureManager) Cleanup() {
	for path, e := range m.entries {
		m.loader.Release(e.tex)
		delete(m.entries, path)
	}
	m.logger.Debug().Msg("all textures released")
}

// Loaded returns how many distinct textures are resident.
func (m *TextureManager) Loaded() int {
	return len(m.entries)
}

// Refs returns the reference count for path.
func (m *TextureManager) Refs(path string) int {
	if e, ok := m.entries[path]; ok {
		return e.refs
	}
	return 0
}
