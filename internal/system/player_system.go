// internal/system/player_system.go
package system

import (
	"fmt"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/gamedata"
	"go-space-shooter/internal/gfx"

	"github.com/rs/zerolog"
)

// PlayerInput — ввод игрока за один кадр.
type PlayerInput struct {
	MoveX float64 // -1 влево, 1 вправо
	Fire  bool
}

// PlayerSystem отвечает за корабль игрока: создание, ввод, сохранение.
type PlayerSystem struct {
	player            *component.Player
	textureName       string
	bulletTextureName string
	texture           gfx.Texture
	bulletTexture     gfx.Texture
	textures          textureSet
	logger            zerolog.Logger
}

func NewPlayerSystem(logger zerolog.Logger) *PlayerSystem {
	return &PlayerSystem{
		textureName:       config.DefaultPlayerTextureName,
		bulletTextureName: config.DefaultPlayerBulletTextureName,
		logger:            logger.With().Str("system", "player").Logger(),
	}
}

// InitialLoad reads the optional Player section and creates the player.
func (s *PlayerSystem) InitialLoad(doc gamedata.Document, textures TextureSource) error {
	if sect, ok := doc.Object("Player"); ok {
		if v, ok := sect.String("PlayerTextureName"); ok {
			s.textureName = v
		}
		if v, ok := sect.String("PlayerBulletTextureName"); ok {
			s.bulletTextureName = v
		}
	}
	s.textures.releaseAll()
	var err error
	if s.texture, err = s.textures.load(textures, s.textureName); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if s.bulletTexture, err = s.textures.load(textures, s.bulletTextureName); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	s.Reset()
	return nil
}

// Reset replaces the player with a fresh one.
func (s *PlayerSystem) Reset() {
	if s.player != nil {
		s.player.Destroy()
	}
	s.player = component.NewPlayer(s.texture, s.bulletTexture)
}

func (s *PlayerSystem) Player() *component.Player { return s.player }

func (s *PlayerSystem) Update(input PlayerInput, deltaTime float64) {
	if s.player == nil || !s.player.Alive() {
		return
	}
	s.player.Move(input.MoveX, deltaTime)
	if input.Fire {
		s.player.Fire()
	}
	s.player.Update(deltaTime)
}

func (s *PlayerSystem) Draw(canvas gfx.Canvas) {
	if s.player != nil && s.player.Alive() {
		s.player.Draw(canvas)
	}
}

func (s *PlayerSystem) Save(doc gamedata.Document) {
	if s.player != nil {
		doc.Set("Player", s.player.Save())
	}
}

// SaveDataLoad restores the player. A save without a Player section keeps
// the current player.
func (s *PlayerSystem) SaveDataLoad(doc gamedata.Document) {
	sect, ok := doc.Object("Player")
	if !ok {
		s.logger.Warn().Msg("save data has no Player section")
		return
	}
	s.Reset()
	s.player.Load(sect)
}

func (s *PlayerSystem) Destroy() {
	if s.player != nil {
		s.player.Destroy()
		s.player = nil
	}
	s.textures.releaseAll()
}
