// internal/component/enemy_ship.go
package component

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/gamedata"
	"go-space-shooter/internal/gfx"
	"go-space-shooter/internal/interfaces"
	"go-space-shooter/pkg/utils"
)

// EnemyShip: вражеский корабль, который спускается вниз, подтягивается к
// игроку по горизонтали и периодически стреляет.
type EnemyShip struct {
	X, Y          float64 // Левый верхний угол
	sizing        float64 // Процент от базового размера корпуса
	ufoSpawned    bool    // Создан НЛО; не учитывается в лимите врагов
	fireTimer     float64
	bullets       []*Bullet
	texture       gfx.Texture
	bulletTexture gfx.Texture
}

func NewEnemyShip(tex, bulletTex gfx.Texture, x, y float64, ufoSpawned bool) *EnemyShip {
	return &EnemyShip{
		X:             x,
		Y:             y,
		sizing:        config.EnemyShipDefaultSizing,
		ufoSpawned:    ufoSpawned,
		fireTimer:     config.EnemyShipFireInterval,
		texture:       tex,
		bulletTexture: bulletTex,
	}
}

func (s *EnemyShip) UFOSpawned() bool { return s.ufoSpawned }

func (s *EnemyShip) Sizing() float64 { return s.sizing }

// SetSizing sets the hull scale in percent. Non-positive values are ignored.
func (s *EnemyShip) SetSizing(percent float64) {
	if percent > 0 {
		s.sizing = percent
	}
}

// Size returns the side of the square hull in pixels.
func (s *EnemyShip) Size() float64 {
	return config.EnemyShipSize * s.sizing / 100
}

func (s *EnemyShip) FireTimer() float64 { return s.fireTimer }

func (s *EnemyShip) Bullets() []*Bullet { return s.bullets }

// Update moves the ship, fires on its own timer and advances its bullets.
// Bullets that hit the player's body or leave the playfield are removed.
func (s *EnemyShip) Update(deltaTime float64, player interfaces.PlayerCollider) {
	size := s.Size()
	if player != nil {
		px, _ := player.Position()
		cx := s.X + size/2
		s.X += utils.Approach(cx, px, config.EnemyShipDriftSpeed*deltaTime) - cx
	}
	s.X = utils.Clamp(s.X, 0, config.ScreenWidth-size)
	s.Y += config.EnemyShipSpeed * deltaTime

	s.fireTimer -= deltaTime
	if s.fireTimer <= 0 {
		s.fireTimer = config.EnemyShipFireInterval
		s.bullets = append(s.bullets, NewBullet(s.X+size/2, s.Y+size,
			config.EnemyBulletWidth, config.EnemyBulletHeight, config.EnemyBulletSpeed))
	}

	kept := s.bullets[:0]
	for _, b := range s.bullets {
		b.Update(deltaTime)
		if b.OffScreen() {
			continue
		}
		if player != nil && player.CheckCollisionPlayer(b.Rect()) {
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(s.bullets); i++ {
		s.bullets[i] = nil
	}
	s.bullets = kept
}

func (s *EnemyShip) Rect() utils.Rect {
	size := s.Size()
	return utils.NewRect(s.X, s.Y, size, size)
}

// OffScreen reports whether the ship reached the bottom of the playfield.
func (s *EnemyShip) OffScreen() bool {
	return s.Y >= config.PlayfieldBottom
}

func (s *EnemyShip) Draw(canvas gfx.Canvas) {
	for _, b := range s.bullets {
		b.Draw(canvas, s.bulletTexture)
	}
	size := s.Size()
	// Корабль смотрит вниз
	canvas.DrawSprite(s.texture, s.X, s.Y, size, size, 180)
}

// Destroy drops the ship's bullets and borrowed textures.
func (s *EnemyShip) Destroy() {
	s.bullets = nil
	s.texture = nil
	s.bulletTexture = nil
}

func (s *EnemyShip) Save() gamedata.Document {
	doc := gamedata.New()
	doc.Set("UFOSpawned", s.ufoSpawned)
	doc.Set("PositionX", s.X)
	doc.Set("PositionY", s.Y)
	doc.Set("Sizing", s.sizing)
	doc.Set("FireTimer", s.fireTimer)
	doc.Set("Bullets", saveBullets(s.bullets))
	return doc
}

// Load restores the scalar state and bullets. The UFO-spawned flag is fixed
// at construction and is not read here.
func (s *EnemyShip) Load(doc gamedata.Document) {
	if v, ok := doc.Float("PositionX"); ok {
		s.X = v
	}
	if v, ok := doc.Float("PositionY"); ok {
		s.Y = v
	}
	if v, ok := doc.Float("Sizing"); ok {
		s.SetSizing(v)
	}
	if v, ok := doc.Float("FireTimer"); ok {
		s.fireTimer = v
	}
	if arr, ok := doc.Array("Bullets"); ok {
		s.bullets = loadBullets(arr, config.EnemyBulletWidth, config.EnemyBulletHeight, config.EnemyBulletSpeed)
	}
}
