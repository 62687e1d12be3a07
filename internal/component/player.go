// internal/component/player.go
package component

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/gamedata"
	"go-space-shooter/internal/gfx"
	"go-space-shooter/pkg/utils"
)

// Player хранит состояние корабля игрока: позицию, жизни, пули и таймеры.
type Player struct {
	X, Y          float64 // Левый верхний угол
	lives         int
	invulnerable  float64 // Сколько ещё секунд игрок неуязвим
	fireCooldown  float64
	bullets       []*Bullet
	texture       gfx.Texture
	bulletTexture gfx.Texture
}

// NewPlayer places the player at the bottom centre of the screen.
func NewPlayer(tex, bulletTex gfx.Texture) *Player {
	return &Player{
		X:             (config.ScreenWidth - config.PlayerSize) / 2,
		Y:             config.ScreenHeight - config.PlayerSize - config.PlayerBottomMargin,
		lives:         config.PlayerLives,
		texture:       tex,
		bulletTexture: bulletTex,
	}
}

func (p *Player) Lives() int { return p.lives }

func (p *Player) SetLives(n int) { p.lives = n }

func (p *Player) Alive() bool { return p.lives > 0 }

func (p *Player) Invulnerable() bool { return p.invulnerable > 0 }

func (p *Player) Bullets() []*Bullet { return p.bullets }

func (p *Player) Rect() utils.Rect {
	return utils.NewRect(p.X, p.Y, config.PlayerSize, config.PlayerSize)
}

// Position returns the centre of the body.
func (p *Player) Position() (float64, float64) {
	return p.Rect().Center()
}

// Move shifts the player horizontally. axis is -1..1.
func (p *Player) Move(axis, deltaTime float64) {
	axis = utils.Clamp(axis, -1, 1)
	p.X = utils.Clamp(p.X+axis*config.PlayerSpeed*deltaTime, 0, config.ScreenWidth-config.PlayerSize)
}

// Fire launches a bullet if the cooldown has elapsed.
func (p *Player) Fire() bool {
	if p.fireCooldown > 0 {
		return false
	}
	p.fireCooldown = config.PlayerFireCooldown
	p.bullets = append(p.bullets, NewBullet(p.X+config.PlayerSize/2, p.Y-config.PlayerBulletHeight,
		config.PlayerBulletWidth, config.PlayerBulletHeight, -config.PlayerBulletSpeed))
	return true
}

// Update advances timers and bullets.
func (p *Player) Update(deltaTime float64) {
	if p.invulnerable > 0 {
		p.invulnerable -= deltaTime
	}
	if p.fireCooldown > 0 {
		p.fireCooldown -= deltaTime
	}
	kept := p.bullets[:0]
	for _, b := range p.bullets {
		b.Update(deltaTime)
		if !b.OffScreen() {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(p.bullets); i++ {
		p.bullets[i] = nil
	}
	p.bullets = kept
}

// CheckCollisionBullet consumes the first bullet that overlaps r.
func (p *Player) CheckCollisionBullet(r utils.Rect) bool {
	for i, b := range p.bullets {
		if b.Rect().Intersects(r) {
			p.bullets = append(p.bullets[:i], p.bullets[i+1:]...)
			return true
		}
	}
	return false
}

// CheckCollisionPlayer reports a body hit. A hit costs a life unless the
// player is still invulnerable from the previous one.
func (p *Player) CheckCollisionPlayer(r utils.Rect) bool {
	if !p.Rect().Intersects(r) {
		return false
	}
	if p.invulnerable <= 0 && p.lives > 0 {
		p.lives--
		p.invulnerable = config.PlayerInvulnerability
	}
	return true
}

func (p *Player) Draw(canvas gfx.Canvas) {
	for _, b := range p.bullets {
		b.Draw(canvas, p.bulletTexture)
	}
	// Мигаем во время неуязвимости
	if p.invulnerable > 0 && int(p.invulnerable*10)%2 == 1 {
		return
	}
	canvas.DrawSprite(p.texture, p.X, p.Y, config.PlayerSize, config.PlayerSize, 0)
}

func (p *Player) Destroy() {
	p.bullets = nil
	p.texture = nil
	p.bulletTexture = nil
}

func (p *Player) Save() gamedata.Document {
	doc := gamedata.New()
	doc.Set("PositionX", p.X)
	doc.Set("Lives", p.lives)
	doc.Set("Bullets", saveBullets(p.bullets))
	return doc
}

func (p *Player) Load(doc gamedata.Document) {
	if v, ok := doc.Float("PositionX"); ok {
		p.X = utils.Clamp(v, 0, config.ScreenWidth-config.PlayerSize)
	}
	if v, ok := doc.Int("Lives"); ok {
		p.lives = v
	}
	if arr, ok := doc.Array("Bullets"); ok {
		p.bullets = loadBullets(arr, config.PlayerBulletWidth, config.PlayerBulletHeight, -config.PlayerBulletSpeed)
	}
	p.invulnerable = 0
	p.fireCooldown = 0
}
