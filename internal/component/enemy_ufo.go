// internal/component/enemy_ufo.go
package component

import (
	"math"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/gamedata"
	"go-space-shooter/internal/gfx"
	"go-space-shooter/pkg/utils"
)

// EnemyUFO: мини-босс. Влетает сверху, патрулирует экран по горизонтали
// и по таймеру выпускает маленькие корабли.
type EnemyUFO struct {
	X, Y       float64 // Левый верхний угол
	health     int
	movingLeft bool
	spawnTimer float64
	texture    gfx.Texture
}

// NewEnemyUFO creates a UFO above the screen at x. It heads toward the
// farther screen edge.
func NewEnemyUFO(tex gfx.Texture, x float64) *EnemyUFO {
	return &EnemyUFO{
		X:          x,
		Y:          -config.UFOHeight,
		health:     config.UFOHealth,
		movingLeft: x+config.UFOWidth/2 > config.ScreenWidth/2,
		spawnTimer: config.UFOSpawnTimerMax,
		texture:    tex,
	}
}

func (u *EnemyUFO) Health() int { return u.health }

func (u *EnemyUFO) MovingLeft() bool { return u.movingLeft }

func (u *EnemyUFO) SpawnTimer() float64 { return u.spawnTimer }

// ReduceHealth takes one point of health and returns what is left.
// The UFO is dead once the result is negative.
func (u *EnemyUFO) ReduceHealth() int {
	u.health--
	return u.health
}

// Update moves the UFO and returns true when it wants to release a child ship.
func (u *EnemyUFO) Update(deltaTime float64) bool {
	if u.Y < config.UFOHoverY {
		u.Y = math.Min(u.Y+config.UFOEntrySpeed*deltaTime, config.UFOHoverY)
	}

	step := config.UFOSpeed * deltaTime
	if u.movingLeft {
		u.X -= step
		if u.X <= 0 {
			u.X = 0
			u.movingLeft = false
		}
	} else {
		u.X += step
		if u.X+config.UFOWidth >= config.ScreenWidth {
			u.X = config.ScreenWidth - config.UFOWidth
			u.movingLeft = true
		}
	}

	u.spawnTimer -= deltaTime
	if u.spawnTimer <= 0 {
		u.spawnTimer = config.UFOSpawnTimerMax
		return true
	}
	return false
}

func (u *EnemyUFO) Rect() utils.Rect {
	return utils.NewRect(u.X, u.Y, config.UFOWidth, config.UFOHeight)
}

func (u *EnemyUFO) Draw(canvas gfx.Canvas) {
	canvas.DrawSprite(u.texture, u.X, u.Y, config.UFOWidth, config.UFOHeight, 0)
}

func (u *EnemyUFO) Destroy() {
	u.texture = nil
}

func (u *EnemyUFO) Save() gamedata.Document {
	doc := gamedata.New()
	doc.Set("PositionX", u.X)
	doc.Set("PositionY", u.Y)
	doc.Set("Health", u.health)
	doc.Set("MovingLeft", u.movingLeft)
	doc.Set("SpawnTimer", u.spawnTimer)
	return doc
}

func (u *EnemyUFO) Load(doc gamedata.Document) {
	if v, ok := doc.Float("PositionX"); ok {
		u.X = v
	}
	if v, ok := doc.Float("PositionY"); ok {
		u.Y = v
	}
	if v, ok := doc.Int("Health"); ok {
		u.health = v
	}
	if v, ok := doc.Bool("MovingLeft"); ok {
		u.movingLeft = v
	}
	if v, ok := doc.Float("SpawnTimer"); ok {
		u.spawnTimer = v
	}
}
