// internal/system/enemy_manager.go
package system

import (
	"fmt"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/gamedata"
	"go-space-shooter/internal/gfx"
	"go-space-shooter/internal/interfaces"

	"github.com/rs/zerolog"
)

// EnemyManager управляет вражескими кораблями и единственным НЛО:
// появление по таймеру, обновление, столкновения и начисление очков.
type EnemyManager struct {
	ships      []*component.EnemyShip // Порядок вставки = порядок обновления и отрисовки
	ufo        *component.EnemyUFO    // nil, если НЛО нет
	enemyCount int                    // Корабли без флага UFOSpawned плюс НЛО

	spawnTimer     float64
	spawnTimerMax  float64
	spawnDecayRate float64
	spawnerLimit   int
	shipScoreValue int
	ufoScoreValue  int

	shipTextureName   string
	bulletTextureName string
	ufoTextureName    string
	shipTexture       gfx.Texture
	bulletTexture     gfx.Texture
	ufoTexture        gfx.Texture
	textures          textureSet

	rng        Roller
	dispatcher *event.Dispatcher
	logger     zerolog.Logger
}

func NewEnemyManager(rng Roller, dispatcher *event.Dispatcher, logger zerolog.Logger) *EnemyManager {
	return &EnemyManager{
		spawnTimerMax:     config.DefaultEnemySpawnTimerMax,
		spawnDecayRate:    config.EnemySpawnDecayRate,
		spawnerLimit:      config.DefaultEnemySpawnerLimit,
		shipScoreValue:    config.DefaultEnemyShipScoreValue,
		ufoScoreValue:     config.DefaultEnemyUFOScoreValue,
		shipTextureName:   config.DefaultEnemyShipTextureName,
		bulletTextureName: config.DefaultEnemyShipBulletTextureName,
		ufoTextureName:    config.DefaultEnemyUFOTextureName,
		rng:               rng,
		dispatcher:        dispatcher,
		logger:            logger.With().Str("system", "enemy_manager").Logger(),
	}
}

// InitialLoad reads the EnemyManager section of the game data and loads the
// three textures. Missing keys keep their current values.
func (m *EnemyManager) InitialLoad(doc gamedata.Document, textures TextureSource) error {
	sect, ok := doc.Object("EnemyManager")
	if !ok {
		m.logger.Warn().Msg("no EnemyManager section, using defaults")
		sect = gamedata.New()
	}
	if v, ok := sect.String("EnemyShipTextureName"); ok {
		m.shipTextureName = v
	}
	if v, ok := sect.String("EnemyShipBulletTextureName"); ok {
		m.bulletTextureName = v
	}
	if v, ok := sect.String("EnemyUFOTextureName"); ok {
		m.ufoTextureName = v
	}
	if v, ok := sect.Int("EnemyShipScoreValue"); ok {
		m.shipScoreValue = v
	}
	if v, ok := sect.Int("EnemyUFOScoreValue"); ok {
		m.ufoScoreValue = v
	}
	if v, ok := sect.Int("EnemySpawnerLimit"); ok {
		m.spawnerLimit = v
	}
	if v, ok := sect.Float("EnemySpawnTimerMax"); ok {
		m.spawnTimerMax = v
	}
	if v, ok := sect.Float("EnemySpawnDecayRate"); ok {
		m.spawnDecayRate = v
	}

	m.textures.releaseAll()
	var err error
	if m.shipTexture, err = m.textures.load(textures, m.shipTextureName); err != nil {
		return fmt.Errorf("enemy manager: %w", err)
	}
	if m.bulletTexture, err = m.textures.load(textures, m.bulletTextureName); err != nil {
		return fmt.Errorf("enemy manager: %w", err)
	}
	if m.ufoTexture, err = m.textures.load(textures, m.ufoTextureName); err != nil {
		return fmt.Errorf("enemy manager: %w", err)
	}
	m.logger.Debug().Int("limit", m.spawnerLimit).Msg("enemy manager loaded")
	return nil
}

// Update runs one frame: the spawn gate, ship movement, the three ship
// removal passes (bullet, player body, off screen) and then the UFO.
func (m *EnemyManager) Update(deltaTime float64, player interfaces.PlayerCollider, score interfaces.ScoreSink) {
	if m.spawnTimer <= 0 && m.enemyCount < m.spawnerLimit {
		roll := m.rng.Intn(config.EnemySpawnRoll)
		if roll >= config.UFOSpawnThreshold {
			// Второе НЛО не создаём, бросок пропадает
			if m.ufo == nil {
				m.spawnUFO()
				m.spawnTimer = m.spawnTimerMax
				m.enemyCount++
			}
		} else {
			m.spawnShip()
			m.spawnTimer = m.spawnTimerMax
			m.enemyCount++
		}
	} else if m.spawnTimer > 0 && m.enemyCount < m.spawnerLimit {
		m.spawnTimer -= m.spawnDecayRate * deltaTime
	}

	for _, s := range m.ships {
		s.Update(deltaTime, player)
	}

	m.sweepShips(func(s *component.EnemyShip) bool {
		return player.CheckCollisionBullet(s.Rect())
	}, event.CauseBullet, m.shipScoreValue, score)
	m.sweepShips(func(s *component.EnemyShip) bool {
		return player.CheckCollisionPlayer(s.Rect())
	}, event.CausePlayer, m.shipScoreValue, score)
	m.sweepShips((*component.EnemyShip).OffScreen, event.CauseOffScreen, 0, score)

	if m.ufo == nil {
		return
	}
	if m.ufo.Update(deltaTime) {
		m.spawnUFOShip()
	}
	if player.CheckCollisionBullet(m.ufo.Rect()) {
		m.hitUFO(event.CauseBullet, score)
	}
	if m.ufo != nil && player.CheckCollisionPlayer(m.ufo.Rect()) {
		m.hitUFO(event.CausePlayer, score)
	}
}

// sweepShips removes every ship matching hit, keeping the order of the rest.
func (m *EnemyManager) sweepShips(hit func(*component.EnemyShip) bool, cause event.Cause, points int, score interfaces.ScoreSink) {
	kept := m.ships[:0]
	for _, s := range m.ships {
		if !hit(s) {
			kept = append(kept, s)
			continue
		}
		if points > 0 && score != nil {
			score.IncreaseScore(points)
		}
		m.dispatcher.Dispatch(event.Event{
			Type: event.EnemyDestroyed,
			Data: event.KillInfo{Cause: cause, Score: points, X: s.X, Y: s.Y},
		})
		if !s.UFOSpawned() {
			m.enemyCount--
		}
		s.Destroy()
	}
	for i := len(kept); i < len(m.ships); i++ {
		m.ships[i] = nil
	}
	m.ships = kept
}

func (m *EnemyManager) hitUFO(cause event.Cause, score interfaces.ScoreSink) {
	health := m.ufo.ReduceHealth()
	m.dispatcher.Dispatch(event.Event{Type: event.UFOHit, Data: health})
	if health >= 0 {
		return
	}
	if score != nil {
		score.IncreaseScore(m.ufoScoreValue)
	}
	m.dispatcher.Dispatch(event.Event{
		Type: event.UFODestroyed,
		Data: event.KillInfo{Cause: cause, Score: m.ufoScoreValue, X: m.ufo.X, Y: m.ufo.Y},
	})
	m.DestroyEnemyUFO()
}

func (m *EnemyManager) spawnShip() {
	x := float64(m.rng.Intn(int(config.ScreenWidth - config.EnemyShipSize)))
	m.ships = append(m.ships, component.NewEnemyShip(m.shipTexture, m.bulletTexture, x, -config.EnemyShipSize, false))
	m.logger.Debug().Float64("x", x).Msg("enemy ship spawned")
}

func (m *EnemyManager) spawnUFO() {
	x := float64(m.rng.Intn(int(config.ScreenWidth - config.UFOWidth)))
	m.ufo = component.NewEnemyUFO(m.ufoTexture, x)
	m.logger.Debug().Float64("x", x).Msg("ufo spawned")
}

// spawnUFOShip releases a mini ship under the UFO. It bypasses the spawner
// limit and is not counted in enemyCount.
func (m *EnemyManager) spawnUFOShip() {
	s := component.NewEnemyShip(m.ufoTexture, m.bulletTexture, 0, 0, true)
	s.SetSizing(config.UFOSpawnedSizing)
	s.X = m.ufo.X + (config.UFOWidth-s.Size())/2
	s.Y = m.ufo.Y + config.UFOChildOffsetY
	m.ships = append(m.ships, s)
}

// DestroyEnemyUFO frees the UFO and takes it off the enemy count.
func (m *EnemyManager) DestroyEnemyUFO() {
	if m.ufo == nil {
		return
	}
	m.ufo.Destroy()
	m.ufo = nil
	m.enemyCount--
}

func (m *EnemyManager) clear() {
	for _, s := range m.ships {
		s.Destroy()
	}
	m.ships = nil
	if m.ufo != nil {
		m.ufo.Destroy()
		m.ufo = nil
	}
	m.enemyCount = 0
}

// Reset removes every enemy and restarts the spawn timer.
func (m *EnemyManager) Reset() {
	m.clear()
	m.spawnTimer = 0
}

// Save writes the manager state under the EnemyManager key. EnemyUFO is an
// empty object when no UFO is alive.
func (m *EnemyManager) Save(doc gamedata.Document) {
	ships := make([]gamedata.Document, 0, len(m.ships))
	for _, s := range m.ships {
		ships = append(ships, s.Save())
	}
	ufo := gamedata.New()
	if m.ufo != nil {
		ufo = m.ufo.Save()
	}
	sect := gamedata.New()
	sect.Set("EnemyCount", m.enemyCount)
	sect.Set("EnemySpawnTimer", m.spawnTimer)
	sect.Set("EnemyShips", ships)
	sect.Set("EnemyUFO", ufo)
	doc.Set("EnemyManager", sect)
}

// SaveDataLoad replaces the current enemies with the saved ones. A UFO is
// restored only when the EnemyUFO object carries MovingLeft.
func (m *EnemyManager) SaveDataLoad(doc gamedata.Document) error {
	sect, ok := doc.Object("EnemyManager")
	if !ok {
		return fmt.Errorf("enemy manager: save data has no EnemyManager section")
	}
	m.clear()
	if v, ok := sect.Float("EnemySpawnTimer"); ok {
		m.spawnTimer = v
	}

	saved, _ := sect.Array("EnemyShips")
	for _, sd := range saved {
		ufoSpawned, _ := sd.Bool("UFOSpawned")
		tex := m.shipTexture
		if ufoSpawned {
			tex = m.ufoTexture
		}
		s := component.NewEnemyShip(tex, m.bulletTexture, 0, 0, ufoSpawned)
		if ufoSpawned {
			s.SetSizing(config.UFOSpawnedSizing)
		}
		s.Load(sd)
		m.ships = append(m.ships, s)
		if !ufoSpawned {
			m.enemyCount++
		}
	}

	if ud, ok := sect.Object("EnemyUFO"); ok && ud.HasKey("MovingLeft") {
		m.ufo = component.NewEnemyUFO(m.ufoTexture, 0)
		m.ufo.Load(ud)
		m.enemyCount++
	}

	if stored, ok := sect.Int("EnemyCount"); ok && stored != m.enemyCount {
		m.logger.Warn().Int("stored", stored).Int("count", m.enemyCount).Msg("EnemyCount does not match saved enemies")
	}
	return nil
}

// Draw renders ships in insertion order, then the UFO.
func (m *EnemyManager) Draw(canvas gfx.Canvas) {
	for _, s := range m.ships {
		s.Draw(canvas)
	}
	if m.ufo != nil {
		m.ufo.Draw(canvas)
	}
}

// Destroy frees every enemy and releases the textures.
func (m *EnemyManager) Destroy() {
	m.clear()
	m.textures.releaseAll()
	m.shipTexture = nil
	m.bulletTexture = nil
	m.ufoTexture = nil
}

func (m *EnemyManager) EnemyCount() int { return m.enemyCount }

// Ships returns the live ships. The slice is owned by the manager.
func (m *EnemyManager) Ships() []*component.EnemyShip { return m.ships }

// UFO returns the live UFO, if any.
func (m *EnemyManager) UFO() (*component.EnemyUFO, bool) {
	return m.ufo, m.ufo != nil
}

func (m *EnemyManager) SpawnTimer() float64 { return m.spawnTimer }

func (m *EnemyManager) SpawnerLimit() int { return m.spawnerLimit }
