// internal/system/meteor_storm.go
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

// MeteorStorm управляет полем метеоритов: фиксированный массив слотов,
// таймер появления и начисление очков за уничтожение.
type MeteorStorm struct {
	slots          []*component.Meteor // nil — пустой слот
	currentMeteors int

	spawnTimer     float64
	spawnTimerMax  float64
	spawnDecayRate float64
	scoreValue     int

	bigTextureName   string
	smallTextureName string
	bigTexture       gfx.Texture
	smallTexture     gfx.Texture
	textures         textureSet

	score      interfaces.ScoreSink
	rng        Roller
	dispatcher *event.Dispatcher
	logger     zerolog.Logger
}

func NewMeteorStorm(score interfaces.ScoreSink, rng Roller, dispatcher *event.Dispatcher, logger zerolog.Logger) *MeteorStorm {
	return &MeteorStorm{
		slots:            make([]*component.Meteor, config.DefaultMeteorCount),
		spawnTimerMax:    config.DefaultMeteorSpawnTimerMax,
		spawnDecayRate:   config.MeteorSpawnDecayRate,
		scoreValue:       config.DefaultMeteorScoreValue,
		bigTextureName:   config.DefaultBigMeteorTextureName,
		smallTextureName: config.DefaultSmallMeteorTextureName,
		score:            score,
		rng:              rng,
		dispatcher:       dispatcher,
		logger:           logger.With().Str("system", "meteor_storm").Logger(),
	}
}

// InitialLoad reads the MeteorStorm section of the game data, loads both
// textures and allocates the slots. Missing keys keep their current values.
func (s *MeteorStorm) InitialLoad(doc gamedata.Document, textures TextureSource) error {
	sect, ok := doc.Object("MeteorStorm")
	if !ok {
		s.logger.Warn().Msg("no MeteorStorm section, using defaults")
		sect = gamedata.New()
	}
	if v, ok := sect.String("BigMeteorTextureName"); ok {
		s.bigTextureName = v
	}
	if v, ok := sect.String("SmallMeteorTextureName"); ok {
		s.smallTextureName = v
	}
	capacity := len(s.slots)
	if v, ok := sect.Int("MeteorCount"); ok {
		if v < 0 {
			s.logger.Warn().Int("count", v).Msg("negative MeteorCount ignored")
		} else {
			capacity = v
		}
	}
	if v, ok := sect.Int("MeteorScoreValue"); ok {
		s.scoreValue = v
	}
	if v, ok := sect.Float("MeteorSpawnTimerMax"); ok {
		s.spawnTimerMax = v
	}
	if v, ok := sect.Float("MeteorSpawnDecayRate"); ok {
		s.spawnDecayRate = v
	}

	s.textures.releaseAll()
	var err error
	if s.bigTexture, err = s.textures.load(textures, s.bigTextureName); err != nil {
		return fmt.Errorf("meteor storm: %w", err)
	}
	if s.smallTexture, err = s.textures.load(textures, s.smallTextureName); err != nil {
		return fmt.Errorf("meteor storm: %w", err)
	}

	s.clear()
	s.slots = make([]*component.Meteor, capacity)
	s.logger.Debug().Int("count", capacity).Int("score", s.scoreValue).Msg("meteor storm loaded")
	return nil
}

// Update spawns at most one meteor, then moves every live meteor and resolves
// its collisions in the order bullet, player body, off screen.
func (s *MeteorStorm) Update(player interfaces.PlayerCollider, deltaTime float64) {
	if s.spawnTimer <= 0 && s.currentMeteors < len(s.slots) {
		s.spawnMeteor()
		s.spawnTimer = s.spawnTimerMax
	} else if s.spawnTimer > 0 {
		s.spawnTimer -= s.spawnDecayRate * deltaTime
	}

	for i, m := range s.slots {
		if m == nil {
			continue
		}
		m.Update(deltaTime)
		r := m.Rect()
		switch {
		case player.CheckCollisionBullet(r):
			s.kill(i, event.CauseBullet)
		case player.CheckCollisionPlayer(r):
			s.kill(i, event.CausePlayer)
		case m.OffScreen():
			s.dispatch(m, event.CauseOffScreen, 0)
			s.DestroyMeteor(i)
		}
	}
}

// spawnMeteor fills the first empty slot.
func (s *MeteorStorm) spawnMeteor() {
	for i, m := range s.slots {
		if m != nil {
			continue
		}
		size := component.MeteorSize(s.rng.Intn(2) + 1)
		spin := float64(s.rng.Intn(config.MeteorSpinRange) + config.MeteorSpinMin)
		x := float64(s.rng.Intn(int(config.ScreenWidth - size.Dimension())))
		s.slots[i] = component.NewMeteor(s.textureFor(size), size, spin, x)
		s.currentMeteors++
		s.logger.Debug().Int("slot", i).Stringer("size", size).Msg("meteor spawned")
		return
	}
}

func (s *MeteorStorm) kill(i int, cause event.Cause) {
	if s.score != nil {
		s.score.IncreaseScore(s.scoreValue)
	}
	s.dispatch(s.slots[i], cause, s.scoreValue)
	s.DestroyMeteor(i)
}

func (s *MeteorStorm) dispatch(m *component.Meteor, cause event.Cause, points int) {
	s.dispatcher.Dispatch(event.Event{
		Type: event.MeteorDestroyed,
		Data: event.KillInfo{Cause: cause, Score: points, X: m.X, Y: m.Y},
	})
}

// DestroyMeteor frees the meteor in slot index. The slot must be live.
func (s *MeteorStorm) DestroyMeteor(index int) {
	s.slots[index].Destroy()
	s.slots[index] = nil
	s.currentMeteors--
}

func (s *MeteorStorm) clear() {
	for i, m := range s.slots {
		if m != nil {
			s.DestroyMeteor(i)
		}
	}
}

func (s *MeteorStorm) textureFor(size component.MeteorSize) gfx.Texture {
	if size == component.MeteorSmall {
		return s.smallTexture
	}
	return s.bigTexture
}

// Reset removes every meteor and restarts the spawn timer.
func (s *MeteorStorm) Reset() {
	s.clear()
	s.spawnTimer = 0
}

// Save writes the live meteors in slot order under the MeteorStorm key.
func (s *MeteorStorm) Save(doc gamedata.Document) {
	meteors := make([]gamedata.Document, 0, s.currentMeteors)
	for _, m := range s.slots {
		if m != nil {
			meteors = append(meteors, m.Save())
		}
	}
	sect := gamedata.New()
	sect.Set("CurrentMeteors", s.currentMeteors)
	sect.Set("SpawnTimer", s.spawnTimer)
	sect.Set("Meteors", meteors)
	doc.Set("MeteorStorm", sect)
}

// SaveDataLoad replaces the current meteors with the saved ones, filling
// slots from the start in saved order.
func (s *MeteorStorm) SaveDataLoad(doc gamedata.Document) error {
	sect, ok := doc.Object("MeteorStorm")
	if !ok {
		return fmt.Errorf("meteor storm: save data has no MeteorStorm section")
	}
	s.clear()
	if v, ok := sect.Float("SpawnTimer"); ok {
		s.spawnTimer = v
	}

	saved, _ := sect.Array("Meteors")
	next := 0
	for i, md := range saved {
		num, _ := md.Int("TextureNum")
		size := component.MeteorSizeFromTextureNum(num)
		if next == len(s.slots) {
			s.logger.Warn().Int("count", len(saved)-i).Msg("save holds more meteors than slots, dropping the rest")
			break
		}
		m := component.NewMeteor(s.textureFor(size), size, 0, 0)
		m.Load(md)
		s.slots[next] = m
		next++
	}
	s.currentMeteors = next

	if stored, ok := sect.Int("CurrentMeteors"); ok && stored != next {
		s.logger.Warn().Int("stored", stored).Int("count", next).Msg("CurrentMeteors does not match saved meteors")
	}
	return nil
}

func (s *MeteorStorm) Draw(canvas gfx.Canvas) {
	for _, m := range s.slots {
		if m != nil {
			m.Draw(canvas)
		}
	}
}

// Destroy frees every meteor and releases the textures.
func (s *MeteorStorm) Destroy() {
	s.clear()
	s.textures.releaseAll()
	s.bigTexture = nil
	s.smallTexture = nil
}

func (s *MeteorStorm) CurrentMeteors() int { return s.currentMeteors }

func (s *MeteorStorm) Capacity() int { return len(s.slots) }

func (s *MeteorStorm) SpawnTimer() float64 { return s.spawnTimer }

func (s *MeteorStorm) ScoreValue() int { return s.scoreValue }

// Meteor returns the meteor in slot i, if any.
func (s *MeteorStorm) Meteor(i int) (*component.Meteor, bool) {
	if i < 0 || i >= len(s.slots) || s.slots[i] == nil {
		return nil, false
	}
	return s.slots[i], true
}
