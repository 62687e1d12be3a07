// internal/app/game.go
package app

import (
	"fmt"

	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/gamedata"
	"go-space-shooter/internal/gfx"
	"go-space-shooter/internal/system"
	"go-space-shooter/internal/ui"
	"go-space-shooter/internal/utils"
	geom "go-space-shooter/pkg/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options configures a new Game.
type Options struct {
	Loader       gfx.Loader
	Seed         int64 // 0: сид из текущего времени
	Placeholders bool  // Заглушки вместо отсутствующих текстур
	Logger       zerolog.Logger
}

// Game holds the systems of one play session and wires them together.
type Game struct {
	Textures        *assets.TextureManager
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	MeteorStorm     *system.MeteorStorm
	EnemyManager    *system.EnemyManager
	PlayerSystem    *system.PlayerSystem
	Score           *ui.ScoreIndicator
	Kills           *ui.KillCounter
	Lives           *ui.LivesIndicator
	Toast           *ui.Toast
	ShowHitboxes    bool

	gameTime float64
	saveID   string
	gameOver bool
	logger   zerolog.Logger
}

// NewGame initializes a new game instance.
func NewGame(opts Options) *Game {
	if opts.Loader == nil {
		panic("loader cannot be nil")
	}

	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)
	score := ui.NewScoreIndicator(config.HUDMargin, config.HUDMargin+config.HUDLineHeight)
	g := &Game{
		Textures:        assets.NewTextureManager(opts.Loader, opts.Placeholders, opts.Logger),
		EventDispatcher: dispatcher,
		Rng:             rng,
		MeteorStorm:     system.NewMeteorStorm(score, rng, dispatcher, opts.Logger),
		EnemyManager:    system.NewEnemyManager(rng, dispatcher, opts.Logger),
		PlayerSystem:    system.NewPlayerSystem(opts.Logger),
		Score:           score,
		Kills:           ui.NewKillCounter(config.HUDMargin, config.HUDMargin+2*config.HUDLineHeight),
		Lives:           ui.NewLivesIndicator(config.ScreenWidth-140, config.HUDMargin),
		Toast:           ui.NewToast(config.ScreenWidth/2-60, config.HUDMargin),
		logger:          opts.Logger.With().Str("system", "game").Logger(),
	}
	g.Kills.Subscribe(dispatcher)
	g.Toast.Subscribe(dispatcher)
	dispatcher.Subscribe(event.UFODestroyed, g)
	g.logger.Info().Int64("seed", rng.Seed()).Msg("game created")
	return g
}

// OnEvent logs notable events.
func (g *Game) OnEvent(e event.Event) {
	if e.Type == event.UFODestroyed {
		if info, ok := e.Data.(event.KillInfo); ok {
			g.logger.Info().Int("score", info.Score).Str("cause", string(info.Cause)).Msg("ufo destroyed")
		}
	}
}

// InitialLoad reads the game data file and initializes every system.
func (g *Game) InitialLoad(path string) error {
	doc, err := gamedata.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load game data: %w", err)
	}
	return g.InitialLoadDocument(doc)
}

func (g *Game) InitialLoadDocument(doc gamedata.Document) error {
	if err := g.PlayerSystem.InitialLoad(doc, g.Textures); err != nil {
		return err
	}
	if err := g.EnemyManager.InitialLoad(doc, g.Textures); err != nil {
		return err
	}
	if err := g.MeteorStorm.InitialLoad(doc, g.Textures); err != nil {
		return err
	}
	g.logger.Debug().Int("count", g.Textures.Loaded()).Msg("textures ready")
	return nil
}

// Update advances one frame. Nothing moves once the game is over.
func (g *Game) Update(deltaTime float64, input system.PlayerInput) {
	g.Toast.Update(deltaTime)
	if g.gameOver {
		return
	}
	g.gameTime += deltaTime

	g.PlayerSystem.Update(input, deltaTime)
	player := g.PlayerSystem.Player()
	if player == nil {
		return
	}
	g.EnemyManager.Update(deltaTime, player, g.Score)
	g.MeteorStorm.Update(player, deltaTime)
	g.Score.Update(deltaTime)

	if !player.Alive() {
		g.gameOver = true
		g.logger.Info().Int("score", g.Score.Score()).Float64("time", g.gameTime).Msg("game over")
	}
}

func (g *Game) GameOver() bool { return g.gameOver }

func (g *Game) GameTime() float64 { return g.gameTime }

// SaveID returns the id of the last save written or loaded.
func (g *Game) SaveID() string { return g.saveID }

// Reset starts a new session with the already loaded textures.
func (g *Game) Reset() {
	g.MeteorStorm.Reset()
	g.EnemyManager.Reset()
	g.PlayerSystem.Reset()
	g.Score.SetScore(0)
	g.Kills.Reset()
	g.gameTime = 0
	g.gameOver = false
}

func (g *Game) Draw(canvas gfx.Canvas) {
	g.MeteorStorm.Draw(canvas)
	g.EnemyManager.Draw(canvas)
	g.PlayerSystem.Draw(canvas)
	if g.ShowHitboxes {
		g.drawHitboxes(canvas)
	}

	g.Score.Draw(canvas)
	g.Kills.Draw(canvas)
	g.Toast.Draw(canvas)
	if p := g.PlayerSystem.Player(); p != nil {
		g.Lives.Draw(canvas, p.Lives(), config.PlayerLives)
	}
	if g.gameOver {
		canvas.DrawText("GAME OVER - press Enter", config.ScreenWidth/2-80, config.ScreenHeight/2, config.TextAccentColor)
	}
}

func (g *Game) drawHitboxes(canvas gfx.Canvas) {
	stroke := func(r interface{ Rect() geom.Rect }) {
		b := r.Rect()
		canvas.StrokeRect(b.X, b.Y, b.W, b.H, config.HitboxColor)
	}
	for i := 0; i < g.MeteorStorm.Capacity(); i++ {
		if m, ok := g.MeteorStorm.Meteor(i); ok {
			stroke(m)
		}
	}
	for _, s := range g.EnemyManager.Ships() {
		stroke(s)
	}
	if u, ok := g.EnemyManager.UFO(); ok {
		stroke(u)
	}
	if p := g.PlayerSystem.Player(); p != nil {
		stroke(p)
	}
}

// SaveDocument builds the full save document.
func (g *Game) SaveDocument() gamedata.Document {
	g.saveID = uuid.NewString()
	doc := gamedata.New()
	doc.Set("SaveID", g.saveID)
	doc.Set("Version", config.SaveVersion)
	doc.Set("Score", g.Score.Score())
	doc.Set("GameTime", g.gameTime)
	g.PlayerSystem.Save(doc)
	g.EnemyManager.Save(doc)
	g.MeteorStorm.Save(doc)
	return doc
}

// SaveTo writes the session to path. The format follows the extension.
func (g *Game) SaveTo(path string) error {
	if err := gamedata.SaveFile(path, g.SaveDocument()); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}
	g.logger.Info().Str("path", path).Str("save_id", g.saveID).Msg("game saved")
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameSaved, Data: path})
	return nil
}

// LoadDocument replaces the session with a saved one. The document is
// checked before any system is touched, so a rejected save leaves the
// session as it was.
func (g *Game) LoadDocument(doc gamedata.Document) error {
	if err := validateSave(doc); err != nil {
		return err
	}
	if err := g.EnemyManager.SaveDataLoad(doc); err != nil {
		return err
	}
	if err := g.MeteorStorm.SaveDataLoad(doc); err != nil {
		return err
	}
	g.PlayerSystem.SaveDataLoad(doc)

	score, _ := doc.Int("Score")
	g.Score.SetScore(score)
	g.gameTime, _ = doc.Float("GameTime")
	g.gameOver = false
	if p := g.PlayerSystem.Player(); p != nil && !p.Alive() {
		g.gameOver = true
	}

	g.saveID = ""
	if id, ok := doc.String("SaveID"); ok {
		if _, err := uuid.Parse(id); err != nil {
			g.logger.Warn().Str("save_id", id).Msg("save has a malformed id")
		} else {
			g.saveID = id
		}
	}
	return nil
}

func validateSave(doc gamedata.Document) error {
	if v, ok := doc.Int("Version"); ok && v > config.SaveVersion {
		return fmt.Errorf("save version %d is newer than supported %d", v, config.SaveVersion)
	}
	for _, section := range []string{"EnemyManager", "MeteorStorm"} {
		if _, ok := doc.Object(section); !ok {
			return fmt.Errorf("save has no %s section", section)
		}
	}
	return nil
}

func (g *Game) LoadFrom(path string) error {
	doc, err := gamedata.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load save: %w", err)
	}
	if err := g.LoadDocument(doc); err != nil {
		return fmt.Errorf("failed to load save %s: %w", path, err)
	}
	g.logger.Info().Str("path", path).Str("save_id", g.saveID).Msg("game loaded")
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameLoaded, Data: path})
	return nil
}

// Cleanup frees every entity and texture and detaches the HUD listeners.
func (g *Game) Cleanup() {
	g.Kills.Unsubscribe(g.EventDispatcher)
	g.Toast.Unsubscribe(g.EventDispatcher)
	g.EventDispatcher.Unsubscribe(event.UFODestroyed, g)
	g.MeteorStorm.Destroy()
	g.EnemyManager.Destroy()
	g.PlayerSystem.Destroy()
	g.Textures.Cleanup()
}
