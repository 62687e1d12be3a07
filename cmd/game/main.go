// cmd/game/main.go
package main

import (
	"flag"
	"time"

	"go-space-shooter/internal/app"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/gfx/ebitengfx"
	"go-space-shooter/internal/observability"
	"go-space-shooter/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", config.GameDataPath, "game data file")
	savePath := flag.String("save", config.SavePath, "save file (.json or .msgpack)")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	debug := flag.Bool("debug", false, "debug logging and hitboxes")
	skipMenu := flag.Bool("skip-menu", false, "start straight in the game")
	flag.Parse()

	logger := observability.NewLogger("game", *debug)

	game := app.NewGame(app.Options{
		Loader:       ebitengfx.Loader{},
		Seed:         *seed,
		Placeholders: true,
		Logger:       logger,
	})
	if err := game.InitialLoad(*configPath); err != nil {
		logger.Fatal().Err(err).Str("path", *configPath).Msg("initial load failed")
	}
	defer game.Cleanup()
	game.ShowHitboxes = *debug

	sm := state.NewStateMachine(&state.Session{Game: game, SavePath: *savePath, Logger: logger})
	if *skipMenu {
		sm.SetState(state.NewGameState(sm))
	} else {
		sm.SetState(state.NewMenuState(sm))
	}

	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Space Shooter")
	if err := ebiten.RunGame(appGame); err != nil {
		logger.Error().Err(err).Msg("game loop stopped")
	}
}
