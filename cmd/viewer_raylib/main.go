// cmd/viewer_raylib/main.go
package main

import (
	"flag"
	"fmt"

	"go-space-shooter/internal/app"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/gfx/raylibgfx"
	"go-space-shooter/internal/observability"
	"go-space-shooter/internal/system"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Просмотрщик: та же симуляция, но с raylib вместо ebiten.
// Можно открыть сохранение и смотреть, как оно продолжается.
func main() {
	configPath := flag.String("config", config.GameDataPath, "game data file")
	savePath := flag.String("save", "", "save file to open")
	seed := flag.Int64("seed", 0, "random seed, 0 picks one from the clock")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	logger := observability.NewLogger("viewer", *debug)

	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Raylib Viewer | Space - pause, H - hitboxes, R - restart")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	game := app.NewGame(app.Options{
		Loader:       raylibgfx.Loader{},
		Seed:         *seed,
		Placeholders: true,
		Logger:       logger,
	})
	if err := game.InitialLoad(*configPath); err != nil {
		logger.Fatal().Err(err).Str("path", *configPath).Msg("initial load failed")
	}
	defer game.Cleanup()
	if *savePath != "" {
		if err := game.LoadFrom(*savePath); err != nil {
			logger.Error().Err(err).Msg("could not open save")
		}
	}

	paused := false
	canvas := raylibgfx.Canvas{}
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}
		if rl.IsKeyPressed(rl.KeyH) {
			game.ShowHitboxes = !game.ShowHitboxes
		}
		if rl.IsKeyPressed(rl.KeyR) {
			game.Reset()
		}

		deltaTime := float64(rl.GetFrameTime())
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		if !paused {
			// Игрок в просмотрщике стоит на месте и стреляет
			game.Update(deltaTime, system.PlayerInput{Fire: true})
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(config.BackgroundColor.R, config.BackgroundColor.G, config.BackgroundColor.B, 255))
		game.Draw(canvas)
		status := fmt.Sprintf("meteors %d/%d  enemies %d  ships %d",
			game.MeteorStorm.CurrentMeteors(), game.MeteorStorm.Capacity(),
			game.EnemyManager.EnemyCount(), len(game.EnemyManager.Ships()))
		if paused {
			status += "  [paused]"
		}
		canvas.DrawText(status, config.HUDMargin, config.ScreenHeight-config.HUDMargin-config.HUDLineHeight, config.TextLightColor)
		rl.EndDrawing()
	}
}
