// cmd/placeholders/main.go
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/gamedata"
	"go-space-shooter/internal/observability"
)

// Генерирует простые PNG-заглушки для всех текстур из файла игровых данных.

type shape int

const (
	shapeCircle shape = iota
	shapeTriangle
	shapeSaucer
	shapeBox
)

type sprite struct {
	section, key string
	fallback     string
	w, h         int
	clr          color.RGBA
	shape        shape
}

var sprites = []sprite{
	{"Player", "PlayerTextureName", config.DefaultPlayerTextureName, 48, 48, color.RGBA{80, 200, 255, 255}, shapeTriangle},
	{"Player", "PlayerBulletTextureName", config.DefaultPlayerBulletTextureName, 6, 14, color.RGBA{255, 255, 120, 255}, shapeBox},
	{"EnemyManager", "EnemyShipTextureName", config.DefaultEnemyShipTextureName, 64, 64, color.RGBA{230, 70, 70, 255}, shapeTriangle},
	{"EnemyManager", "EnemyShipBulletTextureName", config.DefaultEnemyShipBulletTextureName, 8, 16, color.RGBA{255, 140, 40, 255}, shapeBox},
	{"EnemyManager", "EnemyUFOTextureName", config.DefaultEnemyUFOTextureName, 128, 64, color.RGBA{160, 90, 220, 255}, shapeSaucer},
	{"MeteorStorm", "BigMeteorTextureName", config.DefaultBigMeteorTextureName, 96, 96, color.RGBA{140, 110, 90, 255}, shapeCircle},
	{"MeteorStorm", "SmallMeteorTextureName", config.DefaultSmallMeteorTextureName, 48, 48, color.RGBA{170, 140, 110, 255}, shapeCircle},
}

func main() {
	configPath := flag.String("config", config.GameDataPath, "game data file")
	force := flag.Bool("force", false, "overwrite existing files")
	flag.Parse()

	logger := observability.NewLogger("placeholders", false)

	doc, err := gamedata.LoadFile(*configPath)
	if err != nil {
		logger.Warn().Err(err).Msg("using default texture names")
		doc = gamedata.New()
	}

	for _, s := range sprites {
		path := s.fallback
		if sect, ok := doc.Object(s.section); ok {
			if v, ok := sect.String(s.key); ok {
				path = v
			}
		}
		if _, err := os.Stat(path); err == nil && !*force {
			logger.Info().Str("path", path).Msg("exists, skipped")
			continue
		}
		if err := writePNG(path, render(s)); err != nil {
			logger.Fatal().Err(err).Str("path", path).Msg("write failed")
		}
		logger.Info().Str("path", path).Msg("created")
	}
}

func render(s sprite) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.w, s.h))
	outline := color.RGBA{0, 0, 0, 255}
	cx, cy := float64(s.w)/2, float64(s.h)/2
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			var inside, edge bool
			switch s.shape {
			case shapeBox:
				inside = true
				edge = x == 0 || y == 0 || x == s.w-1 || y == s.h-1
			case shapeCircle, shapeSaucer:
				dx, dy := (px-cx)/cx, (py-cy)/cy
				d := dx*dx + dy*dy
				inside = d <= 1
				edge = d > 0.8
			case shapeTriangle:
				// Остриё вверх
				half := cx * (py / float64(s.h))
				inside = abs(px-cx) <= half
				edge = abs(px-cx) > half-1.5 || y == s.h-1
			}
			switch {
			case inside && edge:
				img.Set(x, y, outline)
			case inside:
				img.Set(x, y, s.clr)
			}
		}
	}
	return img
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func writePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, img)
}
