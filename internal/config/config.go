// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth     = 1280
	ScreenHeight    = 720
	PlayfieldBottom = 720.0 // entities at or below this y are gone
	MaxDeltaTime    = 0.06

	GameDataPath = "assets/GameData.json"
	SavePath     = "saves/SaveData.json"
	SaveVersion  = 1

	PlaceholderSize = 64
)

// Meteor storm
const (
	DefaultBigMeteorTextureName   = "assets/textures/meteor_big.png"
	DefaultSmallMeteorTextureName = "assets/textures/meteor_small.png"
	DefaultMeteorCount            = 8
	DefaultMeteorScoreValue       = 10
	DefaultMeteorSpawnTimerMax    = 1.5 // seconds
	MeteorSpawnDecayRate          = 1.0

	MeteorSpinMin   = 15 // degrees per second
	MeteorSpinRange = 20 // spin is drawn from [MeteorSpinMin, MeteorSpinMin+MeteorSpinRange)

	BigMeteorSize    = 96.0
	SmallMeteorSize  = 48.0
	BigMeteorSpeed   = 120.0 // pixels per second
	SmallMeteorSpeed = 180.0
)

// Enemy manager
const (
	DefaultEnemyShipTextureName       = "assets/textures/enemy_ship.png"
	DefaultEnemyShipBulletTextureName = "assets/textures/enemy_bullet.png"
	DefaultEnemyUFOTextureName        = "assets/textures/enemy_ufo.png"
	DefaultEnemyShipScoreValue        = 50
	DefaultEnemyUFOScoreValue         = 250
	DefaultEnemySpawnerLimit          = 6
	DefaultEnemySpawnTimerMax         = 150.0 // decays at EnemySpawnDecayRate per second
	EnemySpawnDecayRate               = 100.0

	EnemySpawnRoll    = 20
	UFOSpawnThreshold = 14 // rolls at or above this spawn a UFO

	EnemyShipSize          = 64.0
	EnemyShipDefaultSizing = 100.0 // percent of EnemyShipSize
	UFOSpawnedSizing       = 30.0
	EnemyShipSpeed         = 90.0
	EnemyShipDriftSpeed    = 40.0
	EnemyShipFireInterval  = 1.5

	EnemyBulletSpeed  = 300.0
	EnemyBulletWidth  = 8.0
	EnemyBulletHeight = 16.0

	UFOWidth         = 128.0
	UFOHeight        = 64.0
	UFOHealth        = 5
	UFOSpeed         = 150.0
	UFOEntrySpeed    = 80.0
	UFOHoverY        = 60.0
	UFOSpawnTimerMax = 2.5
	UFOChildOffsetY  = 20.0
)

// Player
const (
	DefaultPlayerTextureName       = "assets/textures/player.png"
	DefaultPlayerBulletTextureName = "assets/textures/player_bullet.png"

	PlayerSize            = 48.0
	PlayerSpeed           = 360.0
	PlayerLives           = 3
	PlayerInvulnerability = 1.0
	PlayerFireCooldown    = 0.2
	PlayerBulletSpeed     = 600.0
	PlayerBulletWidth     = 6.0
	PlayerBulletHeight    = 14.0
	PlayerBottomMargin    = 24.0
)

// HUD
const (
	HUDMargin      = 16
	HUDLineHeight  = 18
	LivesBoxSize   = 12.0
	LivesBoxSpacer = 6.0
)

var (
	BackgroundColor  = color.RGBA{10, 10, 24, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextAccentColor  = color.RGBA{255, 215, 0, 255}
	PlaceholderColor = color.RGBA{255, 0, 255, 255}
	HitboxColor      = color.RGBA{0, 255, 0, 255}
	LivesColor       = color.RGBA{220, 60, 60, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
)
