// internal/interfaces/game_context.go
package interfaces

import "go-space-shooter/pkg/utils"

// PlayerCollider is what enemies and hazards need to know about the player.
type PlayerCollider interface {
	// CheckCollisionBullet reports whether one of the player's bullets hits r.
	// A bullet that hits is consumed.
	CheckCollisionBullet(r utils.Rect) bool
	// CheckCollisionPlayer reports whether the player's body overlaps r.
	CheckCollisionPlayer(r utils.Rect) bool
	// Position returns the centre of the player's body.
	Position() (x, y float64)
}

// ScoreSink receives score awarded for kills.
type ScoreSink interface {
	IncreaseScore(points int)
}
