// internal/event/types.go
package event

const (
	MeteorDestroyed EventType = "MeteorDestroyed" // Data: KillInfo
	EnemyDestroyed  EventType = "EnemyDestroyed"  // Data: KillInfo
	UFODestroyed    EventType = "UFODestroyed"    // Data: KillInfo
	UFOHit          EventType = "UFOHit"          // Data: int, remaining health
	GameSaved       EventType = "GameSaved"       // Data: string, save path
	GameLoaded      EventType = "GameLoaded"      // Data: string, save path
)

// Cause says how an entity left the field.
type Cause string

const (
	CauseBullet    Cause = "bullet"
	CausePlayer    Cause = "player"
	CauseOffScreen Cause = "offscreen"
)

// KillInfo is the payload of destruction events.
type KillInfo struct {
	Cause Cause
	Score int
	X, Y  float64
}
