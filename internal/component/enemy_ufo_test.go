package component

import (
	"testing"

	"go-space-shooter/internal/config"
)

func TestNewEnemyUFO(t *testing.T) {
	left := NewEnemyUFO(fakeTexture{}, 10)
	right := NewEnemyUFO(fakeTexture{}, config.ScreenWidth-config.UFOWidth-10)
	if left.MovingLeft() || !right.MovingLeft() {
		t.Fatal("UFO should head to the farther edge")
	}
	if left.Health() != config.UFOHealth || left.Y != -config.UFOHeight {
		t.Fatalf("health %d y %v", left.Health(), left.Y)
	}
}

func TestEnemyUFOEntersAndHovers(t *testing.T) {
	u := NewEnemyUFO(fakeTexture{}, 500)
	u.Update(0.5)
	if want := -config.UFOHeight + config.UFOEntrySpeed*0.5; !near(u.Y, want) {
		t.Fatalf("Y = %v, want %v", u.Y, want)
	}
	for i := 0; i < 10; i++ {
		u.Update(0.5)
	}
	if u.Y != config.UFOHoverY {
		t.Fatalf("Y = %v, want hover %v", u.Y, config.UFOHoverY)
	}
}

func TestEnemyUFOBouncesOffEdges(t *testing.T) {
	u := NewEnemyUFO(fakeTexture{}, 0)
	u.X = config.ScreenWidth - config.UFOWidth - 1
	u.Update(0.1)
	if !u.MovingLeft() || u.X != config.ScreenWidth-config.UFOWidth {
		t.Fatalf("right edge: X %v movingLeft %v", u.X, u.MovingLeft())
	}

	u.X = 1
	u.Update(0.1)
	if u.MovingLeft() || u.X != 0 {
		t.Fatalf("left edge: X %v movingLeft %v", u.X, u.MovingLeft())
	}
}

func TestEnemyUFOSpawnSignal(t *testing.T) {
	u := NewEnemyUFO(fakeTexture{}, 500)
	signals := 0
	for i := 0; i < 5; i++ {
		if u.Update(0.5) {
			signals++
			if i != 4 {
				t.Fatalf("signalled on update %d", i)
			}
		}
	}
	if signals != 1 {
		t.Fatalf("signals = %d, want 1", signals)
	}
	if u.SpawnTimer() != config.UFOSpawnTimerMax {
		t.Fatalf("spawn timer not reset: %v", u.SpawnTimer())
	}
}

func TestEnemyUFOReduceHealth(t *testing.T) {
	u := NewEnemyUFO(fakeTexture{}, 0)
	for want := config.UFOHealth - 1; want >= -1; want-- {
		if got := u.ReduceHealth(); got != want {
			t.Fatalf("ReduceHealth = %d, want %d", got, want)
		}
	}
}

func TestEnemyUFOSaveLoad(t *testing.T) {
	u := NewEnemyUFO(fakeTexture{}, 700)
	u.Y = 60
	u.ReduceHealth()
	u.Update(0.3)

	doc := u.Save()
	if !doc.HasKey("MovingLeft") {
		t.Fatal("MovingLeft marker missing")
	}

	restored := NewEnemyUFO(fakeTexture{}, 0)
	restored.Load(doc)
	if restored.X != u.X || restored.Y != u.Y || restored.Health() != u.Health() ||
		restored.MovingLeft() != u.MovingLeft() || restored.SpawnTimer() != u.SpawnTimer() {
		t.Fatalf("restored %+v, want %+v", restored, u)
	}
}
