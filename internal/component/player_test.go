package component

import (
	"testing"

	"go-space-shooter/internal/config"
	"go-space-shooter/pkg/utils"
)

func TestPlayerFireCooldown(t *testing.T) {
	p := NewPlayer(fakeTexture{}, fakeTexture{})
	if !p.Fire() {
		t.Fatal("first shot refused")
	}
	if p.Fire() {
		t.Fatal("fired during cooldown")
	}
	p.Update(config.PlayerFireCooldown)
	if !p.Fire() {
		t.Fatal("shot refused after cooldown")
	}
	if len(p.Bullets()) != 2 {
		t.Fatalf("bullets = %d, want 2", len(p.Bullets()))
	}
}

func TestPlayerBulletsLeaveTheTop(t *testing.T) {
	p := NewPlayer(fakeTexture{}, fakeTexture{})
	p.Fire()
	p.Update(2)
	if len(p.Bullets()) != 0 {
		t.Fatal("bullet above the screen kept")
	}
}

func TestPlayerCheckCollisionBulletConsumesOne(t *testing.T) {
	p := NewPlayer(fakeTexture{}, fakeTexture{})
	p.bullets = []*Bullet{
		NewBullet(100, 100, 6, 14, -600),
		NewBullet(100, 100, 6, 14, -600),
		NewBullet(500, 100, 6, 14, -600),
	}
	target := utils.NewRect(90, 90, 30, 30)
	if !p.CheckCollisionBullet(target) {
		t.Fatal("expected a hit")
	}
	if len(p.Bullets()) != 2 {
		t.Fatalf("bullets = %d, want 2", len(p.Bullets()))
	}
	if !p.CheckCollisionBullet(target) || p.CheckCollisionBullet(target) {
		t.Fatal("second bullet should hit once, then nothing is left")
	}
	if len(p.Bullets()) != 1 || p.Bullets()[0].X != 497 {
		t.Fatalf("wrong bullet consumed: %+v", p.Bullets())
	}
}

func TestPlayerCheckCollisionPlayer(t *testing.T) {
	p := NewPlayer(fakeTexture{}, fakeTexture{})
	if p.CheckCollisionPlayer(utils.NewRect(0, 0, 10, 10)) {
		t.Fatal("hit far from the player")
	}
	body := p.Rect()
	if !p.CheckCollisionPlayer(body) {
		t.Fatal("missed an overlapping rect")
	}
	if p.Lives() != config.PlayerLives-1 || !p.Invulnerable() {
		t.Fatalf("lives %d invulnerable %v", p.Lives(), p.Invulnerable())
	}
	if !p.CheckCollisionPlayer(body) || p.Lives() != config.PlayerLives-1 {
		t.Fatal("invulnerable player lost a life")
	}
	p.Update(config.PlayerInvulnerability)
	p.CheckCollisionPlayer(body)
	if p.Lives() != config.PlayerLives-2 {
		t.Fatalf("lives = %d", p.Lives())
	}
}

func TestPlayerMoveClamps(t *testing.T) {
	p := NewPlayer(fakeTexture{}, fakeTexture{})
	p.Move(-5, 100)
	if p.X != 0 {
		t.Fatalf("X = %v, want 0", p.X)
	}
	p.Move(1, 100)
	if p.X != config.ScreenWidth-config.PlayerSize {
		t.Fatalf("X = %v", p.X)
	}
}

func TestPlayerSaveLoad(t *testing.T) {
	p := NewPlayer(fakeTexture{}, fakeTexture{})
	p.X = 200
	p.SetLives(1)
	p.Fire()

	restored := NewPlayer(fakeTexture{}, fakeTexture{})
	restored.Load(p.Save())
	if restored.X != 200 || restored.Lives() != 1 || len(restored.Bullets()) != 1 {
		t.Fatalf("restored = %+v", restored)
	}
}
