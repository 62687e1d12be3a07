package system

import (
	"errors"
	"image/color"

	"go-space-shooter/internal/event"
	"go-space-shooter/internal/gfx"
	"go-space-shooter/pkg/utils"
)

type fakeTexture struct{ path string }

func (fakeTexture) Size() (int, int) { return 64, 64 }

type fakeTextures struct {
	loads    map[string]int
	releases map[string]int
	missing  map[string]bool
}

func newFakeTextures() *fakeTextures {
	return &fakeTextures{
		loads:    make(map[string]int),
		releases: make(map[string]int),
		missing:  make(map[string]bool),
	}
}

func (f *fakeTextures) Load(path string) (gfx.Texture, error) {
	if f.missing[path] {
		return nil, errors.New("missing " + path)
	}
	f.loads[path]++
	return fakeTexture{path}, nil
}

func (f *fakeTextures) Release(path string) {
	f.releases[path]++
}

// fakePlayer answers collision checks through optional hit functions.
type fakePlayer struct {
	x, y        float64
	bulletHit   func(r utils.Rect) bool
	bodyHit     func(r utils.Rect) bool
	bulletCalls int
	bodyCalls   int
}

func (p *fakePlayer) CheckCollisionBullet(r utils.Rect) bool {
	p.bulletCalls++
	return p.bulletHit != nil && p.bulletHit(r)
}

func (p *fakePlayer) CheckCollisionPlayer(r utils.Rect) bool {
	p.bodyCalls++
	return p.bodyHit != nil && p.bodyHit(r)
}

func (p *fakePlayer) Position() (float64, float64) { return p.x, p.y }

func always(utils.Rect) bool { return true }

type scoreRecorder struct {
	total  int
	awards int
}

func (s *scoreRecorder) IncreaseScore(points int) {
	s.total += points
	s.awards++
}

// scriptedRoller returns the scripted values in order, then zeros.
type scriptedRoller struct {
	rolls []int
	asked []int
}

func (r *scriptedRoller) Intn(n int) int {
	r.asked = append(r.asked, n)
	if len(r.rolls) == 0 {
		return 0
	}
	v := r.rolls[0]
	r.rolls = r.rolls[1:]
	return v
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) causes(t event.EventType) []event.Cause {
	var out []event.Cause
	for _, e := range l.events {
		if e.Type != t {
			continue
		}
		if info, ok := e.Data.(event.KillInfo); ok {
			out = append(out, info.Cause)
		}
	}
	return out
}

func listen(d *event.Dispatcher, types ...event.EventType) *eventLog {
	l := &eventLog{}
	for _, t := range types {
		d.Subscribe(t, l)
	}
	return l
}

type nopCanvas struct{ sprites int }

func (c *nopCanvas) DrawSprite(gfx.Texture, float64, float64, float64, float64, float64) {
	c.sprites++
}

func (c *nopCanvas) StrokeRect(float64, float64, float64, float64, color.Color) {}

func (c *nopCanvas) DrawText(string, int, int, color.Color) {}
