package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(MeteorDestroyed, a)
	d.Subscribe(MeteorDestroyed, b)
	d.Subscribe(UFODestroyed, b)

	d.Dispatch(Event{Type: MeteorDestroyed, Data: KillInfo{Cause: CauseBullet, Score: 10}})
	d.Dispatch(Event{Type: UFODestroyed})
	d.Dispatch(Event{Type: EnemyDestroyed})

	if len(a.got) != 1 {
		t.Fatalf("a received %d events, want 1", len(a.got))
	}
	if info, ok := a.got[0].Data.(KillInfo); !ok || info.Score != 10 {
		t.Fatalf("payload = %#v", a.got[0].Data)
	}
	if len(b.got) != 2 {
		t.Fatalf("b received %d events, want 2", len(b.got))
	}
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(EnemyDestroyed, r)
	d.Unsubscribe(EnemyDestroyed, r)
	d.Dispatch(Event{Type: EnemyDestroyed})
	if len(r.got) != 0 {
		t.Fatalf("unsubscribed listener got %d events", len(r.got))
	}
}

func TestNilDispatcherIsSafe(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: GameSaved})
}
