package event

import (
	"slices"
	"testing"
)

type recorder struct {
	name  string
	types []EventType
	log   *[]string
	// chain pushes follow-up events while handling
	chain func(ev GameEvent)
}

func (r *recorder) EventTypes() []EventType { return r.types }

func (r *recorder) HandleEvent(_ *struct{}, ev GameEvent) {
	*r.log = append(*r.log, r.name+":"+ev.Type.String())
	if r.chain != nil {
		r.chain(ev)
	}
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	q.Push(EventHeroFell, nil)
	q.Push(EventBoltFired, nil)
	if q.Len() != 2 {
		t.Fatalf("len = %d", q.Len())
	}

	evs := q.Consume()
	if len(evs) != 2 || evs[0].Type != EventHeroFell || evs[1].Type != EventBoltFired {
		t.Errorf("consume = %v", evs)
	}
	if q.Len() != 0 || q.Consume() != nil {
		t.Error("queue not drained")
	}
}

func TestRouterOrder(t *testing.T) {
	q := NewQueue()
	r := NewRouter[*struct{}](q)
	var log []string

	r.Register(&recorder{name: "a", types: []EventType{EventHeroFell, EventBoltFired}, log: &log})
	r.Register(&recorder{name: "b", types: []EventType{EventHeroFell}, log: &log})

	q.Push(EventHeroFell, nil)
	q.Push(EventBoltFired, nil)
	q.Push(EventQuizStarted, nil)

	n := r.DispatchAll(nil)
	if n != 3 {
		t.Errorf("dispatched = %d, want 3", n)
	}
	want := []string{"a:hero_fell", "b:hero_fell", "a:bolt_fired"}
	if !slices.Equal(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
	if r.HandlerCount(EventHeroFell) != 2 || r.HandlerCount(EventQuizStarted) != 0 {
		t.Error("handler counts")
	}
}

func TestRouterChainedEvents(t *testing.T) {
	q := NewQueue()
	r := NewRouter[*struct{}](q)
	var log []string

	r.Register(&recorder{
		name:  "gate",
		types: []EventType{EventQuizRequest},
		log:   &log,
		chain: func(GameEvent) { q.Push(EventQuizStarted, nil) },
	})
	r.Register(&recorder{name: "ui", types: []EventType{EventQuizStarted}, log: &log})

	q.Push(EventQuizRequest, nil)
	r.DispatchAll(nil)

	want := []string{"gate:quiz_request", "ui:quiz_started"}
	if !slices.Equal(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestRouterBoundsLoops(t *testing.T) {
	q := NewQueue()
	r := NewRouter[*struct{}](q)
	var log []string

	r.Register(&recorder{
		name:  "loop",
		types: []EventType{EventNotification},
		log:   &log,
		chain: func(GameEvent) { q.Push(EventNotification, nil) },
	})
	q.Push(EventNotification, nil)

	if n := r.DispatchAll(nil); n != maxDispatchRounds {
		t.Errorf("dispatched = %d, want %d", n, maxDispatchRounds)
	}
	if q.Len() != 1 {
		t.Errorf("pending = %d, want 1 left for next frame", q.Len())
	}
}
