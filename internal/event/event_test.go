package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	events []Event
	onCall func()
}

func (r *recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
	if r.onCall != nil {
		r.onCall()
	}
}

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	deaths, escapes := &recorder{}, &recorder{}
	d.Subscribe(EnemyDeath, deaths)
	d.Subscribe(EnemyEscape, escapes)

	d.Dispatch(Event{Type: EnemyDeath, Data: 1})
	d.Dispatch(Event{Type: Cleared})

	assert.Equal(t, []Event{{Type: EnemyDeath, Data: 1}}, deaths.events)
	assert.Empty(t, escapes.events)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(Cleared, a)
	d.Subscribe(Cleared, b)
	d.Unsubscribe(Cleared, a)

	d.Dispatch(Event{Type: Cleared})
	assert.Empty(t, a.events)
	assert.Len(t, b.events, 1)
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	a.onCall = func() { d.Unsubscribe(Cleared, a) }
	d.Subscribe(Cleared, a)
	d.Subscribe(Cleared, b)

	d.Dispatch(Event{Type: Cleared})
	d.Dispatch(Event{Type: Cleared})

	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 2)
}
