package focus

import (
	"context"
	"sync"

	"github.com/bnema/spatialnav/internal/application/port"
	"github.com/bnema/spatialnav/internal/domain/entity"
	"github.com/bnema/spatialnav/internal/logging"
)

// State holds the currently focused element id and notifies observers.
// It is a pure state holder: ids are not checked against the registry.
type State struct {
	focused entity.ElementID

	observers []subscription
	nextSubID uint64

	mu sync.Mutex
}

type subscription struct {
	id       uint64
	observer port.FocusObserver
}

// NewState creates an unfocused state.
func NewState() *State {
	return &State{}
}

// Focused returns the focused id and whether anything is focused.
func (s *State) Focused() (entity.ElementID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focused, s.focused != ""
}

// SetFocused unconditionally focuses id. An empty id clears focus.
func (s *State) SetFocused(ctx context.Context, id entity.ElementID) {
	s.Change(ctx, id, entity.FocusCauseExplicit, "")
}

// Clear removes focus.
func (s *State) Clear(ctx context.Context) {
	s.Change(ctx, "", entity.FocusCauseExplicit, "")
}

// Change sets focus to id and notifies observers synchronously.
// Setting the id that is already focused is not a mutation and notifies nobody.
func (s *State) Change(ctx context.Context, id entity.ElementID, cause entity.FocusCause, dir entity.Direction) {
	s.mu.Lock()
	if s.focused == id {
		s.mu.Unlock()
		return
	}

	change := entity.FocusChange{
		Previous:  s.focused,
		Current:   id,
		Cause:     cause,
		Direction: dir,
	}
	s.focused = id
	s.notifyObserversLocked(ctx, change)
}

// Subscribe registers an observer and returns a function removing it.
// Observers run in subscription order.
func (s *State) Subscribe(observer port.FocusObserver) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.observers = append(s.observers, subscription{id: id, observer: observer})

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

func (s *State) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sub := range s.observers {
		if sub.id == id {
			s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
			return
		}
	}
}

// notifyObserversLocked copies observers, releases the lock, then notifies.
// Must be called with s.mu held. Releases the lock before calling observers
// so that an observer may read or change focus.
func (s *State) notifyObserversLocked(ctx context.Context, change entity.FocusChange) {
	observers := make([]subscription, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	logging.FromContext(ctx).Debug().
		Str("from", string(change.Previous)).
		Str("to", string(change.Current)).
		Str("cause", string(change.Cause)).
		Msg("focus changed")

	for _, sub := range observers {
		sub.observer.FocusChanged(ctx, change)
	}
}
