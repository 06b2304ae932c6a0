package viewstate

import (
	"sync"

	"github.com/jinzhu/copier"
	"github.com/sasha-s/go-deadlock"
)

// Patch is a full or partial replacement of a ViewState. Nil fields are left untouched.
// MatrixText has no patch field: it is never set from input.
type Patch struct {
	RotationDeltaX *float64
	RotationDeltaY *float64
	UniformScale   *float64

	PositionX, PositionY, PositionZ *float64
	RotationX, RotationY, RotationZ *float64
	ScaleX, ScaleY, ScaleZ          *float64
}

// Float returns a pointer to v, for building patches inline.
func Float(v float64) *float64 {
	return &v
}

// Full returns a patch that replaces every user-editable field with the values in v.
func Full(v ViewState) Patch {
	return Patch{
		RotationDeltaX: Float(v.RotationDeltaX),
		RotationDeltaY: Float(v.RotationDeltaY),
		UniformScale:   Float(v.UniformScale),
		PositionX:      Float(v.PositionX),
		PositionY:      Float(v.PositionY),
		PositionZ:      Float(v.PositionZ),
		RotationX:      Float(v.RotationX),
		RotationY:      Float(v.RotationY),
		RotationZ:      Float(v.RotationZ),
		ScaleX:         Float(v.ScaleX),
		ScaleY:         Float(v.ScaleY),
		ScaleZ:         Float(v.ScaleZ),
	}
}

// Observer is called with the new snapshot after every Replace.
type Observer func(ViewState)

// Store is the single owner of the live ViewState. Readers take snapshots every tick, so
// an edit is visible to the very next frame.
type Store struct {
	mu        deadlock.Mutex
	state     ViewState
	observers map[int]Observer
	nextID    int
}

// New returns a store holding Defaults().
func New() *Store {
	return &Store{state: Defaults(), observers: make(map[int]Observer)}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Replace merges p into the state and notifies observers. No validation is done: NaN or
// out-of-range values are stored as given.
func (s *Store) Replace(p Patch) {
	s.mu.Lock()
	// Only nil pointers are "empty"; a pointer to 0 still overwrites.
	if err := copier.CopyWithOption(&s.state, &p, copier.Option{IgnoreEmpty: true}); err != nil {
		s.mu.Unlock()
		return
	}
	snap := s.state
	obs := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		obs = append(obs, fn)
	}
	s.mu.Unlock()

	for _, fn := range obs {
		fn(snap)
	}
}

// Update applies fn to a copy of the current state and stores the result as a full patch.
// Handlers that derive the next value from the current one (e.g. keyboard panning) use it
// so each event builds on the latest state.
func (s *Store) Update(fn func(ViewState) ViewState) {
	s.Replace(Full(fn(s.Snapshot())))
}

// SetMatrixText stores the derived matrix text. Observers are not notified; the panel reads
// it on draw.
func (s *Store) SetMatrixText(text string) {
	s.mu.Lock()
	s.state.MatrixText = text
	s.mu.Unlock()
}

// Subscribe registers fn and returns a func that removes it.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.observers, id)
			s.mu.Unlock()
		})
	}
}
