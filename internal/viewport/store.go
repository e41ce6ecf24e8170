// Package viewport keeps the responsive layout flags shared by every view.
// The store never measures anything itself: it is seeded once with a width
// and afterwards only records what an external media-query listener reports.
package viewport

import "sync/atomic"

// Breakpoints in CSS pixels.
const (
	Wide   = 768
	Narrow = 425
)

// Store holds the two breakpoint flags.  The flags are independent; callers
// may update them in any order.
type Store struct {
	minWidth768 atomic.Bool
	minWidth425 atomic.Bool
	disposed    atomic.Bool
}

// New returns a store initialized from width.
func New(width int) *Store {
	s := &Store{}
	s.Init(width)
	return s
}

// Init seeds both flags from a viewport width and re-opens a disposed store.
func (s *Store) Init(width int) {
	s.minWidth768.Store(width >= Wide)
	s.minWidth425.Store(width >= Narrow)
	s.disposed.Store(false)
}

// Dispose ends the store's lifecycle.  Later updates are ignored and both
// flags read false.
func (s *Store) Dispose() {
	s.disposed.Store(true)
	s.minWidth768.Store(false)
	s.minWidth425.Store(false)
}

// IsMinWidth768Px reports whether the viewport is at least 768px wide.
func (s *Store) IsMinWidth768Px() bool { return s.minWidth768.Load() }

// IsMinWidth425Px reports whether the viewport is at least 425px wide.
func (s *Store) IsMinWidth425Px() bool { return s.minWidth425.Load() }

// SetIsMinWidth768Px records a change of the 768px media query.
func (s *Store) SetIsMinWidth768Px(v bool) {
	if s.disposed.Load() {
		return
	}
	s.minWidth768.Store(v)
}

// SetIsMinWidth425Px records a change of the 425px media query.
func (s *Store) SetIsMinWidth425Px(v bool) {
	if s.disposed.Load() {
		return
	}
	s.minWidth425.Store(v)
}

// Snapshot is a point-in-time copy of the flags for rendering.
type Snapshot struct {
	MinWidth768 bool `json:"min_width_768"`
	MinWidth425 bool `json:"min_width_425"`
}

// Snapshot copies the current flags.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{MinWidth768: s.IsMinWidth768Px(), MinWidth425: s.IsMinWidth425Px()}
}
