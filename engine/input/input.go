// Package input tracks keyboard and mouse state across frames and derives
// per-frame edge transitions (just pressed, released) from consecutive
// snapshots of the pressed sets. Event callbacks mutate the current sets at
// arbitrary points during a frame; queries compare current against the
// previous frame's snapshot. All state is mutated and queried on the event
// loop thread only.
package input

// State bundles keyboard and mouse state for one window.
type State struct {
	Keyboard *Keyboard
	Mouse    *Mouse
}

// New creates empty input state with no keys or buttons pressed.
//
// Returns:
//   - *State: the initialized input state
func New() *State {
	return &State{
		Keyboard: NewKeyboard(),
		Mouse:    NewMouse(),
	}
}

// Snapshot copies the current keyboard, modifier and mouse button sets into
// the previous-frame snapshots. Must be called exactly once per frame, after
// the frame's queries have been consumed and before the next frame's events
// arrive. Skipping it leaves edge detection stuck on stale history; calling
// it twice collapses two frames' edges into one.
func (s *State) Snapshot() {
	s.Keyboard.Snapshot()
	s.Mouse.Snapshot()
}

// ResetDeltas zeroes the accumulated mouse motion and scroll deltas. Called
// at the same frame boundary as Snapshot, after the deltas have been read.
func (s *State) ResetDeltas() {
	s.Mouse.ResetDeltas()
}
