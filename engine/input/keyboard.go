package input

import (
	"github.com/stofffe/gpu-raymarcher/common"
)

// Keyboard tracks pressed keys and modifiers for the current frame together
// with the previous frame's snapshot. Edge predicates are derived from the
// pair of sets, never stored; only final membership at query time matters,
// so repeated set/release calls within one frame are harmless.
type Keyboard struct {
	pressed         map[common.KeyCode]struct{}
	previousPressed map[common.KeyCode]struct{}

	pressedModifiers         map[common.KeyModifier]struct{}
	previousPressedModifiers map[common.KeyModifier]struct{}
}

// NewKeyboard creates keyboard state with no keys or modifiers pressed.
//
// Returns:
//   - *Keyboard: the initialized keyboard state
func NewKeyboard() *Keyboard {
	return &Keyboard{
		pressed:                  make(map[common.KeyCode]struct{}),
		previousPressed:          make(map[common.KeyCode]struct{}),
		pressedModifiers:         make(map[common.KeyModifier]struct{}),
		previousPressedModifiers: make(map[common.KeyModifier]struct{}),
	}
}

// KeyPressed reports whether the key is currently down. Accepts repeating.
func (k *Keyboard) KeyPressed(key common.KeyCode) bool {
	_, ok := k.pressed[key]
	return ok
}

// KeyJustPressed reports whether the key went down this frame. Does not
// accept repeating.
func (k *Keyboard) KeyJustPressed(key common.KeyCode) bool {
	_, now := k.pressed[key]
	_, before := k.previousPressed[key]
	return now && !before
}

// KeyReleased reports whether the key went up this frame.
func (k *Keyboard) KeyReleased(key common.KeyCode) bool {
	_, now := k.pressed[key]
	_, before := k.previousPressed[key]
	return !now && before
}

// ModifierPressed reports whether the modifier is currently active.
func (k *Keyboard) ModifierPressed(mod common.KeyModifier) bool {
	_, ok := k.pressedModifiers[mod]
	return ok
}

// ModifierJustPressed reports whether the modifier became active this frame.
func (k *Keyboard) ModifierJustPressed(mod common.KeyModifier) bool {
	_, now := k.pressedModifiers[mod]
	_, before := k.previousPressedModifiers[mod]
	return now && !before
}

// ModifierReleased reports whether the modifier became inactive this frame.
func (k *Keyboard) ModifierReleased(mod common.KeyModifier) bool {
	_, now := k.pressedModifiers[mod]
	_, before := k.previousPressedModifiers[mod]
	return !now && before
}

// SetKey marks the key as pressed for the current frame.
func (k *Keyboard) SetKey(key common.KeyCode) {
	k.pressed[key] = struct{}{}
}

// ReleaseKey marks the key as no longer pressed.
func (k *Keyboard) ReleaseKey(key common.KeyCode) {
	delete(k.pressed, key)
}

// ModifiersChanged replaces the current modifier set wholesale from the
// platform bitmask. Modifiers are never toggled incrementally; every change
// event carries the complete state.
func (k *Keyboard) ModifiersChanged(mask common.ModifierMask) {
	clear(k.pressedModifiers)
	if mask.Shift() {
		k.pressedModifiers[common.ModShift] = struct{}{}
	}
	if mask.Ctrl() {
		k.pressedModifiers[common.ModCtrl] = struct{}{}
	}
	if mask.Alt() {
		k.pressedModifiers[common.ModAlt] = struct{}{}
	}
	if mask.Logo() {
		k.pressedModifiers[common.ModLogo] = struct{}{}
	}
}

// Snapshot copies the current key and modifier sets into the previous-frame
// snapshots. Called once per frame boundary.
func (k *Keyboard) Snapshot() {
	clear(k.previousPressed)
	for key := range k.pressed {
		k.previousPressed[key] = struct{}{}
	}
	clear(k.previousPressedModifiers)
	for mod := range k.pressedModifiers {
		k.previousPressedModifiers[mod] = struct{}{}
	}
}
