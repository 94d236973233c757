package input

import (
	"testing"

	"github.com/stofffe/gpu-raymarcher/common"
	"github.com/stretchr/testify/assert"
)

func TestKeyPressed(t *testing.T) {
	kb := NewKeyboard()

	kb.SetKey(common.KeyA)

	assert.True(t, kb.KeyPressed(common.KeyA))
	assert.False(t, kb.KeyPressed(common.KeyB))

	kb.Snapshot()
	kb.SetKey(common.KeyB)

	assert.True(t, kb.KeyPressed(common.KeyA))
	assert.True(t, kb.KeyPressed(common.KeyB))

	kb.Snapshot()
	kb.ReleaseKey(common.KeyA)

	assert.False(t, kb.KeyPressed(common.KeyA))
	assert.True(t, kb.KeyPressed(common.KeyB))
}

func TestKeyJustPressed(t *testing.T) {
	kb := NewKeyboard()
	kb.SetKey(common.KeyA)

	assert.True(t, kb.KeyJustPressed(common.KeyA))
	assert.False(t, kb.KeyReleased(common.KeyA))

	// Key repeat after the snapshot must not register as a new press.
	kb.Snapshot()
	kb.SetKey(common.KeyA)

	assert.True(t, kb.KeyPressed(common.KeyA))
	assert.False(t, kb.KeyJustPressed(common.KeyA))
}

func TestKeyReleased(t *testing.T) {
	kb := NewKeyboard()
	kb.SetKey(common.KeyA)

	assert.False(t, kb.KeyReleased(common.KeyA))

	kb.Snapshot()
	kb.ReleaseKey(common.KeyA)

	assert.True(t, kb.KeyReleased(common.KeyA))
	assert.False(t, kb.KeyPressed(common.KeyA))
}

func TestKeyIntraFrameChurn(t *testing.T) {
	// Multiple set/release calls within one frame; only the final
	// membership matters.
	kb := NewKeyboard()
	kb.SetKey(common.KeyA)
	kb.ReleaseKey(common.KeyA)
	kb.SetKey(common.KeyA)

	assert.True(t, kb.KeyPressed(common.KeyA))
	assert.True(t, kb.KeyJustPressed(common.KeyA))
}

func TestModifierPressed(t *testing.T) {
	kb := NewKeyboard()

	kb.ModifiersChanged(common.MaskShift)

	assert.True(t, kb.ModifierPressed(common.ModShift))
	assert.False(t, kb.ModifierPressed(common.ModCtrl))

	kb.Snapshot()
	kb.ModifiersChanged(common.MaskShift | common.MaskCtrl)

	assert.True(t, kb.ModifierPressed(common.ModShift))
	assert.True(t, kb.ModifierPressed(common.ModCtrl))

	kb.Snapshot()
	kb.ModifiersChanged(common.MaskCtrl)

	assert.False(t, kb.ModifierPressed(common.ModShift))
	assert.True(t, kb.ModifierPressed(common.ModCtrl))
}

func TestModifierJustPressed(t *testing.T) {
	kb := NewKeyboard()
	kb.ModifiersChanged(common.MaskShift)

	assert.True(t, kb.ModifierJustPressed(common.ModShift))

	kb.Snapshot()
	kb.ModifiersChanged(0)

	assert.False(t, kb.ModifierJustPressed(common.ModShift))
}

func TestModifierReleased(t *testing.T) {
	kb := NewKeyboard()

	kb.ModifiersChanged(common.MaskShift | common.MaskCtrl)

	assert.False(t, kb.ModifierReleased(common.ModShift))
	assert.False(t, kb.ModifierReleased(common.ModCtrl))

	kb.Snapshot()
	kb.ModifiersChanged(common.MaskCtrl)

	assert.True(t, kb.ModifierReleased(common.ModShift))
	assert.True(t, kb.ModifierPressed(common.ModCtrl))
	assert.False(t, kb.ModifierReleased(common.ModCtrl))
}
