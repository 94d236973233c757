package common

// KeyCode is a virtual key code for cross-platform keyboard input handling.
// Values match GLFW key codes, which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
type KeyCode uint32

const (
	KeySpace KeyCode = 32

	Key0 KeyCode = 48 // 0 key (ASCII)
	Key1 KeyCode = 49 // 1 key (ASCII)
	Key2 KeyCode = 50 // 2 key (ASCII)
	Key3 KeyCode = 51 // 3 key (ASCII)
	Key4 KeyCode = 52 // 4 key (ASCII)
	Key5 KeyCode = 53 // 5 key (ASCII)
	Key6 KeyCode = 54 // 6 key (ASCII)
	Key7 KeyCode = 55 // 7 key (ASCII)
	Key8 KeyCode = 56 // 8 key (ASCII)
	Key9 KeyCode = 57 // 9 key (ASCII)

	KeyA KeyCode = 65
	KeyB KeyCode = 66
	KeyC KeyCode = 67
	KeyD KeyCode = 68
	KeyE KeyCode = 69
	KeyF KeyCode = 70
	KeyG KeyCode = 71
	KeyH KeyCode = 72
	KeyI KeyCode = 73
	KeyJ KeyCode = 74
	KeyK KeyCode = 75
	KeyL KeyCode = 76
	KeyM KeyCode = 77
	KeyN KeyCode = 78
	KeyO KeyCode = 79
	KeyP KeyCode = 80
	KeyQ KeyCode = 81
	KeyR KeyCode = 82
	KeyS KeyCode = 83
	KeyT KeyCode = 84
	KeyU KeyCode = 85
	KeyV KeyCode = 86
	KeyW KeyCode = 87
	KeyX KeyCode = 88
	KeyY KeyCode = 89
	KeyZ KeyCode = 90

	KeyEscape    KeyCode = 256
	KeyEnter     KeyCode = 257
	KeyTab       KeyCode = 258
	KeyBackspace KeyCode = 259
	KeyRight     KeyCode = 262
	KeyLeft      KeyCode = 263
	KeyDown      KeyCode = 264
	KeyUp        KeyCode = 265

	KeyF1  KeyCode = 290
	KeyF2  KeyCode = 291
	KeyF3  KeyCode = 292
	KeyF4  KeyCode = 293
	KeyF5  KeyCode = 294
	KeyF6  KeyCode = 295
	KeyF7  KeyCode = 296
	KeyF8  KeyCode = 297
	KeyF9  KeyCode = 298
	KeyF10 KeyCode = 299
	KeyF11 KeyCode = 300
	KeyF12 KeyCode = 301

	KeyLeftShift    KeyCode = 340
	KeyLeftControl  KeyCode = 341
	KeyLeftAlt      KeyCode = 342
	KeyLeftSuper    KeyCode = 343
	KeyRightShift   KeyCode = 344
	KeyRightControl KeyCode = 345
	KeyRightAlt     KeyCode = 346
	KeyRightSuper   KeyCode = 347
)

// MouseButton identifies a mouse button.
// Values match GLFW mouse button codes.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
type MouseButton uint32

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
	MouseButton4      MouseButton = 3
	MouseButton5      MouseButton = 4
)

// KeyModifier identifies a modifier key tracked independently of its
// left/right key codes. The modifier set is recomputed wholesale from a
// ModifierMask on every modifier-change event rather than toggled per key.
type KeyModifier uint32

const (
	ModShift KeyModifier = iota
	ModCtrl
	ModAlt
	ModLogo
)

// ModifierMask is a bitmask of currently held modifier keys.
// Bit values match glfw.ModifierKey so the window layer can pass the
// platform mask through unaltered.
type ModifierMask uint32

const (
	MaskShift ModifierMask = 1 << iota
	MaskCtrl
	MaskAlt
	MaskLogo
)

// Shift reports whether the shift bit is set.
func (m ModifierMask) Shift() bool { return m&MaskShift != 0 }

// Ctrl reports whether the control bit is set.
func (m ModifierMask) Ctrl() bool { return m&MaskCtrl != 0 }

// Alt reports whether the alt bit is set.
func (m ModifierMask) Alt() bool { return m&MaskAlt != 0 }

// Logo reports whether the logo (super/cmd/windows) bit is set.
func (m ModifierMask) Logo() bool { return m&MaskLogo != 0 }
