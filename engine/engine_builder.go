package engine

import (
	"github.com/stofffe/gpu-raymarcher/engine/renderer"
	"github.com/stofffe/gpu-raymarcher/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithTitle sets the window title.
//
// Parameters:
//   - title: the title text displayed in the title bar
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTitle(title string) EngineBuilderOption {
	return func(e *engine) {
		e.title = title
	}
}

// WithSize sets the initial window size in pixels.
// Values <= 0 keep the defaults (1280x720).
//
// Parameters:
//   - width: window width in pixels
//   - height: window height in pixels
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSize(width, height int) EngineBuilderOption {
	return func(e *engine) {
		if width > 0 {
			e.width = width
		}
		if height > 0 {
			e.height = height
		}
	}
}

// WithWindow sets a custom configured window for the engine to use rather
// than allowing the engine to create and manage one internally.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithResolution sets the fixed compute resolution of the raymarch output
// texture. The output is scaled onto the window surface regardless of the
// window size.
//
// Parameters:
//   - width: compute width in pixels
//   - height: compute height in pixels
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithResolution(width, height int) EngineBuilderOption {
	return func(e *engine) {
		e.rendererOpts = append(e.rendererOpts, renderer.WithResolution(width, height))
	}
}

// WithPresentMode sets the initial surface presentation mode.
//
// Parameters:
//   - mode: vsync or uncapped presentation
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithPresentMode(mode renderer.PresentMode) EngineBuilderOption {
	return func(e *engine) {
		e.rendererOpts = append(e.rendererOpts, renderer.WithPresentMode(mode))
	}
}

// WithForceSoftwareRenderer forces adapter selection to a software fallback.
// Useful for headless environments and CI.
//
// Parameters:
//   - force: true to require the fallback adapter
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithForceSoftwareRenderer(force bool) EngineBuilderOption {
	return func(e *engine) {
		e.rendererOpts = append(e.rendererOpts, renderer.WithForceSoftwareRenderer(force))
	}
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}
