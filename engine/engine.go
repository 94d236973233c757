// Package engine ties the window, input state, shape arena and renderer
// together into a single-threaded frame loop driven by application Callbacks.
package engine

import (
	"errors"
	"fmt"

	"github.com/stofffe/gpu-raymarcher/engine/clock"
	"github.com/stofffe/gpu-raymarcher/engine/input"
	"github.com/stofffe/gpu-raymarcher/engine/profiler"
	"github.com/stofffe/gpu-raymarcher/engine/renderer"
	"github.com/stofffe/gpu-raymarcher/engine/shape"
	"github.com/stofffe/gpu-raymarcher/engine/window"

	"github.com/stofffe/gpu-raymarcher/common"
)

// engine is the implementation of the Engine interface.
// Owns the frame loop and routes window events into the input state.
type engine struct {
	running bool

	window   window.Window
	renderer renderer.Renderer
	input    *input.State
	arena    *shape.Arena
	clock    *clock.Clock

	profiler         *profiler.Profiler
	profilingEnabled bool

	ctx *Context

	// Pre-construction config collected from builder options
	title        string
	width        int
	height       int
	rendererOpts []renderer.RendererBuilderOption
}

// Engine is the main entry point. It owns the window, the renderer and the
// frame loop, and drives application Callbacks once per frame.
//
// All engine work happens on the calling goroutine; Run must be called from
// the main goroutine because the windowing layer requires it.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Renderer returns the underlying renderer.
	//
	// Returns:
	//   - renderer.Renderer: the renderer instance
	Renderer() renderer.Renderer

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// Run starts the frame loop and blocks until the window closes, the
	// Update callback signals exit, or Quit is called. Each frame: window
	// events are polled, Update runs with the frame delta time, the scene
	// is rendered, and the input state rolls over to the next frame.
	//
	// Parameters:
	//   - callbacks: the application hooks driven by the loop
	//
	// Returns:
	//   - error: the fatal render error that stopped the loop, or nil on a
	//     normal exit
	Run(callbacks Callbacks) error

	// Quit stops the frame loop after the current frame.
	// Safe to call multiple times.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine with the provided options. The window is
// created first, then the renderer is attached to its surface, and window
// events are wired into the input state. Panics if the window or GPU stack
// cannot be initialized, since nothing can render without them.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		title:            "Raymarcher",
		width:            1280,
		height:           720,
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window == nil {
		e.window = window.NewWindow(
			window.WithTitle(e.title),
			window.WithWidth(e.width),
			window.WithHeight(e.height),
		)
	}

	e.input = input.New()
	e.arena = shape.NewArena(shape.MaxRecords)
	e.clock = clock.New()

	e.renderer = renderer.NewRenderer(
		e.window.SurfaceDescriptor(),
		e.window.Width(),
		e.window.Height(),
		e.rendererOpts...,
	)

	e.wireWindowEvents()

	e.ctx = &Context{
		engine:   e,
		window:   e.window,
		renderer: e.renderer,
		input:    e.input,
		arena:    e.arena,
		clock:    e.clock,
	}

	return e
}

// wireWindowEvents routes window events into the input state and the
// renderer. Events mutate the current-frame input sets; edge detection
// happens at query time against the previous frame's snapshot.
func (e *engine) wireWindowEvents() {
	kb := e.input.Keyboard
	mouse := e.input.Mouse

	e.window.SetKeyDownCallback(func(keyCode uint32) {
		kb.SetKey(common.KeyCode(keyCode))
	})
	e.window.SetKeyUpCallback(func(keyCode uint32) {
		kb.ReleaseKey(common.KeyCode(keyCode))
	})
	e.window.SetModifiersCallback(func(mods uint32) {
		kb.ModifiersChanged(common.ModifierMask(mods))
	})

	e.window.SetMouseButtonDownCallback(func(button uint32) {
		mouse.PressButton(common.MouseButton(button))
	})
	e.window.SetMouseButtonUpCallback(func(button uint32) {
		mouse.ReleaseButton(common.MouseButton(button))
	})
	// Cursor positions arrive in screen coordinates, so the bounds check
	// uses the client size rather than the framebuffer size.
	e.window.SetCursorPosCallback(func(x, y float64) {
		mouse.SetPos(x, y, e.window.ClientWidth(), e.window.ClientHeight())
	})
	e.window.SetCursorEnterCallback(func(entered bool) {
		mouse.SetOnScreen(entered)
	})
	e.window.SetScrollCallback(func(dx, dy float64) {
		mouse.AddScroll(dx, dy)
	})

	e.window.SetResizeCallback(func(width, height int) {
		e.renderer.Resize(width, height)
	})
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Run(callbacks Callbacks) error {
	e.running = true

	if callbacks != nil {
		callbacks.Init(e.ctx)
	}

	var runErr error
	for e.running && e.window.PollEvents() {
		dt := e.clock.Tick()

		if callbacks != nil && callbacks.Update(e.ctx, dt) {
			break
		}

		if err := e.renderer.RenderFrame(e.clock.SinceStart()); err != nil {
			if errors.Is(err, renderer.ErrSurface) {
				// The surface was lost or is outdated; reconfigure with the
				// current framebuffer size and try again next frame.
				common.Logger().Warn("surface lost, reconfiguring",
					"width", e.window.Width(), "height", e.window.Height())
				e.renderer.Resize(e.window.Width(), e.window.Height())
			} else {
				runErr = fmt.Errorf("render frame failed: %w", err)
				break
			}
		}

		// Frame boundary: current input becomes the previous-frame snapshot,
		// motion and scroll deltas reset, and the shape arena is recycled for
		// the next frame's scene.
		e.input.Snapshot()
		e.input.ResetDeltas()
		e.arena.Reset()

		if e.profilingEnabled && e.profiler != nil {
			e.profiler.Tick()
		}
	}

	e.running = false
	e.renderer.Release()
	if err := e.window.Close(); err != nil {
		common.Logger().Warn("window close failed", "err", err)
	}
	return runErr
}

func (e *engine) Quit() {
	e.running = false
}
