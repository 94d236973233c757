package renderer

const (
	// DefaultResolutionWidth is the default compute-output texture width.
	DefaultResolutionWidth = 1280

	// DefaultResolutionHeight is the default compute-output texture height.
	DefaultResolutionHeight = 720
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithResolution sets the compute-output texture resolution. The resolution
// is fixed for the renderer's lifetime; window resizes stretch the output
// during the blit rather than re-rendering at the new size.
//
// Parameters:
//   - width: output texture width in pixels
//   - height: output texture height in pixels
//
// Returns:
//   - RendererBuilderOption: a function that applies the resolution option to a renderer
func WithResolution(width, height int) RendererBuilderOption {
	return func(r *renderer) {
		if width > 0 && height > 0 {
			r.resWidth = width
			r.resHeight = height
		}
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the
// system (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}
