package engine

// Callbacks is the application hook interface driven by the engine loop.
// Implementations build the scene and react to input each frame.
type Callbacks interface {
	// Init is called once before the first frame, after the window and
	// renderer are ready. Use it for one-time setup such as hiding the
	// cursor or configuring the camera.
	//
	// Parameters:
	//   - ctx: the engine context
	Init(ctx *Context)

	// Update is called once per frame before rendering. Submit this frame's
	// shapes here; nothing carries over from the previous frame.
	//
	// Parameters:
	//   - ctx: the engine context
	//   - deltaTime: seconds elapsed since the previous frame
	//
	// Returns:
	//   - shouldExit: true to stop the engine loop after this frame
	Update(ctx *Context, deltaTime float32) (shouldExit bool)
}
