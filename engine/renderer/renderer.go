// Package renderer drives the raymarch pipeline: per-frame shape submission,
// globals upload, compute dispatch, and presentation of the output texture
// onto the window surface via a fullscreen blit.
package renderer

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"cogentcore.org/core/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stofffe/gpu-raymarcher/engine/shape"
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	backendType RendererBackendType
	backend     RendererBackend

	pending *shape.List
	globals GPUGlobals

	surfaceWidth  int
	surfaceHeight int

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	resWidth             int
	resHeight            int
}

// Renderer defines the interface for the raymarch rendering system.
//
// Shapes are submitted fresh each frame and flattened into a GPU record
// stream at render time; nothing persists between frames. Camera, light and
// focal-length state live here and are uploaded in the globals uniform on
// every frame.
type Renderer interface {
	// SubmitShape adds a root shape to the current frame's scene.
	// Fails with shape.ErrCapacity if the scene's flattened record count
	// would exceed shape.MaxRecords; nothing is uploaded on failure.
	//
	// Parameters:
	//   - s: the root shape to render this frame
	//
	// Returns:
	//   - error: shape.ErrCapacity-wrapped error on capacity violation
	SubmitShape(s shape.Shape) error

	// SubmitShapes submits each shape in order, short-circuiting on the
	// first capacity failure.
	//
	// Parameters:
	//   - shapes: root shapes to render this frame
	//
	// Returns:
	//   - error: the first submission error, or nil
	SubmitShapes(shapes ...shape.Shape) error

	// RenderFrame runs one frame of the pipeline: uploads globals and the
	// flattened record stream, dispatches the raymarch compute pass, clears
	// the pending scene, and blits the result to the surface.
	//
	// Parameters:
	//   - elapsed: seconds since startup, uploaded as the shader time
	//
	// Returns:
	//   - error: ErrSurface-wrapped error when the surface needs
	//     reconfiguration, other errors when the frame is unrecoverable
	RenderFrame(elapsed float32) error

	// Resize reconfigures the presentation surface for a new window size.
	// The compute-output resolution is unaffected; the blit stretches.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	Resize(width, height int)

	// SetPresentMode switches the surface present mode, reconfiguring the
	// surface immediately with the last known window size.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// SetCameraPos sets the world-space camera position.
	SetCameraPos(pos math32.Vector3)

	// CameraPos returns the world-space camera position.
	CameraPos() math32.Vector3

	// SetCameraRot sets the camera rotation matrix (camera-local to world).
	SetCameraRot(rot math32.Matrix3)

	// CameraRot returns the camera rotation matrix.
	CameraRot() math32.Matrix3

	// SetFocalLength sets the camera focal length.
	SetFocalLength(focalLength float32)

	// FocalLength returns the camera focal length.
	FocalLength() float32

	// SetLightPos sets the world-space point light position.
	SetLightPos(pos math32.Vector3)

	// LightPos returns the world-space point light position.
	LightPos() math32.Vector3

	// Resolution returns the fixed compute-output resolution.
	//
	// Returns:
	//   - width, height: the output texture size in pixels
	Resolution() (width, height int)

	// CaptureFrame reads the output texture back from the GPU. This blocks
	// on the GPU and should not be called in the steady-state render path.
	//
	// Returns:
	//   - *image.RGBA: the captured frame
	//   - error: an error if the readback fails
	CaptureFrame() (*image.RGBA, error)

	// CaptureFramePNG reads the output texture back and encodes it to a PNG
	// file on a background worker, so only the readback blocks the caller.
	//
	// Parameters:
	//   - path: destination file path
	//
	// Returns:
	//   - error: an error if the readback fails or the encode cannot be queued
	CaptureFramePNG(path string) error

	// Release frees all GPU resources owned by the renderer.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer presenting to the given surface and applies
// the provided builder options. Shader or pipeline construction failures are
// fatal at startup and panic; there is no partial initialization.
//
// Parameters:
//   - surfaceDescriptor: the platform surface to present to
//   - surfaceWidth: initial window client width in pixels
//   - surfaceHeight: initial window client height in pixels
//   - opts: optional builder options
//
// Returns:
//   - Renderer: the initialized renderer
func NewRenderer(surfaceDescriptor *wgpu.SurfaceDescriptor, surfaceWidth, surfaceHeight int, opts ...RendererBuilderOption) Renderer {
	r := &renderer{
		backendType:   BackendTypeWGPU,
		pending:       shape.NewList(shape.MaxRecords),
		resWidth:      DefaultResolutionWidth,
		resHeight:     DefaultResolutionHeight,
		surfaceWidth:  surfaceWidth,
		surfaceHeight: surfaceHeight,
		globals: GPUGlobals{
			CameraRot:   [9]float32(math32.Identity3()),
			LightPos:    [3]float32{-2, 2, -4},
			FocalLength: 1.0,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.globals.ScreenDim = [2]uint32{uint32(r.resWidth), uint32(r.resHeight)}

	r.backend = newWGPURaymarchBackend(surfaceDescriptor, r.forceFallbackAdapter, r.resWidth, r.resHeight)
	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	r.backend.ConfigureSurface(surfaceWidth, surfaceHeight)

	return r
}

func (r *renderer) SubmitShape(s shape.Shape) error {
	return r.pending.Submit(s)
}

func (r *renderer) SubmitShapes(shapes ...shape.Shape) error {
	return r.pending.SubmitAll(shapes...)
}

func (r *renderer) RenderFrame(elapsed float32) error {
	records := shape.Encode(r.pending.Roots())

	r.globals.Time = elapsed
	r.globals.ShapeCount = uint32(len(records))
	r.backend.WriteGlobals(r.globals.Marshal())
	r.backend.WriteRecords(shape.MarshalRecords(records))

	if err := r.backend.DispatchRaymarch(); err != nil {
		return fmt.Errorf("raymarch dispatch failed: %w", err)
	}

	// The scene never persists: uploaded means consumed.
	r.pending.Clear()

	return r.backend.PresentFrame()
}

func (r *renderer) Resize(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	r.surfaceWidth = width
	r.surfaceHeight = height
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
	r.backend.ConfigureSurface(r.surfaceWidth, r.surfaceHeight)
}

func (r *renderer) SetCameraPos(pos math32.Vector3) {
	r.globals.CameraPos = [3]float32{pos.X, pos.Y, pos.Z}
}

func (r *renderer) CameraPos() math32.Vector3 {
	return math32.Vec3(r.globals.CameraPos[0], r.globals.CameraPos[1], r.globals.CameraPos[2])
}

func (r *renderer) SetCameraRot(rot math32.Matrix3) {
	r.globals.CameraRot = [9]float32(rot)
}

func (r *renderer) CameraRot() math32.Matrix3 {
	return math32.Matrix3(r.globals.CameraRot)
}

func (r *renderer) SetFocalLength(focalLength float32) {
	r.globals.FocalLength = focalLength
}

func (r *renderer) FocalLength() float32 {
	return r.globals.FocalLength
}

func (r *renderer) SetLightPos(pos math32.Vector3) {
	r.globals.LightPos = [3]float32{pos.X, pos.Y, pos.Z}
}

func (r *renderer) LightPos() math32.Vector3 {
	return math32.Vec3(r.globals.LightPos[0], r.globals.LightPos[1], r.globals.LightPos[2])
}

func (r *renderer) Resolution() (width, height int) {
	return r.backend.Resolution()
}

func (r *renderer) CaptureFrame() (*image.RGBA, error) {
	pixels, err := r.backend.ReadbackFrame()
	if err != nil {
		return nil, fmt.Errorf("frame capture failed: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, r.resWidth, r.resHeight))
	copy(img.Pix, pixels)
	return img, nil
}

func (r *renderer) CaptureFramePNG(path string) error {
	img, err := r.CaptureFrame()
	if err != nil {
		return err
	}
	return r.backend.EncodeCapture(func() error {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return png.Encode(f, img)
	})
}

func (r *renderer) Release() {
	r.backend.Release()
}
