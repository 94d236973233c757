package renderer

import (
	_ "embed"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stofffe/gpu-raymarcher/engine/shape"
)

// RaymarchComputeSource is the WGSL source of the raymarch compute shader.
//
//go:embed assets/raymarch.wgsl
var RaymarchComputeSource string

// BlitShaderSource is the WGSL source of the fullscreen blit shader.
//
//go:embed assets/blit.wgsl
var BlitShaderSource string

// ErrSurface marks recoverable presentation-surface failures (lost or
// outdated swapchain). The frame loop reconfigures the surface with the last
// known window size and retries on the next frame instead of terminating.
var ErrSurface = errors.New("renderer: surface unavailable")

type wgpuRaymarchBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat *wgpu.TextureFormat
	presentMode   wgpu.PresentMode
	surfaceWidth  int
	surfaceHeight int

	// Compute-output resolution is fixed at construction; window resizes
	// reconfigure the surface only and the blit stretches the texture.
	resWidth  int
	resHeight int

	recordBuffer  *wgpu.Buffer
	globalsBuffer *wgpu.Buffer
	outputTexture *wgpu.Texture
	outputView    *wgpu.TextureView

	computePipeline  *wgpu.ComputePipeline
	computeBindGroup *wgpu.BindGroup

	blitPipeline  *wgpu.RenderPipeline
	blitBindGroup *wgpu.BindGroup
	blitSampler   *wgpu.Sampler
	vertexBuffer  *wgpu.Buffer
	indexBuffer   *wgpu.Buffer
	indexCount    int

	// encodePool offloads frame-capture encoding so the render loop does not
	// stall on image compression.
	encodePool worker.DynamicWorkerPool
	captureID  int
}

type wgpuRaymarchBackend interface {
	Device() *wgpu.Device
	Queue() *wgpu.Queue

	// ConfigureSurface reconfigures the presentation surface for a new size.
	// Called on window resize and to recover from ErrSurface failures.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets the surface present mode which controls how frames
	// are delivered to the display. Takes effect on the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// WriteGlobals uploads the marshaled globals uniform for this frame.
	//
	// Parameters:
	//   - data: the GPUGlobals byte buffer (GPUGlobalsSize bytes)
	WriteGlobals(data []byte)

	// WriteRecords uploads the marshaled shape record stream for this frame.
	// Data beyond the uploaded length is stale but never read: the shader
	// bounds its walk by the shape count in the globals uniform.
	//
	// Parameters:
	//   - data: the flattened record byte buffer
	WriteRecords(data []byte)

	// DispatchRaymarch encodes and submits the raymarch compute pass,
	// covering the output texture with ceil-divided 8x8 workgroups.
	//
	// Returns:
	//   - error: an error if command encoding fails
	DispatchRaymarch() error

	// PresentFrame acquires the next swapchain texture, draws the output
	// texture onto it with the fullscreen blit pipeline, submits, and
	// presents. Ordering against the compute pass relies on same-queue
	// submission order; no explicit synchronization is used.
	//
	// Returns:
	//   - error: ErrSurface-wrapped error if the swapchain texture could not
	//     be acquired, other errors for encoding failures
	PresentFrame() error

	// ReadbackFrame copies the output texture into a host-visible buffer and
	// blocks until the copy completes. This is the only blocking GPU
	// operation; it is absent from the steady-state render path.
	//
	// Returns:
	//   - []byte: tightly packed RGBA pixels, resWidth*resHeight*4 bytes
	//   - error: an error if the copy or mapping fails
	ReadbackFrame() ([]byte, error)

	// EncodeCapture submits an already-read-back frame to the background
	// encode pool.
	//
	// Parameters:
	//   - encode: the encoding work to run off the render loop thread
	//
	// Returns:
	//   - error: an error if the task could not be queued
	EncodeCapture(encode func() error) error

	// Resolution returns the fixed compute-output resolution.
	//
	// Returns:
	//   - width, height: the output texture size in pixels
	Resolution() (width, height int)

	// Release frees all GPU resources owned by the backend.
	Release()
}

var _ RendererBackend = &wgpuRaymarchBackendImpl{}

func newWGPURaymarchBackend(surfaceDescriptor *wgpu.SurfaceDescriptor, forceFallbackAdapter bool, resWidth, resHeight int) wgpuRaymarchBackend {
	runtime.LockOSThread()
	b := &wgpuRaymarchBackendImpl{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeFifo,
		resWidth:    resWidth,
		resHeight:   resHeight,
		encodePool:  worker.NewDynamicWorkerPool(2, 16, 1*time.Second),
	}
	b.surface = b.instance.CreateSurface(surfaceDescriptor)

	a, err := b.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    b.surface,
	})
	if err != nil {
		panic(err)
	}
	b.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Raymarch Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		panic(err)
	}
	b.device = d
	b.queue = d.GetQueue()

	b.createFrameResources()
	b.createComputePipeline()
	b.createBlitPipeline()

	return b
}

// createFrameResources allocates the shape record storage buffer, the
// globals uniform buffer, and the compute-output storage texture. The record
// buffer is sized once for shape.MaxRecords and never grown.
func (b *wgpuRaymarchBackendImpl) createFrameResources() {
	var err error
	b.recordBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Shape Record Buffer",
		Size:  uint64(shape.MaxRecords * shape.RecordSize),
		Usage: wgpu.BufferUsageStorage | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}

	b.globalsBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Globals Uniform Buffer",
		Size:  uint64(GPUGlobalsSize),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}

	b.outputTexture, err = b.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Raymarch Output Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(b.resWidth),
			Height:             uint32(b.resHeight),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatRGBA8Unorm,
		Usage:         wgpu.TextureUsageStorageBinding | wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopySrc,
	})
	if err != nil {
		panic(err)
	}
	b.outputView, err = b.outputTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
}

// createComputePipeline builds the raymarch compute pipeline and its single
// bind group: record storage at binding 0, globals uniform at binding 1,
// write-only storage texture at binding 2.
func (b *wgpuRaymarchBackendImpl) createComputePipeline() {
	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Raymarch Compute Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: RaymarchComputeSource,
		},
	})
	if err != nil {
		panic(err)
	}

	layout, err := b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Raymarch Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageCompute,
				Buffer: wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeReadOnlyStorage,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageCompute,
				Buffer: wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeUniform,
				},
			},
			{
				Binding:    2,
				Visibility: wgpu.ShaderStageCompute,
				StorageTexture: wgpu.StorageTextureBindingLayout{
					Access:        wgpu.StorageTextureAccessWriteOnly,
					Format:        wgpu.TextureFormatRGBA8Unorm,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
		},
	})
	if err != nil {
		panic(err)
	}

	b.computeBindGroup, err = b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Raymarch Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: b.recordBuffer, Size: wgpu.WholeSize},
			{Binding: 1, Buffer: b.globalsBuffer, Size: wgpu.WholeSize},
			{Binding: 2, TextureView: b.outputView},
		},
	})
	if err != nil {
		panic(err)
	}

	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Raymarch Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		panic(err)
	}

	b.computePipeline, err = b.device.CreateComputePipeline(&wgpu.ComputePipelineDescriptor{
		Label:  "Raymarch Compute Pipeline",
		Layout: pipelineLayout,
		Compute: wgpu.ProgrammableStageDescriptor{
			Module:     module,
			EntryPoint: "cs_main",
		},
	})
	if err != nil {
		panic(err)
	}
}

// createBlitPipeline builds the fullscreen-quad render pipeline that samples
// the output texture onto the presentation surface, plus its vertex and
// index buffers.
func (b *wgpuRaymarchBackendImpl) createBlitPipeline() {
	module, err := b.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Blit Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: BlitShaderSource,
		},
	})
	if err != nil {
		panic(err)
	}

	b.blitSampler, err = b.device.CreateSampler(&wgpu.SamplerDescriptor{
		Label:         "Blit Sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeNearest,
		MinFilter:     wgpu.FilterModeNearest,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMaxClamp:   32.0,
		MaxAnisotropy: 1,
	})
	if err != nil {
		panic(err)
	}

	layout, err := b.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Blit Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		panic(err)
	}

	b.blitBindGroup, err = b.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Blit Bind Group",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, TextureView: b.outputView},
			{Binding: 1, Sampler: b.blitSampler},
		},
	})
	if err != nil {
		panic(err)
	}

	vertexData := marshalQuadVertices()
	b.vertexBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Blit Vertex Buffer",
		Size:  uint64(len(vertexData)),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}
	b.queue.WriteBuffer(b.vertexBuffer, 0, vertexData)

	indexData := marshalQuadIndices()
	b.indexBuffer, err = b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Blit Index Buffer",
		Size:  uint64(len(indexData)),
		Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}
	b.queue.WriteBuffer(b.indexBuffer, 0, indexData)
	b.indexCount = len(quadIndices)

	pipelineLayout, err := b.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Blit Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		panic(err)
	}

	// The surface is not configured yet at construction time, so pick the
	// preferred format the same way ConfigureSurface does.
	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = &capabilities.Formats[0]

	b.blitPipeline, err = b.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Blit Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(quadVertexSize),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{Offset: 0, ShaderLocation: 0, Format: wgpu.VertexFormatFloat32x3},
						{Offset: 12, ShaderLocation: 1, Format: wgpu.VertexFormatFloat32x2},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    *b.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		panic(err)
	}
}

func (b *wgpuRaymarchBackendImpl) ConfigureSurface(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if width == 0 || height == 0 {
		return
	}
	b.surfaceWidth = width
	b.surfaceHeight = height

	capabilities := b.surface.GetCapabilities(b.adapter)
	b.surfaceFormat = &capabilities.Formats[0]

	b.surface.Configure(b.adapter, b.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *b.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: b.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})
}

func (b *wgpuRaymarchBackendImpl) SetPresentMode(mode PresentMode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch mode {
	case PresentModeUncapped:
		b.presentMode = wgpu.PresentModeImmediate
	case PresentModeVSync:
		fallthrough
	default:
		b.presentMode = wgpu.PresentModeFifo
	}
}

func (b *wgpuRaymarchBackendImpl) WriteGlobals(data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.queue.WriteBuffer(b.globalsBuffer, 0, data)
}

func (b *wgpuRaymarchBackendImpl) WriteRecords(data []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(data) == 0 {
		return
	}
	b.queue.WriteBuffer(b.recordBuffer, 0, data)
}

func (b *wgpuRaymarchBackendImpl) DispatchRaymarch() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	pass := encoder.BeginComputePass(nil)
	pass.SetPipeline(b.computePipeline)
	pass.SetBindGroup(0, b.computeBindGroup, nil)
	pass.DispatchWorkgroups(
		(uint32(b.resWidth)+7)/8,
		(uint32(b.resHeight)+7)/8,
		1,
	)
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	defer commandBuffer.Release()

	b.queue.Submit(commandBuffer)
	return nil
}

func (b *wgpuRaymarchBackendImpl) PresentFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	surfaceTexture, err := b.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSurface, err)
	}
	defer surfaceTexture.Release()

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSurface, err)
	}
	defer view.Release()

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    view,
				LoadOp:  wgpu.LoadOpClear,
				StoreOp: wgpu.StoreOpStore,
				ClearValue: wgpu.Color{
					R: 0, G: 0, B: 0, A: 1,
				},
			},
		},
	})
	pass.SetPipeline(b.blitPipeline)
	pass.SetBindGroup(0, b.blitBindGroup, nil)
	pass.SetVertexBuffer(0, b.vertexBuffer, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(b.indexBuffer, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	pass.DrawIndexed(uint32(b.indexCount), 1, 0, 0, 0)
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	defer commandBuffer.Release()

	b.queue.Submit(commandBuffer)
	b.surface.Present()
	return nil
}

func (b *wgpuRaymarchBackendImpl) ReadbackFrame() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Buffer row pitch must be a multiple of 256 bytes for texture copies.
	rowBytes := b.resWidth * 4
	paddedRow := (rowBytes + 255) &^ 255
	size := paddedRow * b.resHeight

	readback, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Frame Readback Buffer",
		Size:  uint64(size),
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}
	defer readback.Release()

	encoder, err := b.device.CreateCommandEncoder(nil)
	if err != nil {
		return nil, err
	}
	defer encoder.Release()

	encoder.CopyTextureToBuffer(
		&wgpu.ImageCopyTexture{
			Texture:  b.outputTexture,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
			Aspect:   wgpu.TextureAspectAll,
		},
		&wgpu.ImageCopyBuffer{
			Buffer: readback,
			Layout: wgpu.TextureDataLayout{
				Offset:       0,
				BytesPerRow:  uint32(paddedRow),
				RowsPerImage: uint32(b.resHeight),
			},
		},
		&wgpu.Extent3D{
			Width:              uint32(b.resWidth),
			Height:             uint32(b.resHeight),
			DepthOrArrayLayers: 1,
		},
	)

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return nil, err
	}
	defer commandBuffer.Release()
	b.queue.Submit(commandBuffer)

	var mapStatus wgpu.BufferMapAsyncStatus
	if err := readback.MapAsync(wgpu.MapModeRead, 0, uint64(size), func(status wgpu.BufferMapAsyncStatus) {
		mapStatus = status
	}); err != nil {
		return nil, err
	}
	b.device.Poll(true, nil)
	if mapStatus != wgpu.BufferMapAsyncStatusSuccess {
		return nil, fmt.Errorf("frame readback map failed: %s", mapStatus.String())
	}

	mapped := readback.GetMappedRange(0, uint(size))
	pixels := make([]byte, rowBytes*b.resHeight)
	for row := range b.resHeight {
		copy(pixels[row*rowBytes:(row+1)*rowBytes], mapped[row*paddedRow:row*paddedRow+rowBytes])
	}
	readback.Unmap()

	return pixels, nil
}

func (b *wgpuRaymarchBackendImpl) EncodeCapture(encode func() error) error {
	b.mu.Lock()
	b.captureID++
	id := b.captureID
	b.mu.Unlock()

	b.encodePool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			return nil, encode()
		},
	})
	return nil
}

func (b *wgpuRaymarchBackendImpl) Resolution() (width, height int) {
	return b.resWidth, b.resHeight
}

func (b *wgpuRaymarchBackendImpl) Device() *wgpu.Device {
	return b.device
}

func (b *wgpuRaymarchBackendImpl) Queue() *wgpu.Queue {
	return b.queue
}

func (b *wgpuRaymarchBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Drain pending capture encodes before stopping the workers so an
	// in-flight screenshot is not lost.
	if b.encodePool != nil {
		b.encodePool.Wait()
		b.encodePool.Stop()
		b.encodePool = nil
	}

	// GPU objects in reverse creation order.
	if b.blitPipeline != nil {
		b.blitPipeline.Release()
		b.blitPipeline = nil
	}
	if b.indexBuffer != nil {
		b.indexBuffer.Release()
		b.indexBuffer = nil
	}
	if b.vertexBuffer != nil {
		b.vertexBuffer.Release()
		b.vertexBuffer = nil
	}
	if b.blitBindGroup != nil {
		b.blitBindGroup.Release()
		b.blitBindGroup = nil
	}
	if b.blitSampler != nil {
		b.blitSampler.Release()
		b.blitSampler = nil
	}
	if b.computePipeline != nil {
		b.computePipeline.Release()
		b.computePipeline = nil
	}
	if b.computeBindGroup != nil {
		b.computeBindGroup.Release()
		b.computeBindGroup = nil
	}
	if b.outputView != nil {
		b.outputView.Release()
		b.outputView = nil
	}
	if b.outputTexture != nil {
		b.outputTexture.Release()
		b.outputTexture = nil
	}
	if b.globalsBuffer != nil {
		b.globalsBuffer.Release()
		b.globalsBuffer = nil
	}
	if b.recordBuffer != nil {
		b.recordBuffer.Release()
		b.recordBuffer = nil
	}
	if b.queue != nil {
		b.queue.Release()
		b.queue = nil
	}
	if b.device != nil {
		b.device.Release()
		b.device = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.surface != nil {
		b.surface.Release()
		b.surface = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}
