package renderer

import (
	"bytes"
	_ "embed"
	"fmt"
	"runtime"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"go.uber.org/zap"

	"github.com/gfxdemo/orbitcube/common"
	"github.com/gfxdemo/orbitcube/engine/camera"
	"github.com/gfxdemo/orbitcube/engine/window"
)

// shaderBody is the cube shader without the camera uniform declaration; the
// struct is prepended from camera.CameraUniformWGSL so the CPU and GPU
// layouts are defined in one place.
//
//go:embed shader.wgsl
var shaderBody string

// cameraUniformSize is the byte size of the camera uniform block the shader
// declares: a vec4 view position followed by a mat4x4 view-projection.
const cameraUniformSize = 80

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting,
	// capping frame rate to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for
	// vertical blank. May cause tearing but has the lowest latency.
	PresentModeUncapped
)

// Renderer owns the WebGPU device and the single colored-cube pipeline. The
// cube geometry is uploaded once at construction; per frame the only GPU
// traffic is the camera uniform write (when it changed) and the draw.
type Renderer interface {
	// Resize reconfigures the surface and depth texture for a new size.
	// Call on framebuffer resize before rendering the next frame.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	Resize(width, height int)

	// UpdateCameraUniform uploads a new camera uniform block to the GPU.
	// The write is skipped when the data matches the last upload, so calling
	// it every frame with an unchanged camera is free.
	//
	// Parameters:
	//   - data: the marshaled uniform block (must be cameraUniformSize bytes)
	UpdateCameraUniform(data []byte)

	// RenderFrame acquires the next swapchain texture, records the cube draw
	// pass, submits it, and presents.
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	RenderFrame() error

	// Release frees all GPU resources. The renderer must not be used after.
	Release()
}

// wgpuRenderer is the implementation of the Renderer interface.
type wgpuRenderer struct {
	mu     *sync.Mutex
	logger *zap.Logger

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceFormat        *wgpu.TextureFormat
	depthTextureView     *wgpu.TextureView
	renderPassDescriptor *wgpu.RenderPassDescriptor

	pipeline     *wgpu.RenderPipeline
	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer

	cameraBuffer    *wgpu.Buffer
	cameraBindGroup *wgpu.BindGroup

	// lastUniform holds the previously uploaded uniform bytes so unchanged
	// frames skip the queue write.
	lastUniform []byte

	presentMode          wgpu.PresentMode
	forceFallbackAdapter bool
}

var _ Renderer = &wgpuRenderer{}

// NewRenderer creates a Renderer targeting the given window's surface. It
// acquires the GPU adapter and device, configures the surface, builds the
// cube pipeline, and uploads the cube geometry. Panics if no adapter or
// device can be acquired; nothing downstream can run without a GPU.
//
// Parameters:
//   - win: the window whose surface is rendered into
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the ready-to-draw renderer
func NewRenderer(win window.Window, options ...RendererBuilderOption) Renderer {
	runtime.LockOSThread()

	r := &wgpuRenderer{
		mu:          &sync.Mutex{},
		logger:      zap.NewNop(),
		presentMode: wgpu.PresentModeFifo,
	}
	for _, opt := range options {
		opt(r)
	}

	r.instance = wgpu.CreateInstance(nil)
	r.surface = r.instance.CreateSurface(win.SurfaceDescriptor())

	adapter, err := r.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: r.forceFallbackAdapter,
		CompatibleSurface:    r.surface,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to request GPU adapter: %v", err))
	}
	r.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Orbit Viewer Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		panic(fmt.Sprintf("failed to request GPU device: %v", err))
	}
	r.device = device
	r.queue = device.GetQueue()
	r.logger.Info("gpu device acquired",
		zap.Bool("fallbackAdapter", r.forceFallbackAdapter),
	)

	r.configureSurface(win.Width(), win.Height())
	r.createCubePipeline()
	r.uploadCubeMesh()

	return r
}

func (r *wgpuRenderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configureSurfaceLocked(width, height)
	r.logger.Debug("surface resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

func (r *wgpuRenderer) UpdateCameraUniform(data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bytes.Equal(data, r.lastUniform) {
		return
	}
	r.queue.WriteBuffer(r.cameraBuffer, 0, data)
	r.lastUniform = append(r.lastUniform[:0], data...)
}

func (r *wgpuRenderer) RenderFrame() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	surfaceTexture, err := r.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("failed to acquire surface texture: %w", err)
	}
	defer surfaceTexture.Release()

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		return err
	}
	defer view.Release()

	encoder, err := r.device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	r.renderPassDescriptor.ColorAttachments[0].View = view
	pass := encoder.BeginRenderPass(r.renderPassDescriptor)
	pass.SetPipeline(r.pipeline)
	pass.SetBindGroup(0, r.cameraBindGroup, nil)
	pass.SetVertexBuffer(0, r.vertexBuffer, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(r.indexBuffer, wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
	pass.DrawIndexed(uint32(len(cubeIndices)), 1, 0, 0, 0)
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	defer commandBuffer.Release()

	r.queue.Submit(commandBuffer)
	r.surface.Present()

	return nil
}

func (r *wgpuRenderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cameraBindGroup != nil {
		r.cameraBindGroup.Release()
	}
	if r.cameraBuffer != nil {
		r.cameraBuffer.Release()
	}
	if r.indexBuffer != nil {
		r.indexBuffer.Release()
	}
	if r.vertexBuffer != nil {
		r.vertexBuffer.Release()
	}
	if r.pipeline != nil {
		r.pipeline.Release()
	}
	if r.depthTextureView != nil {
		r.depthTextureView.Release()
	}
	if r.device != nil {
		r.device.Release()
	}
	if r.adapter != nil {
		r.adapter.Release()
	}
	if r.surface != nil {
		r.surface.Release()
	}
	if r.instance != nil {
		r.instance.Release()
	}
}

func (r *wgpuRenderer) configureSurface(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configureSurfaceLocked(width, height)
}

// configureSurfaceLocked configures the surface and recreates the depth
// texture and cached render pass descriptor. Caller must hold the mutex.
func (r *wgpuRenderer) configureSurfaceLocked(width, height int) {
	capabilities := r.surface.GetCapabilities(r.adapter)
	r.surfaceFormat = &capabilities.Formats[0]

	r.surface.Configure(r.adapter, r.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *r.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: r.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	if r.depthTextureView != nil {
		r.depthTextureView.Release()
	}

	// Depth texture must match the surface size and is recreated on resize.
	depthTexture, err := r.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to create depth texture: %v", err))
	}
	r.depthTextureView, err = depthTexture.CreateView(nil)
	if err != nil {
		panic(fmt.Sprintf("failed to create depth texture view: %v", err))
	}

	// Cache the render pass descriptor; only the color attachment's View
	// changes per frame.
	r.renderPassDescriptor = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    nil, // set per-frame to the swapchain view
				LoadOp:  wgpu.LoadOpClear,
				StoreOp: wgpu.StoreOpStore,
				ClearValue: wgpu.Color{
					R: 0.1, G: 0.2, B: 0.3, A: 1.0,
				},
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            r.depthTextureView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpStore,
			DepthClearValue: 1.0,
		},
	}

	r.logger.Debug("surface configured",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Uint32("format", uint32(*r.surfaceFormat)),
	)
}

// createCubePipeline builds the camera bind group and the render pipeline
// from the embedded shader.
func (r *wgpuRenderer) createCubePipeline() {
	shaderModule, err := r.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "Cube Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: camera.CameraUniformWGSL + "\n\n" + shaderBody,
		},
	})
	if err != nil {
		panic(fmt.Sprintf("failed to create shader module: %v", err))
	}
	defer shaderModule.Release()

	bindGroupLayout, err := r.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Camera Bind Group Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: cameraUniformSize,
				},
			},
		},
	})
	if err != nil {
		panic(fmt.Sprintf("failed to create camera bind group layout: %v", err))
	}
	defer bindGroupLayout.Release()

	r.cameraBuffer, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Camera Uniform Buffer",
		Size:  cameraUniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to create camera uniform buffer: %v", err))
	}

	r.cameraBindGroup, err = r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Camera Bind Group",
		Layout: bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  r.cameraBuffer,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		panic(fmt.Sprintf("failed to create camera bind group: %v", err))
	}

	pipelineLayout, err := r.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Cube Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{bindGroupLayout},
	})
	if err != nil {
		panic(fmt.Sprintf("failed to create pipeline layout: %v", err))
	}
	defer pipelineLayout.Release()

	r.pipeline, err = r.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "Cube Render Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shaderModule,
			EntryPoint: "vs_main",
			Buffers:    []wgpu.VertexBufferLayout{vertexBufferLayout()},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shaderModule,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    *r.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		panic(fmt.Sprintf("failed to create render pipeline: %v", err))
	}
}

// uploadCubeMesh creates the vertex and index buffers and uploads the cube
// geometry once.
func (r *wgpuRenderer) uploadCubeMesh() {
	vertexData := common.SliceToBytes(cubeVertices)
	indexData := common.SliceToBytes(cubeIndices)

	var err error
	r.vertexBuffer, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Cube Vertex Buffer",
		Size:  uint64(len(vertexData)),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to create vertex buffer: %v", err))
	}
	r.queue.WriteBuffer(r.vertexBuffer, 0, vertexData)

	r.indexBuffer, err = r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Cube Index Buffer",
		Size:  uint64(len(indexData)),
		Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(fmt.Sprintf("failed to create index buffer: %v", err))
	}
	r.queue.WriteBuffer(r.indexBuffer, 0, indexData)
}
