package renderer

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-trackball/common"
	"github.com/Carmen-Shannon/oxy-trackball/engine/wireframe"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl64"
)

// Surface is the part of window.Window the renderer needs to create and size its swapchain.
type Surface interface {
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
	Width() int
	Height() int
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	width, height int
	lineColor     [4]float32
	clearColor    [3]float64

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
}

// Renderer draws the trackball's wireframe cube to a window surface.
//
// The cube geometry is uploaded once at construction; each Draw call only writes the 80-byte uniform
// holding the model-view-projection matrix and line color.
type Renderer interface {
	// Resize configures the underlying backend to handle a new surface size.
	// This should be called when re-sizing the window.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode changes how frames are delivered to the display.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// Draw renders one frame of the cube rotated by orientation and presents it.
	//
	// Parameters:
	//   - orientation: the model rotation, typically Trackball.Matrix()
	//
	// Returns:
	//   - error: an error if the swapchain texture could not be acquired
	Draw(orientation mgl64.Mat4) error

	// Release frees all GPU resources held by the renderer.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer for the given surface and uploads the cube geometry.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - surface: the window providing the platform surface descriptor and initial size
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
//   - error: an error if the pipeline or buffers could not be created
func NewRenderer(backendType RendererBackendType, surface Surface, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		lineColor:   [4]float32{0.9, 0.9, 0.9, 1},
		clearColor:  [3]float64{0.1, 0.1, 0.1},
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	msaa := MSAA4x
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(surface.SurfaceDescriptor(), r.forceFallbackAdapter, msaa, r.clearColor)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.Resize(surface.Width(), surface.Height())

	if err := r.backend.InitCube(common.SliceToBytes(wireframe.Vertices()), uint32(len(wireframe.Edges)*2)); err != nil {
		r.backend.Release()
		return nil, err
	}
	return r, nil
}

func (r *renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.mu.Lock()
	r.width, r.height = width, height
	r.mu.Unlock()
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Draw(orientation mgl64.Mat4) error {
	r.mu.Lock()
	aspect := 1.0
	if r.height > 0 {
		aspect = float64(r.width) / float64(r.height)
	}
	r.mu.Unlock()

	uniform := NewCubeUniform(orientation, aspect, r.lineColor)
	r.backend.WriteUniform(common.StructToBytes(&uniform))

	if err := r.backend.BeginFrame(); err != nil {
		return err
	}
	r.backend.DrawCube()
	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

func (r *renderer) Release() {
	r.backend.Release()
}
