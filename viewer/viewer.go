package viewer

import (
	"errors"
	"sync"
	"time"

	"github.com/Carmen-Shannon/showroom-go/logging"
	"github.com/Carmen-Shannon/showroom-go/viewer/asset"
	"github.com/Carmen-Shannon/showroom-go/viewer/camera"
	"github.com/Carmen-Shannon/showroom-go/viewer/light"
	"github.com/Carmen-Shannon/showroom-go/viewer/preparer"
	"github.com/Carmen-Shannon/showroom-go/viewer/render"
	"github.com/Carmen-Shannon/showroom-go/viewer/scene"
	"github.com/Carmen-Shannon/showroom-go/viewer/scroll"
	"github.com/Carmen-Shannon/showroom-go/viewer/window"
)

// viewer implements the Viewer interface.
// Coordinates the asset pipeline, scroll state machine, and render threads.
type viewer struct {
	mu sync.Mutex

	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once

	window   window.Window
	renderer render.Renderer

	pipeline asset.Pipeline
	registry scene.Registry
	machine  scroll.StateMachine
	preparer preparer.Preparer
	camera   camera.Camera
	rig      light.Rig

	primaryKey string

	// scrollOffset is the virtual page position: accumulated wheel input
	// clamped to the document. Guarded by mu.
	scrollOffset float32
	wheelSpeed   float32

	tickRate time.Duration

	log *logging.Logger
}

// Viewer is the main entry point for the showcase. It orchestrates asset
// loading, scroll-driven model switching, and the render loop around a
// single window.
type Viewer interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Registry returns the scene registry holding the showcased models.
	//
	// Returns:
	//   - scene.Registry: the registry instance
	Registry() scene.Registry

	// Camera returns the showcase camera.
	//
	// Returns:
	//   - camera.Camera: the camera instance
	Camera() camera.Camera

	// ScrollOffset returns the current virtual page position.
	//
	// Returns:
	//   - float32: the scroll offset from the top of the document
	ScrollOffset() float32

	// Run starts the primary load and the viewer loops, then blocks until
	// the window closes.
	//
	// Returns:
	//   - error: error if the primary load could not start
	Run() error

	// Quit signals all viewer goroutines to stop and shuts down the viewer.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Viewer = &viewer{}

// NewViewer creates a new Viewer instance with the provided options. The
// window, pipeline, registry, state machine, and preparer must all be
// supplied via options; NewViewer wires their callbacks together.
//
// Parameters:
//   - options: functional options for viewer configuration
//
// Returns:
//   - Viewer: the newly created viewer
func NewViewer(options ...ViewerBuilderOption) Viewer {
	v := &viewer{
		quitChannel: make(chan struct{}),
		renderer:    render.NewNopRenderer(),
		wheelSpeed:  120,
		tickRate:    time.Second / 60,
		log:         logging.Nop(),
	}

	for _, opt := range options {
		opt(v)
	}

	if v.preparer == nil {
		v.preparer = preparer.NewPreparer()
	}
	if v.camera == nil {
		v.camera = camera.NewCamera()
	}

	if v.window != nil {
		v.window.SetScrollCallback(v.onWheel)
		v.window.SetDragCallback(v.onDrag)
		v.window.SetResizeCallback(v.onResize)
		v.camera.SetAspect(float32(v.window.Width()) / float32(v.window.Height()))
	}

	return v
}

func (v *viewer) Window() window.Window {
	return v.window
}

func (v *viewer) Registry() scene.Registry {
	return v.registry
}

func (v *viewer) Camera() camera.Camera {
	return v.camera
}

func (v *viewer) ScrollOffset() float32 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scrollOffset
}

// ErrNoWindow indicates Run was called on a viewer built without a window.
var ErrNoWindow = errors.New("viewer: no window configured")

func (v *viewer) Run() error {
	if v.window == nil {
		return ErrNoWindow
	}

	if v.renderer != nil {
		if err := v.renderer.Init(v.window.SurfaceDescriptor(), v.window.Width(), v.window.Height()); err != nil {
			return err
		}
	}

	if v.pipeline != nil && v.primaryKey != "" {
		if err := v.pipeline.LoadPrimary(v.primaryKey); err != nil {
			return err
		}
	}

	v.running = true
	v.wg.Add(3)
	go v.handleTick()
	go v.handleRender()
	go v.handleQuit()

	v.window.ProcessMessages()
	v.signalQuit()
	v.wg.Wait()

	if v.renderer != nil {
		v.renderer.Release()
	}
	return nil
}

func (v *viewer) Quit() {
	v.signalQuit()
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (v *viewer) signalQuit() {
	v.quitOnce.Do(func() {
		v.running = false
		close(v.quitChannel)
	})
}

// handleTick runs the fixed-rate viewer tick loop in its own goroutine.
// Each tick drains any settled loads from the pipeline, prepares and
// registers them, and re-resolves the scroll position so a load finishing
// mid-scroll shows up without further input. Exits when the quit channel is
// closed.
func (v *viewer) handleTick() {
	defer v.wg.Done()

	ticker := time.NewTicker(v.tickRate)
	defer ticker.Stop()

	for {
		select {
		case <-v.quitChannel:
			return
		case <-ticker.C:
			v.drainResults()
		}
	}
}

// drainResults consumes every settled load currently on the pipeline's
// results channel without blocking.
func (v *viewer) drainResults() {
	if v.pipeline == nil {
		return
	}
	for {
		select {
		case result := <-v.pipeline.Results():
			v.handleResult(result)
		default:
			return
		}
	}
}

// handleResult prepares and registers one settled load. Failures are logged
// and skipped; the rest of the catalog is unaffected.
func (v *viewer) handleResult(result asset.Result) {
	if result.Err != nil {
		v.log.Warnw("skipping failed model", "key", result.Key, "error", result.Err)
		return
	}

	isPrimary := result.Key == v.primaryKey
	v.preparer.Prepare(result.Node, isPrimary)
	v.registry.Register(result.Key, result.Node, isPrimary)

	// Registration never re-resolves the scroll position. A switch that was
	// dropped because this model had not loaded yet stays dropped until the
	// next scroll or resize event resolves it again.
}

// handleRender runs the render loop in its own goroutine, drawing the
// currently visible model each frame. Recovers from panics to avoid crashing
// the process and signals quit on recovery.
func (v *viewer) handleRender() {
	defer v.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			v.log.Errorw("render goroutine recovered from panic", "panic", r)
			v.signalQuit()
		}
	}()

	for {
		select {
		case <-v.quitChannel:
			return
		default:
			var root *scene.ModelAsset
			if v.registry != nil {
				root = v.registry.Current()
			}

			frame := render.Frame{
				View:       v.camera.ViewMatrix(),
				Projection: v.camera.ProjectionMatrix(),
			}
			if v.rig != nil {
				frame.LightViewProjection = v.rig.ViewProjection()
			}

			var err error
			if root != nil {
				err = v.renderer.DrawFrame(root.Node, frame)
			} else {
				err = v.renderer.DrawFrame(nil, frame)
			}
			if err != nil {
				v.log.Warnw("frame dropped", "error", err)
			}

			time.Sleep(v.tickRate)
		}
	}
}

// handleQuit blocks until the quit channel is closed, then decrements the
// WaitGroup.
func (v *viewer) handleQuit() {
	defer v.wg.Done()
	<-v.quitChannel
}

// onWheel accumulates wheel input into the virtual page position and
// re-resolves the active section. Wheel up moves toward the top of the
// document.
func (v *viewer) onWheel(delta float32) {
	v.mu.Lock()
	v.scrollOffset -= delta * v.wheelSpeed
	if v.scrollOffset < 0 {
		v.scrollOffset = 0
	}
	if v.machine != nil {
		if max := v.machine.DocumentHeight(); v.scrollOffset > max {
			v.scrollOffset = max
		}
	}
	offset := v.scrollOffset
	v.mu.Unlock()

	if v.machine != nil {
		v.machine.OnScroll(offset)
	}
}

// onDrag orbits the camera from cursor movement.
func (v *viewer) onDrag(dx, dy float32) {
	const orbitSpeed = 0.005
	v.camera.Orbit(dx*orbitSpeed, dy*orbitSpeed)
}

// onResize reconfigures the surface and re-resolves the scroll position
// against the new viewport height.
func (v *viewer) onResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	v.renderer.Resize(width, height)
	v.camera.SetAspect(float32(width) / float32(height))
	if v.machine != nil {
		v.machine.OnScroll(v.ScrollOffset())
	}
}
