package viewer

import (
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

// ViewerBuilderOption defines functional options for configuring a Viewer.
type ViewerBuilderOption func(*viewer)

// WithWindow sets the window the viewer runs in.
//
// Parameters:
//   - w: the window instance
//
// Returns:
//   - ViewerBuilderOption: the option to apply
func WithWindow(w window.Window) ViewerBuilderOption {
	return func(v *viewer) {
		v.window = w
	}
}

// WithRenderer sets the renderer frames are drawn with. Defaults to a
// renderer that draws nothing.
//
// Parameters:
//   - r: the renderer instance
//
// Returns:
//   - ViewerBuilderOption: the option to apply
func WithRenderer(r render.Renderer) ViewerBuilderOption {
	return func(v *viewer) {
		if r != nil {
			v.renderer = r
		}
	}
}

// WithPipeline sets the asset pipeline models load through.
//
// Parameters:
//   - p: the pipeline instance
//
// Returns:
//   - ViewerBuilderOption: the option to apply
func WithPipeline(p asset.Pipeline) ViewerBuilderOption {
	return func(v *viewer) {
		v.pipeline = p
	}
}

// WithRegistry sets the scene registry holding the showcased models.
//
// Parameters:
//   - r: the registry instance
//
// Returns:
//   - ViewerBuilderOption: the option to apply
func WithRegistry(r scene.Registry) ViewerBuilderOption {
	return func(v *viewer) {
		v.registry = r
	}
}

// WithStateMachine sets the scroll state machine driving model switches.
//
// Parameters:
//   - m: the state machine instance
//
// Returns:
//   - ViewerBuilderOption: the option to apply
func WithStateMachine(m scroll.StateMachine) ViewerBuilderOption {
	return func(v *viewer) {
		v.machine = m
	}
}

// WithPreparer sets the preparer applied to every loaded model.
//
// Parameters:
//   - p: the preparer instance
//
// Returns:
//   - ViewerBuilderOption: the option to apply
func WithPreparer(p preparer.Preparer) ViewerBuilderOption {
	return func(v *viewer) {
		v.preparer = p
	}
}

// WithCamera sets the showcase camera.
//
// Parameters:
//   - c: the camera instance
//
// Returns:
//   - ViewerBuilderOption: the option to apply
func WithCamera(c camera.Camera) ViewerBuilderOption {
	return func(v *viewer) {
		v.camera = c
	}
}

// WithRig sets the lighting rig whose shadow matrix the render loop reads.
//
// Parameters:
//   - r: the rig instance
//
// Returns:
//   - ViewerBuilderOption: the option to apply
func WithRig(r light.Rig) ViewerBuilderOption {
	return func(v *viewer) {
		v.rig = r
	}
}

// WithPrimaryKey sets the model shown first, before any scrolling.
//
// Parameters:
//   - key: the primary model's catalog key
//
// Returns:
//   - ViewerBuilderOption: the option to apply
func WithPrimaryKey(key string) ViewerBuilderOption {
	return func(v *viewer) {
		v.primaryKey = key
	}
}

// WithWheelSpeed sets how far one wheel notch moves the virtual page
// position, in document units. Values <= 0 are ignored.
//
// Parameters:
//   - speed: document units per wheel notch
//
// Returns:
//   - ViewerBuilderOption: the option to apply
func WithWheelSpeed(speed float32) ViewerBuilderOption {
	return func(v *viewer) {
		if speed > 0 {
			v.wheelSpeed = speed
		}
	}
}

// WithTickRate sets the viewer tick rate in frames per second.
//
// Parameters:
//   - fps: target ticks per second (defaults to 60 if <= 0)
//
// Returns:
//   - ViewerBuilderOption: the option to apply
func WithTickRate(fps float64) ViewerBuilderOption {
	return func(v *viewer) {
		if fps <= 0 {
			fps = 60
		}
		v.tickRate = time.Second / time.Duration(fps)
	}
}

// WithLogger sets the viewer's logger.
//
// Parameters:
//   - log: the logger to use
//
// Returns:
//   - ViewerBuilderOption: the option to apply
func WithLogger(log *logging.Logger) ViewerBuilderOption {
	return func(v *viewer) {
		if log != nil {
			v.log = log
		}
	}
}
