package viewer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/showroom-go/viewer/asset"
	"github.com/Carmen-Shannon/showroom-go/viewer/node"
	"github.com/Carmen-Shannon/showroom-go/viewer/preparer"
	"github.com/Carmen-Shannon/showroom-go/viewer/scene"
	"github.com/Carmen-Shannon/showroom-go/viewer/scroll"
)

// fakePipeline hands out a channel the test pushes results into.
type fakePipeline struct {
	ch chan asset.Result
}

func (p *fakePipeline) LoadPrimary(key string) error     { return nil }
func (p *fakePipeline) LoadBackground()                  {}
func (p *fakePipeline) Results() <-chan asset.Result     { return p.ch }
func (p *fakePipeline) Status(key string) scene.Status   { return scene.StatusPending }

var _ asset.Pipeline = &fakePipeline{}

func newTestViewer(t *testing.T) (*viewer, *fakePipeline, scene.Registry) {
	t.Helper()

	registry := scene.NewRegistry()
	layout := scroll.NewStaticLayout(scroll.StackSections([]scroll.Section{
		{Height: 900, ModelKey: "fox"},
		{Height: 900, ModelKey: "helmet"},
	}), func() float32 { return 800 })
	machine := scroll.NewStateMachine(layout, registry, "fox")
	pipe := &fakePipeline{ch: make(chan asset.Result, 4)}

	v := NewViewer(
		WithPipeline(pipe),
		WithRegistry(registry),
		WithStateMachine(machine),
		WithPreparer(preparer.NewPreparer(WithViewerTestScales()...)),
		WithPrimaryKey("fox"),
	)
	return v.(*viewer), pipe, registry
}

// WithViewerTestScales keeps the default preparation scales explicit in the
// fixture.
func WithViewerTestScales() []preparer.PreparerBuilderOption {
	return []preparer.PreparerBuilderOption{
		preparer.WithPrimaryScale(1.2),
		preparer.WithSecondaryScale(0.8),
	}
}

func TestDrainResultsRegistersPrimary(t *testing.T) {
	v, pipe, registry := newTestViewer(t)

	pipe.ch <- asset.Result{Key: "fox", Node: node.New("fox"), IsPrimary: true}
	v.drainResults()

	assert.Equal(t, "fox", registry.CurrentKey())
	current := registry.Current()
	require.NotNil(t, current)
	assert.True(t, current.Visible)
	// The primary display scale was applied before registration.
	assert.Equal(t, [3]float32{1.2, 1.2, 1.2}, current.Node.Scale)
}

func TestDrainResultsKeepsSecondaryHidden(t *testing.T) {
	v, pipe, registry := newTestViewer(t)

	pipe.ch <- asset.Result{Key: "fox", Node: node.New("fox"), IsPrimary: true}
	pipe.ch <- asset.Result{Key: "helmet", Node: node.New("helmet")}
	v.drainResults()

	assert.Equal(t, "fox", registry.CurrentKey())
	helmet := registry.Asset("helmet")
	require.NotNil(t, helmet)
	assert.False(t, helmet.Visible)
	assert.Equal(t, [3]float32{0.8, 0.8, 0.8}, helmet.Node.Scale)
}

func TestDrainResultsSkipsFailures(t *testing.T) {
	v, pipe, registry := newTestViewer(t)

	pipe.ch <- asset.Result{Key: "helmet", Err: errors.New("corrupt file")}
	v.drainResults()

	assert.Nil(t, registry.Asset("helmet"))
}

func TestLateLoadWaitsForNextScrollEvent(t *testing.T) {
	v, pipe, registry := newTestViewer(t)

	pipe.ch <- asset.Result{Key: "fox", Node: node.New("fox"), IsPrimary: true}
	v.drainResults()

	// Scroll into the helmet section before its model has loaded; the switch
	// is dropped.
	v.onWheel(-6)
	assert.Equal(t, "fox", registry.CurrentKey())

	// The helmet landing does not revive the dropped switch. Registration is
	// not a scroll event.
	pipe.ch <- asset.Result{Key: "helmet", Node: node.New("helmet")}
	v.drainResults()
	assert.Equal(t, "fox", registry.CurrentKey())

	// The next wheel event resolves against the same band and switches.
	v.onWheel(0)
	assert.Equal(t, "helmet", registry.CurrentKey())
}

func TestRunWithoutWindowReturnsError(t *testing.T) {
	v, _, _ := newTestViewer(t)

	err := v.Run()
	assert.ErrorIs(t, err, ErrNoWindow)
}

func TestWheelClampsToDocument(t *testing.T) {
	v, _, _ := newTestViewer(t)

	v.onWheel(5)
	assert.Equal(t, float32(0), v.ScrollOffset())

	v.onWheel(-1000)
	assert.Equal(t, float32(1800), v.ScrollOffset())
}
