package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/showroom-go/viewer/node"
	"github.com/Carmen-Shannon/showroom-go/viewer/scene"
)

func threeSectionLayout(vh float32) Layout {
	sections := StackSections([]Section{
		{Height: 900, ModelKey: "alpha"},
		{Height: 900, ModelKey: "beta"},
		{Height: 900, ModelKey: "gamma"},
	})
	return NewStaticLayout(sections, func() float32 { return vh })
}

func TestStackSections(t *testing.T) {
	sections := StackSections([]Section{
		{Height: 100, ModelKey: "a"},
		{Height: 250, ModelKey: "b"},
		{Height: 50, ModelKey: "c"},
	})

	require.Len(t, sections, 3)
	assert.Equal(t, float32(0), sections[0].OffsetTop)
	assert.Equal(t, float32(100), sections[1].OffsetTop)
	assert.Equal(t, float32(350), sections[2].OffsetTop)
	assert.Equal(t, 2, sections[2].Index)
}

func TestResolveHomeZone(t *testing.T) {
	m := NewStateMachine(threeSectionLayout(800), nil, "alpha")

	// Until the second section's top crosses the viewport midline the
	// primary model stays up.
	assert.Equal(t, "alpha", m.Resolve(0, 800))
	assert.Equal(t, "alpha", m.Resolve(250, 800))
	assert.Equal(t, "alpha", m.Resolve(499, 800))
}

func TestResolveSectionBands(t *testing.T) {
	m := NewStateMachine(threeSectionLayout(800), nil, "alpha")

	// Section 2 tops out at offset 900; its band starts at 900 - 400 = 500.
	assert.Equal(t, "beta", m.Resolve(500, 800))
	assert.Equal(t, "beta", m.Resolve(1000, 800))
	assert.Equal(t, "gamma", m.Resolve(1400, 800))
}

func TestResolveExactBoundary(t *testing.T) {
	m := NewStateMachine(threeSectionLayout(800), nil, "alpha")

	// An offset landing exactly on a band edge belongs to the section that
	// starts there, never to both.
	assert.Equal(t, "beta", m.Resolve(500, 800))
	assert.Equal(t, "gamma", m.Resolve(1400, 800))
	assert.Equal(t, "beta", m.Resolve(1399.999, 800))
}

func TestResolvePastLastSection(t *testing.T) {
	m := NewStateMachine(threeSectionLayout(800), nil, "alpha")

	assert.Equal(t, "gamma", m.Resolve(5000, 800))
}

func TestResolveFewerThanTwoSections(t *testing.T) {
	single := NewStaticLayout(StackSections([]Section{
		{Height: 900, ModelKey: "beta"},
	}), func() float32 { return 800 })
	m := NewStateMachine(single, nil, "alpha")

	assert.Equal(t, "alpha", m.Resolve(0, 800))
	assert.Equal(t, "alpha", m.Resolve(10000, 800))

	empty := NewStaticLayout(nil, func() float32 { return 800 })
	m = NewStateMachine(empty, nil, "alpha")
	assert.Equal(t, "alpha", m.Resolve(450, 800))
}

func TestResolveIsDeterministic(t *testing.T) {
	m := NewStateMachine(threeSectionLayout(800), nil, "alpha")

	for i := 0; i < 10; i++ {
		assert.Equal(t, "beta", m.Resolve(700, 800))
	}
}

func TestOnScrollDrivesRegistry(t *testing.T) {
	registry := scene.NewRegistry()
	registry.Register("alpha", node.New("alpha"), true)
	registry.Register("beta", node.New("beta"), false)
	registry.Register("gamma", node.New("gamma"), false)

	m := NewStateMachine(threeSectionLayout(800), registry, "alpha")

	m.OnScroll(0)
	assert.Equal(t, "alpha", registry.CurrentKey())

	m.OnScroll(700)
	assert.Equal(t, "beta", registry.CurrentKey())

	// Scrolling within the same band changes nothing.
	m.OnScroll(750)
	assert.Equal(t, "beta", registry.CurrentKey())

	m.OnScroll(0)
	assert.Equal(t, "alpha", registry.CurrentKey())
}

func TestDocumentHeight(t *testing.T) {
	m := NewStateMachine(threeSectionLayout(800), nil, "alpha")
	assert.Equal(t, float32(2700), m.DocumentHeight())
}
