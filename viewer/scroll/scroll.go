package scroll

import (
	"sync"

	"github.com/Carmen-Shannon/showroom-go/logging"
	"github.com/Carmen-Shannon/showroom-go/viewer/scene"
)

// Section is one vertical stretch of the showcase page, bound to the model
// that should be displayed while it occupies the viewport.
type Section struct {
	// Index is the section's position in document order, starting at 0.
	Index int
	// OffsetTop is the section's distance from the top of the document.
	OffsetTop float32
	// Height is the section's height.
	Height float32
	// ModelKey is the key of the model shown while this section is active.
	ModelKey string
}

// Layout supplies the section geometry the state machine resolves scroll
// positions against. Implementations re-measure on demand so resize is
// handled by simply resolving again.
type Layout interface {
	// Sections returns every section in document order.
	//
	// Returns:
	//   - []Section: the sections, ordered by OffsetTop
	Sections() []Section

	// ViewportHeight returns the current viewport height.
	//
	// Returns:
	//   - float32: the viewport height
	ViewportHeight() float32
}

// StackSections assigns Index and OffsetTop to the given sections in order,
// stacking each below the previous. Use this to build a layout from
// configured heights alone.
//
// Parameters:
//   - sections: the sections in document order, Height and ModelKey set
//
// Returns:
//   - []Section: the same slice with Index and OffsetTop filled in
func StackSections(sections []Section) []Section {
	var top float32
	for i := range sections {
		sections[i].Index = i
		sections[i].OffsetTop = top
		top += sections[i].Height
	}
	return sections
}

// staticLayout is a Layout over a fixed slice of sections with a live
// viewport height callback.
type staticLayout struct {
	sections []Section
	viewport func() float32
}

var _ Layout = &staticLayout{}

// NewStaticLayout creates a Layout over the given sections. The viewport
// callback is polled on every resolution, so window resizes take effect
// without rebuilding the layout.
//
// Parameters:
//   - sections: the sections in document order
//   - viewport: callback returning the current viewport height
//
// Returns:
//   - Layout: the newly created layout
func NewStaticLayout(sections []Section, viewport func() float32) Layout {
	return &staticLayout{
		sections: sections,
		viewport: viewport,
	}
}

func (l *staticLayout) Sections() []Section {
	return l.sections
}

func (l *staticLayout) ViewportHeight() float32 {
	if l.viewport == nil {
		return 0
	}
	return l.viewport()
}

// stateMachine is the implementation of the StateMachine interface.
type stateMachine struct {
	mu sync.Mutex

	layout     Layout
	registry   scene.Registry
	primaryKey string

	log *logging.Logger
}

// StateMachine maps a scroll offset to the model key that should be visible
// and drives the scene registry accordingly. The mapping is a pure function
// of offset and layout, so replaying the same offset always produces the
// same key.
type StateMachine interface {
	// Resolve returns the model key for the given scroll offset and viewport
	// height without touching the registry.
	//
	// Parameters:
	//   - offset: the scroll offset from the top of the document
	//   - viewportHeight: the current viewport height
	//
	// Returns:
	//   - string: the model key active at that offset
	Resolve(offset, viewportHeight float32) string

	// OnScroll resolves the given offset against the current layout and
	// switches the registry to the resulting model. Repeated offsets inside
	// the same section are cheap no-ops.
	//
	// Parameters:
	//   - offset: the scroll offset from the top of the document
	OnScroll(offset float32)

	// DocumentHeight returns the total height of all sections.
	//
	// Returns:
	//   - float32: the document height
	DocumentHeight() float32
}

var _ StateMachine = &stateMachine{}

// NewStateMachine creates a scroll state machine over the given layout,
// driving the given registry.
//
// Parameters:
//   - layout: the section layout to resolve against
//   - registry: the scene registry to switch models on
//   - primaryKey: the model shown in the home zone before any section engages
//   - options: functional options for state machine configuration
//
// Returns:
//   - StateMachine: the newly created state machine
func NewStateMachine(layout Layout, registry scene.Registry, primaryKey string, options ...StateMachineBuilderOption) StateMachine {
	m := &stateMachine{
		layout:     layout,
		registry:   registry,
		primaryKey: primaryKey,
		log:        logging.Nop(),
	}

	for _, option := range options {
		option(m)
	}
	return m
}

func (m *stateMachine) Resolve(offset, viewportHeight float32) string {
	sections := m.layout.Sections()

	// With fewer than two sections there is nothing to scroll between; the
	// primary model stays up regardless of offset.
	if len(sections) < 2 {
		return m.primaryKey
	}

	// The home zone: until the second section's top crosses the viewport
	// midline the primary model remains visible, whatever the first section
	// says.
	if offset < sections[1].OffsetTop-viewportHeight/2 {
		return m.primaryKey
	}

	// A section is active while its band [top - vh/2, top + height - vh/2)
	// contains the offset. Bands tile the document, so exactly one matches;
	// past the last band the final section stays active.
	for _, s := range sections {
		lower := s.OffsetTop - viewportHeight/2
		upper := s.OffsetTop + s.Height - viewportHeight/2
		if offset >= lower && offset < upper {
			return s.ModelKey
		}
	}
	return sections[len(sections)-1].ModelKey
}

func (m *stateMachine) OnScroll(offset float32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// The registry drops switches to the already current key, so resolving
	// on every event stays cheap and a model that loads late is picked up by
	// the next resolution instead of being skipped.
	key := m.Resolve(offset, m.layout.ViewportHeight())
	m.log.Debugw("scroll resolved", "offset", offset, "key", key)
	m.registry.SwitchTo(key)
}

func (m *stateMachine) DocumentHeight() float32 {
	var total float32
	for _, s := range m.layout.Sections() {
		total += s.Height
	}
	return total
}
