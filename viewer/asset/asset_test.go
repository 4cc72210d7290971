package asset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/showroom-go/viewer/loader"
	"github.com/Carmen-Shannon/showroom-go/viewer/node"
	"github.com/Carmen-Shannon/showroom-go/viewer/scene"
)

// fakeSource serves canned bytes per path and can be told to fail.
type fakeSource struct {
	data map[string][]byte
	fail map[string]bool
}

func (s *fakeSource) Open(path string) (io.ReadCloser, int64, error) {
	if s.fail[path] {
		return nil, 0, errors.New("source unavailable")
	}
	data, ok := s.data[path]
	if !ok {
		return nil, 0, fmt.Errorf("no such path %s", path)
	}
	return io.NopCloser(bytes.NewReader(data)), int64(len(data)), nil
}

// fakeLoader returns a fresh node per name without parsing anything.
type fakeLoader struct{}

func (fakeLoader) Load(path string) (*node.Node, error) { return node.New(path), nil }

func (fakeLoader) LoadReader(name string, r io.Reader, isGLB bool) (*node.Node, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return nil, err
	}
	return node.New(name), nil
}

func (fakeLoader) Get(name string) *node.Node { return nil }

var _ loader.Loader = fakeLoader{}

// recordingSink captures progress calls for assertions.
type recordingSink struct {
	mu        sync.Mutex
	shown     bool
	hidden    bool
	fractions []float32
	failure   error
}

func (s *recordingSink) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shown = true
}

func (s *recordingSink) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hidden = true
}

func (s *recordingSink) Progress(fraction float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fractions = append(s.fractions, fraction)
}

func (s *recordingSink) Failure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

func awaitResults(t *testing.T, p Pipeline, n int) []Result {
	t.Helper()
	results := make([]Result, 0, n)
	timeout := time.After(5 * time.Second)
	for len(results) < n {
		select {
		case r := <-p.Results():
			results = append(results, r)
		case <-timeout:
			t.Fatalf("timed out waiting for %d results, got %d", n, len(results))
		}
	}
	return results
}

func testCatalog() (map[string]string, *fakeSource) {
	catalog := map[string]string{
		"fox":     "fox.glb",
		"helmet":  "helmet.glb",
		"lantern": "lantern.glb",
	}
	src := &fakeSource{
		data: map[string][]byte{
			"fox.glb":     bytes.Repeat([]byte{0xAB}, 1024),
			"helmet.glb":  bytes.Repeat([]byte{0xCD}, 512),
			"lantern.glb": bytes.Repeat([]byte{0xEF}, 256),
		},
		fail: map[string]bool{},
	}
	return catalog, src
}

func TestPrimaryThenBackground(t *testing.T) {
	catalog, src := testCatalog()
	sink := &recordingSink{}
	p := NewPipeline(catalog,
		WithLoader(fakeLoader{}),
		WithSource(src),
		WithSink(sink),
	)

	require.NoError(t, p.LoadPrimary("fox"))

	results := awaitResults(t, p, 3)

	// The primary settles first; the rest of the catalog only starts after.
	assert.Equal(t, "fox", results[0].Key)
	assert.True(t, results[0].IsPrimary)
	require.NoError(t, results[0].Err)
	require.NotNil(t, results[0].Node)

	seen := map[string]bool{}
	for _, r := range results {
		seen[r.Key] = true
	}
	assert.True(t, seen["helmet"])
	assert.True(t, seen["lantern"])

	for _, key := range []string{"fox", "helmet", "lantern"} {
		assert.Equal(t, scene.StatusLoaded, p.Status(key))
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.True(t, sink.shown)
	assert.True(t, sink.hidden)
	assert.NoError(t, sink.failure)
}

func TestPrimaryFailureStillLoadsBackground(t *testing.T) {
	catalog, src := testCatalog()
	src.fail["fox.glb"] = true
	sink := &recordingSink{}
	p := NewPipeline(catalog,
		WithLoader(fakeLoader{}),
		WithSource(src),
		WithSink(sink),
	)

	require.NoError(t, p.LoadPrimary("fox"))

	results := awaitResults(t, p, 3)

	assert.Equal(t, "fox", results[0].Key)
	assert.Error(t, results[0].Err)
	assert.Nil(t, results[0].Node)
	assert.Equal(t, scene.StatusFailed, p.Status("fox"))

	// One broken model never blocks the rest of the page.
	assert.Equal(t, scene.StatusLoaded, p.Status("helmet"))
	assert.Equal(t, scene.StatusLoaded, p.Status("lantern"))

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Error(t, sink.failure)
	assert.False(t, sink.hidden)
}

func TestBackgroundFailureIsIsolated(t *testing.T) {
	catalog, src := testCatalog()
	src.fail["helmet.glb"] = true
	p := NewPipeline(catalog,
		WithLoader(fakeLoader{}),
		WithSource(src),
	)

	require.NoError(t, p.LoadPrimary("fox"))
	results := awaitResults(t, p, 3)

	byKey := map[string]Result{}
	for _, r := range results {
		byKey[r.Key] = r
	}
	assert.NoError(t, byKey["fox"].Err)
	assert.Error(t, byKey["helmet"].Err)
	assert.NoError(t, byKey["lantern"].Err)
}

func TestLoadPrimaryUnknownKey(t *testing.T) {
	catalog, src := testCatalog()
	p := NewPipeline(catalog, WithLoader(fakeLoader{}), WithSource(src))

	err := p.LoadPrimary("ghost")
	assert.ErrorIs(t, err, ErrUnknownKey)
}

func TestLoadPrimaryIsIdempotent(t *testing.T) {
	catalog, src := testCatalog()
	p := NewPipeline(catalog, WithLoader(fakeLoader{}), WithSource(src))

	require.NoError(t, p.LoadPrimary("fox"))

	// The repeat is a quiet no-op, not an error a caller has to handle.
	assert.NoError(t, p.LoadPrimary("fox"))

	// Exactly one result per key despite the repeated request.
	results := awaitResults(t, p, 3)
	counts := map[string]int{}
	for _, r := range results {
		counts[r.Key]++
	}
	assert.Equal(t, 1, counts["fox"])

	select {
	case r := <-p.Results():
		t.Fatalf("unexpected extra result for %q", r.Key)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestLoadBackgroundIsIdempotent(t *testing.T) {
	catalog, src := testCatalog()
	p := NewPipeline(catalog, WithLoader(fakeLoader{}), WithSource(src))

	p.LoadBackground()
	p.LoadBackground()

	results := awaitResults(t, p, 3)
	counts := map[string]int{}
	for _, r := range results {
		counts[r.Key]++
	}
	for key, n := range counts {
		assert.Equalf(t, 1, n, "key %q loaded %d times", key, n)
	}
}

func TestPrimaryProgressIsMonotonic(t *testing.T) {
	catalog, src := testCatalog()
	sink := &recordingSink{}
	p := NewPipeline(catalog,
		WithLoader(fakeLoader{}),
		WithSource(src),
		WithSink(sink),
	)

	require.NoError(t, p.LoadPrimary("fox"))
	awaitResults(t, p, 3)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	require.NotEmpty(t, sink.fractions)
	last := float32(-1)
	for _, f := range sink.fractions {
		assert.GreaterOrEqual(t, f, last)
		last = f
	}
	assert.Equal(t, float32(1), last)
}

func TestStatusUnknownKeyIsPending(t *testing.T) {
	catalog, src := testCatalog()
	p := NewPipeline(catalog, WithLoader(fakeLoader{}), WithSource(src))

	assert.Equal(t, scene.StatusPending, p.Status("ghost"))
}
