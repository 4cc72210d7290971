package loader

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Carmen-Shannon/showroom-go/logging"
	"github.com/Carmen-Shannon/showroom-go/viewer/node"
)

// BackendType identifies the model file format backend to use.
type BackendType int

const (
	// BackendTypeGLTF selects the glTF/GLB loader backend.
	BackendTypeGLTF BackendType = iota
)

// meshLoader is the implementation of the Loader interface.
type meshLoader struct {
	mu sync.RWMutex

	nodeCache map[string]*node.Node

	backend meshBackend

	log *logging.Logger
}

// Loader defines the public-facing interface for importing 3D model files
// into CPU-side node hierarchies. It abstracts the file format (glTF, GLB)
// behind a generic backend and caches previously imported hierarchies.
type Loader interface {
	// Load imports a model file and caches the resulting node hierarchy.
	// If the model is already cached (by file path), the cached version is
	// returned. The backend is selected by file extension (.gltf/.glb → glTF).
	//
	// Parameters:
	//   - path: the file path to the model file
	//
	// Returns:
	//   - *node.Node: the imported hierarchy root
	//   - error: error if importing fails
	Load(path string) (*node.Node, error)

	// LoadReader imports a model from a reader stream and caches it by the
	// given name. Use this when bytes arrive through a Source so progress can
	// be observed while reading.
	//
	// Parameters:
	//   - name: the cache key for the imported hierarchy
	//   - r: the reader providing model data
	//   - isGLB: true if the reader provides GLB binary data
	//
	// Returns:
	//   - *node.Node: the imported hierarchy root
	//   - error: error if importing fails
	LoadReader(name string, r io.Reader, isGLB bool) (*node.Node, error)

	// Get retrieves a cached hierarchy by name. Returns nil if not found.
	//
	// Parameters:
	//   - name: the cache key to look up
	//
	// Returns:
	//   - *node.Node: the cached hierarchy root or nil
	Get(name string) *node.Node
}

var _ Loader = &meshLoader{}

// NewLoader creates a new Loader instance with the specified backend type and
// options applied.
//
// Parameters:
//   - backendType: the type of loader backend to use (e.g., BackendTypeGLTF)
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new instance of Loader configured with the provided backend and options
func NewLoader(backendType BackendType, options ...LoaderBuilderOption) Loader {
	l := &meshLoader{
		nodeCache: make(map[string]*node.Node),
		log:       logging.Nop(),
	}

	switch backendType {
	case BackendTypeGLTF:
		l.backend = newGLTFBackend()
	}

	for _, option := range options {
		option(l)
	}
	return l
}

func (l *meshLoader) Load(path string) (*node.Node, error) {
	l.mu.RLock()
	if cached, ok := l.nodeCache[path]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	if err := l.checkExtension(path); err != nil {
		return nil, err
	}

	n, err := l.backend.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	l.log.Debugw("imported model file", "path", path, "root", n.Name)

	l.mu.Lock()
	l.nodeCache[path] = n
	l.mu.Unlock()

	return n, nil
}

func (l *meshLoader) LoadReader(name string, r io.Reader, isGLB bool) (*node.Node, error) {
	l.mu.RLock()
	if cached, ok := l.nodeCache[name]; ok {
		l.mu.RUnlock()
		return cached, nil
	}
	l.mu.RUnlock()

	n, err := l.backend.LoadReader(name, r, isGLB)
	if err != nil {
		return nil, fmt.Errorf("failed to load from reader %q: %w", name, err)
	}
	l.log.Debugw("imported model stream", "name", name, "root", n.Name)

	l.mu.Lock()
	l.nodeCache[name] = n
	l.mu.Unlock()

	return n, nil
}

func (l *meshLoader) Get(name string) *node.Node {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.nodeCache[name]
}

// checkExtension rejects file formats no backend handles.
// Currently only glTF/GLB is supported.
func (l *meshLoader) checkExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gltf", ".glb":
		return nil
	default:
		return fmt.Errorf("unsupported model format: %s", ext)
	}
}

// IsGLBPath reports whether the path names a binary glTF container, which
// callers streaming bytes through LoadReader need to pass along.
//
// Parameters:
//   - path: the file path or URL of the model
//
// Returns:
//   - bool: true for .glb paths
func IsGLBPath(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".glb"
}
