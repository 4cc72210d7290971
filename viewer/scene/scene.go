package scene

import (
	"sync"

	"github.com/Carmen-Shannon/showroom-go/logging"
	"github.com/Carmen-Shannon/showroom-go/viewer/light"
	"github.com/Carmen-Shannon/showroom-go/viewer/node"
)

// Status tracks how far a model asset has progressed through the loading
// pipeline.
type Status int

const (
	// StatusPending means the asset is known but loading has not started.
	StatusPending Status = iota
	// StatusLoading means a load for the asset is in flight.
	StatusLoading
	// StatusLoaded means the asset's node tree is ready for display.
	StatusLoaded
	// StatusFailed means the asset's load ended in an error.
	StatusFailed
)

// String returns the human-readable name of the status.
//
// Returns:
//   - string: the status name
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ModelAsset is one showcased model tracked by the registry.
type ModelAsset struct {
	// Key is the unique identifier the model is registered and switched by.
	Key string
	// SourcePath is where the model was loaded from, when known.
	SourcePath string
	// Status is the asset's current pipeline status.
	Status Status
	// Node is the root of the prepared node tree, nil until loaded.
	Node *node.Node
	// Visible reports whether the model is the one currently displayed.
	Visible bool
	// IsPrimary marks the model shown first, before any scrolling.
	IsPrimary bool
}

// registry is the implementation of the Registry interface.
type registry struct {
	mu sync.RWMutex

	assets     map[string]*ModelAsset
	currentKey string

	rig light.Rig
	log *logging.Logger
}

// Registry holds every showcased model and enforces that exactly one of them
// is visible at a time. Registering a primary model makes it visible
// immediately; every later registration starts hidden until SwitchTo selects
// it.
type Registry interface {
	// Register adds a loaded model under the given key. The primary model
	// becomes visible and current immediately; all other models start hidden.
	// Registering an existing key replaces its node.
	//
	// Parameters:
	//   - key: the unique model key
	//   - n: the root of the prepared node tree
	//   - isPrimary: whether this is the model shown before any scrolling
	Register(key string, n *node.Node, isPrimary bool)

	// SwitchTo makes the model under key the only visible one and retargets
	// the lighting rig at it. Unknown keys and switches to the already
	// current key are silently ignored.
	//
	// Parameters:
	//   - key: the model key to display
	SwitchTo(key string)

	// CurrentKey returns the key of the currently visible model, or the
	// empty string if nothing is visible yet.
	//
	// Returns:
	//   - string: the current model key
	CurrentKey() string

	// Current returns the currently visible model, or nil if nothing is
	// visible yet.
	//
	// Returns:
	//   - *ModelAsset: the visible model
	Current() *ModelAsset

	// Asset returns the model registered under key.
	//
	// Returns:
	//   - *ModelAsset: the model, nil if the key is unknown
	Asset(key string) *ModelAsset

	// Keys returns the keys of every registered model.
	//
	// Returns:
	//   - []string: the registered keys
	Keys() []string
}

var _ Registry = &registry{}

// NewRegistry creates an empty model registry with the provided options
// applied.
//
// Parameters:
//   - options: functional options for registry configuration
//
// Returns:
//   - Registry: the newly created registry
func NewRegistry(options ...RegistryBuilderOption) Registry {
	r := &registry{
		assets: make(map[string]*ModelAsset),
		log:    logging.Nop(),
	}

	for _, option := range options {
		option(r)
	}
	return r
}

func (r *registry) Register(key string, n *node.Node, isPrimary bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	asset, ok := r.assets[key]
	if !ok {
		asset = &ModelAsset{Key: key}
		r.assets[key] = asset
	}
	asset.Node = n
	asset.Status = StatusLoaded
	asset.IsPrimary = isPrimary

	if isPrimary {
		for _, other := range r.assets {
			other.Visible = false
		}
		asset.Visible = true
		r.currentKey = key
		r.retargetLocked(asset)
	} else {
		asset.Visible = false
	}
	r.log.Debugw("model registered", "key", key, "primary", isPrimary)
}

func (r *registry) SwitchTo(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if key == r.currentKey {
		return
	}
	next, ok := r.assets[key]
	if !ok || next.Node == nil {
		return
	}

	for _, asset := range r.assets {
		asset.Visible = false
	}
	next.Visible = true
	r.currentKey = key
	r.retargetLocked(next)
	r.log.Debugw("model switched", "key", key)
}

func (r *registry) CurrentKey() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.currentKey
}

func (r *registry) Current() *ModelAsset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.currentKey == "" {
		return nil
	}
	return r.assets[r.currentKey]
}

func (r *registry) Asset(key string) *ModelAsset {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.assets[key]
}

func (r *registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.assets))
	for key := range r.assets {
		keys = append(keys, key)
	}
	return keys
}

// retargetLocked aims the lighting rig at the newly visible model. The rig
// recomputes its shadow matrix synchronously, so the frustum is consistent
// before the registry mutex is released. Caller must hold the write lock.
func (r *registry) retargetLocked(asset *ModelAsset) {
	if r.rig == nil || asset.Node == nil {
		return
	}
	r.rig.Retarget(asset.Node)
}
