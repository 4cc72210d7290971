package asset

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/Carmen-Shannon/showroom-go/logging"
	"github.com/Carmen-Shannon/showroom-go/viewer/loader"
	"github.com/Carmen-Shannon/showroom-go/viewer/node"
	"github.com/Carmen-Shannon/showroom-go/viewer/progress"
	"github.com/Carmen-Shannon/showroom-go/viewer/scene"
)

// ErrUnknownKey indicates a load was requested for a key that is not in the
// pipeline's catalog.
var ErrUnknownKey = errors.New("asset: unknown model key")

// Result is one settled load delivered on the pipeline's results channel.
// Exactly one of Node and Err is set.
type Result struct {
	// Key is the model key the result belongs to.
	Key string
	// Node is the loaded node tree, nil when the load failed.
	Node *node.Node
	// Err is the load error, nil when the load succeeded.
	Err error
	// IsPrimary reports whether this was the blocking first-model load.
	IsPrimary bool
}

// pipeline is the implementation of the Pipeline interface.
type pipeline struct {
	mu sync.Mutex

	catalog map[string]string
	status  map[string]scene.Status

	loader  loader.Loader
	source  loader.Source
	sink    progress.Sink
	results chan Result

	pool       worker.DynamicWorkerPool
	nextTaskID int

	log *logging.Logger
}

// Pipeline loads model assets off the main thread and delivers every settled
// load, success or failure, as a Result on a channel. The primary model is
// loaded first with progress reporting; the remaining catalog loads in the
// background once the primary has settled either way.
type Pipeline interface {
	// LoadPrimary starts the primary model's load on its own goroutine and
	// returns immediately. Progress is reported to the pipeline's sink;
	// once the load settles the sink is hidden on success or handed the
	// error on failure, and the rest of the catalog begins loading in the
	// background. A key already loading or loaded is a no-op.
	//
	// Parameters:
	//   - key: the primary model's catalog key
	//
	// Returns:
	//   - error: ErrUnknownKey, nil otherwise
	LoadPrimary(key string) error

	// LoadBackground submits loads for every catalog entry not yet loading
	// or loaded. Keys already in flight are skipped, so calling this
	// multiple times never duplicates work.
	LoadBackground()

	// Results returns the channel settled loads are delivered on. One
	// Result arrives per requested key, in completion order.
	//
	// Returns:
	//   - <-chan Result: the results channel
	Results() <-chan Result

	// Status returns the pipeline's view of the given key's progress.
	//
	// Returns:
	//   - scene.Status: the key's status, StatusPending for unknown keys
	Status(key string) scene.Status
}

var _ Pipeline = &pipeline{}

// NewPipeline creates an asset pipeline over the given catalog of model keys
// to source paths, with the provided options applied.
//
// Parameters:
//   - catalog: model key to source path, every loadable model
//   - options: functional options for pipeline configuration
//
// Returns:
//   - Pipeline: the newly created pipeline
func NewPipeline(catalog map[string]string, options ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		catalog: make(map[string]string, len(catalog)),
		status:  make(map[string]scene.Status, len(catalog)),
		sink:    progress.NewNopSink(),
		results: make(chan Result, len(catalog)+1),
		log:     logging.Nop(),
	}
	for key, path := range catalog {
		p.catalog[key] = path
		p.status[key] = scene.StatusPending
	}

	for _, option := range options {
		option(p)
	}

	if p.loader == nil {
		p.loader = loader.NewLoader(loader.BackendTypeGLTF)
	}
	if p.pool == nil {
		// Queue size of 256 gives plenty of headroom over any realistic
		// showcase catalog.
		p.pool = worker.NewDynamicWorkerPool(2, 256, 1*time.Second)
	}
	return p
}

func (p *pipeline) LoadPrimary(key string) error {
	p.mu.Lock()
	path, ok := p.catalog[key]
	if !ok {
		p.mu.Unlock()
		return ErrUnknownKey
	}
	if p.status[key] != scene.StatusPending {
		p.mu.Unlock()
		p.log.Debugw("primary load already settled or in flight", "key", key)
		return nil
	}
	p.status[key] = scene.StatusLoading
	p.mu.Unlock()

	p.sink.Show()

	go func() {
		n, err := p.loadOne(key, path, true)
		if err != nil {
			p.sink.Failure(err)
		} else {
			p.sink.Progress(1)
			p.sink.Hide()
		}
		p.settle(key, n, err, true)

		// The background catalog starts regardless of how the primary load
		// ended; one broken model must not block the rest of the page.
		p.LoadBackground()
	}()
	return nil
}

func (p *pipeline) LoadBackground() {
	p.mu.Lock()
	pending := make(map[string]string)
	for key, path := range p.catalog {
		if p.status[key] == scene.StatusPending {
			p.status[key] = scene.StatusLoading
			pending[key] = path
		}
	}
	p.mu.Unlock()

	for key, path := range pending {
		keyCap, pathCap := key, path
		p.pool.SubmitTask(worker.Task{
			ID: p.taskID(),
			Do: func() (any, error) {
				n, err := p.loadOne(keyCap, pathCap, false)
				p.settle(keyCap, n, err, false)
				return nil, nil
			},
		})
	}
}

func (p *pipeline) Results() <-chan Result {
	return p.results
}

func (p *pipeline) Status(key string) scene.Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status[key]
}

// loadOne opens the key's source, streams it through the loader, and
// reports byte progress for the primary load.
func (p *pipeline) loadOne(key, path string, isPrimary bool) (*node.Node, error) {
	src := p.source
	if src == nil {
		src = loader.ResolveSource(path)
	}

	rc, total, err := src.Open(path)
	if err != nil {
		return nil, fmt.Errorf("asset %q: open %s: %w", key, path, err)
	}
	defer rc.Close()

	r := rc
	if isPrimary {
		r = newProgressReader(rc, total, p.sink)
	}

	n, err := p.loader.LoadReader(key, r, loader.IsGLBPath(path))
	if err != nil {
		return nil, fmt.Errorf("asset %q: %w", key, err)
	}
	return n, nil
}

// settle records the key's final status and publishes the result.
func (p *pipeline) settle(key string, n *node.Node, err error, isPrimary bool) {
	p.mu.Lock()
	if err != nil {
		p.status[key] = scene.StatusFailed
	} else {
		p.status[key] = scene.StatusLoaded
	}
	p.mu.Unlock()

	if err != nil {
		p.log.Warnw("model load failed", "key", key, "error", err)
	} else {
		p.log.Debugw("model loaded", "key", key, "primary", isPrimary)
	}
	p.results <- Result{Key: key, Node: n, Err: err, IsPrimary: isPrimary}
}

func (p *pipeline) taskID() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextTaskID++
	return p.nextTaskID
}
