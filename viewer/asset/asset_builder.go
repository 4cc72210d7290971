package asset

import (
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"

	"github.com/Carmen-Shannon/showroom-go/logging"
	"github.com/Carmen-Shannon/showroom-go/viewer/loader"
	"github.com/Carmen-Shannon/showroom-go/viewer/progress"
)

// PipelineBuilderOption defines functional options for configuring a
// Pipeline.
type PipelineBuilderOption func(*pipeline)

// WithLoader sets the mesh loader the pipeline parses sources with.
//
// Parameters:
//   - l: the loader to use
//
// Returns:
//   - PipelineBuilderOption: the option to apply
func WithLoader(l loader.Loader) PipelineBuilderOption {
	return func(p *pipeline) {
		if l != nil {
			p.loader = l
		}
	}
}

// WithSource forces every load through the given byte source instead of
// resolving one per path.
//
// Parameters:
//   - src: the source to open paths with
//
// Returns:
//   - PipelineBuilderOption: the option to apply
func WithSource(src loader.Source) PipelineBuilderOption {
	return func(p *pipeline) {
		p.source = src
	}
}

// WithSink sets the progress sink the primary load reports to.
//
// Parameters:
//   - sink: the sink to report to
//
// Returns:
//   - PipelineBuilderOption: the option to apply
func WithSink(sink progress.Sink) PipelineBuilderOption {
	return func(p *pipeline) {
		if sink != nil {
			p.sink = sink
		}
	}
}

// WithWorkers sets the minimum worker count for the background load pool.
// Values < 1 are ignored.
//
// Parameters:
//   - workers: the minimum number of pool workers
//
// Returns:
//   - PipelineBuilderOption: the option to apply
func WithWorkers(workers int) PipelineBuilderOption {
	return func(p *pipeline) {
		if workers >= 1 {
			p.pool = worker.NewDynamicWorkerPool(workers, 256, 1*time.Second)
		}
	}
}

// WithLogger sets the logger the pipeline reports load outcomes to.
//
// Parameters:
//   - log: the logger to use
//
// Returns:
//   - PipelineBuilderOption: the option to apply
func WithLogger(log *logging.Logger) PipelineBuilderOption {
	return func(p *pipeline) {
		if log != nil {
			p.log = log
		}
	}
}
