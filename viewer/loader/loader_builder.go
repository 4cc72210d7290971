package loader

import "github.com/Carmen-Shannon/showroom-go/logging"

// LoaderBuilderOption is a functional option for configuring a Loader during
// construction.
type LoaderBuilderOption func(*meshLoader)

// WithLogger is an option builder that sets the logger the loader reports
// import activity to. Defaults to a no-op logger.
//
// Parameters:
//   - log: the logger to use
//
// Returns:
//   - LoaderBuilderOption: option function to apply
func WithLogger(log *logging.Logger) LoaderBuilderOption {
	return func(l *meshLoader) {
		if log != nil {
			l.log = log
		}
	}
}
