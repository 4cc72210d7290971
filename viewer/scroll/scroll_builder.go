package scroll

import "github.com/Carmen-Shannon/showroom-go/logging"

// StateMachineBuilderOption defines functional options for configuring a
// StateMachine.
type StateMachineBuilderOption func(*stateMachine)

// WithLogger sets the logger the state machine reports section changes to.
//
// Parameters:
//   - log: the logger to use
//
// Returns:
//   - StateMachineBuilderOption: the option to apply
func WithLogger(log *logging.Logger) StateMachineBuilderOption {
	return func(m *stateMachine) {
		if log != nil {
			m.log = log
		}
	}
}
