package explore

import "fmt"

// AcceptanceMode selects the criterion for accepting configurations.
type AcceptanceMode int8

// Acceptance modes. In every mode the input has to be consumed completely.
const (
	FinalState              AcceptanceMode = iota // current state is accepting
	EmptyStack                                    // stack is empty
	FinalStateAndEmptyStack                       // both of the above
)

func (m AcceptanceMode) String() string {
	switch m {
	case FinalState:
		return "final-state"
	case EmptyStack:
		return "empty-stack"
	case FinalStateAndEmptyStack:
		return "final-state+empty-stack"
	}
	return fmt.Sprintf("AcceptanceMode(%d)", int(m))
}

// Defaults for the termination guards.
const (
	DefaultMaxSteps      = 100000
	DefaultMaxEpsilonRun = 32
)

// Option configures an engine.
type Option func(e *Engine)

// AcceptBy sets the acceptance criterion. The default is FinalState.
func AcceptBy(mode AcceptanceMode) Option {
	return func(e *Engine) {
		e.mode = mode
	}
}

// MaxSteps limits the number of configurations an engine will expand during a
// single run. Values < 1 are ignored.
func MaxSteps(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxSteps = n
		}
	}
}

// MaxEpsilonRun limits the number of consecutive ε-moves along a branch. A value
// of 0 disables ε-moves altogether; negative values are ignored.
func MaxEpsilonRun(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.maxEpsilon = n
		}
	}
}

// ParseAcceptanceMode converts a name to an acceptance mode. Besides the names
// returned by String it understands the short forms "final", "empty" and "both".
func ParseAcceptanceMode(name string) (AcceptanceMode, error) {
	switch name {
	case "final", FinalState.String():
		return FinalState, nil
	case "empty", EmptyStack.String():
		return EmptyStack, nil
	case "both", FinalStateAndEmptyStack.String():
		return FinalStateAndEmptyStack, nil
	}
	return FinalState, fmt.Errorf("unknown acceptance mode %q", name)
}
