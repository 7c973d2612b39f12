package waypoint

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrNotInitialized is returned when a helper needs state that Init sets up.
	ErrNotInitialized = errors.New("waypoint: Init has not been called")

	// ErrElementMissing indicates a host element the router needs is not in
	// the document.
	ErrElementMissing = errors.New("waypoint: host element missing")
)

// InfrastructureError represents a framework-level failure: the config is
// unreadable, a message catalogue is broken, the host document lacks an
// element. These are startup failures the application cannot render
// around, unlike view failures which the router absorbs.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load_config", "bind_host")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("waypoint: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("waypoint: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
