package router

import (
	"errors"
	"fmt"
)

// Sentinel errors returned while building a route table or router.
var (
	// ErrNoNotFoundRoute means the table has no descriptor for the not-found path.
	ErrNoNotFoundRoute = errors.New("router: not-found route is not registered")

	ErrDuplicateRoute = errors.New("router: duplicate route")
	ErrInvalidPattern = errors.New("router: invalid route pattern")
	ErrNilFactory     = errors.New("router: nil view factory")

	ErrMissingRegion  = errors.New("router: host region is required")
	ErrMissingHistory = errors.New("router: history is required")

	// ErrNilView is returned when a factory produces neither a view nor an error.
	ErrNilView = errors.New("router: factory returned a nil view")
)

// Phase names the lifecycle step a view was in when it failed.
type Phase string

const (
	PhaseConstruct  Phase = "construct"
	PhaseRender     Phase = "render"
	PhaseInitialize Phase = "initialize"
	PhaseCleanup    Phase = "cleanup"
)

// LifecycleError wraps a failure raised by view code during one lifecycle
// phase. The router never returns these to callers of Navigate or Start;
// they are logged and handed to the error-content hook.
type LifecycleError struct {
	Phase Phase  // Lifecycle step that failed
	Path  string // Path being resolved
	Err   error  // Underlying error, or the recovered panic
}

func (e *LifecycleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("router: %s %s: %v", e.Phase, e.Path, e.Err)
	}
	return fmt.Sprintf("router: %s %s", e.Phase, e.Path)
}

func (e *LifecycleError) Unwrap() error {
	return e.Err
}

// IsLifecycleError reports whether err came from a view lifecycle method.
func IsLifecycleError(err error) bool {
	var lerr *LifecycleError
	return errors.As(err, &lerr)
}

// PhaseOf returns the failing phase of a lifecycle error, or "" for other errors.
func PhaseOf(err error) Phase {
	var lerr *LifecycleError
	if errors.As(err, &lerr) {
		return lerr.Phase
	}
	return ""
}
