package manicotti

import (
	"errors"
	"fmt"
)

// ErrCancelled indicates the user backed out of a menu flow (a cancel
// selection reached the router). This is normal flow control, not an
// infrastructure failure.
var ErrCancelled = errors.New("operation cancelled by user")

// InfrastructureError represents a framework-level error that indicates
// something is wrong with manicotti itself (SDL init failed, renderer
// creation failed, asset pipeline broke). These errors are typically fatal
// or require framework-level recovery.
//
// The menu core itself never produces these: missing assets degrade to nil
// references and navigation dead-ends surface as queued events.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_renderer", "load_material")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("manicotti: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("manicotti: %s", e.Op)
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

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
