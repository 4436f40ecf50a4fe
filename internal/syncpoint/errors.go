package syncpoint

import (
	"errors"
	"fmt"
)

// ErrProbeFailed is matched by every ResolveError.
var ErrProbeFailed = errors.New("chain head probe failed")

// ResolveError is returned when a sync mode cannot be resolved into a start point.
// It unwraps to the probe error.
type ResolveError struct {
	Mode string
	Err  error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("resolve %s start point: %v: %v", e.Mode, ErrProbeFailed, e.Err)
}

func (e *ResolveError) Is(target error) bool {
	return target == ErrProbeFailed
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}
