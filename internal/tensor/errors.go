package tensor

import "errors"

// Sentinel errors returned by the storage core. Call sites wrap them with
// fmt.Errorf("...: %w", err) so callers can match with errors.Is.
var (
	// ErrAllocation reports that an Allocator could not satisfy a request.
	// The operation that triggered the allocation leaves all prior state
	// intact.
	ErrAllocation = errors.New("tensor: allocation failed")

	// ErrShapeMismatch reports shape/stride sequences of different lengths.
	ErrShapeMismatch = errors.New("tensor: shape/stride length mismatch")

	// ErrInvalidArgument reports a negative count or percentage, or a nil
	// source pointer with a nonzero length.
	ErrInvalidArgument = errors.New("tensor: invalid argument")

	// ErrOutOfRange reports element access outside a View's bounds.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrInvalidRange reports a sub-range that does not fit inside a View.
	ErrInvalidRange = errors.New("tensor: invalid range")

	// ErrCapacityExceeded reports a bulk copy that would overrun Storage.
	// CopyFrom never grows Storage; callers reserve or resize first.
	ErrCapacityExceeded = errors.New("tensor: storage capacity exceeded")
)
