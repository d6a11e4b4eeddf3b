package temporal

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWindow is matched by [*WindowError]: a window (t, Δ) that
	// does not fit inside [0, τ-1].
	ErrInvalidWindow = errors.New("invalid window")

	// ErrInvalidDelta is matched by [*DeltaError]: a window length outside [1, τ].
	ErrInvalidDelta = errors.New("invalid delta")

	// ErrOutOfRange is matched by [*RangeError]: a snapshot index outside [0, τ-1].
	ErrOutOfRange = errors.New("snapshot index out of range")

	// ErrDuplicateVertex is returned by [New] when a vertex is listed twice.
	ErrDuplicateVertex = errors.New("duplicate vertex")

	// ErrUnknownVertex is returned by [New] when an edge endpoint is not a vertex.
	ErrUnknownVertex = errors.New("edge endpoint is not a vertex")

	// ErrSelfLoop is returned by [New] for an edge (v, v).
	ErrSelfLoop = errors.New("self-loop")

	// ErrParallelEdge is returned by [New] when a snapshot lists the same
	// unordered pair twice.
	ErrParallelEdge = errors.New("parallel edge")
)

// WindowError reports a window that violates t >= 0, Δ >= 1, t+Δ-1 < τ.
type WindowError struct {
	T        int
	Delta    int
	Lifetime int
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("invalid window: t=%d, delta=%d, lifetime=%d; need 0 <= t and t + delta - 1 < lifetime",
		e.T, e.Delta, e.Lifetime)
}

// Is reports whether target is [ErrInvalidWindow].
func (e *WindowError) Is(target error) bool { return target == ErrInvalidWindow }

// DeltaError reports a window length outside [1, τ].
type DeltaError struct {
	Delta    int
	Lifetime int
}

func (e *DeltaError) Error() string {
	return fmt.Sprintf("delta=%d out of range for lifetime=%d", e.Delta, e.Lifetime)
}

// Is reports whether target is [ErrInvalidDelta].
func (e *DeltaError) Is(target error) bool { return target == ErrInvalidDelta }

// RangeError reports a snapshot index outside [0, τ-1].
type RangeError struct {
	T        int
	Lifetime int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("snapshot %d out of range for lifetime=%d", e.T, e.Lifetime)
}

// Is reports whether target is [ErrOutOfRange].
func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }

// CheckWindow returns a [*WindowError] unless the window fits the lifetime.
func CheckWindow(t, delta, lifetime int) error {
	if t < 0 || delta < 1 || t >= lifetime || delta > lifetime-t {
		return &WindowError{T: t, Delta: delta, Lifetime: lifetime}
	}
	return nil
}

// CheckDelta returns a [*DeltaError] unless 1 <= delta <= lifetime.
func CheckDelta(delta, lifetime int) error {
	if delta < 1 || delta > lifetime {
		return &DeltaError{Delta: delta, Lifetime: lifetime}
	}
	return nil
}
