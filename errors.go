package ecs

import (
	"errors"
	"fmt"
)

// Errors reported by World and SystemGroup operations. Call sites wrap these
// with context; test with errors.Is.
var (
	// ErrInvalidEntity reports an operation on an out-of-range or dead entity id.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrInvalidArgument reports a nil or otherwise unusable argument.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrLifecycleViolation reports an operation outside its legal lifecycle
	// window, such as a double Initialize or a Run before Initialize.
	ErrLifecycleViolation = errors.New("lifecycle violation")
)

func invalidEntityError(e Entity, reason string) error {
	return fmt.Errorf("%w: entity %d %s", ErrInvalidEntity, e, reason)
}
