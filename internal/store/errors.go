package store

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned by read operations before Connect has
// succeeded. The API layer maps it to a 503.
var ErrNotConnected = errors.New("store: not connected")

// OpError wraps a driver failure on a connected store: the store was
// reachable at startup but a later query/count failed.
type OpError struct {
	Op  string // The failing operation: "find", "count", "sample"
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}
