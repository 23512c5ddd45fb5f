package database

import (
	"errors"
	"fmt"
)

var (
	// ErrConnection is matched by every *ConnectionError.
	ErrConnection = errors.New("database connection failed")
	// ErrPoolClosed is returned when a connection is requested after Close.
	ErrPoolClosed = errors.New("database pool closed")
)

// ConnectionError reports a target that could not be parsed or reached.
type ConnectionError struct {
	Op     string
	Target string
	Err    error
}

func (e *ConnectionError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("database %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("database %s %s: %v", e.Op, e.Target, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrConnection) hold for any ConnectionError.
func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnection
}
