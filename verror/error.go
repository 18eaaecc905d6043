package verror

import "fmt"

// VoxError is an error that originated from voxphys itself rather than from
// one of its dependencies.
type VoxError struct {
	Err string
}

func New(format string, args ...interface{}) *VoxError {
	return &VoxError{Err: fmt.Sprintf(format, args...)}
}

func (e *VoxError) Error() string {
	return e.Err
}
