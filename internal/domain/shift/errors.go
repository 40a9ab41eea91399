package shift

import "errors"

var (
	ErrAssignmentNotFound   = errors.New("shift assignment not found")
	ErrAssignmentNotPending = errors.New("shift assignment is not pending")
)
