package availability

import "errors"

var (
	ErrTherapistNotFound = errors.New("therapist not found")
	ErrServiceNotFound   = errors.New("service not found")
	ErrBranchNotFound    = errors.New("branch not found")
	ErrInvalidDate       = errors.New("invalid date")
)
