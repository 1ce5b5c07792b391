package appointment

import "errors"

var (
	ErrNotFound          = errors.New("appointment not found")
	ErrConflict          = errors.New("requested time is no longer free")
	ErrClientNotFound    = errors.New("client not found")
	ErrTherapistNotFound = errors.New("therapist not found")
	ErrTherapistInactive = errors.New("therapist is not accepting appointments")
	ErrBranchNotFound    = errors.New("branch not found")
	ErrServiceNotFound   = errors.New("service not found")
	ErrInvalidTime       = errors.New("invalid appointment time")
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrAlreadyCancelled  = errors.New("appointment is already cancelled")
)
