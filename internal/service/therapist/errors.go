package therapist

import "errors"

var (
	ErrNotFound        = errors.New("therapist not found")
	ErrUserNotFound    = errors.New("linked user not found")
	ErrUserAlreadyUsed = errors.New("user is already linked to another therapist")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrHasAppointments = errors.New("therapist has upcoming appointments and cannot be removed")
)
