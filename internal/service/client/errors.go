package client

import "errors"

var (
	ErrNotFound        = errors.New("client not found")
	ErrInvalidPhone    = errors.New("invalid phone number for the configured region")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrHasAppointments = errors.New("client has appointments and cannot be removed")
)
