package scheduling

import "errors"

var (
	ErrEntryNotFound      = errors.New("schedule entry not found")
	ErrBlockNotFound      = errors.New("blocked date not found")
	ErrTherapistNotFound  = errors.New("therapist not found")
	ErrBranchNotFound     = errors.New("branch not found")
	ErrInvalidTimeRange   = errors.New("end time must be after start time")
	ErrInvalidDayOfWeek   = errors.New("day of week must be between 0 and 6")
	ErrInvalidDate        = errors.New("invalid date")
	ErrDateAlreadyBlocked = errors.New("date is already blocked for this therapist")
)
