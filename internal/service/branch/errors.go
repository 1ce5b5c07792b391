package branch

import "errors"

var (
	ErrNotFound = errors.New("branch not found")
	ErrInUse    = errors.New("branch has upcoming appointments and cannot be removed")
)
