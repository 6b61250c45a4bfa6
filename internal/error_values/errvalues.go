package errorvalues

import "errors"

var (
	ErrTaskNotFound    = errors.New("task doesn't exist")
	ErrEmptyTaskText   = errors.New("task text is empty")
	ErrCheckInNotFound = errors.New("no check-in for that date")
	ErrInvalidCheckIn  = errors.New("check-in data is invalid")
	ErrInvalidDate     = errors.New("date is not in YYYY-MM-DD form")
)
