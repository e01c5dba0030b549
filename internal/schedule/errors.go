package schedule

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found in roadmap")
	ErrInvalidDate  = errors.New("invalid calendar date")
)
