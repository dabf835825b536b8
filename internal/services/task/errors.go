package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrTitleTooLong    = errors.New("task title cannot exceed 255 characters")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidStatus   = errors.New("invalid status")

	// Business logic errors
	ErrTaskNotFound = errors.New("task not found")
)
