package service

import "errors"

// Validation and lookup failures are sentinel errors so callers can branch on
// the reason. A failed call never leaves a partial mutation behind.
var (
	ErrCodeRequired        = errors.New("client code is required")
	ErrNameRequired        = errors.New("client name is required")
	ErrStartDateRequired   = errors.New("client start date is required")
	ErrCodeInUse           = errors.New("client code already in use")
	ErrClientNotFound      = errors.New("client not found")
	ErrDescriptionRequired = errors.New("task description is required")
	ErrDueDateRequired     = errors.New("task due date is required")
	ErrTaskNotFound        = errors.New("task not found")
	// ErrTaskCompleted rejects edits and re-completion of a completed task;
	// Reopen is the only way to make it mutable again.
	ErrTaskCompleted = errors.New("task is already completed")

	ErrInvalidDate = errors.New("date must be YYYY-MM-DD")
	ErrInvalidTime = errors.New("time must be HH:MM")
)
