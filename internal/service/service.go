package service

import "errors"

// Sentinel errors shared by the use-case layer. Handlers translate these to
// HTTP status codes; everything else surfaces as an internal error.
var (
	ErrIDRequired           = errors.New("id is required")
	ErrNotFound             = errors.New("resource not found")
	ErrProfileIncomplete    = errors.New("business profile is missing required fields")
	ErrInstructionsRequired = errors.New("modification instructions are required")
	ErrMessageRequired      = errors.New("message is required")
	ErrEmptyCompletion      = errors.New("model returned an empty completion")
	ErrInvalidStatus        = errors.New("invalid plan status")
	ErrAlreadyEnrolled      = errors.New("already enrolled in course")
	ErrNotEnrolled          = errors.New("not enrolled in course")
)
