package service

import "errors"

// Common service errors
var (
	ErrNoEligibleQuestion = errors.New("no eligible question remains")
)
