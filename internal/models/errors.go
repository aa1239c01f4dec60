package models

import "errors"

// Error constants for form and lookup operations
var (
	ErrAlreadySubscribed = errors.New("email already subscribed")
	ErrCEPNotFound       = errors.New("cep not found")
	ErrInvalidCEP        = errors.New("invalid cep")
	ErrRateLimited       = errors.New("too many submissions")
	ErrPolicyNotAccepted = errors.New("privacy policy not accepted")
	ErrUnknownProduct    = errors.New("unknown product")
)
