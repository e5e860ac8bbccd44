package session

import "errors"

var (
	// ErrInsufficientData is returned when a record carries neither a usable
	// thumbmark ID nor a usable canvas hash.
	ErrInsufficientData = errors.New("insufficient fingerprint data")
)
