package types

import "errors"

var (
	ErrInvalidAmount       = errors.New("gasservice: amount must be positive")
	ErrInsufficientBalance = errors.New("gasservice: insufficient escrowed balance")
)
