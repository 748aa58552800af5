package types

import "errors"

var (
	// ErrNotInitialized is returned by Owner/Operator reads before either
	// capability has ever been set.
	ErrNotInitialized = errors.New("access: capability not initialized")
	// ErrUnauthorized is returned when the caller does not hold the
	// capability a guarded entry point requires.
	ErrUnauthorized = errors.New("access: caller does not hold the required capability")
	// ErrContractPaused is returned by any entry point guarded with
	// RequireNotPaused while the paused flag is set.
	ErrContractPaused = errors.New("access: contract is paused")
)
