package types

import "errors"

// Proof / signer-set validation.
var (
	ErrEmptySigners       = errors.New("gateway: signer set must be non-empty")
	ErrInvalidSigners     = errors.New("gateway: signers must be strictly ascending by public key")
	ErrInvalidWeight      = errors.New("gateway: every signer weight must be non-zero")
	ErrWeightOverflow     = errors.New("gateway: sum of signer weights overflows u128")
	ErrInvalidThreshold   = errors.New("gateway: threshold must be in [1, sum of weights]")
	ErrInvalidSignersHash = errors.New("gateway: signers hash is not bound to any epoch")
	ErrInvalidEpoch       = errors.New("gateway: epoch has no bound signers hash")
	ErrInvalidSignatures  = errors.New("gateway: invalid signature or accumulated weight below threshold")
)

// State-machine violations.
var (
	ErrOutdatedSigners           = errors.New("gateway: signer set is past the retention window")
	ErrNotLatestSigners          = errors.New("gateway: proof was not produced by the current signer set")
	ErrDuplicateSigners          = errors.New("gateway: signer set hash is already bound to an epoch")
	ErrInsufficientRotationDelay = errors.New("gateway: minimum rotation delay has not elapsed")
	ErrEmptyMessages             = errors.New("gateway: message batch must be non-empty")
)

// Routing.
var (
	ErrNotApproved = errors.New("gateway: message is not in an approved state")
)
