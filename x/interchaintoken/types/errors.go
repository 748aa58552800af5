package types

import "errors"

var (
	ErrTokenNotFound         = errors.New("interchaintoken: token is not deployed")
	ErrTokenAlreadyExists    = errors.New("interchaintoken: token address is already deployed")
	ErrNegativeAmount        = errors.New("interchaintoken: amount must not be negative")
	ErrInsufficientBalance   = errors.New("interchaintoken: insufficient balance")
	ErrInsufficientAllowance = errors.New("interchaintoken: insufficient allowance")
	ErrNotMinter             = errors.New("interchaintoken: caller is not a minter")
	ErrUnauthorized          = errors.New("interchaintoken: caller is not the token owner")
)
