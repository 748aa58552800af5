package types

import "errors"

var (
	ErrManagerNotFound    = errors.New("tokenmanager: manager is not deployed")
	ErrManagerExists      = errors.New("tokenmanager: manager address is already deployed")
	ErrUnauthorized       = errors.New("tokenmanager: caller is not the manager owner")
	ErrInsufficientEscrow = errors.New("tokenmanager: escrow balance is insufficient")
)
