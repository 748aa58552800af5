package types

import (
	"encoding/hex"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeMinterAdded   = "minter_added"
	EventTypeMinterRemoved = "minter_removed"

	AttributeKeyTokenAddress = "token_address"
	AttributeKeyMinter       = "minter"
)

func NewEventMinterAdded(tokenAddress [32]byte, minter []byte) sdk.Event {
	return sdk.NewEvent(
		EventTypeMinterAdded,
		sdk.NewAttribute(AttributeKeyTokenAddress, hex.EncodeToString(tokenAddress[:])),
		sdk.NewAttribute(AttributeKeyMinter, hex.EncodeToString(minter)),
	)
}

func NewEventMinterRemoved(tokenAddress [32]byte, minter []byte) sdk.Event {
	return sdk.NewEvent(
		EventTypeMinterRemoved,
		sdk.NewAttribute(AttributeKeyTokenAddress, hex.EncodeToString(tokenAddress[:])),
		sdk.NewAttribute(AttributeKeyMinter, hex.EncodeToString(minter)),
	)
}
