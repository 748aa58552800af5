package types

import (
	"encoding/hex"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeGasPaid      = "gas_paid"
	EventTypeGasAdded     = "gas_added"
	EventTypeGasCollected = "gas_collected"
	EventTypeGasRefunded  = "gas_refunded"

	AttributeKeySender             = "sender"
	AttributeKeyDestinationChain   = "destination_chain"
	AttributeKeyDestinationAddress = "destination_address"
	AttributeKeyPayloadHash        = "payload_hash"
	AttributeKeySpender            = "spender"
	AttributeKeyTokenDenom         = "token_denom"
	AttributeKeyTokenAmount        = "token_amount"
	AttributeKeyMetadata           = "metadata"
	AttributeKeyMessageID          = "message_id"
	AttributeKeyReceiver           = "receiver"
)

func NewEventGasPaid(
	sender sdk.AccAddress,
	destinationChain, destinationAddress string,
	payloadHash [32]byte,
	spender sdk.AccAddress,
	token Token,
	metadata []byte,
) sdk.Event {
	return sdk.NewEvent(
		EventTypeGasPaid,
		sdk.NewAttribute(AttributeKeySender, sender.String()),
		sdk.NewAttribute(AttributeKeyDestinationChain, destinationChain),
		sdk.NewAttribute(AttributeKeyDestinationAddress, destinationAddress),
		sdk.NewAttribute(AttributeKeyPayloadHash, hex.EncodeToString(payloadHash[:])),
		sdk.NewAttribute(AttributeKeySpender, spender.String()),
		sdk.NewAttribute(AttributeKeyTokenDenom, token.Denom),
		sdk.NewAttribute(AttributeKeyTokenAmount, token.Amount.String()),
		sdk.NewAttribute(AttributeKeyMetadata, hex.EncodeToString(metadata)),
	)
}

func NewEventGasAdded(messageID string, spender sdk.AccAddress, token Token) sdk.Event {
	return sdk.NewEvent(
		EventTypeGasAdded,
		sdk.NewAttribute(AttributeKeyMessageID, messageID),
		sdk.NewAttribute(AttributeKeySpender, spender.String()),
		sdk.NewAttribute(AttributeKeyTokenDenom, token.Denom),
		sdk.NewAttribute(AttributeKeyTokenAmount, token.Amount.String()),
	)
}

func NewEventGasCollected(receiver sdk.AccAddress, token Token) sdk.Event {
	return sdk.NewEvent(
		EventTypeGasCollected,
		sdk.NewAttribute(AttributeKeyReceiver, receiver.String()),
		sdk.NewAttribute(AttributeKeyTokenDenom, token.Denom),
		sdk.NewAttribute(AttributeKeyTokenAmount, token.Amount.String()),
	)
}

func NewEventGasRefunded(messageID string, receiver sdk.AccAddress, token Token) sdk.Event {
	return sdk.NewEvent(
		EventTypeGasRefunded,
		sdk.NewAttribute(AttributeKeyMessageID, messageID),
		sdk.NewAttribute(AttributeKeyReceiver, receiver.String()),
		sdk.NewAttribute(AttributeKeyTokenDenom, token.Denom),
		sdk.NewAttribute(AttributeKeyTokenAmount, token.Amount.String()),
	)
}
