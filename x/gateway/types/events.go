package types

import (
	"encoding/hex"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeContractCalled  = "contract_called"
	EventTypeMessageApproved = "message_approved"
	EventTypeMessageExecuted = "message_executed"
	EventTypeSignersRotated  = "signers_rotated"

	AttributeKeyCaller             = "caller"
	AttributeKeyDestinationChain   = "destination_chain"
	AttributeKeyDestinationAddress = "destination_address"
	AttributeKeyPayload            = "payload"
	AttributeKeyPayloadHash        = "payload_hash"
	AttributeKeySourceChain        = "source_chain"
	AttributeKeyMessageID          = "message_id"
	AttributeKeySourceAddress      = "source_address"
	AttributeKeyContractAddress    = "contract_address"
	AttributeKeyEpoch              = "epoch"
	AttributeKeySignersHash        = "signers_hash"
	AttributeKeyThreshold          = "threshold"
)

func NewEventContractCalled(caller sdk.AccAddress, destinationChain, destinationAddress string, payload []byte, payloadHash [32]byte) sdk.Event {
	return sdk.NewEvent(
		EventTypeContractCalled,
		sdk.NewAttribute(AttributeKeyCaller, caller.String()),
		sdk.NewAttribute(AttributeKeyDestinationChain, destinationChain),
		sdk.NewAttribute(AttributeKeyDestinationAddress, destinationAddress),
		sdk.NewAttribute(AttributeKeyPayload, hex.EncodeToString(payload)),
		sdk.NewAttribute(AttributeKeyPayloadHash, hex.EncodeToString(payloadHash[:])),
	)
}

func NewEventMessageApproved(m Message) sdk.Event {
	return sdk.NewEvent(
		EventTypeMessageApproved,
		sdk.NewAttribute(AttributeKeySourceChain, m.SourceChain),
		sdk.NewAttribute(AttributeKeyMessageID, m.MessageID),
		sdk.NewAttribute(AttributeKeySourceAddress, m.SourceAddress),
		sdk.NewAttribute(AttributeKeyContractAddress, m.ContractAddress.String()),
		sdk.NewAttribute(AttributeKeyPayloadHash, hex.EncodeToString(m.PayloadHash[:])),
	)
}

func NewEventMessageExecuted(m Message) sdk.Event {
	return sdk.NewEvent(
		EventTypeMessageExecuted,
		sdk.NewAttribute(AttributeKeySourceChain, m.SourceChain),
		sdk.NewAttribute(AttributeKeyMessageID, m.MessageID),
		sdk.NewAttribute(AttributeKeySourceAddress, m.SourceAddress),
		sdk.NewAttribute(AttributeKeyContractAddress, m.ContractAddress.String()),
	)
}

func NewEventSignersRotated(epoch uint64, signersHash [32]byte, signers WeightedSigners) sdk.Event {
	return sdk.NewEvent(
		EventTypeSignersRotated,
		sdk.NewAttribute(AttributeKeyEpoch, formatUint64(epoch)),
		sdk.NewAttribute(AttributeKeySignersHash, hex.EncodeToString(signersHash[:])),
		sdk.NewAttribute(AttributeKeyThreshold, signers.Threshold.String()),
	)
}

func formatUint64(v uint64) string {
	return strconv.FormatUint(v, 10)
}
