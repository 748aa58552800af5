package types

import (
	"encoding/hex"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeTrustedChainSet                  = "trusted_chain_set"
	EventTypeTrustedChainRemoved              = "trusted_chain_removed"
	EventTypeInterchainTokenIdClaimed         = "interchain_token_id_claimed"
	EventTypeInterchainTokenDeployed          = "interchain_token_deployed"
	EventTypeInterchainTokenDeploymentStarted = "interchain_token_deployment_started"
	EventTypeTokenManagerDeployed             = "token_manager_deployed"
	EventTypeInterchainTransferSent           = "interchain_transfer_sent"
	EventTypeInterchainTransferReceived       = "interchain_transfer_received"
	EventTypeFlowLimitSet                     = "flow_limit_set"

	AttributeKeyChain              = "chain"
	AttributeKeyTokenId            = "token_id"
	AttributeKeyTokenAddress       = "token_address"
	AttributeKeyTokenManager       = "token_manager"
	AttributeKeyManagerType        = "manager_type"
	AttributeKeyDeployer           = "deployer"
	AttributeKeyName               = "name"
	AttributeKeySymbol             = "symbol"
	AttributeKeyDecimals           = "decimals"
	AttributeKeyMinter             = "minter"
	AttributeKeyDestinationChain   = "destination_chain"
	AttributeKeySourceAddress      = "source_address"
	AttributeKeyDestinationAddress = "destination_address"
	AttributeKeyAmount             = "amount"
	AttributeKeyData               = "data"
	AttributeKeyFlowLimit          = "flow_limit"
)

func NewEventTrustedChainSet(chain string) sdk.Event {
	return sdk.NewEvent(EventTypeTrustedChainSet, sdk.NewAttribute(AttributeKeyChain, chain))
}

func NewEventTrustedChainRemoved(chain string) sdk.Event {
	return sdk.NewEvent(EventTypeTrustedChainRemoved, sdk.NewAttribute(AttributeKeyChain, chain))
}

func NewEventInterchainTokenIdClaimed(tokenID [32]byte, deployer sdk.AccAddress, salt [32]byte) sdk.Event {
	return sdk.NewEvent(
		EventTypeInterchainTokenIdClaimed,
		sdk.NewAttribute(AttributeKeyTokenId, hex.EncodeToString(tokenID[:])),
		sdk.NewAttribute(AttributeKeyDeployer, deployer.String()),
	)
}

func NewEventInterchainTokenDeployed(tokenID [32]byte, tokenAddress [32]byte, name, symbol string, decimals uint8, minter sdk.AccAddress) sdk.Event {
	minterAttr := ""
	if minter != nil {
		minterAttr = minter.String()
	}
	return sdk.NewEvent(
		EventTypeInterchainTokenDeployed,
		sdk.NewAttribute(AttributeKeyTokenId, hex.EncodeToString(tokenID[:])),
		sdk.NewAttribute(AttributeKeyTokenAddress, hex.EncodeToString(tokenAddress[:])),
		sdk.NewAttribute(AttributeKeyName, name),
		sdk.NewAttribute(AttributeKeySymbol, symbol),
		sdk.NewAttribute(AttributeKeyMinter, minterAttr),
	)
}

func NewEventInterchainTokenDeploymentStarted(tokenID [32]byte, destinationChain, name, symbol string, decimals uint8) sdk.Event {
	return sdk.NewEvent(
		EventTypeInterchainTokenDeploymentStarted,
		sdk.NewAttribute(AttributeKeyTokenId, hex.EncodeToString(tokenID[:])),
		sdk.NewAttribute(AttributeKeyDestinationChain, destinationChain),
		sdk.NewAttribute(AttributeKeyName, name),
		sdk.NewAttribute(AttributeKeySymbol, symbol),
	)
}

func NewEventTokenManagerDeployed(tokenID [32]byte, tokenManager [32]byte, managerType TokenManagerType) sdk.Event {
	return sdk.NewEvent(
		EventTypeTokenManagerDeployed,
		sdk.NewAttribute(AttributeKeyTokenId, hex.EncodeToString(tokenID[:])),
		sdk.NewAttribute(AttributeKeyTokenManager, hex.EncodeToString(tokenManager[:])),
	)
}

func NewEventInterchainTransferSent(tokenID [32]byte, sourceAddress sdk.AccAddress, destinationChain string, destinationAddress []byte, amount sdkmath.Int, data []byte) sdk.Event {
	return sdk.NewEvent(
		EventTypeInterchainTransferSent,
		sdk.NewAttribute(AttributeKeyTokenId, hex.EncodeToString(tokenID[:])),
		sdk.NewAttribute(AttributeKeySourceAddress, sourceAddress.String()),
		sdk.NewAttribute(AttributeKeyDestinationChain, destinationChain),
		sdk.NewAttribute(AttributeKeyDestinationAddress, hex.EncodeToString(destinationAddress)),
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
		sdk.NewAttribute(AttributeKeyData, hex.EncodeToString(data)),
	)
}

func NewEventInterchainTransferReceived(tokenID [32]byte, sourceChain string, sourceAddress []byte, destinationAddress sdk.AccAddress, amount sdkmath.Int) sdk.Event {
	return sdk.NewEvent(
		EventTypeInterchainTransferReceived,
		sdk.NewAttribute(AttributeKeyTokenId, hex.EncodeToString(tokenID[:])),
		sdk.NewAttribute(AttributeKeyChain, sourceChain),
		sdk.NewAttribute(AttributeKeySourceAddress, hex.EncodeToString(sourceAddress)),
		sdk.NewAttribute(AttributeKeyDestinationAddress, destinationAddress.String()),
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
	)
}

func NewEventFlowLimitSet(tokenID [32]byte, limit *sdkmath.Int) sdk.Event {
	limitAttr := ""
	if limit != nil {
		limitAttr = limit.String()
	}
	return sdk.NewEvent(
		EventTypeFlowLimitSet,
		sdk.NewAttribute(AttributeKeyTokenId, hex.EncodeToString(tokenID[:])),
		sdk.NewAttribute(AttributeKeyFlowLimit, limitAttr),
	)
}
