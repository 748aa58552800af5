// Outbound pipeline: hub framing, optional gas payment, and the gateway
// contract-call emission shared by every message ITS sends.
package keeper

import (
	"encoding/hex"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	gasservicetypes "github.com/axelar-network/interchain-go/x/gasservice/types"
	"github.com/axelar-network/interchain-go/x/its/types"
)

// payGasAndCallContract frames inner as a SendToHub envelope, optionally
// pays the Gas Service (gasToken == nil skips payment, caller still
// authorizes), and asks the gateway to emit ContractCalled toward the hub.
func (k Keeper) payGasAndCallContract(
	ctx sdk.Context,
	caller sdk.AccAddress,
	destinationChain string,
	inner types.InnerMessage,
	gasToken *gasservicetypes.Token,
) error {
	if !k.IsTrustedChain(ctx, destinationChain) {
		return types.ErrUntrustedChain
	}

	hub := types.HubMessage{Type: types.HubMessageSendToHub, Chain: destinationChain, Message: inner}
	payload := hub.Encode()

	hubChainName := k.HubChainName(ctx)
	hubAddress := k.HubAddress(ctx)

	if gasToken != nil {
		if err := k.GasService.PayGas(ctx, caller, hubChainName, hubAddress, payload, caller, *gasToken, nil); err != nil {
			return err
		}
	}
	return k.Gateway.CallContract(ctx, caller, hubChainName, hubAddress, payload)
}

// remoteTokenMetadata resolves the (name, symbol, decimals) a remote
// deployment should advertise for an already-registered token id,
// applying the native-asset override and the >32-char name-to-symbol
// substitution.
func (k Keeper) remoteTokenMetadata(ctx sdk.Context, cfg types.TokenIdConfig) (name, symbol string, decimals uint8, err error) {
	switch cfg.ManagerType {
	case types.NativeInterchainToken:
		tok, ok := k.InterchainToken.Token(ctx, cfg.TokenAddress)
		if !ok {
			return "", "", 0, types.ErrTokenNotRegistered
		}
		name, symbol, decimals = tok.Name, tok.Symbol, tok.Decimals
	case types.LockUnlock:
		name, symbol, decimals = cfg.Denom, cfg.Denom, 0
		if md, found := k.Bank.GetDenomMetaData(ctx, cfg.Denom); found {
			name, symbol = md.Name, md.Symbol
			for _, unit := range md.DenomUnits {
				if unit.Denom == md.Display {
					decimals = uint8(unit.Exponent)
				}
			}
		}
	}

	if overrideName, overrideSymbol, ok := k.nativeAssetOverride(ctx, cfg.Denom); ok {
		name, symbol = overrideName, overrideSymbol
	}
	if len(name) > 32 {
		name = symbol
	}
	return name, symbol, decimals, nil
}

// DeployRemoteInterchainToken frames and sends a DeployInterchainToken
// message for a token this chain registered via DeployInterchainToken.
func (k Keeper) DeployRemoteInterchainToken(
	ctx sdk.Context,
	caller sdk.AccAddress,
	salt [32]byte,
	destinationChain string,
	gasToken *gasservicetypes.Token,
) error {
	tokenID := k.InterchainTokenID(caller, salt)
	return k.deployRemoteToken(ctx, caller, tokenID, destinationChain, gasToken)
}

// DeployRemoteCanonicalToken frames and sends a DeployInterchainToken
// message for a token registered via RegisterCanonicalToken. spender
// authorizes the optional gas payment.
func (k Keeper) DeployRemoteCanonicalToken(
	ctx sdk.Context,
	spender sdk.AccAddress,
	denom string,
	destinationChain string,
	gasToken *gasservicetypes.Token,
) error {
	tokenID := k.CanonicalInterchainTokenID(ctx, denom)
	return k.deployRemoteToken(ctx, spender, tokenID, destinationChain, gasToken)
}

func (k Keeper) deployRemoteToken(
	ctx sdk.Context,
	spender sdk.AccAddress,
	tokenID [32]byte,
	destinationChain string,
	gasToken *gasservicetypes.Token,
) error {
	if destinationChain == k.ChainName(ctx) {
		return types.ErrInvalidDestinationChain
	}
	cfg, ok := k.TokenConfig(ctx, tokenID)
	if !ok {
		return types.ErrTokenNotRegistered
	}

	name, symbol, decimals, err := k.remoteTokenMetadata(ctx, cfg)
	if err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(types.NewEventInterchainTokenDeploymentStarted(tokenID, destinationChain, name, symbol, decimals))

	inner := types.InnerMessage{
		Type:     types.InnerMessageDeployInterchainToken,
		TokenID:  tokenID,
		Name:     name,
		Symbol:   symbol,
		Decimals: decimals,
	}
	return k.payGasAndCallContract(ctx, spender, destinationChain, inner, gasToken)
}

// InterchainTransfer escrows or burns amount locally, records outbound
// flow, and sends an InterchainTransfer message.
func (k Keeper) InterchainTransfer(
	ctx sdk.Context,
	caller sdk.AccAddress,
	tokenID [32]byte,
	destinationChain string,
	destinationAddress []byte,
	amount sdkmath.Int,
	data []byte,
	gasToken *gasservicetypes.Token,
) error {
	if err := k.Access.RequireNotPaused(ctx); err != nil {
		return err
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount
	}
	if len(destinationAddress) == 0 {
		return types.ErrInvalidDestination
	}
	if data != nil && len(data) == 0 {
		return types.ErrInvalidData
	}

	cfg, ok := k.TokenConfig(ctx, tokenID)
	if !ok {
		return types.ErrTokenNotRegistered
	}

	switch cfg.ManagerType {
	case types.NativeInterchainToken:
		if err := k.InterchainToken.Burn(ctx, caller, cfg.TokenAddress, amount); err != nil {
			return err
		}
	case types.LockUnlock:
		if err := k.TokenManager.Lock(ctx, caller, cfg.TokenManager, cfg.Denom, amount); err != nil {
			return err
		}
	}

	if err := k.AddFlow(ctx, FlowOut, tokenID, amount); err != nil {
		return err
	}

	k.Logger(ctx).Info("interchain transfer sent",
		"token_id", hex.EncodeToString(tokenID[:]),
		"destination_chain", destinationChain,
		"amount", amount.String(),
	)
	ctx.EventManager().EmitEvent(types.NewEventInterchainTransferSent(tokenID, caller, destinationChain, destinationAddress, amount, data))

	inner := types.InnerMessage{
		Type:               types.InnerMessageInterchainTransfer,
		TokenID:            tokenID,
		SourceAddress:      caller,
		DestinationAddress: destinationAddress,
		Amount:             amount,
		Data:               data,
	}
	return k.payGasAndCallContract(ctx, caller, destinationChain, inner, gasToken)
}
