// Inbound execution: consumes a gateway approval, decodes
// the hub envelope, and dispatches transfer or deployment.
package keeper

import (
	"encoding/hex"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelar-network/interchain-go/crypto"
	"github.com/axelar-network/interchain-go/x/its/types"
	tokenmanagertypes "github.com/axelar-network/interchain-go/x/tokenmanager/types"
)

// Execute consumes the gateway's approval for (sourceChain, messageID),
// confirms it originated from the hub, decodes the inner message, and
// dispatches an inbound transfer or deployment.
func (k Keeper) Execute(
	ctx sdk.Context,
	caller sdk.AccAddress,
	sourceChain, messageID, sourceAddress string,
	payload []byte,
) error {
	payloadHash := crypto.Keccak256(payload)
	approved, err := k.Gateway.ValidateMessage(ctx, caller, sourceChain, messageID, sourceAddress, payloadHash)
	if err != nil {
		return err
	}
	if !approved {
		return types.ErrNotApproved
	}

	if sourceChain != k.HubChainName(ctx) {
		return types.ErrNotHubChain
	}
	if sourceAddress != k.HubAddress(ctx) {
		return types.ErrNotHubAddress
	}

	hub, err := types.DecodeHubMessage(payload)
	if err != nil {
		return errorsmod.Wrapf(err, "message %s from %s", messageID, sourceChain)
	}
	if hub.Type != types.HubMessageReceiveFromHub {
		return types.ErrInvalidMessageType
	}
	originalSourceChain := hub.Chain
	if !k.IsTrustedChain(ctx, originalSourceChain) {
		return types.ErrUntrustedChain
	}

	switch hub.Message.Type {
	case types.InnerMessageInterchainTransfer:
		return k.executeInterchainTransfer(ctx, sourceChain, messageID, originalSourceChain, hub.Message)
	case types.InnerMessageDeployInterchainToken:
		return k.executeDeployInterchainToken(ctx, hub.Message)
	default:
		return types.ErrInvalidMessageType
	}
}

func (k Keeper) executeInterchainTransfer(ctx sdk.Context, sourceChain, messageID, originalSourceChain string, m types.InnerMessage) error {
	if !m.Amount.IsPositive() {
		return types.ErrInvalidAmount
	}
	cfg, ok := k.TokenConfig(ctx, m.TokenID)
	if !ok {
		return types.ErrTokenNotRegistered
	}

	if err := k.AddFlow(ctx, FlowIn, m.TokenID, m.Amount); err != nil {
		return err
	}

	destination := sdk.AccAddress(m.DestinationAddress)
	itsModule := sdk.AccAddress(types.ModuleAddress)

	switch cfg.ManagerType {
	case types.NativeInterchainToken:
		if err := k.InterchainToken.MintFrom(ctx, sdk.AccAddress(cfg.TokenManager[:]), cfg.TokenAddress, destination, m.Amount); err != nil {
			return err
		}
	case types.LockUnlock:
		if err := k.TokenManager.Unlock(ctx, itsModule, cfg.TokenManager, cfg.Denom, destination, m.Amount); err != nil {
			return err
		}
	}

	k.Logger(ctx).Info("interchain transfer received",
		"token_id", hex.EncodeToString(m.TokenID[:]),
		"source_chain", originalSourceChain,
		"amount", m.Amount.String(),
	)
	ctx.EventManager().EmitEvent(types.NewEventInterchainTransferReceived(m.TokenID, originalSourceChain, m.SourceAddress, destination, m.Amount))

	if m.Data != nil && k.Executable != nil {
		if err := k.Executable.ExecuteWithInterchainToken(
			ctx, destination, originalSourceChain, messageID, string(m.SourceAddress),
			m.Data, m.TokenID, cfg.TokenAddress, m.Amount,
		); err != nil {
			return err
		}
	}
	return nil
}

func (k Keeper) executeDeployInterchainToken(ctx sdk.Context, m types.InnerMessage) error {
	if _, ok := k.TokenConfig(ctx, m.TokenID); ok {
		return types.ErrTokenAlreadyRegistered
	}
	metadata := types.TokenMetadata{Name: m.Name, Symbol: m.Symbol, Decimals: m.Decimals}
	if err := metadata.Validate(); err != nil {
		return err
	}

	var minter sdk.AccAddress
	if m.Minter != nil {
		if err := sdk.VerifyAddressFormat(m.Minter); err != nil {
			return types.ErrInvalidMinter
		}
		minter = sdk.AccAddress(m.Minter)
	}

	tokenAddress := InterchainTokenAddress(m.TokenID)
	managerAddress := TokenManagerAddress(m.TokenID)
	itsModule := sdk.AccAddress(types.ModuleAddress)

	if err := k.InterchainToken.Create(ctx, tokenAddress, itsModule, metadata.Name, metadata.Symbol, metadata.Decimals, minter); err != nil {
		return err
	}
	if err := k.TokenManager.Deploy(ctx, managerAddress, itsModule, tokenmanagertypes.NativeInterchainToken); err != nil {
		return err
	}
	if err := k.InterchainToken.AddMinter(ctx, itsModule, tokenAddress, sdk.AccAddress(managerAddress[:])); err != nil {
		return err
	}

	k.setTokenConfig(ctx, m.TokenID, types.TokenIdConfig{
		TokenAddress: tokenAddress,
		TokenManager: managerAddress,
		ManagerType:  types.NativeInterchainToken,
	})
	k.Logger(ctx).Info("interchain token deployed",
		"token_id", hex.EncodeToString(m.TokenID[:]),
		"symbol", metadata.Symbol,
	)
	ctx.EventManager().EmitEvent(types.NewEventTokenManagerDeployed(m.TokenID, managerAddress, types.NativeInterchainToken))
	ctx.EventManager().EmitEvent(types.NewEventInterchainTokenDeployed(m.TokenID, tokenAddress, metadata.Name, metadata.Symbol, metadata.Decimals, minter))
	return nil
}
