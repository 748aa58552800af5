// Package keeper implements the Gas Service: escrow of gas
// tokens for outbound messages, with operator-gated collection and refund.
package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelar-network/interchain-go/crypto"
	accesskeeper "github.com/axelar-network/interchain-go/x/access/keeper"
	"github.com/axelar-network/interchain-go/x/gasservice/types"
)

type Keeper struct {
	bank          types.BankKeeper
	access        accesskeeper.Keeper
	moduleAddress sdk.AccAddress
}

func NewKeeper(bank types.BankKeeper, access accesskeeper.Keeper) Keeper {
	return Keeper{
		bank:          bank,
		access:        access,
		moduleAddress: sdk.AccAddress(types.ModuleAddress),
	}
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// PayGas escrows token from spender and emits GasPaid. spender is assumed
// to have already authorized the call; the caller pre-commits to the
// invocation tree before any transfer happens.
func (k Keeper) PayGas(
	ctx sdk.Context,
	sender sdk.AccAddress,
	destinationChain, destinationAddress string,
	payload []byte,
	spender sdk.AccAddress,
	token types.Token,
	metadata []byte,
) error {
	if err := token.Validate(); err != nil {
		return err
	}
	if err := k.bank.SendCoins(ctx, spender, k.moduleAddress, sdk.NewCoins(sdk.NewCoin(token.Denom, token.Amount))); err != nil {
		return errorsmod.Wrap(err, "gas escrow")
	}

	payloadHash := crypto.Keccak256(payload)
	ctx.EventManager().EmitEvent(types.NewEventGasPaid(sender, destinationChain, destinationAddress, payloadHash, spender, token, metadata))
	return nil
}

// AddGas tops up the gas escrowed for an already-initiated message_id.
func (k Keeper) AddGas(ctx sdk.Context, messageID string, spender sdk.AccAddress, token types.Token) error {
	if err := token.Validate(); err != nil {
		return err
	}
	if err := k.bank.SendCoins(ctx, spender, k.moduleAddress, sdk.NewCoins(sdk.NewCoin(token.Denom, token.Amount))); err != nil {
		return errorsmod.Wrapf(err, "gas escrow for %s", messageID)
	}

	ctx.EventManager().EmitEvent(types.NewEventGasAdded(messageID, spender, token))
	return nil
}

// CollectFees is operator-only: moves escrowed token to receiver.
func (k Keeper) CollectFees(ctx sdk.Context, caller, receiver sdk.AccAddress, token types.Token) error {
	if err := k.access.RequireOperator(ctx, caller); err != nil {
		return err
	}
	if err := token.Validate(); err != nil {
		return err
	}
	if k.bank.GetBalance(ctx, k.moduleAddress, token.Denom).Amount.LT(token.Amount) {
		return types.ErrInsufficientBalance
	}
	if err := k.bank.SendCoins(ctx, k.moduleAddress, receiver, sdk.NewCoins(sdk.NewCoin(token.Denom, token.Amount))); err != nil {
		return err
	}

	k.Logger(ctx).Info("fees collected", "receiver", receiver.String(), "denom", token.Denom, "amount", token.Amount.String())
	ctx.EventManager().EmitEvent(types.NewEventGasCollected(receiver, token))
	return nil
}

// Refund is operator-only; no authorization from receiver is required.
func (k Keeper) Refund(ctx sdk.Context, caller sdk.AccAddress, messageID string, receiver sdk.AccAddress, token types.Token) error {
	if err := k.access.RequireOperator(ctx, caller); err != nil {
		return err
	}
	if err := token.Validate(); err != nil {
		return err
	}
	if k.bank.GetBalance(ctx, k.moduleAddress, token.Denom).Amount.LT(token.Amount) {
		return types.ErrInsufficientBalance
	}
	if err := k.bank.SendCoins(ctx, k.moduleAddress, receiver, sdk.NewCoins(sdk.NewCoin(token.Denom, token.Amount))); err != nil {
		return err
	}

	k.Logger(ctx).Info("gas refunded", "message_id", messageID, "receiver", receiver.String(), "denom", token.Denom, "amount", token.Amount.String())
	ctx.EventManager().EmitEvent(types.NewEventGasRefunded(messageID, receiver, token))
	return nil
}
