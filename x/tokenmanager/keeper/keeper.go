// Package keeper implements the token manager: a thin owner-gated
// executor deployed once per token id, used either to hold minter
// authority over a NativeInterchainToken or to escrow a LockUnlock
// canonical token's balance under its own deterministic address.
package keeper

import (
	"bytes"
	"encoding/hex"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelar-network/interchain-go/x/tokenmanager/types"
)

type Keeper struct {
	storeKey storetypes.StoreKey
	bank     types.BankKeeper
}

func NewKeeper(storeKey storetypes.StoreKey, bank types.BankKeeper) Keeper {
	return Keeper{storeKey: storeKey, bank: bank}
}

func (k Keeper) store(ctx sdk.Context) storetypes.KVStore {
	return prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyPrefixManager)
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// EscrowAddress is the account a LockUnlock manager's escrowed balance is
// held under: the manager's own deterministic address.
func (k Keeper) EscrowAddress(managerAddress [32]byte) sdk.AccAddress {
	return sdk.AccAddress(managerAddress[:])
}

// Manager returns the deployed manager's owner and type.
func (k Keeper) Manager(ctx sdk.Context, managerAddress [32]byte) (types.Manager, bool) {
	bz := k.store(ctx).Get(managerAddress[:])
	if bz == nil {
		return types.Manager{}, false
	}
	return types.UnmarshalManager(bz)
}

// Deploy registers a new manager at managerAddress, owned by owner,
// failing ErrManagerExists if the address is already in use: the address
// derives from the token id, so a collision is a bug upstream, not a
// legitimate retry.
func (k Keeper) Deploy(ctx sdk.Context, managerAddress [32]byte, owner sdk.AccAddress, managerType types.ManagerType) error {
	if _, ok := k.Manager(ctx, managerAddress); ok {
		return types.ErrManagerExists
	}
	k.store(ctx).Set(managerAddress[:], types.Manager{Owner: owner, Type: managerType}.Marshal())
	k.Logger(ctx).Info("token manager deployed", "address", hex.EncodeToString(managerAddress[:]))
	return nil
}

// Unlock is the owner-gated executor surface: the one operation a
// LockUnlock manager's owner (ITS) ever drives through it is releasing
// escrowed balance to an inbound transfer's destination.
func (k Keeper) Unlock(ctx sdk.Context, caller sdk.AccAddress, managerAddress [32]byte, denom string, to sdk.AccAddress, amount sdkmath.Int) error {
	manager, ok := k.Manager(ctx, managerAddress)
	if !ok {
		return types.ErrManagerNotFound
	}
	if !bytes.Equal(manager.Owner, caller) {
		return types.ErrUnauthorized
	}

	escrow := k.EscrowAddress(managerAddress)
	if k.bank.GetBalance(ctx, escrow, denom).Amount.LT(amount) {
		return types.ErrInsufficientEscrow
	}
	if err := k.bank.SendCoins(ctx, escrow, to, sdk.NewCoins(sdk.NewCoin(denom, amount))); err != nil {
		return errorsmod.Wrap(err, "escrow release")
	}
	return nil
}

// Lock moves amount of denom from source into the manager's escrow.
// Unlike Unlock this requires no manager authority: an outbound transfer
// is authorized by the depositor itself, not routed through the manager.
func (k Keeper) Lock(ctx sdk.Context, source sdk.AccAddress, managerAddress [32]byte, denom string, amount sdkmath.Int) error {
	return k.bank.SendCoins(ctx, source, k.EscrowAddress(managerAddress), sdk.NewCoins(sdk.NewCoin(denom, amount)))
}
