// Package keeper implements three orthogonal capability mix-ins (Owner,
// Operator, Pausable): instance-scoped state that any module keeper
// composes by embedding a Keeper and wiring its own entry points through
// the RequireOwner / RequireOperator / RequireNotPaused guards.
package keeper

import (
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelar-network/interchain-go/x/access/types"
)

type Keeper struct {
	storeKey storetypes.StoreKey
}

func NewKeeper(storeKey storetypes.StoreKey) Keeper {
	return Keeper{storeKey: storeKey}
}

func (k Keeper) store(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// Owner returns the current owner, or ErrNotInitialized if none was ever set.
func (k Keeper) Owner(ctx sdk.Context) (sdk.AccAddress, error) {
	bz := k.store(ctx).Get(types.KeyOwner)
	if bz == nil {
		return nil, types.ErrNotInitialized
	}
	return sdk.AccAddress(bz), nil
}

// SetOwner initializes or overwrites the owner without authorization; used
// only by a contract's own constructor/genesis path.
func (k Keeper) SetOwner(ctx sdk.Context, owner sdk.AccAddress) {
	k.store(ctx).Set(types.KeyOwner, owner)
}

// RequireOwner fails with ErrUnauthorized unless caller is the current owner.
func (k Keeper) RequireOwner(ctx sdk.Context, caller sdk.AccAddress) error {
	owner, err := k.Owner(ctx)
	if err != nil {
		return err
	}
	if !owner.Equals(caller) {
		return types.ErrUnauthorized
	}
	return nil
}

// TransferOwnership requires caller to be the current owner, overwrites the
// owner and emits OwnershipTransferred.
func (k Keeper) TransferOwnership(ctx sdk.Context, caller, next sdk.AccAddress) error {
	if err := k.RequireOwner(ctx, caller); err != nil {
		return err
	}
	k.SetOwner(ctx, next)
	k.Logger(ctx).Info("ownership transferred", "previous", caller.String(), "new", next.String())
	ctx.EventManager().EmitEvent(types.NewEventOwnershipTransferred(caller, next))
	return nil
}

// Operator returns the current operator, or ErrNotInitialized if none was
// ever set.
func (k Keeper) Operator(ctx sdk.Context) (sdk.AccAddress, error) {
	bz := k.store(ctx).Get(types.KeyOperator)
	if bz == nil {
		return nil, types.ErrNotInitialized
	}
	return sdk.AccAddress(bz), nil
}

func (k Keeper) SetOperator(ctx sdk.Context, operator sdk.AccAddress) {
	k.store(ctx).Set(types.KeyOperator, operator)
}

// RequireOperator fails with ErrUnauthorized unless caller is the current operator.
func (k Keeper) RequireOperator(ctx sdk.Context, caller sdk.AccAddress) error {
	operator, err := k.Operator(ctx)
	if err != nil {
		return err
	}
	if !operator.Equals(caller) {
		return types.ErrUnauthorized
	}
	return nil
}

// TransferOperatorship requires caller to be the current operator (each
// capability authorizes its own transfer, exactly as ownership does),
// overwrites the operator and emits OperatorshipTransferred.
func (k Keeper) TransferOperatorship(ctx sdk.Context, caller, next sdk.AccAddress) error {
	if err := k.RequireOperator(ctx, caller); err != nil {
		return err
	}
	k.SetOperator(ctx, next)
	k.Logger(ctx).Info("operatorship transferred", "previous", caller.String(), "new", next.String())
	ctx.EventManager().EmitEvent(types.NewEventOperatorshipTransferred(caller, next))
	return nil
}

// Paused reports whether the paused flag is set.
func (k Keeper) Paused(ctx sdk.Context) bool {
	return k.store(ctx).Has(types.KeyPaused)
}

// RequireNotPaused fails with ErrContractPaused if the flag is set; wire
// this into any entry point that must halt while paused.
func (k Keeper) RequireNotPaused(ctx sdk.Context) error {
	if k.Paused(ctx) {
		return types.ErrContractPaused
	}
	return nil
}

// Pause is idempotent: pausing an already-paused contract is a no-op that
// still requires owner authorization but emits no duplicate event.
func (k Keeper) Pause(ctx sdk.Context, caller sdk.AccAddress) error {
	if err := k.RequireOwner(ctx, caller); err != nil {
		return err
	}
	if k.Paused(ctx) {
		return nil
	}
	k.store(ctx).Set(types.KeyPaused, []byte{1})
	k.Logger(ctx).Info("contract paused")
	ctx.EventManager().EmitEvent(types.NewEventPaused())
	return nil
}

func (k Keeper) Unpause(ctx sdk.Context, caller sdk.AccAddress) error {
	if err := k.RequireOwner(ctx, caller); err != nil {
		return err
	}
	if !k.Paused(ctx) {
		return nil
	}
	k.store(ctx).Delete(types.KeyPaused)
	k.Logger(ctx).Info("contract unpaused")
	ctx.EventManager().EmitEvent(types.NewEventUnpaused())
	return nil
}
