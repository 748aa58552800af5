// Flow-limit engine: per-token, per-epoch directional flow
// accounting with a net-flow invariant, stored in short-lived buckets keyed
// by (token_id, epoch) that are simply left to go stale across epochs
// rather than explicitly reset.
package keeper

import (
	"encoding/binary"

	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelar-network/interchain-go/utils"
	"github.com/axelar-network/interchain-go/x/its/types"
)

// FlowDirection distinguishes inbound transfers (minting/unlocking into the
// local chain) from outbound ones (burning/locking out of it).
type FlowDirection byte

const (
	FlowIn FlowDirection = iota
	FlowOut
)

func currentFlowEpoch(ctx sdk.Context) uint64 {
	return uint64(ctx.BlockTime().Unix()) / types.FlowEpochSeconds
}

func (k Keeper) flowLimits(ctx sdk.Context) storetypes.KVStore {
	return prefix.NewStore(k.store(ctx), types.KeyPrefixFlowLimit)
}

// FlowLimit returns the configured limit for tokenID, or nil if unset (no
// flow check is performed in that case).
func (k Keeper) FlowLimit(ctx sdk.Context, tokenID [32]byte) *sdkmath.Int {
	bz := k.flowLimits(ctx).Get(tokenID[:])
	if bz == nil {
		return nil
	}
	var limit sdkmath.Int
	if err := limit.Unmarshal(bz); err != nil {
		return nil
	}
	return &limit
}

// SetFlowLimit is operator-only. limit == nil removes the limit, returning
// the token to unchecked flow accounting; a zero limit instead freezes all
// further flow.
func (k Keeper) SetFlowLimit(ctx sdk.Context, caller sdk.AccAddress, tokenID [32]byte, limit *sdkmath.Int) error {
	if err := k.Access.RequireOperator(ctx, caller); err != nil {
		return err
	}
	if limit != nil {
		if limit.IsNil() || limit.IsNegative() {
			return types.ErrInvalidFlowLimit
		}
		bz, err := limit.Marshal()
		if err != nil {
			return err
		}
		k.flowLimits(ctx).Set(tokenID[:], bz)
	} else {
		k.flowLimits(ctx).Delete(tokenID[:])
	}
	ctx.EventManager().EmitEvent(types.NewEventFlowLimitSet(tokenID, limit))
	return nil
}

func flowBucketKey(tokenID [32]byte, epoch uint64) []byte {
	out := make([]byte, 40)
	copy(out[:32], tokenID[:])
	binary.BigEndian.PutUint64(out[32:], epoch)
	return out
}

func (k Keeper) flowAmount(ctx sdk.Context, prefixKey []byte, tokenID [32]byte, epoch uint64) sdkmath.Int {
	store := prefix.NewStore(k.store(ctx), prefixKey)
	bz := store.Get(flowBucketKey(tokenID, epoch))
	if bz == nil {
		return sdkmath.ZeroInt()
	}
	var amt sdkmath.Int
	if err := amt.Unmarshal(bz); err != nil {
		return sdkmath.ZeroInt()
	}
	return amt
}

func (k Keeper) setFlowAmount(ctx sdk.Context, prefixKey []byte, tokenID [32]byte, epoch uint64, amount sdkmath.Int) {
	store := prefix.NewStore(k.store(ctx), prefixKey)
	bz, err := amount.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(flowBucketKey(tokenID, epoch), bz)
}

// FlowInAmount returns the accumulated inbound flow for tokenID in the
// current epoch.
func (k Keeper) FlowInAmount(ctx sdk.Context, tokenID [32]byte) sdkmath.Int {
	return k.flowAmount(ctx, types.KeyPrefixFlowIn, tokenID, currentFlowEpoch(ctx))
}

// FlowOutAmount returns the accumulated outbound flow for tokenID in the
// current epoch.
func (k Keeper) FlowOutAmount(ctx sdk.Context, tokenID [32]byte) sdkmath.Int {
	return k.flowAmount(ctx, types.KeyPrefixFlowOut, tokenID, currentFlowEpoch(ctx))
}

// AddFlow enforces the net-flow invariant: the single-step
// cap (amount must not itself exceed the limit), then that the updated
// directional counter does not exceed the opposing counter plus the limit.
// With no limit configured there is nothing to enforce, so the flow is not
// recorded either; setting a limit later starts accounting from zero.
func (k Keeper) AddFlow(ctx sdk.Context, direction FlowDirection, tokenID [32]byte, amount sdkmath.Int) error {
	limit := k.FlowLimit(ctx, tokenID)
	if limit == nil {
		return nil
	}
	if amount.GT(*limit) {
		return types.ErrFlowLimitExceeded
	}

	epoch := currentFlowEpoch(ctx)
	var currentPrefix, reversePrefix []byte
	var current, reverse sdkmath.Int
	switch direction {
	case FlowIn:
		currentPrefix, reversePrefix = types.KeyPrefixFlowIn, types.KeyPrefixFlowOut
	case FlowOut:
		currentPrefix, reversePrefix = types.KeyPrefixFlowOut, types.KeyPrefixFlowIn
	}
	current = k.flowAmount(ctx, currentPrefix, tokenID, epoch)
	reverse = k.flowAmount(ctx, reversePrefix, tokenID, epoch)

	next, err := utils.AddUint128(current, amount)
	if err != nil {
		return types.ErrFlowAmountOverflow
	}
	maxAllowed, err := utils.AddUint128(reverse, *limit)
	if err != nil {
		return types.ErrFlowAmountOverflow
	}
	if next.GT(maxAllowed) {
		return types.ErrFlowLimitExceeded
	}

	k.setFlowAmount(ctx, currentPrefix, tokenID, epoch, next)
	return nil
}
