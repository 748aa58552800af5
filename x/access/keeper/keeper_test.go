package keeper_test

import (
	"testing"

	storetypes "cosmossdk.io/store/types"

	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/axelar-network/interchain-go/x/access/keeper"
	"github.com/axelar-network/interchain-go/x/access/types"
)

func newTestKeeper(t *testing.T) (sdk.Context, keeper.Keeper) {
	t.Helper()
	storeKey := storetypes.NewKVStoreKey(types.ModuleName)
	tKey := storetypes.NewTransientStoreKey("transient_test")
	ctx := testutil.DefaultContext(storeKey, tKey)
	return ctx, keeper.NewKeeper(storeKey)
}

func addr(b byte) sdk.AccAddress {
	return sdk.AccAddress(append([]byte{b}, make([]byte, 19)...))
}

func TestOwnerNotInitialized(t *testing.T) {
	ctx, k := newTestKeeper(t)
	_, err := k.Owner(ctx)
	require.ErrorIs(t, err, types.ErrNotInitialized)
}

func TestTransferOwnership(t *testing.T) {
	ctx, k := newTestKeeper(t)
	owner := addr(1)
	k.SetOwner(ctx, owner)

	next := addr(2)
	require.NoError(t, k.TransferOwnership(ctx, owner, next))

	got, err := k.Owner(ctx)
	require.NoError(t, err)
	require.Equal(t, next, got)

	require.ErrorIs(t, k.TransferOwnership(ctx, owner, next), types.ErrUnauthorized)
}

func TestTransferOperatorship(t *testing.T) {
	ctx, k := newTestKeeper(t)

	// Before any operator is set there is no holder to authorize a transfer.
	require.ErrorIs(t, k.TransferOperatorship(ctx, addr(1), addr(2)), types.ErrNotInitialized)

	operator := addr(1)
	k.SetOperator(ctx, operator)

	// The operator capability self-authorizes its transfer; neither a
	// stranger nor the owner can move it.
	owner := addr(8)
	k.SetOwner(ctx, owner)
	require.ErrorIs(t, k.TransferOperatorship(ctx, addr(9), addr(2)), types.ErrUnauthorized)
	require.ErrorIs(t, k.TransferOperatorship(ctx, owner, addr(2)), types.ErrUnauthorized)

	require.NoError(t, k.TransferOperatorship(ctx, operator, addr(2)))

	op, err := k.Operator(ctx)
	require.NoError(t, err)
	require.Equal(t, addr(2), op)

	require.ErrorIs(t, k.TransferOperatorship(ctx, operator, addr(3)), types.ErrUnauthorized)
}

func TestPauseIdempotent(t *testing.T) {
	ctx, k := newTestKeeper(t)
	owner := addr(1)
	k.SetOwner(ctx, owner)

	require.False(t, k.Paused(ctx))
	require.NoError(t, k.Pause(ctx, owner))
	require.True(t, k.Paused(ctx))
	require.NoError(t, k.Pause(ctx, owner)) // idempotent
	require.ErrorIs(t, k.RequireNotPaused(ctx), types.ErrContractPaused)

	require.NoError(t, k.Unpause(ctx, owner))
	require.NoError(t, k.RequireNotPaused(ctx))
}
