// Package keeper implements the gateway signer-set protocol and message
// approval state machine: epoch-indexed weighted
// multi-sig validation, rotation with replay/duplicate/out-of-order/
// retention checks, and at-most-once inbound message execution.
package keeper

import (
	"encoding/binary"

	"cosmossdk.io/log"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelar-network/interchain-go/crypto/host"
	accesskeeper "github.com/axelar-network/interchain-go/x/access/keeper"
	"github.com/axelar-network/interchain-go/x/gateway/types"
)

type Keeper struct {
	storeKey storetypes.StoreKey
	access   accesskeeper.Keeper
	host     host.Host
}

func NewKeeper(storeKey storetypes.StoreKey, access accesskeeper.Keeper, h host.Host) Keeper {
	return Keeper{storeKey: storeKey, access: access, host: h}
}

func (k Keeper) store(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

func (k Keeper) DomainSeparator(ctx sdk.Context) [32]byte {
	var out [32]byte
	copy(out[:], k.store(ctx).Get(types.KeyDomainSeparator))
	return out
}

func (k Keeper) MinimumRotationDelay(ctx sdk.Context) uint64 {
	return decodeUint64(k.store(ctx).Get(types.KeyMinimumRotationDelay))
}

func (k Keeper) PreviousSignersRetention(ctx sdk.Context) uint64 {
	return decodeUint64(k.store(ctx).Get(types.KeyPreviousRetention))
}

func (k Keeper) CurrentEpoch(ctx sdk.Context) uint64 {
	return decodeUint64(k.store(ctx).Get(types.KeyCurrentEpoch))
}

func (k Keeper) setCurrentEpoch(ctx sdk.Context, epoch uint64) {
	k.store(ctx).Set(types.KeyCurrentEpoch, encodeUint64(epoch))
}

func (k Keeper) LastRotationTimestamp(ctx sdk.Context) uint64 {
	return decodeUint64(k.store(ctx).Get(types.KeyLastRotationTimestamp))
}

func (k Keeper) setLastRotationTimestamp(ctx sdk.Context, ts uint64) {
	k.store(ctx).Set(types.KeyLastRotationTimestamp, encodeUint64(ts))
}

// EpochBySignersHash returns the epoch bound to a signer set hash, and
// whether any epoch is bound to it at all.
func (k Keeper) EpochBySignersHash(ctx sdk.Context, hash [32]byte) (uint64, bool) {
	store := prefix.NewStore(k.store(ctx), types.KeyPrefixHashToEpoch)
	bz := store.Get(hash[:])
	if bz == nil {
		return 0, false
	}
	return decodeUint64(bz), true
}

// SignersHashByEpoch returns the signer set hash bound to an epoch, and
// whether that epoch has ever been assigned a set.
func (k Keeper) SignersHashByEpoch(ctx sdk.Context, epoch uint64) ([32]byte, bool) {
	store := prefix.NewStore(k.store(ctx), types.KeyPrefixEpochToHash)
	bz := store.Get(encodeUint64(epoch))
	if bz == nil {
		return [32]byte{}, false
	}
	var out [32]byte
	copy(out[:], bz)
	return out, true
}

func (k Keeper) bindEpoch(ctx sdk.Context, epoch uint64, hash [32]byte) {
	prefix.NewStore(k.store(ctx), types.KeyPrefixEpochToHash).Set(encodeUint64(epoch), hash[:])
	prefix.NewStore(k.store(ctx), types.KeyPrefixHashToEpoch).Set(hash[:], encodeUint64(epoch))
}

func encodeUint64(v uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, v)
	return bz
}

func decodeUint64(bz []byte) uint64 {
	if len(bz) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}
