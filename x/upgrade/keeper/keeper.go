// Package keeper implements the upgrade-then-migrate state machine:
// Stable -> Migrating on upgrade(), back to Stable only once migrate()
// runs the contract-defined migration to completion. The migrating flag
// is the sum type's tag; there is no boolean pair.
package keeper

import (
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	accesskeeper "github.com/axelar-network/interchain-go/x/access/keeper"
	"github.com/axelar-network/interchain-go/x/upgrade/types"
)

// Migrator runs a contract-defined data migration. It is supplied by the
// composing contract, not the upgrade package itself; the upgrade keeper
// owns only the state-machine transition around it.
type Migrator func(ctx sdk.Context, data []byte) error

type Keeper struct {
	storeKey storetypes.StoreKey
	access   accesskeeper.Keeper
}

func NewKeeper(storeKey storetypes.StoreKey, access accesskeeper.Keeper) Keeper {
	return Keeper{storeKey: storeKey, access: access}
}

func (k Keeper) store(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// Migrating reports whether the contract is in the Migrating state.
func (k Keeper) Migrating(ctx sdk.Context) bool {
	return k.store(ctx).Has(types.KeyMigrating)
}

// Version returns the version string of the currently committed code, or
// "" if neither InitVersion nor a completed migration has ever set one.
func (k Keeper) Version(ctx sdk.Context) string {
	return string(k.store(ctx).Get(types.KeyVersion))
}

// InitVersion sets the initial version at construction time, bypassing the
// upgrade/migrate cycle; used once, at genesis.
func (k Keeper) InitVersion(ctx sdk.Context, version string) {
	k.store(ctx).Set(types.KeyVersion, []byte(version))
}

// Upgrade is owner-authorized, replaces the contract's executable code
// (modeled here as recording the pending version the next migrate will
// commit to) and transitions to Migrating. Upgraded is emitted only once
// the migration completes.
func (k Keeper) Upgrade(ctx sdk.Context, caller sdk.AccAddress, newVersion string) error {
	if err := k.access.RequireOwner(ctx, caller); err != nil {
		return err
	}
	store := k.store(ctx)
	store.Set(types.KeyMigrating, []byte{1})
	store.Set(types.KeyPendingVersion, []byte(newVersion))
	k.Logger(ctx).Info("upgrade staged", "version", newVersion)
	return nil
}

// Migrate is owner-authorized and fails ErrMigrationNotAllowed unless the
// contract is in the Migrating state. It runs migrate(data); on success the
// Migrating flag is cleared and Upgraded{version} is emitted. On failure
// the flag is left set so the caller can retry; migrate is not re-entrant
// in the sense that the flag only ever clears on a successful run.
func (k Keeper) Migrate(ctx sdk.Context, caller sdk.AccAddress, data []byte, migrate Migrator) error {
	if err := k.access.RequireOwner(ctx, caller); err != nil {
		return err
	}
	if !k.Migrating(ctx) {
		return types.ErrMigrationNotAllowed
	}

	if err := migrate(ctx, data); err != nil {
		return err
	}

	store := k.store(ctx)
	version := string(store.Get(types.KeyPendingVersion))
	store.Delete(types.KeyMigrating)
	store.Delete(types.KeyPendingVersion)
	store.Set(types.KeyVersion, []byte(version))

	k.Logger(ctx).Info("migration completed", "version", version)
	ctx.EventManager().EmitEvent(types.NewEventUpgraded(version))
	return nil
}
