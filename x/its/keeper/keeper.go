// Package keeper implements the Interchain Token Service: hub-mediated
// message framing, token-id derivation, token-manager deployment policy,
// inbound-transfer execution and the per-token flow limit engine, composed
// from the gateway, gas service, token manager and interchain token
// sibling modules.
package keeper

import (
	"cosmossdk.io/log"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"

	accesskeeper "github.com/axelar-network/interchain-go/x/access/keeper"
	"github.com/axelar-network/interchain-go/x/its/types"
)

// Keeper composes the sibling modules ITS drives. Executable is optional
// (see types.ExecutableKeeper) and may be left nil.
type Keeper struct {
	storeKey storetypes.StoreKey

	Access          accesskeeper.Keeper
	Gateway         types.GatewayKeeper
	GasService      types.GasServiceKeeper
	TokenManager    types.TokenManagerKeeper
	InterchainToken types.InterchainTokenKeeper
	Bank            types.BankKeeper
	Executable      types.ExecutableKeeper
}

func NewKeeper(
	storeKey storetypes.StoreKey,
	access accesskeeper.Keeper,
	gateway types.GatewayKeeper,
	gasService types.GasServiceKeeper,
	tokenManager types.TokenManagerKeeper,
	interchainToken types.InterchainTokenKeeper,
	bank types.BankKeeper,
) Keeper {
	return Keeper{
		storeKey:        storeKey,
		Access:          access,
		Gateway:         gateway,
		GasService:      gasService,
		TokenManager:    tokenManager,
		InterchainToken: interchainToken,
		Bank:            bank,
	}
}

// SetExecutableKeeper wires the optional execute_with_interchain_token
// callback router; omit the call to leave inbound data transfers
// undispatched. Destination applications are host-chain integrations, not
// part of the protocol core.
func (k *Keeper) SetExecutableKeeper(executable types.ExecutableKeeper) {
	k.Executable = executable
}

func (k Keeper) store(ctx sdk.Context) storetypes.KVStore {
	return ctx.KVStore(k.storeKey)
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// Initialize sets the hub routing and local chain name config; called once
// from genesis.
func (k Keeper) Initialize(ctx sdk.Context, chainName, hubChainName, hubAddress string) {
	store := k.store(ctx)
	store.Set(types.KeyChainName, []byte(chainName))
	store.Set(types.KeyHubChainName, []byte(hubChainName))
	store.Set(types.KeyHubAddress, []byte(hubAddress))
}

func (k Keeper) ChainName(ctx sdk.Context) string {
	return string(k.store(ctx).Get(types.KeyChainName))
}

func (k Keeper) HubChainName(ctx sdk.Context) string {
	return string(k.store(ctx).Get(types.KeyHubChainName))
}

func (k Keeper) HubAddress(ctx sdk.Context) string {
	return string(k.store(ctx).Get(types.KeyHubAddress))
}

// SetNativeAssetMetadataOverride configures the name/symbol remote
// deployments report for the host chain's native asset denom in place of
// whatever its bank denom metadata says. It is owner-gated and optional;
// omit the call to leave native-asset remote deployment unoverridden.
func (k Keeper) SetNativeAssetMetadataOverride(ctx sdk.Context, caller sdk.AccAddress, denom, name, symbol string) error {
	if err := k.Access.RequireOwner(ctx, caller); err != nil {
		return err
	}
	store := k.store(ctx)
	store.Set(types.KeyNativeAssetDenom, []byte(denom))
	store.Set(types.KeyNativeAssetName, []byte(name))
	store.Set(types.KeyNativeAssetSymbol, []byte(symbol))
	return nil
}

// nativeAssetOverride returns the configured (name, symbol) override for
// denom, and whether one is configured at all.
func (k Keeper) nativeAssetOverride(ctx sdk.Context, denom string) (name, symbol string, ok bool) {
	store := k.store(ctx)
	configured := string(store.Get(types.KeyNativeAssetDenom))
	if configured == "" || configured != denom {
		return "", "", false
	}
	return string(store.Get(types.KeyNativeAssetName)), string(store.Get(types.KeyNativeAssetSymbol)), true
}

func (k Keeper) trustedChains(ctx sdk.Context) storetypes.KVStore {
	return prefix.NewStore(k.store(ctx), types.KeyPrefixTrustedChain)
}

// IsTrustedChain reports whether chain is accepted as an inbound source or
// outbound destination.
func (k Keeper) IsTrustedChain(ctx sdk.Context, chain string) bool {
	return k.trustedChains(ctx).Has([]byte(chain))
}

// SetTrustedChain is owner-gated; fails ErrTrustedChainAlreadySet if chain
// is already trusted.
func (k Keeper) SetTrustedChain(ctx sdk.Context, caller sdk.AccAddress, chain string) error {
	if err := k.Access.RequireOwner(ctx, caller); err != nil {
		return err
	}
	if k.IsTrustedChain(ctx, chain) {
		return types.ErrTrustedChainAlreadySet
	}
	k.trustedChains(ctx).Set([]byte(chain), []byte{1})
	ctx.EventManager().EmitEvent(types.NewEventTrustedChainSet(chain))
	return nil
}

// RemoveTrustedChain is owner-gated; fails ErrTrustedChainNotSet if chain
// is not currently trusted.
func (k Keeper) RemoveTrustedChain(ctx sdk.Context, caller sdk.AccAddress, chain string) error {
	if err := k.Access.RequireOwner(ctx, caller); err != nil {
		return err
	}
	if !k.IsTrustedChain(ctx, chain) {
		return types.ErrTrustedChainNotSet
	}
	k.trustedChains(ctx).Delete([]byte(chain))
	ctx.EventManager().EmitEvent(types.NewEventTrustedChainRemoved(chain))
	return nil
}
