// Token-id derivation and token/token-manager deployment: deterministic
// addresses so off-chain callers can predict a deployment before it
// happens, and the native-interchain vs lock-unlock deployment policy.
package keeper

import (
	"encoding/hex"

	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelar-network/interchain-go/crypto"
	"github.com/axelar-network/interchain-go/x/its/types"
	tokenmanagertypes "github.com/axelar-network/interchain-go/x/tokenmanager/types"
)

// DeployedAddress is the host's deterministic address-of(current contract,
// salt) derivation: here, keccak256(its module address || salt).
func DeployedAddress(salt [32]byte) [32]byte {
	return crypto.Keccak256(types.ModuleAddress, salt[:])
}

// InterchainTokenAddress is the predicted deployment address of tokenID's
// token contract.
func InterchainTokenAddress(tokenID [32]byte) [32]byte {
	return DeployedAddress(types.InterchainTokenSalt(tokenID))
}

// TokenManagerAddress is the predicted deployment address of tokenID's
// token manager.
func TokenManagerAddress(tokenID [32]byte) [32]byte {
	return DeployedAddress(types.TokenManagerSalt(tokenID))
}

func (k Keeper) tokenConfigs(ctx sdk.Context) storetypes.KVStore {
	return prefix.NewStore(k.store(ctx), types.KeyPrefixTokenConfig)
}

// TokenConfig returns the persisted registration for tokenID.
func (k Keeper) TokenConfig(ctx sdk.Context, tokenID [32]byte) (types.TokenIdConfig, bool) {
	bz := k.tokenConfigs(ctx).Get(tokenID[:])
	if bz == nil {
		return types.TokenIdConfig{}, false
	}
	return types.UnmarshalTokenIdConfig(bz)
}

func (k Keeper) setTokenConfig(ctx sdk.Context, tokenID [32]byte, cfg types.TokenIdConfig) {
	k.tokenConfigs(ctx).Set(tokenID[:], cfg.Marshal())
}

// RegisteredTokenAddress returns the token address a registered token id is
// bound to.
func (k Keeper) RegisteredTokenAddress(ctx sdk.Context, tokenID [32]byte) ([32]byte, error) {
	cfg, ok := k.TokenConfig(ctx, tokenID)
	if !ok {
		return [32]byte{}, types.ErrTokenNotRegistered
	}
	return cfg.TokenAddress, nil
}

// DeployedTokenManager returns the token manager address a registered token
// id is bound to.
func (k Keeper) DeployedTokenManager(ctx sdk.Context, tokenID [32]byte) ([32]byte, error) {
	cfg, ok := k.TokenConfig(ctx, tokenID)
	if !ok {
		return [32]byte{}, types.ErrTokenNotRegistered
	}
	return cfg.TokenManager, nil
}

// TokenManagerType returns a registered token id's manager kind.
func (k Keeper) TokenManagerType(ctx sdk.Context, tokenID [32]byte) (types.TokenManagerType, error) {
	cfg, ok := k.TokenConfig(ctx, tokenID)
	if !ok {
		return 0, types.ErrTokenNotRegistered
	}
	return cfg.ManagerType, nil
}

// InterchainTokenID derives a token id from a deployer and a caller-chosen
// salt.
func (k Keeper) InterchainTokenID(caller sdk.AccAddress, salt [32]byte) [32]byte {
	var deployer [32]byte
	copy(deployer[:], caller)
	return types.InterchainTokenID(deployer, salt)
}

// CanonicalInterchainTokenID derives the token id for a pre-existing bank
// denom wrapped via lock-unlock; the denom plays the role of a token
// address, since Cosmos SDK coins are identified by denom rather than a
// 32-byte contract address.
func (k Keeper) CanonicalInterchainTokenID(ctx sdk.Context, denom string) [32]byte {
	return types.CanonicalInterchainTokenID(k.ChainName(ctx), crypto.Keccak256([]byte(denom)))
}

// DeployInterchainToken deploys a new NativeInterchainToken: validates
// metadata, derives the token id, deploys the token
// contract owned by ITS with an optional external minter, deploys a token
// manager holding minter authority over it, and optionally mints an
// initial supply to caller.
func (k Keeper) DeployInterchainToken(
	ctx sdk.Context,
	caller sdk.AccAddress,
	salt [32]byte,
	metadata types.TokenMetadata,
	initialSupply sdkmath.Int,
	minter sdk.AccAddress,
) ([32]byte, error) {
	if err := k.Access.RequireNotPaused(ctx); err != nil {
		return [32]byte{}, err
	}
	if err := metadata.Validate(); err != nil {
		return [32]byte{}, err
	}
	if initialSupply.IsNil() || initialSupply.IsNegative() {
		return [32]byte{}, types.ErrInvalidInitialSupply
	}

	tokenID := k.InterchainTokenID(caller, salt)
	if _, ok := k.TokenConfig(ctx, tokenID); ok {
		return [32]byte{}, types.ErrTokenAlreadyRegistered
	}
	ctx.EventManager().EmitEvent(types.NewEventInterchainTokenIdClaimed(tokenID, caller, salt))

	tokenAddress := InterchainTokenAddress(tokenID)
	managerAddress := TokenManagerAddress(tokenID)
	itsModule := sdk.AccAddress(types.ModuleAddress)

	if err := k.InterchainToken.Create(ctx, tokenAddress, itsModule, metadata.Name, metadata.Symbol, metadata.Decimals, minter); err != nil {
		return [32]byte{}, err
	}
	if err := k.TokenManager.Deploy(ctx, managerAddress, itsModule, tokenmanagertypes.NativeInterchainToken); err != nil {
		return [32]byte{}, err
	}
	if err := k.InterchainToken.AddMinter(ctx, itsModule, tokenAddress, sdk.AccAddress(managerAddress[:])); err != nil {
		return [32]byte{}, err
	}

	k.setTokenConfig(ctx, tokenID, types.TokenIdConfig{
		TokenAddress: tokenAddress,
		TokenManager: managerAddress,
		ManagerType:  types.NativeInterchainToken,
	})
	k.Logger(ctx).Info("interchain token deployed",
		"token_id", hex.EncodeToString(tokenID[:]),
		"symbol", metadata.Symbol,
	)
	ctx.EventManager().EmitEvent(types.NewEventTokenManagerDeployed(tokenID, managerAddress, types.NativeInterchainToken))
	ctx.EventManager().EmitEvent(types.NewEventInterchainTokenDeployed(tokenID, tokenAddress, metadata.Name, metadata.Symbol, metadata.Decimals, minter))

	if initialSupply.IsPositive() {
		if err := k.InterchainToken.Mint(ctx, itsModule, tokenAddress, caller, initialSupply); err != nil {
			return [32]byte{}, err
		}
	}
	return tokenID, nil
}

// RegisterCanonicalToken wraps a pre-existing bank denom via lock-unlock:
// it derives the canonical token id, deploys a token manager for it, and
// persists the config. The token itself is not deployed.
func (k Keeper) RegisterCanonicalToken(ctx sdk.Context, denom string) ([32]byte, error) {
	tokenID := k.CanonicalInterchainTokenID(ctx, denom)
	if _, ok := k.TokenConfig(ctx, tokenID); ok {
		return [32]byte{}, types.ErrTokenAlreadyRegistered
	}

	tokenAddress := crypto.Keccak256([]byte(denom))
	managerAddress := TokenManagerAddress(tokenID)
	itsModule := sdk.AccAddress(types.ModuleAddress)

	if err := k.TokenManager.Deploy(ctx, managerAddress, itsModule, tokenmanagertypes.LockUnlock); err != nil {
		return [32]byte{}, err
	}

	k.setTokenConfig(ctx, tokenID, types.TokenIdConfig{
		TokenAddress: tokenAddress,
		TokenManager: managerAddress,
		ManagerType:  types.LockUnlock,
		Denom:        denom,
	})
	k.Logger(ctx).Info("canonical token registered",
		"token_id", hex.EncodeToString(tokenID[:]),
		"denom", denom,
	)
	ctx.EventManager().EmitEvent(types.NewEventTokenManagerDeployed(tokenID, managerAddress, types.LockUnlock))
	return tokenID, nil
}
