package types

import (
	"context"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	gasservicetypes "github.com/axelar-network/interchain-go/x/gasservice/types"
	interchaintokentypes "github.com/axelar-network/interchain-go/x/interchaintoken/types"
	tokenmanagertypes "github.com/axelar-network/interchain-go/x/tokenmanager/types"
)

// BankKeeper is the subset of x/bank ITS reads canonical-token metadata
// from when framing a remote deployment for a LockUnlock token.
type BankKeeper interface {
	GetDenomMetaData(ctx context.Context, denom string) (banktypes.Metadata, bool)
}

// GatewayKeeper is the subset of x/gateway's keeper ITS drives its
// outbound and inbound pipelines through.
type GatewayKeeper interface {
	CallContract(ctx sdk.Context, caller sdk.AccAddress, destinationChain, destinationAddress string, payload []byte) error
	ValidateMessage(ctx sdk.Context, caller sdk.AccAddress, sourceChain, messageID, sourceAddress string, payloadHash [32]byte) (bool, error)
}

// GasServiceKeeper is the subset of x/gasservice's keeper ITS's outbound
// pipeline pays through.
type GasServiceKeeper interface {
	PayGas(ctx sdk.Context, sender sdk.AccAddress, destinationChain, destinationAddress string, payload []byte, spender sdk.AccAddress, token gasservicetypes.Token, metadata []byte) error
}

// TokenManagerKeeper is the subset of x/tokenmanager's keeper ITS deploys
// and drives for both token-manager kinds.
type TokenManagerKeeper interface {
	Deploy(ctx sdk.Context, managerAddress [32]byte, owner sdk.AccAddress, managerType tokenmanagertypes.ManagerType) error
	Unlock(ctx sdk.Context, caller sdk.AccAddress, managerAddress [32]byte, denom string, to sdk.AccAddress, amount sdkmath.Int) error
	Lock(ctx sdk.Context, source sdk.AccAddress, managerAddress [32]byte, denom string, amount sdkmath.Int) error
	EscrowAddress(managerAddress [32]byte) sdk.AccAddress
}

// InterchainTokenKeeper is the subset of x/interchaintoken's keeper ITS
// deploys and mints/burns against for NativeInterchainToken token ids.
type InterchainTokenKeeper interface {
	Create(ctx sdk.Context, tokenAddress [32]byte, owner sdk.AccAddress, name, symbol string, decimals uint8, minter sdk.AccAddress) error
	AddMinter(ctx sdk.Context, caller sdk.AccAddress, tokenAddress [32]byte, minter sdk.AccAddress) error
	Mint(ctx sdk.Context, caller sdk.AccAddress, tokenAddress [32]byte, to sdk.AccAddress, amount sdkmath.Int) error
	MintFrom(ctx sdk.Context, minter sdk.AccAddress, tokenAddress [32]byte, to sdk.AccAddress, amount sdkmath.Int) error
	Burn(ctx sdk.Context, caller sdk.AccAddress, tokenAddress [32]byte, amount sdkmath.Int) error
	Token(ctx sdk.Context, tokenAddress [32]byte) (interchaintokentypes.Token, bool)
}

// ExecutableKeeper routes the optional execute_with_interchain_token
// callback to a destination application. Wiring it is a
// host-chain integration concern: a destination module registers itself
// under its own address and verifies the call originates from ITS; ITS
// treats it as nil when no executable apps are wired.
type ExecutableKeeper interface {
	ExecuteWithInterchainToken(
		ctx sdk.Context,
		destination sdk.AccAddress,
		sourceChain, messageID, sourceAddress string,
		data []byte,
		tokenID [32]byte,
		tokenAddress [32]byte,
		amount sdkmath.Int,
	) error
}
