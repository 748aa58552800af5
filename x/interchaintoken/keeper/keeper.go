// Package keeper implements the interchain token: a fungible token with a
// distinguished owner and a set of minter addresses, standard
// transfer/approve/burn semantics and ledger-scoped allowance expiry. It
// is the external collaborator ITS deploys and mints against for
// NativeInterchainToken token managers.
package keeper

import (
	"bytes"
	"encoding/hex"

	"cosmossdk.io/log"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/axelar-network/interchain-go/x/interchaintoken/types"
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

func (k Keeper) tokens(ctx sdk.Context) storetypes.KVStore {
	return prefix.NewStore(k.store(ctx), types.KeyPrefixToken)
}

func (k Keeper) minters(ctx sdk.Context) storetypes.KVStore {
	return prefix.NewStore(k.store(ctx), types.KeyPrefixMinter)
}

func (k Keeper) balances(ctx sdk.Context) storetypes.KVStore {
	return prefix.NewStore(k.store(ctx), types.KeyPrefixBalance)
}

func (k Keeper) allowances(ctx sdk.Context) storetypes.KVStore {
	return prefix.NewStore(k.store(ctx), types.KeyPrefixAllowance)
}

// Token returns the deployed token's owner and metadata.
func (k Keeper) Token(ctx sdk.Context, tokenAddress [32]byte) (types.Token, bool) {
	bz := k.tokens(ctx).Get(tokenAddress[:])
	if bz == nil {
		return types.Token{}, false
	}
	return types.UnmarshalToken(bz)
}

// Create deploys a new token contract at tokenAddress with the given
// owner and metadata, optionally seeding one initial minter (the service
// passes the token manager in here on deployment). It fails
// ErrTokenAlreadyExists if the address is already deployed.
func (k Keeper) Create(ctx sdk.Context, tokenAddress [32]byte, owner sdk.AccAddress, name, symbol string, decimals uint8, minter sdk.AccAddress) error {
	if _, ok := k.Token(ctx, tokenAddress); ok {
		return types.ErrTokenAlreadyExists
	}
	token := types.Token{Owner: owner, Name: name, Symbol: symbol, Decimals: decimals}
	k.tokens(ctx).Set(tokenAddress[:], token.Marshal())
	if minter != nil {
		k.setMinter(ctx, tokenAddress, minter)
	}
	k.Logger(ctx).Info("token created", "address", hex.EncodeToString(tokenAddress[:]), "symbol", symbol)
	return nil
}

func minterKey(tokenAddress [32]byte, minter []byte) []byte {
	return append(append([]byte{}, tokenAddress[:]...), minter...)
}

func (k Keeper) setMinter(ctx sdk.Context, tokenAddress [32]byte, minter sdk.AccAddress) {
	k.minters(ctx).Set(minterKey(tokenAddress, minter), []byte{1})
}

// IsMinter reports whether addr currently holds minter authority over the
// token at tokenAddress.
func (k Keeper) IsMinter(ctx sdk.Context, tokenAddress [32]byte, addr sdk.AccAddress) bool {
	return k.minters(ctx).Has(minterKey(tokenAddress, addr))
}

// AddMinter is owner-gated and emits MinterAdded.
func (k Keeper) AddMinter(ctx sdk.Context, caller sdk.AccAddress, tokenAddress [32]byte, minter sdk.AccAddress) error {
	token, ok := k.Token(ctx, tokenAddress)
	if !ok {
		return types.ErrTokenNotFound
	}
	if !bytes.Equal(token.Owner, caller) {
		return types.ErrUnauthorized
	}
	k.setMinter(ctx, tokenAddress, minter)
	ctx.EventManager().EmitEvent(types.NewEventMinterAdded(tokenAddress, minter))
	return nil
}

// RemoveMinter is owner-gated and emits MinterRemoved.
func (k Keeper) RemoveMinter(ctx sdk.Context, caller sdk.AccAddress, tokenAddress [32]byte, minter sdk.AccAddress) error {
	token, ok := k.Token(ctx, tokenAddress)
	if !ok {
		return types.ErrTokenNotFound
	}
	if !bytes.Equal(token.Owner, caller) {
		return types.ErrUnauthorized
	}
	k.minters(ctx).Delete(minterKey(tokenAddress, minter))
	ctx.EventManager().EmitEvent(types.NewEventMinterRemoved(tokenAddress, minter))
	return nil
}

// BalanceOf returns a holder's balance, defaulting to zero.
func (k Keeper) BalanceOf(ctx sdk.Context, tokenAddress [32]byte, holder sdk.AccAddress) sdkmath.Int {
	bz := k.balances(ctx).Get(balanceKey(tokenAddress, holder))
	if bz == nil {
		return sdkmath.ZeroInt()
	}
	var amt sdkmath.Int
	if err := amt.Unmarshal(bz); err != nil {
		return sdkmath.ZeroInt()
	}
	return amt
}

func balanceKey(tokenAddress [32]byte, holder []byte) []byte {
	return append(append([]byte{}, tokenAddress[:]...), holder...)
}

func (k Keeper) setBalance(ctx sdk.Context, tokenAddress [32]byte, holder sdk.AccAddress, amount sdkmath.Int) {
	bz, err := amount.Marshal()
	if err != nil {
		panic(err)
	}
	k.balances(ctx).Set(balanceKey(tokenAddress, holder), bz)
}

func (k Keeper) addBalance(ctx sdk.Context, tokenAddress [32]byte, holder sdk.AccAddress, amount sdkmath.Int) {
	k.setBalance(ctx, tokenAddress, holder, k.BalanceOf(ctx, tokenAddress, holder).Add(amount))
}

// Mint is owner-gated: ITS itself mints an initial supply on local deploy.
func (k Keeper) Mint(ctx sdk.Context, caller sdk.AccAddress, tokenAddress [32]byte, to sdk.AccAddress, amount sdkmath.Int) error {
	if amount.IsNegative() {
		return types.ErrNegativeAmount
	}
	token, ok := k.Token(ctx, tokenAddress)
	if !ok {
		return types.ErrTokenNotFound
	}
	if !bytes.Equal(token.Owner, caller) {
		return types.ErrUnauthorized
	}
	k.addBalance(ctx, tokenAddress, to, amount)
	return nil
}

// MintFrom requires minter authorization; an inbound native transfer
// mints to its destination this way.
func (k Keeper) MintFrom(ctx sdk.Context, minter sdk.AccAddress, tokenAddress [32]byte, to sdk.AccAddress, amount sdkmath.Int) error {
	if amount.IsNegative() {
		return types.ErrNegativeAmount
	}
	if _, ok := k.Token(ctx, tokenAddress); !ok {
		return types.ErrTokenNotFound
	}
	if !k.IsMinter(ctx, tokenAddress, minter) {
		return types.ErrNotMinter
	}
	k.addBalance(ctx, tokenAddress, to, amount)
	return nil
}

// Burn removes amount from the caller's own balance, the outbound leg of
// a native interchain transfer.
func (k Keeper) Burn(ctx sdk.Context, caller sdk.AccAddress, tokenAddress [32]byte, amount sdkmath.Int) error {
	if amount.IsNegative() {
		return types.ErrNegativeAmount
	}
	if _, ok := k.Token(ctx, tokenAddress); !ok {
		return types.ErrTokenNotFound
	}
	balance := k.BalanceOf(ctx, tokenAddress, caller)
	if balance.LT(amount) {
		return types.ErrInsufficientBalance
	}
	k.setBalance(ctx, tokenAddress, caller, balance.Sub(amount))
	return nil
}

// BurnFrom spends an allowance to burn from another holder's balance.
func (k Keeper) BurnFrom(ctx sdk.Context, spender sdk.AccAddress, tokenAddress [32]byte, from sdk.AccAddress, amount sdkmath.Int) error {
	if amount.IsNegative() {
		return types.ErrNegativeAmount
	}
	if err := k.spendAllowance(ctx, tokenAddress, from, spender, amount); err != nil {
		return err
	}
	balance := k.BalanceOf(ctx, tokenAddress, from)
	if balance.LT(amount) {
		return types.ErrInsufficientBalance
	}
	k.setBalance(ctx, tokenAddress, from, balance.Sub(amount))
	return nil
}

// Transfer moves amount from caller to to.
func (k Keeper) Transfer(ctx sdk.Context, caller sdk.AccAddress, tokenAddress [32]byte, to sdk.AccAddress, amount sdkmath.Int) error {
	if amount.IsNegative() {
		return types.ErrNegativeAmount
	}
	balance := k.BalanceOf(ctx, tokenAddress, caller)
	if balance.LT(amount) {
		return types.ErrInsufficientBalance
	}
	k.setBalance(ctx, tokenAddress, caller, balance.Sub(amount))
	k.addBalance(ctx, tokenAddress, to, amount)
	return nil
}

// TransferFrom spends an allowance to move amount from from to to.
func (k Keeper) TransferFrom(ctx sdk.Context, spender sdk.AccAddress, tokenAddress [32]byte, from, to sdk.AccAddress, amount sdkmath.Int) error {
	if amount.IsNegative() {
		return types.ErrNegativeAmount
	}
	if err := k.spendAllowance(ctx, tokenAddress, from, spender, amount); err != nil {
		return err
	}
	balance := k.BalanceOf(ctx, tokenAddress, from)
	if balance.LT(amount) {
		return types.ErrInsufficientBalance
	}
	k.setBalance(ctx, tokenAddress, from, balance.Sub(amount))
	k.addBalance(ctx, tokenAddress, to, amount)
	return nil
}

func allowanceKey(tokenAddress [32]byte, owner, spender []byte) []byte {
	out := append([]byte{}, tokenAddress[:]...)
	out = append(out, byte(len(owner)))
	out = append(out, owner...)
	out = append(out, spender...)
	return out
}

// Approve grants spender an allowance over caller's balance, valid
// through expirationLedger, a block height.
func (k Keeper) Approve(ctx sdk.Context, caller sdk.AccAddress, tokenAddress [32]byte, spender sdk.AccAddress, amount sdkmath.Int, expirationLedger uint64) error {
	if amount.IsNegative() {
		return types.ErrNegativeAmount
	}
	allowance := types.Allowance{Amount: amount, ExpirationLedger: expirationLedger}
	bz, err := allowance.Amount.Marshal()
	if err != nil {
		return err
	}
	out := make([]byte, 8+len(bz))
	putUint64BE(out[:8], expirationLedger)
	copy(out[8:], bz)
	k.allowances(ctx).Set(allowanceKey(tokenAddress, caller, spender), out)
	return nil
}

// Allowance returns the usable allowance spender holds over owner's
// balance at the current ledger height. An expired allowance reads as zero
// without mutating the stored record.
func (k Keeper) Allowance(ctx sdk.Context, tokenAddress [32]byte, owner, spender sdk.AccAddress) sdkmath.Int {
	bz := k.allowances(ctx).Get(allowanceKey(tokenAddress, owner, spender))
	if bz == nil || len(bz) < 8 {
		return sdkmath.ZeroInt()
	}
	expiration := getUint64BE(bz[:8])
	if uint64(ctx.BlockHeight()) > expiration {
		return sdkmath.ZeroInt()
	}
	var amt sdkmath.Int
	if err := amt.Unmarshal(bz[8:]); err != nil {
		return sdkmath.ZeroInt()
	}
	return amt
}

func (k Keeper) spendAllowance(ctx sdk.Context, tokenAddress [32]byte, owner, spender sdk.AccAddress, amount sdkmath.Int) error {
	remaining := k.Allowance(ctx, tokenAddress, owner, spender)
	if remaining.LT(amount) {
		return types.ErrInsufficientAllowance
	}
	return k.Approve(ctx, owner, tokenAddress, spender, remaining.Sub(amount), k.allowanceExpiration(ctx, tokenAddress, owner, spender))
}

func (k Keeper) allowanceExpiration(ctx sdk.Context, tokenAddress [32]byte, owner, spender sdk.AccAddress) uint64 {
	bz := k.allowances(ctx).Get(allowanceKey(tokenAddress, owner, spender))
	if bz == nil || len(bz) < 8 {
		return 0
	}
	return getUint64BE(bz[:8])
}

func putUint64BE(dst []byte, v uint64) {
	for i := 7; i >= 0; i-- {
		dst[i] = byte(v)
		v >>= 8
	}
}

func getUint64BE(bz []byte) uint64 {
	var v uint64
	for _, b := range bz {
		v = v<<8 | uint64(b)
	}
	return v
}
