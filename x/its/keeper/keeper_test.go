package keeper_test

import (
	"context"
	"crypto/ed25519"
	"sort"
	"strings"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/stretchr/testify/require"

	"github.com/axelar-network/interchain-go/crypto"
	"github.com/axelar-network/interchain-go/crypto/host"
	"github.com/axelar-network/interchain-go/testutil"
	accesskeeper "github.com/axelar-network/interchain-go/x/access/keeper"
	accesstypes "github.com/axelar-network/interchain-go/x/access/types"
	gasservicekeeper "github.com/axelar-network/interchain-go/x/gasservice/keeper"
	gasservicetypes "github.com/axelar-network/interchain-go/x/gasservice/types"
	gatewaykeeper "github.com/axelar-network/interchain-go/x/gateway/keeper"
	gatewaytypes "github.com/axelar-network/interchain-go/x/gateway/types"
	interchaintokenkeeper "github.com/axelar-network/interchain-go/x/interchaintoken/keeper"
	interchaintokentypes "github.com/axelar-network/interchain-go/x/interchaintoken/types"
	"github.com/axelar-network/interchain-go/x/its/keeper"
	"github.com/axelar-network/interchain-go/x/its/types"
	tokenmanagerkeeper "github.com/axelar-network/interchain-go/x/tokenmanager/keeper"
	tokenmanagertypes "github.com/axelar-network/interchain-go/x/tokenmanager/types"
)

// mockBank is a minimal in-memory ledger satisfying every BankKeeper shape
// the sibling modules require (gas service, token manager, and ITS's own
// denom-metadata lookup).
type mockBank struct {
	balances map[string]sdk.Coins
	metadata map[string]banktypes.Metadata
}

func newMockBank() *mockBank {
	return &mockBank{balances: map[string]sdk.Coins{}, metadata: map[string]banktypes.Metadata{}}
}

func (b *mockBank) fund(addr sdk.AccAddress, coins sdk.Coins) {
	b.balances[addr.String()] = b.balances[addr.String()].Add(coins...)
}

func (b *mockBank) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.balances[addr.String()].AmountOf(denom))
}

func (b *mockBank) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	from := b.balances[fromAddr.String()]
	for _, c := range amt {
		if from.AmountOf(c.Denom).LT(c.Amount) {
			return tokenmanagertypes.ErrInsufficientEscrow
		}
	}
	b.balances[fromAddr.String()] = from.Sub(amt...)
	b.fund(toAddr, amt)
	return nil
}

func (b *mockBank) GetDenomMetaData(_ context.Context, denom string) (banktypes.Metadata, bool) {
	md, ok := b.metadata[denom]
	return md, ok
}

var _ gasservicetypes.BankKeeper = (*mockBank)(nil)
var _ tokenmanagertypes.BankKeeper = (*mockBank)(nil)
var _ types.BankKeeper = (*mockBank)(nil)

// mockExecutable records execute_with_interchain_token dispatches.
type mockExecutable struct {
	calls int

	destination   sdk.AccAddress
	sourceChain   string
	messageID     string
	sourceAddress string
	data          []byte
	tokenID       [32]byte
	amount        sdkmath.Int
}

func (m *mockExecutable) ExecuteWithInterchainToken(
	_ sdk.Context,
	destination sdk.AccAddress,
	sourceChain, messageID, sourceAddress string,
	data []byte,
	tokenID [32]byte,
	_ [32]byte,
	amount sdkmath.Int,
) error {
	m.calls++
	m.destination = destination
	m.sourceChain = sourceChain
	m.messageID = messageID
	m.sourceAddress = sourceAddress
	m.data = data
	m.tokenID = tokenID
	m.amount = amount
	return nil
}

var _ types.ExecutableKeeper = (*mockExecutable)(nil)

type signerKey struct {
	pub  ed25519.PublicKey
	priv ed25519.PrivateKey
}

type harness struct {
	its      keeper.Keeper
	access   accesskeeper.Keeper
	bank     *mockBank
	token    interchaintokenkeeper.Keeper
	manager  tokenmanagerkeeper.Keeper
	owner    sdk.AccAddress
	operator sdk.AccAddress
	gw       gatewaykeeper.Keeper
	signers  gatewaytypes.WeightedSigners
	keys     []signerKey
}

func newSignerSet(t *testing.T, n int, weight, threshold int64) (gatewaytypes.WeightedSigners, []signerKey) {
	t.Helper()
	keys := make([]signerKey, n)
	for i := 0; i < n; i++ {
		pub, priv, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)
		keys[i] = signerKey{pub: pub, priv: priv}
	}
	sort.Slice(keys, func(i, j int) bool {
		return string(keys[i].pub) < string(keys[j].pub)
	})

	signers := make([]gatewaytypes.WeightedSigner, n)
	for i, k := range keys {
		var pk [32]byte
		copy(pk[:], k.pub)
		signers[i] = gatewaytypes.WeightedSigner{Signer: pk, Weight: sdkmath.NewInt(weight)}
	}
	return gatewaytypes.WeightedSigners{
		Signers:   signers,
		Threshold: sdkmath.NewInt(threshold),
		Nonce:     [32]byte{1},
	}, keys
}

func signAll(keys []signerKey, msgHash [32]byte) []gatewaytypes.Signature {
	out := make([]gatewaytypes.Signature, len(keys))
	for i, k := range keys {
		sig := ed25519.Sign(k.priv, msgHash[:])
		var fixed [64]byte
		copy(fixed[:], sig)
		out[i] = gatewaytypes.NewSignedSignature(fixed)
	}
	return out
}

func buildProof(signers gatewaytypes.WeightedSigners, sigs []gatewaytypes.Signature) gatewaytypes.Proof {
	proofSigners := make([]gatewaytypes.ProofSigner, len(signers.Signers))
	for i, s := range signers.Signers {
		proofSigners[i] = gatewaytypes.ProofSigner{WeightedSigner: s, Signature: sigs[i]}
	}
	return gatewaytypes.Proof{Signers: proofSigners, Threshold: signers.Threshold, Nonce: signers.Nonce}
}

func setupITS(t *testing.T) (harness, sdk.Context) {
	t.Helper()

	accessKey := storetypes.NewKVStoreKey(accesstypes.ModuleName)
	gatewayKey := storetypes.NewKVStoreKey(gatewaytypes.ModuleName)
	itsKey := storetypes.NewKVStoreKey(types.ModuleName)
	tokenKey := storetypes.NewKVStoreKey(interchaintokentypes.ModuleName)
	managerKey := storetypes.NewKVStoreKey(tokenmanagertypes.ModuleName)

	ctx := testutil.NewContext(accessKey, gatewayKey, itsKey, tokenKey, managerKey).
		WithBlockTime(time.Unix(1_700_000_000, 0)).
		WithBlockHeight(100)

	access := accesskeeper.NewKeeper(accessKey)
	owner := sdk.AccAddress([]byte("its_owner___________"))
	operator := sdk.AccAddress([]byte("its_operator________"))
	access.SetOwner(ctx, owner)
	access.SetOperator(ctx, operator)

	gw := gatewaykeeper.NewKeeper(gatewayKey, access, host.Default{})
	signers, keys := newSignerSet(t, 3, 1, 2)
	require.NoError(t, gw.Initialize(ctx, crypto.Keccak256([]byte("its-test-domain")), 3600, 2, []gatewaytypes.WeightedSigners{signers}))

	bank := newMockBank()
	gasService := gasservicekeeper.NewKeeper(bank, access)
	tokenManager := tokenmanagerkeeper.NewKeeper(managerKey, bank)
	token := interchaintokenkeeper.NewKeeper(tokenKey)

	its := keeper.NewKeeper(itsKey, access, gw, gasService, tokenManager, token, bank)
	its.Initialize(ctx, "cosmoshub", "axelar", "hub_address_________")
	require.NoError(t, its.SetTrustedChain(ctx, owner, "ethereum"))

	h := harness{
		its:      its,
		access:   access,
		bank:     bank,
		token:    token,
		manager:  tokenManager,
		owner:    owner,
		operator: operator,
		gw:       gw,
		signers:  signers,
		keys:     keys,
	}
	return h, ctx
}

// approveInbound walks a hub payload through the gateway approval path so
// that a subsequent its.Execute(caller, ...) consumes a real approval.
func approveInbound(t *testing.T, h harness, ctx sdk.Context, caller sdk.AccAddress, messageID string, payload []byte) {
	t.Helper()
	message := gatewaytypes.Message{
		SourceChain:     "axelar",
		MessageID:       messageID,
		SourceAddress:   "hub_address_________",
		ContractAddress: caller,
		PayloadHash:     crypto.Keccak256(payload),
	}
	dataHash := gatewaytypes.HashApproveMessagesBatch([]gatewaytypes.Message{message})
	domainSeparator := h.gw.DomainSeparator(ctx)
	signersHash := h.signers.Hash()
	msgHash := crypto.Keccak256(domainSeparator[:], signersHash[:], dataHash[:])
	proof := buildProof(h.signers, signAll(h.keys, msgHash))
	require.NoError(t, h.gw.ApproveMessages(ctx, []gatewaytypes.Message{message}, proof))
}

func TestDeployInterchainTokenMintsInitialSupply(t *testing.T) {
	h, ctx := setupITS(t)
	caller := sdk.AccAddress([]byte("caller______________"))
	salt := [32]byte{1, 2, 3}

	tokenID, err := h.its.DeployInterchainToken(ctx, caller, salt, types.TokenMetadata{Name: "Test", Symbol: "TEST", Decimals: 6}, sdkmath.NewInt(100), nil)
	require.NoError(t, err)

	cfg, ok := h.its.TokenConfig(ctx, tokenID)
	require.True(t, ok)
	require.Equal(t, types.NativeInterchainToken, cfg.ManagerType)
	require.Equal(t, keeper.InterchainTokenAddress(tokenID), cfg.TokenAddress)
	require.Equal(t, keeper.TokenManagerAddress(tokenID), cfg.TokenManager)

	// Caller received the initial supply and the manager holds minter
	// authority over the ITS-owned token.
	require.True(t, h.token.BalanceOf(ctx, cfg.TokenAddress, caller).Equal(sdkmath.NewInt(100)))
	require.True(t, h.token.IsMinter(ctx, cfg.TokenAddress, sdk.AccAddress(cfg.TokenManager[:])))

	tok, ok := h.token.Token(ctx, cfg.TokenAddress)
	require.True(t, ok)
	require.Equal(t, "Test", tok.Name)
	require.Equal(t, "TEST", tok.Symbol)
	require.Equal(t, uint8(6), tok.Decimals)
}

func TestDeployInterchainTokenRejectsDuplicateSalt(t *testing.T) {
	h, ctx := setupITS(t)
	caller := sdk.AccAddress([]byte("caller______________"))
	salt := [32]byte{9}

	_, err := h.its.DeployInterchainToken(ctx, caller, salt, types.TokenMetadata{Name: "A", Symbol: "A"}, sdkmath.ZeroInt(), nil)
	require.NoError(t, err)

	_, err = h.its.DeployInterchainToken(ctx, caller, salt, types.TokenMetadata{Name: "A", Symbol: "A"}, sdkmath.ZeroInt(), nil)
	require.ErrorIs(t, err, types.ErrTokenAlreadyRegistered)
}

func TestDeployInterchainTokenValidatesMetadata(t *testing.T) {
	h, ctx := setupITS(t)
	caller := sdk.AccAddress([]byte("caller______________"))

	_, err := h.its.DeployInterchainToken(ctx, caller, [32]byte{1}, types.TokenMetadata{Name: "", Symbol: "OK"}, sdkmath.ZeroInt(), nil)
	require.ErrorIs(t, err, types.ErrInvalidTokenName)

	_, err = h.its.DeployInterchainToken(ctx, caller, [32]byte{2}, types.TokenMetadata{Name: strings.Repeat("x", 33), Symbol: "OK"}, sdkmath.ZeroInt(), nil)
	require.ErrorIs(t, err, types.ErrInvalidTokenName)

	_, err = h.its.DeployInterchainToken(ctx, caller, [32]byte{3}, types.TokenMetadata{Name: "OK", Symbol: "é"}, sdkmath.ZeroInt(), nil)
	require.ErrorIs(t, err, types.ErrInvalidTokenSymbol)
}

func TestTokenQueriesReportRegistration(t *testing.T) {
	h, ctx := setupITS(t)
	caller := sdk.AccAddress([]byte("caller______________"))

	tokenID, err := h.its.DeployInterchainToken(ctx, caller, [32]byte{4}, types.TokenMetadata{Name: "Q", Symbol: "Q"}, sdkmath.ZeroInt(), nil)
	require.NoError(t, err)

	addr, err := h.its.RegisteredTokenAddress(ctx, tokenID)
	require.NoError(t, err)
	require.Equal(t, keeper.InterchainTokenAddress(tokenID), addr)

	manager, err := h.its.DeployedTokenManager(ctx, tokenID)
	require.NoError(t, err)
	require.Equal(t, keeper.TokenManagerAddress(tokenID), manager)

	kind, err := h.its.TokenManagerType(ctx, tokenID)
	require.NoError(t, err)
	require.Equal(t, types.NativeInterchainToken, kind)

	_, err = h.its.RegisteredTokenAddress(ctx, [32]byte{0xFF})
	require.ErrorIs(t, err, types.ErrTokenNotRegistered)
}

func TestRegisterCanonicalTokenAndLockUnlockTransfer(t *testing.T) {
	h, ctx := setupITS(t)
	caller := sdk.AccAddress([]byte("caller______________"))
	h.bank.fund(caller, sdk.NewCoins(sdk.NewCoin("uatom", sdkmath.NewInt(1_000_000))))

	tokenID, err := h.its.RegisterCanonicalToken(ctx, "uatom")
	require.NoError(t, err)

	limit := sdkmath.NewInt(1_000)
	require.NoError(t, h.its.SetFlowLimit(ctx, h.operator, tokenID, &limit))

	err = h.its.InterchainTransfer(ctx, caller, tokenID, "ethereum", []byte("0xdead"), sdkmath.NewInt(500), nil, nil)
	require.NoError(t, err)

	cfg, ok := h.its.TokenConfig(ctx, tokenID)
	require.True(t, ok)
	require.Equal(t, types.LockUnlock, cfg.ManagerType)
	escrow := h.bank.GetBalance(ctx, h.manager.EscrowAddress(cfg.TokenManager), "uatom")
	require.Equal(t, sdkmath.NewInt(500), escrow.Amount)
	require.True(t, h.its.FlowOutAmount(ctx, tokenID).Equal(sdkmath.NewInt(500)))

	_, err = h.its.RegisterCanonicalToken(ctx, "uatom")
	require.ErrorIs(t, err, types.ErrTokenAlreadyRegistered)
}

func TestInterchainTransferBurnsNativeToken(t *testing.T) {
	h, ctx := setupITS(t)
	caller := sdk.AccAddress([]byte("caller______________"))

	tokenID, err := h.its.DeployInterchainToken(ctx, caller, [32]byte{8}, types.TokenMetadata{Name: "N", Symbol: "N"}, sdkmath.NewInt(1_000), nil)
	require.NoError(t, err)
	cfg, _ := h.its.TokenConfig(ctx, tokenID)

	require.NoError(t, h.its.InterchainTransfer(ctx, caller, tokenID, "ethereum", []byte("dest"), sdkmath.NewInt(400), nil, nil))
	require.True(t, h.token.BalanceOf(ctx, cfg.TokenAddress, caller).Equal(sdkmath.NewInt(600)))
}

func TestInterchainTransferRejectsBadInput(t *testing.T) {
	h, ctx := setupITS(t)
	caller := sdk.AccAddress([]byte("caller______________"))
	h.bank.fund(caller, sdk.NewCoins(sdk.NewCoin("uatom", sdkmath.NewInt(1_000))))

	tokenID, err := h.its.RegisterCanonicalToken(ctx, "uatom")
	require.NoError(t, err)

	err = h.its.InterchainTransfer(ctx, caller, tokenID, "ethereum", []byte("dest"), sdkmath.ZeroInt(), nil, nil)
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	err = h.its.InterchainTransfer(ctx, caller, tokenID, "ethereum", nil, sdkmath.NewInt(10), nil, nil)
	require.ErrorIs(t, err, types.ErrInvalidDestination)

	err = h.its.InterchainTransfer(ctx, caller, tokenID, "ethereum", []byte("dest"), sdkmath.NewInt(10), []byte{}, nil)
	require.ErrorIs(t, err, types.ErrInvalidData)

	err = h.its.InterchainTransfer(ctx, caller, tokenID, "unknown-chain", []byte("dest"), sdkmath.NewInt(10), nil, nil)
	require.ErrorIs(t, err, types.ErrUntrustedChain)
}

func TestFlowLimitNetFlowInvariant(t *testing.T) {
	h, ctx := setupITS(t)
	caller := sdk.AccAddress([]byte("caller______________"))
	h.bank.fund(caller, sdk.NewCoins(sdk.NewCoin("uatom", sdkmath.NewInt(1_000_000))))

	tokenID, err := h.its.RegisterCanonicalToken(ctx, "uatom")
	require.NoError(t, err)

	limit := sdkmath.NewInt(100)
	require.NoError(t, h.its.SetFlowLimit(ctx, h.operator, tokenID, &limit))

	// A single step above the limit fails outright.
	err = h.its.InterchainTransfer(ctx, caller, tokenID, "ethereum", []byte("d"), sdkmath.NewInt(101), nil, nil)
	require.ErrorIs(t, err, types.ErrFlowLimitExceeded)

	require.NoError(t, h.its.InterchainTransfer(ctx, caller, tokenID, "ethereum", []byte("d"), sdkmath.NewInt(60), nil, nil))
	err = h.its.InterchainTransfer(ctx, caller, tokenID, "ethereum", []byte("d"), sdkmath.NewInt(60), nil, nil)
	require.ErrorIs(t, err, types.ErrFlowLimitExceeded)

	// The counters are epoch-scoped: six hours later the bucket is fresh.
	later := ctx.WithBlockTime(ctx.BlockTime().Add(6 * time.Hour))
	require.True(t, h.its.FlowOutAmount(later, tokenID).IsZero())
	require.NoError(t, h.its.InterchainTransfer(later, caller, tokenID, "ethereum", []byte("d"), sdkmath.NewInt(60), nil, nil))
}

func TestSetFlowLimitValidation(t *testing.T) {
	h, ctx := setupITS(t)
	tokenID := [32]byte{5}

	negative := sdkmath.NewInt(-1)
	require.ErrorIs(t, h.its.SetFlowLimit(ctx, h.operator, tokenID, &negative), types.ErrInvalidFlowLimit)

	require.ErrorIs(t, h.its.SetFlowLimit(ctx, h.owner, tokenID, nil), accesstypes.ErrUnauthorized)

	limit := sdkmath.NewInt(10)
	require.NoError(t, h.its.SetFlowLimit(ctx, h.operator, tokenID, &limit))
	got := h.its.FlowLimit(ctx, tokenID)
	require.NotNil(t, got)
	require.True(t, got.Equal(limit))

	// Removing the limit returns the token to unchecked accounting.
	require.NoError(t, h.its.SetFlowLimit(ctx, h.operator, tokenID, nil))
	require.Nil(t, h.its.FlowLimit(ctx, tokenID))
}

func TestExecuteInboundTransferViaHubApproval(t *testing.T) {
	h, ctx := setupITS(t)
	caller := sdk.AccAddress([]byte("caller______________"))

	tokenID, err := h.its.RegisterCanonicalToken(ctx, "uatom")
	require.NoError(t, err)

	limit := sdkmath.NewInt(1_000)
	require.NoError(t, h.its.SetFlowLimit(ctx, h.operator, tokenID, &limit))

	cfg, ok := h.its.TokenConfig(ctx, tokenID)
	require.True(t, ok)
	h.bank.fund(h.manager.EscrowAddress(cfg.TokenManager), sdk.NewCoins(sdk.NewCoin("uatom", sdkmath.NewInt(1_000))))

	destination := sdk.AccAddress([]byte("recipient___________"))
	hub := types.HubMessage{
		Type:  types.HubMessageReceiveFromHub,
		Chain: "ethereum",
		Message: types.InnerMessage{
			Type:               types.InnerMessageInterchainTransfer,
			TokenID:            tokenID,
			SourceAddress:      []byte("0xsender"),
			DestinationAddress: destination,
			Amount:             sdkmath.NewInt(200),
		},
	}
	payload := hub.Encode()
	approveInbound(t, h, ctx, caller, "msg-1", payload)

	require.NoError(t, h.its.Execute(ctx, caller, "axelar", "msg-1", "hub_address_________", payload))

	balance := h.bank.GetBalance(ctx, destination, "uatom")
	require.Equal(t, sdkmath.NewInt(200), balance.Amount)
	require.True(t, h.its.FlowInAmount(ctx, tokenID).Equal(sdkmath.NewInt(200)))

	// The approval is consumed: a second execute has nothing to validate.
	err = h.its.Execute(ctx, caller, "axelar", "msg-1", "hub_address_________", payload)
	require.ErrorIs(t, err, types.ErrNotApproved)
}

func TestExecuteDispatchesExecutableCallback(t *testing.T) {
	h, ctx := setupITS(t)
	caller := sdk.AccAddress([]byte("caller______________"))

	tokenID, err := h.its.RegisterCanonicalToken(ctx, "uatom")
	require.NoError(t, err)
	cfg, _ := h.its.TokenConfig(ctx, tokenID)
	h.bank.fund(h.manager.EscrowAddress(cfg.TokenManager), sdk.NewCoins(sdk.NewCoin("uatom", sdkmath.NewInt(1_000))))

	executable := &mockExecutable{}
	h.its.SetExecutableKeeper(executable)

	destination := sdk.AccAddress([]byte("app_contract________"))
	hub := types.HubMessage{
		Type:  types.HubMessageReceiveFromHub,
		Chain: "ethereum",
		Message: types.InnerMessage{
			Type:               types.InnerMessageInterchainTransfer,
			TokenID:            tokenID,
			SourceAddress:      []byte("0xsender"),
			DestinationAddress: destination,
			Amount:             sdkmath.NewInt(500),
			Data:               []byte("dead"),
		},
	}
	payload := hub.Encode()
	approveInbound(t, h, ctx, caller, "msg-2", payload)

	require.NoError(t, h.its.Execute(ctx, caller, "axelar", "msg-2", "hub_address_________", payload))

	require.Equal(t, 1, executable.calls)
	require.Equal(t, destination, executable.destination)
	require.Equal(t, "ethereum", executable.sourceChain)
	require.Equal(t, "msg-2", executable.messageID)
	require.Equal(t, "0xsender", executable.sourceAddress)
	require.Equal(t, []byte("dead"), executable.data)
	require.Equal(t, tokenID, executable.tokenID)
	require.True(t, executable.amount.Equal(sdkmath.NewInt(500)))
}

func TestExecuteInboundDeployInterchainToken(t *testing.T) {
	h, ctx := setupITS(t)
	caller := sdk.AccAddress([]byte("caller______________"))

	tokenID := types.InterchainTokenID([32]byte{0xAA}, [32]byte{0xBB})
	hub := types.HubMessage{
		Type:  types.HubMessageReceiveFromHub,
		Chain: "ethereum",
		Message: types.InnerMessage{
			Type:     types.InnerMessageDeployInterchainToken,
			TokenID:  tokenID,
			Name:     "Remote",
			Symbol:   "RMT",
			Decimals: 18,
		},
	}
	payload := hub.Encode()
	approveInbound(t, h, ctx, caller, "msg-3", payload)

	require.NoError(t, h.its.Execute(ctx, caller, "axelar", "msg-3", "hub_address_________", payload))

	cfg, ok := h.its.TokenConfig(ctx, tokenID)
	require.True(t, ok)
	require.Equal(t, types.NativeInterchainToken, cfg.ManagerType)
	tok, ok := h.token.Token(ctx, cfg.TokenAddress)
	require.True(t, ok)
	require.Equal(t, "Remote", tok.Name)
	require.Equal(t, uint8(18), tok.Decimals)

	// Re-delivering the same deployment is rejected, not silently replayed.
	approveInbound(t, h, ctx, caller, "msg-4", payload)
	err := h.its.Execute(ctx, caller, "axelar", "msg-4", "hub_address_________", payload)
	require.ErrorIs(t, err, types.ErrTokenAlreadyRegistered)
}

func TestExecuteRejectsNonHubTraffic(t *testing.T) {
	h, ctx := setupITS(t)
	caller := sdk.AccAddress([]byte("caller______________"))

	tokenID, err := h.its.RegisterCanonicalToken(ctx, "uatom")
	require.NoError(t, err)

	hub := types.HubMessage{
		Type:  types.HubMessageReceiveFromHub,
		Chain: "ethereum",
		Message: types.InnerMessage{
			Type:               types.InnerMessageInterchainTransfer,
			TokenID:            tokenID,
			SourceAddress:      []byte("s"),
			DestinationAddress: []byte("d___________________"),
			Amount:             sdkmath.NewInt(1),
		},
	}
	payload := hub.Encode()

	// Approved for the wrong source chain: execute validates the gateway
	// approval first, then rejects the non-hub source.
	message := gatewaytypes.Message{
		SourceChain:     "ethereum",
		MessageID:       "msg-5",
		SourceAddress:   "hub_address_________",
		ContractAddress: caller,
		PayloadHash:     crypto.Keccak256(payload),
	}
	dataHash := gatewaytypes.HashApproveMessagesBatch([]gatewaytypes.Message{message})
	domainSep := h.gw.DomainSeparator(ctx)
	signersHash := h.signers.Hash()
	msgHash := crypto.Keccak256(domainSep[:], signersHash[:], dataHash[:])
	require.NoError(t, h.gw.ApproveMessages(ctx, []gatewaytypes.Message{message}, buildProof(h.signers, signAll(h.keys, msgHash))))

	err = h.its.Execute(ctx, caller, "ethereum", "msg-5", "hub_address_________", payload)
	require.ErrorIs(t, err, types.ErrNotHubChain)

	// An unapproved message never reaches decoding.
	err = h.its.Execute(ctx, caller, "axelar", "msg-never-approved", "hub_address_________", payload)
	require.ErrorIs(t, err, types.ErrNotApproved)
}

func TestExecuteRejectsUntrustedOriginalSource(t *testing.T) {
	h, ctx := setupITS(t)
	caller := sdk.AccAddress([]byte("caller______________"))

	tokenID, err := h.its.RegisterCanonicalToken(ctx, "uatom")
	require.NoError(t, err)

	hub := types.HubMessage{
		Type:  types.HubMessageReceiveFromHub,
		Chain: "unknown-chain",
		Message: types.InnerMessage{
			Type:               types.InnerMessageInterchainTransfer,
			TokenID:            tokenID,
			SourceAddress:      []byte("s"),
			DestinationAddress: []byte("d___________________"),
			Amount:             sdkmath.NewInt(1),
		},
	}
	payload := hub.Encode()
	approveInbound(t, h, ctx, caller, "msg-6", payload)

	err = h.its.Execute(ctx, caller, "axelar", "msg-6", "hub_address_________", payload)
	require.ErrorIs(t, err, types.ErrUntrustedChain)
}

func TestDeployRemoteCanonicalTokenMetadata(t *testing.T) {
	h, ctx := setupITS(t)
	spender := sdk.AccAddress([]byte("spender_____________"))

	h.bank.metadata["uatom"] = banktypes.Metadata{
		Name:    "Cosmos Hub Atom",
		Symbol:  "ATOM",
		Display: "atom",
		DenomUnits: []*banktypes.DenomUnit{
			{Denom: "uatom", Exponent: 0},
			{Denom: "atom", Exponent: 6},
		},
	}
	_, err := h.its.RegisterCanonicalToken(ctx, "uatom")
	require.NoError(t, err)

	require.NoError(t, h.its.DeployRemoteCanonicalToken(ctx, spender, "uatom", "ethereum", nil))

	// Deploying toward the local chain itself is rejected.
	require.NoError(t, h.its.SetTrustedChain(ctx, h.owner, "cosmoshub"))
	err = h.its.DeployRemoteCanonicalToken(ctx, spender, "uatom", "cosmoshub", nil)
	require.ErrorIs(t, err, types.ErrInvalidDestinationChain)

	// The native-asset override replaces whatever the bank metadata says.
	require.NoError(t, h.its.SetNativeAssetMetadataOverride(ctx, h.owner, "uatom", "Cosmos", "ATOM"))
	require.NoError(t, h.its.DeployRemoteCanonicalToken(ctx, spender, "uatom", "ethereum", nil))

	found := false
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type != types.EventTypeInterchainTokenDeploymentStarted {
			continue
		}
		for _, attr := range ev.Attributes {
			if attr.Key == types.AttributeKeyName && attr.Value == "Cosmos" {
				found = true
			}
		}
	}
	require.True(t, found)
}

func TestDeployRemoteTokenSubstitutesOverlongName(t *testing.T) {
	h, ctx := setupITS(t)
	spender := sdk.AccAddress([]byte("spender_____________"))

	h.bank.metadata["ulong"] = banktypes.Metadata{
		Name:   strings.Repeat("n", 40),
		Symbol: "LONG",
	}
	_, err := h.its.RegisterCanonicalToken(ctx, "ulong")
	require.NoError(t, err)

	require.NoError(t, h.its.DeployRemoteCanonicalToken(ctx, spender, "ulong", "ethereum", nil))

	found := false
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type != types.EventTypeInterchainTokenDeploymentStarted {
			continue
		}
		for _, attr := range ev.Attributes {
			if attr.Key == types.AttributeKeyName && attr.Value == "LONG" {
				found = true
			}
		}
	}
	require.True(t, found)
}

func TestDeployRemoteInterchainTokenPaysGas(t *testing.T) {
	h, ctx := setupITS(t)
	caller := sdk.AccAddress([]byte("caller______________"))
	h.bank.fund(caller, sdk.NewCoins(sdk.NewCoin("uaxl", sdkmath.NewInt(1_000))))

	salt := [32]byte{0x11}
	_, err := h.its.DeployInterchainToken(ctx, caller, salt, types.TokenMetadata{Name: "G", Symbol: "G"}, sdkmath.ZeroInt(), nil)
	require.NoError(t, err)

	gas := gasservicetypes.Token{Denom: "uaxl", Amount: sdkmath.NewInt(50)}
	require.NoError(t, h.its.DeployRemoteInterchainToken(ctx, caller, salt, "ethereum", &gas))

	escrow := h.bank.GetBalance(ctx, sdk.AccAddress(gasservicetypes.ModuleAddress), "uaxl")
	require.Equal(t, sdkmath.NewInt(50), escrow.Amount)
	require.Equal(t, sdkmath.NewInt(950), h.bank.GetBalance(ctx, caller, "uaxl").Amount)
}

func TestTrustedChainRegistry(t *testing.T) {
	h, ctx := setupITS(t)

	require.True(t, h.its.IsTrustedChain(ctx, "ethereum"))
	require.False(t, h.its.IsTrustedChain(ctx, "base"))

	require.ErrorIs(t, h.its.SetTrustedChain(ctx, h.owner, "ethereum"), types.ErrTrustedChainAlreadySet)
	require.ErrorIs(t, h.its.RemoveTrustedChain(ctx, h.owner, "base"), types.ErrTrustedChainNotSet)

	stranger := sdk.AccAddress([]byte("stranger____________"))
	require.ErrorIs(t, h.its.SetTrustedChain(ctx, stranger, "base"), accesstypes.ErrUnauthorized)

	require.NoError(t, h.its.SetTrustedChain(ctx, h.owner, "base"))
	require.NoError(t, h.its.RemoveTrustedChain(ctx, h.owner, "base"))
	require.False(t, h.its.IsTrustedChain(ctx, "base"))
}

func TestPauseBlocksTransfersAndDeploys(t *testing.T) {
	h, ctx := setupITS(t)
	caller := sdk.AccAddress([]byte("caller______________"))

	tokenID, err := h.its.RegisterCanonicalToken(ctx, "uatom")
	require.NoError(t, err)

	require.NoError(t, h.access.Pause(ctx, h.owner))

	err = h.its.InterchainTransfer(ctx, caller, tokenID, "ethereum", []byte("d"), sdkmath.NewInt(1), nil, nil)
	require.ErrorIs(t, err, accesstypes.ErrContractPaused)

	_, err = h.its.DeployInterchainToken(ctx, caller, [32]byte{0x21}, types.TokenMetadata{Name: "P", Symbol: "P"}, sdkmath.ZeroInt(), nil)
	require.ErrorIs(t, err, accesstypes.ErrContractPaused)
}
