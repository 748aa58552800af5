// Package testutil builds an in-memory sdk.Context mounting several module
// store keys at once, for keeper tests that compose more than one module
// (e.g. x/upgrade depends on x/access, x/gateway depends on x/access).
// cosmos-sdk's own testutil.DefaultContext mounts exactly one KVStoreKey;
// this is the same rootmulti.Store construction generalized to many keys.
package testutil

import (
	"time"

	dbm "github.com/cosmos/cosmos-db"

	"cosmossdk.io/log"
	"cosmossdk.io/store/metrics"
	"cosmossdk.io/store/rootmulti"
	storetypes "cosmossdk.io/store/types"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// NewContext returns an sdk.Context backed by a fresh in-memory
// rootmulti.Store with every given key mounted as an IAVL store.
func NewContext(keys ...storetypes.StoreKey) sdk.Context {
	db := dbm.NewMemDB()
	cms := rootmulti.NewStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		panic(err)
	}

	return sdk.NewContext(cms, cmtproto.Header{Time: time.Now().UTC()}, false, log.NewNopLogger())
}
