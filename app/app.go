package app

import (
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	factorykeeper "github.com/paw-chain/pawswap/x/factory/keeper"
	factorytypes "github.com/paw-chain/pawswap/x/factory/types"
	pairkeeper "github.com/paw-chain/pawswap/x/pair/keeper"
	pairtypes "github.com/paw-chain/pawswap/x/pair/types"
	tokenkeeper "github.com/paw-chain/pawswap/x/token/keeper"
	tokentypes "github.com/paw-chain/pawswap/x/token/types"
)

const (
	// Name is the application name
	Name = "pawswap"

	// DefaultChainID is the chain id placed in block headers
	DefaultChainID = "pawswap-local-1"
)

var (
	// DefaultNodeHome is the default home directory for the application daemon.
	DefaultNodeHome string

	// DefaultEVMChainID is the chain id bound into permit signatures.
	DefaultEVMChainID = big.NewInt(31337)
)

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	DefaultNodeHome = filepath.Join(userHomeDir, "."+Name)
}

// Config holds the parameters the keepers are constructed with.
type Config struct {
	ChainID        string
	EVMChainID     *big.Int
	FactoryAddress common.Address
}

// DefaultConfig returns the local development configuration.
func DefaultConfig() Config {
	return Config{
		ChainID:        DefaultChainID,
		EVMChainID:     new(big.Int).Set(DefaultEVMChainID),
		FactoryAddress: factorytypes.DefaultFactoryAddress,
	}
}

// PawSwapApp wires the token, pair and factory keepers over a commit multistore.
type PawSwapApp struct {
	logger log.Logger
	db     dbm.DB
	cms    storetypes.CommitMultiStore
	keys   map[string]*storetypes.KVStoreKey
	config Config

	invariants invariantRoutes

	TokenKeeper   *tokenkeeper.Keeper
	PairKeeper    *pairkeeper.Keeper
	FactoryKeeper *factorykeeper.Keeper
}

// NewPawSwapApp mounts the module stores on db, loads the latest committed
// version and constructs the keepers.
func NewPawSwapApp(logger log.Logger, db dbm.DB, cfg Config) (*PawSwapApp, error) {
	if cfg.EVMChainID == nil {
		return nil, fmt.Errorf("evm chain id must be set")
	}

	keys := storetypes.NewKVStoreKeys(tokentypes.StoreKey, pairtypes.StoreKey, factorytypes.StoreKey)
	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load latest version: %w", err)
	}

	app := &PawSwapApp{
		logger: logger,
		db:     db,
		cms:    cms,
		keys:   keys,
		config: cfg,
	}

	app.TokenKeeper = tokenkeeper.NewKeeper(keys[tokentypes.StoreKey], cfg.EVMChainID)
	app.PairKeeper = pairkeeper.NewKeeper(keys[pairtypes.StoreKey], app.TokenKeeper)
	app.FactoryKeeper = factorykeeper.NewKeeper(keys[factorytypes.StoreKey], app.PairKeeper, cfg.FactoryAddress)
	app.PairKeeper.SetFeeSource(app.FactoryKeeper)

	app.invariants = make(invariantRoutes)
	pairkeeper.RegisterInvariants(app.invariants, *app.PairKeeper)
	factorykeeper.RegisterInvariants(app.invariants, *app.FactoryKeeper)
	return app, nil
}

// Name returns the application name
func (app *PawSwapApp) Name() string { return Name }

// Logger returns the application logger
func (app *PawSwapApp) Logger() log.Logger { return app.logger }

// Config returns the configuration the app was built with
func (app *PawSwapApp) Config() Config { return app.config }

// GetKey returns the KVStoreKey for the provided store key
func (app *PawSwapApp) GetKey(storeKey string) *storetypes.KVStoreKey {
	return app.keys[storeKey]
}

// NewContext returns a context for the next block at blockTime. Writes go
// to the working state and become durable on Commit.
func (app *PawSwapApp) NewContext(blockTime time.Time) sdk.Context {
	header := cmtproto.Header{
		ChainID: app.config.ChainID,
		Height:  app.cms.LastCommitID().Version + 1,
		Time:    blockTime,
	}
	return sdk.NewContext(app.cms, header, false, app.logger)
}

// Commit persists the working state as a new version.
func (app *PawSwapApp) Commit() storetypes.CommitID {
	return app.cms.Commit()
}

// LastCommitID returns the id of the latest committed version.
func (app *PawSwapApp) LastCommitID() storetypes.CommitID {
	return app.cms.LastCommitID()
}

// AssertInvariants runs every registered invariant and fails on the first
// broken one.
func (app *PawSwapApp) AssertInvariants(ctx sdk.Context) error {
	return app.invariants.assert(ctx)
}

// Close releases the underlying database.
func (app *PawSwapApp) Close() error {
	return app.db.Close()
}
