package keeper

import (
	"context"
	"math/big"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/token/types"
)

// Keeper of the token store
type Keeper struct {
	storeKey storetypes.StoreKey
	chainID  *big.Int
}

// NewKeeper creates a new token Keeper instance. chainID is the chain id
// bound into every token's permit domain separator.
func NewKeeper(key storetypes.StoreKey, chainID *big.Int) *Keeper {
	return &Keeper{
		storeKey: key,
		chainID:  new(big.Int).Set(chainID),
	}
}

// getStore returns the KVStore for the token module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// ChainID returns the chain id used in permit domain separators.
func (k Keeper) ChainID() *big.Int {
	return new(big.Int).Set(k.chainID)
}
