package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/paw-chain/pawswap/x/factory/types"
)

// Keeper of the factory store
type Keeper struct {
	storeKey   storetypes.StoreKey
	pairKeeper types.PairKeeper
	address    common.Address
}

// NewKeeper creates a new factory Keeper instance. address is the factory's
// own address, the deployer in pair address derivation.
func NewKeeper(key storetypes.StoreKey, pairKeeper types.PairKeeper, address common.Address) *Keeper {
	return &Keeper{
		storeKey:   key,
		pairKeeper: pairKeeper,
		address:    address,
	}
}

// getStore returns the KVStore for the factory module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// Address returns the factory address.
func (k Keeper) Address() common.Address {
	return k.address
}
