package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/paw-chain/pawswap/x/pair/types"
)

// Keeper of the pair store
type Keeper struct {
	storeKey    storetypes.StoreKey
	tokenKeeper types.TokenKeeper
	feeSource   types.FeeSource
	callees     map[common.Address]types.FlashCallee
	metrics     *PairMetrics
}

// NewKeeper creates a new pair Keeper instance
func NewKeeper(key storetypes.StoreKey, tokenKeeper types.TokenKeeper) *Keeper {
	return &Keeper{
		storeKey:    key,
		tokenKeeper: tokenKeeper,
		callees:     make(map[common.Address]types.FlashCallee),
		metrics:     NewPairMetrics(),
	}
}

// SetFeeSource sets the protocol fee recipient source. It is wired after
// construction because the factory depends on this keeper.
func (k *Keeper) SetFeeSource(source types.FeeSource) *Keeper {
	if k.feeSource != nil {
		panic("cannot set pair fee source twice")
	}
	k.feeSource = source
	return k
}

// RegisterCallee registers the flash swap callback for swaps sent to addr.
// Passing nil removes the registration.
func (k *Keeper) RegisterCallee(addr common.Address, callee types.FlashCallee) {
	if callee == nil {
		delete(k.callees, addr)
		return
	}
	k.callees[addr] = callee
}

// getStore returns the KVStore for the pair module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}

// feeTo returns the current protocol fee recipient, zero when no source is wired.
func (k Keeper) feeTo(ctx context.Context) common.Address {
	if k.feeSource == nil {
		return common.Address{}
	}
	return k.feeSource.FeeTo(ctx)
}

// blockTimestamp returns the block time in seconds truncated mod 2^32.
func blockTimestamp(ctx sdk.Context) uint32 {
	return uint32(ctx.BlockTime().Unix())
}
