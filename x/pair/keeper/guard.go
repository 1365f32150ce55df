package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/paw-chain/pawswap/x/pair/types"
)

// withLock runs fn with the pair's reentrancy lock held, on a branch of the
// store. The branch is written back only when fn succeeds, so a failing call
// leaves no trace, including transfers made by flash swap callees. The lock
// itself never reaches the parent store. Metrics recorded by fn follow the
// branch: they are exported only once the outermost operation has written.
func (k Keeper) withLock(ctx context.Context, pair common.Address, operation string, fn func(ctx sdk.Context) error) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if k.IsLocked(sdkCtx, pair) {
		k.metrics.ReentrancyBlocks.WithLabelValues(pair.Hex()).Inc()
		return types.ErrLocked.Wrapf("%s on pair %s", operation, pair)
	}

	parent := journalFromContext(sdkCtx)
	journal := &metricsJournal{}
	cacheCtx, write := sdkCtx.CacheContext()
	cacheCtx = cacheCtx.WithValue(metricsJournalKey{}, journal)
	lockKey := ReentrancyLockKey(pair)
	store := k.getStore(cacheCtx)
	store.Set(lockKey, []byte{0x01})

	err := fn(cacheCtx)
	store.Delete(lockKey)
	if err != nil {
		return err
	}

	write()
	journal.commit(parent)
	return nil
}

// IsLocked reports whether an operation on the pair is in progress in ctx.
func (k Keeper) IsLocked(ctx context.Context, pair common.Address) bool {
	return k.getStore(ctx).Has(ReentrancyLockKey(pair))
}
