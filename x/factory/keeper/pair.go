package keeper

import (
	"context"
	"encoding/binary"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/paw-chain/pawswap/x/factory/types"
	pairtypes "github.com/paw-chain/pawswap/x/pair/types"
)

// CreatePair deploys the pair for two tokens at its deterministic address.
func (k Keeper) CreatePair(ctx context.Context, tokenA, tokenB common.Address) (common.Address, error) {
	if tokenA == tokenB {
		return common.Address{}, types.ErrIdenticalAddresses.Wrapf("token %s", tokenA)
	}
	token0, token1 := pairtypes.SortTokens(tokenA, tokenB)
	if token0 == (common.Address{}) {
		return common.Address{}, types.ErrZeroAddress
	}
	if existing, found := k.GetPair(ctx, token0, token1); found {
		return common.Address{}, types.ErrPairExists.Wrapf("pair %s", existing)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, write := sdkCtx.CacheContext()

	pair := types.PairAddress(k.address, token0, token1)
	if err := k.pairKeeper.InitializePair(cacheCtx, pair, token0, token1); err != nil {
		return common.Address{}, err
	}
	length := k.appendPair(cacheCtx, token0, token1, pair)

	cacheCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePairCreated,
			sdk.NewAttribute(types.AttributeKeyTopic, types.TopicPairCreated.Hex()),
			sdk.NewAttribute(types.AttributeKeyToken0, token0.Hex()),
			sdk.NewAttribute(types.AttributeKeyToken1, token1.Hex()),
			sdk.NewAttribute(types.AttributeKeyPair, pair.Hex()),
			sdk.NewAttribute(types.AttributeKeyIndex, strconv.FormatUint(length, 10)),
		),
	)
	write()

	k.Logger(ctx).Info("pair created",
		"pair", pair.Hex(),
		"token0", token0.Hex(),
		"token1", token1.Hex(),
	)
	return pair, nil
}

// appendPair indexes a new pair and returns the new number of pairs.
func (k Keeper) appendPair(ctx context.Context, token0, token1, pair common.Address) uint64 {
	store := k.getStore(ctx)
	store.Set(PairByTokensKey(token0, token1), pair.Bytes())

	index := k.AllPairsLength(ctx)
	store.Set(AllPairsKey(index), pair.Bytes())

	countBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(countBytes, index+1)
	store.Set(PairCountKey, countBytes)
	return index + 1
}

// GetPair returns the pair for two tokens given in either order.
func (k Keeper) GetPair(ctx context.Context, tokenA, tokenB common.Address) (common.Address, bool) {
	token0, token1 := pairtypes.SortTokens(tokenA, tokenB)
	bz := k.getStore(ctx).Get(PairByTokensKey(token0, token1))
	if bz == nil {
		return common.Address{}, false
	}
	return common.BytesToAddress(bz), true
}

// AllPairsLength returns the number of pairs created.
func (k Keeper) AllPairsLength(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(PairCountKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// PairAt returns the index-th created pair.
func (k Keeper) PairAt(ctx context.Context, index uint64) (common.Address, bool) {
	bz := k.getStore(ctx).Get(AllPairsKey(index))
	if bz == nil {
		return common.Address{}, false
	}
	return common.BytesToAddress(bz), true
}

// AllPairs returns every pair in creation order.
func (k Keeper) AllPairs(ctx context.Context) []common.Address {
	length := k.AllPairsLength(ctx)
	pairs := make([]common.Address, 0, length)
	for i := uint64(0); i < length; i++ {
		if pair, ok := k.PairAt(ctx, i); ok {
			pairs = append(pairs, pair)
		}
	}
	return pairs
}
