package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/paw-chain/pawswap/x/pair/types"
	tokentypes "github.com/paw-chain/pawswap/x/token/types"
)

// InitializePair creates the pair record and its LP share token. It is called
// once by the factory when the pair is created.
func (k Keeper) InitializePair(ctx context.Context, address, token0, token1 common.Address) error {
	if k.HasPair(ctx, address) {
		return types.ErrPairExists.Wrapf("pair %s", address)
	}

	pair := types.NewPair(address, token0, token1)
	if err := pair.Validate(); err != nil {
		return err
	}

	if err := k.tokenKeeper.CreateToken(ctx, tokentypes.Token{
		Address:  address,
		Name:     types.LPTokenName,
		Symbol:   types.LPTokenSymbol,
		Decimals: types.LPTokenDecimals,
		Minter:   address,
	}); err != nil {
		return fmt.Errorf("failed to create LP token for pair %s: %w", address, err)
	}

	return k.SetPair(ctx, pair)
}

// HasPair reports whether a pair exists at the address.
func (k Keeper) HasPair(ctx context.Context, address common.Address) bool {
	return k.getStore(ctx).Has(PairKey(address))
}

// GetPair returns a pair by address
func (k Keeper) GetPair(ctx context.Context, address common.Address) (types.Pair, error) {
	bz := k.getStore(ctx).Get(PairKey(address))
	if bz == nil {
		return types.Pair{}, types.ErrPairNotFound.Wrapf("pair %s", address)
	}

	var pair types.Pair
	if err := json.Unmarshal(bz, &pair); err != nil {
		return types.Pair{}, fmt.Errorf("failed to unmarshal pair %s: %w", address, err)
	}
	return pair, nil
}

// SetPair stores a pair
func (k Keeper) SetPair(ctx context.Context, pair types.Pair) error {
	bz, err := json.Marshal(pair)
	if err != nil {
		return fmt.Errorf("failed to marshal pair %s: %w", pair.Address, err)
	}
	k.getStore(ctx).Set(PairKey(pair.Address), bz)
	return nil
}

// IteratePairs calls cb for every pair until cb returns true.
func (k Keeper) IteratePairs(ctx context.Context, cb func(pair types.Pair) (stop bool)) error {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), PairKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pair types.Pair
		if err := json.Unmarshal(iterator.Value(), &pair); err != nil {
			return fmt.Errorf("failed to unmarshal pair: %w", err)
		}
		if cb(pair) {
			break
		}
	}
	return nil
}

// GetAllPairs returns all pairs
func (k Keeper) GetAllPairs(ctx context.Context) ([]types.Pair, error) {
	var pairs []types.Pair
	err := k.IteratePairs(ctx, func(pair types.Pair) bool {
		pairs = append(pairs, pair)
		return false
	})
	return pairs, err
}

// GetReserves returns the last recorded reserves and the block timestamp of
// the last update.
func (k Keeper) GetReserves(ctx context.Context, address common.Address) (reserve0, reserve1 math.Int, blockTimestampLast uint32, err error) {
	pair, err := k.GetPair(ctx, address)
	if err != nil {
		return math.Int{}, math.Int{}, 0, err
	}
	return pair.Reserve0, pair.Reserve1, pair.BlockTimestampLast, nil
}

// KLast returns reserve0*reserve1 as of the most recent liquidity event,
// zero while the protocol fee is off.
func (k Keeper) KLast(ctx context.Context, address common.Address) (math.Int, error) {
	pair, err := k.GetPair(ctx, address)
	if err != nil {
		return math.Int{}, err
	}
	return pair.KLast, nil
}

// TotalSupply returns the pair's LP share supply.
func (k Keeper) TotalSupply(ctx context.Context, address common.Address) math.Int {
	return k.tokenKeeper.TotalSupply(ctx, address)
}

// BalanceOf returns owner's LP share balance in the pair.
func (k Keeper) BalanceOf(ctx context.Context, address, owner common.Address) math.Int {
	return k.tokenKeeper.BalanceOf(ctx, address, owner)
}
