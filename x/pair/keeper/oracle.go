package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/paw-chain/pawswap/x/pair/types"
)

// CurrentCumulativePrices returns the price accumulators as they would be if
// the pair were synced at the current block time, without modifying state.
// Consumers take two observations and divide the difference by the elapsed
// time to obtain a time-weighted average price.
func (k Keeper) CurrentCumulativePrices(ctx context.Context, address common.Address) (price0Cumulative, price1Cumulative math.Int, timestamp uint32, err error) {
	pair, err := k.GetPair(ctx, address)
	if err != nil {
		return math.Int{}, math.Int{}, 0, err
	}

	now := blockTimestamp(sdk.UnwrapSDKContext(ctx))
	price0Cumulative, price1Cumulative = pair.Price0CumulativeLast, pair.Price1CumulativeLast
	if elapsed := now - pair.BlockTimestampLast; elapsed > 0 && pair.Reserve0.IsPositive() && pair.Reserve1.IsPositive() {
		price0Cumulative = types.AccumulatePrice(price0Cumulative, types.EncodePrice(pair.Reserve1, pair.Reserve0), elapsed)
		price1Cumulative = types.AccumulatePrice(price1Cumulative, types.EncodePrice(pair.Reserve0, pair.Reserve1), elapsed)
	}
	return price0Cumulative, price1Cumulative, now, nil
}
