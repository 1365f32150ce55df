package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/pawswap/x/pair/types"
)

// update records new reserves from the observed balances. On the first call
// of a block, the price accumulators advance by the prices implied by the
// previous reserves, so a price can only influence the oracle after it has
// survived to a later block.
func (k Keeper) update(ctx sdk.Context, pair *types.Pair, balance0, balance1 math.Int) error {
	if balance0.GT(types.MaxReserve) || balance1.GT(types.MaxReserve) {
		return types.ErrOverflow.Wrapf("balances %s/%s exceed uint112", balance0, balance1)
	}

	now := blockTimestamp(ctx)
	timeElapsed := now - pair.BlockTimestampLast
	if timeElapsed > 0 && pair.Reserve0.IsPositive() && pair.Reserve1.IsPositive() {
		pair.Price0CumulativeLast = types.AccumulatePrice(
			pair.Price0CumulativeLast, types.EncodePrice(pair.Reserve1, pair.Reserve0), timeElapsed)
		pair.Price1CumulativeLast = types.AccumulatePrice(
			pair.Price1CumulativeLast, types.EncodePrice(pair.Reserve0, pair.Reserve1), timeElapsed)

		k.Logger(ctx).Debug("price accumulators advanced",
			"pair", pair.Address.Hex(),
			"elapsed", timeElapsed,
		)
	}

	pair.Reserve0 = balance0
	pair.Reserve1 = balance1
	pair.BlockTimestampLast = now

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSync,
			sdk.NewAttribute(types.AttributeKeyTopic, types.TopicSync.Hex()),
			sdk.NewAttribute(types.AttributeKeyPair, pair.Address.Hex()),
			sdk.NewAttribute(types.AttributeKeyReserve0, balance0.String()),
			sdk.NewAttribute(types.AttributeKeyReserve1, balance1.String()),
		),
	)
	return nil
}

// recordReserves exports the pair state to the metrics gauges once the
// operation that produced it commits.
func (k Keeper) recordReserves(ctx sdk.Context, pair types.Pair) {
	label := pair.Address.Hex()
	reserve0, reserve1 := toFloat(pair.Reserve0), toFloat(pair.Reserve1)
	supply := toFloat(k.tokenKeeper.TotalSupply(ctx, pair.Address))
	deferMetric(ctx, func() {
		k.metrics.Reserves.WithLabelValues(label, pair.Token0.Hex()).Set(reserve0)
		k.metrics.Reserves.WithLabelValues(label, pair.Token1.Hex()).Set(reserve1)
		k.metrics.LPTokenSupply.WithLabelValues(label).Set(supply)
	})
}
