package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/paw-chain/pawswap/x/pair/types"
)

var (
	feeScale   = math.NewInt(types.FeeDenominator)
	feeCharged = math.NewInt(types.FeeDenominator - types.FeeNumerator)
	kScale     = feeScale.Mul(feeScale)
)

// Swap sends the requested output amounts to `to`, optionally calls the
// recipient's flash swap callee with data, and then requires that the
// inputs observed in the pair's balances preserve the fee-adjusted constant
// product. Payment may arrive before the call or from the callee.
func (k Keeper) Swap(
	ctx context.Context,
	address, sender common.Address,
	amount0Out, amount1Out math.Int,
	to common.Address,
	data []byte,
) error {
	err := k.withLock(ctx, address, "swap", func(ctx sdk.Context) error {
		if amount0Out.IsNil() || amount1Out.IsNil() || amount0Out.IsNegative() || amount1Out.IsNegative() {
			return types.ErrInsufficientOutputAmount.Wrap("output amounts must be non-negative")
		}
		if amount0Out.IsZero() && amount1Out.IsZero() {
			return types.ErrInsufficientOutputAmount
		}

		pair, err := k.GetPair(ctx, address)
		if err != nil {
			return err
		}
		reserve0, reserve1 := pair.Reserve0, pair.Reserve1
		if amount0Out.GTE(reserve0) || amount1Out.GTE(reserve1) {
			return types.ErrInsufficientLiquidity.Wrapf("requested %s/%s of reserves %s/%s",
				amount0Out, amount1Out, reserve0, reserve1)
		}
		if to == pair.Token0 || to == pair.Token1 {
			return types.ErrInvalidRecipient.Wrapf("recipient %s is a pair token", to)
		}

		// optimistic transfers
		if amount0Out.IsPositive() {
			if err := k.tokenKeeper.Transfer(ctx, pair.Token0, address, to, amount0Out); err != nil {
				return err
			}
		}
		if amount1Out.IsPositive() {
			if err := k.tokenKeeper.Transfer(ctx, pair.Token1, address, to, amount1Out); err != nil {
				return err
			}
		}
		if len(data) > 0 {
			callee, ok := k.callees[to]
			if !ok {
				return types.ErrInvalidCallee.Wrapf("recipient %s", to)
			}
			if err := callee.OnFlashSwap(ctx, sender, amount0Out, amount1Out, data); err != nil {
				return err
			}
		}

		balance0 := k.tokenKeeper.BalanceOf(ctx, pair.Token0, address)
		balance1 := k.tokenKeeper.BalanceOf(ctx, pair.Token1, address)
		amount0In := amountIn(balance0, reserve0, amount0Out)
		amount1In := amountIn(balance1, reserve1, amount1Out)
		if !amount0In.IsPositive() && !amount1In.IsPositive() {
			return types.ErrInsufficientInputAmount
		}

		if err := k.checkInvariant(pair, balance0, balance1, amount0In, amount1In); err != nil {
			k.metrics.KViolations.WithLabelValues(address.Hex()).Inc()
			return err
		}

		if err := k.update(ctx, &pair, balance0, balance1); err != nil {
			return err
		}
		if err := k.SetPair(ctx, pair); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeSwap,
				sdk.NewAttribute(types.AttributeKeyTopic, types.TopicSwap.Hex()),
				sdk.NewAttribute(types.AttributeKeyPair, address.Hex()),
				sdk.NewAttribute(types.AttributeKeySender, sender.Hex()),
				sdk.NewAttribute(types.AttributeKeyAmount0In, amount0In.String()),
				sdk.NewAttribute(types.AttributeKeyAmount1In, amount1In.String()),
				sdk.NewAttribute(types.AttributeKeyAmount0Out, amount0Out.String()),
				sdk.NewAttribute(types.AttributeKeyAmount1Out, amount1Out.String()),
				sdk.NewAttribute(types.AttributeKeyTo, to.Hex()),
			),
		)
		k.recordReserves(ctx, pair)
		return nil
	})

	k.recordOutcome(k.metrics.SwapsTotal, address, err)
	return err
}

// amountIn returns how much of one asset entered the pair during a swap:
// balance - (reserve - amountOut), or zero.
func amountIn(balance, reserve, amountOut math.Int) math.Int {
	remaining := reserve.Sub(amountOut)
	if balance.GT(remaining) {
		return balance.Sub(remaining)
	}
	return math.ZeroInt()
}

// checkInvariant requires
// (balance0*1000 - amount0In*3) * (balance1*1000 - amount1In*3) >= reserve0*reserve1*1000^2.
func (k Keeper) checkInvariant(pair types.Pair, balance0, balance1, amount0In, amount1In math.Int) error {
	adjusted0, err := adjustedBalance(balance0, amount0In)
	if err != nil {
		return err
	}
	adjusted1, err := adjustedBalance(balance1, amount1In)
	if err != nil {
		return err
	}
	product, err := SafeMul(adjusted0, adjusted1)
	if err != nil {
		return err
	}

	// reserves are below 2^112, so this cannot overflow 256 bits
	required := pair.Reserve0.Mul(pair.Reserve1).Mul(kScale)
	if product.LT(required) {
		return types.ErrK.Wrapf("adjusted product %s below %s", product, required)
	}
	return nil
}

func adjustedBalance(balance, amountIn math.Int) (math.Int, error) {
	scaled, err := SafeMul(balance, feeScale)
	if err != nil {
		return math.Int{}, err
	}
	return SafeSub(scaled, amountIn.Mul(feeCharged))
}
