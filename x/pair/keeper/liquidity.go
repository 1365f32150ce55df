package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/paw-chain/pawswap/x/pair/types"
)

// Mint issues LP shares to `to` for the token amounts transferred into the
// pair since the last reserve update. The first mint locks MinimumLiquidity
// shares at the zero address.
func (k Keeper) Mint(ctx context.Context, address, sender, to common.Address) (math.Int, error) {
	var liquidity math.Int
	err := k.withLock(ctx, address, "mint", func(ctx sdk.Context) error {
		pair, err := k.GetPair(ctx, address)
		if err != nil {
			return err
		}

		balance0 := k.tokenKeeper.BalanceOf(ctx, pair.Token0, address)
		balance1 := k.tokenKeeper.BalanceOf(ctx, pair.Token1, address)
		amount0, err := SafeSub(balance0, pair.Reserve0)
		if err != nil {
			return err
		}
		amount1, err := SafeSub(balance1, pair.Reserve1)
		if err != nil {
			return err
		}

		feeOn, err := k.mintFee(ctx, &pair)
		if err != nil {
			return err
		}

		// read after mintFee, which may grow the supply
		totalSupply := k.tokenKeeper.TotalSupply(ctx, address)
		if totalSupply.IsZero() {
			product, err := SafeMul(amount0, amount1)
			if err != nil {
				return err
			}
			liquidity = Sqrt(product).Sub(types.MinimumLiquidityInt)
			if !liquidity.IsPositive() {
				return types.ErrInsufficientLiquidityMinted.Wrapf("initial deposit %s/%s too small", amount0, amount1)
			}
			if err := k.tokenKeeper.Mint(ctx, address, address, common.Address{}, types.MinimumLiquidityInt); err != nil {
				return err
			}
		} else {
			if pair.Reserve0.IsZero() || pair.Reserve1.IsZero() {
				return types.ErrInsufficientLiquidityMinted.Wrap("pair has supply but no reserves")
			}
			share0, err := SafeMulDiv(amount0, totalSupply, pair.Reserve0)
			if err != nil {
				return err
			}
			share1, err := SafeMulDiv(amount1, totalSupply, pair.Reserve1)
			if err != nil {
				return err
			}
			liquidity = math.MinInt(share0, share1)
		}

		if !liquidity.IsPositive() {
			return types.ErrInsufficientLiquidityMinted.Wrapf("deposit %s/%s", amount0, amount1)
		}
		if err := k.tokenKeeper.Mint(ctx, address, address, to, liquidity); err != nil {
			return err
		}

		if err := k.update(ctx, &pair, balance0, balance1); err != nil {
			return err
		}
		if feeOn {
			pair.KLast = pair.Reserve0.Mul(pair.Reserve1)
		}
		if err := k.SetPair(ctx, pair); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeMint,
				sdk.NewAttribute(types.AttributeKeyTopic, types.TopicMint.Hex()),
				sdk.NewAttribute(types.AttributeKeyPair, address.Hex()),
				sdk.NewAttribute(types.AttributeKeySender, sender.Hex()),
				sdk.NewAttribute(types.AttributeKeyAmount0, amount0.String()),
				sdk.NewAttribute(types.AttributeKeyAmount1, amount1.String()),
			),
		)
		k.recordReserves(ctx, pair)
		return nil
	})

	k.recordOutcome(k.metrics.MintsTotal, address, err)
	if err != nil {
		return math.Int{}, err
	}
	return liquidity, nil
}

// Burn redeems the LP shares held by the pair itself for a pro-rata share of
// both token balances, sent to `to`.
func (k Keeper) Burn(ctx context.Context, address, sender, to common.Address) (amount0, amount1 math.Int, err error) {
	err = k.withLock(ctx, address, "burn", func(ctx sdk.Context) error {
		pair, err := k.GetPair(ctx, address)
		if err != nil {
			return err
		}

		balance0 := k.tokenKeeper.BalanceOf(ctx, pair.Token0, address)
		balance1 := k.tokenKeeper.BalanceOf(ctx, pair.Token1, address)
		liquidity := k.tokenKeeper.BalanceOf(ctx, address, address)

		feeOn, err := k.mintFee(ctx, &pair)
		if err != nil {
			return err
		}

		totalSupply := k.tokenKeeper.TotalSupply(ctx, address)
		if totalSupply.IsZero() {
			return types.ErrInsufficientLiquidityBurned.Wrap("pair has no liquidity")
		}
		// pro-rata on balances, so donated tokens are distributed
		amount0, err = SafeMulDiv(liquidity, balance0, totalSupply)
		if err != nil {
			return err
		}
		amount1, err = SafeMulDiv(liquidity, balance1, totalSupply)
		if err != nil {
			return err
		}
		if !amount0.IsPositive() || !amount1.IsPositive() {
			return types.ErrInsufficientLiquidityBurned.Wrapf("burning %s shares yields %s/%s", liquidity, amount0, amount1)
		}

		if err := k.tokenKeeper.Burn(ctx, address, address, address, liquidity); err != nil {
			return err
		}
		if err := k.tokenKeeper.Transfer(ctx, pair.Token0, address, to, amount0); err != nil {
			return err
		}
		if err := k.tokenKeeper.Transfer(ctx, pair.Token1, address, to, amount1); err != nil {
			return err
		}

		balance0 = k.tokenKeeper.BalanceOf(ctx, pair.Token0, address)
		balance1 = k.tokenKeeper.BalanceOf(ctx, pair.Token1, address)
		if err := k.update(ctx, &pair, balance0, balance1); err != nil {
			return err
		}
		if feeOn {
			pair.KLast = pair.Reserve0.Mul(pair.Reserve1)
		}
		if err := k.SetPair(ctx, pair); err != nil {
			return err
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeBurn,
				sdk.NewAttribute(types.AttributeKeyTopic, types.TopicBurn.Hex()),
				sdk.NewAttribute(types.AttributeKeyPair, address.Hex()),
				sdk.NewAttribute(types.AttributeKeySender, sender.Hex()),
				sdk.NewAttribute(types.AttributeKeyAmount0, amount0.String()),
				sdk.NewAttribute(types.AttributeKeyAmount1, amount1.String()),
				sdk.NewAttribute(types.AttributeKeyTo, to.Hex()),
			),
		)
		k.recordReserves(ctx, pair)
		return nil
	})

	k.recordOutcome(k.metrics.BurnsTotal, address, err)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	return amount0, amount1, nil
}

// mintFee mints the protocol's share of the fee growth since the last
// liquidity event, equivalent to 1/6 of the growth in sqrt(k). It reports
// whether the protocol fee is on.
func (k Keeper) mintFee(ctx sdk.Context, pair *types.Pair) (bool, error) {
	feeTo := k.feeTo(ctx)
	feeOn := feeTo != (common.Address{})

	switch {
	case feeOn && pair.KLast.IsPositive():
		rootK := Sqrt(pair.Reserve0.Mul(pair.Reserve1))
		rootKLast := Sqrt(pair.KLast)
		if !rootK.GT(rootKLast) {
			return true, nil
		}

		totalSupply := k.tokenKeeper.TotalSupply(ctx, pair.Address)
		numerator, err := SafeMul(totalSupply, rootK.Sub(rootKLast))
		if err != nil {
			return false, err
		}
		denominator := rootK.MulRaw(5).Add(rootKLast)
		liquidity := numerator.Quo(denominator)
		if liquidity.IsPositive() {
			if err := k.tokenKeeper.Mint(ctx, pair.Address, pair.Address, feeTo, liquidity); err != nil {
				return false, err
			}
			shares, label := toFloat(liquidity), pair.Address.Hex()
			deferMetric(ctx, func() {
				k.metrics.ProtocolFeeShares.WithLabelValues(label).Add(shares)
			})
		}
	case !feeOn && !pair.KLast.IsZero():
		pair.KLast = math.ZeroInt()
	}
	return feeOn, nil
}
