package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
)

// Sync forces the reserves to match the pair's current token balances.
func (k Keeper) Sync(ctx context.Context, address common.Address) error {
	err := k.withLock(ctx, address, "sync", func(ctx sdk.Context) error {
		pair, err := k.GetPair(ctx, address)
		if err != nil {
			return err
		}

		balance0 := k.tokenKeeper.BalanceOf(ctx, pair.Token0, address)
		balance1 := k.tokenKeeper.BalanceOf(ctx, pair.Token1, address)
		if err := k.update(ctx, &pair, balance0, balance1); err != nil {
			return err
		}
		if err := k.SetPair(ctx, pair); err != nil {
			return err
		}
		k.recordReserves(ctx, pair)
		return nil
	})

	k.recordOutcome(k.metrics.SyncsTotal, address, err)
	return err
}

// Skim sends any balance in excess of the reserves to `to`, leaving the
// reserves untouched.
func (k Keeper) Skim(ctx context.Context, address, to common.Address) error {
	err := k.withLock(ctx, address, "skim", func(ctx sdk.Context) error {
		pair, err := k.GetPair(ctx, address)
		if err != nil {
			return err
		}

		excess0, err := SafeSub(k.tokenKeeper.BalanceOf(ctx, pair.Token0, address), pair.Reserve0)
		if err != nil {
			return err
		}
		excess1, err := SafeSub(k.tokenKeeper.BalanceOf(ctx, pair.Token1, address), pair.Reserve1)
		if err != nil {
			return err
		}

		if excess0.IsPositive() {
			if err := k.tokenKeeper.Transfer(ctx, pair.Token0, address, to, excess0); err != nil {
				return err
			}
		}
		if excess1.IsPositive() {
			if err := k.tokenKeeper.Transfer(ctx, pair.Token1, address, to, excess1); err != nil {
				return err
			}
		}

		k.Logger(ctx).Debug("skimmed excess balances",
			"pair", address.Hex(),
			"amount0", excess0.String(),
			"amount1", excess1.String(),
		)
		return nil
	})

	k.recordOutcome(k.metrics.SkimsTotal, address, err)
	return err
}
