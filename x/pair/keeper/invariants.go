package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/paw-chain/pawswap/x/pair/types"
)

// RegisterInvariants registers all pair invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "reserves-backed", ReservesBackedInvariant(k))
	ir.RegisterRoute(types.ModuleName, "reserve-bounds", ReserveBoundsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "minimum-liquidity", MinimumLiquidityInvariant(k))
	ir.RegisterRoute(types.ModuleName, "unlocked", UnlockedInvariant(k))
}

// AllInvariants runs all invariants of the pair module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, inv := range []sdk.Invariant{
			ReservesBackedInvariant(k),
			ReserveBoundsInvariant(k),
			MinimumLiquidityInvariant(k),
			UnlockedInvariant(k),
		} {
			if res, stop := inv(ctx); stop {
				return res, stop
			}
		}
		return "", false
	}
}

// forEachPair collects violation messages from check over all pairs.
func forEachPair(ctx sdk.Context, k Keeper, check func(pair types.Pair) string) (string, int) {
	var (
		msg   string
		count int
	)
	err := k.IteratePairs(ctx, func(pair types.Pair) bool {
		if violation := check(pair); violation != "" {
			count++
			msg += violation
		}
		return false
	})
	if err != nil {
		count++
		msg += fmt.Sprintf("failed to iterate pairs: %v\n", err)
	}
	return msg, count
}

// ReservesBackedInvariant checks that every pair holds at least its reserves
func ReservesBackedInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		msg, count := forEachPair(ctx, k, func(pair types.Pair) string {
			var out string
			if balance := k.tokenKeeper.BalanceOf(ctx, pair.Token0, pair.Address); balance.LT(pair.Reserve0) {
				out += fmt.Sprintf("pair %s: balance of %s (%s) < reserve0 (%s)\n",
					pair.Address, pair.Token0, balance, pair.Reserve0)
			}
			if balance := k.tokenKeeper.BalanceOf(ctx, pair.Token1, pair.Address); balance.LT(pair.Reserve1) {
				out += fmt.Sprintf("pair %s: balance of %s (%s) < reserve1 (%s)\n",
					pair.Address, pair.Token1, balance, pair.Reserve1)
			}
			return out
		})

		return sdk.FormatInvariant(
			types.ModuleName, "reserves-backed",
			fmt.Sprintf("found %d pairs with reserve > balance\n%s", count, msg),
		), count != 0
	}
}

// ReserveBoundsInvariant checks that reserves are within uint112
func ReserveBoundsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		msg, count := forEachPair(ctx, k, func(pair types.Pair) string {
			if err := pair.Validate(); err != nil {
				return fmt.Sprintf("%v\n", err)
			}
			return ""
		})

		return sdk.FormatInvariant(
			types.ModuleName, "reserve-bounds",
			fmt.Sprintf("found %d invalid pairs\n%s", count, msg),
		), count != 0
	}
}

// MinimumLiquidityInvariant checks that every pair with liquidity has the
// minimum liquidity locked at the zero address
func MinimumLiquidityInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		msg, count := forEachPair(ctx, k, func(pair types.Pair) string {
			supply := k.tokenKeeper.TotalSupply(ctx, pair.Address)
			if supply.IsZero() {
				return ""
			}
			locked := k.tokenKeeper.BalanceOf(ctx, pair.Address, common.Address{})
			if supply.LT(types.MinimumLiquidityInt) || locked.LT(types.MinimumLiquidityInt) {
				return fmt.Sprintf("pair %s: supply %s, locked %s\n", pair.Address, supply, locked)
			}
			return ""
		})

		return sdk.FormatInvariant(
			types.ModuleName, "minimum-liquidity",
			fmt.Sprintf("found %d pairs below minimum liquidity\n%s", count, msg),
		), count != 0
	}
}

// UnlockedInvariant checks that no lock survives outside an operation
func UnlockedInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		msg, count := forEachPair(ctx, k, func(pair types.Pair) string {
			if k.IsLocked(ctx, pair.Address) {
				return fmt.Sprintf("pair %s is locked at rest\n", pair.Address)
			}
			return ""
		})

		return sdk.FormatInvariant(
			types.ModuleName, "unlocked",
			fmt.Sprintf("found %d locked pairs\n%s", count, msg),
		), count != 0
	}
}
