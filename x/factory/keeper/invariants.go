package keeper

import (
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/paw-chain/pawswap/x/factory/types"
)

// RegisterInvariants registers all factory invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pairs-registered", PairsRegisteredInvariant(k))
}

// PairsRegisteredInvariant checks that every pair in the registry exists in
// the pair engine with the tokens it is indexed under, and that the creation
// order list agrees with the token index.
func PairsRegisteredInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg     string
			count   int
			indexed = make(map[common.Address]struct{})
		)

		iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), PairByTokensKeyPrefix)
		defer iterator.Close()
		for ; iterator.Valid(); iterator.Next() {
			key := iterator.Key()[len(PairByTokensKeyPrefix):]
			token0 := common.BytesToAddress(key[:common.AddressLength])
			token1 := common.BytesToAddress(key[common.AddressLength:])
			address := common.BytesToAddress(iterator.Value())
			indexed[address] = struct{}{}

			pair, err := k.pairKeeper.GetPair(ctx, address)
			switch {
			case err != nil:
				count++
				msg += fmt.Sprintf("\tpair %s for %s/%s: %v\n", address, token0, token1, err)
			case pair.Token0 != token0 || pair.Token1 != token1:
				count++
				msg += fmt.Sprintf("\tpair %s indexed as %s/%s holds %s/%s\n",
					address, token0, token1, pair.Token0, pair.Token1)
			}
		}

		for _, address := range k.AllPairs(ctx) {
			if _, ok := indexed[address]; !ok {
				count++
				msg += fmt.Sprintf("\tpair %s listed but not indexed by tokens\n", address)
			}
		}

		return sdk.FormatInvariant(
			types.ModuleName, "pairs-registered",
			fmt.Sprintf("found %d inconsistent registry entries\n%s", count, msg),
		), count != 0
	}
}
