package keeper

import (
	"context"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/paw-chain/pawswap/x/factory/types"
)

// InitGenesis initializes the factory module's state from a genesis state.
// Pair state itself is restored by the pair module's genesis.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(k.address); err != nil {
		return fmt.Errorf("invalid factory genesis: %w", err)
	}

	k.setAddress(ctx, FeeToKey, genState.FeeTo)
	k.setAddress(ctx, FeeToSetterKey, genState.FeeToSetter)
	for _, record := range genState.Pairs {
		k.appendPair(ctx, record.Token0, record.Token1, record.Pair)
	}
	return nil
}

// ExportGenesis returns the factory module's exported genesis
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.FeeTo = k.FeeTo(ctx)
	genesis.FeeToSetter = k.FeeToSetter(ctx)

	// the by-tokens index is keyed by the ordered pair, so walk it to recover tokens
	byPair := make(map[string]types.PairRecord)
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), PairByTokensKeyPrefix)
	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()[len(PairByTokensKeyPrefix):]
		record := types.PairRecord{
			Token0: common.BytesToAddress(key[:common.AddressLength]),
			Token1: common.BytesToAddress(key[common.AddressLength:]),
			Pair:   common.BytesToAddress(iterator.Value()),
		}
		byPair[record.Pair.Hex()] = record
	}

	for _, pair := range k.AllPairs(ctx) {
		if record, ok := byPair[pair.Hex()]; ok {
			genesis.Pairs = append(genesis.Pairs, record)
		}
	}
	return genesis
}
