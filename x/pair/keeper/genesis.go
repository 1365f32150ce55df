package keeper

import (
	"context"
	"fmt"

	"github.com/paw-chain/pawswap/x/pair/types"
)

// InitGenesis initializes the pair module's state from a genesis state. LP
// share tokens are restored by the token module's genesis.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid pair genesis: %w", err)
	}

	for _, pair := range genState.Pairs {
		if err := k.SetPair(ctx, pair); err != nil {
			return fmt.Errorf("failed to set pair %s: %w", pair.Address, err)
		}
	}
	return nil
}

// ExportGenesis returns the pair module's exported genesis
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	pairs, err := k.GetAllPairs(ctx)
	if err != nil {
		return nil, err
	}

	genesis := types.DefaultGenesis()
	genesis.Pairs = append(genesis.Pairs, pairs...)
	return genesis, nil
}
