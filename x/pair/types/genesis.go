package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// GenesisState defines the pair module's genesis state.
type GenesisState struct {
	Pairs []Pair `json:"pairs"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{Pairs: []Pair{}}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	seen := make(map[common.Address]struct{}, len(gs.Pairs))
	seenTokens := make(map[[2]common.Address]struct{}, len(gs.Pairs))
	for _, pair := range gs.Pairs {
		if err := pair.Validate(); err != nil {
			return err
		}
		if _, dup := seen[pair.Address]; dup {
			return fmt.Errorf("duplicate pair %s", pair.Address)
		}
		seen[pair.Address] = struct{}{}

		tokens := [2]common.Address{pair.Token0, pair.Token1}
		if _, dup := seenTokens[tokens]; dup {
			return fmt.Errorf("duplicate pair for tokens %s/%s", pair.Token0, pair.Token1)
		}
		seenTokens[tokens] = struct{}{}
	}
	return nil
}
