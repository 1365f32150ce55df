package types

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	pairtypes "github.com/paw-chain/pawswap/x/pair/types"
)

// PairRecord is one registry entry, in creation order.
type PairRecord struct {
	Token0 common.Address `json:"token0"`
	Token1 common.Address `json:"token1"`
	Pair   common.Address `json:"pair"`
}

// GenesisState defines the factory module's genesis state.
type GenesisState struct {
	FeeTo       common.Address `json:"fee_to"`
	FeeToSetter common.Address `json:"fee_to_setter"`
	Pairs       []PairRecord   `json:"pairs"`
}

// DefaultGenesis returns the default genesis state. The protocol fee is off
// and nobody may turn it on until a setter is configured.
func DefaultGenesis() *GenesisState {
	return &GenesisState{Pairs: []PairRecord{}}
}

// Validate performs basic genesis state validation. factory is the address
// pair records are checked against.
func (gs GenesisState) Validate(factory common.Address) error {
	seen := make(map[common.Address]struct{}, len(gs.Pairs))
	for i, record := range gs.Pairs {
		token0, token1 := pairtypes.SortTokens(record.Token0, record.Token1)
		if token0 != record.Token0 || token0 == token1 {
			return fmt.Errorf("pair %d: tokens %s/%s not strictly ordered", i, record.Token0, record.Token1)
		}
		if token0 == (common.Address{}) {
			return fmt.Errorf("pair %d: %w", i, ErrZeroAddress)
		}
		if expected := PairAddress(factory, token0, token1); expected != record.Pair {
			return fmt.Errorf("pair %d: address %s, expected %s", i, record.Pair, expected)
		}
		if _, dup := seen[record.Pair]; dup {
			return fmt.Errorf("pair %d: %w", i, ErrPairExists)
		}
		seen[record.Pair] = struct{}{}
	}
	return nil
}
