package types

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	pairtypes "github.com/paw-chain/pawswap/x/pair/types"
)

// PairKeeper initializes the pair engine state for a newly created pair.
type PairKeeper interface {
	InitializePair(ctx context.Context, address, token0, token1 common.Address) error
	GetPair(ctx context.Context, address common.Address) (pairtypes.Pair, error)
}
