package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
)

// FlashCallee is invoked by Swap after the output amounts have been sent to
// the recipient and before the invariant is checked. Implementations must
// use the context they are given: it carries the pair's lock and all state
// changes made so far, and any error reverts the whole swap.
type FlashCallee interface {
	OnFlashSwap(ctx sdk.Context, sender common.Address, amount0Out, amount1Out math.Int, data []byte) error
}

// FlashCalleeFunc adapts a function to the FlashCallee interface.
type FlashCalleeFunc func(ctx sdk.Context, sender common.Address, amount0Out, amount1Out math.Int, data []byte) error

// OnFlashSwap calls f.
func (f FlashCalleeFunc) OnFlashSwap(ctx sdk.Context, sender common.Address, amount0Out, amount1Out math.Int, data []byte) error {
	return f(ctx, sender, amount0Out, amount1Out, data)
}
