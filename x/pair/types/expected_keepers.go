package types

import (
	"context"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"

	tokentypes "github.com/paw-chain/pawswap/x/token/types"
)

// TokenKeeper defines the fungible token ledger used for pooled assets and
// LP shares.
type TokenKeeper interface {
	CreateToken(ctx context.Context, token tokentypes.Token) error
	BalanceOf(ctx context.Context, token, owner common.Address) math.Int
	TotalSupply(ctx context.Context, token common.Address) math.Int
	Transfer(ctx context.Context, token, from, to common.Address, amount math.Int) error
	Mint(ctx context.Context, token, minter, to common.Address, amount math.Int) error
	Burn(ctx context.Context, token, minter, from common.Address, amount math.Int) error
}

// FeeSource reports the protocol fee recipient. The zero address turns the
// protocol fee off.
type FeeSource interface {
	FeeTo(ctx context.Context) common.Address
}
