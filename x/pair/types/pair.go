package types

import (
	"bytes"
	"fmt"
	"math/big"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
)

// MinimumLiquidity is locked at the zero address by the first mint of every pair.
const MinimumLiquidity = 1000

var (
	// MaxReserve is the largest value a reserve may hold, 2^112 - 1.
	MaxReserve = math.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 112), big.NewInt(1)))

	// MinimumLiquidityInt is MinimumLiquidity as a math.Int.
	MinimumLiquidityInt = math.NewInt(MinimumLiquidity)
)

// Pair is the persisted state of one two-asset pool. The pair address is
// also the address of its LP share token.
type Pair struct {
	Address              common.Address `json:"address"`
	Token0               common.Address `json:"token0"`
	Token1               common.Address `json:"token1"`
	Reserve0             math.Int       `json:"reserve0"`
	Reserve1             math.Int       `json:"reserve1"`
	BlockTimestampLast   uint32         `json:"block_timestamp_last"`
	Price0CumulativeLast math.Int       `json:"price0_cumulative_last"`
	Price1CumulativeLast math.Int       `json:"price1_cumulative_last"`
	KLast                math.Int       `json:"k_last"`
}

// NewPair returns an empty pair for two ordered tokens.
func NewPair(address, token0, token1 common.Address) Pair {
	return Pair{
		Address:              address,
		Token0:               token0,
		Token1:               token1,
		Reserve0:             math.ZeroInt(),
		Reserve1:             math.ZeroInt(),
		Price0CumulativeLast: math.ZeroInt(),
		Price1CumulativeLast: math.ZeroInt(),
		KLast:                math.ZeroInt(),
	}
}

// SortTokens returns the two tokens in canonical order.
func SortTokens(tokenA, tokenB common.Address) (token0, token1 common.Address) {
	if bytes.Compare(tokenA.Bytes(), tokenB.Bytes()) < 0 {
		return tokenA, tokenB
	}
	return tokenB, tokenA
}

// Validate performs stateless validation of a pair record.
func (p Pair) Validate() error {
	zero := common.Address{}
	if p.Address == zero {
		return ErrInvalidPair.Wrap("pair address cannot be zero")
	}
	if p.Token0 == zero || p.Token1 == zero {
		return ErrInvalidPair.Wrapf("pair %s: zero token address", p.Address)
	}
	if bytes.Compare(p.Token0.Bytes(), p.Token1.Bytes()) >= 0 {
		return ErrInvalidPair.Wrapf("pair %s: tokens not strictly ordered", p.Address)
	}

	for name, reserve := range map[string]math.Int{"reserve0": p.Reserve0, "reserve1": p.Reserve1} {
		if reserve.IsNil() || reserve.IsNegative() || reserve.GT(MaxReserve) {
			return ErrInvalidPair.Wrapf("pair %s: %s out of range", p.Address, name)
		}
	}
	for name, value := range map[string]math.Int{
		"price0_cumulative_last": p.Price0CumulativeLast,
		"price1_cumulative_last": p.Price1CumulativeLast,
		"k_last":                 p.KLast,
	} {
		if value.IsNil() || value.IsNegative() {
			return ErrInvalidPair.Wrapf("pair %s: %s must be non-negative", p.Address, name)
		}
	}
	return nil
}

// ReserveFor returns the reserve held for token.
func (p Pair) ReserveFor(token common.Address) (math.Int, error) {
	switch token {
	case p.Token0:
		return p.Reserve0, nil
	case p.Token1:
		return p.Reserve1, nil
	default:
		return math.Int{}, ErrInvalidPair.Wrapf("token %s is not part of pair %s", token, p.Address)
	}
}

func (p Pair) String() string {
	return fmt.Sprintf("pair %s [%s/%s] reserves %s/%s", p.Address, p.Token0, p.Token1, p.Reserve0, p.Reserve1)
}
