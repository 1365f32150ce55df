package types

import (
	"math/big"

	"cosmossdk.io/math"
	"github.com/holiman/uint256"
)

// Q112 is 2^112, the UQ112x112 representation of 1.
var Q112 = new(uint256.Int).Lsh(uint256.NewInt(1), 112)

// toUint256 converts a non-negative math.Int that fits in 256 bits.
func toUint256(x math.Int) *uint256.Int {
	if x.IsNil() {
		return new(uint256.Int)
	}
	v, _ := uint256.FromBig(x.BigInt())
	return v
}

func fromUint256(x *uint256.Int) math.Int {
	return math.NewIntFromBigInt(x.ToBig())
}

// EncodePrice returns numerator/denominator as a UQ112x112. Both reserves
// are below 2^112, so the result fits in 224 bits.
func EncodePrice(numerator, denominator math.Int) *uint256.Int {
	encoded := new(uint256.Int).Lsh(toUint256(numerator), 112)
	return encoded.Div(encoded, toUint256(denominator))
}

// AccumulatePrice adds price*elapsed to cumulative, wrapping mod 2^256.
func AccumulatePrice(cumulative math.Int, price *uint256.Int, elapsed uint32) math.Int {
	delta := new(uint256.Int).Mul(price, uint256.NewInt(uint64(elapsed)))
	return fromUint256(delta.Add(delta, toUint256(cumulative)))
}

// AveragePrice returns the time-weighted average UQ112x112 price between two
// accumulator observations taken elapsed seconds apart. Wrap-around of the
// accumulator between the observations is handled.
func AveragePrice(cumulativeStart, cumulativeEnd math.Int, elapsed uint32) (*uint256.Int, error) {
	if elapsed == 0 {
		return nil, ErrInsufficientInputAmount.Wrap("observations must be at least one second apart")
	}
	diff := new(uint256.Int).Sub(toUint256(cumulativeEnd), toUint256(cumulativeStart))
	return diff.Div(diff, uint256.NewInt(uint64(elapsed))), nil
}

// UQ112x112ToDec converts a UQ112x112 value to a decimal, truncated to 18 places.
func UQ112x112ToDec(x *uint256.Int) math.LegacyDec {
	scaled := new(big.Int).Mul(x.ToBig(), math.LegacyOneDec().BigInt())
	scaled.Rsh(scaled, 112)
	return math.LegacyNewDecFromBigIntWithPrec(scaled, math.LegacyPrecision)
}
