package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// Swap fee of 0.3%, expressed as the retained fraction FeeNumerator/FeeDenominator.
const (
	FeeNumerator   = 997
	FeeDenominator = 1000
)

var (
	feeNumerator   = big.NewInt(FeeNumerator)
	feeDenominator = big.NewInt(FeeDenominator)
)

// GetAmountOut returns the maximum output amount for amountIn given the pair
// reserves, after the swap fee.
func GetAmountOut(amountIn, reserveIn, reserveOut math.Int) (math.Int, error) {
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return math.Int{}, ErrInsufficientInputAmount
	}
	if reserveIn.IsNil() || reserveOut.IsNil() || !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, ErrInsufficientLiquidity
	}

	amountInWithFee := new(big.Int).Mul(amountIn.BigInt(), feeNumerator)
	numerator := new(big.Int).Mul(amountInWithFee, reserveOut.BigInt())
	denominator := new(big.Int).Mul(reserveIn.BigInt(), feeDenominator)
	denominator.Add(denominator, amountInWithFee)
	return math.NewIntFromBigInt(numerator.Quo(numerator, denominator)), nil
}

// GetAmountIn returns the minimum input amount required to receive amountOut
// given the pair reserves, after the swap fee. The result is rounded up.
func GetAmountIn(amountOut, reserveIn, reserveOut math.Int) (math.Int, error) {
	if amountOut.IsNil() || !amountOut.IsPositive() {
		return math.Int{}, ErrInsufficientOutputAmount
	}
	if reserveIn.IsNil() || reserveOut.IsNil() || !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, ErrInsufficientLiquidity
	}
	if amountOut.GTE(reserveOut) {
		return math.Int{}, ErrInsufficientLiquidity.Wrapf("output %s exceeds reserve %s", amountOut, reserveOut)
	}

	numerator := new(big.Int).Mul(reserveIn.BigInt(), amountOut.BigInt())
	numerator.Mul(numerator, feeDenominator)
	denominator := new(big.Int).Sub(reserveOut.BigInt(), amountOut.BigInt())
	denominator.Mul(denominator, feeNumerator)
	amountIn := numerator.Quo(numerator, denominator)
	amountIn.Add(amountIn, big.NewInt(1))
	if amountIn.BitLen() > math.MaxBitLen {
		return math.Int{}, ErrOverflow.Wrap("required input exceeds 256 bits")
	}
	return math.NewIntFromBigInt(amountIn), nil
}

// Quote returns the amount of the other asset equivalent to amountA at the
// current reserve ratio, with no fee applied.
func Quote(amountA, reserveA, reserveB math.Int) (math.Int, error) {
	if amountA.IsNil() || !amountA.IsPositive() {
		return math.Int{}, ErrInsufficientInputAmount
	}
	if reserveA.IsNil() || reserveB.IsNil() || !reserveA.IsPositive() || !reserveB.IsPositive() {
		return math.Int{}, ErrInsufficientLiquidity
	}
	amountB := new(big.Int).Mul(amountA.BigInt(), reserveB.BigInt())
	amountB.Quo(amountB, reserveA.BigInt())
	if amountB.BitLen() > math.MaxBitLen {
		return math.Int{}, ErrOverflow.Wrap("quote exceeds 256 bits")
	}
	return math.NewIntFromBigInt(amountB), nil
}
