package keeper

import (
	"math/big"

	"cosmossdk.io/math"
	"github.com/holiman/uint256"

	"github.com/paw-chain/pawswap/x/pair/types"
)

// Checked arithmetic on math.Int bounded to 256 bits. Failures wrap
// types.ErrOverflow.

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

func checked(result *big.Int, op string) (math.Int, error) {
	if result.Sign() < 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("%s underflow", op)
	}
	if result.Cmp(maxUint256) > 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("%s result exceeds 256 bits", op)
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts two math.Int values with underflow checking
func SafeSub(a, b math.Int) (math.Int, error) {
	return checked(new(big.Int).Sub(a.BigInt(), b.BigInt()), "subtraction")
}

// SafeMul multiplies two math.Int values with overflow checking
func SafeMul(a, b math.Int) (math.Int, error) {
	return checked(new(big.Int).Mul(a.BigInt(), b.BigInt()), "multiplication")
}

// SafeMulDiv performs (a * b) / c with overflow protection on the intermediate product
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, types.ErrOverflow.Wrap("division by zero")
	}
	product := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if product.Cmp(maxUint256) > 0 {
		return math.Int{}, types.ErrOverflow.Wrap("overflow in multiplication step")
	}
	return math.NewIntFromBigInt(product.Quo(product, c.BigInt())), nil
}

// Sqrt returns the integer floor square root of a non-negative value.
func Sqrt(a math.Int) math.Int {
	if !a.IsPositive() {
		return math.ZeroInt()
	}
	// math.Int is bounded to 256 bits, so the conversion cannot overflow
	x, _ := uint256.FromBig(a.BigInt())
	return math.NewIntFromBigInt(x.Sqrt(x).ToBig())
}
