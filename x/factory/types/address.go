package types

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	pairtypes "github.com/paw-chain/pawswap/x/pair/types"
)

// PairInitCode identifies the pair implementation in deterministic address
// derivation. Changing it moves every pair address.
var PairInitCode = []byte("pawswap/x/pair/v2")

// PairInitCodeHash is keccak256(PairInitCode).
var PairInitCodeHash = crypto.Keccak256Hash(PairInitCode)

// DefaultFactoryAddress is the factory address used when none is configured.
var DefaultFactoryAddress = common.BytesToAddress(crypto.Keccak256([]byte("pawswap/x/factory"))[12:])

// PairSalt returns keccak256(token0 ++ token1) for an ordered token pair.
func PairSalt(token0, token1 common.Address) common.Hash {
	return crypto.Keccak256Hash(token0.Bytes(), token1.Bytes())
}

// PairAddress computes the address of the pair for two tokens in either order:
// keccak256(0xff ++ factory ++ salt ++ PairInitCodeHash)[12:].
func PairAddress(factory, tokenA, tokenB common.Address) common.Address {
	token0, token1 := pairtypes.SortTokens(tokenA, tokenB)
	return crypto.CreateAddress2(factory, PairSalt(token0, token1), PairInitCodeHash.Bytes())
}
