package types

import (
	"cosmossdk.io/errors"
)

// Pair module sentinel errors
var (
	ErrOverflow                    = errors.Register(ModuleName, 2, "overflow")
	ErrInsufficientLiquidityMinted = errors.Register(ModuleName, 3, "insufficient liquidity minted")
	ErrInsufficientLiquidityBurned = errors.Register(ModuleName, 4, "insufficient liquidity burned")
	ErrInsufficientOutputAmount    = errors.Register(ModuleName, 5, "insufficient output amount")
	ErrInsufficientInputAmount     = errors.Register(ModuleName, 6, "insufficient input amount")
	ErrInsufficientLiquidity       = errors.Register(ModuleName, 7, "insufficient liquidity")
	ErrInvalidRecipient            = errors.Register(ModuleName, 8, "invalid to")
	ErrK                           = errors.Register(ModuleName, 9, "constant product invariant violated")
	ErrLocked                      = errors.Register(ModuleName, 10, "pair locked")
	ErrPairNotFound                = errors.Register(ModuleName, 11, "pair not found")
	ErrPairExists                  = errors.Register(ModuleName, 12, "pair already initialized")
	ErrInvalidCallee               = errors.Register(ModuleName, 13, "no flash swap callee registered for recipient")
	ErrInvalidPair                 = errors.Register(ModuleName, 14, "invalid pair")
)
