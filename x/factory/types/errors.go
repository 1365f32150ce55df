package types

import (
	"cosmossdk.io/errors"
)

// Factory module sentinel errors
var (
	ErrIdenticalAddresses = errors.Register(ModuleName, 2, "identical addresses")
	ErrZeroAddress        = errors.Register(ModuleName, 3, "zero address")
	ErrPairExists         = errors.Register(ModuleName, 4, "pair exists")
	ErrForbidden          = errors.Register(ModuleName, 5, "forbidden")
)
