package types

import (
	"cosmossdk.io/errors"
)

// Token module sentinel errors
var (
	ErrTokenNotFound         = errors.Register(ModuleName, 2, "token not found")
	ErrTokenExists           = errors.Register(ModuleName, 3, "token already exists")
	ErrInsufficientBalance   = errors.Register(ModuleName, 4, "transfer amount exceeds balance")
	ErrInsufficientAllowance = errors.Register(ModuleName, 5, "transfer amount exceeds allowance")
	ErrInvalidAmount         = errors.Register(ModuleName, 6, "invalid amount")
	ErrInvalidSender         = errors.Register(ModuleName, 7, "invalid sender")
	ErrUnauthorized          = errors.Register(ModuleName, 8, "caller is not the token minter")
	ErrExpired               = errors.Register(ModuleName, 9, "permit expired")
	ErrInvalidSignature      = errors.Register(ModuleName, 10, "invalid signature")
	ErrInvalidToken          = errors.Register(ModuleName, 11, "invalid token")
)
