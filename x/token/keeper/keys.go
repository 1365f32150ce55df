package keeper

import (
	"github.com/ethereum/go-ethereum/common"
)

var (
	// TokenKeyPrefix is the prefix for token metadata
	TokenKeyPrefix = []byte{0x01}

	// BalanceKeyPrefix is the prefix for account balances
	BalanceKeyPrefix = []byte{0x02}

	// AllowanceKeyPrefix is the prefix for spender allowances
	AllowanceKeyPrefix = []byte{0x03}

	// NonceKeyPrefix is the prefix for permit nonces
	NonceKeyPrefix = []byte{0x04}
)

// TokenKey returns the store key for a token's metadata
func TokenKey(token common.Address) []byte {
	return append(append([]byte{}, TokenKeyPrefix...), token.Bytes()...)
}

// BalanceKey returns the store key for owner's balance of token
func BalanceKey(token, owner common.Address) []byte {
	key := make([]byte, 0, len(BalanceKeyPrefix)+2*common.AddressLength)
	key = append(key, BalanceKeyPrefix...)
	key = append(key, token.Bytes()...)
	return append(key, owner.Bytes()...)
}

// AllowanceKey returns the store key for the allowance owner granted spender
func AllowanceKey(token, owner, spender common.Address) []byte {
	key := make([]byte, 0, len(AllowanceKeyPrefix)+3*common.AddressLength)
	key = append(key, AllowanceKeyPrefix...)
	key = append(key, token.Bytes()...)
	key = append(key, owner.Bytes()...)
	return append(key, spender.Bytes()...)
}

// NonceKey returns the store key for owner's permit nonce on token
func NonceKey(token, owner common.Address) []byte {
	key := make([]byte, 0, len(NonceKeyPrefix)+2*common.AddressLength)
	key = append(key, NonceKeyPrefix...)
	key = append(key, token.Bytes()...)
	return append(key, owner.Bytes()...)
}
