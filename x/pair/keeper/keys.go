package keeper

import (
	"github.com/ethereum/go-ethereum/common"
)

var (
	// PairKeyPrefix is the prefix for pair store keys
	PairKeyPrefix = []byte{0x01}

	// ReentrancyLockKeyPrefix is the prefix for per-pair reentrancy locks
	ReentrancyLockKeyPrefix = []byte{0x02}
)

// PairKey returns the store key for a pair by address
func PairKey(pair common.Address) []byte {
	return append(append([]byte{}, PairKeyPrefix...), pair.Bytes()...)
}

// ReentrancyLockKey returns the store key for a pair's reentrancy lock
func ReentrancyLockKey(pair common.Address) []byte {
	return append(append([]byte{}, ReentrancyLockKeyPrefix...), pair.Bytes()...)
}
