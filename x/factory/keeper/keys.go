package keeper

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
)

var (
	// PairByTokensKeyPrefix indexes pair addresses by ordered token pair
	PairByTokensKeyPrefix = []byte{0x01}

	// AllPairsKeyPrefix lists pair addresses in creation order
	AllPairsKeyPrefix = []byte{0x02}

	// PairCountKey is the key for the number of pairs created
	PairCountKey = []byte{0x03}

	// FeeToKey is the key for the protocol fee recipient
	FeeToKey = []byte{0x04}

	// FeeToSetterKey is the key for the account allowed to change the fee settings
	FeeToSetterKey = []byte{0x05}
)

// PairByTokensKey returns the index key for an ordered token pair
func PairByTokensKey(token0, token1 common.Address) []byte {
	key := make([]byte, 0, len(PairByTokensKeyPrefix)+2*common.AddressLength)
	key = append(key, PairByTokensKeyPrefix...)
	key = append(key, token0.Bytes()...)
	return append(key, token1.Bytes()...)
}

// AllPairsKey returns the key of the index-th created pair
func AllPairsKey(index uint64) []byte {
	indexBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(indexBytes, index)
	return append(append([]byte{}, AllPairsKeyPrefix...), indexBytes...)
}
