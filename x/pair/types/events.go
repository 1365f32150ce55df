package types

import (
	"github.com/ethereum/go-ethereum/crypto"
)

// Pair module event types
const (
	EventTypeSync = "sync"
	EventTypeMint = "mint"
	EventTypeBurn = "burn"
	EventTypeSwap = "swap"

	AttributeKeyPair       = "pair"
	AttributeKeyTopic      = "topic"
	AttributeKeySender     = "sender"
	AttributeKeyTo         = "to"
	AttributeKeyReserve0   = "reserve0"
	AttributeKeyReserve1   = "reserve1"
	AttributeKeyAmount0    = "amount0"
	AttributeKeyAmount1    = "amount1"
	AttributeKeyAmount0In  = "amount0_in"
	AttributeKeyAmount1In  = "amount1_in"
	AttributeKeyAmount0Out = "amount0_out"
	AttributeKeyAmount1Out = "amount1_out"
)

// Signature hashes of the equivalent EVM log events, attached to every event
// under AttributeKeyTopic.
var (
	TopicSync = crypto.Keccak256Hash([]byte("Sync(uint112,uint112)"))
	TopicMint = crypto.Keccak256Hash([]byte("Mint(address,uint256,uint256)"))
	TopicBurn = crypto.Keccak256Hash([]byte("Burn(address,uint256,uint256,address)"))
	TopicSwap = crypto.Keccak256Hash([]byte("Swap(address,uint256,uint256,uint256,uint256,address)"))
)
