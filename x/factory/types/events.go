package types

import (
	"github.com/ethereum/go-ethereum/crypto"
)

// Factory module event types
const (
	EventTypePairCreated   = "pair_created"
	EventTypeFeeToChanged  = "fee_to_changed"
	EventTypeSetterChanged = "fee_to_setter_changed"

	AttributeKeyToken0  = "token0"
	AttributeKeyToken1  = "token1"
	AttributeKeyPair    = "pair"
	AttributeKeyIndex   = "all_pairs_length"
	AttributeKeyTopic   = "topic"
	AttributeKeyAddress = "address"
)

// TopicPairCreated is the signature hash of the equivalent EVM log event.
var TopicPairCreated = crypto.Keccak256Hash([]byte("PairCreated(address,address,address,uint256)"))
