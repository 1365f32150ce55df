package types

// Token module event types
const (
	EventTypeTransfer = "transfer"
	EventTypeApproval = "approval"

	AttributeKeyToken   = "token"
	AttributeKeyFrom    = "from"
	AttributeKeyTo      = "to"
	AttributeKeyOwner   = "owner"
	AttributeKeySpender = "spender"
	AttributeKeyAmount  = "amount"
)
