package types

const (
	// ModuleName defines the module name
	ModuleName = "pair"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName
)

// LP share token metadata shared by every pair.
const (
	LPTokenName     = "PawSwap V2"
	LPTokenSymbol   = "PAW-V2"
	LPTokenDecimals = 18
)
