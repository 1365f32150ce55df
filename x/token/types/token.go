package types

import (
	"fmt"
	"math/big"
	"strings"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
)

// MaxAllowance is the allowance value that TransferFrom never decrements.
var MaxAllowance = math.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)))

// Token describes a fungible token ledger. Only Minter may mint or burn.
type Token struct {
	Address     common.Address `json:"address"`
	Name        string         `json:"name"`
	Symbol      string         `json:"symbol"`
	Decimals    uint8          `json:"decimals"`
	Minter      common.Address `json:"minter"`
	TotalSupply math.Int       `json:"total_supply"`
}

// Validate performs stateless validation of the token metadata.
func (t Token) Validate() error {
	if t.Address == (common.Address{}) {
		return ErrInvalidToken.Wrap("token address cannot be zero")
	}
	if strings.TrimSpace(t.Name) == "" {
		return ErrInvalidToken.Wrapf("token %s: name cannot be empty", t.Address)
	}
	if strings.TrimSpace(t.Symbol) == "" {
		return ErrInvalidToken.Wrapf("token %s: symbol cannot be empty", t.Address)
	}
	if !t.TotalSupply.IsNil() && t.TotalSupply.IsNegative() {
		return ErrInvalidToken.Wrapf("token %s: negative total supply", t.Address)
	}
	return nil
}

func (t Token) String() string {
	return fmt.Sprintf("%s (%s) at %s", t.Name, t.Symbol, t.Address)
}

// ValidateAmount rejects nil and negative amounts.
func ValidateAmount(amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return ErrInvalidAmount.Wrapf("amount %s", amount)
	}
	if amount.GT(MaxAllowance) {
		return ErrInvalidAmount.Wrapf("amount %s exceeds uint256", amount)
	}
	return nil
}
