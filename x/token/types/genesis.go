package types

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
)

// Balance is a single account balance of a token.
type Balance struct {
	Token  common.Address `json:"token"`
	Owner  common.Address `json:"owner"`
	Amount math.Int       `json:"amount"`
}

// Allowance is the amount Spender may move out of Owner's balance.
type Allowance struct {
	Token   common.Address `json:"token"`
	Owner   common.Address `json:"owner"`
	Spender common.Address `json:"spender"`
	Amount  math.Int       `json:"amount"`
}

// Nonce is the next permit nonce for an owner.
type Nonce struct {
	Token common.Address `json:"token"`
	Owner common.Address `json:"owner"`
	Nonce uint64         `json:"nonce"`
}

// GenesisState defines the token module's genesis state.
type GenesisState struct {
	Tokens     []Token     `json:"tokens"`
	Balances   []Balance   `json:"balances"`
	Allowances []Allowance `json:"allowances"`
	Nonces     []Nonce     `json:"nonces"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Tokens:     []Token{},
		Balances:   []Balance{},
		Allowances: []Allowance{},
		Nonces:     []Nonce{},
	}
}

// Validate performs basic genesis state validation. Balances must add up to
// each token's total supply.
func (gs GenesisState) Validate() error {
	supplies := make(map[common.Address]math.Int, len(gs.Tokens))
	for _, token := range gs.Tokens {
		if err := token.Validate(); err != nil {
			return err
		}
		if _, dup := supplies[token.Address]; dup {
			return fmt.Errorf("duplicate token %s", token.Address)
		}
		supplies[token.Address] = math.ZeroInt()
	}

	for _, bal := range gs.Balances {
		sum, ok := supplies[bal.Token]
		if !ok {
			return fmt.Errorf("balance for unknown token %s", bal.Token)
		}
		if err := ValidateAmount(bal.Amount); err != nil {
			return fmt.Errorf("balance of %s in %s: %w", bal.Owner, bal.Token, err)
		}
		supplies[bal.Token] = sum.Add(bal.Amount)
	}

	for _, token := range gs.Tokens {
		expected := token.TotalSupply
		if expected.IsNil() {
			expected = math.ZeroInt()
		}
		if !supplies[token.Address].Equal(expected) {
			return fmt.Errorf("token %s: balances sum to %s, total supply is %s",
				token.Address, supplies[token.Address], expected)
		}
	}

	for _, allowance := range gs.Allowances {
		if _, ok := supplies[allowance.Token]; !ok {
			return fmt.Errorf("allowance for unknown token %s", allowance.Token)
		}
		if err := ValidateAmount(allowance.Amount); err != nil {
			return fmt.Errorf("allowance of %s for %s: %w", allowance.Owner, allowance.Spender, err)
		}
	}

	for _, nonce := range gs.Nonces {
		if _, ok := supplies[nonce.Token]; !ok {
			return fmt.Errorf("nonce for unknown token %s", nonce.Token)
		}
	}
	return nil
}
