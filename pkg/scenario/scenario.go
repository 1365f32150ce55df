// Package scenario runs scripted token, pair and swap operations against a
// PawSwapApp. Scenarios are YAML documents; see testdata/ for examples.
package scenario

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"gopkg.in/yaml.v2"
)

// Step actions
const (
	ActionCreatePair = "create_pair"
	ActionTransfer   = "transfer"
	ActionMint       = "mint"
	ActionBurn       = "burn"
	ActionSwap       = "swap"
	ActionSync       = "sync"
	ActionSkim       = "skim"
	ActionAdvance    = "advance"
	ActionSetFeeTo   = "set_fee_to"
)

var knownActions = map[string]bool{
	ActionCreatePair: true,
	ActionTransfer:   true,
	ActionMint:       true,
	ActionBurn:       true,
	ActionSwap:       true,
	ActionSync:       true,
	ActionSkim:       true,
	ActionAdvance:    true,
	ActionSetFeeTo:   true,
}

// Scenario is a named sequence of steps over a set of tokens.
type Scenario struct {
	Name      string      `yaml:"name"`
	FeeSetter string      `yaml:"fee_setter"`
	Tokens    []TokenSpec `yaml:"tokens"`
	Steps     []Step      `yaml:"steps"`
}

// TokenSpec deploys an 18 decimal token with its whole supply held by Holder.
type TokenSpec struct {
	Symbol string `yaml:"symbol"`
	Holder string `yaml:"holder"`
	Supply string `yaml:"supply"`
}

// Step is one operation. Which fields apply depends on Action.
//
// Accounts are given by name, as a 0x address, as "pair" for the step's
// pair or as "zero" for the zero address. Amounts are integers or
// "<n>e<decimals>".
type Step struct {
	Action string `yaml:"action"`
	Pair   string `yaml:"pair"`
	Token  string `yaml:"token"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Amount string `yaml:"amount"`

	// MinOut fails a swap whose quoted output is below it.
	MinOut string `yaml:"min_out"`

	Seconds int64 `yaml:"seconds"`

	// ExpectError makes the step pass only if it fails with a message
	// containing this text.
	ExpectError string `yaml:"expect_error"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(bz)
}

// Parse decodes and validates a scenario document. Unknown fields are errors.
func Parse(bz []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.UnmarshalStrict(bz, &s); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the scenario without running it.
func (s Scenario) Validate() error {
	symbols := make(map[string]bool, len(s.Tokens))
	for i, token := range s.Tokens {
		if token.Symbol == "" {
			return fmt.Errorf("token %d: symbol is required", i)
		}
		if symbols[token.Symbol] {
			return fmt.Errorf("token %d: duplicate symbol %s", i, token.Symbol)
		}
		symbols[token.Symbol] = true
		if token.Holder == "" {
			return fmt.Errorf("token %s: holder is required", token.Symbol)
		}
		if _, err := ParseAmount(token.Supply); err != nil {
			return fmt.Errorf("token %s: %w", token.Symbol, err)
		}
	}

	for i, step := range s.Steps {
		if !knownActions[step.Action] {
			return fmt.Errorf("step %d: unknown action %q", i, step.Action)
		}
		if step.Pair != "" {
			a, b, err := splitPair(step.Pair)
			if err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
			if !symbols[a] || !symbols[b] {
				return fmt.Errorf("step %d: pair %s uses an undeclared token", i, step.Pair)
			}
		}
		if step.Token != "" && !symbols[step.Token] {
			return fmt.Errorf("step %d: undeclared token %s", i, step.Token)
		}
		if step.Action == ActionAdvance && step.Seconds <= 0 {
			return fmt.Errorf("step %d: advance needs positive seconds", i)
		}
	}
	return nil
}

// AccountAddress derives the address of a named account.
func AccountAddress(name string) common.Address {
	return common.BytesToAddress(crypto.Keccak256([]byte("account/" + name))[12:])
}

// TokenAddress derives the address a scenario deploys a token symbol at.
func TokenAddress(symbol string) common.Address {
	return common.BytesToAddress(crypto.Keccak256([]byte("token/" + symbol))[12:])
}

// ParseAmount parses a non-negative integer, optionally written as
// "<n>e<decimals>".
func ParseAmount(s string) (math.Int, error) {
	s = strings.TrimSpace(s)
	if mantissa, exp, ok := strings.Cut(s, "e"); ok {
		n, err := strconv.ParseInt(mantissa, 10, 64)
		if err != nil || n < 0 {
			return math.Int{}, fmt.Errorf("invalid amount %q", s)
		}
		d, err := strconv.Atoi(exp)
		if err != nil || d < 0 || d > 60 {
			return math.Int{}, fmt.Errorf("invalid exponent in amount %q", s)
		}
		return math.NewIntWithDecimal(n, d), nil
	}

	amount, ok := math.NewIntFromString(s)
	if !ok || amount.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid amount %q", s)
	}
	return amount, nil
}

func splitPair(pair string) (string, string, error) {
	a, b, ok := strings.Cut(pair, "/")
	if !ok || a == "" || b == "" || a == b {
		return "", "", fmt.Errorf("pair %q must be written as SYMBOL/SYMBOL", pair)
	}
	return a, b, nil
}
