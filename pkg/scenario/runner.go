package scenario

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/paw-chain/pawswap/app"
	factorytypes "github.com/paw-chain/pawswap/x/factory/types"
	pairtypes "github.com/paw-chain/pawswap/x/pair/types"
	tokentypes "github.com/paw-chain/pawswap/x/token/types"
)

// StepResult is the pair state observed after a step.
type StepResult struct {
	Index    int
	Action   string
	Pair     common.Address
	Reserve0 math.Int
	Reserve1 math.Int
	Supply   math.Int
	Height   int64
	Err      error
}

// Runner executes scenarios against an application. Every step runs in its
// own block and is committed before the next one starts. A failing step
// leaves no state behind.
type Runner struct {
	app *app.PawSwapApp
	now time.Time
	out io.Writer
}

// NewRunner returns a runner whose first block is at start. Results are
// printed to out when it is not nil.
func NewRunner(a *app.PawSwapApp, start time.Time, out io.Writer) *Runner {
	return &Runner{app: a, now: start, out: out}
}

// Now returns the block time the next step runs at.
func (r *Runner) Now() time.Time {
	return r.now
}

// Run loads genesis for the scenario's fee setter, deploys its tokens and
// executes every step. It stops at the first step that fails unexpectedly.
func (r *Runner) Run(s *Scenario) ([]StepResult, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := r.initialize(s); err != nil {
		return nil, err
	}

	results := make([]StepResult, 0, len(s.Steps))
	for i, step := range s.Steps {
		ctx := r.app.NewContext(r.now)
		cacheCtx, write := ctx.CacheContext()
		pair, err := r.execute(cacheCtx, step)
		if err == nil {
			write()
		}
		if err = expect(step, err); err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i, step.Action, err)
		}

		result := StepResult{Index: i, Action: step.Action, Pair: pair, Height: ctx.BlockHeight()}
		if step.ExpectError != "" {
			result.Err = fmt.Errorf("%s", step.ExpectError)
		}
		if pair != (common.Address{}) {
			if result.Reserve0, result.Reserve1, _, err = r.app.PairKeeper.GetReserves(ctx, pair); err != nil {
				return results, fmt.Errorf("step %d (%s): %w", i, step.Action, err)
			}
			result.Supply = r.app.PairKeeper.TotalSupply(ctx, pair)
		}
		if err := r.app.AssertInvariants(ctx); err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i, step.Action, err)
		}

		r.app.Commit()
		r.now = r.now.Add(time.Second)
		results = append(results, result)
		r.print(result)
	}
	return results, nil
}

func (r *Runner) initialize(s *Scenario) error {
	if r.app.LastCommitID().Version != 0 {
		return fmt.Errorf("application already holds state at version %d", r.app.LastCommitID().Version)
	}

	factoryGenesis := factorytypes.DefaultGenesis()
	if s.FeeSetter != "" {
		setter, err := resolveAccount(s.FeeSetter, common.Address{})
		if err != nil {
			return err
		}
		factoryGenesis.FeeToSetter = setter
	}
	bz, err := json.Marshal(factoryGenesis)
	if err != nil {
		return err
	}

	genesis := app.NewDefaultGenesisState()
	genesis[factorytypes.ModuleName] = bz
	ctx := r.app.NewContext(r.now)
	if err := r.app.InitGenesis(ctx, genesis); err != nil {
		return fmt.Errorf("failed to init genesis: %w", err)
	}

	for _, spec := range s.Tokens {
		holder, err := resolveAccount(spec.Holder, common.Address{})
		if err != nil {
			return err
		}
		supply, err := ParseAmount(spec.Supply)
		if err != nil {
			return err
		}
		address := TokenAddress(spec.Symbol)
		if err := r.app.TokenKeeper.CreateToken(ctx, tokentypes.Token{
			Address:  address,
			Name:     spec.Symbol + " Token",
			Symbol:   spec.Symbol,
			Decimals: 18,
			Minter:   holder,
		}); err != nil {
			return err
		}
		if supply.IsPositive() {
			if err := r.app.TokenKeeper.Mint(ctx, address, holder, holder, supply); err != nil {
				return err
			}
		}
	}

	r.app.Commit()
	r.now = r.now.Add(time.Second)
	r.app.Logger().Info("scenario initialized", "name", s.Name, "tokens", len(s.Tokens))
	return nil
}

// execute runs one step and returns the pair it touched, if any.
func (r *Runner) execute(ctx sdk.Context, step Step) (common.Address, error) {
	var pair common.Address
	if step.Pair != "" && step.Action != ActionCreatePair {
		a, b, _ := splitPair(step.Pair)
		found, ok := r.app.FactoryKeeper.GetPair(ctx, TokenAddress(a), TokenAddress(b))
		if !ok {
			return common.Address{}, pairtypes.ErrPairNotFound.Wrapf("pair %s", step.Pair)
		}
		pair = found
	}

	switch step.Action {
	case ActionCreatePair:
		a, b, err := splitPair(step.Pair)
		if err != nil {
			return common.Address{}, err
		}
		return r.app.FactoryKeeper.CreatePair(ctx, TokenAddress(a), TokenAddress(b))

	case ActionTransfer:
		from, to, amount, err := r.transferArgs(step, pair)
		if err != nil {
			return pair, err
		}
		return pair, r.app.TokenKeeper.Transfer(ctx, TokenAddress(step.Token), from, to, amount)

	case ActionMint:
		to, err := resolveAccount(step.To, pair)
		if err != nil {
			return pair, err
		}
		_, err = r.app.PairKeeper.Mint(ctx, pair, to, to)
		return pair, err

	case ActionBurn:
		from, to, amount, err := r.transferArgs(step, pair)
		if err != nil {
			return pair, err
		}
		if amount.IsPositive() {
			if err := r.app.TokenKeeper.Transfer(ctx, pair, from, pair, amount); err != nil {
				return pair, err
			}
		}
		_, _, err = r.app.PairKeeper.Burn(ctx, pair, from, to)
		return pair, err

	case ActionSwap:
		return pair, r.swap(ctx, step, pair)

	case ActionSync:
		return pair, r.app.PairKeeper.Sync(ctx, pair)

	case ActionSkim:
		to, err := resolveAccount(step.To, pair)
		if err != nil {
			return pair, err
		}
		return pair, r.app.PairKeeper.Skim(ctx, pair, to)

	case ActionAdvance:
		// the step's own block already moved time forward by one second
		r.now = r.now.Add(time.Duration(step.Seconds-1) * time.Second)
		return pair, nil

	case ActionSetFeeTo:
		from, err := resolveAccount(step.From, pair)
		if err != nil {
			return pair, err
		}
		to, err := resolveAccount(step.To, pair)
		if err != nil {
			return pair, err
		}
		return pair, r.app.FactoryKeeper.SetFeeTo(ctx, from, to)

	default:
		return pair, fmt.Errorf("unknown action %q", step.Action)
	}
}

// swap pays amount of step.Token into the pair and takes the quoted output
// of the other token.
func (r *Runner) swap(ctx sdk.Context, step Step, pair common.Address) error {
	from, to, amountIn, err := r.transferArgs(step, pair)
	if err != nil {
		return err
	}
	record, err := r.app.PairKeeper.GetPair(ctx, pair)
	if err != nil {
		return err
	}

	tokenIn := TokenAddress(step.Token)
	reserveIn, err := record.ReserveFor(tokenIn)
	if err != nil {
		return err
	}
	reserveOut := record.Reserve1
	if tokenIn == record.Token1 {
		reserveOut = record.Reserve0
	}
	amountOut, err := pairtypes.GetAmountOut(amountIn, reserveIn, reserveOut)
	if err != nil {
		return err
	}
	if step.MinOut != "" {
		minOut, err := ParseAmount(step.MinOut)
		if err != nil {
			return err
		}
		if amountOut.LT(minOut) {
			return pairtypes.ErrInsufficientOutputAmount.Wrapf("quoted %s, minimum %s", amountOut, minOut)
		}
	}

	if err := r.app.TokenKeeper.Transfer(ctx, tokenIn, from, pair, amountIn); err != nil {
		return err
	}
	amount0Out, amount1Out := math.ZeroInt(), amountOut
	if tokenIn == record.Token1 {
		amount0Out, amount1Out = amountOut, math.ZeroInt()
	}
	return r.app.PairKeeper.Swap(ctx, pair, from, amount0Out, amount1Out, to, nil)
}

func (r *Runner) transferArgs(step Step, pair common.Address) (from, to common.Address, amount math.Int, err error) {
	if from, err = resolveAccount(step.From, pair); err != nil {
		return
	}
	to = from
	if step.To != "" {
		if to, err = resolveAccount(step.To, pair); err != nil {
			return
		}
	}
	amount = math.ZeroInt()
	if step.Amount != "" {
		amount, err = ParseAmount(step.Amount)
	}
	return
}

func (r *Runner) print(result StepResult) {
	if r.out == nil {
		return
	}
	line := fmt.Sprintf("%3d %-11s height=%d", result.Index, result.Action, result.Height)
	if result.Pair != (common.Address{}) {
		line += fmt.Sprintf(" pair=%s reserve0=%s reserve1=%s supply=%s",
			result.Pair.Hex(), result.Reserve0, result.Reserve1, result.Supply)
	}
	if result.Err != nil {
		line += fmt.Sprintf(" expected-error=%q", result.Err)
	}
	fmt.Fprintln(r.out, line)
}

func resolveAccount(name string, pair common.Address) (common.Address, error) {
	switch {
	case name == "":
		return common.Address{}, fmt.Errorf("account is required")
	case name == "pair":
		if pair == (common.Address{}) {
			return common.Address{}, fmt.Errorf("step has no pair")
		}
		return pair, nil
	case name == "zero":
		return common.Address{}, nil
	case strings.HasPrefix(name, "0x"):
		if !common.IsHexAddress(name) {
			return common.Address{}, fmt.Errorf("invalid address %s", name)
		}
		return common.HexToAddress(name), nil
	default:
		return AccountAddress(name), nil
	}
}

func expect(step Step, err error) error {
	switch {
	case step.ExpectError == "":
		return err
	case err == nil:
		return fmt.Errorf("expected error containing %q", step.ExpectError)
	case !strings.Contains(err.Error(), step.ExpectError):
		return fmt.Errorf("expected error containing %q, got: %w", step.ExpectError, err)
	default:
		return nil
	}
}
