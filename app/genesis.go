package app

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	factorytypes "github.com/paw-chain/pawswap/x/factory/types"
	pairtypes "github.com/paw-chain/pawswap/x/pair/types"
	tokentypes "github.com/paw-chain/pawswap/x/token/types"
)

// GenesisState represents the genesis state of the application, keyed by module name
type GenesisState map[string]json.RawMessage

// NewDefaultGenesisState generates the default genesis state
func NewDefaultGenesisState() GenesisState {
	genesis := make(GenesisState)
	genesis[tokentypes.ModuleName] = mustMarshalJSON(tokentypes.DefaultGenesis())
	genesis[pairtypes.ModuleName] = mustMarshalJSON(pairtypes.DefaultGenesis())
	genesis[factorytypes.ModuleName] = mustMarshalJSON(factorytypes.DefaultGenesis())
	return genesis
}

func mustMarshalJSON(v interface{}) json.RawMessage {
	bz, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bz
}

func unmarshalModule(genesis GenesisState, module string, v interface{}) error {
	raw, ok := genesis[module]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("failed to decode %s genesis: %w", module, err)
	}
	return nil
}

// InitGenesis loads every module's genesis. Tokens come first so that LP
// share ledgers exist before the pairs and the registry referring to them.
func (app *PawSwapApp) InitGenesis(ctx sdk.Context, genesis GenesisState) error {
	tokenGenesis := tokentypes.DefaultGenesis()
	if err := unmarshalModule(genesis, tokentypes.ModuleName, tokenGenesis); err != nil {
		return err
	}
	pairGenesis := pairtypes.DefaultGenesis()
	if err := unmarshalModule(genesis, pairtypes.ModuleName, pairGenesis); err != nil {
		return err
	}
	factoryGenesis := factorytypes.DefaultGenesis()
	if err := unmarshalModule(genesis, factorytypes.ModuleName, factoryGenesis); err != nil {
		return err
	}

	if err := app.TokenKeeper.InitGenesis(ctx, *tokenGenesis); err != nil {
		return err
	}
	if err := app.PairKeeper.InitGenesis(ctx, *pairGenesis); err != nil {
		return err
	}
	if err := app.FactoryKeeper.InitGenesis(ctx, *factoryGenesis); err != nil {
		return err
	}
	return app.AssertInvariants(ctx)
}

// ExportGenesis exports every module's state
func (app *PawSwapApp) ExportGenesis(ctx sdk.Context) (GenesisState, error) {
	tokenGenesis, err := app.TokenKeeper.ExportGenesis(ctx)
	if err != nil {
		return nil, err
	}
	pairGenesis, err := app.PairKeeper.ExportGenesis(ctx)
	if err != nil {
		return nil, err
	}

	genesis := make(GenesisState)
	genesis[tokentypes.ModuleName] = mustMarshalJSON(tokenGenesis)
	genesis[pairtypes.ModuleName] = mustMarshalJSON(pairGenesis)
	genesis[factorytypes.ModuleName] = mustMarshalJSON(app.FactoryKeeper.ExportGenesis(ctx))
	return genesis, nil
}
