package keeper

import (
	"encoding/json"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/pawswap/app"
	factorytypes "github.com/paw-chain/pawswap/x/factory/types"
	tokentypes "github.com/paw-chain/pawswap/x/token/types"
)

// GenesisTime is the block time of contexts returned by PawSwapApp.
var GenesisTime = time.Unix(1_700_000_000, 0).UTC()

// PawSwapApp creates an application over an in-memory database with the
// default genesis loaded.
func PawSwapApp(t testing.TB) (*app.PawSwapApp, sdk.Context) {
	return PawSwapAppWithConfig(t, app.DefaultConfig())
}

// PawSwapAppWithConfig is PawSwapApp with a custom configuration.
func PawSwapAppWithConfig(t testing.TB, cfg app.Config) (*app.PawSwapApp, sdk.Context) {
	return PawSwapAppWithGenesis(t, cfg, app.NewDefaultGenesisState())
}

// PawSwapAppWithFeeToSetter creates an application whose factory fee setter
// is setter, so tests can turn the protocol fee on.
func PawSwapAppWithFeeToSetter(t testing.TB, setter common.Address) (*app.PawSwapApp, sdk.Context) {
	factoryGenesis := factorytypes.DefaultGenesis()
	factoryGenesis.FeeToSetter = setter
	bz, err := json.Marshal(factoryGenesis)
	require.NoError(t, err)

	genesis := app.NewDefaultGenesisState()
	genesis[factorytypes.ModuleName] = bz
	return PawSwapAppWithGenesis(t, app.DefaultConfig(), genesis)
}

// PawSwapAppWithGenesis creates an application and loads genesis into it.
func PawSwapAppWithGenesis(t testing.TB, cfg app.Config, genesis app.GenesisState) (*app.PawSwapApp, sdk.Context) {
	a, err := app.NewPawSwapApp(log.NewNopLogger(), dbm.NewMemDB(), cfg)
	require.NoError(t, err)

	ctx := a.NewContext(GenesisTime)
	require.NoError(t, a.InitGenesis(ctx, genesis))
	return a, ctx
}

// TestAddress derives a stable account address from a name.
func TestAddress(name string) common.Address {
	return common.BytesToAddress(crypto.Keccak256([]byte("account/" + name))[12:])
}

// ExpandTo18Decimals returns n * 10^18.
func ExpandTo18Decimals(n int64) math.Int {
	return math.NewIntWithDecimal(n, 18)
}

// DeployToken creates an 18-decimal token minted by holder with supply
// credited to holder.
func DeployToken(t testing.TB, a *app.PawSwapApp, ctx sdk.Context, symbol string, holder common.Address, supply math.Int) common.Address {
	address := common.BytesToAddress(crypto.Keccak256([]byte("token/" + symbol))[12:])
	require.NoError(t, a.TokenKeeper.CreateToken(ctx, tokentypes.Token{
		Address:  address,
		Name:     symbol + " Token",
		Symbol:   symbol,
		Decimals: 18,
		Minter:   holder,
	}))
	require.NoError(t, a.TokenKeeper.Mint(ctx, address, holder, holder, supply))
	return address
}
