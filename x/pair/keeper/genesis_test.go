package keeper_test

import (
	"github.com/ethereum/go-ethereum/common"

	keepertest "github.com/paw-chain/pawswap/testutil/keeper"
	"github.com/paw-chain/pawswap/x/pair/types"
)

func (s *KeeperTestSuite) TestExportImportGenesis() {
	s.addLiquidity(e18(5), e18(10))
	s.Require().NoError(s.app.PairKeeper.Sync(s.at(7e9), s.pair))

	exported, err := s.app.ExportGenesis(s.ctx)
	s.Require().NoError(err)

	restored, ctx := keepertest.PawSwapAppWithGenesis(s.T(), s.app.Config(), exported)
	original, err := s.app.PairKeeper.GetPair(s.ctx, s.pair)
	s.Require().NoError(err)
	imported, err := restored.PairKeeper.GetPair(ctx, s.pair)
	s.Require().NoError(err)
	s.Require().Equal(original.String(), imported.String())
	s.Require().Equal(original.Price0CumulativeLast.String(), imported.Price0CumulativeLast.String())
	s.Require().Equal(original.BlockTimestampLast, imported.BlockTimestampLast)

	s.Require().Equal(s.app.PairKeeper.TotalSupply(s.ctx, s.pair).String(), restored.PairKeeper.TotalSupply(ctx, s.pair).String())
	pairAddr, found := restored.FactoryKeeper.GetPair(ctx, s.token1, s.token0)
	s.Require().True(found)
	s.Require().Equal(s.pair, pairAddr)

	// the restored engine keeps working
	s.Require().NoError(restored.TokenKeeper.Transfer(ctx, s.token0, s.wallet, s.pair, e18(1)))
	s.Require().NoError(restored.PairKeeper.Swap(ctx, s.pair, s.wallet, e18(0), mustInt("1662497915624478906"), s.wallet, nil))
}

func (s *KeeperTestSuite) TestGenesisValidation() {
	valid := types.NewPair(keepertest.TestAddress("pair"), s.token0, s.token1)
	s.Require().NoError(types.GenesisState{Pairs: []types.Pair{valid}}.Validate())

	unordered := valid
	unordered.Token0, unordered.Token1 = s.token1, s.token0
	s.Require().ErrorIs(types.GenesisState{Pairs: []types.Pair{unordered}}.Validate(), types.ErrInvalidPair)

	zeroToken := valid
	zeroToken.Token0 = common.Address{}
	s.Require().ErrorIs(types.GenesisState{Pairs: []types.Pair{zeroToken}}.Validate(), types.ErrInvalidPair)

	overflow := valid
	overflow.Reserve0 = types.MaxReserve.AddRaw(1)
	s.Require().ErrorIs(types.GenesisState{Pairs: []types.Pair{overflow}}.Validate(), types.ErrInvalidPair)

	s.Require().Error(types.GenesisState{Pairs: []types.Pair{valid, valid}}.Validate())
}
