package keeper_test

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/paw-chain/pawswap/x/pair/keeper"
	"github.com/paw-chain/pawswap/x/pair/types"
)

func (s *KeeperTestSuite) TestProtocolFeeMetricFollowsCommit() {
	feeShares := keeper.NewPairMetrics().ProtocolFeeShares.WithLabelValues(s.pair.Hex())
	s.Require().NoError(s.app.FactoryKeeper.SetFeeTo(s.ctx, s.wallet, s.other))
	s.addLiquidity(e18(1000), e18(1000))
	s.transferToPair(s.token1, e18(1))
	s.Require().NoError(s.app.PairKeeper.Swap(s.ctx, s.pair, s.wallet, mustInt("996006981039903216"), math.ZeroInt(), s.wallet, nil))
	before := testutil.ToFloat64(feeShares)

	// mintFee runs, then the empty deposit fails and the branch is dropped
	_, err := s.app.PairKeeper.Mint(s.ctx, s.pair, s.wallet, s.wallet)
	s.Require().ErrorIs(err, types.ErrInsufficientLiquidityMinted)
	s.Require().True(s.app.PairKeeper.BalanceOf(s.ctx, s.pair, s.other).IsZero())
	s.Require().Equal(before, testutil.ToFloat64(feeShares))

	s.Require().NoError(s.app.TokenKeeper.Transfer(s.ctx, s.pair, s.wallet, s.pair, e18(1)))
	_, _, err = s.app.PairKeeper.Burn(s.ctx, s.pair, s.wallet, s.wallet)
	s.Require().NoError(err)
	minted := s.app.PairKeeper.BalanceOf(s.ctx, s.pair, s.other)
	s.Require().True(minted.IsPositive())
	s.Require().InDelta(before+float64(minted.Int64()), testutil.ToFloat64(feeShares), 1)
}

func (s *KeeperTestSuite) TestNestedSyncMetricsFollowOuterSwap() {
	s.addLiquidity(e18(5), e18(10))
	tokenC := s.deployToken("TKC", totalSupply)
	otherPair := s.createPair(s.token0, tokenC)
	gauge := keeper.NewPairMetrics().Reserves.WithLabelValues(otherPair.Hex(), s.token0.Hex())
	pk := s.app.PairKeeper

	s.Require().NoError(s.app.TokenKeeper.Transfer(s.ctx, s.token0, s.wallet, otherPair, e18(7)))
	s.Require().NoError(s.app.TokenKeeper.Transfer(s.ctx, s.token0, s.wallet, s.other, e18(2)))
	before := testutil.ToFloat64(gauge)

	repay := math.ZeroInt()
	pk.RegisterCallee(s.other, types.FlashCalleeFunc(
		func(ctx sdk.Context, _ common.Address, _, _ math.Int, _ []byte) error {
			if err := pk.Sync(ctx, otherPair); err != nil {
				return err
			}
			if !repay.IsPositive() {
				return nil
			}
			return s.app.TokenKeeper.Transfer(ctx, s.token0, s.other, s.pair, repay)
		}))
	defer pk.RegisterCallee(s.other, nil)

	err := pk.Swap(s.ctx, s.pair, s.wallet, e18(1), math.ZeroInt(), s.other, []byte{0x01})
	s.Require().ErrorIs(err, types.ErrInsufficientInputAmount)
	pair, err := pk.GetPair(s.ctx, otherPair)
	s.Require().NoError(err)
	s.Require().True(pair.Reserve0.IsZero() && pair.Reserve1.IsZero())
	s.Require().Equal(before, testutil.ToFloat64(gauge))

	repay = mustInt("1003009027081243732")
	s.Require().NoError(pk.Swap(s.ctx, s.pair, s.wallet, e18(1), math.ZeroInt(), s.other, []byte{0x01}))
	s.Require().Equal(float64(7e18), testutil.ToFloat64(gauge))
}
