package keeper_test

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/paw-chain/pawswap/x/pair/keeper"
	"github.com/paw-chain/pawswap/x/pair/types"
)

func (s *KeeperTestSuite) TestReentrancyRejected() {
	s.addLiquidity(e18(5), e18(10))
	pk := s.app.PairKeeper

	reentries := map[string]func(ctx sdk.Context) error{
		"sync": func(ctx sdk.Context) error {
			return pk.Sync(ctx, s.pair)
		},
		"skim": func(ctx sdk.Context) error {
			return pk.Skim(ctx, s.pair, s.other)
		},
		"mint": func(ctx sdk.Context) error {
			_, err := pk.Mint(ctx, s.pair, s.other, s.other)
			return err
		},
		"burn": func(ctx sdk.Context) error {
			_, _, err := pk.Burn(ctx, s.pair, s.other, s.other)
			return err
		},
		"swap": func(ctx sdk.Context) error {
			return pk.Swap(ctx, s.pair, s.other, math.ZeroInt(), math.OneInt(), s.wallet, nil)
		},
	}

	blocks := keeper.NewPairMetrics().ReentrancyBlocks.WithLabelValues(s.pair.Hex())
	for name, reenter := range reentries {
		s.Run(name, func() {
			before := testutil.ToFloat64(blocks)
			var innerErr error
			pk.RegisterCallee(s.other, types.FlashCalleeFunc(
				func(ctx sdk.Context, _ common.Address, _, _ math.Int, _ []byte) error {
					innerErr = reenter(ctx)
					return innerErr
				}))
			defer pk.RegisterCallee(s.other, nil)

			err := pk.Swap(s.ctx, s.pair, s.wallet, math.ZeroInt(), e18(1), s.other, []byte{0x01})
			s.Require().ErrorIs(innerErr, types.ErrLocked)
			s.Require().ErrorIs(err, types.ErrLocked)
			s.Require().Equal(before+1, testutil.ToFloat64(blocks))

			s.Require().True(s.balance(s.token1, s.other).IsZero())
			s.Require().False(pk.IsLocked(s.ctx, s.pair))
		})
	}

	// the pair is usable again afterwards
	s.Require().NoError(pk.Sync(s.ctx, s.pair))
}

func (s *KeeperTestSuite) TestReentryIntoOtherPairAllowed() {
	s.addLiquidity(e18(5), e18(10))
	tokenC := s.deployToken("TKC", totalSupply)
	otherPair := s.createPair(s.token0, tokenC)
	pk := s.app.PairKeeper

	s.Require().NoError(s.app.TokenKeeper.Transfer(s.ctx, s.token0, s.wallet, s.other, e18(1)))
	pk.RegisterCallee(s.other, types.FlashCalleeFunc(
		func(ctx sdk.Context, _ common.Address, amount0Out, _ math.Int, _ []byte) error {
			s.Require().False(pk.IsLocked(ctx, otherPair))
			if err := pk.Sync(ctx, otherPair); err != nil {
				return err
			}
			return s.app.TokenKeeper.Transfer(ctx, s.token0, s.other, s.pair, mustInt("1003009027081243732"))
		}))
	defer pk.RegisterCallee(s.other, nil)

	s.Require().NoError(pk.Swap(s.ctx, s.pair, s.wallet, e18(1), math.ZeroInt(), s.other, []byte{0x01}))
	s.Require().False(pk.IsLocked(s.ctx, s.pair))
	s.Require().False(pk.IsLocked(s.ctx, otherPair))
}

func (s *KeeperTestSuite) TestLockNeverPersists() {
	s.addLiquidity(e18(1), e18(1))
	s.Require().NoError(s.app.PairKeeper.Sync(s.ctx, s.pair))
	_, err := s.app.PairKeeper.Mint(s.ctx, s.pair, s.wallet, s.wallet)
	s.Require().Error(err)

	s.Require().False(s.app.PairKeeper.IsLocked(s.ctx, s.pair))
	s.Require().NoError(s.app.AssertInvariants(s.ctx))
}
