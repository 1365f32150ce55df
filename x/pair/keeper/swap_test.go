package keeper_test

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/paw-chain/pawswap/x/pair/types"
)

func (s *KeeperTestSuite) TestSwapInputPrice() {
	testCases := []struct {
		swapAmount, amount0, amount1 int64
		expectedOutput               string
	}{
		{1, 5, 10, "1662497915624478906"},
		{1, 10, 5, "453305446940074565"},
		{2, 5, 10, "2851015155847869602"},
		{2, 10, 5, "831248957812239453"},
		{1, 10, 10, "906610893880149131"},
		{1, 100, 100, "987158034397061298"},
		{1, 1000, 1000, "996006981039903216"},
	}

	for i, tc := range testCases {
		s.Run(fmt.Sprintf("case %d", i), func() {
			s.SetupTest()
			s.addLiquidity(e18(tc.amount0), e18(tc.amount1))
			s.transferToPair(s.token0, e18(tc.swapAmount))

			expected := mustInt(tc.expectedOutput)
			err := s.app.PairKeeper.Swap(s.ctx, s.pair, s.wallet, math.ZeroInt(), expected.AddRaw(1), s.wallet, nil)
			s.Require().ErrorIs(err, types.ErrK)

			s.Require().NoError(s.app.PairKeeper.Swap(s.ctx, s.pair, s.wallet, math.ZeroInt(), expected, s.wallet, nil))
		})
	}
}

func (s *KeeperTestSuite) TestSwapOptimistic() {
	testCases := []struct {
		output           string
		amount0, amount1 int64
		input            string
	}{
		// given amountIn, amountOut = floor(amountIn * .997)
		{"997000000000000000", 5, 10, "1000000000000000000"},
		{"997000000000000000", 10, 5, "1000000000000000000"},
		{"997000000000000000", 5, 5, "1000000000000000000"},
		// given amountOut, amountIn = ceiling(amountOut / .997)
		{"1000000000000000000", 5, 5, "1003009027081243732"},
	}

	for i, tc := range testCases {
		s.Run(fmt.Sprintf("case %d", i), func() {
			s.SetupTest()
			s.addLiquidity(e18(tc.amount0), e18(tc.amount1))
			s.transferToPair(s.token0, mustInt(tc.input))

			output := mustInt(tc.output)
			err := s.app.PairKeeper.Swap(s.ctx, s.pair, s.wallet, output.AddRaw(1), math.ZeroInt(), s.wallet, nil)
			s.Require().ErrorIs(err, types.ErrK)

			s.Require().NoError(s.app.PairKeeper.Swap(s.ctx, s.pair, s.wallet, output, math.ZeroInt(), s.wallet, nil))
		})
	}
}

func (s *KeeperTestSuite) TestSwapToken0() {
	amount0, amount1 := e18(5), e18(10)
	s.addLiquidity(amount0, amount1)

	swapAmount := e18(1)
	expectedOutput := mustInt("1662497915624478906")
	s.transferToPair(s.token0, swapAmount)
	s.Require().NoError(s.app.PairKeeper.Swap(s.ctx, s.pair, s.wallet, math.ZeroInt(), expectedOutput, s.wallet, nil))

	reserve0, reserve1, _ := s.reserves()
	s.Require().Equal(amount0.Add(swapAmount).String(), reserve0.String())
	s.Require().Equal(amount1.Sub(expectedOutput).String(), reserve1.String())
	s.Require().Equal(amount0.Add(swapAmount).String(), s.balance(s.token0, s.pair).String())
	s.Require().Equal(amount1.Sub(expectedOutput).String(), s.balance(s.token1, s.pair).String())
	s.Require().Equal(totalSupply.Sub(amount0).Sub(swapAmount).String(), s.balance(s.token0, s.wallet).String())
	s.Require().Equal(totalSupply.Sub(amount1).Add(expectedOutput).String(), s.balance(s.token1, s.wallet).String())

	swap := lastEvent(s.ctx.EventManager().Events(), types.EventTypeSwap)
	s.Require().Equal(s.wallet.Hex(), swap[types.AttributeKeySender])
	s.Require().Equal(swapAmount.String(), swap[types.AttributeKeyAmount0In])
	s.Require().Equal("0", swap[types.AttributeKeyAmount1In])
	s.Require().Equal("0", swap[types.AttributeKeyAmount0Out])
	s.Require().Equal(expectedOutput.String(), swap[types.AttributeKeyAmount1Out])
	s.Require().Equal(s.wallet.Hex(), swap[types.AttributeKeyTo])
	s.Require().Equal(types.TopicSwap.Hex(), swap[types.AttributeKeyTopic])
}

func (s *KeeperTestSuite) TestSwapToken1() {
	amount0, amount1 := e18(5), e18(10)
	s.addLiquidity(amount0, amount1)

	swapAmount := e18(1)
	expectedOutput := mustInt("453305446940074565")
	s.transferToPair(s.token1, swapAmount)
	s.Require().NoError(s.app.PairKeeper.Swap(s.ctx, s.pair, s.wallet, expectedOutput, math.ZeroInt(), s.wallet, nil))

	reserve0, reserve1, _ := s.reserves()
	s.Require().Equal(amount0.Sub(expectedOutput).String(), reserve0.String())
	s.Require().Equal(amount1.Add(swapAmount).String(), reserve1.String())
	s.Require().Equal(totalSupply.Sub(amount0).Add(expectedOutput).String(), s.balance(s.token0, s.wallet).String())
	s.Require().Equal(totalSupply.Sub(amount1).Sub(swapAmount).String(), s.balance(s.token1, s.wallet).String())
}

func (s *KeeperTestSuite) TestSwapRejections() {
	s.addLiquidity(e18(5), e18(10))
	keeper := s.app.PairKeeper

	s.Run("no output", func() {
		err := keeper.Swap(s.ctx, s.pair, s.wallet, math.ZeroInt(), math.ZeroInt(), s.wallet, nil)
		s.Require().ErrorIs(err, types.ErrInsufficientOutputAmount)
	})
	s.Run("negative output", func() {
		err := keeper.Swap(s.ctx, s.pair, s.wallet, math.NewInt(-1), e18(1), s.wallet, nil)
		s.Require().ErrorIs(err, types.ErrInsufficientOutputAmount)
	})
	s.Run("output equals reserve", func() {
		err := keeper.Swap(s.ctx, s.pair, s.wallet, e18(5), math.ZeroInt(), s.wallet, nil)
		s.Require().ErrorIs(err, types.ErrInsufficientLiquidity)
	})
	s.Run("recipient is a pair token", func() {
		err := keeper.Swap(s.ctx, s.pair, s.wallet, e18(1), math.ZeroInt(), s.token0, nil)
		s.Require().ErrorIs(err, types.ErrInvalidRecipient)
		err = keeper.Swap(s.ctx, s.pair, s.wallet, e18(1), math.ZeroInt(), s.token1, nil)
		s.Require().ErrorIs(err, types.ErrInvalidRecipient)
	})
	s.Run("no input", func() {
		err := keeper.Swap(s.ctx, s.pair, s.wallet, e18(1), math.ZeroInt(), s.wallet, nil)
		s.Require().ErrorIs(err, types.ErrInsufficientInputAmount)
	})
	s.Run("data without callee", func() {
		err := keeper.Swap(s.ctx, s.pair, s.wallet, e18(1), math.ZeroInt(), s.other, []byte{0x01})
		s.Require().ErrorIs(err, types.ErrInvalidCallee)
	})
	s.Run("unknown pair", func() {
		err := keeper.Swap(s.ctx, s.other, s.wallet, e18(1), math.ZeroInt(), s.wallet, nil)
		s.Require().ErrorIs(err, types.ErrPairNotFound)
	})

	// none of the rejected swaps left a trace
	reserve0, reserve1, _ := s.reserves()
	s.Require().Equal(e18(5).String(), reserve0.String())
	s.Require().Equal(e18(10).String(), reserve1.String())
	s.Require().Equal(e18(5).String(), s.balance(s.token0, s.pair).String())
	s.Require().True(s.balance(s.token0, s.other).IsZero())
	s.Require().Zero(countEvents(s.ctx.EventManager().Events(), types.EventTypeSwap))
	s.Require().False(keeper.IsLocked(s.ctx, s.pair))
}

func (s *KeeperTestSuite) TestFlashSwapRepaidInSameToken() {
	s.addLiquidity(e18(5), e18(10))
	s.Require().NoError(s.app.TokenKeeper.Transfer(s.ctx, s.token0, s.wallet, s.other, e18(1)))

	borrowed := e18(1)
	repayment := mustInt("1003009027081243732")
	var calls int
	s.app.PairKeeper.RegisterCallee(s.other, types.FlashCalleeFunc(
		func(ctx sdk.Context, sender common.Address, amount0Out, amount1Out math.Int, data []byte) error {
			calls++
			s.Require().Equal(s.wallet, sender)
			s.Require().Equal(borrowed.String(), amount0Out.String())
			s.Require().True(amount1Out.IsZero())
			s.Require().Equal([]byte("flash"), data)
			s.Require().True(s.app.PairKeeper.IsLocked(ctx, s.pair))
			return s.app.TokenKeeper.Transfer(ctx, s.token0, s.other, s.pair, repayment)
		}))
	defer s.app.PairKeeper.RegisterCallee(s.other, nil)

	s.Require().NoError(s.app.PairKeeper.Swap(s.ctx, s.pair, s.wallet, borrowed, math.ZeroInt(), s.other, []byte("flash")))
	s.Require().Equal(1, calls)

	reserve0, _, _ := s.reserves()
	s.Require().Equal(e18(5).Sub(borrowed).Add(repayment).String(), reserve0.String())
	s.Require().Equal(e18(2).Sub(repayment).String(), s.balance(s.token0, s.other).String())
	s.Require().False(s.app.PairKeeper.IsLocked(s.ctx, s.pair))
}

func (s *KeeperTestSuite) TestFlashSwapUnderpaidReverts() {
	s.addLiquidity(e18(5), e18(10))
	s.Require().NoError(s.app.TokenKeeper.Transfer(s.ctx, s.token0, s.wallet, s.other, e18(1)))
	eventsBefore := len(s.ctx.EventManager().Events())

	s.app.PairKeeper.RegisterCallee(s.other, types.FlashCalleeFunc(
		func(ctx sdk.Context, _ common.Address, amount0Out, _ math.Int, _ []byte) error {
			return s.app.TokenKeeper.Transfer(ctx, s.token0, s.other, s.pair, amount0Out)
		}))
	defer s.app.PairKeeper.RegisterCallee(s.other, nil)

	err := s.app.PairKeeper.Swap(s.ctx, s.pair, s.wallet, e18(1), math.ZeroInt(), s.other, []byte{0x01})
	s.Require().ErrorIs(err, types.ErrK)

	// the optimistic transfer and the callee's repayment were both discarded
	s.Require().Equal(e18(1).String(), s.balance(s.token0, s.other).String())
	s.Require().Equal(e18(5).String(), s.balance(s.token0, s.pair).String())
	reserve0, _, _ := s.reserves()
	s.Require().Equal(e18(5).String(), reserve0.String())
	s.Require().Equal(eventsBefore, len(s.ctx.EventManager().Events()))
}

func (s *KeeperTestSuite) TestFlashSwapCalleeErrorReverts() {
	s.addLiquidity(e18(5), e18(10))

	calleeErr := fmt.Errorf("callee refused")
	s.app.PairKeeper.RegisterCallee(s.other, types.FlashCalleeFunc(
		func(sdk.Context, common.Address, math.Int, math.Int, []byte) error {
			return calleeErr
		}))
	defer s.app.PairKeeper.RegisterCallee(s.other, nil)

	err := s.app.PairKeeper.Swap(s.ctx, s.pair, s.wallet, math.ZeroInt(), e18(1), s.other, []byte{0x01})
	s.Require().ErrorIs(err, calleeErr)
	s.Require().True(s.balance(s.token1, s.other).IsZero())
}
