package keeper_test

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/paw-chain/pawswap/x/pair/types"
	tokentypes "github.com/paw-chain/pawswap/x/token/types"
)

func (s *KeeperTestSuite) TestMint() {
	amount0, amount1 := e18(1), e18(4)
	expectedLiquidity := e18(2)

	liquidity := s.addLiquidity(amount0, amount1)
	s.Require().Equal(expectedLiquidity.SubRaw(types.MinimumLiquidity).String(), liquidity.String())

	s.Require().Equal(expectedLiquidity.String(), s.app.PairKeeper.TotalSupply(s.ctx, s.pair).String())
	s.Require().Equal(expectedLiquidity.SubRaw(types.MinimumLiquidity).String(), s.app.PairKeeper.BalanceOf(s.ctx, s.pair, s.wallet).String())
	s.Require().Equal(int64(types.MinimumLiquidity), s.app.PairKeeper.BalanceOf(s.ctx, s.pair, common.Address{}).Int64())
	s.Require().Equal(amount0.String(), s.balance(s.token0, s.pair).String())
	s.Require().Equal(amount1.String(), s.balance(s.token1, s.pair).String())

	reserve0, reserve1, _ := s.reserves()
	s.Require().Equal(amount0.String(), reserve0.String())
	s.Require().Equal(amount1.String(), reserve1.String())

	events := s.ctx.EventManager().Events()
	sync := lastEvent(events, types.EventTypeSync)
	s.Require().Equal(amount0.String(), sync[types.AttributeKeyReserve0])
	s.Require().Equal(amount1.String(), sync[types.AttributeKeyReserve1])
	s.Require().Equal(types.TopicSync.Hex(), sync[types.AttributeKeyTopic])

	mint := lastEvent(events, types.EventTypeMint)
	s.Require().Equal(s.wallet.Hex(), mint[types.AttributeKeySender])
	s.Require().Equal(amount0.String(), mint[types.AttributeKeyAmount0])
	s.Require().Equal(amount1.String(), mint[types.AttributeKeyAmount1])
}

func (s *KeeperTestSuite) TestMintProportional() {
	s.addLiquidity(e18(1), e18(4))

	// the smaller pro-rata claim wins: 1e18 of token1 is worth half a share of 2e18
	liquidity := s.addLiquidity(e18(1), e18(1))
	s.Require().Equal(mustInt("500000000000000000").String(), liquidity.String())
	s.Require().Equal(mustInt("2500000000000000000").String(), s.app.PairKeeper.TotalSupply(s.ctx, s.pair).String())
}

func (s *KeeperTestSuite) TestMintInsufficientLiquidity() {
	s.transferToPair(s.token0, mustInt("1000"))
	s.transferToPair(s.token1, mustInt("1000"))

	_, err := s.app.PairKeeper.Mint(s.ctx, s.pair, s.wallet, s.wallet)
	s.Require().ErrorIs(err, types.ErrInsufficientLiquidityMinted)
	s.Require().True(s.app.PairKeeper.TotalSupply(s.ctx, s.pair).IsZero())
}

func (s *KeeperTestSuite) TestMintNothingDeposited() {
	s.addLiquidity(e18(1), e18(1))

	_, err := s.app.PairKeeper.Mint(s.ctx, s.pair, s.wallet, s.wallet)
	s.Require().ErrorIs(err, types.ErrInsufficientLiquidityMinted)
}

func (s *KeeperTestSuite) TestBurn() {
	amount0, amount1 := e18(3), e18(3)
	s.addLiquidity(amount0, amount1)

	expectedLiquidity := e18(3)
	s.Require().NoError(s.app.TokenKeeper.Transfer(s.ctx, s.pair, s.wallet, s.pair, expectedLiquidity.SubRaw(types.MinimumLiquidity)))

	out0, out1, err := s.app.PairKeeper.Burn(s.ctx, s.pair, s.wallet, s.wallet)
	s.Require().NoError(err)
	s.Require().Equal(amount0.SubRaw(1000).String(), out0.String())
	s.Require().Equal(amount1.SubRaw(1000).String(), out1.String())

	s.Require().True(s.app.PairKeeper.BalanceOf(s.ctx, s.pair, s.wallet).IsZero())
	s.Require().Equal(int64(types.MinimumLiquidity), s.app.PairKeeper.TotalSupply(s.ctx, s.pair).Int64())
	s.Require().Equal(int64(1000), s.balance(s.token0, s.pair).Int64())
	s.Require().Equal(int64(1000), s.balance(s.token1, s.pair).Int64())
	s.Require().Equal(totalSupply.SubRaw(1000).String(), s.balance(s.token0, s.wallet).String())
	s.Require().Equal(totalSupply.SubRaw(1000).String(), s.balance(s.token1, s.wallet).String())

	reserve0, reserve1, _ := s.reserves()
	s.Require().Equal(int64(1000), reserve0.Int64())
	s.Require().Equal(int64(1000), reserve1.Int64())

	burn := lastEvent(s.ctx.EventManager().Events(), types.EventTypeBurn)
	s.Require().Equal(out0.String(), burn[types.AttributeKeyAmount0])
	s.Require().Equal(out1.String(), burn[types.AttributeKeyAmount1])
	s.Require().Equal(s.wallet.Hex(), burn[types.AttributeKeyTo])
}

func (s *KeeperTestSuite) TestBurnDistributesDonations() {
	s.addLiquidity(e18(3), e18(3))
	s.transferToPair(s.token0, e18(1))

	s.Require().NoError(s.app.TokenKeeper.Transfer(s.ctx, s.pair, s.wallet, s.pair, e18(3).SubRaw(types.MinimumLiquidity)))
	out0, out1, err := s.app.PairKeeper.Burn(s.ctx, s.pair, s.wallet, s.wallet)
	s.Require().NoError(err)

	// the unsynced donation is paid out pro rata with the reserves
	s.Require().Equal("3999999999999998666", out0.String())
	s.Require().Equal(e18(3).SubRaw(1000).String(), out1.String())
}

func (s *KeeperTestSuite) TestBurnWithoutShares() {
	s.addLiquidity(e18(3), e18(3))

	_, _, err := s.app.PairKeeper.Burn(s.ctx, s.pair, s.wallet, s.wallet)
	s.Require().ErrorIs(err, types.ErrInsufficientLiquidityBurned)
}

func (s *KeeperTestSuite) TestBurnEmptyPair() {
	_, _, err := s.app.PairKeeper.Burn(s.ctx, s.pair, s.wallet, s.wallet)
	s.Require().ErrorIs(err, types.ErrInsufficientLiquidityBurned)
}

func (s *KeeperTestSuite) TestMinimumLiquidityIsUnspendable() {
	s.addLiquidity(e18(1), e18(1))

	err := s.app.TokenKeeper.Transfer(s.ctx, s.pair, common.Address{}, s.wallet, mustInt("1000"))
	s.Require().ErrorIs(err, tokentypes.ErrInvalidSender)
}

func (s *KeeperTestSuite) TestSkim() {
	s.addLiquidity(e18(5), e18(10))
	s.transferToPair(s.token0, e18(1))

	s.Require().NoError(s.app.PairKeeper.Skim(s.ctx, s.pair, s.other))
	s.Require().Equal(e18(1).String(), s.balance(s.token0, s.other).String())
	s.Require().True(s.balance(s.token1, s.other).IsZero())

	reserve0, reserve1, _ := s.reserves()
	s.Require().Equal(e18(5).String(), reserve0.String())
	s.Require().Equal(e18(10).String(), reserve1.String())
	s.Require().Equal(reserve0.String(), s.balance(s.token0, s.pair).String())
}

func (s *KeeperTestSuite) TestSyncAbsorbsDonation() {
	s.addLiquidity(e18(5), e18(10))
	s.transferToPair(s.token1, e18(2))

	s.Require().NoError(s.app.PairKeeper.Sync(s.ctx, s.pair))
	_, reserve1, _ := s.reserves()
	s.Require().Equal(e18(12).String(), reserve1.String())
}

func (s *KeeperTestSuite) TestSyncOverflow() {
	big0 := deployHugeToken(s, "HG0")
	big1 := deployHugeToken(s, "HG1")
	pair := s.createPair(big0, big1)

	tooMuch := types.MaxReserve.AddRaw(1)
	s.Require().NoError(s.app.TokenKeeper.Transfer(s.ctx, big0, s.wallet, pair, tooMuch))
	s.Require().NoError(s.app.TokenKeeper.Transfer(s.ctx, big1, s.wallet, pair, e18(1)))

	s.Require().ErrorIs(s.app.PairKeeper.Sync(s.ctx, pair), types.ErrOverflow)

	_, err := s.app.PairKeeper.Mint(s.ctx, pair, s.wallet, s.wallet)
	s.Require().ErrorIs(err, types.ErrOverflow)
	s.Require().True(s.app.PairKeeper.TotalSupply(s.ctx, pair).IsZero())

	// exactly 2^112 - 1 is accepted
	s.Require().NoError(s.app.TokenKeeper.Transfer(s.ctx, big0, pair, s.wallet, mustInt("1")))
	s.Require().NoError(s.app.PairKeeper.Sync(s.ctx, pair))
	record, err := s.app.PairKeeper.GetPair(s.ctx, pair)
	s.Require().NoError(err)
	reserve, err := record.ReserveFor(big0)
	s.Require().NoError(err)
	s.Require().Equal(types.MaxReserve.String(), reserve.String())
}

func deployHugeToken(s *KeeperTestSuite, symbol string) common.Address {
	return s.deployToken(symbol, types.MaxReserve.MulRaw(4))
}
