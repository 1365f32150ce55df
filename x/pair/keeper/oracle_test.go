package keeper_test

import (
	"math/big"
	"time"

	"cosmossdk.io/math"

	keepertest "github.com/paw-chain/pawswap/testutil/keeper"
	"github.com/paw-chain/pawswap/x/pair/types"
)

// encodePrice returns (reserve1/reserve0, reserve0/reserve1) as UQ112x112.
func encodePrice(reserve0, reserve1 math.Int) (*big.Int, *big.Int) {
	price0 := new(big.Int).Lsh(reserve1.BigInt(), 112)
	price0.Quo(price0, reserve0.BigInt())
	price1 := new(big.Int).Lsh(reserve0.BigInt(), 112)
	price1.Quo(price1, reserve1.BigInt())
	return price0, price1
}

func mulInt(x *big.Int, n int64) *big.Int {
	return new(big.Int).Mul(x, big.NewInt(n))
}

func (s *KeeperTestSuite) TestPriceCumulativeLast() {
	amount0, amount1 := e18(3), e18(3)
	s.addLiquidity(amount0, amount1)
	_, _, blockTimestamp := s.reserves()

	s.Require().NoError(s.app.PairKeeper.Sync(s.at(time.Second), s.pair))
	initial0, initial1 := encodePrice(amount0, amount1)
	pair, err := s.app.PairKeeper.GetPair(s.ctx, s.pair)
	s.Require().NoError(err)
	s.Require().Equal(initial0.String(), pair.Price0CumulativeLast.String())
	s.Require().Equal(initial1.String(), pair.Price1CumulativeLast.String())
	s.Require().Equal(blockTimestamp+1, pair.BlockTimestampLast)

	// swap to a new price eagerly instead of syncing
	s.transferToPair(s.token0, e18(3))
	s.Require().NoError(s.app.PairKeeper.Swap(s.at(10*time.Second), s.pair, s.wallet, math.ZeroInt(), e18(1), s.wallet, nil))
	pair, err = s.app.PairKeeper.GetPair(s.ctx, s.pair)
	s.Require().NoError(err)
	s.Require().Equal(mulInt(initial0, 10).String(), pair.Price0CumulativeLast.String())
	s.Require().Equal(mulInt(initial1, 10).String(), pair.Price1CumulativeLast.String())
	s.Require().Equal(blockTimestamp+10, pair.BlockTimestampLast)

	s.Require().NoError(s.app.PairKeeper.Sync(s.at(20*time.Second), s.pair))
	new0, new1 := encodePrice(e18(6), e18(2))
	pair, err = s.app.PairKeeper.GetPair(s.ctx, s.pair)
	s.Require().NoError(err)
	s.Require().Equal(new(big.Int).Add(mulInt(initial0, 10), mulInt(new0, 10)).String(), pair.Price0CumulativeLast.String())
	s.Require().Equal(new(big.Int).Add(mulInt(initial1, 10), mulInt(new1, 10)).String(), pair.Price1CumulativeLast.String())
	s.Require().Equal(blockTimestamp+20, pair.BlockTimestampLast)
}

func (s *KeeperTestSuite) TestAccumulatorIgnoresSameBlockUpdates() {
	s.addLiquidity(e18(3), e18(3))

	// both updates happen at the genesis block time
	s.transferToPair(s.token0, e18(3))
	s.Require().NoError(s.app.PairKeeper.Swap(s.ctx, s.pair, s.wallet, math.ZeroInt(), e18(1), s.wallet, nil))
	s.Require().NoError(s.app.PairKeeper.Sync(s.ctx, s.pair))

	pair, err := s.app.PairKeeper.GetPair(s.ctx, s.pair)
	s.Require().NoError(err)
	s.Require().True(pair.Price0CumulativeLast.IsZero())
	s.Require().True(pair.Price1CumulativeLast.IsZero())
}

func (s *KeeperTestSuite) TestCurrentCumulativePrices() {
	s.addLiquidity(e18(6), e18(2))
	s.Require().NoError(s.app.PairKeeper.Sync(s.at(5*time.Second), s.pair))
	start, err := s.app.PairKeeper.GetPair(s.ctx, s.pair)
	s.Require().NoError(err)

	ctx := s.at(35 * time.Second)
	price0, price1, ts, err := s.app.PairKeeper.CurrentCumulativePrices(ctx, s.pair)
	s.Require().NoError(err)

	// the counterfactual matches what a sync would record
	s.Require().NoError(s.app.PairKeeper.Sync(ctx, s.pair))
	pair, err := s.app.PairKeeper.GetPair(s.ctx, s.pair)
	s.Require().NoError(err)
	s.Require().Equal(pair.Price0CumulativeLast.String(), price0.String())
	s.Require().Equal(pair.Price1CumulativeLast.String(), price1.String())
	s.Require().Equal(pair.BlockTimestampLast, ts)

	// averaging over the window recovers the spot price of 2/6
	average, err := types.AveragePrice(start.Price0CumulativeLast, price0, ts-start.BlockTimestampLast)
	s.Require().NoError(err)
	spot0, _ := encodePrice(e18(6), e18(2))
	s.Require().Equal(spot0.String(), average.ToBig().String())
	s.Require().Equal(uint32(30), ts-start.BlockTimestampLast)
}

func (s *KeeperTestSuite) TestTimestampWrapsModulo32Bits() {
	s.addLiquidity(e18(1), e18(4))

	// jump past 2^32 seconds; elapsed time is still computed with wrap-around
	wrapped := time.Unix(1<<32+10, 0)
	s.Require().NoError(s.app.PairKeeper.Sync(s.ctx.WithBlockTime(wrapped), s.pair))

	pair, err := s.app.PairKeeper.GetPair(s.ctx, s.pair)
	s.Require().NoError(err)
	s.Require().Equal(uint32(10), pair.BlockTimestampLast)

	elapsed := uint32(10) - uint32(keepertest.GenesisTime.Unix())
	price0, _ := encodePrice(e18(1), e18(4))
	s.Require().Equal(new(big.Int).Mul(price0, big.NewInt(int64(elapsed))).String(), pair.Price0CumulativeLast.String())
}
