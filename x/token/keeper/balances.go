package keeper

import (
	"context"
	"math/big"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/paw-chain/pawswap/x/token/types"
)

// BalanceOf returns owner's balance of token. Unknown tokens and accounts
// have a zero balance.
func (k Keeper) BalanceOf(ctx context.Context, token, owner common.Address) math.Int {
	bz := k.getStore(ctx).Get(BalanceKey(token, owner))
	if bz == nil {
		return math.ZeroInt()
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		k.Logger(ctx).Error("corrupt balance entry", "token", token.Hex(), "owner", owner.Hex(), "error", err)
		return math.ZeroInt()
	}
	return amount
}

func (k Keeper) setBalance(ctx context.Context, token, owner common.Address, amount math.Int) error {
	store := k.getStore(ctx)
	key := BalanceKey(token, owner)
	if amount.IsZero() {
		store.Delete(key)
		return nil
	}

	bz, err := amount.Marshal()
	if err != nil {
		return err
	}
	store.Set(key, bz)
	return nil
}

// TotalSupply returns the token's total supply, zero for unknown tokens.
func (k Keeper) TotalSupply(ctx context.Context, token common.Address) math.Int {
	meta, err := k.GetToken(ctx, token)
	if err != nil || meta.TotalSupply.IsNil() {
		return math.ZeroInt()
	}
	return meta.TotalSupply
}

// Mint creates amount new tokens in to's balance. Only the token's minter
// may mint. Minting to the zero address is allowed and makes the amount
// permanently unspendable.
func (k Keeper) Mint(ctx context.Context, token, minter, to common.Address, amount math.Int) error {
	if err := types.ValidateAmount(amount); err != nil {
		return err
	}
	meta, err := k.GetToken(ctx, token)
	if err != nil {
		return err
	}
	if meta.Minter != minter {
		return types.ErrUnauthorized.Wrapf("%s cannot mint %s", minter, meta.Symbol)
	}

	supply := new(big.Int).Add(meta.TotalSupply.BigInt(), amount.BigInt())
	if supply.Cmp(types.MaxAllowance.BigInt()) > 0 {
		return types.ErrInvalidAmount.Wrapf("total supply of %s would exceed uint256", meta.Symbol)
	}
	meta.TotalSupply = math.NewIntFromBigInt(supply)
	if err := k.setToken(ctx, meta); err != nil {
		return err
	}
	if err := k.setBalance(ctx, token, to, k.BalanceOf(ctx, token, to).Add(amount)); err != nil {
		return err
	}

	emitTransfer(ctx, token, common.Address{}, to, amount)
	return nil
}

// Burn destroys amount tokens from from's balance. Only the token's minter
// may burn.
func (k Keeper) Burn(ctx context.Context, token, minter, from common.Address, amount math.Int) error {
	if err := types.ValidateAmount(amount); err != nil {
		return err
	}
	meta, err := k.GetToken(ctx, token)
	if err != nil {
		return err
	}
	if meta.Minter != minter {
		return types.ErrUnauthorized.Wrapf("%s cannot burn %s", minter, meta.Symbol)
	}

	balance := k.BalanceOf(ctx, token, from)
	if balance.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("burn %s from %s: balance %s", amount, from, balance)
	}
	meta.TotalSupply = meta.TotalSupply.Sub(amount)
	if err := k.setToken(ctx, meta); err != nil {
		return err
	}
	if err := k.setBalance(ctx, token, from, balance.Sub(amount)); err != nil {
		return err
	}

	emitTransfer(ctx, token, from, common.Address{}, amount)
	return nil
}

// Transfer moves amount of token from from to to. The zero address can never
// send.
func (k Keeper) Transfer(ctx context.Context, token, from, to common.Address, amount math.Int) error {
	if from == (common.Address{}) {
		return types.ErrInvalidSender.Wrap("transfer from the zero address")
	}
	if err := types.ValidateAmount(amount); err != nil {
		return err
	}
	if !k.HasToken(ctx, token) {
		return types.ErrTokenNotFound.Wrapf("token %s", token)
	}
	return k.transfer(ctx, token, from, to, amount)
}

func (k Keeper) transfer(ctx context.Context, token, from, to common.Address, amount math.Int) error {
	fromBalance := k.BalanceOf(ctx, token, from)
	if fromBalance.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf("%s has %s, needs %s", from, fromBalance, amount)
	}

	if from != to {
		if err := k.setBalance(ctx, token, from, fromBalance.Sub(amount)); err != nil {
			return err
		}
		if err := k.setBalance(ctx, token, to, k.BalanceOf(ctx, token, to).Add(amount)); err != nil {
			return err
		}
	}

	emitTransfer(ctx, token, from, to, amount)
	return nil
}

func emitTransfer(ctx context.Context, token, from, to common.Address, amount math.Int) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransfer,
			sdk.NewAttribute(types.AttributeKeyToken, token.Hex()),
			sdk.NewAttribute(types.AttributeKeyFrom, from.Hex()),
			sdk.NewAttribute(types.AttributeKeyTo, to.Hex()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
}
