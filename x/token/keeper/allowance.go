package keeper

import (
	"context"
	"encoding/binary"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/paw-chain/pawswap/x/token/types"
)

// Allowance returns the amount spender may transfer out of owner's balance.
func (k Keeper) Allowance(ctx context.Context, token, owner, spender common.Address) math.Int {
	bz := k.getStore(ctx).Get(AllowanceKey(token, owner, spender))
	if bz == nil {
		return math.ZeroInt()
	}

	var amount math.Int
	if err := amount.Unmarshal(bz); err != nil {
		k.Logger(ctx).Error("corrupt allowance entry", "token", token.Hex(), "owner", owner.Hex(), "error", err)
		return math.ZeroInt()
	}
	return amount
}

// Approve sets spender's allowance over owner's tokens to amount.
func (k Keeper) Approve(ctx context.Context, token, owner, spender common.Address, amount math.Int) error {
	if err := types.ValidateAmount(amount); err != nil {
		return err
	}
	if !k.HasToken(ctx, token) {
		return types.ErrTokenNotFound.Wrapf("token %s", token)
	}
	return k.approve(ctx, token, owner, spender, amount)
}

func (k Keeper) approve(ctx context.Context, token, owner, spender common.Address, amount math.Int) error {
	store := k.getStore(ctx)
	key := AllowanceKey(token, owner, spender)
	if amount.IsZero() {
		store.Delete(key)
	} else {
		bz, err := amount.Marshal()
		if err != nil {
			return err
		}
		store.Set(key, bz)
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeApproval,
			sdk.NewAttribute(types.AttributeKeyToken, token.Hex()),
			sdk.NewAttribute(types.AttributeKeyOwner, owner.Hex()),
			sdk.NewAttribute(types.AttributeKeySpender, spender.Hex()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)
	return nil
}

// TransferFrom moves amount from from to to on behalf of spender, spending
// the allowance. An allowance of MaxAllowance is never decremented.
func (k Keeper) TransferFrom(ctx context.Context, token, spender, from, to common.Address, amount math.Int) error {
	if from == (common.Address{}) {
		return types.ErrInvalidSender.Wrap("transfer from the zero address")
	}
	if err := types.ValidateAmount(amount); err != nil {
		return err
	}
	if !k.HasToken(ctx, token) {
		return types.ErrTokenNotFound.Wrapf("token %s", token)
	}

	allowance := k.Allowance(ctx, token, from, spender)
	if !allowance.Equal(types.MaxAllowance) {
		if allowance.LT(amount) {
			return types.ErrInsufficientAllowance.Wrapf("%s may spend %s of %s, needs %s", spender, allowance, from, amount)
		}
		if err := k.approve(ctx, token, from, spender, allowance.Sub(amount)); err != nil {
			return err
		}
	}
	return k.transfer(ctx, token, from, to, amount)
}

// Nonces returns the next permit nonce of owner.
func (k Keeper) Nonces(ctx context.Context, token, owner common.Address) uint64 {
	bz := k.getStore(ctx).Get(NonceKey(token, owner))
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (k Keeper) setNonce(ctx context.Context, token, owner common.Address, nonce uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, nonce)
	k.getStore(ctx).Set(NonceKey(token, owner), bz)
}

// DomainSeparator returns the EIP-712 domain separator of token.
func (k Keeper) DomainSeparator(ctx context.Context, token common.Address) (common.Hash, error) {
	meta, err := k.GetToken(ctx, token)
	if err != nil {
		return common.Hash{}, err
	}
	return types.DomainSeparator(meta.Name, k.chainID, token)
}

// Permit sets spender's allowance from an owner-signed EIP-712 message.
// deadline is compared with the block time in seconds.
func (k Keeper) Permit(
	ctx context.Context,
	token, owner, spender common.Address,
	value, deadline math.Int,
	v uint8, r, s common.Hash,
) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if deadline.IsNil() || deadline.LT(math.NewInt(sdkCtx.BlockTime().Unix())) {
		return types.ErrExpired.Wrapf("deadline %s", deadline)
	}
	if err := types.ValidateAmount(value); err != nil {
		return err
	}
	if err := types.ValidateAmount(deadline); err != nil {
		return err
	}

	separator, err := k.DomainSeparator(ctx, token)
	if err != nil {
		return err
	}
	nonce := k.Nonces(ctx, token, owner)
	digest, err := types.PermitDigest(separator, owner, spender, value, nonce, deadline)
	if err != nil {
		return err
	}

	signer, err := types.RecoverSigner(digest, v, r, s)
	if err != nil {
		return err
	}
	if signer == (common.Address{}) || signer != owner {
		return types.ErrInvalidSignature.Wrapf("recovered %s, expected %s", signer, owner)
	}

	k.setNonce(ctx, token, owner, nonce+1)
	return k.approve(ctx, token, owner, spender, value)
}
