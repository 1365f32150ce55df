package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/paw-chain/pawswap/x/factory/types"
)

// FeeTo returns the protocol fee recipient. The zero address means the
// protocol fee is off.
func (k Keeper) FeeTo(ctx context.Context) common.Address {
	return common.BytesToAddress(k.getStore(ctx).Get(FeeToKey))
}

// FeeToSetter returns the account allowed to change the fee settings.
func (k Keeper) FeeToSetter(ctx context.Context) common.Address {
	return common.BytesToAddress(k.getStore(ctx).Get(FeeToSetterKey))
}

// SetFeeTo changes the protocol fee recipient. Only the fee setter may call it.
func (k Keeper) SetFeeTo(ctx context.Context, caller, feeTo common.Address) error {
	if caller != k.FeeToSetter(ctx) {
		return types.ErrForbidden.Wrapf("%s is not the fee setter", caller)
	}
	k.setAddress(ctx, FeeToKey, feeTo)
	emitAddressChange(ctx, types.EventTypeFeeToChanged, feeTo)
	return nil
}

// SetFeeToSetter hands the fee setter role to a new account. Only the current
// fee setter may call it.
func (k Keeper) SetFeeToSetter(ctx context.Context, caller, setter common.Address) error {
	if caller != k.FeeToSetter(ctx) {
		return types.ErrForbidden.Wrapf("%s is not the fee setter", caller)
	}
	k.setAddress(ctx, FeeToSetterKey, setter)
	emitAddressChange(ctx, types.EventTypeSetterChanged, setter)
	return nil
}

func (k Keeper) setAddress(ctx context.Context, key []byte, addr common.Address) {
	store := k.getStore(ctx)
	if addr == (common.Address{}) {
		store.Delete(key)
		return
	}
	store.Set(key, addr.Bytes())
}

func emitAddressChange(ctx context.Context, eventType string, addr common.Address) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(eventType, sdk.NewAttribute(types.AttributeKeyAddress, addr.Hex())),
	)
}
