package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/paw-chain/pawswap/x/token/types"
)

// CreateToken registers a new token ledger. The supply starts at zero and
// grows only through Mint.
func (k Keeper) CreateToken(ctx context.Context, token types.Token) error {
	token.TotalSupply = math.ZeroInt()
	if err := token.Validate(); err != nil {
		return err
	}
	if k.HasToken(ctx, token.Address) {
		return types.ErrTokenExists.Wrapf("token %s", token.Address)
	}
	if err := k.setToken(ctx, token); err != nil {
		return err
	}

	k.Logger(ctx).Debug("token created", "token", token.Address.Hex(), "symbol", token.Symbol)
	return nil
}

// HasToken reports whether a token exists at the address.
func (k Keeper) HasToken(ctx context.Context, token common.Address) bool {
	return k.getStore(ctx).Has(TokenKey(token))
}

// GetToken returns a token's metadata.
func (k Keeper) GetToken(ctx context.Context, address common.Address) (types.Token, error) {
	bz := k.getStore(ctx).Get(TokenKey(address))
	if bz == nil {
		return types.Token{}, types.ErrTokenNotFound.Wrapf("token %s", address)
	}

	var token types.Token
	if err := json.Unmarshal(bz, &token); err != nil {
		return types.Token{}, fmt.Errorf("failed to unmarshal token %s: %w", address, err)
	}
	return token, nil
}

func (k Keeper) setToken(ctx context.Context, token types.Token) error {
	bz, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token %s: %w", token.Address, err)
	}
	k.getStore(ctx).Set(TokenKey(token.Address), bz)
	return nil
}

// IterateTokens calls cb for every token until cb returns true.
func (k Keeper) IterateTokens(ctx context.Context, cb func(token types.Token) (stop bool)) error {
	iterator := storetypes.KVStorePrefixIterator(k.getStore(ctx), TokenKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var token types.Token
		if err := json.Unmarshal(iterator.Value(), &token); err != nil {
			return fmt.Errorf("failed to unmarshal token: %w", err)
		}
		if cb(token) {
			break
		}
	}
	return nil
}

// GetAllTokens returns every registered token.
func (k Keeper) GetAllTokens(ctx context.Context) ([]types.Token, error) {
	var tokens []types.Token
	err := k.IterateTokens(ctx, func(token types.Token) bool {
		tokens = append(tokens, token)
		return false
	})
	return tokens, err
}
