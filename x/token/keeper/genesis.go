package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/paw-chain/pawswap/x/token/types"
)

// InitGenesis initializes the token module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid token genesis: %w", err)
	}

	for _, token := range genState.Tokens {
		if err := k.setToken(ctx, token); err != nil {
			return fmt.Errorf("failed to set token %s: %w", token.Address, err)
		}
	}

	for _, bal := range genState.Balances {
		if err := k.setBalance(ctx, bal.Token, bal.Owner, bal.Amount); err != nil {
			return fmt.Errorf("failed to set balance of %s: %w", bal.Owner, err)
		}
	}

	for _, allowance := range genState.Allowances {
		if err := k.approve(ctx, allowance.Token, allowance.Owner, allowance.Spender, allowance.Amount); err != nil {
			return fmt.Errorf("failed to set allowance of %s: %w", allowance.Owner, err)
		}
	}

	for _, nonce := range genState.Nonces {
		k.setNonce(ctx, nonce.Token, nonce.Owner, nonce.Nonce)
	}
	return nil
}

// ExportGenesis returns the token module's exported genesis
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	genesis := types.DefaultGenesis()

	tokens, err := k.GetAllTokens(ctx)
	if err != nil {
		return nil, err
	}
	genesis.Tokens = append(genesis.Tokens, tokens...)

	store := k.getStore(ctx)
	balanceIter := storetypes.KVStorePrefixIterator(store, BalanceKeyPrefix)
	defer balanceIter.Close()
	for ; balanceIter.Valid(); balanceIter.Next() {
		key := balanceIter.Key()[len(BalanceKeyPrefix):]
		bal := types.Balance{
			Token: common.BytesToAddress(key[:common.AddressLength]),
			Owner: common.BytesToAddress(key[common.AddressLength:]),
		}
		if err := bal.Amount.Unmarshal(balanceIter.Value()); err != nil {
			return nil, fmt.Errorf("failed to unmarshal balance: %w", err)
		}
		genesis.Balances = append(genesis.Balances, bal)
	}

	allowanceIter := storetypes.KVStorePrefixIterator(store, AllowanceKeyPrefix)
	defer allowanceIter.Close()
	for ; allowanceIter.Valid(); allowanceIter.Next() {
		key := allowanceIter.Key()[len(AllowanceKeyPrefix):]
		allowance := types.Allowance{
			Token:   common.BytesToAddress(key[:common.AddressLength]),
			Owner:   common.BytesToAddress(key[common.AddressLength : 2*common.AddressLength]),
			Spender: common.BytesToAddress(key[2*common.AddressLength:]),
		}
		if err := allowance.Amount.Unmarshal(allowanceIter.Value()); err != nil {
			return nil, fmt.Errorf("failed to unmarshal allowance: %w", err)
		}
		genesis.Allowances = append(genesis.Allowances, allowance)
	}

	nonceIter := storetypes.KVStorePrefixIterator(store, NonceKeyPrefix)
	defer nonceIter.Close()
	for ; nonceIter.Valid(); nonceIter.Next() {
		key := nonceIter.Key()[len(NonceKeyPrefix):]
		genesis.Nonces = append(genesis.Nonces, types.Nonce{
			Token: common.BytesToAddress(key[:common.AddressLength]),
			Owner: common.BytesToAddress(key[common.AddressLength:]),
			Nonce: binary.BigEndian.Uint64(nonceIter.Value()),
		})
	}

	return genesis, nil
}
