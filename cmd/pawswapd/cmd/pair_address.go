package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	factorytypes "github.com/paw-chain/pawswap/x/factory/types"
	pairtypes "github.com/paw-chain/pawswap/x/pair/types"
)

// PairAddressCmd returns the command that derives a pair address.
func PairAddressCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pair-address [token-a] [token-b]",
		Short: "Derive the deterministic address of the pair for two tokens",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := make([]common.Address, 2)
			for i, arg := range args {
				if !common.IsHexAddress(arg) {
					return fmt.Errorf("invalid token address %q", arg)
				}
				tokens[i] = common.HexToAddress(arg)
			}
			if tokens[0] == tokens[1] {
				return factorytypes.ErrIdenticalAddresses
			}
			factory, err := factoryAddress(v)
			if err != nil {
				return err
			}

			token0, token1 := pairtypes.SortTokens(tokens[0], tokens[1])
			fmt.Fprintf(cmd.OutOrStdout(), "token0: %s\ntoken1: %s\npair:   %s\n",
				token0.Hex(), token1.Hex(), factorytypes.PairAddress(factory, token0, token1).Hex())
			return nil
		},
	}
	cmd.Flags().String(flagFactory, factorytypes.DefaultFactoryAddress.Hex(), "factory address")
	return cmd
}

func factoryAddress(v *viper.Viper) (common.Address, error) {
	factory := v.GetString(flagFactory)
	if factory == "" {
		return factorytypes.DefaultFactoryAddress, nil
	}
	if !common.IsHexAddress(factory) {
		return common.Address{}, fmt.Errorf("invalid factory address %q", factory)
	}
	return common.HexToAddress(factory), nil
}
