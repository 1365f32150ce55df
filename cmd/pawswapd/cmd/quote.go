package cmd

import (
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/paw-chain/pawswap/pkg/scenario"
	pairtypes "github.com/paw-chain/pawswap/x/pair/types"
)

// QuoteCmd returns the quote command group.
func QuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote swap amounts against given reserves",
	}
	cmd.AddCommand(quoteOutCmd(), quoteInCmd())
	return cmd
}

func quoteOutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "out [amount-in] [reserve-in] [reserve-out]",
		Short: "Maximum output for an exact input, after the 0.3% fee",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amounts, err := parseAmounts(args)
			if err != nil {
				return err
			}
			out, err := pairtypes.GetAmountOut(amounts[0], amounts[1], amounts[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func quoteInCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "in [amount-out] [reserve-in] [reserve-out]",
		Short: "Minimum input for an exact output, after the 0.3% fee",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amounts, err := parseAmounts(args)
			if err != nil {
				return err
			}
			in, err := pairtypes.GetAmountIn(amounts[0], amounts[1], amounts[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), in)
			return nil
		},
	}
}

func parseAmounts(args []string) ([]math.Int, error) {
	amounts := make([]math.Int, len(args))
	for i, arg := range args {
		amount, err := scenario.ParseAmount(arg)
		if err != nil {
			return nil, err
		}
		amounts[i] = amount
	}
	return amounts, nil
}
