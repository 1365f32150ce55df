package cmd

import (
	"fmt"
	"math/big"
	"path/filepath"
	"time"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paw-chain/pawswap/app"
	"github.com/paw-chain/pawswap/pkg/scenario"
)

// SimulateCmd returns the command that runs a scenario file.
func SimulateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [scenario.yaml]",
		Short: "Run a scenario against a fresh application",
		Long: `Run the steps of a YAML scenario, one block per step, printing the
reserves of the touched pair after every step. With --db-backend goleveldb
state is written under <home>/data and the home must not hold state yet.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}

			logger, err := newLogger(v)
			if err != nil {
				return err
			}
			cfg, err := appConfig(v)
			if err != nil {
				return err
			}

			db, err := dbm.NewDB(app.Name, dbm.BackendType(v.GetString(flagDBBackend)), filepath.Join(v.GetString(flagHome), "data"))
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			a, err := app.NewPawSwapApp(logger, db, cfg)
			if err != nil {
				db.Close()
				return err
			}
			defer a.Close()

			start := time.Unix(v.GetInt64("start-time"), 0).UTC()
			results, err := scenario.NewRunner(a, start, cmd.OutOrStdout()).Run(s)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scenario %q: %d steps, app hash %X\n", s.Name, len(results), a.LastCommitID().Hash)
			return nil
		},
	}
	cmd.Flags().String(flagDBBackend, string(dbm.MemDBBackend), "database backend (memdb|goleveldb)")
	cmd.Flags().String(flagChainID, app.DefaultChainID, "chain id of the simulated blocks")
	cmd.Flags().Int64(flagEVMChainID, app.DefaultEVMChainID.Int64(), "chain id bound into permit signatures")
	cmd.Flags().String(flagFactory, "", "factory address (default derived)")
	cmd.Flags().Int64("start-time", 1_700_000_000, "unix time of the first block")
	return cmd
}

func appConfig(v *viper.Viper) (app.Config, error) {
	cfg := app.DefaultConfig()
	if chainID := v.GetString(flagChainID); chainID != "" {
		cfg.ChainID = chainID
	}
	if evmChainID := v.GetInt64(flagEVMChainID); evmChainID > 0 {
		cfg.EVMChainID = big.NewInt(evmChainID)
	}
	factory, err := factoryAddress(v)
	if err != nil {
		return app.Config{}, err
	}
	cfg.FactoryAddress = factory
	return cfg, nil
}
