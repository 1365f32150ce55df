package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/paw-chain/pawswap/app"
)

const (
	flagHome        = "home"
	flagLogLevel    = "log-level"
	flagMetricsPort = "metrics-port"
	flagChainID     = "chain-id"
	flagEVMChainID  = "evm-chain-id"
	flagFactory     = "factory"
	flagDBBackend   = "db-backend"

	envPrefix = "PAWSWAP"
)

// NewRootCmd creates the root command for pawswapd. Flags can also be set
// through PAWSWAP_* environment variables and $HOME/config/app.toml.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "pawswapd",
		Short: "PawSwap constant product pair engine",
		Long: `pawswapd quotes swaps, derives pair addresses and runs scripted
scenarios against the PawSwap token, pair and factory modules.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// set the default command outputs
			cmd.SetOut(cmd.OutOrStdout())
			cmd.SetErr(cmd.ErrOrStderr())
			return initConfig(v, cmd)
		},
	}

	rootCmd.PersistentFlags().String(flagHome, app.DefaultNodeHome, "directory for config and data")
	rootCmd.PersistentFlags().String(flagLogLevel, zerolog.InfoLevel.String(), "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().Int(flagMetricsPort, 0, "serve Prometheus metrics on this port (0 disables)")

	rootCmd.AddCommand(
		QuoteCmd(),
		PairAddressCmd(v),
		SimulateCmd(v),
	)
	return rootCmd
}

// initConfig binds flags and environment variables into v and reads the
// optional config file under the home directory.
func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	configFile := filepath.Join(v.GetString(flagHome), "config", "app.toml")
	if _, err := os.Stat(configFile); err == nil {
		v.SetConfigFile(configFile)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read %s: %w", configFile, err)
		}
	}
	return nil
}

// newLogger builds the process logger at the configured level.
func newLogger(v *viper.Viper) (log.Logger, error) {
	level, err := zerolog.ParseLevel(v.GetString(flagLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	return log.NewLogger(os.Stderr, log.LevelOption(level)), nil
}
