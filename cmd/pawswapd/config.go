package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/paw-chain/pawswap/app"
)

// resolveNodeHome returns the configured home directory.
// It honors PAWSWAP_HOME and the --home flag if provided.
func resolveNodeHome(args []string) string {
	if home := os.Getenv("PAWSWAP_HOME"); home != "" {
		return home
	}

	for i, arg := range args {
		if strings.HasPrefix(arg, "--home=") {
			return strings.SplitN(arg, "=", 2)[1]
		}
		if arg == "--home" && i+1 < len(args) {
			return args[i+1]
		}
	}

	return app.DefaultNodeHome
}

// loadMetricsPort reads the metrics port from the --metrics-port flag,
// PAWSWAP_METRICS_PORT or telemetry.metrics-port in config/app.toml, in that
// order. Zero disables the metrics server.
func loadMetricsPort(home string) int {
	for i, arg := range os.Args[1:] {
		if strings.HasPrefix(arg, "--metrics-port=") {
			return parsePort(strings.SplitN(arg, "=", 2)[1])
		}
		if arg == "--metrics-port" && i+2 < len(os.Args) {
			return parsePort(os.Args[i+2])
		}
	}

	if env := os.Getenv("PAWSWAP_METRICS_PORT"); env != "" {
		return parsePort(env)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(filepath.Join(home, "config", "app.toml"))
	if err := v.ReadInConfig(); err != nil {
		return 0
	}
	return parsePort(v.GetString("telemetry.metrics-port"))
}

func parsePort(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	port, err := strconv.Atoi(value)
	if err != nil || port <= 0 || port > 65535 {
		return 0
	}

	return port
}
