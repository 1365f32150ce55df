package main

import (
	"os"

	"github.com/paw-chain/pawswap/cmd/pawswapd/cmd"
)

func main() {
	home := resolveNodeHome(os.Args[1:])

	// Start Prometheus metrics server when a port is configured.
	if port := loadMetricsPort(home); port > 0 {
		StartPrometheusServer(port)
	}

	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
