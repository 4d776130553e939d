package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	network string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "vector-plus",
	Short: "Vector Plus - Advanced Trading Strategies for 1inch Limit Order Protocol",
	Long: `Vector Plus drafts and validates strategy configuration files for the
1inch Limit Order Protocol: volatility-adaptive sizing, TWAP execution,
options on execution rights, and combined strategies. Configs are plain
JSON files; nothing here talks to the chain.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "vector-plus.json", "tool configuration file path")
	rootCmd.PersistentFlags().StringVar(&network, "network", "", "network to use (mainnet, polygon, arbitrum)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
