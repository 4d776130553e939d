package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Show examples and documentation",
	Run:   runExamples,
}

func init() {
	rootCmd.AddCommand(examplesCmd)
}

func runExamples(cmd *cobra.Command, args []string) {
	fmt.Println("Vector Plus examples")
	fmt.Println()

	fmt.Println("Volatility strategies:")
	fmt.Println("  vector-plus volatility create-config --current-volatility 500 --conservative-mode")
	fmt.Println("  vector-plus volatility validate volatility-config.json")
	fmt.Println("  vector-plus volatility calculate --amount 2.5 --config volatility-config.json")
	fmt.Println()

	fmt.Println("TWAP strategies:")
	fmt.Println("  vector-plus twap create-config --duration 120 --intervals 12 --randomize")
	fmt.Println("  vector-plus twap simulate --order-size 10.0 --config twap-config.json")
	fmt.Println()

	fmt.Println("Options strategies:")
	fmt.Println("  vector-plus options create-call --strike-price 2100 --expiration-hours 168 --premium 50")
	fmt.Println("  vector-plus options premium --current-price 2000 --strike-price 2100 --time-to-expiration 24")
	fmt.Println()

	fmt.Println("Combined strategies:")
	fmt.Println("  vector-plus combined create --twap-duration 180 --twap-intervals 18 --volatility-threshold 600")
	fmt.Println()

	fmt.Println("Configuration:")
	fmt.Println("  vector-plus config init --force")
	fmt.Println("  vector-plus config show")
	fmt.Println("  vector-plus --network polygon --verbose volatility create-config")
	fmt.Println()

	fmt.Println("Tips:")
	fmt.Println("  Use --verbose for detailed output")
	fmt.Println("  All configs are saved as JSON files for easy editing")
	fmt.Println("  Run 'vector-plus interactive' for guided setup")
}
