package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Giri-Aayush/1inch-lop/internal/combined"
	"github.com/Giri-Aayush/1inch-lop/internal/logger"
	"github.com/spf13/cobra"
)

var (
	combDuration  uint64
	combIntervals uint32
	combThreshold uint64
	combOutput    string
)

var combinedCmd = &cobra.Command{
	Use:   "combined",
	Short: "Combined TWAP + Volatility strategies",
}

var combinedCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create combined TWAP + Volatility strategy",
	RunE:  runCombinedCreate,
}

func init() {
	combinedCreateCmd.Flags().Uint64Var(&combDuration, "twap-duration", 0, "TWAP duration in minutes (required)")
	combinedCreateCmd.Flags().Uint32Var(&combIntervals, "twap-intervals", 0, "TWAP intervals (required)")
	combinedCreateCmd.Flags().Uint64Var(&combThreshold, "volatility-threshold", 0, "volatility threshold in basis points (required)")
	combinedCreateCmd.Flags().StringVarP(&combOutput, "output", "o", "combined-strategy.json", "output file")
	combinedCreateCmd.MarkFlagRequired("twap-duration")
	combinedCreateCmd.MarkFlagRequired("twap-intervals")
	combinedCreateCmd.MarkFlagRequired("volatility-threshold")

	combinedCmd.AddCommand(combinedCreateCmd)
	rootCmd.AddCommand(combinedCmd)
}

func runCombinedCreate(cmd *cobra.Command, args []string) error {
	log := logger.Must(verbose)
	defer log.Sync()

	toolCfg, err := loadToolConfig()
	if err != nil {
		return err
	}

	cfg, err := combined.Build(combDuration, combIntervals, combThreshold, time.Now())
	if err != nil {
		return err
	}
	if err := combined.Save(combOutput, cfg); err != nil {
		return err
	}

	if data, err := json.MarshalIndent(cfg, "", "  "); err == nil {
		archiveConfigCopy(log, toolCfg, "combined", combOutput, data)
	}

	fmt.Printf("Created combined strategy: %s\n", combOutput)
	fmt.Printf("  Strategy id:          %s\n", cfg.StrategyID)
	fmt.Printf("  TWAP duration:        %d minutes\n", combDuration)
	fmt.Printf("  TWAP intervals:       %d\n", combIntervals)
	fmt.Printf("  Volatility threshold: %dbps\n", combThreshold)

	return nil
}
