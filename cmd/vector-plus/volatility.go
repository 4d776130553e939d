package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Giri-Aayush/1inch-lop/internal/core"
	"github.com/Giri-Aayush/1inch-lop/internal/logger"
	"github.com/Giri-Aayush/1inch-lop/internal/volatility"
	"github.com/spf13/cobra"
)

var (
	volBaseline     uint64
	volCurrent      uint64
	volMaxSize      float64
	volMinSize      float64
	volConservative bool
	volOutput       string

	volCalcAmount float64
	volCalcConfig string
)

var volatilityCmd = &cobra.Command{
	Use:   "volatility",
	Short: "Volatility-based execution strategies",
}

var volatilityCreateCmd = &cobra.Command{
	Use:   "create-config",
	Short: "Generate volatility configuration file",
	RunE:  runVolatilityCreate,
}

var volatilityValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate volatility configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runVolatilityValidate,
}

var volatilityCalculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Calculate volatility adjustment for given amount",
	RunE:  runVolatilityCalculate,
}

func init() {
	volatilityCreateCmd.Flags().Uint64Var(&volBaseline, "baseline-volatility", 300, "baseline volatility in basis points")
	volatilityCreateCmd.Flags().Uint64Var(&volCurrent, "current-volatility", 350, "current market volatility in basis points")
	volatilityCreateCmd.Flags().Float64Var(&volMaxSize, "max-execution-size", 5.0, "maximum execution size in ETH")
	volatilityCreateCmd.Flags().Float64Var(&volMinSize, "min-execution-size", 0.1, "minimum execution size in ETH")
	volatilityCreateCmd.Flags().BoolVar(&volConservative, "conservative-mode", false, "enable conservative mode")
	volatilityCreateCmd.Flags().StringVarP(&volOutput, "output", "o", "volatility-config.json", "output file path")

	volatilityCalculateCmd.Flags().Float64Var(&volCalcAmount, "amount", 0, "base amount in ETH (required)")
	volatilityCalculateCmd.Flags().StringVar(&volCalcConfig, "config", "volatility-config.json", "volatility config file")
	volatilityCalculateCmd.MarkFlagRequired("amount")

	volatilityCmd.AddCommand(volatilityCreateCmd)
	volatilityCmd.AddCommand(volatilityValidateCmd)
	volatilityCmd.AddCommand(volatilityCalculateCmd)
	rootCmd.AddCommand(volatilityCmd)
}

func runVolatilityCreate(cmd *cobra.Command, args []string) error {
	log := logger.Must(verbose)
	defer log.Sync()

	toolCfg, err := loadToolConfig()
	if err != nil {
		return err
	}

	// Config-file defaults apply only where the flag was left unset.
	if !cmd.Flags().Changed("baseline-volatility") {
		volBaseline = toolCfg.Defaults.Volatility.BaselineVolatility
	}
	if !cmd.Flags().Changed("max-execution-size") {
		volMaxSize = toolCfg.Defaults.Volatility.MaxExecutionSize
	}
	if !cmd.Flags().Changed("min-execution-size") {
		volMinSize = toolCfg.Defaults.Volatility.MinExecutionSize
	}
	if !cmd.Flags().Changed("conservative-mode") {
		volConservative = toolCfg.Defaults.Volatility.ConservativeMode
	}

	cfg := volatility.Build(volBaseline, volCurrent, volMaxSize, volMinSize, volConservative, time.Now())
	if err := volatility.Save(volOutput, cfg); err != nil {
		return err
	}

	if data, err := json.MarshalIndent(cfg, "", "  "); err == nil {
		archiveConfigCopy(log, toolCfg, "volatility", volOutput, data)
	}

	mode := "OFF"
	if volConservative {
		mode = "ON"
	}
	fmt.Printf("Created volatility config: %s\n", volOutput)
	fmt.Printf("  Baseline volatility: %dbps\n", volBaseline)
	fmt.Printf("  Current volatility:  %dbps\n", volCurrent)
	fmt.Printf("  Max execution:       %v ETH\n", volMaxSize)
	fmt.Printf("  Conservative mode:   %s\n", mode)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Printf("  vector-plus volatility validate %s\n", volOutput)
	fmt.Printf("  vector-plus volatility calculate --amount 1.0 --config %s\n", volOutput)

	return nil
}

func runVolatilityValidate(cmd *cobra.Command, args []string) error {
	file := args[0]
	fmt.Printf("Validating volatility config: %s\n", file)

	cfg, err := volatility.Load(file)
	if err != nil {
		return err
	}

	report := volatility.Validate(cfg, time.Now())

	if report.OK() && len(report.Warnings) == 0 {
		fmt.Println("Volatility configuration is valid")
		fmt.Println("Configuration summary:")
		fmt.Printf("  Baseline:  %dbps\n", cfg.BaselineVolatility)
		fmt.Printf("  Current:   %dbps\n", cfg.CurrentVolatility)
		fmt.Printf("  Threshold: %dbps\n", cfg.VolatilityThreshold)
		fmt.Printf("  Emergency: %dbps\n", cfg.EmergencyThreshold)
		return nil
	}

	for _, w := range report.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	for _, e := range report.Errors {
		fmt.Printf("error: %s\n", e)
	}

	if !report.OK() {
		return core.ErrValidationFailed
	}
	return nil
}

func runVolatilityCalculate(cmd *cobra.Command, args []string) error {
	cfg, err := volatility.Load(volCalcConfig)
	if err != nil {
		return err
	}

	fmt.Printf("Calculating volatility adjustment for: %v ETH\n", volCalcAmount)

	res, err := volatility.Adjust(volCalcAmount, cfg)
	if err != nil {
		return err
	}

	fmt.Println("Volatility analysis:")
	fmt.Printf("  Baseline volatility: %dbps\n", cfg.BaselineVolatility)
	fmt.Printf("  Current volatility:  %dbps\n", cfg.CurrentVolatility)
	fmt.Printf("  Adjustment factor:   %d%%\n", res.Factor)
	fmt.Println()
	fmt.Println("Execution amounts:")
	fmt.Printf("  Original amount: %v ETH\n", volCalcAmount)
	fmt.Printf("  Adjusted amount: %v ETH\n", res.AdjustedAmount)
	fmt.Printf("  Final amount:    %v ETH\n", res.FinalAmount)
	fmt.Printf("  Min allowed:     %v ETH\n", res.MinAllowed)
	fmt.Printf("  Max allowed:     %v ETH\n", res.MaxAllowed)

	switch res.Capped {
	case volatility.CapAtMax:
		fmt.Println("note: amount capped at maximum limit")
	case volatility.CapAtMin:
		fmt.Println("note: amount raised to minimum limit")
	}

	return nil
}
