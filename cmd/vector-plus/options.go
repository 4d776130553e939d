package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Giri-Aayush/1inch-lop/internal/logger"
	"github.com/Giri-Aayush/1inch-lop/internal/options"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	optStrike     float64
	optExpiration uint64
	optPremium    float64
	optOutput     string

	optCurrentPrice  float64
	optPremiumStrike float64
	optTimeToExpiry  float64
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Options on limit order execution rights",
}

var optionsCreateCallCmd = &cobra.Command{
	Use:   "create-call",
	Short: "Create call option configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOptionsCreate(cmd, options.TypeCall)
	},
}

var optionsCreatePutCmd = &cobra.Command{
	Use:   "create-put",
	Short: "Create put option configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOptionsCreate(cmd, options.TypePut)
	},
}

var optionsPremiumCmd = &cobra.Command{
	Use:   "premium",
	Short: "Calculate option premium",
	RunE:  runOptionsPremium,
}

func init() {
	for _, c := range []*cobra.Command{optionsCreateCallCmd, optionsCreatePutCmd} {
		c.Flags().Float64Var(&optStrike, "strike-price", 0, "strike price in USDC (required)")
		c.Flags().Uint64Var(&optExpiration, "expiration-hours", 0, "expiration in hours")
		c.Flags().Float64Var(&optPremium, "premium", 0, "premium in USDC (required)")
		c.Flags().StringVarP(&optOutput, "output", "o", "option-config.json", "output file")
		c.MarkFlagRequired("strike-price")
		c.MarkFlagRequired("premium")
	}

	optionsPremiumCmd.Flags().Float64Var(&optCurrentPrice, "current-price", 0, "current price (required)")
	optionsPremiumCmd.Flags().Float64Var(&optPremiumStrike, "strike-price", 0, "strike price (required)")
	optionsPremiumCmd.Flags().Float64Var(&optTimeToExpiry, "time-to-expiration", 0, "time to expiration in hours (required)")
	optionsPremiumCmd.MarkFlagRequired("current-price")
	optionsPremiumCmd.MarkFlagRequired("strike-price")
	optionsPremiumCmd.MarkFlagRequired("time-to-expiration")

	optionsCmd.AddCommand(optionsCreateCallCmd)
	optionsCmd.AddCommand(optionsCreatePutCmd)
	optionsCmd.AddCommand(optionsPremiumCmd)
	rootCmd.AddCommand(optionsCmd)
}

func runOptionsCreate(cmd *cobra.Command, optType options.Type) error {
	log := logger.Must(verbose)
	defer log.Sync()

	toolCfg, err := loadToolConfig()
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("expiration-hours") {
		optExpiration = toolCfg.Defaults.Options.DefaultExpirationHours
	}

	cfg, err := options.Build(optType,
		decimal.NewFromFloat(optStrike),
		decimal.NewFromFloat(optPremium),
		optExpiration, time.Now())
	if err != nil {
		return err
	}
	if err := options.Save(optOutput, cfg); err != nil {
		return err
	}

	if data, err := json.MarshalIndent(cfg, "", "  "); err == nil {
		archiveConfigCopy(log, toolCfg, "options", optOutput, data)
	}

	fmt.Printf("Created %s option config: %s\n", optType, optOutput)
	fmt.Printf("  Strategy id:  %s\n", cfg.StrategyID)
	fmt.Printf("  Strike price: $%s\n", cfg.StrikePrice)
	fmt.Printf("  Expiration:   %d hours\n", cfg.ExpirationHours)
	fmt.Printf("  Premium:      $%s\n", cfg.Premium)

	return nil
}

func runOptionsPremium(cmd *cobra.Command, args []string) error {
	fmt.Println("Calculating option premium...")

	estimated := options.EstimatePremium(options.TypeCall,
		decimal.NewFromFloat(optCurrentPrice),
		decimal.NewFromFloat(optPremiumStrike),
		decimal.NewFromFloat(optTimeToExpiry))

	fmt.Printf("  Current price:     $%v\n", optCurrentPrice)
	fmt.Printf("  Strike price:      $%v\n", optPremiumStrike)
	fmt.Printf("  Estimated premium: $%s\n", estimated.StringFixed(2))

	return nil
}
