package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Giri-Aayush/1inch-lop/internal/config"
	"github.com/Giri-Aayush/1inch-lop/internal/storage/archive"
	"github.com/spf13/cobra"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default configuration",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configArchiveCmd = &cobra.Command{
	Use:   "archive [prefix]",
	Short: "List archived strategy configs",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigArchive,
}

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "force overwrite existing config")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configArchiveCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(cfgFile); err == nil && !configForce {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", cfgFile)
	}

	cfg := config.Defaults()
	if network != "" {
		cfg.Network = network
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(cfgFile); err != nil {
		return err
	}

	fmt.Printf("Initialized configuration: %s\n", cfgFile)
	fmt.Printf("  Network: %s\n", cfg.Network)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig()
	if err != nil {
		return err
	}

	archiving := "disabled"
	if cfg.Archive.Enabled {
		archiving = cfg.Archive.Type
	}

	fmt.Println("Vector Plus configuration:")
	fmt.Printf("  Config file: %s\n", cfgFile)
	fmt.Printf("  Network:     %s\n", cfg.Network)
	fmt.Printf("  Archive:     %s\n", archiving)
	fmt.Println()
	fmt.Println("Volatility defaults:")
	fmt.Printf("  Baseline:     %dbps\n", cfg.Defaults.Volatility.BaselineVolatility)
	fmt.Printf("  Max size:     %v ETH\n", cfg.Defaults.Volatility.MaxExecutionSize)
	fmt.Printf("  Min size:     %v ETH\n", cfg.Defaults.Volatility.MinExecutionSize)
	fmt.Printf("  Conservative: %v\n", cfg.Defaults.Volatility.ConservativeMode)
	fmt.Println()
	fmt.Println("TWAP defaults:")
	fmt.Printf("  Duration:  %d minutes\n", cfg.Defaults.TWAP.DurationMinutes)
	fmt.Printf("  Intervals: %d\n", cfg.Defaults.TWAP.Intervals)
	fmt.Println()
	fmt.Println("Options defaults:")
	fmt.Printf("  Expiration:         %d hours\n", cfg.Defaults.Options.DefaultExpirationHours)
	fmt.Printf("  Implied volatility: %dbps\n", cfg.Defaults.Options.ImpliedVolatility)
	fmt.Printf("  Risk-free rate:     %dbps\n", cfg.Defaults.Options.RiskFreeRate)

	return nil
}

func runConfigArchive(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig()
	if err != nil {
		return err
	}

	store, err := archive.New(cfg.Archive)
	if err != nil {
		return err
	}
	if store == nil {
		fmt.Println("Archiving is disabled; enable it in the archive section of the config")
		return nil
	}

	prefix := ""
	if len(args) == 1 {
		prefix = args[0]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	keys, err := store.List(ctx, prefix)
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		fmt.Println("No archived configs")
		return nil
	}
	for _, key := range keys {
		fmt.Println(key)
	}
	return nil
}
