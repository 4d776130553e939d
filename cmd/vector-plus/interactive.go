package main

import (
	"os"

	"github.com/Giri-Aayush/1inch-lop/internal/wizard"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Interactive strategy builder",
	RunE:  runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig()
	if err != nil {
		return err
	}

	return wizard.New(os.Stdin, os.Stdout, cfg.Defaults).Run()
}
