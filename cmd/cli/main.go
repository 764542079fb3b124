package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/vheikkine/franchiselab/cmd/cli/catalog"
	"github.com/vheikkine/franchiselab/cmd/cli/simulate"
)

func init() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddGroup(catalog.Group)
	rootCmd.AddCommand(catalog.List)
	rootCmd.AddCommand(catalog.Validate)
	rootCmd.AddGroup(simulate.Group)
	rootCmd.AddCommand(simulate.Run)
}

var rootCmd = &cobra.Command{
	Use:  "franchiselab-cli",
	Long: `Command line utilities for FranchiseLab https://github.com/vheikkine/franchiselab`,
	Run: func(cmd *cobra.Command, args []string) {
		// Do Stuff Here
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
