// Package main provides the entry point for the outfitter CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "outfitter",
	Short: "Deterministic outfit corpus builder",
	Long:  "Outfitter assembles outfit candidates from a wardrobe catalog, screens them against hard style rules, selects a diverse batch, and grows a persistent outfit corpus across runs.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
