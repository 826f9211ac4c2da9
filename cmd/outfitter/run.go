package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/caleb/outfitter/internal/config"
	"github.com/caleb/outfitter/internal/engine"
	"github.com/caleb/outfitter/internal/store"
)

var runCommand = &cobra.Command{
	Use:   "run [wardrobe-path] [outfits-path]",
	Short: "Run one generation pass and grow the outfit corpus",
	Long: `Loads the wardrobe catalog and outfit corpus, assembles and screens candidate
outfits, selects a diverse batch up to the configured target, and writes the
grown corpus back in a single save.

Configuration layers, lowest to highest: built-in defaults, the YAML file given
with --config, environment variables, then flags and positional paths.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runEngineCmd,
}

var (
	runConfigPath  string
	runTarget      int
	runMinScore    float64
	runDatabaseURL string
	runVerbose     bool
)

func init() {
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config YAML file (values can be overridden by other flags)")
	runCommand.Flags().IntVar(&runTarget, "target", 0, "Total outfits aimed for, existing plus new")
	runCommand.Flags().Float64Var(&runMinScore, "min-score", 0, "Score floor for assembled candidates")
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed stage summaries")

	rootCmd.AddCommand(runCommand)
}

func runEngineCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(runConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Positional paths and flags override the config file and environment.
	if len(args) > 0 {
		cfg.WardrobePath = args[0]
	}
	if len(args) > 1 {
		cfg.OutfitsPath = args[1]
	}
	if cmd.Flags().Changed("target") {
		cfg.TargetOutfits = runTarget
	}
	if cmd.Flags().Changed("min-score") {
		cfg.MinComboScore = runMinScore
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = runDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	report, err := engine.Run(ctx, st, cfg)
	if err != nil {
		return err
	}

	if len(report.Dropped) > 0 {
		fmt.Printf("%s\n", color.YellowString("Dropped %d stale outfit(s) referencing items no longer in the wardrobe", len(report.Dropped)))
	}
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("%s Appended %d outfit(s) in %s (corpus now %d of %d)\n",
		green("✓"), report.Appended, report.Elapsed.Round(time.Millisecond), report.CorpusSize, cfg.TargetOutfits)
	return nil
}

// openStore picks PostgreSQL when a database URL is configured, plain files
// otherwise.
func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	if cfg.DatabaseURL != "" {
		pg, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return pg, nil
	}
	return store.NewFileStore(cfg.WardrobePath, cfg.OutfitsPath), nil
}
