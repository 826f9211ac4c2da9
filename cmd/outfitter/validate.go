package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/caleb/outfitter/internal/catalog"
	"github.com/caleb/outfitter/internal/config"
	"github.com/caleb/outfitter/internal/corpus"
	"github.com/caleb/outfitter/internal/schemas"
	"github.com/caleb/outfitter/internal/store"
	"github.com/caleb/outfitter/internal/types"
)

var validateCommand = &cobra.Command{
	Use:   "validate [wardrobe-path] [outfits-path]",
	Short: "Validate the wardrobe and outfit corpus documents",
	Long: `Checks both JSON documents against their schemas, verifies the wardrobe
builds a clean catalog, and cross-checks that every persisted outfit still
references items the wardrobe has. Works on files only; a database-backed
corpus is validated by the run command itself.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runValidateCmd,
}

var (
	validateConfigPath string
	validateFix        bool
)

func init() {
	validateCommand.Flags().StringVar(&validateConfigPath, "config", "", "Path to config YAML file")
	validateCommand.Flags().BoolVar(&validateFix, "fix", false, "Rewrite the corpus with stale outfits removed")

	rootCmd.AddCommand(validateCommand)
}

func runValidateCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(validateConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if len(args) > 0 {
		cfg.WardrobePath = args[0]
	}
	if len(args) > 1 {
		cfg.OutfitsPath = args[1]
	}

	wardrobeOK, err := validateDocument("wardrobe", schemas.WardrobeSchemaPath, cfg.WardrobePath)
	if err != nil {
		return err
	}

	corpusOK := true
	corpusExists := true
	if _, err := os.Stat(cfg.OutfitsPath); os.IsNotExist(err) {
		corpusExists = false
		fmt.Printf("Outfit corpus does not exist yet: %s\n", cfg.OutfitsPath)
	} else {
		corpusOK, err = validateDocument("outfit corpus", schemas.OutfitsSchemaPath, cfg.OutfitsPath)
		if err != nil {
			return err
		}
	}
	if !wardrobeOK || !corpusOK {
		return fmt.Errorf("schema validation failed")
	}

	st := store.NewFileStore(cfg.WardrobePath, cfg.OutfitsPath)
	wardrobeDoc, err := st.LoadWardrobe(ctx)
	if err != nil {
		return err
	}
	cat, err := catalog.Build(wardrobeDoc)
	if err != nil {
		return fmt.Errorf("wardrobe failed catalog validation: %w", err)
	}
	fmt.Printf("Catalog builds cleanly: %d item(s)\n", cat.Len())

	green := color.New(color.FgGreen).SprintFunc()
	if !corpusExists {
		fmt.Printf("%s Wardrobe valid; the corpus will be created on the first run\n", green("✓"))
		return nil
	}

	corpusDoc, err := st.LoadCorpus(ctx)
	if err != nil {
		return err
	}
	kept, dropped := corpus.Validate(corpusDoc, cat)
	if len(dropped) == 0 {
		fmt.Printf("%s All %d outfit(s) reference items the wardrobe still has\n", green("✓"), len(kept))
		return nil
	}

	fmt.Printf("%s\n", color.YellowString("Found %d stale outfit(s):", len(dropped)))
	for _, drop := range dropped {
		fmt.Printf("  - %s: missing %s\n", drop.OutfitID, strings.Join(drop.MissingIDs, ", "))
	}
	if !validateFix {
		return fmt.Errorf("corpus has %d stale outfit(s); re-run with --fix to remove them", len(dropped))
	}

	if err := st.SaveCorpus(ctx, &types.CorpusDocument{Outfits: kept}); err != nil {
		return err
	}
	fmt.Printf("%s Removed %d stale outfit(s); corpus now has %d\n", green("✓"), len(dropped), len(kept))
	return nil
}

// validateDocument schema-checks one document and prints the result. A false
// return means the document failed validation; an error means the check
// itself could not run.
func validateDocument(label, schemaRel, docPath string) (bool, error) {
	schemaPath := schemas.ResolveSchemaPath(schemaRel)
	if schemaPath == "" {
		return false, fmt.Errorf("schema file not found: %s", schemaRel)
	}

	err := schemas.ValidateJSON(schemaPath, docPath)
	if err == nil {
		fmt.Printf("Valid %s document: %s\n", label, docPath)
		return true, nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		fmt.Printf("%s\n", color.YellowString("Invalid %s document: %s", label, docPath))
		for _, fieldErr := range validationErr.Errors {
			fmt.Printf("  - %s: %s\n", fieldErr.Field, fieldErr.Message)
		}
		return false, nil
	}
	return false, fmt.Errorf("failed to validate %s document: %w", label, err)
}
