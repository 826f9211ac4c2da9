package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/caleb/outfitter/internal/attrs"
	"github.com/caleb/outfitter/internal/catalog"
	"github.com/caleb/outfitter/internal/config"
	"github.com/caleb/outfitter/internal/scoring"
	"github.com/caleb/outfitter/internal/store"
	"github.com/caleb/outfitter/internal/styleguard"
	"github.com/caleb/outfitter/internal/types"
)

var scoreCommand = &cobra.Command{
	Use:   "score <item-id> <item-id> <item-id> [item-id]...",
	Short: "Score one combination of wardrobe items",
	Long: `Assembles a single combination from the given item ids, checks it against
the hard style rules, and prints its score. The combination needs exactly one
shirt, one pants, and one shoes; a belt, watch, jacket, and undershirt may be
added on top.`,
	Args: cobra.MinimumNArgs(3),
	RunE: runScoreCmd,
}

var (
	scoreConfigPath   string
	scoreWardrobePath string
)

func init() {
	scoreCommand.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config YAML file")
	scoreCommand.Flags().StringVarP(&scoreWardrobePath, "wardrobe", "w", "", "Path to wardrobe JSON (defaults to the configured path)")

	rootCmd.AddCommand(scoreCommand)
}

func runScoreCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(scoreConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("wardrobe") {
		cfg.WardrobePath = scoreWardrobePath
	}

	st := store.NewFileStore(cfg.WardrobePath, cfg.OutfitsPath)
	wardrobeDoc, err := st.LoadWardrobe(ctx)
	if err != nil {
		return err
	}
	cat, err := catalog.Build(wardrobeDoc)
	if err != nil {
		return err
	}

	combo, extras, err := assembleCombo(cat, args)
	if err != nil {
		return err
	}

	fmt.Println("Combination:")
	for _, id := range args {
		entry, _ := cat.Lookup(id)
		fmt.Printf("  %-17s %s (formality %d, color %s)\n",
			entry.Category+":", entry.ID, attrs.FormalityOrDefault(entry.WardrobeItem), entry.Color)
	}

	if violation := styleguard.Evaluate(styleguard.NewCheck(combo.Pants, combo.Shoes, extras...)); violation != nil {
		fmt.Printf("%s\n", color.YellowString("Fails style rule %s: %s", violation.Rule, violation.Reason))
		return fmt.Errorf("combination fails the style rules")
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("%s Score: %.3f\n", green("✓"), scoring.Score(combo))
	return nil
}

// assembleCombo slots each id by its wardrobe category: exactly one shirt,
// pants, and shoes, at most one of everything else. The extras carry the
// shirt and every accessory so the style rules see the whole combination.
func assembleCombo(cat *catalog.Catalog, ids []string) (scoring.Combo, []catalog.Entry, error) {
	var (
		combo  scoring.Combo
		extras []catalog.Entry
		have   = make(map[string]bool)
	)

	for _, id := range ids {
		entry, ok := cat.Lookup(id)
		if !ok {
			return combo, nil, fmt.Errorf("unknown wardrobe item id %q", id)
		}
		if have[entry.Category] {
			return combo, nil, fmt.Errorf("more than one %s in the combination", entry.Category)
		}
		have[entry.Category] = true

		switch entry.Category {
		case types.CategoryShirt:
			combo.Shirt = entry
			extras = append(extras, entry)
		case types.CategoryPants:
			combo.Pants = entry
		case types.CategoryShoes:
			combo.Shoes = entry
		case types.CategoryBelt:
			belt := entry
			combo.Belt = &belt
			extras = append(extras, entry)
		case types.CategoryWatch:
			watch := entry
			combo.Watch = &watch
			extras = append(extras, entry)
		case types.CategoryOuterwear:
			jacket := entry
			combo.Jacket = &jacket
			extras = append(extras, entry)
		case types.CategoryUndershirt:
			extras = append(extras, entry)
		}
	}

	if !have[types.CategoryShirt] {
		return combo, nil, fmt.Errorf("combination needs a shirt")
	}
	if !have[types.CategoryPants] {
		return combo, nil, fmt.Errorf("combination needs pants")
	}
	if !have[types.CategoryShoes] {
		return combo, nil, fmt.Errorf("combination needs shoes")
	}
	return combo, extras, nil
}
