// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/caleb/outfitter/internal/catalog"
	"github.com/caleb/outfitter/internal/corpus"
	"github.com/caleb/outfitter/internal/generation"
	"github.com/caleb/outfitter/internal/selection"
	"github.com/caleb/outfitter/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// categoryOrder fixes the display order of wardrobe categories.
var categoryOrder = []string{
	types.CategoryShirt,
	types.CategoryUndershirt,
	types.CategoryPants,
	types.CategoryShoes,
	types.CategoryBelt,
	types.CategoryWatch,
	types.CategoryOuterwear,
}

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCatalogSummary outputs the item counts by category.
func (p *Printer) PrintCatalogSummary(cat *catalog.Catalog) {
	if cat == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total items: %d\n\n", cat.Len()))

	counts := cat.CategoryCounts()
	for _, category := range categoryOrder {
		if counts[category] == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("  %-18s %d\n", category+":", counts[category]))
	}

	p.printBox("WARDROBE CATALOG", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCorpusValidation outputs the surviving corpus size and any outfits
// dropped for referencing items no longer in the wardrobe.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCorpusValidation(kept int, dropped []corpus.DropReport) {
	if len(dropped) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, fmt.Sprintf("✅ CORPUS CLEAN (%d outfits)", kept))
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Kept %d outfits, dropped %d:\n\n", kept, len(dropped)))

	count := min(len(dropped), maxItemsToShow)
	for i := 0; i < count; i++ {
		drop := dropped[i]
		missing := strings.Join(drop.MissingIDs, ", ")
		if len(missing) > 40 {
			missing = missing[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", drop.OutfitID))
		sb.WriteString(fmt.Sprintf("  missing: %s\n", missing))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(dropped) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more outfits", len(dropped)-maxItemsToShow))
	}

	p.printBox("STALE OUTFITS DROPPED", sb.String())
}

// PrintGenerationStats outputs what happened to the assembled combinations.
func (p *Printer) PrintGenerationStats(stats generation.Stats) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Assembled:        %d\n", stats.Assembled))
	sb.WriteString(fmt.Sprintf("Guard rejected:   %d\n", stats.GuardRejected))
	sb.WriteString(fmt.Sprintf("Duplicates:       %d\n", stats.Duplicates))
	sb.WriteString(fmt.Sprintf("Below threshold:  %d\n", stats.BelowThreshold))
	sb.WriteString(fmt.Sprintf("Kept in pool:     %d", stats.Kept))

	p.printBox("CANDIDATE GENERATION", sb.String())
}

// PrintSelectionResult outputs the pass counts, the quota ledger, and the
// top picks.
func (p *Printer) PrintSelectionResult(result selection.Result) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Selected %d outfits (%d strict, %d relaxed)\n\n",
		len(result.Picks), result.PassOne, result.PassTwo))

	sb.WriteString("Capsule quotas:\n")
	for _, family := range types.CapsuleFamilies {
		sb.WriteString(fmt.Sprintf("  %-12s %d / %d\n", family+":", result.PerFamily[family], result.Quotas[family]))
	}

	if len(result.Picks) > 0 {
		sb.WriteString("\nTop picks:\n")
		count := min(len(result.Picks), maxItemsToShow)
		for i := 0; i < count; i++ {
			pick := result.Picks[i]
			sb.WriteString(fmt.Sprintf("• %s + %s + %s (%.3f)\n", pick.ShirtID, pick.PantsID, pick.ShoesID, pick.Score))
		}
		if len(result.Picks) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(result.Picks)-maxItemsToShow))
		}
	}

	p.printBox("DIVERSITY SELECTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRunSummary outputs the end-of-run totals.
func (p *Printer) PrintRunSummary(runID string, appended, corpusSize int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:          %s\n", runID))
	sb.WriteString(fmt.Sprintf("New outfits:  %d\n", appended))
	sb.WriteString(fmt.Sprintf("Corpus size:  %d", corpusSize))

	p.printBox("RUN COMPLETE", sb.String())
}
