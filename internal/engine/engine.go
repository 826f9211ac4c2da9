// Package engine provides the high-level orchestration for one generation
// run: load the documents, validate the corpus, enumerate and score
// candidates, select a diverse subset, and persist the grown corpus.
package engine

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/caleb/outfitter/internal/catalog"
	"github.com/caleb/outfitter/internal/config"
	"github.com/caleb/outfitter/internal/corpus"
	"github.com/caleb/outfitter/internal/generation"
	"github.com/caleb/outfitter/internal/observability"
	"github.com/caleb/outfitter/internal/selection"
	"github.com/caleb/outfitter/internal/store"
	"github.com/caleb/outfitter/internal/types"
)

// Report summarizes one completed run.
type Report struct {
	RunID        string              `json:"runId"`
	CatalogItems int                 `json:"catalogItems"`
	CorpusKept   int                 `json:"corpusKept"`
	Dropped      []corpus.DropReport `json:"dropped,omitempty"`
	Target       int                 `json:"target"`
	Generation   generation.Stats    `json:"generation"`
	Selection    selection.Result    `json:"selection"`
	Appended     int                 `json:"appended"`
	CorpusSize   int                 `json:"corpusSize"`
	Elapsed      time.Duration       `json:"elapsedNs"`
}

// Run executes the full pipeline against the store. The corpus is written
// exactly once, at the end; a failure anywhere before that leaves it
// untouched. Stale-outfit drops are persisted even when nothing new is
// selected.
func Run(ctx context.Context, st store.Store, cfg config.Config) (*Report, error) {
	if err := guardRuntime(); err != nil {
		return nil, err
	}

	printer := observability.NewPrinter(os.Stdout)
	start := time.Now()
	runID := uuid.New().String()

	fmt.Printf("Step 1/5: Loading wardrobe and corpus...\n")
	var (
		wardrobeDoc *types.WardrobeDocument
		corpusDoc   *types.CorpusDocument
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		wardrobeDoc, err = st.LoadWardrobe(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		corpusDoc, err = st.LoadCorpus(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Printf("Step 2/5: Building catalog from %d items...\n", len(wardrobeDoc.Items))
	cat, err := catalog.Build(wardrobeDoc)
	if err != nil {
		return nil, &Error{Message: "failed to build catalog", Cause: err}
	}

	kept, dropped := corpus.Validate(corpusDoc, cat)
	if cfg.Verbose {
		printer.PrintCatalogSummary(cat)
		printer.PrintCorpusValidation(len(kept), dropped)
	}

	target := cfg.TargetOutfits - len(kept)
	if target < 0 {
		target = 0
	}

	fmt.Printf("Step 3/5: Generating candidates...\n")
	idx := corpus.NewIndex(kept)
	pool, stats := generation.Generate(cat, idx, cfg.MinComboScore)
	if cfg.Verbose {
		printer.PrintGenerationStats(stats)
	}

	fmt.Printf("Step 4/5: Selecting up to %d outfits from %d candidates...\n", target, len(pool))
	quotas := selection.ComputeQuotas(target, map[string]float64{
		types.CapsuleRefined:    cfg.QuotaRefined,
		types.CapsuleCrossover:  cfg.QuotaCrossover,
		types.CapsuleAdventurer: cfg.QuotaAdventurer,
	})
	result := selection.Select(pool, cat, target, quotas)
	if cfg.Verbose {
		printer.PrintSelectionResult(result)
	}

	fmt.Printf("Step 5/5: Writing corpus...\n")
	seq := corpus.NewSequence(kept)
	outfits := corpus.Append(kept, result.Picks, seq)
	if err := st.SaveCorpus(ctx, &types.CorpusDocument{Outfits: outfits}); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:        runID,
		CatalogItems: cat.Len(),
		CorpusKept:   len(kept),
		Dropped:      dropped,
		Target:       target,
		Generation:   stats,
		Selection:    result,
		Appended:     len(result.Picks),
		CorpusSize:   len(outfits),
		Elapsed:      time.Since(start),
	}
	if cfg.Verbose {
		printer.PrintRunSummary(report.RunID, report.Appended, report.CorpusSize)
	}
	return report, nil
}
