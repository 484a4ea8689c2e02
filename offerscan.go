// Package offerscan extracts structured line items and commercial terms from
// vendor purchase-offer documents and derives a cross-vendor price
// comparison: vendor totals, a recommended supplier, a unit-price pivot,
// cheapest-vendor-per-item selection, overprice flags, and potential-savings
// estimates.
package offerscan

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/federicolanz/offerscan/compare"
	"github.com/federicolanz/offerscan/docload"
	"github.com/federicolanz/offerscan/matcher"
	"github.com/federicolanz/offerscan/offer"
)

// Analyzer is the main entry point for offer analysis.
type Analyzer interface {
	// Analyze runs the full pipeline over one batch of inputs: text
	// extraction, vendor dispatch, term extraction, consolidation, and all
	// derived comparison tables. Per-document failures are absorbed and
	// reported in Result.Documents; ErrNoData is returned only when the
	// whole batch yields zero line items.
	Analyze(ctx context.Context, inputs []Input) (*Result, error)

	// Registry exposes the matcher registry so callers can plug in
	// additional vendor layouts.
	Registry() *matcher.Registry
}

// Input is one document in an analysis batch: either a file on disk (PDF or
// plain text) or a block of pasted text.
type Input struct {
	// Path to a document file. Takes precedence over Text.
	Path string `json:"path,omitempty"`
	// Text is raw pasted document text, used when Path is empty.
	Text string `json:"text,omitempty"`
	// Label identifies the source in diagnostics and drives the fallback
	// vendor name. Defaults to the file's base name, or "pasted-text".
	Label string `json:"label,omitempty"`
}

// DocumentReport is the per-document diagnostic of one analysis run.
type DocumentReport struct {
	Source  string `json:"source"`
	Vendor  string `json:"vendor"`
	Items   int    `json:"items"`
	Dropped int    `json:"dropped"`
	// Extracted is false when the document yielded no text at all (e.g. a
	// scanned PDF); such documents contribute nothing but do not abort the
	// batch.
	Extracted bool `json:"extracted"`
}

// Result is the full output of one analysis batch. All derived tables are
// pure functions of Items, recomputed on every call.
type Result struct {
	Items             []offer.LineItem        `json:"items"`
	VendorTotals      []compare.VendorTotal   `json:"vendor_totals"`
	RecommendedVendor string                  `json:"recommended_vendor"`
	Pivot             compare.Pivot           `json:"pivot"`
	Cheapest          []compare.CheapestEntry `json:"cheapest"`
	Outliers          []compare.OutlierFlag   `json:"outliers"`
	Savings           []compare.VendorSavings `json:"savings"`
	Documents         []DocumentReport        `json:"documents"`
}

// analyzer is the concrete implementation of Analyzer.
type analyzer struct {
	cfg      Config
	registry *matcher.Registry
	load     func(path string) string
}

// New creates an Analyzer with the built-in vendor matchers registered.
func New(cfg Config) (Analyzer, error) {
	if cfg.MaxDocuments == 0 {
		cfg.MaxDocuments = DefaultConfig().MaxDocuments
	}
	if cfg.OutlierRatio == 0 {
		cfg.OutlierRatio = DefaultConfig().OutlierRatio
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &analyzer{
		cfg:      cfg,
		registry: matcher.NewRegistry(),
		load:     docload.FromFile,
	}, nil
}

func (a *analyzer) Registry() *matcher.Registry { return a.registry }

// Analyze processes each input independently and in order. No state is
// shared across documents; input order only affects table order, never
// correctness.
func (a *analyzer) Analyze(ctx context.Context, inputs []Input) (*Result, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInput
	}
	if len(inputs) > a.cfg.MaxDocuments {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyDocuments, len(inputs), a.cfg.MaxDocuments)
	}

	start := time.Now()
	var docs []offer.Document
	reports := make([]DocumentReport, 0, len(inputs))

	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		label := in.Label
		if label == "" {
			if in.Path != "" {
				label = filepath.Base(in.Path)
			} else {
				label = "pasted-text"
			}
		}

		text := in.Text
		if in.Path != "" {
			text = a.load(in.Path)
		}
		if text == "" {
			slog.Warn("analyze: document yielded no text", "source", label)
			reports = append(reports, DocumentReport{Source: label})
			continue
		}

		res := a.registry.Dispatch(text, label)
		terms := matcher.ExtractTerms(text)

		slog.Info("analyze: document processed",
			"source", label, "vendor", res.Vendor,
			"items", len(res.Items), "dropped", res.Dropped)

		if len(res.Items) == 0 {
			slog.Warn("analyze: no structured data in document", "source", label, "vendor", res.Vendor)
		}
		reports = append(reports, DocumentReport{
			Source:    label,
			Vendor:    res.Vendor,
			Items:     len(res.Items),
			Dropped:   res.Dropped,
			Extracted: true,
		})
		docs = append(docs, offer.Document{Source: label, Items: res.Items, Terms: terms})
	}

	items := offer.Consolidate(docs)
	if len(items) == 0 {
		return nil, ErrNoData
	}

	totals := compare.VendorTotals(items)
	pivot := compare.BuildPivot(items)

	result := &Result{
		Items:             items,
		VendorTotals:      totals,
		RecommendedVendor: compare.Recommended(totals),
		Pivot:             pivot,
		Cheapest:          compare.Cheapest(pivot),
		Outliers:          compare.Outliers(pivot, a.cfg.OutlierRatio),
		Savings:           compare.Savings(items),
		Documents:         reports,
	}

	slog.Info("analyze: batch complete",
		"documents", len(inputs), "items", len(items),
		"vendors", len(totals), "recommended", result.RecommendedVendor,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return result, nil
}
