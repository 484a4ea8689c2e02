package matcher

import (
	"path/filepath"
	"strings"

	"github.com/federicolanz/offerscan/offer"
)

// Registry holds vendor matchers in a fixed dispatch order plus one fallback.
// Marker order decides ties: a document containing two vendors' markers is
// handled by the first-listed matcher only.
type Registry struct {
	matchers []Matcher
	fallback Matcher
}

// NewRegistry returns a registry with the built-in vendor matchers in their
// canonical dispatch order and the generic matcher as fallback.
func NewRegistry() *Registry {
	return &Registry{
		matchers: []Matcher{
			&MMAMatcher{},
			&CameronMatcher{},
		},
		fallback: &GenericMatcher{},
	}
}

// Register appends a matcher to the end of the dispatch order. New vendors
// plug in here without touching dispatch logic.
func (r *Registry) Register(m Matcher) {
	r.matchers = append(r.matchers, m)
}

// SetFallback replaces the generic fallback matcher.
func (r *Registry) SetFallback(m Matcher) {
	r.fallback = m
}

// DispatchResult is the per-document outcome of marker dispatch.
type DispatchResult struct {
	// Vendor the document resolved to: the matched matcher's vendor name,
	// or a label-derived name when the fallback ran.
	Vendor string
	// Items extracted, every one stamped with Vendor.
	Items []offer.LineItem
	// Dropped counts candidate rows discarded for unparseable numerics.
	Dropped int
}

// Dispatch tests the document text against each matcher's markers in order
// and runs the first matcher whose marker appears. With no marker recognized
// it runs the fallback matcher and derives the vendor name from sourceLabel.
// Dispatch never fails; an unrecognizable document yields zero items.
func (r *Registry) Dispatch(text, sourceLabel string) DispatchResult {
	for _, m := range r.matchers {
		if !containsAny(text, m.Markers()) {
			continue
		}
		items, dropped := m.Match(text)
		return DispatchResult{Vendor: m.Vendor(), Items: items, Dropped: dropped}
	}

	vendor := VendorFromLabel(sourceLabel)
	items, dropped := r.fallback.Match(text)
	for i := range items {
		if items[i].Vendor == "" {
			items[i].Vendor = vendor
		}
	}
	return DispatchResult{Vendor: vendor, Items: items, Dropped: dropped}
}

// VendorFromLabel derives a vendor name from a source label (typically an
// uploaded file's name): extension stripped, underscores and hyphens turned
// into spaces, upper-cased. An empty result becomes the Unknown placeholder.
func VendorFromLabel(label string) string {
	name := filepath.Base(label)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.Join(strings.Fields(name), " ")
	if name == "" || name == "." {
		return offer.UnknownVendor
	}
	return strings.ToUpper(name)
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
