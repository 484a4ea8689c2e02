// Package offer defines the data model shared by the extraction pipeline:
// line items, document-scoped commercial terms, and the consolidation step
// that merges per-document results into one comparison table.
package offer

import "math"

// UnknownVendor is the placeholder vendor name used when neither an in-text
// marker nor the source label yields a usable vendor identity.
const UnknownVendor = "Unknown"

// LineItem is one priced product/service entry extracted from an offer
// document. It is created by a format matcher from a single pattern match and
// never mutated afterwards. TotalPrice is taken as extracted, not re-derived
// from Quantity × UnitPrice; the two may diverge.
type LineItem struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	Vendor      string  `json:"vendor"`

	// Document-scoped commercial terms. Every line item from the same source
	// document carries the same values.
	Incoterm     string `json:"incoterm,omitempty"`
	DeliveryTerm string `json:"delivery_term,omitempty"`
	PaymentTerm  string `json:"payment_term,omitempty"`
}

// Terms holds the commercial terms extracted once per document. Absent terms
// are empty strings, not errors.
type Terms struct {
	Incoterm     string `json:"incoterm,omitempty"`
	DeliveryTerm string `json:"delivery_term,omitempty"`
	PaymentTerm  string `json:"payment_term,omitempty"`
}

// Document is the extraction result for one source document: its line items
// and its commercial terms, plus the label the document arrived under (file
// name or a caller-supplied tag for pasted text).
type Document struct {
	Source string
	Items  []LineItem
	Terms  Terms
}

// Valid reports whether a line item satisfies the table invariants: non-empty
// code and vendor, quantity strictly positive, and finite non-negative prices.
func (it LineItem) Valid() bool {
	if it.Code == "" || it.Vendor == "" {
		return false
	}
	if !(it.Quantity > 0) {
		return false
	}
	for _, v := range []float64{it.Quantity, it.UnitPrice, it.TotalPrice} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	return true
}

// Consolidate merges per-document extraction results into one table.
// Items keep their input order (document order, then in-document match order),
// each stamped with its document's commercial terms. Rows violating the table
// invariants are dropped silently; there is no cross-document deduplication.
func Consolidate(docs []Document) []LineItem {
	var table []LineItem
	for _, doc := range docs {
		for _, it := range doc.Items {
			if it.Vendor == "" {
				it.Vendor = UnknownVendor
			}
			it.Incoterm = doc.Terms.Incoterm
			it.DeliveryTerm = doc.Terms.DeliveryTerm
			it.PaymentTerm = doc.Terms.PaymentTerm
			if !it.Valid() {
				continue
			}
			table = append(table, it)
		}
	}
	return table
}
