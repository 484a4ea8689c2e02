// Package matcher turns linearized offer-document text into structured line
// items and commercial terms. Each vendor layout gets its own stateless
// Matcher implementation; a Registry holds them in a fixed order and
// dispatches on in-text vendor markers, falling back to a generic pattern
// when no marker is recognized.
package matcher

import "github.com/federicolanz/offerscan/offer"

// Matcher extracts line items for one vendor's observed document layout.
type Matcher interface {
	// Vendor is the name stamped on every line item this matcher produces.
	Vendor() string

	// Markers are the literal substrings that identify this vendor's
	// documents. An empty slice means the matcher is never selected by
	// marker (fallback-only).
	Markers() []string

	// Match scans document text and returns zero or more line items, plus
	// the count of candidate rows dropped because their numeric fields did
	// not parse. Matching never fails: unrecognizable text yields no items.
	Match(text string) (items []offer.LineItem, dropped int)
}
