package matcher

import (
	"regexp"
	"strings"

	"github.com/federicolanz/offerscan/offer"
)

// genericLine is the broad fallback shape: an optional item sequence, a code
// starting with a letter or digit, a quantity, a non-greedy description, then
// unit and total prices with two decimals. Less precise than the per-vendor
// patterns; only applied when no vendor marker is recognized.
var genericLine = regexp.MustCompile(`^(?:\d{1,3}\s+)?([A-Za-z0-9][A-Za-z0-9./-]*)\s+(\d+(?:[.,]\d+)?)\s+(.+?)\s+(\d{1,6}[.,]\d{2})\s+(\d{1,6}[.,]\d{2})\s*$`)

// GenericMatcher is the fallback for documents with no recognized vendor
// marker. It leaves Vendor empty; the dispatcher stamps a vendor name derived
// from the source label.
type GenericMatcher struct{}

func (m *GenericMatcher) Vendor() string { return "" }

func (m *GenericMatcher) Markers() []string { return nil }

func (m *GenericMatcher) Match(text string) ([]offer.LineItem, int) {
	var items []offer.LineItem
	var dropped int

	for _, line := range strings.Split(text, "\n") {
		g := genericLine.FindStringSubmatch(strings.TrimRight(line, " \t\r"))
		if g == nil {
			continue
		}

		qty, err := parseFlexible(g[2])
		if err != nil {
			dropped++
			continue
		}
		unit, err := parseFlexible(g[4])
		if err != nil {
			dropped++
			continue
		}
		total, err := parseFlexible(g[5])
		if err != nil {
			dropped++
			continue
		}

		items = append(items, offer.LineItem{
			Code:        g[1],
			Description: strings.TrimSpace(g[3]),
			Quantity:    qty,
			UnitPrice:   unit,
			TotalPrice:  total,
		})
	}
	return items, dropped
}
