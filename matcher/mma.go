package matcher

import (
	"regexp"
	"strings"

	"github.com/federicolanz/offerscan/offer"
)

// mmaLine matches one MMA offer line: a three-digit item sequence, the part
// code, an integer quantity, a non-greedy description, then unit and total
// prices with two decimals behind either separator. Anchored at end of line
// so trailing columns are not swallowed by the description.
var mmaLine = regexp.MustCompile(`(\d{3})\s+(\S+)\s+(\d+)\s+(.*?)\s+(\d{1,3}[.,]\d{2})\s+(\d{1,3}[.,]\d{2})$`)

// MMAMatcher extracts line items from MMA quotation layouts, where every
// item occupies a single physical line.
type MMAMatcher struct{}

func (m *MMAMatcher) Vendor() string { return "MMA" }

func (m *MMAMatcher) Markers() []string { return []string{"Oferta N° 1020684"} }

func (m *MMAMatcher) Match(text string) ([]offer.LineItem, int) {
	var items []offer.LineItem
	var dropped int

	for _, line := range strings.Split(text, "\n") {
		g := mmaLine.FindStringSubmatch(line)
		if g == nil {
			continue
		}

		qty, err := parseFlexible(g[3])
		if err != nil {
			dropped++
			continue
		}
		unit, err := parseFlexible(g[5])
		if err != nil {
			dropped++
			continue
		}
		total, err := parseFlexible(g[6])
		if err != nil {
			dropped++
			continue
		}

		items = append(items, offer.LineItem{
			Code:        g[2],
			Description: strings.TrimSpace(g[4]),
			Quantity:    qty,
			UnitPrice:   unit,
			TotalPrice:  total,
			Vendor:      m.Vendor(),
		})
	}
	return items, dropped
}
