package matcher

import (
	"regexp"
	"strings"

	"github.com/federicolanz/offerscan/offer"
)

// cameronLine recognizes a Cameron numeric row: item sequence, part code,
// quantity, the "EA" unit-of-measure literal, an optional currency column,
// then unit and total prices with comma grouping. The description is not on
// this line; Cameron layouts place it on the line immediately below.
var cameronLine = regexp.MustCompile(`\d+\s+([A-Z0-9.-]+)\s+(\d+)\s+EA\s+(?:[A-Z]{3}\s+)?(\d{1,3}(?:,\d{3})*[.,]\d{2})\s+(\d{1,3}(?:,\d{3})*[.,]\d{2})`)

// CameronMatcher extracts line items from Cameron quotation layouts. Rows
// that come out short or with unparseable numerics are dropped.
type CameronMatcher struct{}

func (m *CameronMatcher) Vendor() string { return "CAMERON" }

func (m *CameronMatcher) Markers() []string {
	return []string{"CAMERON ARGENTINA", "Document number"}
}

func (m *CameronMatcher) Match(text string) ([]offer.LineItem, int) {
	var items []offer.LineItem
	var dropped int

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		g := cameronLine.FindStringSubmatch(line)
		if g == nil {
			continue
		}

		qty, err := ParseNumber(g[2], PeriodDecimal)
		if err != nil {
			dropped++
			continue
		}
		unit, err := ParseNumber(g[3], PeriodDecimal)
		if err != nil {
			dropped++
			continue
		}
		total, err := ParseNumber(g[4], PeriodDecimal)
		if err != nil {
			dropped++
			continue
		}

		// Layout quirk: the description is the following physical line.
		desc := ""
		if i+1 < len(lines) {
			desc = strings.TrimSpace(lines[i+1])
		}

		items = append(items, offer.LineItem{
			Code:        g[1],
			Description: desc,
			Quantity:    qty,
			UnitPrice:   unit,
			TotalPrice:  total,
			Vendor:      m.Vendor(),
		})
	}
	return items, dropped
}
