package matcher

import (
	"regexp"
	"strings"

	"github.com/federicolanz/offerscan/offer"
)

// Term cues observed across vendor documents. Each captures the remainder of
// the line after the cue (and an optional separator). Vendors quote in
// Spanish or English, so the payment and delivery cues cover both.
var (
	incotermCue = regexp.MustCompile(`(?i)incoterms?\s*[:\-]?\s*(.+)`)
	paymentCue  = regexp.MustCompile(`(?i)(?:forma de pago|condici[oó]n de pago|payment terms?)\s*[:\-]?\s*(.+)`)
	deliveryCue = regexp.MustCompile(`(?i)(?:plazo de entrega|delivery time|lead time)\s*[:\-]?\s*(.+)`)

	// Bare trade-term literals, used for the incoterm only when no explicit
	// "Incoterm:" line exists. Word-bounded so codes inside part numbers or
	// descriptions do not trigger.
	tradeTermCue = regexp.MustCompile(`\b(FOB|CFR|CIF|EXW|DDP|DAP|FCA)\b(?:\s+([A-Za-z][A-Za-z .]*))?`)
)

// ExtractTerms scans document text line by line for commercial-term cues and
// returns the captured values, trimmed. Only the first match per term is
// kept; absent cues yield empty strings. Best-effort, never fails.
func ExtractTerms(text string) offer.Terms {
	var t offer.Terms

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if t.Incoterm == "" {
			if g := incotermCue.FindStringSubmatch(line); g != nil {
				t.Incoterm = strings.TrimSpace(g[1])
			}
		}
		if t.PaymentTerm == "" {
			if g := paymentCue.FindStringSubmatch(line); g != nil {
				t.PaymentTerm = strings.TrimSpace(g[1])
			}
		}
		if t.DeliveryTerm == "" {
			if g := deliveryCue.FindStringSubmatch(line); g != nil {
				t.DeliveryTerm = strings.TrimSpace(g[1])
			}
		}
	}

	// Fallback: a bare FOB/CFR/... literal anywhere in the text.
	if t.Incoterm == "" {
		if g := tradeTermCue.FindStringSubmatch(text); g != nil {
			t.Incoterm = strings.TrimSpace(strings.Join(strings.Fields(g[0]), " "))
		}
	}

	return t
}
