package compare

import (
	"math"
	"testing"

	"github.com/federicolanz/offerscan/offer"
)

func item(code, vendor string, qty, unit, total float64) offer.LineItem {
	return offer.LineItem{Code: code, Vendor: vendor, Quantity: qty, UnitPrice: unit, TotalPrice: total}
}

// ---------------------------------------------------------------------------
// Vendor totals and recommendation
// ---------------------------------------------------------------------------

func TestVendorTotalsSortedAscending(t *testing.T) {
	items := []offer.LineItem{
		item("A", "X", 1, 100, 100),
		item("B", "Y", 1, 95, 95),
		item("C", "X", 1, 20, 20),
	}

	totals := VendorTotals(items)
	if len(totals) != 2 {
		t.Fatalf("len(totals) = %d, want 2", len(totals))
	}
	if totals[0].Vendor != "Y" || totals[0].Total != 95 {
		t.Errorf("totals[0] = %+v, want Y:95", totals[0])
	}
	if totals[1].Vendor != "X" || totals[1].Total != 120 {
		t.Errorf("totals[1] = %+v, want X:120", totals[1])
	}
	if got := Recommended(totals); got != "Y" {
		t.Errorf("Recommended = %q, want Y", got)
	}
}

func TestVendorTotalsConservation(t *testing.T) {
	items := []offer.LineItem{
		item("A", "X", 1, 10, 10.5),
		item("B", "Y", 2, 20, 40.25),
		item("C", "Z", 3, 30, 90.75),
		item("D", "X", 1, 5, 5),
	}

	var wantSum float64
	for _, it := range items {
		wantSum += it.TotalPrice
	}
	var gotSum float64
	for _, vt := range VendorTotals(items) {
		gotSum += vt.Total
	}
	if math.Abs(gotSum-wantSum) > 1e-9 {
		t.Errorf("sum(VendorTotals) = %v, want %v", gotSum, wantSum)
	}
}

func TestRecommendedTieBreaksFirstEncountered(t *testing.T) {
	items := []offer.LineItem{
		item("A", "X", 1, 50, 50),
		item("B", "Y", 1, 50, 50),
	}
	totals := VendorTotals(items)
	if got := Recommended(totals); got != "X" {
		t.Errorf("Recommended = %q, want X (first encountered on tie)", got)
	}
}

func TestRecommendedEmpty(t *testing.T) {
	if got := Recommended(nil); got != "" {
		t.Errorf("Recommended(nil) = %q, want empty", got)
	}
}

// ---------------------------------------------------------------------------
// Pivot
// ---------------------------------------------------------------------------

func TestBuildPivot(t *testing.T) {
	items := []offer.LineItem{
		item("Z-9", "A", 3, 12, 36),
		item("Z-9", "B", 3, 20, 60),
		item("W-1", "B", 1, 7, 7),
	}

	p := BuildPivot(items)
	if len(p.Vendors) != 2 || p.Vendors[0] != "A" || p.Vendors[1] != "B" {
		t.Fatalf("Vendors = %v, want [A B]", p.Vendors)
	}
	if len(p.Rows) != 2 || p.Rows[0].Code != "Z-9" || p.Rows[1].Code != "W-1" {
		t.Fatalf("Rows = %+v", p.Rows)
	}

	if price, ok := p.Rows[0].Price("A"); !ok || price != 12 {
		t.Errorf("Z-9/A = %v,%v, want 12,true", price, ok)
	}
	if price, ok := p.Rows[0].Price("B"); !ok || price != 20 {
		t.Errorf("Z-9/B = %v,%v, want 20,true", price, ok)
	}
	// Vendor A never offered W-1: absent, not zero.
	if _, ok := p.Rows[1].Price("A"); ok {
		t.Errorf("W-1/A should be absent")
	}
}

func TestBuildPivotDuplicateKeepsFirst(t *testing.T) {
	items := []offer.LineItem{
		item("Z-9", "A", 1, 12, 12),
		item("Z-9", "A", 1, 99, 99),
	}
	p := BuildPivot(items)
	if price, _ := p.Rows[0].Price("A"); price != 12 {
		t.Errorf("duplicate (code,vendor) price = %v, want 12 (keep first)", price)
	}
}

// ---------------------------------------------------------------------------
// Cheapest, outliers, savings
// ---------------------------------------------------------------------------

func TestCheapest(t *testing.T) {
	p := BuildPivot([]offer.LineItem{
		item("Z-9", "A", 3, 12, 36),
		item("Z-9", "B", 3, 20, 60),
	})
	got := Cheapest(p)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Code != "Z-9" || got[0].Vendor != "A" || got[0].Price != 12 {
		t.Errorf("Cheapest[0] = %+v, want Z-9/A/12", got[0])
	}
}

func TestCheapestTieBreaksEarlierColumn(t *testing.T) {
	p := BuildPivot([]offer.LineItem{
		item("Z-9", "A", 1, 15, 15),
		item("Z-9", "B", 1, 15, 15),
	})
	got := Cheapest(p)
	if got[0].Vendor != "A" {
		t.Errorf("tie went to %q, want A (earlier column)", got[0].Vendor)
	}
}

func TestOutliersStrictThreshold(t *testing.T) {
	p := BuildPivot([]offer.LineItem{
		item("Z-9", "A", 1, 10, 10),
		item("Z-9", "B", 1, 13, 13),   // exactly 1.3x: not flagged
		item("Z-9", "C", 1, 13.1, 13.1), // 1.31x: flagged
	})

	flags := Outliers(p, 1.3)
	if len(flags) != 1 {
		t.Fatalf("len(flags) = %d, want 1: %+v", len(flags), flags)
	}
	f := flags[0]
	if f.Vendor != "C" || f.Code != "Z-9" {
		t.Errorf("flag = %+v, want Z-9/C", f)
	}
	if f.RowMin != 10 {
		t.Errorf("RowMin = %v, want 10", f.RowMin)
	}
}

func TestOutliersScenarioC(t *testing.T) {
	p := BuildPivot([]offer.LineItem{
		item("Z-9", "A", 3, 12, 36),
		item("Z-9", "B", 3, 20, 60),
	})
	flags := Outliers(p, 1.3)
	if len(flags) != 1 || flags[0].Vendor != "B" {
		t.Fatalf("flags = %+v, want B flagged (20 > 1.3*12)", flags)
	}
}

func TestSavings(t *testing.T) {
	items := []offer.LineItem{
		item("Z-9", "A", 3, 12, 36),
		item("Z-9", "B", 3, 20, 60),
	}
	got := Savings(items)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Vendor != "A" || got[0].Savings != 0 {
		t.Errorf("A savings = %+v, want 0", got[0])
	}
	// (20-12) x 3 = 24
	if got[1].Vendor != "B" || math.Abs(got[1].Savings-24) > 1e-9 {
		t.Errorf("B savings = %+v, want 24", got[1])
	}
}
