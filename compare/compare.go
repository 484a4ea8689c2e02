// Package compare derives the cross-vendor comparison tables from a
// consolidated line-item table: vendor totals, the unit-price pivot, the
// cheapest vendor per code, overprice flags, and potential savings. Every
// derivation is a pure function of the input table and is recomputed in full
// on each call.
package compare

import (
	"sort"

	"github.com/federicolanz/offerscan/offer"
)

// VendorTotal is the summed total price of one vendor's line items.
type VendorTotal struct {
	Vendor string  `json:"vendor"`
	Total  float64 `json:"total"`
}

// Cell is one pivot entry: the unit price a vendor offers for a code.
type Cell struct {
	Vendor string  `json:"vendor"`
	Price  float64 `json:"price"`
}

// PivotRow is one row of the price-comparison pivot. Cells holds only the
// vendors that offer the code; a vendor with no offer is simply absent.
type PivotRow struct {
	Code  string `json:"code"`
	Cells []Cell `json:"cells"`
}

// Pivot is the full price-comparison matrix. Vendors lists the column order
// (first-encounter order over the consolidated table); Rows are in
// first-encounter code order.
type Pivot struct {
	Vendors []string   `json:"vendors"`
	Rows    []PivotRow `json:"rows"`
}

// CheapestEntry names the lowest-priced vendor for one code.
type CheapestEntry struct {
	Code   string  `json:"code"`
	Vendor string  `json:"vendor"`
	Price  float64 `json:"price"`
}

// OutlierFlag marks one pivot cell whose price sits strictly above the
// configured ratio times the row minimum.
type OutlierFlag struct {
	Code     string  `json:"code"`
	Vendor   string  `json:"vendor"`
	Price    float64 `json:"price"`
	RowMin   float64 `json:"row_min"`
	Exceeded float64 `json:"exceeded_by"`
}

// VendorSavings estimates how much buying each of a vendor's lines at the
// cheapest offered unit price for that code would have saved.
type VendorSavings struct {
	Vendor  string  `json:"vendor"`
	Savings float64 `json:"savings"`
}

// VendorTotals groups the table by vendor, sums total prices, and sorts
// ascending. The sort is stable, so vendors with equal totals keep their
// first-encounter order; the recommended vendor is always the first entry.
func VendorTotals(items []offer.LineItem) []VendorTotal {
	idx := make(map[string]int)
	var totals []VendorTotal
	for _, it := range items {
		i, ok := idx[it.Vendor]
		if !ok {
			i = len(totals)
			idx[it.Vendor] = i
			totals = append(totals, VendorTotal{Vendor: it.Vendor})
		}
		totals[i].Total += it.TotalPrice
	}
	sort.SliceStable(totals, func(a, b int) bool {
		return totals[a].Total < totals[b].Total
	})
	return totals
}

// Recommended returns the vendor with the lowest summed total, or "" for an
// empty table.
func Recommended(totals []VendorTotal) string {
	if len(totals) == 0 {
		return ""
	}
	return totals[0].Vendor
}

// BuildPivot constructs the price-comparison matrix: rows are codes, columns
// are vendors, cells are unit prices. When a vendor offers the same code more
// than once the FIRST occurrence wins; later duplicates are ignored.
func BuildPivot(items []offer.LineItem) Pivot {
	var p Pivot
	vendorSeen := make(map[string]bool)
	rowIdx := make(map[string]int)
	cellSeen := make(map[string]map[string]bool)

	for _, it := range items {
		if !vendorSeen[it.Vendor] {
			vendorSeen[it.Vendor] = true
			p.Vendors = append(p.Vendors, it.Vendor)
		}

		ri, ok := rowIdx[it.Code]
		if !ok {
			ri = len(p.Rows)
			rowIdx[it.Code] = ri
			p.Rows = append(p.Rows, PivotRow{Code: it.Code})
			cellSeen[it.Code] = make(map[string]bool)
		}
		if cellSeen[it.Code][it.Vendor] {
			continue // keep-first on duplicate (code, vendor) pairs
		}
		cellSeen[it.Code][it.Vendor] = true
		p.Rows[ri].Cells = append(p.Rows[ri].Cells, Cell{Vendor: it.Vendor, Price: it.UnitPrice})
	}

	// Order each row's cells by the pivot's vendor column order.
	colIdx := make(map[string]int, len(p.Vendors))
	for i, v := range p.Vendors {
		colIdx[v] = i
	}
	for ri := range p.Rows {
		cells := p.Rows[ri].Cells
		sort.SliceStable(cells, func(a, b int) bool {
			return colIdx[cells[a].Vendor] < colIdx[cells[b].Vendor]
		})
	}
	return p
}

// Price looks up the unit price a vendor offers for the row's code.
func (r PivotRow) Price(vendor string) (float64, bool) {
	for _, c := range r.Cells {
		if c.Vendor == vendor {
			return c.Price, true
		}
	}
	return 0, false
}

// minCell returns the row's lowest-priced cell. Ties go to the earlier
// column. ok is false for a row with no cells.
func (r PivotRow) minCell() (Cell, bool) {
	if len(r.Cells) == 0 {
		return Cell{}, false
	}
	min := r.Cells[0]
	for _, c := range r.Cells[1:] {
		if c.Price < min.Price {
			min = c
		}
	}
	return min, true
}

// Cheapest selects, for each pivot row, the vendor with the minimum unit
// price. Ties break toward the earlier vendor column.
func Cheapest(p Pivot) []CheapestEntry {
	var out []CheapestEntry
	for _, row := range p.Rows {
		if min, ok := row.minCell(); ok {
			out = append(out, CheapestEntry{Code: row.Code, Vendor: min.Vendor, Price: min.Price})
		}
	}
	return out
}

// Outliers flags every pivot cell whose price is strictly greater than
// ratio × the row minimum. A cell at exactly the threshold is not flagged.
func Outliers(p Pivot, ratio float64) []OutlierFlag {
	var out []OutlierFlag
	for _, row := range p.Rows {
		min, ok := row.minCell()
		if !ok {
			continue
		}
		threshold := ratio * min.Price
		for _, c := range row.Cells {
			if c.Price > threshold {
				out = append(out, OutlierFlag{
					Code:     row.Code,
					Vendor:   c.Vendor,
					Price:    c.Price,
					RowMin:   min.Price,
					Exceeded: c.Price - threshold,
				})
			}
		}
	}
	return out
}

// Savings computes per-vendor potential savings: for every line item,
// (unit price − minimum unit price offered for that code) × quantity,
// summed by vendor. The per-code minimum is taken over all rows of the
// table, not the deduplicated pivot. Vendors appear in first-encounter
// order and are listed even when their savings are zero.
func Savings(items []offer.LineItem) []VendorSavings {
	minByCode := make(map[string]float64)
	for _, it := range items {
		if cur, ok := minByCode[it.Code]; !ok || it.UnitPrice < cur {
			minByCode[it.Code] = it.UnitPrice
		}
	}

	idx := make(map[string]int)
	var out []VendorSavings
	for _, it := range items {
		i, ok := idx[it.Vendor]
		if !ok {
			i = len(out)
			idx[it.Vendor] = i
			out = append(out, VendorSavings{Vendor: it.Vendor})
		}
		out[i].Savings += (it.UnitPrice - minByCode[it.Code]) * it.Quantity
	}
	return out
}
