// Package report renders analysis results as a downloadable multi-sheet
// XLSX workbook, one sheet per derived table.
package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/federicolanz/offerscan"
)

// Sheet names, one per derived table.
const (
	sheetConsolidated = "Consolidated"
	sheetTotals       = "Vendor Totals"
	sheetPivot        = "Price Comparison"
	sheetCheapest     = "Cheapest Vendor"
	sheetOutliers     = "Outliers"
	sheetSavings      = "Potential Savings"
)

// Workbook renders a Result into XLSX bytes: the consolidated table plus all
// five derived tables, each on its own sheet.
func Workbook(res *offerscan.Result) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeConsolidated(f, res); err != nil {
		return nil, err
	}
	if err := writeTotals(f, res); err != nil {
		return nil, err
	}
	if err := writePivot(f, res); err != nil {
		return nil, err
	}
	if err := writeCheapest(f, res); err != nil {
		return nil, err
	}
	if err := writeOutliers(f, res); err != nil {
		return nil, err
	}
	if err := writeSavings(f, res); err != nil {
		return nil, err
	}

	// Drop the default sheet and activate the consolidated table.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("deleting default sheet: %w", err)
	}
	if idx, err := f.GetSheetIndex(sheetConsolidated); err == nil {
		f.SetActiveSheet(idx)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// newSheet creates a sheet and writes its header row.
func newSheet(f *excelize.File, name string, headers []string) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("creating sheet %q: %w", name, err)
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(name, cell, h); err != nil {
			return err
		}
	}
	return nil
}

// setRow writes values left to right starting at column 1 of the given row.
// A nil value leaves the cell empty.
func setRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, v := range values {
		if v == nil {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func writeConsolidated(f *excelize.File, res *offerscan.Result) error {
	headers := []string{
		"Code", "Description", "Quantity",
		"Unit Price (USD)", "Total Price (USD)", "Vendor",
		"Incoterm", "Delivery Term", "Payment Term",
	}
	if err := newSheet(f, sheetConsolidated, headers); err != nil {
		return err
	}
	for i, it := range res.Items {
		err := setRow(f, sheetConsolidated, i+2, []any{
			it.Code, it.Description, it.Quantity,
			it.UnitPrice, it.TotalPrice, it.Vendor,
			it.Incoterm, it.DeliveryTerm, it.PaymentTerm,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeTotals(f *excelize.File, res *offerscan.Result) error {
	if err := newSheet(f, sheetTotals, []string{"Vendor", "Total Price (USD)"}); err != nil {
		return err
	}
	for i, t := range res.VendorTotals {
		if err := setRow(f, sheetTotals, i+2, []any{t.Vendor, t.Total}); err != nil {
			return err
		}
	}
	return nil
}

func writePivot(f *excelize.File, res *offerscan.Result) error {
	headers := append([]string{"Code"}, res.Pivot.Vendors...)
	if err := newSheet(f, sheetPivot, headers); err != nil {
		return err
	}
	for i, row := range res.Pivot.Rows {
		values := make([]any, 1+len(res.Pivot.Vendors))
		values[0] = row.Code
		for j, vendor := range res.Pivot.Vendors {
			// Vendors with no offer for this code stay empty.
			if price, ok := row.Price(vendor); ok {
				values[j+1] = price
			}
		}
		if err := setRow(f, sheetPivot, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func writeCheapest(f *excelize.File, res *offerscan.Result) error {
	if err := newSheet(f, sheetCheapest, []string{"Code", "Vendor", "Unit Price (USD)"}); err != nil {
		return err
	}
	for i, c := range res.Cheapest {
		if err := setRow(f, sheetCheapest, i+2, []any{c.Code, c.Vendor, c.Price}); err != nil {
			return err
		}
	}
	return nil
}

func writeOutliers(f *excelize.File, res *offerscan.Result) error {
	headers := []string{"Code", "Vendor", "Unit Price (USD)", "Row Minimum (USD)", "Exceeded By (USD)"}
	if err := newSheet(f, sheetOutliers, headers); err != nil {
		return err
	}
	for i, o := range res.Outliers {
		err := setRow(f, sheetOutliers, i+2, []any{o.Code, o.Vendor, o.Price, o.RowMin, o.Exceeded})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeSavings(f *excelize.File, res *offerscan.Result) error {
	if err := newSheet(f, sheetSavings, []string{"Vendor", "Potential Savings (USD)"}); err != nil {
		return err
	}
	for i, s := range res.Savings {
		if err := setRow(f, sheetSavings, i+2, []any{s.Vendor, s.Savings}); err != nil {
			return err
		}
	}
	return nil
}
