package matcher

import (
	"testing"

	"github.com/federicolanz/offerscan/offer"
)

// ---------------------------------------------------------------------------
// MMA matcher
// ---------------------------------------------------------------------------

func TestMMAMatch(t *testing.T) {
	text := "Oferta N° 1020684\n" +
		"101 ABC-1 5 WIDGET GASKET 10.00 50.00\n" +
		"102 DEF-2 2 SEAL KIT 25,50 51,00\n" +
		"some narrative line without item shape\n"

	m := &MMAMatcher{}
	items, dropped := m.Match(text)
	if dropped != 0 {
		t.Errorf("dropped = %d, want 0", dropped)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}

	want := offer.LineItem{
		Code: "ABC-1", Description: "WIDGET GASKET",
		Quantity: 5, UnitPrice: 10.00, TotalPrice: 50.00,
		Vendor: "MMA",
	}
	if items[0] != want {
		t.Errorf("items[0] = %+v, want %+v", items[0], want)
	}

	if items[1].UnitPrice != 25.50 || items[1].TotalPrice != 51.00 {
		t.Errorf("comma-decimal prices = %v / %v, want 25.5 / 51", items[1].UnitPrice, items[1].TotalPrice)
	}
	if items[1].Description != "SEAL KIT" {
		t.Errorf("items[1].Description = %q, want %q", items[1].Description, "SEAL KIT")
	}
}

func TestMMAMatchNoItems(t *testing.T) {
	m := &MMAMatcher{}
	items, dropped := m.Match("plain prose with no line items at all")
	if len(items) != 0 || dropped != 0 {
		t.Errorf("Match on prose = (%d items, %d dropped), want (0, 0)", len(items), dropped)
	}
}

// ---------------------------------------------------------------------------
// Cameron matcher
// ---------------------------------------------------------------------------

func TestCameronMatch(t *testing.T) {
	text := "CAMERON ARGENTINA\n" +
		"Document number 55-102\n" +
		"10 2-123-456 4 EA USD 12.50 50.00\n" +
		"GATE VALVE BODY ASSEMBLY\n" +
		"20 9-876-543 1 EA USD 1,250.00 1,250.00\n" +
		"ACTUATOR SPARE KIT\n"

	m := &CameronMatcher{}
	items, dropped := m.Match(text)
	if dropped != 0 {
		t.Errorf("dropped = %d, want 0", dropped)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}

	if items[0].Code != "2-123-456" || items[0].Quantity != 4 {
		t.Errorf("items[0] = %+v", items[0])
	}
	// Description comes from the line below the numeric row.
	if items[0].Description != "GATE VALVE BODY ASSEMBLY" {
		t.Errorf("items[0].Description = %q", items[0].Description)
	}
	if items[0].UnitPrice != 12.50 || items[0].TotalPrice != 50.00 {
		t.Errorf("items[0] prices = %v / %v", items[0].UnitPrice, items[0].TotalPrice)
	}

	// Comma is a thousands separator in Cameron layouts.
	if items[1].UnitPrice != 1250.00 {
		t.Errorf("items[1].UnitPrice = %v, want 1250", items[1].UnitPrice)
	}
	if items[1].Description != "ACTUATOR SPARE KIT" {
		t.Errorf("items[1].Description = %q", items[1].Description)
	}
}

func TestCameronWithoutCurrencyColumn(t *testing.T) {
	// No currency literal between EA and the prices, and no following line
	// to take the description from.
	text := "1 AB-1 5 EA 10.00 50.00"
	m := &CameronMatcher{}
	items, _ := m.Match(text)
	if len(items) != 1 {
		t.Fatalf("len(items) = %d, want 1", len(items))
	}
	if items[0].Code != "AB-1" || items[0].Quantity != 5 || items[0].UnitPrice != 10 {
		t.Errorf("items[0] = %+v", items[0])
	}
	if items[0].Description != "" {
		t.Errorf("items[0].Description = %q, want empty", items[0].Description)
	}
}

// ---------------------------------------------------------------------------
// Generic fallback matcher
// ---------------------------------------------------------------------------

func TestGenericMatch(t *testing.T) {
	text := "Quotation 7781\n" +
		"1 X-100 3 HEX BOLT M12 2.50 7.50\n" +
		"PMP-9 2 CENTRIFUGAL PUMP 450,00 900,00\n"

	m := &GenericMatcher{}
	items, dropped := m.Match(text)
	if dropped != 0 {
		t.Errorf("dropped = %d, want 0", dropped)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}

	if items[0].Code != "X-100" || items[0].Description != "HEX BOLT M12" {
		t.Errorf("items[0] = %+v", items[0])
	}
	// Vendor is left for the dispatcher to stamp.
	if items[0].Vendor != "" {
		t.Errorf("items[0].Vendor = %q, want empty", items[0].Vendor)
	}
	// No leading sequence number on the second line.
	if items[1].Code != "PMP-9" || items[1].UnitPrice != 450 {
		t.Errorf("items[1] = %+v", items[1])
	}
}

func TestGenericMatchNothing(t *testing.T) {
	m := &GenericMatcher{}
	items, dropped := m.Match("Dear customer,\nplease find attached our terms.\n")
	if len(items) != 0 || dropped != 0 {
		t.Errorf("Match = (%d items, %d dropped), want (0, 0)", len(items), dropped)
	}
}
