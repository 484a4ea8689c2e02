package matcher

import "testing"

func TestExtractTerms(t *testing.T) {
	text := "CAMERON ARGENTINA\n" +
		"Incoterm: CFR Buenos Aires\n" +
		"Forma de pago: 30 dias fecha factura\n" +
		"Plazo de entrega: 6 semanas\n"

	got := ExtractTerms(text)
	if got.Incoterm != "CFR Buenos Aires" {
		t.Errorf("Incoterm = %q", got.Incoterm)
	}
	if got.PaymentTerm != "30 dias fecha factura" {
		t.Errorf("PaymentTerm = %q", got.PaymentTerm)
	}
	if got.DeliveryTerm != "6 semanas" {
		t.Errorf("DeliveryTerm = %q", got.DeliveryTerm)
	}
}

func TestExtractTermsFirstMatchWins(t *testing.T) {
	text := "Payment terms: net 30\n" +
		"Payment terms: net 60\n"
	got := ExtractTerms(text)
	if got.PaymentTerm != "net 30" {
		t.Errorf("PaymentTerm = %q, want %q", got.PaymentTerm, "net 30")
	}
}

func TestExtractTermsCaseInsensitive(t *testing.T) {
	got := ExtractTerms("FORMA DE PAGO: contado\nplazo de entrega - inmediato\n")
	if got.PaymentTerm != "contado" {
		t.Errorf("PaymentTerm = %q", got.PaymentTerm)
	}
	if got.DeliveryTerm != "inmediato" {
		t.Errorf("DeliveryTerm = %q", got.DeliveryTerm)
	}
}

func TestExtractTermsTradeLiteralFallback(t *testing.T) {
	got := ExtractTerms("All prices quoted FOB Houston unless stated.\n")
	if got.Incoterm != "FOB Houston unless stated." {
		t.Errorf("Incoterm = %q", got.Incoterm)
	}
}

func TestExtractTermsAbsent(t *testing.T) {
	got := ExtractTerms("No commercial language in this document.\n")
	if got.Incoterm != "" || got.PaymentTerm != "" || got.DeliveryTerm != "" {
		t.Errorf("ExtractTerms = %+v, want all empty", got)
	}
}
