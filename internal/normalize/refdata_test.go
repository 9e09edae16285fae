package normalize

import "testing"

func TestAgency_CompoundIDWinsOverBareID(t *testing.T) {
	rec := Record{"agency_id": "A7", "id": "ROW-99", "display_name": "Health Board"}
	a, ok := Agency(rec)
	if !ok {
		t.Fatal("expected agency")
	}
	if a.ID != "A7" || a.Name != "Health Board" {
		t.Fatalf("unexpected agency: %+v", a)
	}
}

func TestAgency_NumericID(t *testing.T) {
	rec := Record{"id": int64(12), "name": "Registry"}
	a, ok := Agency(rec)
	if !ok || a.ID != "12" || a.Name != "Registry" {
		t.Fatalf("unexpected agency: %+v ok=%v", a, ok)
	}
}

func TestAgency_UntitledFallback(t *testing.T) {
	a, ok := Agency(Record{"agencyid": "A2"})
	if !ok || a.Name != "Untitled Agency" {
		t.Fatalf("unexpected agency: %+v ok=%v", a, ok)
	}
}

func TestAgency_NoIdentifier(t *testing.T) {
	if _, ok := Agency(Record{"display_name": "Ghost"}); ok {
		t.Fatal("expected rejection without identifier")
	}
}

func TestProcedureType_SynthesizedName(t *testing.T) {
	p, ok := ProcedureType(Record{"procedure_id": int64(4)})
	if !ok || p.ID != 4 || p.Name != "Procedure 4" {
		t.Fatalf("unexpected procedure: %+v ok=%v", p, ok)
	}
}

func TestProcedureType_NameVariants(t *testing.T) {
	p, ok := ProcedureType(Record{"procedureid": 9.0, "displayname": "Import Permit"})
	if !ok || p.ID != 9 || p.Name != "Import Permit" {
		t.Fatalf("unexpected procedure: %+v ok=%v", p, ok)
	}
}

func TestCurrency(t *testing.T) {
	if c := Currency(Record{"currency": "EUR"}); c != "EUR" {
		t.Fatalf("expected EUR, got %q", c)
	}
	if c := Currency(Record{"currency_code": "GBP"}); c != "GBP" {
		t.Fatalf("expected GBP, got %q", c)
	}
	if c := Currency(Record{}); c != "USD" {
		t.Fatalf("expected USD default, got %q", c)
	}
}
