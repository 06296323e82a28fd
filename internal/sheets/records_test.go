package sheets

import (
	"testing"

	"invitados/internal/core"
)

const guestCSV = "Nombre,Sector,Cena,Todo el día,Debe Pagar,Monto Pagado,Falta Pagar\n" +
	"Ana,VIP,0,1,65000,65000,0\n" +
	"Luis,General,1,0,55000,30000,25000\n"

func buildGuests(t *testing.T, csv string) []core.GuestRecord {
	t.Helper()
	rows := Tokenize(csv, ',')
	if len(rows) == 0 {
		t.Fatal("no rows tokenized")
	}
	return BuildGuestRecords(rows, ResolveHeaders(rows[0], GuestFields))
}

func TestBuildGuestRecords(t *testing.T) {
	recs := buildGuests(t, guestCSV)
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}

	ana := recs[0]
	if ana.Name != "Ana" || ana.Sector != "VIP" || ana.FullDayCount != 1 || ana.DinnerCount != 0 {
		t.Errorf("unexpected first record: %+v", ana)
	}
	if ana.AmountDue != core.Pesos(65000) || ana.AmountPaid != core.Pesos(65000) || ana.AmountOutstanding != core.Pesos(0) {
		t.Errorf("unexpected amounts: %+v", ana)
	}
	if ana.HasConfirmed {
		t.Error("sheet has no confirmation column, HasConfirmed must be false")
	}

	luis := recs[1]
	if luis.Pass() != core.PassDinner || luis.Payment() != core.PaymentPartial {
		t.Errorf("luis classified as %s/%s", luis.Pass(), luis.Payment())
	}
}

// The end-to-end scenario: tokenize, resolve, build, aggregate, filter.
func TestGuestPipelineEndToEnd(t *testing.T) {
	recs := buildGuests(t, guestCSV)

	s := core.Summarize(recs, core.ConfirmAll)
	if s.TotalPersons != 2 || s.FullPass != 1 || s.DinnerOnly != 1 {
		t.Errorf("counters = %d/%d/%d, want 2/1/1", s.TotalPersons, s.FullPass, s.DinnerOnly)
	}
	if s.Collected != core.Pesos(95000) {
		t.Errorf("Collected = %d centavos, want %d", s.Collected.Centavos, core.Pesos(95000).Centavos)
	}
	if s.Outstanding != core.Pesos(25000) {
		t.Errorf("Outstanding = %d centavos, want %d", s.Outstanding.Centavos, core.Pesos(25000).Centavos)
	}

	partial := core.Filter(recs, core.FilterState{Payment: core.PaymentFilter(core.PaymentPartial)})
	if len(partial) != 1 || partial[0].Name != "Luis" {
		t.Fatalf("partial filter = %+v, want only Luis", partial)
	}
}

func TestBuildGuestRecordsSkipsSpacerRows(t *testing.T) {
	csv := "Nombre,Sector,Cena,Todo el día,Debe Pagar,Monto Pagado,Falta Pagar\n" +
		",,,,,,\n" +
		"Ana,VIP,0,1,65000,65000,0\n" +
		"   ,General,1,0,55000,0,55000\n"
	recs := buildGuests(t, csv)
	if len(recs) != 1 || recs[0].Name != "Ana" {
		t.Fatalf("got %+v, want only Ana", recs)
	}
}

func TestBuildGuestRecordsConfirmationColumn(t *testing.T) {
	csv := "Nombre,Cena,Confirmó\n" +
		"Ana,1,sí\n" +
		"Luis,1,no\n" +
		"Denis,1,\n"
	recs := buildGuests(t, csv)
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
	for _, r := range recs {
		if !r.HasConfirmed {
			t.Fatalf("HasConfirmed false for %s with confirmation column present", r.Name)
		}
	}
	if !recs[0].Confirmed || recs[1].Confirmed || recs[2].Confirmed {
		t.Errorf("confirmed flags = %v/%v/%v, want true/false/false",
			recs[0].Confirmed, recs[1].Confirmed, recs[2].Confirmed)
	}
}

func TestBuildGuestRecordsDerivesOutstanding(t *testing.T) {
	csv := "Nombre,Cena,Debe Pagar,Monto Pagado\nLuis,1,55000,30000\n"
	recs := buildGuests(t, csv)
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].AmountOutstanding != core.Pesos(25000) {
		t.Errorf("derived outstanding = %d centavos, want %d",
			recs[0].AmountOutstanding.Centavos, core.Pesos(25000).Centavos)
	}
}

func TestBuildGuestRecordsRaggedRows(t *testing.T) {
	csv := "Nombre,Sector,Cena,Todo el día,Debe Pagar\nAna,VIP\n"
	recs := buildGuests(t, csv)
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if recs[0].DinnerCount != 0 || recs[0].AmountDue != (core.Money{}) {
		t.Errorf("short row should read defaults: %+v", recs[0])
	}
}

const costCSV = "Costos del evento,,,,,\n" +
	"Actualizado: diciembre,,,,,\n" +
	"Producto,Categoría,Cantidad,Precio Unitario,Total,Por Persona\n" +
	"Quincho,Lugar,1,\"$ 510.000\",\"$ 510.000\",\"$ 10.200\"\n" +
	"DJ,Música,1,60000,60000,1200\n" +
	"Total,,,,\"$ 570.000\",\n" +
	"Gaseosas,Bebidas,24,\"1.500\",\"36.000\",720\n" +
	"TOTALES,,,,,\n"

func TestBuildCostLines(t *testing.T) {
	lines := BuildCostLines(Tokenize(costCSV, ','))
	if len(lines) != 3 {
		t.Fatalf("got %d cost lines, want 3 (subtotal rows excluded): %+v", len(lines), lines)
	}
	if lines[0].Product != "Quincho" || lines[0].TotalPrice != core.Pesos(510000) {
		t.Errorf("unexpected first line: %+v", lines[0])
	}
	if lines[2].Product != "Gaseosas" || lines[2].Quantity != 24 || lines[2].UnitPrice != core.Pesos(1500) {
		t.Errorf("unexpected last line: %+v", lines[2])
	}

	s := core.SummarizeCosts(lines)
	if s.TotalCost != core.Pesos(606000) {
		t.Errorf("TotalCost = %d centavos, want %d (totals rows must not contribute)",
			s.TotalCost.Centavos, core.Pesos(606000).Centavos)
	}
}

func TestBuildCostLinesNoProductHeader(t *testing.T) {
	if lines := BuildCostLines(Tokenize("a,b\nc,d\n", ',')); lines != nil {
		t.Fatalf("expected nil without a producto header, got %+v", lines)
	}
	if lines := BuildCostLines(nil); lines != nil {
		t.Fatalf("expected nil for empty input, got %+v", lines)
	}
}
