package sheets

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Confirmó", "confirmo"},
		{"  Todo el Día ", "todo el dia"},
		{"SEÑA", "sena"},
		{"Observaciones", "observaciones"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveHeaders(t *testing.T) {
	header := []string{"Nombre", "Sector", "Cena", "Todo el día", "Debe Pagar", "Monto Pagado", "Falta Pagar", "Confirmó", "Observaciones"}
	cols := ResolveHeaders(header, GuestFields)

	want := map[Field]int{
		FieldName:        0,
		FieldSector:      1,
		FieldDinner:      2,
		FieldFullDay:     3,
		FieldDue:         4,
		FieldPaid:        5,
		FieldOutstanding: 6,
		FieldConfirmed:   7,
		FieldNotes:       8,
	}
	for f, idx := range want {
		if cols[f] != idx {
			t.Errorf("field %s resolved to %d, want %d", f, cols[f], idx)
		}
	}
	if len(MissingFields(cols)) != 0 {
		t.Errorf("unexpected missing fields: %v", MissingFields(cols))
	}
}

func TestResolveHeadersVariants(t *testing.T) {
	// Older sheet revisions spell the same columns differently.
	header := []string{"nombre", "sector", "NOCHE", "Full Pass", "Total", "Seña", "Saldo"}
	cols := ResolveHeaders(header, GuestFields)
	if cols[FieldDinner] != 2 || cols[FieldFullDay] != 3 {
		t.Errorf("pass columns: dinner=%d fullday=%d", cols[FieldDinner], cols[FieldFullDay])
	}
	if cols[FieldDue] != 4 || cols[FieldPaid] != 5 || cols[FieldOutstanding] != 6 {
		t.Errorf("amount columns: due=%d paid=%d outstanding=%d", cols[FieldDue], cols[FieldPaid], cols[FieldOutstanding])
	}
	if cols[FieldConfirmed] != ColumnMissing {
		t.Errorf("confirmed should be missing, got %d", cols[FieldConfirmed])
	}
}

// Swapping two header columns (and their data) must produce identical
// resolved records; nothing may depend on column position.
func TestResolveHeadersOrderIndependent(t *testing.T) {
	csvA := "Nombre,Sector,Cena,Todo el día\nAna,VIP,0,1\n"
	csvB := "Sector,Nombre,Todo el día,Cena\nVIP,Ana,1,0\n"

	rowsA := Tokenize(csvA, ',')
	rowsB := Tokenize(csvB, ',')
	recsA := BuildGuestRecords(rowsA, ResolveHeaders(rowsA[0], GuestFields))
	recsB := BuildGuestRecords(rowsB, ResolveHeaders(rowsB[0], GuestFields))

	if !reflect.DeepEqual(recsA, recsB) {
		t.Fatalf("reordered columns changed records:\nA: %#v\nB: %#v", recsA, recsB)
	}
}

func TestMissingFields(t *testing.T) {
	header := []string{"Nombre", "Cena"}
	cols := ResolveHeaders(header, GuestFields)
	missing := MissingFields(cols)
	if len(missing) != 7 {
		t.Fatalf("missing = %v, want 7 entries", missing)
	}
	for _, f := range missing {
		if f == FieldName || f == FieldDinner {
			t.Errorf("field %s reported missing but is present", f)
		}
	}
}

func TestParseCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"12", 12},
		{"12 personas", 12},
		{"", 0},
		{"x", 0},
		{" 3 ", 3},
		{"-2", -2},
	}
	for _, tc := range cases {
		if got := parseCount(tc.in); got != tc.want {
			t.Errorf("parseCount(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseSiNo(t *testing.T) {
	for _, yes := range []string{"si", "Sí", "SI", "sí "} {
		if !parseSiNo(yes) {
			t.Errorf("parseSiNo(%q) = false, want true", yes)
		}
	}
	for _, no := range []string{"", "no", "x", "s"} {
		if parseSiNo(no) {
			t.Errorf("parseSiNo(%q) = true, want false", no)
		}
	}
}
