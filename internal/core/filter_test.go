package core

import (
	"reflect"
	"testing"
)

func TestFilter(t *testing.T) {
	guests := testGuests()
	cases := []struct {
		name  string
		state FilterState
		want  []string
	}{
		{"no filters", FilterState{}, []string{"Ana", "Luis", "Denis"}},
		{"all wildcards", FilterState{Sector: FilterAll, Pass: FilterAll, Payment: FilterAll}, []string{"Ana", "Luis", "Denis"}},
		{"by sector", FilterState{Sector: "General"}, []string{"Luis", "Denis"}},
		{"by pass full", FilterState{Pass: PassFilter(PassFull)}, []string{"Ana"}},
		{"by pass dinner", FilterState{Pass: PassFilter(PassDinner)}, []string{"Luis", "Denis"}},
		{"by payment partial", FilterState{Payment: PaymentFilter(PaymentPartial)}, []string{"Luis"}},
		{"by payment paid", FilterState{Payment: PaymentFilter(PaymentPaid)}, []string{"Ana"}},
		{"combined", FilterState{Sector: "General", Payment: PaymentFilter(PaymentPending)}, []string{"Denis"}},
		{"unknown sector", FilterState{Sector: "Palco"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			for _, g := range Filter(guests, tc.state) {
				got = append(got, g.Name)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Filter(%+v) = %v, want %v", tc.state, got, tc.want)
			}
		})
	}
}

func TestFilterDoesNotMutate(t *testing.T) {
	guests := testGuests()
	orig := make([]GuestRecord, len(guests))
	copy(orig, guests)
	_ = Filter(guests, FilterState{Sector: "VIP"})
	if !reflect.DeepEqual(guests, orig) {
		t.Fatal("Filter mutated its input")
	}
}

func TestSectors(t *testing.T) {
	guests := append(testGuests(), GuestRecord{Name: "Sin sector"})
	got := Sectors(guests)
	want := []string{"General", "VIP"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sectors() = %v, want %v", got, want)
	}
}

func TestBlankSectorRowsMatchWildcardOnly(t *testing.T) {
	g := GuestRecord{Name: "X", DinnerCount: 1}
	if !(FilterState{Sector: FilterAll}).Matches(g) {
		t.Fatal("blank sector row should match the wildcard")
	}
	if (FilterState{Sector: "VIP"}).Matches(g) {
		t.Fatal("blank sector row should not match a concrete sector")
	}
}
