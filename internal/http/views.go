package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"invitados/internal/core"
	"invitados/internal/services"
)

// guestRow is one table line with money already formatted for display.
type guestRow struct {
	Name        string
	Sector      string
	Persons     int
	Pass        core.PassType
	Payment     core.PaymentStatus
	Due         string
	Paid        string
	Outstanding string
	Confirmed   bool
	Notes       string
}

type guestsView struct {
	Rows    []guestRow
	Count   int
	Filter  core.FilterState
	Sectors []string
}

type summaryView struct {
	TotalPersons int
	FullPass     int
	DinnerOnly   int
	Collected    string
	Outstanding  string
	LoadedAt     string
}

type costRow struct {
	Product   string
	Category  string
	Quantity  int
	UnitPrice string
	Total     string
	PerPerson string
}

type costsView struct {
	Rows      []costRow
	Items     int
	TotalCost string
	PerPerson string
}

func buildGuestRows(guests []core.GuestRecord) []guestRow {
	rows := make([]guestRow, 0, len(guests))
	for _, g := range guests {
		rows = append(rows, guestRow{
			Name:        g.Name,
			Sector:      g.Sector,
			Persons:     g.Persons(),
			Pass:        g.Pass(),
			Payment:     g.Payment(),
			Due:         core.FormatCurrency(g.AmountDue),
			Paid:        core.FormatCurrency(g.AmountPaid),
			Outstanding: core.FormatCurrency(g.AmountOutstanding),
			Confirmed:   g.Confirmed || !g.HasConfirmed,
			Notes:       g.Notes,
		})
	}
	return rows
}

func buildSummaryView(s core.Summary, loadedAt time.Time) summaryView {
	v := summaryView{
		TotalPersons: s.TotalPersons,
		FullPass:     s.FullPass,
		DinnerOnly:   s.DinnerOnly,
		Collected:    core.FormatCurrency(s.Collected),
		Outstanding:  core.FormatCurrency(s.Outstanding),
	}
	if !loadedAt.IsZero() {
		v.LoadedAt = loadedAt.Format("02/01 15:04")
	}
	return v
}

func buildCostsView(snap services.Snapshot) costsView {
	v := costsView{
		Items:     snap.CostSummary.Items,
		TotalCost: core.FormatCurrency(snap.CostSummary.TotalCost),
		PerPerson: core.FormatCurrency(snap.CostSummary.PerPerson),
	}
	for _, l := range snap.Costs {
		v.Rows = append(v.Rows, costRow{
			Product:   l.Product,
			Category:  l.Category,
			Quantity:  l.Quantity,
			UnitPrice: core.FormatCurrency(l.UnitPrice),
			Total:     core.FormatCurrency(l.TotalPrice),
			PerPerson: core.FormatCurrency(l.PerPersonCost),
		})
	}
	return v
}

// parseFilterState reads the table selection from query parameters. Unknown
// values collapse to the wildcard so a stale or hand-edited URL still renders.
func parseFilterState(r *http.Request) core.FilterState {
	q := r.URL.Query()
	f := core.FilterState{
		Sector: strings.TrimSpace(q.Get("sector")),
	}

	switch p := core.PassFilter(strings.TrimSpace(q.Get("pass"))); p {
	case core.PassFilter(core.PassFull), core.PassFilter(core.PassDinner), core.PassFilter(core.PassNone):
		f.Pass = p
	default:
		f.Pass = core.FilterAll
	}

	switch p := core.PaymentFilter(strings.TrimSpace(q.Get("payment"))); p {
	case core.PaymentFilter(core.PaymentPaid), core.PaymentFilter(core.PaymentPartial), core.PaymentFilter(core.PaymentPending):
		f.Payment = p
	default:
		f.Payment = core.FilterAll
	}

	return f
}

// partialKey identifies a rendered partial for one snapshot generation. The
// LoadedAt component makes entries from previous snapshots unreachable even
// before the reload handler clears the cache.
func partialKey(name string, f core.FilterState, loadedAt time.Time) string {
	return name + "|" + f.Sector + "|" + string(f.Pass) + "|" + string(f.Payment) +
		"|" + strconv.FormatInt(loadedAt.UnixNano(), 10)
}
