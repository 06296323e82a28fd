package core

type (
	// Summary holds the dashboard KPI counters. It always describes the whole
	// confirmed population, regardless of the table filters in effect.
	Summary struct {
		TotalPersons int
		FullPass     int
		DinnerOnly   int
		Collected    Money
		Outstanding  Money
	}

	// CostSummary aggregates the cost sheet.
	CostSummary struct {
		Items     int
		TotalCost Money
		PerPerson Money
	}
)

// Summarize reduces guest records into KPI counters. Only records confirmed
// under the policy contribute; pass counters sum the per-row head counts, not
// row counts, so a party of three counts as three.
func Summarize(guests []GuestRecord, policy ConfirmPolicy) Summary {
	var s Summary
	for _, g := range guests {
		if !g.IsConfirmed(policy) {
			continue
		}
		s.TotalPersons += g.Persons()
		s.FullPass += g.FullDayCount
		s.DinnerOnly += g.DinnerCount
		s.Collected = s.Collected.Add(g.AmountPaid)
		s.Outstanding = s.Outstanding.Add(g.AmountOutstanding)
	}
	return s
}

// SummarizeCosts totals the cost lines.
func SummarizeCosts(lines []CostLine) CostSummary {
	var s CostSummary
	for _, l := range lines {
		s.Items++
		s.TotalCost = s.TotalCost.Add(l.TotalPrice)
		s.PerPerson = s.PerPerson.Add(l.PerPersonCost)
	}
	return s
}
