package core

const (
	PassFull   PassType = "full"
	PassDinner PassType = "dinner"
	PassNone   PassType = "none"
)

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPending PaymentStatus = "pending"
)

const (
	// ConfirmAll treats every row as confirmed when the sheet carries no
	// confirmation column.
	ConfirmAll ConfirmPolicy = "all"
	// ConfirmNone treats every row as unconfirmed in the same situation.
	ConfirmNone ConfirmPolicy = "none"
)

type (
	PassType      string
	PaymentStatus string
	ConfirmPolicy string

	// GuestRecord is one data row of the guest sheet. Records are built once
	// per fetch and never mutated afterwards.
	GuestRecord struct {
		Name   string
		Sector string

		// Head counts per row; a single row may represent a party of several.
		DinnerCount  int
		FullDayCount int

		AmountDue  Money
		AmountPaid Money
		// AmountOutstanding is authoritative when the sheet supplies it; the
		// record builder derives due minus paid when the column is absent.
		AmountOutstanding Money

		Confirmed bool
		// HasConfirmed is false when the sheet has no confirmation column at
		// all; IsConfirmed then falls back to the configured policy.
		HasConfirmed bool

		Notes string
	}

	// CostLine is one data row of the cost sheet. Subtotal rows
	// ("Total"/"Totales") never become cost lines.
	CostLine struct {
		Product  string
		Category string
		Quantity int

		UnitPrice     Money
		TotalPrice    Money
		PerPersonCost Money
	}
)

// Persons returns how many attendees this row represents.
func (g GuestRecord) Persons() int {
	return g.DinnerCount + g.FullDayCount
}

// Pass classifies the row by its head counts. Rows reporting both counts are
// mixed groups; full pass wins the tie.
func (g GuestRecord) Pass() PassType {
	switch {
	case g.FullDayCount > 0:
		return PassFull
	case g.DinnerCount > 0:
		return PassDinner
	default:
		return PassNone
	}
}

// Payment derives the payment status from due, paid and outstanding amounts.
// Rows that match neither the paid nor the partial predicate are bucketed as
// pending, including rows with no amounts at all.
func (g GuestRecord) Payment() PaymentStatus {
	due := g.AmountDue.Centavos
	paid := g.AmountPaid.Centavos
	rest := g.AmountOutstanding.Centavos
	switch {
	case rest <= 0 && paid >= due && due > 0:
		return PaymentPaid
	case paid > 0 && paid < due && rest > 0:
		return PaymentPartial
	default:
		return PaymentPending
	}
}

// IsConfirmed reports whether the row counts as confirmed. Sheets without a
// confirmation column defer to the policy.
func (g GuestRecord) IsConfirmed(policy ConfirmPolicy) bool {
	if !g.HasConfirmed {
		return policy != ConfirmNone
	}
	return g.Confirmed
}

// Valid reports whether the policy is one of the supported values.
func (p ConfirmPolicy) Valid() bool {
	return p == ConfirmAll || p == ConfirmNone
}
