package sheets

import "invitados/internal/core"

// BuildGuestRecords assembles guest records from tokenized rows. The first
// row is the header (already resolved into cols). Rows whose name cell is
// blank after trimming are spacer rows and are dropped silently; a malformed
// source row is expected, never an error.
func BuildGuestRecords(rows [][]string, cols map[Field]int) []core.GuestRecord {
	if len(rows) < 2 {
		return nil
	}
	hasConfirmed := cols[FieldConfirmed] != ColumnMissing
	hasOutstanding := cols[FieldOutstanding] != ColumnMissing

	var out []core.GuestRecord
	for _, row := range rows[1:] {
		name := cellAt(row, cols[FieldName])
		if name == "" {
			continue
		}
		g := core.GuestRecord{
			Name:         name,
			Sector:       cellAt(row, cols[FieldSector]),
			DinnerCount:  parseCount(cellAt(row, cols[FieldDinner])),
			FullDayCount: parseCount(cellAt(row, cols[FieldFullDay])),
			AmountDue:    core.ParseCurrency(cellAt(row, cols[FieldDue])),
			AmountPaid:   core.ParseCurrency(cellAt(row, cols[FieldPaid])),
			HasConfirmed: hasConfirmed,
			Notes:        cellAt(row, cols[FieldNotes]),
		}
		if hasConfirmed {
			g.Confirmed = parseSiNo(cellAt(row, cols[FieldConfirmed]))
		}
		if hasOutstanding {
			g.AmountOutstanding = core.ParseCurrency(cellAt(row, cols[FieldOutstanding]))
		} else {
			// The outstanding column is authoritative when present; otherwise
			// derive it so payment status still classifies.
			g.AmountOutstanding = g.AmountDue.Sub(g.AmountPaid)
		}
		out = append(out, g)
	}
	return out
}

// BuildCostLines assembles cost lines from tokenized rows. Cost sheets carry
// a free-form preamble before the actual sub-table, so the builder scans for
// the row whose first cell is "producto" and treats it as the header.
// Subtotal rows ("Total"/"Totales") are structural and excluded from the
// collection, not just from display.
func BuildCostLines(rows [][]string) []core.CostLine {
	start := -1
	for i, row := range rows {
		if len(row) > 0 && Normalize(row[0]) == "producto" {
			start = i
			break
		}
	}
	if start == -1 || start == len(rows)-1 {
		return nil
	}
	cols := ResolveHeaders(rows[start], CostFields)

	var out []core.CostLine
	for _, row := range rows[start+1:] {
		product := cellAt(row, cols[FieldProduct])
		if product == "" {
			continue
		}
		if n := Normalize(product); n == "total" || n == "totales" {
			continue
		}
		out = append(out, core.CostLine{
			Product:       product,
			Category:      cellAt(row, cols[FieldCategory]),
			Quantity:      parseCount(cellAt(row, cols[FieldQuantity])),
			UnitPrice:     core.ParseCurrency(cellAt(row, cols[FieldUnitPrice])),
			TotalPrice:    core.ParseCurrency(cellAt(row, cols[FieldTotal])),
			PerPersonCost: core.ParseCurrency(cellAt(row, cols[FieldPerPerson])),
		})
	}
	return out
}
