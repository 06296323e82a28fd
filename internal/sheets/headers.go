package sheets

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Field identifies a canonical column of the guest or cost sheet.
type Field string

const (
	FieldName        Field = "name"
	FieldSector      Field = "sector"
	FieldDinner      Field = "dinner"
	FieldFullDay     Field = "full_day"
	FieldDue         Field = "amount_due"
	FieldPaid        Field = "amount_paid"
	FieldOutstanding Field = "amount_outstanding"
	FieldConfirmed   Field = "confirmed"
	FieldNotes       Field = "notes"

	FieldProduct   Field = "product"
	FieldCategory  Field = "category"
	FieldQuantity  Field = "quantity"
	FieldUnitPrice Field = "unit_price"
	FieldTotal     Field = "total_price"
	FieldPerPerson Field = "per_person"
)

// ColumnMissing marks a field whose keyword matched no header cell. Not an
// error: dependent cells read as defaults.
const ColumnMissing = -1

// GuestFields maps guest fields to header keywords. Column order is never
// assumed; headers vary freely across sheet revisions ("Confirmó",
// "confirmo", "Confirmado"), so matching is keyword-based on normalized text.
// Later keywords cover older sheet schemas.
var GuestFields = map[Field][]string{
	FieldName:        {"nombre"},
	FieldSector:      {"sector"},
	FieldDinner:      {"cena", "noche"},
	FieldFullDay:     {"todo el dia", "full"},
	FieldDue:         {"debe pagar", "total"},
	FieldPaid:        {"pagado", "senia", "sena"},
	FieldOutstanding: {"falta", "saldo"},
	FieldConfirmed:   {"confirm"},
	FieldNotes:       {"observa", "nota"},
}

// CostFields maps cost-sheet fields to header keywords.
var CostFields = map[Field][]string{
	FieldProduct:   {"producto"},
	FieldCategory:  {"categoria", "rubro"},
	FieldQuantity:  {"cantidad"},
	FieldUnitPrice: {"precio unit", "unitario"},
	FieldTotal:     {"total"},
	FieldPerPerson: {"por persona", "per capita"},
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize prepares a cell for comparison: decompose, strip combining
// diacritical marks, lower-case, trim.
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// ResolveHeaders maps a header row to column indexes. For every field an
// exact match on a keyword wins over a substring match; fields whose keywords
// appear nowhere resolve to ColumnMissing.
func ResolveHeaders(header []string, fields map[Field][]string) map[Field]int {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = Normalize(h)
	}

	out := make(map[Field]int, len(fields))
	for f, keywords := range fields {
		out[f] = ColumnMissing
		for _, kw := range keywords {
			if idx := matchHeader(normalized, kw); idx != ColumnMissing {
				out[f] = idx
				break
			}
		}
	}
	return out
}

func matchHeader(normalized []string, keyword string) int {
	for i, h := range normalized {
		if h == keyword {
			return i
		}
	}
	for i, h := range normalized {
		if strings.Contains(h, keyword) {
			return i
		}
	}
	return ColumnMissing
}

// MissingFields lists the fields that did not resolve, sorted for stable log
// output. Adapters log this once per load instead of guessing positionally.
func MissingFields(cols map[Field]int) []Field {
	var out []Field
	for f, idx := range cols {
		if idx == ColumnMissing {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
