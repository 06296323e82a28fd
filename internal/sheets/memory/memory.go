// Package memory is the dev/test adapter: guest and cost data seeded from
// local CSV files, or from a built-in fixture when none exist.
package memory

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"invitados/internal/core"
	"invitados/internal/sheets"
)

// seedGuestsCSV mirrors the production sheet layout so the dev dashboard
// exercises the same parsing and classification paths.
const seedGuestsCSV = "Nombre,Sector,Cena,Todo el día,Debe Pagar,Monto Pagado,Falta Pagar,Observaciones\n" +
	"Santiago Cogorno,Amigos,0,1,65000,32500,32500,\n" +
	"Luciana Pérez,Familia,1,0,55000,55000,0,\n" +
	"Carlos López,Familia,1,0,55000,30000,25000,paga el resto en diciembre\n" +
	"Ana García,Amigos,0,1,65000,65000,0,\n" +
	"Denis Silva,Trabajo,1,0,55000,0,55000,\n"

const seedCostsCSV = "Producto,Categoría,Cantidad,Precio Unitario,Total,Por Persona\n" +
	"Quincho,Lugar,1,510000,510000,10200\n" +
	"DJ,Música,1,60000,60000,1200\n" +
	"Flete DJ,Música,1,60000,60000,1200\n" +
	"Total,,,,630000,\n"

type Store struct {
	mu     sync.Mutex
	guests []core.GuestRecord
	costs  []core.CostLine
}

// Ensure interface conformance
var (
	_ sheets.GuestSource = (*Store)(nil)
	_ sheets.CostSource  = (*Store)(nil)
)

func New(guests []core.GuestRecord, costs []core.CostLine) *Store {
	return &Store{guests: guests, costs: costs}
}

// NewFromFiles seeds the store from <base>/guests.csv and <base>/costs.csv,
// falling back to the built-in fixture for whichever file is absent.
func NewFromFiles(base string) *Store {
	guestText := readFileOr(filepath.Join(base, "guests.csv"), seedGuestsCSV)
	costText := readFileOr(filepath.Join(base, "costs.csv"), seedCostsCSV)

	guestRows := sheets.Tokenize(guestText, ',')
	var guests []core.GuestRecord
	if len(guestRows) > 0 {
		guests = sheets.BuildGuestRecords(guestRows, sheets.ResolveHeaders(guestRows[0], sheets.GuestFields))
	}
	costs := sheets.BuildCostLines(sheets.Tokenize(costText, ','))

	return New(guests, costs)
}

func (s *Store) FetchGuests(_ context.Context) ([]core.GuestRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.GuestRecord(nil), s.guests...), nil
}

func (s *Store) FetchCosts(_ context.Context) ([]core.CostLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.CostLine(nil), s.costs...), nil
}

func readFileOr(path, fallback string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}
	return string(data)
}
