package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"invitados/internal/core"
	applog "invitados/internal/log"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleReady reports ready only once a snapshot has been loaded, so a
// fronting proxy does not route traffic to an empty dashboard.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if !s.dash.Loaded() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("loading"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	snap, loaded := s.dash.Snapshot()
	filter := parseFilterState(r)

	data := struct {
		Loaded  bool
		Summary summaryView
		Guests  guestsView
		Costs   costsView
		HasCost bool
	}{
		Loaded:  loaded,
		Summary: buildSummaryView(snap.Summary, snap.LoadedAt),
		Guests: guestsView{
			Rows:    buildGuestRows(core.Filter(snap.Guests, filter)),
			Filter:  filter,
			Sectors: snap.Sectors,
		},
		Costs:   buildCostsView(snap),
		HasCost: len(snap.Costs) > 0,
	}
	data.Guests.Count = len(data.Guests.Rows)

	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Index template execution failed", "error", err, "template", "index.html")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleGuestsPartial renders the guest table for the current filter state.
func (s *Server) handleGuestsPartial(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	snap, loaded := s.dash.Snapshot()
	if !loaded {
		_, _ = w.Write([]byte(`<div id="guest-table" class="placeholder">Sin datos todavía</div>`))
		return
	}

	filter := parseFilterState(r)
	key := partialKey("guests", filter, snap.LoadedAt)
	if html, found := s.partialCache.Get(key); found {
		applog.FromContext(r.Context()).DebugContext(r.Context(), "Guest partial cache hit", "filter", key)
		_, _ = w.Write([]byte(html))
		return
	}

	view := guestsView{
		Rows:    buildGuestRows(core.Filter(snap.Guests, filter)),
		Filter:  filter,
		Sectors: snap.Sectors,
	}
	view.Count = len(view.Rows)

	s.renderPartial(w, r, "guest_table.html", key, view)
}

// handleSummaryPartial renders the KPI cards. The cards always describe the
// whole confirmed population; filter parameters on the URL are ignored.
func (s *Server) handleSummaryPartial(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	snap, loaded := s.dash.Snapshot()
	if !loaded {
		_, _ = w.Write([]byte(`<div id="summary-cards" class="placeholder">Sin datos todavía</div>`))
		return
	}

	key := partialKey("summary", core.FilterState{}, snap.LoadedAt)
	if html, found := s.partialCache.Get(key); found {
		_, _ = w.Write([]byte(html))
		return
	}

	s.renderPartial(w, r, "summary_cards.html", key, buildSummaryView(snap.Summary, snap.LoadedAt))
}

func (s *Server) handleCostsPartial(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	snap, loaded := s.dash.Snapshot()
	if !loaded || len(snap.Costs) == 0 {
		_, _ = w.Write([]byte(`<div id="cost-table" class="placeholder">Sin planilla de costos</div>`))
		return
	}

	key := partialKey("costs", core.FilterState{}, snap.LoadedAt)
	if html, found := s.partialCache.Get(key); found {
		_, _ = w.Write([]byte(html))
		return
	}

	s.renderPartial(w, r, "cost_table.html", key, buildCostsView(snap))
}

// renderPartial executes a template into a buffer so failed renders never
// leave a half-written response, then caches the result under key.
func (s *Server) renderPartial(w http.ResponseWriter, r *http.Request, name, key string, data any) {
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Template execution error", "error", err, "template", name)
		_, _ = w.Write([]byte(`<div class="placeholder">Error de renderizado</div>`))
		return
	}
	s.partialCache.Set(key, buf.String())
	_, _ = buf.WriteTo(w)
}

type apiSummary struct {
	TotalPersons       int    `json:"total_persons"`
	FullPass           int    `json:"full_pass"`
	DinnerOnly         int    `json:"dinner_only"`
	CollectedCentavos  int64  `json:"collected_centavos"`
	Collected          string `json:"collected"`
	OutstandingCents   int64  `json:"outstanding_centavos"`
	Outstanding        string `json:"outstanding"`
	CostTotalCentavos  int64  `json:"cost_total_centavos,omitempty"`
	CostTotal          string `json:"cost_total,omitempty"`
	LoadedAt           string `json:"loaded_at"`
}

func (s *Server) handleAPISummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	snap, loaded := s.dash.Snapshot()
	if !loaded {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no snapshot loaded yet"})
		return
	}

	out := apiSummary{
		TotalPersons:      snap.Summary.TotalPersons,
		FullPass:          snap.Summary.FullPass,
		DinnerOnly:        snap.Summary.DinnerOnly,
		CollectedCentavos: snap.Summary.Collected.Centavos,
		Collected:         core.FormatCurrency(snap.Summary.Collected),
		OutstandingCents:  snap.Summary.Outstanding.Centavos,
		Outstanding:       core.FormatCurrency(snap.Summary.Outstanding),
		LoadedAt:          snap.LoadedAt.Format(time.RFC3339),
	}
	if snap.CostSummary.Items > 0 {
		out.CostTotalCentavos = snap.CostSummary.TotalCost.Centavos
		out.CostTotal = core.FormatCurrency(snap.CostSummary.TotalCost)
	}
	_ = json.NewEncoder(w).Encode(out)
}

type apiGuest struct {
	Name        string `json:"name"`
	Sector      string `json:"sector,omitempty"`
	Persons     int    `json:"persons"`
	Pass        string `json:"pass"`
	Payment     string `json:"payment"`
	Due         string `json:"due"`
	Paid        string `json:"paid"`
	Outstanding string `json:"outstanding"`
	Confirmed   bool   `json:"confirmed"`
	Notes       string `json:"notes,omitempty"`
}

func (s *Server) handleAPIGuests(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	snap, loaded := s.dash.Snapshot()
	if !loaded {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no snapshot loaded yet"})
		return
	}

	filter := parseFilterState(r)
	guests := core.Filter(snap.Guests, filter)
	out := make([]apiGuest, 0, len(guests))
	for _, g := range guests {
		out = append(out, apiGuest{
			Name:        g.Name,
			Sector:      g.Sector,
			Persons:     g.Persons(),
			Pass:        string(g.Pass()),
			Payment:     string(g.Payment()),
			Due:         core.FormatCurrency(g.AmountDue),
			Paid:        core.FormatCurrency(g.AmountPaid),
			Outstanding: core.FormatCurrency(g.AmountOutstanding),
			Confirmed:   g.Confirmed || !g.HasConfirmed,
			Notes:       g.Notes,
		})
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleReload triggers a fresh fetch from the spreadsheet and invalidates
// every cached partial.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.reloadTimeout)
	defer cancel()

	if err := s.dash.Reload(ctx); err != nil {
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Manual reload failed", applog.FieldError, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "reload failed"})
		return
	}
	s.partialCache.Clear()

	snap, _ := s.dash.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":    "ok",
		"guests":    len(snap.Guests),
		"costs":     len(snap.Costs),
		"loaded_at": snap.LoadedAt.Format(time.RFC3339),
	})
}
