// Package services holds the dashboard data layer: it owns the in-memory
// record collection and replaces it wholesale on each successful reload.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"invitados/internal/core"
	"invitados/internal/sheets"
)

// Snapshot is one immutable load of the spreadsheet. Readers get the whole
// struct by value; the contained slices are never mutated after construction.
type Snapshot struct {
	Guests      []core.GuestRecord
	Costs       []core.CostLine
	Summary     core.Summary
	CostSummary core.CostSummary
	Sectors     []string
	LoadedAt    time.Time
}

// Dashboard owns the current snapshot. There is no partial update: a reload
// either swaps in a complete new snapshot or leaves the previous one alone.
type Dashboard struct {
	guests sheets.GuestSource
	costs  sheets.CostSource // nil when the event has no cost sheet
	policy core.ConfirmPolicy

	mu   sync.RWMutex
	snap *Snapshot

	// Concurrent reload requests collapse into a single fetch.
	group singleflight.Group
}

func NewDashboard(guests sheets.GuestSource, costs sheets.CostSource, policy core.ConfirmPolicy) *Dashboard {
	return &Dashboard{guests: guests, costs: costs, policy: policy}
}

// Reload fetches a fresh snapshot and swaps it in. A guest fetch failure
// keeps the previous snapshot untouched; a cost fetch failure is logged and
// the reload proceeds without cost data, since costs are a secondary sheet.
func (d *Dashboard) Reload(ctx context.Context) error {
	_, err, _ := d.group.Do("reload", func() (interface{}, error) {
		started := time.Now()
		guests, err := d.guests.FetchGuests(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch guests: %w", err)
		}

		var costs []core.CostLine
		if d.costs != nil {
			costs, err = d.costs.FetchCosts(ctx)
			if err != nil {
				slog.WarnContext(ctx, "Cost sheet fetch failed, loading guests only", "error", err)
				costs = nil
			}
		}

		snap := &Snapshot{
			Guests:      guests,
			Costs:       costs,
			Summary:     core.Summarize(guests, d.policy),
			CostSummary: core.SummarizeCosts(costs),
			Sectors:     core.Sectors(guests),
			LoadedAt:    time.Now(),
		}

		d.mu.Lock()
		d.snap = snap
		d.mu.Unlock()

		slog.InfoContext(ctx, "Snapshot reloaded",
			"guests", len(guests),
			"costs", len(costs),
			"sectors", len(snap.Sectors),
			"duration_ms", time.Since(started).Milliseconds())
		return nil, nil
	})
	return err
}

// Loaded reports whether at least one reload has succeeded.
func (d *Dashboard) Loaded() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.snap != nil
}

// Snapshot returns the current snapshot. ok is false before the first
// successful reload.
func (d *Dashboard) Snapshot() (Snapshot, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.snap == nil {
		return Snapshot{}, false
	}
	return *d.snap, true
}

// Summary returns the KPI counters of the confirmed population. The zero
// Summary is returned before the first load.
func (d *Dashboard) Summary() core.Summary {
	snap, _ := d.Snapshot()
	return snap.Summary
}

// FilteredGuests derives the table view for the given filter state. Each
// call returns a fresh slice; the snapshot is never mutated.
func (d *Dashboard) FilteredGuests(f core.FilterState) []core.GuestRecord {
	snap, ok := d.Snapshot()
	if !ok {
		return nil
	}
	return core.Filter(snap.Guests, f)
}

// Sectors returns the harvested sector values for filter options.
func (d *Dashboard) Sectors() []string {
	snap, ok := d.Snapshot()
	if !ok {
		return nil
	}
	return append([]string(nil), snap.Sectors...)
}
