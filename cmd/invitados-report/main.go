// Command invitados-report prints a one-shot attendance and payment report
// to stdout. It reads the same configuration as the server, so it can run
// against the production sheet from a cron job or a terminal.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"invitados/internal/cli"
	"invitados/internal/core"
)

func main() {
	asJSON := flag.Bool("json", false, "emit the report as JSON")
	flag.Parse()

	cfg, logger := cli.Bootstrap()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ReloadTimeout)
	defer cancel()

	source := cli.NewSource(ctx, cfg, logger)

	guests, err := source.FetchGuests(ctx)
	if err != nil {
		logger.Error("Guest fetch failed", "error", err)
		os.Exit(1)
	}
	costs, err := source.FetchCosts(ctx)
	if err != nil {
		logger.Warn("Cost fetch failed, reporting guests only", "error", err)
		costs = nil
	}

	policy := core.ConfirmPolicy(cfg.ConfirmPolicy)
	summary := core.Summarize(guests, policy)
	costSummary := core.SummarizeCosts(costs)

	if *asJSON {
		printJSON(summary, costSummary, guests)
		return
	}
	printText(summary, costSummary, guests, policy)
}

func printJSON(s core.Summary, cs core.CostSummary, guests []core.GuestRecord) {
	out := map[string]any{
		"total_persons":        s.TotalPersons,
		"full_pass":            s.FullPass,
		"dinner_only":          s.DinnerOnly,
		"collected_centavos":   s.Collected.Centavos,
		"outstanding_centavos": s.Outstanding.Centavos,
		"rows":                 len(guests),
	}
	if cs.Items > 0 {
		out["cost_total_centavos"] = cs.TotalCost.Centavos
		out["cost_items"] = cs.Items
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(out)
}

func printText(s core.Summary, cs core.CostSummary, guests []core.GuestRecord, policy core.ConfirmPolicy) {
	fmt.Printf("Invitados: %d filas, %d personas confirmadas\n\n", len(guests), s.TotalPersons)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Día completo\t%d\n", s.FullPass)
	fmt.Fprintf(w, "Solo cena\t%d\n", s.DinnerOnly)
	fmt.Fprintf(w, "Recaudado\t%s\n", core.FormatCurrency(s.Collected))
	fmt.Fprintf(w, "Falta cobrar\t%s\n", core.FormatCurrency(s.Outstanding))
	if cs.Items > 0 {
		fmt.Fprintf(w, "Costo total\t%s (%d ítems)\n", core.FormatCurrency(cs.TotalCost), cs.Items)
	}
	_ = w.Flush()

	var pending int
	for _, g := range guests {
		if g.IsConfirmed(policy) && g.Payment() != core.PaymentPaid {
			pending++
		}
	}
	if pending > 0 {
		fmt.Printf("\nCon pagos pendientes o parciales: %d\n", pending)
	}
}
