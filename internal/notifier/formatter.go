package notifier

import (
	"fmt"
	"strings"
	"time"

	"StockScout/internal/model"
)

// FormatScanReport renders a scan result into a Telegram-ready text block.
// Purely presentational: currency and prices round to 2 decimals, share
// counts to 4, and every dropped symbol and shortfall is surfaced.
func FormatScanReport(res *model.ScanResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>StockScout Scan</b> | %s\n\n", res.ScannedAt.Format("2006-01-02")))

	if res.Plan == nil || len(res.Plan.Picks) == 0 {
		b.WriteString("⚠️ No eligible picks found for the universe.\n")
		writeDropped(&b, res.Dropped)
		return b.String()
	}

	plan := res.Plan
	b.WriteString(fmt.Sprintf("💰 Budget: $%.2f\n", plan.TotalBudget))
	b.WriteString(fmt.Sprintf("📌 <b>Picks (top %d):</b>\n\n", len(plan.Picks)))

	tpPct := int(plan.TakeProfitPct * 100)
	slPct := int(plan.StopLossPct * 100)
	for i, p := range plan.Picks {
		b.WriteString(fmt.Sprintf("%d. <b>%s</b> — Price $%.2f | Buy shares: %.4f | Alloc $%.2f\n",
			i+1, p.Symbol, p.LastPrice, p.ShareCount, p.AllocatedBudget))
		b.WriteString(fmt.Sprintf("     TP: $%.2f (+%d%%)  SL: $%.2f (-%d%%)\n",
			p.TakeProfitPrice, tpPct, p.StopLossPrice, slPct))
	}

	if n := res.Shortfall(); n > 0 {
		b.WriteString(fmt.Sprintf("\n⚠️ Requested top %d but only %d symbols were eligible.\n",
			res.RequestedN, len(plan.Picks)))
	}
	writeDropped(&b, res.Dropped)

	b.WriteString("\nNote: This is a recommendation only. Review before trading.")
	return b.String()
}

func writeDropped(b *strings.Builder, dropped []model.DroppedSymbol) {
	if len(dropped) == 0 {
		return
	}
	b.WriteString("\n🚫 <b>Dropped symbols:</b>\n")
	for _, d := range dropped {
		b.WriteString(fmt.Sprintf("  • %s\n", d.Reason))
	}
}

// FormatConfigSummary renders the active scan parameters for the /config command.
func FormatConfigSummary(universe []string, topN int, tpPct, slPct, defaultBudget float64) string {
	var b strings.Builder
	b.WriteString("⚙️ <b>Scan configuration</b>\n\n")
	b.WriteString(fmt.Sprintf("Universe: %s\n", strings.Join(universe, ", ")))
	b.WriteString(fmt.Sprintf("Top N: %d\n", topN))
	b.WriteString(fmt.Sprintf("Take profit: +%.0f%% | Stop loss: -%.0f%%\n", tpPct*100, slPct*100))
	b.WriteString(fmt.Sprintf("Default budget: $%.2f\n", defaultBudget))
	b.WriteString(fmt.Sprintf("As of: %s\n", time.Now().Format("2006-01-02 15:04")))
	return b.String()
}
