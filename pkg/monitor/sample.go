package monitor

import (
	"github.com/slotops/slot-kpi-monitor/pkg/csv"
)

// SampleRows is a small demo data set covering a normal, a weak-margin and
// an escalated game.
func SampleRows() []csv.Row {
	return []csv.Row{
		{Date: "2026-01-01", Game: "Slot A", Turnover: "120000", Wins: "114000", Availability: "99.8%"},
		{Date: "2026-01-01", Game: "Slot B", Turnover: "80000", Wins: "70000", Availability: "99.5%"},
		{Date: "2026-01-01", Game: "Slot C", Turnover: "150000", Wins: "149000", Availability: "99.9%"},
	}
}
