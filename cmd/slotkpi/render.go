package main

import (
	"io"
	"strconv"

	"github.com/kyokomi/emoji/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"github.com/slotops/slot-kpi-monitor/pkg/fancy"
	"github.com/slotops/slot-kpi-monitor/pkg/kpi"
	"github.com/slotops/slot-kpi-monitor/pkg/monitor"
)

func renderGrid(w io.Writer, records []*monitor.Record) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", "Game", "Turnover", "Wins", "Avail", "RTP", "GGR", "RTP Status", "GGR Status", "Escalation", "Note"})
	table.SetAutoWrapText(false)
	for _, r := range records {
		table.Append([]string{
			r.Date,
			r.Game,
			r.TurnoverRaw,
			r.WinsRaw,
			r.AvailabilityRaw,
			fancy.Percent(r.RTP),
			fancy.Money(r.GGR),
			rtpPill(r.RTPStatus),
			ggrPill(r.GGRStatus),
			escalationPill(r.Escalation),
			r.Note,
		})
	}
	table.Render()
}

func renderSummary(w io.Writer, summaries []monitor.GroupSummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Game", "Days", "Turnover", "Wins", "GGR", "Avg RTP", "Min Avail", "Escalated"})
	for _, s := range summaries {
		escalated := emoji.Sprint(":white_check_mark:NO")
		if s.AnyEscalated {
			escalated = emoji.Sprint(":rotating_light:YES")
		}
		table.Append([]string{
			s.Game,
			strconv.Itoa(s.Days),
			money(s.Turnover),
			money(s.Wins),
			money(s.GGR),
			fancy.Percent(s.MeanRTP),
			fancy.Percent(s.MinAvailability),
			escalated,
		})
	}
	table.Render()
}

func money(d decimal.Decimal) string {
	return fancy.Money(decimal.NullDecimal{Decimal: d, Valid: true})
}

func rtpPill(status kpi.RTPStatus) string {
	switch status {
	case kpi.RTPAlert, kpi.RTPWatch:
		return fancy.Pill(fancy.Warn, string(status))
	case kpi.RTPLow:
		return fancy.Pill(fancy.Error, string(status))
	default:
		return fancy.Pill(fancy.Ok, string(status))
	}
}

func ggrPill(status kpi.GGRStatus) string {
	if status == kpi.GGRWeak {
		return fancy.Pill(fancy.Warn, string(status))
	}
	return fancy.Pill(fancy.Ok, string(status))
}

func escalationPill(escalation kpi.Escalation) string {
	if escalation == kpi.EscalationYes {
		return fancy.Pill(fancy.Error, string(escalation))
	}
	return fancy.Pill(fancy.Ok, string(escalation))
}
