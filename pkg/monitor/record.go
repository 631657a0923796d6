// Package monitor owns the in-memory slot KPI record set and its derived
// state.
package monitor

import (
	"github.com/shopspring/decimal"

	"github.com/slotops/slot-kpi-monitor/pkg/csv"
	"github.com/slotops/slot-kpi-monitor/pkg/kpi"
)

// Field names a raw record field for mutation.
type Field string

const (
	FieldDate         Field = "date"
	FieldGame         Field = "game"
	FieldTurnover     Field = "turnover"
	FieldWins         Field = "wins"
	FieldAvailability Field = "availability"
)

// Record is one monitored day/game observation. The raw fields hold operator
// input verbatim so export can echo it losslessly. The derived fields are a
// pure function of the raw fields and are overwritten by recalculate on
// every mutation; nothing else may write them.
type Record struct {
	// ID is assigned at creation and never reused.
	ID string

	Date            string
	Game            string
	TurnoverRaw     string
	WinsRaw         string
	AvailabilityRaw string

	Turnover     decimal.NullDecimal
	Wins         decimal.NullDecimal
	Availability decimal.NullDecimal
	RTP          decimal.NullDecimal
	GGR          decimal.NullDecimal
	RTPStatus    kpi.RTPStatus
	GGRStatus    kpi.GGRStatus
	Escalation   kpi.Escalation
	Note         string
}

// recalculate re-parses the raw fields and rebuilds every derived field in
// dependency order.
func (r *Record) recalculate(calc *kpi.Calculator) {
	r.Turnover = kpi.ParseNumber(r.TurnoverRaw)
	r.Wins = kpi.ParseNumber(r.WinsRaw)
	r.Availability = kpi.ParseAvailability(r.AvailabilityRaw)

	r.RTP = calc.RTP(r.Turnover, r.Wins)
	r.GGR = calc.GGR(r.Turnover, r.Wins)

	r.RTPStatus = calc.RTPStatus(r.RTP)
	r.GGRStatus = calc.GGRStatus(r.GGR, r.Turnover)
	r.Escalation = calc.Escalation(r.RTPStatus, r.GGRStatus)
	r.Note = calc.Note(r.Availability, r.RTPStatus, r.Escalation)
}

// Raw returns the record's raw field values for export.
func (r *Record) Raw() csv.Row {
	return csv.Row{
		Date:         r.Date,
		Game:         r.Game,
		Turnover:     r.TurnoverRaw,
		Wins:         r.WinsRaw,
		Availability: r.AvailabilityRaw,
	}
}

// RawRows maps records onto their raw export rows, preserving order.
func RawRows(records []*Record) []csv.Row {
	rows := make([]csv.Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Raw())
	}
	return rows
}
