package kpi

import (
	"github.com/shopspring/decimal"
)

// Thresholds control status classification. The zero value classifies
// nothing sensibly; start from DefaultThresholds.
type Thresholds struct {
	// RTPAlert is the exclusive lower bound for ALERT.
	RTPAlert decimal.Decimal

	// RTPWatch is the inclusive lower bound for WATCH.
	RTPWatch decimal.Decimal

	// RTPLow is the exclusive upper bound for LOW RTP.
	RTPLow decimal.Decimal

	// GGRMarginWeak is the exclusive upper margin bound for Weak.
	GGRMarginWeak decimal.Decimal

	// GGRFloor is the exclusive upper absolute bound for Weak, in currency
	// units. Margin and floor are independently sufficient.
	GGRFloor decimal.Decimal

	// AvailabilityLow is the exclusive upper bound for the availability
	// advisory note.
	AvailabilityLow decimal.Decimal
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		RTPAlert:        decimal.RequireFromString("0.98"),
		RTPWatch:        decimal.RequireFromString("0.97"),
		RTPLow:          decimal.RequireFromString("0.90"),
		GGRMarginWeak:   decimal.RequireFromString("0.01"),
		GGRFloor:        decimal.NewFromInt(1500),
		AvailabilityLow: decimal.RequireFromString("0.99"),
	}
}

// Calculator derives KPIs and status labels from parsed record values.
type Calculator struct {
	thresholds Thresholds
}

func NewCalculator(thresholds Thresholds) *Calculator {
	return &Calculator{thresholds: thresholds}
}

// RTP is wins over turnover. Null unless both values are present and
// turnover is positive.
func (c *Calculator) RTP(turnover, wins decimal.NullDecimal) decimal.NullDecimal {
	if !turnover.Valid || !wins.Valid || !turnover.Decimal.IsPositive() {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: wins.Decimal.Div(turnover.Decimal), Valid: true}
}

// GGR is turnover minus wins and may be negative. Null unless both values
// are present.
func (c *Calculator) GGR(turnover, wins decimal.NullDecimal) decimal.NullDecimal {
	if !turnover.Valid || !wins.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: turnover.Decimal.Sub(wins.Decimal), Valid: true}
}

// RTPStatus classifies rtp against the thresholds. The branches are
// evaluated in precedence order; exactly one fires for a non-null ratio.
func (c *Calculator) RTPStatus(rtp decimal.NullDecimal) RTPStatus {
	switch {
	case !rtp.Valid:
		return RTPStatusNone
	case rtp.Decimal.GreaterThan(c.thresholds.RTPAlert):
		return RTPAlert
	case rtp.Decimal.GreaterThanOrEqual(c.thresholds.RTPWatch):
		return RTPWatch
	case rtp.Decimal.LessThan(c.thresholds.RTPLow):
		return RTPLow
	default:
		return RTPNormal
	}
}

// GGRStatus is Weak when the margin is under GGRMarginWeak or the absolute
// revenue is under GGRFloor. Either condition alone suffices.
func (c *Calculator) GGRStatus(ggr, turnover decimal.NullDecimal) GGRStatus {
	if !ggr.Valid {
		return GGRStatusNone
	}
	if turnover.Valid && turnover.Decimal.IsPositive() {
		margin := ggr.Decimal.Div(turnover.Decimal)
		if margin.LessThan(c.thresholds.GGRMarginWeak) {
			return GGRWeak
		}
	}
	if ggr.Decimal.LessThan(c.thresholds.GGRFloor) {
		return GGRWeak
	}
	return GGROK
}

// Escalation is YES only for the ALERT plus Weak combination. Empty when
// either status is empty.
func (c *Calculator) Escalation(rtpStatus RTPStatus, ggrStatus GGRStatus) Escalation {
	if rtpStatus == RTPStatusNone || ggrStatus == GGRStatusNone {
		return EscalationNone
	}
	if rtpStatus == RTPAlert && ggrStatus == GGRWeak {
		return EscalationYes
	}
	return EscalationNo
}
