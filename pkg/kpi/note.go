package kpi

import (
	"github.com/shopspring/decimal"
)

const (
	noteAvailability = "Availability below target; recommend technical check and monitor impact on turnover/GGR."
	noteEscalation   = "RTP significantly above expected range, suppressing GGR. Monitor closely and escalate for review."
	noteAlert        = "RTP elevated above expected range; monitor closely and escalate if trend persists."
	noteWatch        = "RTP trending high; monitor next 24–48h."
	noteLow          = "RTP below average but within variance; positive impact on GGR."
	noteNormal       = "RTP within expected range; no action required."
)

// Note builds the advisory text for a record. Empty when the RTP status is
// empty. The checks are priority ordered and the first match wins; low
// availability outranks everything else.
func (c *Calculator) Note(availability decimal.NullDecimal, rtpStatus RTPStatus, escalation Escalation) string {
	if rtpStatus == RTPStatusNone {
		return ""
	}
	if availability.Valid && availability.Decimal.LessThan(c.thresholds.AvailabilityLow) {
		return noteAvailability
	}
	if escalation == EscalationYes {
		return noteEscalation
	}
	switch rtpStatus {
	case RTPAlert:
		return noteAlert
	case RTPWatch:
		return noteWatch
	case RTPLow:
		return noteLow
	}
	return noteNormal
}
