package kpi

// RTPStatus classifies a return-to-player ratio.
type RTPStatus string

const (
	// RTPStatusNone means the ratio could not be computed.
	RTPStatusNone RTPStatus = ""

	// RTPAlert means the ratio is above the alert threshold.
	RTPAlert RTPStatus = "ALERT"

	// RTPWatch means the ratio is elevated but below the alert threshold.
	RTPWatch RTPStatus = "WATCH"

	// RTPLow means the ratio is below the low-water threshold.
	RTPLow RTPStatus = "LOW RTP"

	// RTPNormal means the ratio is within the expected band.
	RTPNormal RTPStatus = "NORMAL"
)

// GGRStatus classifies gross gaming revenue.
type GGRStatus string

const (
	GGRStatusNone GGRStatus = ""
	GGRWeak       GGRStatus = "Weak"
	GGROK         GGRStatus = "OK"
)

// Escalation flags records where a player-favorable RTP coincides with weak
// revenue, an anomaly worth investigating.
type Escalation string

const (
	EscalationNone Escalation = ""
	EscalationYes  Escalation = "YES"
	EscalationNo   Escalation = "NO"
)
