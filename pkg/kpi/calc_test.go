package kpi_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotops/slot-kpi-monitor/pkg/kpi"
)

func nd(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

var null = decimal.NullDecimal{}

func TestRTP(t *testing.T) {
	calc := kpi.NewCalculator(kpi.DefaultThresholds())

	rtp := calc.RTP(nd("120000"), nd("114000"))
	require.True(t, rtp.Valid)
	require.Equal(t, "0.95", rtp.Decimal.String())

	assert.False(t, calc.RTP(nd("0"), nd("90")).Valid)
	assert.False(t, calc.RTP(nd("-5"), nd("90")).Valid)
	assert.False(t, calc.RTP(null, nd("90")).Valid)
	assert.False(t, calc.RTP(nd("100"), null).Valid)
}

func TestGGR(t *testing.T) {
	calc := kpi.NewCalculator(kpi.DefaultThresholds())

	ggr := calc.GGR(nd("120000"), nd("114000"))
	require.True(t, ggr.Valid)
	require.Equal(t, "6000", ggr.Decimal.String())

	// may be negative
	ggr = calc.GGR(nd("100"), nd("150"))
	require.True(t, ggr.Valid)
	require.Equal(t, "-50", ggr.Decimal.String())

	assert.False(t, calc.GGR(null, nd("90")).Valid)
	assert.False(t, calc.GGR(nd("100"), null).Valid)
}

func TestRTPStatus(t *testing.T) {
	calc := kpi.NewCalculator(kpi.DefaultThresholds())

	for _, tc := range []struct {
		rtp decimal.NullDecimal
		out kpi.RTPStatus
	}{
		{rtp: null, out: kpi.RTPStatusNone},
		// ALERT requires strictly greater than 0.98
		{rtp: nd("0.98"), out: kpi.RTPWatch},
		{rtp: nd("0.980001"), out: kpi.RTPAlert},
		{rtp: nd("1.05"), out: kpi.RTPAlert},
		{rtp: nd("0.97"), out: kpi.RTPWatch},
		{rtp: nd("0.90"), out: kpi.RTPNormal},
		{rtp: nd("0.8999"), out: kpi.RTPLow},
		{rtp: nd("0.5"), out: kpi.RTPLow},
		{rtp: nd("0.95"), out: kpi.RTPNormal},
	} {
		assert.Equal(t, tc.out, calc.RTPStatus(tc.rtp), "rtp %v", tc.rtp)
	}
}

func TestGGRStatus(t *testing.T) {
	calc := kpi.NewCalculator(kpi.DefaultThresholds())

	// margin 0.005 < 0.01 and absolute 1000 < 1500: both conditions agree
	assert.Equal(t, kpi.GGRWeak, calc.GGRStatus(nd("1000"), nd("200000")))

	// margin 0.14 is healthy but the absolute floor alone triggers Weak
	assert.Equal(t, kpi.GGRWeak, calc.GGRStatus(nd("1400"), nd("10000")))

	// 1600 clears the floor with a healthy margin
	assert.Equal(t, kpi.GGROK, calc.GGRStatus(nd("1600"), nd("10000")))

	// margin 0.005 triggers Weak even though 2000 clears the floor
	assert.Equal(t, kpi.GGRWeak, calc.GGRStatus(nd("2000"), nd("400000")))

	assert.Equal(t, kpi.GGROK, calc.GGRStatus(nd("6000"), nd("120000")))
	assert.Equal(t, kpi.GGRWeak, calc.GGRStatus(nd("-50"), nd("100")))

	// no turnover: only the absolute floor applies
	assert.Equal(t, kpi.GGROK, calc.GGRStatus(nd("2000"), null))
	assert.Equal(t, kpi.GGRWeak, calc.GGRStatus(nd("1000"), null))

	assert.Equal(t, kpi.GGRStatusNone, calc.GGRStatus(null, nd("100")))
}

func TestEscalation(t *testing.T) {
	calc := kpi.NewCalculator(kpi.DefaultThresholds())

	for _, tc := range []struct {
		rtp kpi.RTPStatus
		ggr kpi.GGRStatus
		out kpi.Escalation
	}{
		{rtp: kpi.RTPAlert, ggr: kpi.GGRWeak, out: kpi.EscalationYes},
		{rtp: kpi.RTPAlert, ggr: kpi.GGROK, out: kpi.EscalationNo},
		{rtp: kpi.RTPWatch, ggr: kpi.GGRWeak, out: kpi.EscalationNo},
		{rtp: kpi.RTPNormal, ggr: kpi.GGROK, out: kpi.EscalationNo},
		{rtp: kpi.RTPLow, ggr: kpi.GGRWeak, out: kpi.EscalationNo},
		{rtp: kpi.RTPStatusNone, ggr: kpi.GGRWeak, out: kpi.EscalationNone},
		{rtp: kpi.RTPAlert, ggr: kpi.GGRStatusNone, out: kpi.EscalationNone},
		{rtp: kpi.RTPStatusNone, ggr: kpi.GGRStatusNone, out: kpi.EscalationNone},
	} {
		assert.Equal(t, tc.out, calc.Escalation(tc.rtp, tc.ggr), "%s/%s", tc.rtp, tc.ggr)
	}
}

func TestNote(t *testing.T) {
	calc := kpi.NewCalculator(kpi.DefaultThresholds())

	// empty status yields an empty note no matter what else is set
	assert.Empty(t, calc.Note(nd("0.5"), kpi.RTPStatusNone, kpi.EscalationNone))

	// low availability outranks every other advisory
	note := calc.Note(nd("0.95"), kpi.RTPAlert, kpi.EscalationYes)
	assert.Contains(t, note, "Availability below target")

	note = calc.Note(nd("0.998"), kpi.RTPAlert, kpi.EscalationYes)
	assert.Contains(t, note, "escalate for review")

	note = calc.Note(nd("0.998"), kpi.RTPAlert, kpi.EscalationNo)
	assert.Contains(t, note, "RTP elevated")

	note = calc.Note(null, kpi.RTPWatch, kpi.EscalationNo)
	assert.Contains(t, note, "trending high")

	note = calc.Note(null, kpi.RTPLow, kpi.EscalationNo)
	assert.Contains(t, note, "positive impact on GGR")

	note = calc.Note(null, kpi.RTPNormal, kpi.EscalationNo)
	assert.Contains(t, note, "within expected range")
}
