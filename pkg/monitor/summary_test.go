package monitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotops/slot-kpi-monitor/pkg/csv"
	"github.com/slotops/slot-kpi-monitor/pkg/monitor"
)

func TestSummarize(t *testing.T) {
	store := newTestStore()
	store.Add(csv.Row{Game: "Slot A", Turnover: "100", Wins: "90", Availability: "99.8%"})
	store.Add(csv.Row{Game: "Slot A", Turnover: "200", Wins: "180", Availability: "99.5%"})

	summaries := monitor.Summarize(store.Records())
	require.Len(t, summaries, 1)

	s := summaries[0]
	assert.Equal(t, "Slot A", s.Game)
	assert.Equal(t, 2, s.Days)
	assert.Equal(t, "300", s.Turnover.String())
	assert.Equal(t, "270", s.Wins.String())
	assert.Equal(t, "30", s.GGR.String())
	require.True(t, s.MeanRTP.Valid)
	assert.Equal(t, "0.9", s.MeanRTP.Decimal.String())
	require.True(t, s.MinAvailability.Valid)
	assert.Equal(t, "0.995", s.MinAvailability.Decimal.String())
	assert.False(t, s.AnyEscalated)
}

func TestSummarizeSkipsUnparseableValues(t *testing.T) {
	store := newTestStore()
	store.Add(csv.Row{Game: "Slot A", Turnover: "100", Wins: "90"})
	store.Add(csv.Row{Game: "Slot A"})

	summaries := monitor.Summarize(store.Records())
	require.Len(t, summaries, 1)

	s := summaries[0]
	// the blank record still counts a day but contributes to no sum and no
	// mean denominator
	assert.Equal(t, 2, s.Days)
	assert.Equal(t, "100", s.Turnover.String())
	assert.Equal(t, "90", s.Wins.String())
	require.True(t, s.MeanRTP.Valid)
	assert.Equal(t, "0.9", s.MeanRTP.Decimal.String())
}

func TestSummarizeNoRTP(t *testing.T) {
	store := newTestStore()
	// unparseable availability: a blank one would pick up the store default
	store.Add(csv.Row{Game: "Slot A", Availability: "garbage"})

	summaries := monitor.Summarize(store.Records())
	require.Len(t, summaries, 1)
	assert.False(t, summaries[0].MeanRTP.Valid)
	assert.False(t, summaries[0].MinAvailability.Valid)
}

func TestSummarizeGroupsAndSorts(t *testing.T) {
	store := newTestStore()
	store.Add(csv.Row{Game: "Slot B", Turnover: "80000", Wins: "70000"})
	store.Add(csv.Row{Turnover: "50", Wins: "40"})
	store.Add(csv.Row{Game: "Slot A", Turnover: "120000", Wins: "114000"})

	summaries := monitor.Summarize(store.Records())
	require.Len(t, summaries, 3)
	assert.Equal(t, monitor.BlankGameLabel, summaries[0].Game)
	assert.Equal(t, "Slot A", summaries[1].Game)
	assert.Equal(t, "Slot B", summaries[2].Game)
}

func TestSummarizeEscalation(t *testing.T) {
	store := newTestStore()
	// 99500/100000 is ALERT and a GGR of 500 is Weak: escalated
	store.Add(csv.Row{Game: "Slot A", Turnover: "100000", Wins: "99500"})
	store.Add(csv.Row{Game: "Slot A", Turnover: "120000", Wins: "114000"})
	store.Add(csv.Row{Game: "Slot B", Turnover: "120000", Wins: "114000"})

	summaries := monitor.Summarize(store.Records())
	require.Len(t, summaries, 2)
	assert.True(t, summaries[0].AnyEscalated)
	assert.False(t, summaries[1].AnyEscalated)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Empty(t, monitor.Summarize(nil))
}
