package monitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotops/slot-kpi-monitor/pkg/csv"
	"github.com/slotops/slot-kpi-monitor/pkg/monitor"
)

func TestVisible(t *testing.T) {
	store := newTestStore()
	// Slot A: NORMAL note; Slot B: weak GGR so the note differs; Slot C: no
	// numbers, empty note
	a := store.Add(csv.Row{Game: "Slot A", Turnover: "120000", Wins: "114000"})
	b := store.Add(csv.Row{Game: "Slot B", Turnover: "100000", Wins: "99500"})
	c := store.Add(csv.Row{Game: "Slot A"})
	records := store.Records()

	visible := monitor.Visible(records, monitor.AllGames, "")
	assert.Len(t, visible, 3)

	visible = monitor.Visible(records, "Slot A", "")
	require.Len(t, visible, 2)
	assert.Equal(t, a.ID, visible[0].ID)
	assert.Equal(t, c.ID, visible[1].ID)

	// note search is trimmed and case-insensitive
	visible = monitor.Visible(records, monitor.AllGames, "  EXPECTED Range ")
	require.Len(t, visible, 2)
	assert.Equal(t, a.ID, visible[0].ID)
	assert.Equal(t, b.ID, visible[1].ID)

	// both predicates must hold
	visible = monitor.Visible(records, "Slot B", "expected range")
	require.Len(t, visible, 1)
	assert.Equal(t, b.ID, visible[0].ID)

	visible = monitor.Visible(records, "Slot A", "no such note")
	assert.Empty(t, visible)
}

func TestGames(t *testing.T) {
	store := newTestStore()
	store.Add(csv.Row{Game: "Slot B"})
	store.Add(csv.Row{Game: "Slot A"})
	store.Add(csv.Row{Game: "Slot B"})
	store.Add(csv.Row{})

	assert.Equal(t, []string{"Slot A", "Slot B"}, monitor.Games(store.Records()))
}
