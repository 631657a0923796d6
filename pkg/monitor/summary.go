package monitor

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/maps"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/slotops/slot-kpi-monitor/pkg/kpi"
)

// BlankGameLabel groups records with no game name.
const BlankGameLabel = "(blank)"

// GroupSummary aggregates one game's records over the visible set. It is
// built fresh on every Summarize call and never stored.
type GroupSummary struct {
	Game string

	// Days counts every record in the group, parseable or not.
	Days int

	// Turnover, Wins and GGR sum only the values that parsed; unparseable
	// values contribute nothing, to the sums or to any denominator.
	Turnover decimal.Decimal
	Wins     decimal.Decimal
	GGR      decimal.Decimal

	// MeanRTP averages the records with a defined RTP. Null when none have
	// one.
	MeanRTP decimal.NullDecimal

	// MinAvailability is the lowest defined availability in the group.
	MinAvailability decimal.NullDecimal

	// AnyEscalated is true when at least one record escalated.
	AnyEscalated bool
}

// Summarize groups the visible records by game name and accumulates the
// per-group totals. Summaries come back ordered by game label, ascending,
// under locale-aware collation.
func Summarize(visible []*Record) []GroupSummary {
	type group struct {
		GroupSummary
		rtpSum   decimal.Decimal
		rtpCount int64
	}

	byGame := make(map[string]*group)
	for _, r := range visible {
		label := r.Game
		if label == "" {
			label = BlankGameLabel
		}
		g := byGame[label]
		if g == nil {
			g = &group{GroupSummary: GroupSummary{Game: label}}
			byGame[label] = g
		}

		g.Days++
		if r.Turnover.Valid {
			g.Turnover = g.Turnover.Add(r.Turnover.Decimal)
		}
		if r.Wins.Valid {
			g.Wins = g.Wins.Add(r.Wins.Decimal)
		}
		if r.GGR.Valid {
			g.GGR = g.GGR.Add(r.GGR.Decimal)
		}
		if r.RTP.Valid {
			g.rtpSum = g.rtpSum.Add(r.RTP.Decimal)
			g.rtpCount++
		}
		if r.Availability.Valid {
			if !g.MinAvailability.Valid || r.Availability.Decimal.LessThan(g.MinAvailability.Decimal) {
				g.MinAvailability = r.Availability
			}
		}
		if r.Escalation == kpi.EscalationYes {
			g.AnyEscalated = true
		}
	}

	groups := maps.Values(byGame)
	coll := collate.New(language.English)
	sort.Slice(groups, func(i, j int) bool {
		return coll.CompareString(groups[i].Game, groups[j].Game) < 0
	})

	summaries := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		if g.rtpCount > 0 {
			g.MeanRTP = decimal.NullDecimal{
				Decimal: g.rtpSum.Div(decimal.NewFromInt(g.rtpCount)),
				Valid:   true,
			}
		}
		summaries = append(summaries, g.GroupSummary)
	}
	return summaries
}
