package monitor

import (
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// AllGames is the game filter sentinel that passes every record.
const AllGames = "__all__"

// Visible returns the records passing both the game filter and the note
// query, in input order. gameFilter matches the game name exactly unless it
// is AllGames. noteQuery is trimmed and case-folded; a non-empty query must
// appear as a substring of the record's note.
func Visible(records []*Record, gameFilter, noteQuery string) []*Record {
	query := strings.ToLower(strings.TrimSpace(noteQuery))

	var visible []*Record
	for _, r := range records {
		if gameFilter != AllGames && r.Game != gameFilter {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(r.Note), query) {
			continue
		}
		visible = append(visible, r)
	}
	return visible
}

// Games returns the distinct non-blank game names in sorted order, for
// populating a filter control.
func Games(records []*Record) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		if r.Game != "" {
			seen[r.Game] = struct{}{}
		}
	}
	games := maps.Keys(seen)
	slices.Sort(games)
	return games
}
