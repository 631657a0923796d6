// Package csv reads and writes the slot KPI interchange format.
package csv

import (
	"strings"
)

// Header is the export column order.
var Header = []string{"Date", "Game Name", "Turnover", "Wins", "Availability"}

var (
	dateHeaders         = []string{"date"}
	gameHeaders         = []string{"game name", "game", "gamename"}
	turnoverHeaders     = []string{"turnover"}
	winsHeaders         = []string{"wins"}
	availabilityHeaders = []string{"availability", "avail"}
)

// Row holds one record's raw field values. Export echoes these verbatim;
// derived KPIs are never carried in the interchange format.
type Row struct {
	// Line number of the row in the decoded table (1-based).
	Line int

	Date         string
	Game         string
	Turnover     string
	Wins         string
	Availability string
}

// Defaults fill blank date and availability fields on import.
type Defaults struct {
	Date         string
	Availability string
}

// Decode splits text into rows of fields. Quoted fields may span commas and
// newlines, a doubled quote inside a quoted field is a literal quote, and
// both \n and \r\n terminate lines. Rows whose every field is blank are
// dropped, so a trailing newline does not produce a phantom row. Bare quotes
// inside unquoted fields are not supported.
func Decode(text string) [][]string {
	var (
		rows     [][]string
		row      []string
		cur      strings.Builder
		inQuotes bool
	)

	flushRow := func() {
		row = append(row, cur.String())
		cur.Reset()
		for _, field := range row {
			if strings.TrimSpace(field) != "" {
				rows = append(rows, row)
				break
			}
		}
		row = nil
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch {
		case ch == '"' && inQuotes && i+1 < len(text) && text[i+1] == '"':
			cur.WriteByte('"')
			i++
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			row = append(row, cur.String())
			cur.Reset()
		case (ch == '\n' || ch == '\r') && !inQuotes:
			if ch == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			flushRow()
		default:
			cur.WriteByte(ch)
		}
	}
	flushRow()

	return rows
}

// Encode renders rows as CSV text: the header line followed by one line per
// row. Every data field is quoted with embedded quotes doubled.
func Encode(rows []Row) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, strings.Join(Header, ","))
	for _, row := range rows {
		lines = append(lines, encodeLine(
			row.Date,
			row.Game,
			row.Turnover,
			row.Wins,
			row.Availability,
		))
	}
	return strings.Join(lines, "\n")
}

func encodeLine(fields ...string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

// ParseRecords decodes text and maps each data row onto a Row. If any cell
// of the first decoded row is a recognized column name, that row is a header
// and columns are located by name, with missing columns reading as empty.
// Otherwise every row is data in the fixed Header order.
func ParseRecords(text string, defaults Defaults) []Row {
	table := Decode(text)
	if len(table) == 0 {
		return nil
	}

	header := make([]string, len(table[0]))
	for i, cell := range table[0] {
		header[i] = strings.ToLower(strings.TrimSpace(cell))
	}

	var (
		idxDate         = findColumn(header, dateHeaders)
		idxGame         = findColumn(header, gameHeaders)
		idxTurnover     = findColumn(header, turnoverHeaders)
		idxWins         = findColumn(header, winsHeaders)
		idxAvailability = findColumn(header, availabilityHeaders)
	)

	hasHeader := idxDate >= 0 || idxGame >= 0 || idxTurnover >= 0 || idxWins >= 0 || idxAvailability >= 0

	start := 0
	if hasHeader {
		start = 1
	} else {
		idxDate, idxGame, idxTurnover, idxWins, idxAvailability = 0, 1, 2, 3, 4
	}

	var rows []Row
	for i := start; i < len(table); i++ {
		cells := table[i]
		row := Row{
			Line:         i + 1,
			Date:         strings.TrimSpace(cellAt(cells, idxDate)),
			Game:         strings.TrimSpace(cellAt(cells, idxGame)),
			Turnover:     strings.TrimSpace(cellAt(cells, idxTurnover)),
			Wins:         strings.TrimSpace(cellAt(cells, idxWins)),
			Availability: strings.TrimSpace(cellAt(cells, idxAvailability)),
		}
		if row.Date == "" {
			row.Date = defaults.Date
		}
		if row.Availability == "" {
			row.Availability = defaults.Availability
		}
		rows = append(rows, row)
	}

	return rows
}

func cellAt(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

func findColumn(header []string, names []string) int {
	for i, h := range header {
		if stringInSet(h, names) {
			return i
		}
	}
	return -1
}

func stringInSet(s string, ss []string) bool {
	for _, x := range ss {
		if s == x {
			return true
		}
	}
	return false
}
