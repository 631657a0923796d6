package monitor

import (
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/slotops/slot-kpi-monitor/pkg/csv"
	"github.com/slotops/slot-kpi-monitor/pkg/kpi"
)

// Store owns the ordered record collection. Add, Update, Remove and
// ReplaceAll are the only paths that touch raw fields and each recalculates
// before returning, so a record can never be observed with stale derived
// fields. The pipeline is synchronous and single-threaded; Store carries no
// lock and callers that introduce goroutines must serialize access.
type Store struct {
	log      *zap.Logger
	calc     *kpi.Calculator
	defaults csv.Defaults

	records []*Record
}

func NewStore(log *zap.Logger, calc *kpi.Calculator, defaults csv.Defaults) *Store {
	return &Store{
		log:      log,
		calc:     calc,
		defaults: defaults,
	}
}

// Records returns the collection in insertion order, which is also display
// and export order. Callers must not mutate records directly.
func (s *Store) Records() []*Record {
	return s.records
}

// Get returns the record with the given id, or nil.
func (s *Store) Get(id string) *Record {
	for _, r := range s.records {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// Add appends a record built from raw. Blank date and availability fall back
// to the store defaults; the other fields are taken verbatim.
func (s *Store) Add(raw csv.Row) *Record {
	r := s.newRecord(raw)
	s.records = append(s.records, r)
	s.log.Debug("record added", zap.String("id", r.ID), zap.String("game", r.Game))
	return r
}

// Update stores a sanitized raw value on one field of the record and
// recalculates. An unknown id is ignored: the edit raced with a deletion and
// losing it is benign.
func (s *Store) Update(id string, field Field, raw string) {
	r := s.Get(id)
	if r == nil {
		s.log.Debug("update for unknown record", zap.String("id", id))
		return
	}

	switch field {
	case FieldDate:
		r.Date = raw
	case FieldGame:
		r.Game = raw
	case FieldTurnover:
		r.TurnoverRaw = digitsOnly(raw)
	case FieldWins:
		// no length limit on wins
		r.WinsRaw = digitsOnly(raw)
	case FieldAvailability:
		r.AvailabilityRaw = availabilityChars(raw)
	default:
		s.log.Debug("update for unknown field", zap.String("id", id), zap.String("field", string(field)))
		return
	}

	r.recalculate(s.calc)
	s.log.Debug("record updated", zap.String("id", id), zap.String("field", string(field)))
}

// Remove deletes the record with the given id; no-op if absent.
func (s *Store) Remove(id string) {
	for i, r := range s.records {
		if r.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.log.Debug("record removed", zap.String("id", id))
			return
		}
	}
}

// ReplaceAll discards the collection and installs a freshly recalculated
// record per row.
func (s *Store) ReplaceAll(rows []csv.Row) {
	records := make([]*Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, s.newRecord(row))
	}
	s.records = records
	s.log.Debug("records replaced", zap.Int("count", len(records)))
}

// Clear empties the collection.
func (s *Store) Clear() {
	s.ReplaceAll(nil)
}

// Import parses csvText and replaces the collection with its rows. Text with
// no data rows empties the store; that is not an error.
func (s *Store) Import(csvText string) {
	s.ReplaceAll(csv.ParseRecords(csvText, s.defaults))
}

// ImportFile reads the file at path and imports its contents. The file is
// read whole; the pipeline has no streaming mode.
func (s *Store) ImportFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errs.Wrap(err)
	}
	s.Import(string(data))
	return nil
}

func (s *Store) newRecord(raw csv.Row) *Record {
	r := &Record{
		ID:              uuid.NewString(),
		Date:            raw.Date,
		Game:            raw.Game,
		TurnoverRaw:     raw.Turnover,
		WinsRaw:         raw.Wins,
		AvailabilityRaw: raw.Availability,
	}
	if r.Date == "" {
		r.Date = s.defaults.Date
	}
	if r.AvailabilityRaw == "" {
		r.AvailabilityRaw = s.defaults.Availability
	}
	r.recalculate(s.calc)
	return r
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func availabilityChars(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == '%' {
			return r
		}
		return -1
	}, s)
}
