package ledger

import (
	"encoding/json"
	"time"
)

// DayKeyFormat is the calendar-date key layout used throughout the app.
// Lexicographic order on these keys is also chronological order.
const DayKeyFormat = "2006-01-02"

// DayKey returns the calendar-date key for t in t's location.
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// Record is the tally recorded for a single calendar date.
type Record struct {
	Date  string `json:"date"`
	Total int    `json:"total"`
}

// Ledger maps calendar dates to the tally recorded for each date.
// At most one record exists per date.
type Ledger struct {
	records map[string]Record
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{records: make(map[string]Record)}
}

// Upsert stores total under date. Returns false without touching the ledger
// when the stored total already equals the new value, so callers can skip
// redundant writes.
func (l *Ledger) Upsert(date string, total int) bool {
	if existing, ok := l.records[date]; ok && existing.Total == total {
		return false
	}
	l.records[date] = Record{Date: date, Total: total}
	return true
}

// Remove deletes the record for date if present. Missing keys are not an error.
func (l *Ledger) Remove(date string) {
	delete(l.records, date)
}

// ClearAll empties the ledger entirely.
func (l *Ledger) ClearAll() {
	l.records = make(map[string]Record)
}

// Get returns the record for date.
func (l *Ledger) Get(date string) (Record, bool) {
	r, ok := l.records[date]
	return r, ok
}

// Len returns the number of recorded dates.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Snapshot returns records for the daysBack most recent calendar dates ending
// at today (inclusive), newest first. Dates absent from the ledger are filled
// in with a zero total.
func (l *Ledger) Snapshot(today time.Time, daysBack int) []Record {
	out := make([]Record, 0, daysBack)
	for i := 0; i < daysBack; i++ {
		key := DayKey(today.AddDate(0, 0, -i))
		if r, ok := l.records[key]; ok {
			out = append(out, r)
		} else {
			out = append(out, Record{Date: key, Total: 0})
		}
	}
	return out
}

// MarshalJSON encodes the ledger as a date-keyed object, the on-disk shape.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.records)
}

// UnmarshalJSON decodes the date-keyed object shape. Records whose embedded
// date disagrees with their key keep the key, so a partially hand-edited file
// still loads consistently.
func (l *Ledger) UnmarshalJSON(data []byte) error {
	var m map[string]Record
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	l.records = make(map[string]Record, len(m))
	for key, r := range m {
		r.Date = key
		l.records[key] = r
	}
	return nil
}
