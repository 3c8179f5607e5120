package ledger

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)

func TestUpsertCreatesRecord(t *testing.T) {
	l := New()
	changed := l.Upsert("2025-06-15", 5)
	assert.True(t, changed)

	r, ok := l.Get("2025-06-15")
	require.True(t, ok)
	assert.Equal(t, Record{Date: "2025-06-15", Total: 5}, r)
	assert.Equal(t, 1, l.Len())
}

func TestUpsertSameValueIsNoop(t *testing.T) {
	l := New()
	assert.True(t, l.Upsert("2025-06-15", 5))
	assert.False(t, l.Upsert("2025-06-15", 5))
	assert.Equal(t, 1, l.Len())
}

func TestUpsertReplacesChangedValue(t *testing.T) {
	l := New()
	l.Upsert("2025-06-15", 5)
	assert.True(t, l.Upsert("2025-06-15", 6))

	r, _ := l.Get("2025-06-15")
	assert.Equal(t, 6, r.Total)
}

func TestRemove(t *testing.T) {
	l := New()
	l.Upsert("2025-06-15", 5)
	l.Remove("2025-06-15")

	_, ok := l.Get("2025-06-15")
	assert.False(t, ok)
}

func TestRemoveMissingKeyIsNoop(t *testing.T) {
	l := New()
	l.Remove("2025-06-15")
	assert.Equal(t, 0, l.Len())
}

func TestClearAll(t *testing.T) {
	l := New()
	l.Upsert("2025-06-14", 3)
	l.Upsert("2025-06-15", 5)
	l.ClearAll()
	assert.Equal(t, 0, l.Len())
}

func TestSnapshotFillsMissingDaysWithZero(t *testing.T) {
	l := New()
	l.Upsert("2025-06-15", 5)
	l.Upsert("2025-06-13", 2)

	snap := l.Snapshot(testToday, 4)
	require.Len(t, snap, 4)
	assert.Equal(t, Record{Date: "2025-06-15", Total: 5}, snap[0])
	assert.Equal(t, Record{Date: "2025-06-14", Total: 0}, snap[1])
	assert.Equal(t, Record{Date: "2025-06-13", Total: 2}, snap[2])
	assert.Equal(t, Record{Date: "2025-06-12", Total: 0}, snap[3])
}

func TestSnapshotCrossesMonthBoundary(t *testing.T) {
	l := New()
	today := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)
	l.Upsert("2025-06-30", 9)

	snap := l.Snapshot(today, 2)
	require.Len(t, snap, 2)
	assert.Equal(t, "2025-07-01", snap[0].Date)
	assert.Equal(t, Record{Date: "2025-06-30", Total: 9}, snap[1])
}

func TestJSONRoundTrip(t *testing.T) {
	l := New()
	l.Upsert("2025-06-14", 3)
	l.Upsert("2025-06-15", 5)

	data, err := json.Marshal(l)
	require.NoError(t, err)

	got := New()
	require.NoError(t, json.Unmarshal(data, got))
	assert.Equal(t, 2, got.Len())

	r, ok := got.Get("2025-06-14")
	require.True(t, ok)
	assert.Equal(t, 3, r.Total)
}

func TestUnmarshalFixesMismatchedDateField(t *testing.T) {
	l := New()
	data := []byte(`{"2025-06-15": {"date": "2020-01-01", "total": 7}}`)
	require.NoError(t, json.Unmarshal(data, l))

	r, ok := l.Get("2025-06-15")
	require.True(t, ok)
	assert.Equal(t, "2025-06-15", r.Date)
	assert.Equal(t, 7, r.Total)
}

func TestDayKeyUsesLocalDate(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*3600)
	late := time.Date(2025, 6, 15, 23, 30, 0, 0, loc)
	assert.Equal(t, "2025-06-15", DayKey(late))
}
