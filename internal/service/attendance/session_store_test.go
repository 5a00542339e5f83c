package attendance

import (
	"testing"
	"time"

	"github.com/campuscore/ums-backend-go/internal/domain/attendance"
	"github.com/campuscore/ums-backend-go/internal/domain/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var storeNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func storeEntry(sectionID string) schedule.Entry {
	return schedule.Entry{
		Subject:  schedule.SubjectInfo{ID: "sub-1"},
		Section:  schedule.SectionInfo{ID: sectionID},
		Semester: schedule.SemesterInfo{ID: "sem-1"},
		TimeSlot: schedule.TimeSlot{Period: 1, Shift: schedule.ShiftMorning},
	}
}

func storeSession(id, facultyID, sectionID string, at time.Time) *attendance.MarkingSession {
	roster := []attendance.RosterStudent{{ID: "stu-1", Name: "A", RollNo: "R1"}}
	return attendance.NewMarkingSession(id, facultyID, storeEntry(sectionID), roster, at)
}

func TestSessionStorePutGet(t *testing.T) {
	store := NewSessionStore()

	session := storeSession("sess-1", "fac-1", "sec-1", storeNow)
	store.Put(session)

	got, ok := store.Get("sess-1")
	require.True(t, ok)
	assert.Equal(t, session, got)
	assert.Equal(t, 1, store.Len())

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestSessionStoreLastWinsPerClass(t *testing.T) {
	store := NewSessionStore()

	first := storeSession("sess-1", "fac-1", "sec-1", storeNow)
	second := storeSession("sess-2", "fac-1", "sec-1", storeNow.Add(time.Minute))
	store.Put(first)
	store.Put(second)

	// Restarting the same class replaces the earlier session
	_, ok := store.Get("sess-1")
	assert.False(t, ok)
	_, ok = store.Get("sess-2")
	assert.True(t, ok)
	assert.Equal(t, 1, store.Len())
}

func TestSessionStoreDistinctClassesCoexist(t *testing.T) {
	store := NewSessionStore()

	store.Put(storeSession("sess-1", "fac-1", "sec-1", storeNow))
	store.Put(storeSession("sess-2", "fac-1", "sec-2", storeNow))
	store.Put(storeSession("sess-3", "fac-2", "sec-1", storeNow))

	assert.Equal(t, 3, store.Len())
}

func TestSessionStoreDelete(t *testing.T) {
	store := NewSessionStore()

	store.Put(storeSession("sess-1", "fac-1", "sec-1", storeNow))
	store.Delete("sess-1")

	_, ok := store.Get("sess-1")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())

	// Deleting a missing session is a no-op
	store.Delete("sess-1")
}

func TestSessionStoreSweepStale(t *testing.T) {
	store := NewSessionStore()

	stale := storeSession("sess-old", "fac-1", "sec-1", storeNow.Add(-3*time.Hour))
	fresh := storeSession("sess-new", "fac-1", "sec-2", storeNow.Add(-10*time.Minute))
	store.Put(stale)
	store.Put(fresh)

	removed := store.Sweep(2*time.Hour, storeNow)
	assert.Equal(t, 1, removed)

	_, ok := store.Get("sess-old")
	assert.False(t, ok)
	_, ok = store.Get("sess-new")
	assert.True(t, ok)
}

func TestSessionStoreSweepSubmitted(t *testing.T) {
	store := NewSessionStore()

	session := storeSession("sess-1", "fac-1", "sec-1", storeNow)
	require.NoError(t, session.MarkAll(attendance.StatusPresent, storeNow))
	require.NoError(t, session.BeginSubmit())
	session.CompleteSubmit()
	store.Put(session)

	// Submitted sessions are dropped even when recently touched
	removed := store.Sweep(2*time.Hour, storeNow.Add(time.Minute))
	assert.Equal(t, 1, removed)
	assert.Equal(t, 0, store.Len())
}

func TestSessionStoreSweepFreesClassSlot(t *testing.T) {
	store := NewSessionStore()

	stale := storeSession("sess-1", "fac-1", "sec-1", storeNow.Add(-3*time.Hour))
	store.Put(stale)
	store.Sweep(2*time.Hour, storeNow)

	// A new session for the same class goes in cleanly afterwards
	store.Put(storeSession("sess-2", "fac-1", "sec-1", storeNow))
	_, ok := store.Get("sess-2")
	assert.True(t, ok)
	assert.Equal(t, 1, store.Len())
}
