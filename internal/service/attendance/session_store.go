package attendance

import (
	"fmt"
	"sync"
	"time"

	"github.com/campuscore/ums-backend-go/internal/domain/attendance"
	"github.com/campuscore/ums-backend-go/internal/domain/schedule"
)

// SessionStore holds the live marking sessions of the process. Sessions are
// keyed both by session id and by (faculty, class) so re-selecting the same
// class replaces the earlier session instead of stacking a second one.
type SessionStore struct {
	mu      sync.RWMutex
	byID    map[string]*attendance.MarkingSession
	byClass map[string]string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		byID:    make(map[string]*attendance.MarkingSession),
		byClass: make(map[string]string),
	}
}

func classIndexKey(facultyID string, key schedule.ClassKey) string {
	return fmt.Sprintf("%s|%s|%s|%s|%d|%s",
		facultyID, key.SectionID, key.SubjectID, key.SemesterID, key.Period, key.Shift)
}

// Put stores a session. If the faculty already has a session open for the
// same class, that session is dropped; the newest one wins.
func (st *SessionStore) Put(session *attendance.MarkingSession) {
	st.mu.Lock()
	defer st.mu.Unlock()

	idx := classIndexKey(session.FacultyID, session.Entry.Key())
	if oldID, ok := st.byClass[idx]; ok {
		delete(st.byID, oldID)
	}
	st.byID[session.ID] = session
	st.byClass[idx] = session.ID
}

// Get retrieves a session by id.
func (st *SessionStore) Get(sessionID string) (*attendance.MarkingSession, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	session, ok := st.byID[sessionID]
	return session, ok
}

// Delete removes a session and its class index entry.
func (st *SessionStore) Delete(sessionID string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.byID[sessionID]
	if !ok {
		return
	}
	delete(st.byID, sessionID)

	idx := classIndexKey(session.FacultyID, session.Entry.Key())
	if st.byClass[idx] == sessionID {
		delete(st.byClass, idx)
	}
}

// Sweep drops sessions idle for longer than maxIdle, plus submitted sessions
// that were never cleaned up. Returns how many were removed.
func (st *SessionStore) Sweep(maxIdle time.Duration, now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, session := range st.byID {
		stale := now.Sub(session.LastTouched()) > maxIdle
		if !stale && session.State() != attendance.SessionSubmitted {
			continue
		}
		delete(st.byID, id)
		idx := classIndexKey(session.FacultyID, session.Entry.Key())
		if st.byClass[idx] == id {
			delete(st.byClass, idx)
		}
		removed++
	}
	return removed
}

// Len returns the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.byID)
}
