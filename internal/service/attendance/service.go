package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/campuscore/ums-backend-go/internal/domain/attendance"
	"github.com/campuscore/ums-backend-go/internal/domain/notification"
	"github.com/campuscore/ums-backend-go/internal/domain/schedule"
	"github.com/campuscore/ums-backend-go/internal/domain/student"
	"github.com/campuscore/ums-backend-go/internal/domain/user"
	"github.com/campuscore/ums-backend-go/internal/pkg/clock"
	"github.com/campuscore/ums-backend-go/internal/pkg/database"
	"github.com/campuscore/ums-backend-go/internal/pkg/metrics"
	"github.com/campuscore/ums-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	scheduleRepo   schedule.ScheduleRepository
	attendanceRepo attendance.AttendanceRepository
	studentRepo    student.StudentRepository
	userRepo       user.UserRepository
	sessions       *SessionStore
	clock          clock.Clock
	notifier       notification.Publisher
	runTx          func(ctx context.Context, db *database.DB, fn func(tx pgx.Tx) error) error
}

func NewAttendanceService(
	db *database.DB,
	scheduleRepo schedule.ScheduleRepository,
	attendanceRepo attendance.AttendanceRepository,
	studentRepo student.StudentRepository,
	userRepo user.UserRepository,
	sessions *SessionStore,
	clk clock.Clock,
	notifier notification.Publisher,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		scheduleRepo:   scheduleRepo,
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		userRepo:       userRepo,
		sessions:       sessions,
		clock:          clk,
		notifier:       notifier,
		runTx:          postgresql.WithTransaction,
	}
}

// StartSession implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) StartSession(ctx context.Context, req attendance.StartSessionRequest) (attendance.SessionView, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionView{}, err
	}

	facultyID, err := facultyIDFromContext(ctx)
	if err != nil {
		return attendance.SessionView{}, err
	}

	now := s.clock.Now()
	entry, err := s.findTodayEntry(ctx, facultyID, req, now)
	if err != nil {
		return attendance.SessionView{}, err
	}
	if entry.AttendanceTaken {
		return attendance.SessionView{}, attendance.ErrAttendanceAlreadyTaken
	}

	students, err := s.studentRepo.GetBySection(ctx, req.SectionID, req.SemesterID)
	if err != nil {
		return attendance.SessionView{}, fmt.Errorf("failed to load section roster: %w", err)
	}
	if len(students) == 0 {
		return attendance.SessionView{}, attendance.ErrEmptyRoster
	}

	roster := make([]attendance.RosterStudent, 0, len(students))
	for _, st := range students {
		roster = append(roster, attendance.RosterStudent{
			ID:     st.ID,
			Name:   st.Name,
			RollNo: st.RollNo,
		})
	}

	session := attendance.NewMarkingSession(uuid.New().String(), facultyID, entry, roster, now)
	s.sessions.Put(session)
	metrics.MarkingSessionsStarted.Inc()

	return s.sessionView(session, "", 1, now), nil
}

// GetSession implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetSession(ctx context.Context, sessionID, search string, page int) (attendance.SessionView, error) {
	session, err := s.ownedSession(ctx, sessionID)
	if err != nil {
		return attendance.SessionView{}, err
	}
	if page < 1 {
		page = 1
	}
	return s.sessionView(session, search, page, s.clock.Now()), nil
}

// MarkStudent implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkStudent(ctx context.Context, sessionID, studentID string, req attendance.MarkStudentRequest) (attendance.StatsResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.StatsResponse{}, err
	}

	session, err := s.ownedSession(ctx, sessionID)
	if err != nil {
		return attendance.StatsResponse{}, err
	}

	now := s.clock.Now()
	if req.Status != nil {
		if err := session.SetStatus(studentID, *req.Status, now); err != nil {
			return attendance.StatsResponse{}, err
		}
	}
	if req.Remarks != nil {
		if err := session.SetRemarks(studentID, *req.Remarks, now); err != nil {
			return attendance.StatsResponse{}, err
		}
	}

	return mapStatsToResponse(session.Stats()), nil
}

// BulkMark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) BulkMark(ctx context.Context, sessionID string, req attendance.BulkMarkRequest) (attendance.StatsResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.StatsResponse{}, err
	}

	session, err := s.ownedSession(ctx, sessionID)
	if err != nil {
		return attendance.StatsResponse{}, err
	}

	now := s.clock.Now()
	switch req.Scope {
	case attendance.BulkScopeAll:
		if err := session.MarkAll(req.Status, now); err != nil {
			return attendance.StatsResponse{}, err
		}
	case attendance.BulkScopePage:
		if _, err := session.MarkPage(req.Search, req.Page, req.Status, now); err != nil {
			return attendance.StatsResponse{}, err
		}
	}

	return mapStatsToResponse(session.Stats()), nil
}

// Submit implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Submit(ctx context.Context, sessionID string) (attendance.SubmitResponse, error) {
	session, err := s.ownedSession(ctx, sessionID)
	if err != nil {
		return attendance.SubmitResponse{}, err
	}

	if err := session.BeginSubmit(); err != nil {
		return attendance.SubmitResponse{}, err
	}

	// The stored date, the duplicate check and the schedule projection must
	// all agree on the same local calendar day.
	now := s.clock.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	date := day.Format("2006-01-02")

	req, err := session.BuildRequest(date)
	if err != nil {
		session.FailSubmit(now)
		return attendance.SubmitResponse{}, err
	}

	records := make([]attendance.Record, 0, len(req.StudentAttendance))
	for _, row := range req.StudentAttendance {
		records = append(records, attendance.Record{
			ID:         uuid.New().String(),
			StudentID:  row.StudentID,
			SectionID:  req.SectionID,
			SubjectID:  req.SubjectID,
			SemesterID: req.SemesterID,
			Date:       day,
			Period:     req.Period,
			Shift:      req.Shift,
			Status:     row.Status,
			Remarks:    row.Remarks,
			MarkedBy:   session.FacultyID,
			CreatedAt:  now,
		})
	}

	err = s.runTx(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		taken, err := s.attendanceRepo.HasTaken(txCtx, session.Entry.Key(), date)
		if err != nil {
			return fmt.Errorf("failed to check existing attendance: %w", err)
		}
		if taken {
			return attendance.ErrAttendanceAlreadyTaken
		}

		return s.attendanceRepo.BulkCreate(txCtx, records)
	})
	if err != nil {
		session.FailSubmit(s.clock.Now())
		metrics.AttendanceSubmissions.WithLabelValues("failure").Inc()
		return attendance.SubmitResponse{}, err
	}

	session.CompleteSubmit()
	s.sessions.Delete(session.ID)
	metrics.AttendanceSubmissions.WithLabelValues("success").Inc()

	go s.notifySectionOnSubmission(session.Entry, date)

	return attendance.SubmitResponse{
		SessionID:    session.ID,
		Date:         date,
		RecordsSaved: len(records),
	}, nil
}

// CancelSession implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CancelSession(ctx context.Context, sessionID string) error {
	session, err := s.ownedSession(ctx, sessionID)
	if err != nil {
		return err
	}
	s.sessions.Delete(session.ID)
	return nil
}

// GetMyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetMyAttendance(ctx context.Context, filter attendance.RecordFilter) (attendance.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	studentID, ok := claims["student_id"].(string)
	if !ok || studentID == "" {
		return attendance.ListRecordsResponse{}, user.ErrStudentAccessRequired
	}

	records, totalCount, err := s.attendanceRepo.ListByStudent(ctx, studentID, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	totalPages := int((totalCount + int64(filter.Limit) - 1) / int64(filter.Limit))
	response := attendance.ListRecordsResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Records:    make([]attendance.RecordResponse, 0, len(records)),
	}
	for _, record := range records {
		response.Records = append(response.Records, mapRecordToResponse(record))
	}

	return response, nil
}

// GetClassRecords implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetClassRecords(ctx context.Context, req attendance.StartSessionRequest, date string) ([]attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if date == "" {
		date = s.clock.Now().Format("2006-01-02")
	}

	key := schedule.ClassKey{
		SectionID:  req.SectionID,
		SubjectID:  req.SubjectID,
		SemesterID: req.SemesterID,
		Period:     req.Period,
		Shift:      req.Shift,
	}
	records, err := s.attendanceRepo.ListByClass(ctx, key, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list class records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapRecordToResponse(record))
	}
	return responses, nil
}

// findTodayEntry resolves the request against today's schedule. The entry
// must be one of the faculty's own classes for the current day.
func (s *AttendanceServiceImpl) findTodayEntry(ctx context.Context, facultyID string, req attendance.StartSessionRequest, now time.Time) (schedule.Entry, error) {
	entries, err := s.scheduleRepo.GetFacultyDaySchedule(ctx, facultyID, schedule.Weekday(now), now.Format("2006-01-02"))
	if err != nil {
		return schedule.Entry{}, fmt.Errorf("failed to get day schedule: %w", err)
	}

	want := schedule.ClassKey{
		SectionID:  req.SectionID,
		SubjectID:  req.SubjectID,
		SemesterID: req.SemesterID,
		Period:     req.Period,
		Shift:      req.Shift,
	}
	for _, entry := range entries {
		if entry.Key() == want {
			return entry, nil
		}
	}
	return schedule.Entry{}, attendance.ErrNotScheduledToday
}

// ownedSession fetches a session and checks it belongs to the caller.
func (s *AttendanceServiceImpl) ownedSession(ctx context.Context, sessionID string) (*attendance.MarkingSession, error) {
	facultyID, err := facultyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	session, ok := s.sessions.Get(sessionID)
	if !ok || session.FacultyID != facultyID {
		return nil, attendance.ErrSessionNotFound
	}
	return session, nil
}

func facultyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	facultyID, ok := claims["faculty_id"].(string)
	if !ok || facultyID == "" {
		return "", user.ErrFacultyAccessRequired
	}
	return facultyID, nil
}

func (s *AttendanceServiceImpl) notifySectionOnSubmission(entry schedule.Entry, date string) {
	if s.notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userIDs, err := s.userRepo.ListIDsBySection(ctx, entry.Section.ID)
	if err != nil || len(userIDs) == 0 {
		return
	}

	_ = s.notifier.Publish(ctx, notification.Event{
		Kind:    notification.KindAttendanceSubmitted,
		Title:   "Attendance Posted",
		Body:    fmt.Sprintf("Attendance for %s on %s has been recorded", entry.Subject.Name, date),
		UserIDs: userIDs,
	})
}

func (s *AttendanceServiceImpl) sessionView(session *attendance.MarkingSession, search string, page int, now time.Time) attendance.SessionView {
	rows, meta := session.Page(search, page)

	rowResponses := make([]attendance.RosterRowResponse, 0, len(rows))
	for _, row := range rows {
		rowResponses = append(rowResponses, attendance.RosterRowResponse{
			StudentID: row.ID,
			Name:      row.Name,
			RollNo:    row.RollNo,
			Status:    row.Status,
			Remarks:   row.Remarks,
		})
	}

	return attendance.SessionView{
		SessionID: session.ID,
		State:     session.State(),
		Entry:     mapEntryToResponse(session.Entry, now),
		Rows:      rowResponses,
		Meta:      meta,
		Stats:     mapStatsToResponse(session.Stats()),
	}
}

func mapStatsToResponse(st attendance.Stats) attendance.StatsResponse {
	return attendance.StatsResponse{
		Present:        st.Present,
		Absent:         st.Absent,
		Late:           st.Late,
		Excused:        st.Excused,
		Unmarked:       st.Unmarked,
		Total:          st.Total,
		PresentPercent: st.Percent(st.Present),
		AbsentPercent:  st.Percent(st.Absent),
		LatePercent:    st.Percent(st.Late),
		ExcusedPercent: st.Percent(st.Excused),
	}
}

func mapRecordToResponse(r attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:          r.ID,
		StudentID:   r.StudentID,
		StudentName: r.StudentName,
		RollNo:      r.RollNo,
		SubjectID:   r.SubjectID,
		SubjectName: r.SubjectName,
		Date:        r.Date.Format("2006-01-02"),
		Period:      r.Period,
		Shift:       string(r.Shift),
		Status:      r.Status,
		Remarks:     r.Remarks,
	}
}

func mapEntryToResponse(e schedule.Entry, now time.Time) schedule.EntryResponse {
	return schedule.EntryResponse{
		Subject: schedule.SubjectResponse{
			ID:          e.Subject.ID,
			Name:        e.Subject.Name,
			SubjectCode: e.Subject.SubjectCode,
			WeeklyHours: e.Subject.WeeklyHours,
		},
		Section: schedule.SectionResponse{
			ID:              e.Section.ID,
			Name:            e.Section.Name,
			MaxStrength:     e.Section.MaxStrength,
			CurrentStrength: e.Section.CurrentStrength,
		},
		Semester: schedule.SemesterResponse{
			ID:      e.Semester.ID,
			Number:  e.Semester.Number,
			Current: e.Semester.Current,
			Branch:  e.Semester.Branch,
		},
		TimeSlot: schedule.TimeSlotResponse{
			Day:       e.TimeSlot.Day,
			Period:    e.TimeSlot.Period,
			StartTime: e.TimeSlot.StartTime,
			EndTime:   e.TimeSlot.EndTime,
			Shift:     e.TimeSlot.Shift,
		},
		AttendanceTaken: e.AttendanceTaken,
		Status:          schedule.Status(e.TimeSlot, now),
		Badge:           schedule.StatusBadge(e, now),
	}
}
