package http

import (
	"log/slog"
	"os"

	"github.com/campuscore/ums-backend-go/internal/handler/http/middleware"
	"github.com/campuscore/ums-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	Env            string
	AllowedOrigins []string
}

func NewRouter(
	JWTService jwt.Service,
	cfg RouterConfig,
	authHandler AuthHandler,
	scheduleHandler ScheduleHandler,
	attendanceHandler AttendanceHandler,
	studentHandler StudentHandler,
	facultyHandler FacultyHandler,
	academicHandler AcademicHandler,
	timetableHandler TimetableHandler,
	grievanceHandler GrievanceHandler,
	noticeHandler NoticeHandler,
	examHandler ExamHandler,
	notificationHandler NotificationHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "campuscore-ums"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Post("/roll-no", authHandler.LoginWithRollNo)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", authHandler.LoginWithGoogle)
				})
			})
		})

		// SSE token travels in the query string, not the Authorization header
		r.Get("/notifications/stream", notificationHandler.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/auth", func(r chi.Router) {
				r.Get("/profile", authHandler.GetProfile)
				r.Post("/change-password", authHandler.ChangePassword)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Get("/sse-token", notificationHandler.GetSSEToken)
				r.Patch("/read-all", notificationHandler.MarkAllAsRead)
				r.Patch("/{id}/read", notificationHandler.MarkAsRead)
			})

			r.Route("/notices", func(r chi.Router) {
				r.Get("/", noticeHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", noticeHandler.Create)
					r.Delete("/{id}", noticeHandler.Delete)
				})
			})

			r.Route("/grievances", func(r chi.Router) {
				r.Post("/", grievanceHandler.Create)
				r.Get("/my", grievanceHandler.GetMine)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", grievanceHandler.GetAll)
					r.Patch("/{id}/status", grievanceHandler.UpdateStatus)
				})
			})

			// Faculty only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireFaculty)

				r.Get("/schedule/today", scheduleHandler.GetTodaySchedule)
				r.Get("/assignments/my", academicHandler.ListMyAssignments)
				r.Get("/dashboard/faculty", dashboardHandler.GetFacultyDashboard)

				r.Route("/attendance/sessions", func(r chi.Router) {
					r.Post("/", attendanceHandler.StartSession)
					r.Get("/{id}", attendanceHandler.GetSession)
					r.Patch("/{id}/students/{studentId}", attendanceHandler.MarkStudent)
					r.Post("/{id}/bulk-mark", attendanceHandler.BulkMark)
					r.Post("/{id}/submit", attendanceHandler.Submit)
					r.Delete("/{id}", attendanceHandler.CancelSession)
				})
				r.Post("/attendance/class-records", attendanceHandler.GetClassRecords)

				r.Post("/exams/{id}/marks", examHandler.UploadMarks)
				r.Get("/exams/{id}/marks", examHandler.GetExamMarks)
				r.Get("/sections/students", studentHandler.GetBySection)
			})

			// Student only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireStudent)

				r.Get("/attendance/my", attendanceHandler.GetMyAttendance)
				r.Get("/results/my", examHandler.GetMyResults)
				r.Get("/dashboard/student", dashboardHandler.GetStudentDashboard)
			})

			r.Get("/exams", examHandler.ListSectionExams)
			r.Get("/timetable", timetableHandler.GetSectionWeek)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Get("/dashboard/admin", dashboardHandler.GetAdminDashboard)

				r.Route("/students", func(r chi.Router) {
					r.Get("/", studentHandler.List)
					r.Post("/", studentHandler.Create)
					r.Get("/{id}", studentHandler.Get)
					r.Put("/{id}", studentHandler.Update)
					r.Delete("/{id}", studentHandler.Delete)
				})

				r.Route("/faculty", func(r chi.Router) {
					r.Get("/", facultyHandler.List)
					r.Post("/", facultyHandler.Create)
					r.Get("/{id}", facultyHandler.Get)
					r.Put("/{id}", facultyHandler.Update)
					r.Delete("/{id}", facultyHandler.Delete)
					r.Get("/{facultyId}/assignments", academicHandler.ListFacultyAssignments)
				})

				r.Route("/subjects", func(r chi.Router) {
					r.Get("/", academicHandler.ListSubjects)
					r.Post("/", academicHandler.CreateSubject)
					r.Delete("/{id}", academicHandler.DeleteSubject)
				})

				r.Route("/sections", func(r chi.Router) {
					r.Get("/", academicHandler.ListSections)
					r.Post("/", academicHandler.CreateSection)
					r.Delete("/{id}", academicHandler.DeleteSection)
				})

				r.Route("/semesters", func(r chi.Router) {
					r.Get("/", academicHandler.ListSemesters)
					r.Post("/", academicHandler.CreateSemester)
					r.Delete("/{id}", academicHandler.DeleteSemester)
				})

				r.Route("/assignments", func(r chi.Router) {
					r.Post("/", academicHandler.AssignSubject)
					r.Delete("/{id}", academicHandler.DeleteAssignment)
				})

				r.Post("/timetable", timetableHandler.CreateEntry)
				r.Delete("/timetable/{id}", timetableHandler.DeleteEntry)

				r.Post("/exams", examHandler.CreateExam)
				r.Delete("/exams/{id}", examHandler.DeleteExam)
			})
		})
	})
	return r
}
