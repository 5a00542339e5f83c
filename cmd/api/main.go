package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campuscore/ums-backend-go/internal/config"
	appHTTP "github.com/campuscore/ums-backend-go/internal/handler/http"
	"github.com/campuscore/ums-backend-go/internal/pkg/clock"
	"github.com/campuscore/ums-backend-go/internal/pkg/cron"
	"github.com/campuscore/ums-backend-go/internal/pkg/database"
	"github.com/campuscore/ums-backend-go/internal/pkg/jwt"
	"github.com/campuscore/ums-backend-go/internal/pkg/oauth"
	"github.com/campuscore/ums-backend-go/internal/pkg/queue"
	"github.com/campuscore/ums-backend-go/internal/pkg/sse"
	"github.com/campuscore/ums-backend-go/internal/pkg/storage"
	"github.com/campuscore/ums-backend-go/internal/repository/postgresql"
	academicService "github.com/campuscore/ums-backend-go/internal/service/academic"
	attendanceService "github.com/campuscore/ums-backend-go/internal/service/attendance"
	serviceAuth "github.com/campuscore/ums-backend-go/internal/service/auth"
	dashboardService "github.com/campuscore/ums-backend-go/internal/service/dashboard"
	examService "github.com/campuscore/ums-backend-go/internal/service/exam"
	facultyService "github.com/campuscore/ums-backend-go/internal/service/faculty"
	grievanceService "github.com/campuscore/ums-backend-go/internal/service/grievance"
	noticeService "github.com/campuscore/ums-backend-go/internal/service/notice"
	notificationService "github.com/campuscore/ums-backend-go/internal/service/notification"
	scheduleService "github.com/campuscore/ums-backend-go/internal/service/schedule"
	studentService "github.com/campuscore/ums-backend-go/internal/service/student"
	timetableService "github.com/campuscore/ums-backend-go/internal/service/timetable"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	studentRepo := postgresql.NewStudentRepository(db)
	facultyRepo := postgresql.NewFacultyRepository(db)
	subjectRepo := postgresql.NewSubjectRepository(db)
	sectionRepo := postgresql.NewSectionRepository(db)
	semesterRepo := postgresql.NewSemesterRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	timetableRepo := postgresql.NewTimetableRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	grievanceRepo := postgresql.NewGrievanceRepository(db)
	noticeRepo := postgresql.NewNoticeRepository(db)
	examRepo := postgresql.NewExamRepository(db)
	markRepo := postgresql.NewMarkRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	clk := clock.New()
	hub := sse.NewHub()

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	var notifQueue queue.Queue
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		notifQueue = queue.NewRedisQueue(redisClient, "notifications:queue")
	} else {
		notifQueue = queue.NewInMemory(1024)
	}

	notifier := notificationService.NewQueuePublisher(notifQueue)
	consumer := notificationService.NewQueueConsumer(notifQueue, notificationRepo, hub)

	sessions := attendanceService.NewSessionStore()

	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, clk)
	attendanceSvc := attendanceService.NewAttendanceService(db, scheduleRepo, attendanceRepo, studentRepo, userRepo, sessions, clk, notifier)
	studentSvc := studentService.NewStudentService(studentRepo)
	facultySvc := facultyService.NewFacultyService(facultyRepo)
	academicSvc := academicService.NewAcademicService(subjectRepo, sectionRepo, semesterRepo, assignmentRepo)
	timetableSvc := timetableService.NewTimetableService(timetableRepo, assignmentRepo)
	grievanceSvc := grievanceService.NewGrievanceService(grievanceRepo, userRepo, fileStorage, notifier)
	noticeSvc := noticeService.NewNoticeService(noticeRepo, userRepo, notifier)
	examSvc := examService.NewExamService(examRepo, markRepo, studentRepo, userRepo, notifier)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)
	dashboardSvc := dashboardService.NewDashboardService(
		studentRepo,
		facultyRepo,
		grievanceRepo,
		noticeRepo,
		examRepo,
		attendanceRepo,
		scheduleRepo,
		assignmentRepo,
		notificationRepo,
		clk,
	)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	studentHandler := appHTTP.NewStudentHandler(studentSvc)
	facultyHandler := appHTTP.NewFacultyHandler(facultySvc)
	academicHandler := appHTTP.NewAcademicHandler(academicSvc)
	timetableHandler := appHTTP.NewTimetableHandler(timetableSvc)
	grievanceHandler := appHTTP.NewGrievanceHandler(grievanceSvc)
	noticeHandler := appHTTP.NewNoticeHandler(noticeSvc)
	examHandler := appHTTP.NewExamHandler(examSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc, JWTService, hub)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		JWTService,
		appHTTP.RouterConfig{
			Env:            cfg.App.Env,
			AllowedOrigins: []string{cfg.App.FrontendURL},
		},
		authHandler,
		scheduleHandler,
		attendanceHandler,
		studentHandler,
		facultyHandler,
		academicHandler,
		timetableHandler,
		grievanceHandler,
		noticeHandler,
		examHandler,
		notificationHandler,
		dashboardHandler,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// In-process consumer; run cmd/worker instead for a dedicated process
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			log.Println("Notification consumer stopped:", err)
		}
	}()

	scheduler := cron.NewScheduler()
	jobs := cron.NewScheduleJobs(scheduleSvc, facultyRepo, attendanceRepo, sessions, hub, notifier, clk)
	jobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
		os.Exit(1)
	}
}
