package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/campuscore/ums-backend-go/internal/config"
	"github.com/campuscore/ums-backend-go/internal/pkg/database"
	"github.com/campuscore/ums-backend-go/internal/pkg/queue"
	"github.com/campuscore/ums-backend-go/internal/pkg/sse"
	"github.com/campuscore/ums-backend-go/internal/repository/postgresql"
	notificationService "github.com/campuscore/ums-backend-go/internal/service/notification"
	"github.com/redis/go-redis/v9"
)

// Dedicated notification worker. Drains the Redis queue and persists
// notifications; SSE delivery to browsers happens in the API process.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	notifQueue := queue.NewRedisQueue(redisClient, "notifications:queue")

	notificationRepo := postgresql.NewNotificationRepository(db)
	consumer := notificationService.NewQueueConsumer(notifQueue, notificationRepo, sse.NewHub())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Println("Notification worker running")
	if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Println("Worker error:", err)
	}
}
