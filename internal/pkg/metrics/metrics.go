package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters exposed at /metrics alongside the default Go collectors.
var (
	AttendanceSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ums_attendance_submissions_total",
		Help: "Attendance submissions by outcome.",
	}, []string{"outcome"})

	MarkingSessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ums_marking_sessions_started_total",
		Help: "Marking sessions started by faculty.",
	})

	NotificationsQueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ums_notifications_queued_total",
		Help: "Notification events published to the queue.",
	})

	NotificationsDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ums_notifications_delivered_total",
		Help: "Notifications persisted and pushed by the worker.",
	})
)
