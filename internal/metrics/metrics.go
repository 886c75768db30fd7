package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Register and login attempts",
		},
		[]string{"operation", "outcome"}, // operation: register, login
	)

	TaskMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "task_mutations_total",
			Help: "Task create/update/delete operations",
		},
		[]string{"operation"},
	)

	ProjectMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "project_mutations_total",
			Help: "Project create/update/delete operations",
		},
		[]string{"operation"},
	)

	CascadeDeletedTasks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cascade_deleted_tasks_total",
			Help: "Tasks removed by project cascade deletes",
		},
	)
)

func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncrementAuthAttempt(operation, outcome string) {
	AuthAttempts.WithLabelValues(operation, outcome).Inc()
}

func IncrementTaskMutation(operation string) {
	TaskMutations.WithLabelValues(operation).Inc()
}

func IncrementProjectMutation(operation string) {
	ProjectMutations.WithLabelValues(operation).Inc()
}
