// file: internals/features/academics/sessions/scheduler/metrics.go
package scheduler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reconcileRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reconcile_runs_total",
		Help: "Jumlah run reconcile job yang benar-benar jalan (dapat lock).",
	})
	reconcileSkippedLock = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reconcile_skipped_lock_total",
		Help: "Run yang di-skip karena lock dipegang node/run lain.",
	})
	reconcileStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reconcile_sessions_started_total",
		Help: "Session yang ditransisikan planned → in_progress.",
	})
	reconcileClosed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reconcile_sessions_closed_total",
		Help: "Session yang ditransisikan → closed.",
	})
	reconcileRecordFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reconcile_record_failures_total",
		Help: "Kegagalan per-record yang diisolasi (tidak membatalkan batch).",
	})
)
