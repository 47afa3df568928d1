// file: internals/features/academics/sessions/service/timewindow.go
package service

import (
	"time"

	sessionModel "kampusku_backend/internals/features/academics/sessions/model"
)

// WindowStats: agregat jendela waktu untuk sekumpulan session relatif ke "now".
// Murni agregasi, tanpa side effect.
type WindowStats struct {
	Total      int
	MinStart   time.Time // start paling awal (zero kalau Total == 0)
	MaxEnd     time.Time // end paling akhir (zero kalau Total == 0)
	HasPast    bool      // ada session yang end-nya <= now
	HasFuture  bool      // ada session yang start-nya > now
	HasRunning bool      // ada session yang statusnya in_progress
}

// SessionBounds menggabungkan date + time-of-day jadi satu instant absolut.
// Kebijakan overnight: end <= start berarti lewat tengah malam, end digeser
// ke hari berikutnya. Kebijakan ini dipakai seragam (evaluator, token manual,
// dan predicate SQL di reconcile job).
func SessionBounds(s *sessionModel.ActivitySessionModel, loc *time.Location) (start, end time.Time) {
	start = s.ActivitySessionStartTime.OnDate(s.ActivitySessionDate, loc)
	end = s.ActivitySessionEndTime.OnDate(s.ActivitySessionDate, loc)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end
}

// EvaluateWindows menghitung WindowStats untuk sekumpulan session.
func EvaluateWindows(sessions []sessionModel.ActivitySessionModel, now time.Time) WindowStats {
	stats := WindowStats{Total: len(sessions)}
	loc := now.Location()

	for i := range sessions {
		s := &sessions[i]
		start, end := SessionBounds(s, loc)

		if stats.MinStart.IsZero() || start.Before(stats.MinStart) {
			stats.MinStart = start
		}
		if stats.MaxEnd.IsZero() || end.After(stats.MaxEnd) {
			stats.MaxEnd = end
		}
		if !end.After(now) {
			stats.HasPast = true
		}
		if start.After(now) {
			stats.HasFuture = true
		}
		if s.ActivitySessionStatus == StatusInProgress {
			stats.HasRunning = true
		}
	}
	return stats
}
