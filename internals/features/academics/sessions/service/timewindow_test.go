package service

import (
	"testing"
	"time"

	sessionModel "kampusku_backend/internals/features/academics/sessions/model"
	"kampusku_backend/internals/helpers/dbtime"
)

func mustTod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	tod, err := dbtime.Parse(s)
	if err != nil {
		t.Fatalf("parse tod %q: %v", s, err)
	}
	return tod
}

func makeSession(t *testing.T, date, start, end, status string) sessionModel.ActivitySessionModel {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		t.Fatalf("parse date %q: %v", date, err)
	}
	return sessionModel.ActivitySessionModel{
		ActivitySessionDate:      d,
		ActivitySessionStartTime: mustTod(t, start),
		ActivitySessionEndTime:   mustTod(t, end),
		ActivitySessionStatus:    status,
	}
}

func at(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04", s, time.UTC)
	if err != nil {
		t.Fatalf("parse instant %q: %v", s, err)
	}
	return ts
}

func TestSessionBoundsSameDay(t *testing.T) {
	s := makeSession(t, "2025-12-01", "09:00", "11:00", StatusPlanned)
	start, end := SessionBounds(&s, time.UTC)

	if got, want := start, at(t, "2025-12-01 09:00"); !got.Equal(want) {
		t.Errorf("start = %v, want %v", got, want)
	}
	if got, want := end, at(t, "2025-12-01 11:00"); !got.Equal(want) {
		t.Errorf("end = %v, want %v", got, want)
	}
}

func TestSessionBoundsOvernight(t *testing.T) {
	// end <= start → end digeser ke hari berikutnya
	s := makeSession(t, "2025-12-01", "22:00", "01:00", StatusPlanned)
	start, end := SessionBounds(&s, time.UTC)

	if got, want := start, at(t, "2025-12-01 22:00"); !got.Equal(want) {
		t.Errorf("start = %v, want %v", got, want)
	}
	if got, want := end, at(t, "2025-12-02 01:00"); !got.Equal(want) {
		t.Errorf("end = %v, want %v", got, want)
	}
	if got := end.Sub(start); got != 3*time.Hour {
		t.Errorf("durasi = %v, want 3h", got)
	}
}

func TestSessionBoundsEndEqualsStart(t *testing.T) {
	s := makeSession(t, "2025-12-01", "08:00", "08:00", StatusPlanned)
	start, end := SessionBounds(&s, time.UTC)
	if got := end.Sub(start); got != 24*time.Hour {
		t.Errorf("durasi = %v, want 24h", got)
	}
}

func TestEvaluateWindows(t *testing.T) {
	sessions := []sessionModel.ActivitySessionModel{
		makeSession(t, "2025-12-01", "09:00", "11:00", StatusClosed),
		makeSession(t, "2025-12-03", "09:00", "11:00", StatusPlanned),
		makeSession(t, "2025-12-05", "09:00", "11:00", StatusPlanned),
	}

	stats := EvaluateWindows(sessions, at(t, "2025-12-02 12:00"))

	if stats.Total != 3 {
		t.Errorf("Total = %d, want 3", stats.Total)
	}
	if want := at(t, "2025-12-01 09:00"); !stats.MinStart.Equal(want) {
		t.Errorf("MinStart = %v, want %v", stats.MinStart, want)
	}
	if want := at(t, "2025-12-05 11:00"); !stats.MaxEnd.Equal(want) {
		t.Errorf("MaxEnd = %v, want %v", stats.MaxEnd, want)
	}
	if !stats.HasPast {
		t.Error("HasPast = false, want true")
	}
	if !stats.HasFuture {
		t.Error("HasFuture = false, want true")
	}
	if stats.HasRunning {
		t.Error("HasRunning = true, want false")
	}
}

func TestEvaluateWindowsRunningFlag(t *testing.T) {
	sessions := []sessionModel.ActivitySessionModel{
		makeSession(t, "2025-12-01", "09:00", "11:00", StatusInProgress),
	}
	stats := EvaluateWindows(sessions, at(t, "2025-12-01 10:00"))
	if !stats.HasRunning {
		t.Error("HasRunning = false, want true")
	}
}

func TestEvaluateWindowsEmpty(t *testing.T) {
	stats := EvaluateWindows(nil, at(t, "2025-12-01 10:00"))
	if stats.Total != 0 || !stats.MinStart.IsZero() || !stats.MaxEnd.IsZero() {
		t.Errorf("stats set kosong tidak bersih: %+v", stats)
	}
}
