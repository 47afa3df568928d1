package service

import (
	"testing"
	"time"

	sessionModel "kampusku_backend/internals/features/academics/sessions/model"
)

func TestDeriveOwnerStatus(t *testing.T) {
	now := at(t, "2025-12-02 12:00")

	tests := []struct {
		name  string
		stats WindowStats
		want  string
	}{
		{
			name:  "tanpa session",
			stats: WindowStats{},
			want:  StatusPlanned,
		},
		{
			name: "semua di masa depan",
			stats: WindowStats{
				Total:    2,
				MinStart: at(t, "2025-12-03 09:00"),
				MaxEnd:   at(t, "2025-12-05 11:00"),
			},
			want: StatusPlanned,
		},
		{
			name: "semua sudah lewat",
			stats: WindowStats{
				Total:    2,
				MinStart: at(t, "2025-11-01 09:00"),
				MaxEnd:   at(t, "2025-11-05 11:00"),
				HasPast:  true,
			},
			want: StatusClosed,
		},
		{
			name: "now di dalam rentang min..max",
			stats: WindowStats{
				Total:     2,
				MinStart:  at(t, "2025-12-01 09:00"),
				MaxEnd:    at(t, "2025-12-05 11:00"),
				HasPast:   true,
				HasFuture: true,
			},
			want: StatusInProgress,
		},
		{
			name: "now tepat di max_end",
			stats: WindowStats{
				Total:    1,
				MinStart: at(t, "2025-12-01 09:00"),
				MaxEnd:   at(t, "2025-12-02 12:00"),
				HasPast:  true,
			},
			want: StatusClosed,
		},
		{
			name: "running override menang",
			stats: WindowStats{
				Total:      1,
				MinStart:   at(t, "2025-12-03 09:00"),
				MaxEnd:     at(t, "2025-12-03 11:00"),
				HasFuture:  true,
				HasRunning: true,
			},
			want: StatusInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveOwnerStatus(tt.stats, now); got != tt.want {
				t.Errorf("DeriveOwnerStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeriveSessionStatus(t *testing.T) {
	tests := []struct {
		name    string
		session sessionModel.ActivitySessionModel
		now     string
		want    string
	}{
		{
			name:    "planned sebelum mulai tidak berubah",
			session: makeSession(t, "2025-12-01", "09:00", "11:00", StatusPlanned),
			now:     "2025-12-01 08:00",
			want:    "",
		},
		{
			name:    "planned di dalam jendela jadi in_progress",
			session: makeSession(t, "2025-12-01", "09:00", "11:00", StatusPlanned),
			now:     "2025-12-01 10:00",
			want:    StatusInProgress,
		},
		{
			name:    "planned sudah lewat langsung closed",
			session: makeSession(t, "2025-12-01", "09:00", "11:00", StatusPlanned),
			now:     "2025-12-01 12:00",
			want:    StatusClosed,
		},
		{
			name:    "in_progress lewat end jadi closed",
			session: makeSession(t, "2025-12-01", "09:00", "11:00", StatusInProgress),
			now:     "2025-12-01 11:00",
			want:    StatusClosed,
		},
		{
			name:    "in_progress masih jalan tidak berubah",
			session: makeSession(t, "2025-12-01", "09:00", "11:00", StatusInProgress),
			now:     "2025-12-01 10:30",
			want:    "",
		},
		{
			name:    "closed tidak pernah dinormalisasi",
			session: makeSession(t, "2025-12-01", "09:00", "11:00", StatusClosed),
			now:     "2025-12-01 10:00",
			want:    "",
		},
		{
			name:    "cancelled tidak pernah dinormalisasi",
			session: makeSession(t, "2025-12-01", "09:00", "11:00", StatusCancelled),
			now:     "2025-12-01 10:00",
			want:    "",
		},
		{
			name:    "overnight masih jalan lewat tengah malam",
			session: makeSession(t, "2025-12-01", "22:00", "01:00", StatusInProgress),
			now:     "2025-12-02 00:30",
			want:    "",
		},
		{
			name:    "overnight closed setelah end hari berikutnya",
			session: makeSession(t, "2025-12-01", "22:00", "01:00", StatusInProgress),
			now:     "2025-12-02 01:00",
			want:    StatusClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now, err := time.ParseInLocation("2006-01-02 15:04", tt.now, time.UTC)
			if err != nil {
				t.Fatalf("parse now: %v", err)
			}
			if got := DeriveSessionStatus(&tt.session, now); got != tt.want {
				t.Errorf("DeriveSessionStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}
