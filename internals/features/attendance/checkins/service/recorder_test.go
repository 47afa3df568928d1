package service

import (
	"testing"
	"time"

	"gorm.io/datatypes"

	sessionModel "kampusku_backend/internals/features/academics/sessions/model"
	"kampusku_backend/internals/helpers/dbtime"
)

func TestMergeMeta(t *testing.T) {
	tests := []struct {
		name        string
		existing    datatypes.JSONMap
		incoming    map[string]interface{}
		want        map[string]interface{}
		wantChanged bool
	}{
		{
			name:        "incoming kosong no-op",
			existing:    datatypes.JSONMap{"device": "android"},
			incoming:    nil,
			want:        map[string]interface{}{"device": "android"},
			wantChanged: false,
		},
		{
			name:        "existing nil diisi",
			existing:    nil,
			incoming:    map[string]interface{}{"device": "ios"},
			want:        map[string]interface{}{"device": "ios"},
			wantChanged: true,
		},
		{
			name:        "key lama tidak ditimpa",
			existing:    datatypes.JSONMap{"device": "android"},
			incoming:    map[string]interface{}{"device": "ios", "app_ver": "2.1"},
			want:        map[string]interface{}{"device": "android", "app_ver": "2.1"},
			wantChanged: true,
		},
		{
			name:        "semua key sudah ada",
			existing:    datatypes.JSONMap{"device": "android"},
			incoming:    map[string]interface{}{"device": "ios"},
			want:        map[string]interface{}{"device": "android"},
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := MergeMeta(tt.existing, tt.incoming)
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("jumlah key = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("meta[%q] = %v, want %v", k, got[k], v)
				}
			}
		})
	}
}

func TestNominalMinutes(t *testing.T) {
	mk := func(date, start, end string) *sessionModel.ActivitySessionModel {
		d, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			t.Fatalf("parse date: %v", err)
		}
		st, err := dbtime.Parse(start)
		if err != nil {
			t.Fatalf("parse start: %v", err)
		}
		en, err := dbtime.Parse(end)
		if err != nil {
			t.Fatalf("parse end: %v", err)
		}
		return &sessionModel.ActivitySessionModel{
			ActivitySessionDate:      d,
			ActivitySessionStartTime: st,
			ActivitySessionEndTime:   en,
		}
	}

	if got := NominalMinutes(mk("2025-12-01", "09:00", "11:00")); got != 120 {
		t.Errorf("durasi 09:00-11:00 = %d menit, want 120", got)
	}
	if got := NominalMinutes(mk("2025-12-01", "09:00", "09:45")); got != 45 {
		t.Errorf("durasi 09:00-09:45 = %d menit, want 45", got)
	}
	// Overnight: 22:00 → 01:00 hari berikutnya
	if got := NominalMinutes(mk("2025-12-01", "22:00", "01:00")); got != 180 {
		t.Errorf("durasi overnight 22:00-01:00 = %d menit, want 180", got)
	}
}
