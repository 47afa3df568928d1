package service

import (
	"testing"
	"time"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		codes   []string
		want    []time.Weekday
		wantErr bool
	}{
		{
			name:  "inggris tiga huruf",
			codes: []string{"mon", "wed", "fri"},
			want:  []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		},
		{
			name:  "angka 0 dan 7 sama-sama minggu",
			codes: []string{"0", "7"},
			want:  []time.Weekday{time.Sunday},
		},
		{
			name:  "angka 1..6",
			codes: []string{"1", "6"},
			want:  []time.Weekday{time.Monday, time.Saturday},
		},
		{
			name:  "spanyol dua huruf",
			codes: []string{"lu", "mi"},
			want:  []time.Weekday{time.Monday, time.Wednesday},
		},
		{
			name:  "spanyol tiga huruf beraksen",
			codes: []string{"Mié", "SAB"},
			want:  []time.Weekday{time.Wednesday, time.Saturday},
		},
		{
			name:  "indonesia tiga huruf",
			codes: []string{"sen", "rab", "jum"},
			want:  []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		},
		{
			name:  "duplikat dibuang",
			codes: []string{"mon", "MON", "1", "sen"},
			want:  []time.Weekday{time.Monday},
		},
		{
			name:    "kode tak dikenal",
			codes:   []string{"funday"},
			wantErr: true,
		},
		{
			name:    "angka di luar rentang",
			codes:   []string{"8"},
			wantErr: true,
		},
		{
			name:    "daftar kosong",
			codes:   nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, aerr := ParseWeekdays(tt.codes)
			if tt.wantErr {
				if aerr == nil {
					t.Fatalf("ParseWeekdays(%v) tidak error, padahal harus", tt.codes)
				}
				return
			}
			if aerr != nil {
				t.Fatalf("ParseWeekdays(%v) error: %v", tt.codes, aerr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("jumlah weekday = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for _, wd := range tt.want {
				if !got[wd] {
					t.Errorf("weekday %v tidak ada di hasil %v", wd, got)
				}
			}
		})
	}
}

func TestExpandDateRange(t *testing.T) {
	// 2025-12-01 itu hari Senin.
	start := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 7, 0, 0, 0, 0, time.UTC)

	weekdays, aerr := ParseWeekdays([]string{"mon", "wed", "fri"})
	if aerr != nil {
		t.Fatalf("ParseWeekdays: %v", aerr)
	}

	got := ExpandDateRange(start, end, weekdays)
	want := []string{"2025-12-01", "2025-12-03", "2025-12-05"}

	if len(got) != len(want) {
		t.Fatalf("jumlah tanggal = %d, want %d (%v)", len(got), len(want), got)
	}
	for i, d := range got {
		if s := d.Format("2006-01-02"); s != want[i] {
			t.Errorf("tanggal[%d] = %s, want %s", i, s, want[i])
		}
	}
}

func TestExpandDateRangeSingleDay(t *testing.T) {
	day := time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC) // Rabu

	weekdays, _ := ParseWeekdays([]string{"wed"})
	if got := ExpandDateRange(day, day, weekdays); len(got) != 1 {
		t.Errorf("rentang satu hari match = %d tanggal, want 1", len(got))
	}

	weekdays, _ = ParseWeekdays([]string{"sun"})
	if got := ExpandDateRange(day, day, weekdays); len(got) != 0 {
		t.Errorf("rentang satu hari non-match = %d tanggal, want 0", len(got))
	}
}

func TestResolveDatesExplicitList(t *testing.T) {
	svc := &ScheduleService{}
	dates, aerr := svc.resolveDates(ScheduleRequest{
		Dates: []string{"2025-12-05", "2025-12-01", "2025-12-05", " ", "2025-12-03"},
	})
	if aerr != nil {
		t.Fatalf("resolveDates: %v", aerr)
	}
	want := []string{"2025-12-01", "2025-12-03", "2025-12-05"}
	if len(dates) != len(want) {
		t.Fatalf("jumlah tanggal = %d, want %d", len(dates), len(want))
	}
	for i, d := range dates {
		if s := d.Format("2006-01-02"); s != want[i] {
			t.Errorf("tanggal[%d] = %s, want %s (harus terurut & bebas duplikat)", i, s, want[i])
		}
	}
}

func TestResolveDatesRangeValidation(t *testing.T) {
	svc := &ScheduleService{}

	if _, aerr := svc.resolveDates(ScheduleRequest{}); aerr == nil {
		t.Error("tanpa dates & range harus error")
	}
	if _, aerr := svc.resolveDates(ScheduleRequest{
		RangeStart: "2025-12-07", RangeEnd: "2025-12-01", Weekdays: []string{"mon"},
	}); aerr == nil {
		t.Error("range terbalik harus error")
	}
	if _, aerr := svc.resolveDates(ScheduleRequest{
		RangeStart: "2025-12-02", RangeEnd: "2025-12-02", Weekdays: []string{"mon"},
	}); aerr == nil {
		t.Error("range tanpa tanggal match harus error")
	}
}
