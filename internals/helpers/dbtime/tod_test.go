package dbtime

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		h, m, s int
		wantErr bool
	}{
		{in: "09:30", h: 9, m: 30},
		{in: "9:5", h: 9, m: 5},
		{in: "23:59:59", h: 23, m: 59, s: 59},
		{in: "00:00", h: 0, m: 0},
		{in: " 10:15 ", h: 10, m: 15},
		{in: "24:00", wantErr: true},
		{in: "10:60", wantErr: true},
		{in: "10:00:60", wantErr: true},
		{in: "10", wantErr: true},
		{in: "10:00:00:00", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "10:xx", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			tod, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) tidak error, padahal harus", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if tod.Hour() != tt.h || tod.Minute() != tt.m || tod.Second() != tt.s {
				t.Errorf("Parse(%q) = %02d:%02d:%02d, want %02d:%02d:%02d",
					tt.in, tod.Hour(), tod.Minute(), tod.Second(), tt.h, tt.m, tt.s)
			}
		})
	}
}

func TestValueFormatsHHMMSS(t *testing.T) {
	tod, err := Parse("9:05")
	if err != nil {
		t.Fatal(err)
	}
	v, err := tod.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "09:05:00" {
		t.Errorf("Value() = %v, want 09:05:00", v)
	}
}

func TestSecondsOfDay(t *testing.T) {
	tod, err := Parse("01:02:03")
	if err != nil {
		t.Fatal(err)
	}
	if got := tod.SecondsOfDay(); got != 3723 {
		t.Errorf("SecondsOfDay() = %d, want 3723", got)
	}
}

func TestOnDate(t *testing.T) {
	tod, err := Parse("14:30")
	if err != nil {
		t.Fatal(err)
	}
	date := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	got := tod.OnDate(date, time.UTC)
	want := time.Date(2025, 12, 1, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("OnDate() = %v, want %v", got, want)
	}
}

func TestScanRoundTrip(t *testing.T) {
	var tod Tod
	if err := tod.Scan("08:45:30"); err != nil {
		t.Fatal(err)
	}
	v, err := tod.Value()
	if err != nil {
		t.Fatal(err)
	}
	if v != "08:45:30" {
		t.Errorf("round trip = %v, want 08:45:30", v)
	}
}
