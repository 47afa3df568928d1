package service

import (
	"math"
	"testing"

	tokenModel "kampusku_backend/internals/features/attendance/tokens/model"
	helper "kampusku_backend/internals/helpers"
)

func f64(v float64) *float64 { return &v }

func TestHaversineM(t *testing.T) {
	// Titik identik
	if d := HaversineM(-6.2, 106.8, -6.2, 106.8); d != 0 {
		t.Errorf("jarak titik identik = %v, want 0", d)
	}

	// Monas → Bundaran HI ±2.2 km
	d := HaversineM(-6.1754, 106.8272, -6.1951, 106.8230)
	if d < 2000 || d > 2500 {
		t.Errorf("Monas→HI = %.0f m, want sekitar 2200 m", d)
	}

	// Simetris
	d2 := HaversineM(-6.1951, 106.8230, -6.1754, 106.8272)
	if math.Abs(d-d2) > 0.001 {
		t.Errorf("haversine tidak simetris: %v vs %v", d, d2)
	}
}

func TestCheckGeofence(t *testing.T) {
	fenced := &tokenModel.CheckinTokenModel{
		CheckinTokenLat:     f64(-6.2000),
		CheckinTokenLng:     f64(106.8000),
		CheckinTokenRadiusM: f64(100),
	}
	open := &tokenModel.CheckinTokenModel{}

	tests := []struct {
		name     string
		tok      *tokenModel.CheckinTokenModel
		lat, lng *float64
		wantKind helper.ErrorKind // "" = lolos
	}{
		{"tanpa geofence, tanpa koordinat", open, nil, nil, ""},
		{"tanpa geofence, dengan koordinat", open, f64(-6.2), f64(106.8), ""},
		{"dalam radius", fenced, f64(-6.2001), f64(106.8001), ""},
		{"di pusat", fenced, f64(-6.2000), f64(106.8000), ""},
		{"di luar radius", fenced, f64(-6.2100), f64(106.8100), helper.ErrKindLocation},
		{"koordinat hilang", fenced, nil, nil, helper.ErrKindLocation},
		{"hanya lat", fenced, f64(-6.2), nil, helper.ErrKindLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aerr := CheckGeofence(tt.tok, tt.lat, tt.lng)
			if tt.wantKind == "" {
				if aerr != nil {
					t.Fatalf("CheckGeofence gagal: %v", aerr)
				}
				return
			}
			if aerr == nil {
				t.Fatal("CheckGeofence lolos, padahal harus gagal")
			}
			if aerr.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", aerr.Kind, tt.wantKind)
			}
		})
	}
}
