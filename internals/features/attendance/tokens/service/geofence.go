// file: internals/features/attendance/tokens/service/geofence.go
package service

import (
	"math"

	tokenModel "kampusku_backend/internals/features/attendance/tokens/model"
	helper "kampusku_backend/internals/helpers"
)

const earthRadiusM = 6371000.0

// HaversineM: jarak great-circle dua koordinat dalam meter.
func HaversineM(lat1, lng1, lat2, lng2 float64) float64 {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusM * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// CheckGeofence: kalau token punya geofence, koordinat wajib ada dan harus
// berada ≤ radius_m dari pusat. Koordinat hilang saat geofence aktif juga
// location error.
func CheckGeofence(tok *tokenModel.CheckinTokenModel, lat, lng *float64) *helper.AppError {
	if !tok.HasGeofence() {
		return nil
	}
	if lat == nil || lng == nil {
		return helper.NewAppError(helper.ErrKindLocation, "Koordinat wajib untuk token ber-geofence")
	}
	dist := HaversineM(*tok.CheckinTokenLat, *tok.CheckinTokenLng, *lat, *lng)
	if dist > *tok.CheckinTokenRadiusM {
		return helper.NewAppError(helper.ErrKindLocation, "Lokasi di luar radius check-in")
	}
	return nil
}
