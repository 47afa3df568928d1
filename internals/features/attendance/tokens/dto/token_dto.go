// file: internals/features/attendance/tokens/dto/token_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	tokenModel "kampusku_backend/internals/features/attendance/tokens/model"
)

type GeofenceRequest struct {
	Lat     float64 `json:"lat"      validate:"min=-90,max=90"`
	Lng     float64 `json:"lng"      validate:"min=-180,max=180"`
	RadiusM float64 `json:"radius_m" validate:"gt=0"`
}

type IssueTokenRequest struct {
	CheckinTokenSessionId uuid.UUID        `json:"checkin_tokens_session_id" validate:"required"`
	CheckinTokenKind      string           `json:"checkin_tokens_kind"       validate:"required,oneof=qr manual"`
	CheckinTokenMaxUses   *int             `json:"checkin_tokens_max_uses,omitempty" validate:"omitempty,gt=0"`
	Geofence              *GeofenceRequest `json:"geofence,omitempty"`
}

type CheckinTokenResponse struct {
	CheckinTokenId         uuid.UUID `json:"checkin_tokens_id"`
	CheckinTokenSessionId  uuid.UUID `json:"checkin_tokens_session_id"`
	CheckinTokenValue      string    `json:"checkin_tokens_value"`
	CheckinTokenKind       string    `json:"checkin_tokens_kind"`
	CheckinTokenUsableFrom time.Time `json:"checkin_tokens_usable_from"`
	CheckinTokenExpiresAt  time.Time `json:"checkin_tokens_expires_at"`
	CheckinTokenMaxUses    *int      `json:"checkin_tokens_max_uses,omitempty"`
	CheckinTokenUses       int       `json:"checkin_tokens_uses"`
	CheckinTokenActive     bool      `json:"checkin_tokens_active"`
	CheckinTokenLat        *float64  `json:"checkin_tokens_lat,omitempty"`
	CheckinTokenLng        *float64  `json:"checkin_tokens_lng,omitempty"`
	CheckinTokenRadiusM    *float64  `json:"checkin_tokens_radius_m,omitempty"`
}

func FromCheckinTokenModel(m tokenModel.CheckinTokenModel) CheckinTokenResponse {
	return CheckinTokenResponse{
		CheckinTokenId:         m.CheckinTokenId,
		CheckinTokenSessionId:  m.CheckinTokenSessionId,
		CheckinTokenValue:      m.CheckinTokenValue,
		CheckinTokenKind:       m.CheckinTokenKind,
		CheckinTokenUsableFrom: m.CheckinTokenUsableFrom,
		CheckinTokenExpiresAt:  m.CheckinTokenExpiresAt,
		CheckinTokenMaxUses:    m.CheckinTokenMaxUses,
		CheckinTokenUses:       m.CheckinTokenUses,
		CheckinTokenActive:     m.CheckinTokenActive,
		CheckinTokenLat:        m.CheckinTokenLat,
		CheckinTokenLng:        m.CheckinTokenLng,
		CheckinTokenRadiusM:    m.CheckinTokenRadiusM,
	}
}

func FromCheckinTokenModels(ms []tokenModel.CheckinTokenModel) []CheckinTokenResponse {
	out := make([]CheckinTokenResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromCheckinTokenModel(m))
	}
	return out
}
