package model

import (
	"time"

	"github.com/google/uuid"
)

// Kind token check-in.
const (
	TokenKindQR     = "qr"
	TokenKindManual = "manual"
)

// CheckinToken: kredensial check-in berbatas waktu, opsional geofence.
// Tidak pernah dihapus — dinonaktifkan via active=false. uses hanya naik,
// dan tidak boleh melewati max_uses kalau diset.
type CheckinTokenModel struct {
	CheckinTokenId uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:checkin_tokens_id" json:"checkin_tokens_id"`

	CheckinTokenSessionId uuid.UUID `gorm:"type:uuid;not null;index;column:checkin_tokens_session_id" json:"checkin_tokens_session_id"`

	CheckinTokenValue string `gorm:"uniqueIndex;not null;column:checkin_tokens_value" json:"checkin_tokens_value"`
	CheckinTokenKind  string `gorm:"not null;column:checkin_tokens_kind"              json:"checkin_tokens_kind"`

	CheckinTokenUsableFrom time.Time `gorm:"not null;column:checkin_tokens_usable_from" json:"checkin_tokens_usable_from"`
	CheckinTokenExpiresAt  time.Time `gorm:"not null;column:checkin_tokens_expires_at"  json:"checkin_tokens_expires_at"`

	CheckinTokenMaxUses *int `gorm:"column:checkin_tokens_max_uses"                json:"checkin_tokens_max_uses,omitempty"`
	CheckinTokenUses    int  `gorm:"not null;default:0;column:checkin_tokens_uses" json:"checkin_tokens_uses"`

	CheckinTokenActive bool `gorm:"not null;default:true;column:checkin_tokens_active" json:"checkin_tokens_active"`

	// Geofence opsional: ketiganya diisi atau tidak sama sekali.
	CheckinTokenLat     *float64 `gorm:"column:checkin_tokens_lat"      json:"checkin_tokens_lat,omitempty"`
	CheckinTokenLng     *float64 `gorm:"column:checkin_tokens_lng"      json:"checkin_tokens_lng,omitempty"`
	CheckinTokenRadiusM *float64 `gorm:"column:checkin_tokens_radius_m" json:"checkin_tokens_radius_m,omitempty"`

	CheckinTokenCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:checkin_tokens_created_by" json:"checkin_tokens_created_by"`
	CheckinTokenCreatedAt time.Time `gorm:"column:checkin_tokens_created_at;autoCreateTime"     json:"checkin_tokens_created_at"`
}

func (CheckinTokenModel) TableName() string { return "checkin_tokens" }

// HasGeofence: geofence dianggap aktif hanya kalau ketiganya terisi.
func (t *CheckinTokenModel) HasGeofence() bool {
	return t.CheckinTokenLat != nil && t.CheckinTokenLng != nil && t.CheckinTokenRadiusM != nil
}
