// file: internals/features/attendance/tokens/service/issuer.go
package service

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	sessionModel "kampusku_backend/internals/features/academics/sessions/model"
	sessionService "kampusku_backend/internals/features/academics/sessions/service"
	tokenModel "kampusku_backend/internals/features/attendance/tokens/model"
	helper "kampusku_backend/internals/helpers"
)

// GeofenceSpec: geofence opsional saat issue token QR.
type GeofenceSpec struct {
	Lat     float64
	Lng     float64
	RadiusM float64
}

type TokenService struct {
	DB *gorm.DB
}

func NewTokenService(db *gorm.DB) *TokenService {
	return &TokenService{DB: db}
}

// generateTokenValue: 24 byte acak → base64url, tidak bisa ditebak.
func generateTokenValue() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// IssueQR: jendela pakai [now, now+TTL] (TTL dari env, default 30 menit),
// opsional max_uses dan geofence.
func (s *TokenService) IssueQR(tx *gorm.DB, sess *sessionModel.ActivitySessionModel, createdBy uuid.UUID, maxUses *int, geo *GeofenceSpec) (*tokenModel.CheckinTokenModel, error) {
	db := s.DB
	if tx != nil {
		db = tx
	}

	value, err := generateTokenValue()
	if err != nil {
		return nil, helper.WrapAppError(helper.ErrKindInternal, "Gagal generate token", err)
	}

	now := time.Now()
	ttl := time.Duration(configs.GetEnvInt("TOKEN_QR_TTL_MINUTES", 30)) * time.Minute

	tok := &tokenModel.CheckinTokenModel{
		CheckinTokenSessionId:  sess.ActivitySessionId,
		CheckinTokenValue:      value,
		CheckinTokenKind:       tokenModel.TokenKindQR,
		CheckinTokenUsableFrom: now,
		CheckinTokenExpiresAt:  now.Add(ttl),
		CheckinTokenMaxUses:    maxUses,
		CheckinTokenActive:     true,
		CheckinTokenCreatedBy:  createdBy,
	}
	if geo != nil {
		tok.CheckinTokenLat = &geo.Lat
		tok.CheckinTokenLng = &geo.Lng
		tok.CheckinTokenRadiusM = &geo.RadiusM
	}

	if err := db.Create(tok).Error; err != nil {
		return nil, helper.ClassifyDBError(err, "Gagal menyimpan token")
	}
	return tok, nil
}

// IssueManual: jendela pakai mengikuti jendela session sendiri, dilebarkan
// satu jam di tiap sisi (pad dari env) supaya staff bisa buka absensi
// sebelum/sesudah jadwal formal. Tanpa geofence, tanpa cap uses.
// Kebijakan overnight sama dengan evaluator (end <= start → hari berikutnya).
func (s *TokenService) IssueManual(tx *gorm.DB, sess *sessionModel.ActivitySessionModel, createdBy uuid.UUID) (*tokenModel.CheckinTokenModel, error) {
	db := s.DB
	if tx != nil {
		db = tx
	}

	value, err := generateTokenValue()
	if err != nil {
		return nil, helper.WrapAppError(helper.ErrKindInternal, "Gagal generate token", err)
	}

	pad := time.Duration(configs.GetEnvInt("MANUAL_TOKEN_PAD_MINUTES", 60)) * time.Minute
	start, end := sessionService.SessionBounds(sess, time.Local)

	tok := &tokenModel.CheckinTokenModel{
		CheckinTokenSessionId:  sess.ActivitySessionId,
		CheckinTokenValue:      value,
		CheckinTokenKind:       tokenModel.TokenKindManual,
		CheckinTokenUsableFrom: start.Add(-pad),
		CheckinTokenExpiresAt:  end.Add(pad),
		CheckinTokenActive:     true,
		CheckinTokenCreatedBy:  createdBy,
	}

	if err := db.Create(tok).Error; err != nil {
		return nil, helper.ClassifyDBError(err, "Gagal menyimpan token")
	}
	return tok, nil
}

// CheckTokenUsable: urutan cek (1) — active, jendela waktu, sisa uses.
// Semua kegagalan di sini window error.
func CheckTokenUsable(tok *tokenModel.CheckinTokenModel, now time.Time) *helper.AppError {
	if !tok.CheckinTokenActive {
		return helper.NewAppError(helper.ErrKindWindow, "Token sudah dinonaktifkan")
	}
	if now.Before(tok.CheckinTokenUsableFrom) {
		return helper.NewAppError(helper.ErrKindWindow, "Token belum bisa dipakai")
	}
	if now.After(tok.CheckinTokenExpiresAt) {
		return helper.NewAppError(helper.ErrKindWindow, "Token sudah kedaluwarsa")
	}
	if tok.CheckinTokenMaxUses != nil && tok.CheckinTokenUses >= *tok.CheckinTokenMaxUses {
		return helper.NewAppError(helper.ErrKindWindow, "Kuota pemakaian token habis")
	}
	return nil
}

// FindByValue: lookup token by nilai (untuk check-in).
func (s *TokenService) FindByValue(tx *gorm.DB, value string) (*tokenModel.CheckinTokenModel, error) {
	db := s.DB
	if tx != nil {
		db = tx
	}
	var tok tokenModel.CheckinTokenModel
	if err := db.Where("checkin_tokens_value = ?", value).Take(&tok).Error; err != nil {
		return nil, helper.ClassifyDBError(err, "Token tidak ditemukan")
	}
	return &tok, nil
}

// ConsumeUse: increment uses atomik, guard max_uses di SQL supaya dua
// check-in paralel tidak bisa melewati cap. RowsAffected 0 = kuota habis.
func (s *TokenService) ConsumeUse(tx *gorm.DB, tokenID uuid.UUID) error {
	db := s.DB
	if tx != nil {
		db = tx
	}
	res := db.Exec(`
		UPDATE checkin_tokens
		SET checkin_tokens_uses = checkin_tokens_uses + 1
		WHERE checkin_tokens_id = ?
		  AND (checkin_tokens_max_uses IS NULL OR checkin_tokens_uses < checkin_tokens_max_uses)`,
		tokenID)
	if res.Error != nil {
		return helper.ClassifyDBError(res.Error, "Gagal increment uses token")
	}
	if res.RowsAffected == 0 {
		return helper.NewAppError(helper.ErrKindWindow, "Kuota pemakaian token habis")
	}
	return nil
}

// Disable: soft-disable (token tidak pernah dihapus).
func (s *TokenService) Disable(tx *gorm.DB, tokenID uuid.UUID) error {
	db := s.DB
	if tx != nil {
		db = tx
	}
	res := db.Model(&tokenModel.CheckinTokenModel{}).
		Where("checkin_tokens_id = ?", tokenID).
		Update("checkin_tokens_active", false)
	if res.Error != nil {
		return helper.ClassifyDBError(res.Error, "Gagal menonaktifkan token")
	}
	if res.RowsAffected == 0 {
		return helper.NewAppError(helper.ErrKindNotFound, "Token tidak ditemukan")
	}
	return nil
}
