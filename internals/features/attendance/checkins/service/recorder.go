// file: internals/features/attendance/checkins/service/recorder.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	checkinModel "kampusku_backend/internals/features/attendance/checkins/model"
	tokenModel "kampusku_backend/internals/features/attendance/tokens/model"
	tokenService "kampusku_backend/internals/features/attendance/tokens/service"
	helper "kampusku_backend/internals/helpers"
)

type CheckinService struct {
	DB *gorm.DB
}

func NewCheckinService(db *gorm.DB) *CheckinService {
	return &CheckinService{DB: db}
}

func (s *CheckinService) db(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return s.DB
}

// MergeMeta menggabungkan meta baru ke meta lama: key yang sudah ada TIDAK
// ditimpa (merge, bukan replace). Return map hasil + apakah ada perubahan.
func MergeMeta(existing datatypes.JSONMap, incoming map[string]interface{}) (datatypes.JSONMap, bool) {
	if len(incoming) == 0 {
		return existing, false
	}
	if existing == nil {
		existing = datatypes.JSONMap{}
	}
	changed := false
	for k, v := range incoming {
		if _, ok := existing[k]; ok {
			continue
		}
		existing[k] = v
		changed = true
	}
	return existing, changed
}

// CheckInWithToken: alur check-in via token (QR atau manual). Urutan validasi:
// (1) token usable (active/jendela/uses) → window error;
// (2) geofence kalau dikonfigurasi → location error;
// lalu upsert attendance dan increment uses — uses hanya dibakar kalau
// check-in ini benar-benar tercatat (bukan scan ulang yang no-op).
func (s *CheckinService) CheckInWithToken(tx *gorm.DB, tokenValue string, studentRecordID uuid.UUID, participationID *uuid.UUID, lat, lng *float64, meta map[string]interface{}) (*checkinModel.AttendanceModel, error) {
	db := s.db(tx)
	now := time.Now()

	tok, err := tokenService.NewTokenService(db).FindByValue(db, tokenValue)
	if err != nil {
		return nil, err
	}

	if aerr := tokenService.CheckTokenUsable(tok, now); aerr != nil {
		return nil, aerr
	}
	if aerr := tokenService.CheckGeofence(tok, lat, lng); aerr != nil {
		return nil, aerr
	}

	method := checkinModel.MethodQR
	if tok.CheckinTokenKind == tokenModel.TokenKindManual {
		method = checkinModel.MethodManual
	}
	tokenID := tok.CheckinTokenId

	att, recorded, err := s.upsertAttendance(db, tok.CheckinTokenSessionId, studentRecordID, method, &tokenID, participationID, meta, now)
	if err != nil {
		return nil, err
	}
	if recorded {
		if err := tokenService.NewTokenService(db).ConsumeUse(db, tok.CheckinTokenId); err != nil {
			return nil, err
		}
	}
	return att, nil
}

// RecordDirect: check-in tanpa token (manual oleh staff, import, adjustment).
func (s *CheckinService) RecordDirect(tx *gorm.DB, sessionID, studentRecordID uuid.UUID, method string, participationID *uuid.UUID, meta map[string]interface{}) (*checkinModel.AttendanceModel, error) {
	db := s.db(tx)
	att, _, err := s.upsertAttendance(db, sessionID, studentRecordID, method, nil, participationID, meta, time.Now())
	return att, err
}

// upsertAttendance: create-or-fetch baris unik (session, student_record).
// First check-in wins untuk check_in_at; meta di-merge, tidak di-replace.
// recorded=true kalau call ini membuat baris baru atau stamp check_in_at.
func (s *CheckinService) upsertAttendance(db *gorm.DB, sessionID, studentRecordID uuid.UUID, method string, tokenID, participationID *uuid.UUID, meta map[string]interface{}, now time.Time) (*checkinModel.AttendanceModel, bool, error) {
	fresh := checkinModel.AttendanceModel{
		AttendanceSessionId:       sessionID,
		AttendanceStudentRecordId: studentRecordID,
		AttendanceParticipationId: participationID,
		AttendanceTokenId:         tokenID,
		AttendanceMethod:          method,
		AttendanceCheckInAt:       &now,
		AttendanceStatus:          checkinModel.AttendancePending,
	}
	if merged, _ := MergeMeta(nil, meta); len(merged) > 0 {
		fresh.AttendanceMeta = merged
	}

	// ON CONFLICT DO NOTHING: race dua check-in paralel diserap unique index.
	res := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendances_session_id"},
			{Name: "attendances_student_record_id"},
		},
		DoNothing: true,
	}).Create(&fresh)
	if res.Error != nil {
		return nil, false, helper.ClassifyDBError(res.Error, "Gagal menyimpan attendance")
	}
	if res.RowsAffected > 0 {
		return &fresh, true, nil
	}

	// Baris sudah ada: ambil lalu lengkapi field yang masih kosong.
	var att checkinModel.AttendanceModel
	if err := db.
		Where("attendances_session_id = ? AND attendances_student_record_id = ?", sessionID, studentRecordID).
		Take(&att).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, helper.WrapAppError(helper.ErrKindInternal, "Attendance hilang setelah upsert", err)
		}
		return nil, false, helper.ClassifyDBError(err, "Gagal membaca attendance")
	}

	updates := map[string]interface{}{}
	recorded := false
	if att.AttendanceCheckInAt == nil {
		att.AttendanceCheckInAt = &now
		updates["attendances_check_in_at"] = now
		updates["attendances_method"] = method
		if tokenID != nil {
			updates["attendances_token_id"] = *tokenID
			att.AttendanceTokenId = tokenID
		}
		recorded = true
	}
	if merged, changed := MergeMeta(att.AttendanceMeta, meta); changed {
		att.AttendanceMeta = merged
		updates["attendances_meta"] = merged
	}
	if len(updates) > 0 {
		if err := db.Model(&checkinModel.AttendanceModel{}).
			Where("attendances_id = ?", att.AttendanceId).
			Updates(updates).Error; err != nil {
			return nil, false, helper.ClassifyDBError(err, "Gagal melengkapi attendance")
		}
	}
	return &att, recorded, nil
}
