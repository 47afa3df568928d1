// file: internals/features/attendance/checkins/service/validation.go
package service

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	activityService "kampusku_backend/internals/features/academics/activities/service"
	sessionModel "kampusku_backend/internals/features/academics/sessions/model"
	sessionService "kampusku_backend/internals/features/academics/sessions/service"
	checkinModel "kampusku_backend/internals/features/attendance/checkins/model"
	helper "kampusku_backend/internals/helpers"
)

// NominalMinutes: durasi nominal sesi dalam menit (overnight ikut aturan
// rollover bounds, jadi 22:00→01:00 = 180 menit).
func NominalMinutes(sess *sessionModel.ActivitySessionModel) int {
	start, end := sessionService.SessionBounds(sess, time.Local)
	return int(end.Sub(start) / time.Minute)
}

// ValidateAttendance: transisi satu attendance ke VALIDATED (idempotent —
// validasi ulang menimpa minutes & check_out_at, bukan error). Baris VOID
// tidak bisa divalidasi. minutes ≤ 0 berarti pakai durasi nominal sesi.
func (s *CheckinService) ValidateAttendance(tx *gorm.DB, attendanceID uuid.UUID, minutes int, withHours bool) (*checkinModel.AttendanceModel, error) {
	db := s.db(tx)
	now := time.Now()

	var att checkinModel.AttendanceModel
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("attendances_id = ?", attendanceID).
		Take(&att).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewAppError(helper.ErrKindNotFound, "Attendance tidak ditemukan")
		}
		return nil, helper.ClassifyDBError(err, "Gagal membaca attendance")
	}
	if att.AttendanceStatus == checkinModel.AttendanceVoid {
		return nil, helper.NewAppError(helper.ErrKindState, "Attendance sudah void, tidak bisa divalidasi")
	}

	var sess sessionModel.ActivitySessionModel
	if err := db.Where("activity_sessions_id = ?", att.AttendanceSessionId).
		Take(&sess).Error; err != nil {
		return nil, helper.ClassifyDBError(err, "Gagal membaca sesi attendance")
	}
	if minutes <= 0 {
		minutes = NominalMinutes(&sess)
	}

	updates := map[string]interface{}{
		"attendances_status":            checkinModel.AttendanceValidated,
		"attendances_minutes_validated": minutes,
	}
	att.AttendanceStatus = checkinModel.AttendanceValidated
	att.AttendanceMinutesValidated = minutes
	if att.AttendanceCheckOutAt == nil {
		att.AttendanceCheckOutAt = &now
		updates["attendances_check_out_at"] = now
	}
	if err := db.Model(&checkinModel.AttendanceModel{}).
		Where("attendances_id = ?", att.AttendanceId).
		Updates(updates).Error; err != nil {
		return nil, helper.ClassifyDBError(err, "Gagal memvalidasi attendance")
	}

	if withHours {
		if err := s.upsertHoursRecord(db, &att, &sess); err != nil {
			return nil, err
		}
	}
	return &att, nil
}

// ValidateSessionAttendances: validasi massal semua attendance PENDING satu
// sesi. Baris di-lock FOR UPDATE supaya validasi paralel tidak saling timpa.
func (s *CheckinService) ValidateSessionAttendances(tx *gorm.DB, sessionID uuid.UUID, minutes int, withHours bool) (int, error) {
	db := s.db(tx)

	var ids []uuid.UUID
	if err := db.Model(&checkinModel.AttendanceModel{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("attendances_session_id = ? AND attendances_status = ?", sessionID, checkinModel.AttendancePending).
		Order("attendances_id").
		Pluck("attendances_id", &ids).Error; err != nil {
		return 0, helper.ClassifyDBError(err, "Gagal mengambil attendance sesi")
	}

	done := 0
	for _, id := range ids {
		if _, err := s.ValidateAttendance(db, id, minutes, withHours); err != nil {
			log.Printf("[CHECKIN] ⚠️ validasi attendance %s gagal: %v", id, err)
			return done, err
		}
		done++
	}
	return done, nil
}

// VoidAttendance: tandai attendance VOID dan matikan hours record-nya (kalau
// sudah sempat dibuat). Void itu sticky — tidak ada jalan balik ke pending.
func (s *CheckinService) VoidAttendance(tx *gorm.DB, attendanceID uuid.UUID) (*checkinModel.AttendanceModel, error) {
	db := s.db(tx)

	var att checkinModel.AttendanceModel
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("attendances_id = ?", attendanceID).
		Take(&att).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.NewAppError(helper.ErrKindNotFound, "Attendance tidak ditemukan")
		}
		return nil, helper.ClassifyDBError(err, "Gagal membaca attendance")
	}
	if att.AttendanceStatus == checkinModel.AttendanceVoid {
		return &att, nil // idempotent
	}

	att.AttendanceStatus = checkinModel.AttendanceVoid
	if err := db.Model(&checkinModel.AttendanceModel{}).
		Where("attendances_id = ?", att.AttendanceId).
		Update("attendances_status", checkinModel.AttendanceVoid).Error; err != nil {
		return nil, helper.ClassifyDBError(err, "Gagal mem-void attendance")
	}

	if err := db.Model(&checkinModel.HoursRecordModel{}).
		Where("hours_records_attendance_id = ?", att.AttendanceId).
		Update("hours_records_status", checkinModel.HoursRecordVoid).Error; err != nil {
		return nil, helper.ClassifyDBError(err, "Gagal mem-void hours record")
	}
	return &att, nil
}

// upsertHoursRecord: satu attendance → satu hours record. ON CONFLICT by
// attendance_id DO UPDATE: validasi ulang me-refresh menit, tidak menambah
// baris. Period diambil dari tanggal sesi (boleh nil kalau di luar periode).
func (s *CheckinService) upsertHoursRecord(db *gorm.DB, att *checkinModel.AttendanceModel, sess *sessionModel.ActivitySessionModel) error {
	var periodID *uuid.UUID
	period, err := activityService.FindPeriodForDate(db, sess.ActivitySessionDate)
	if err != nil {
		return err
	}
	if period != nil {
		periodID = &period.AcademicPeriodId
	}

	rec := checkinModel.HoursRecordModel{
		HoursRecordAttendanceId:    att.AttendanceId,
		HoursRecordStudentRecordId: att.AttendanceStudentRecordId,
		HoursRecordOwnerType:       sess.ActivitySessionOwnerType,
		HoursRecordOwnerId:         sess.ActivitySessionOwnerId,
		HoursRecordPeriodId:        periodID,
		HoursRecordDate:            sess.ActivitySessionDate,
		HoursRecordMinutes:         att.AttendanceMinutesValidated,
		HoursRecordStatus:          checkinModel.HoursRecordCounted,
	}
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "hours_records_attendance_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"hours_records_minutes",
			"hours_records_date",
			"hours_records_period_id",
			"hours_records_status",
		}),
	}).Create(&rec).Error; err != nil {
		return helper.ClassifyDBError(err, "Gagal menyimpan hours record")
	}
	return nil
}
