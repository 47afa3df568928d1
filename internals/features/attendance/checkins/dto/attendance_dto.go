// file: internals/features/attendance/checkins/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	checkinModel "kampusku_backend/internals/features/attendance/checkins/model"
)

/* ===================== REQUESTS ===================== */

// Check-in via token (QR scan atau kode manual).
type CheckinRequest struct {
	TokenValue      string                 `json:"token_value" validate:"required"`
	StudentRecordId *uuid.UUID             `json:"student_record_id,omitempty"` // staff cek-in atas nama siswa
	ParticipationId *uuid.UUID             `json:"participation_id,omitempty"`
	Lat             *float64               `json:"lat,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Lng             *float64               `json:"lng,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Meta            map[string]interface{} `json:"meta,omitempty"`
}

// Pencatatan langsung tanpa token (import, adjustment, manual oleh staff).
type DirectAttendanceRequest struct {
	AttendanceSessionId       uuid.UUID              `json:"attendances_session_id"        validate:"required"`
	AttendanceStudentRecordId uuid.UUID              `json:"attendances_student_record_id" validate:"required"`
	AttendanceMethod          string                 `json:"attendances_method"            validate:"required,oneof=manual imported adjustment"`
	AttendanceParticipationId *uuid.UUID             `json:"attendances_participation_id,omitempty"`
	Meta                      map[string]interface{} `json:"meta,omitempty"`
}

type ValidateAttendanceRequest struct {
	Minutes   int   `json:"minutes" validate:"omitempty,gte=0"` // 0 = pakai durasi nominal sesi
	WithHours *bool `json:"with_hours,omitempty"`               // default true
}

type ValidateSessionRequest struct {
	AttendanceSessionId uuid.UUID `json:"attendances_session_id" validate:"required"`
	Minutes             int       `json:"minutes" validate:"omitempty,gte=0"`
	WithHours           *bool     `json:"with_hours,omitempty"`
}

/* ===================== RESPONSES ===================== */

type AttendanceResponse struct {
	AttendanceId               uuid.UUID         `json:"attendances_id"`
	AttendanceSessionId        uuid.UUID         `json:"attendances_session_id"`
	AttendanceStudentRecordId  uuid.UUID         `json:"attendances_student_record_id"`
	AttendanceParticipationId  *uuid.UUID        `json:"attendances_participation_id,omitempty"`
	AttendanceTokenId          *uuid.UUID        `json:"attendances_token_id,omitempty"`
	AttendanceMethod           string            `json:"attendances_method"`
	AttendanceCheckInAt        *time.Time        `json:"attendances_check_in_at,omitempty"`
	AttendanceCheckOutAt       *time.Time        `json:"attendances_check_out_at,omitempty"`
	AttendanceStatus           string            `json:"attendances_status"`
	AttendanceMinutesValidated int               `json:"attendances_minutes_validated"`
	AttendanceMeta             datatypes.JSONMap `json:"attendances_meta,omitempty"`
}

func FromAttendanceModel(m checkinModel.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceId:               m.AttendanceId,
		AttendanceSessionId:        m.AttendanceSessionId,
		AttendanceStudentRecordId:  m.AttendanceStudentRecordId,
		AttendanceParticipationId:  m.AttendanceParticipationId,
		AttendanceTokenId:          m.AttendanceTokenId,
		AttendanceMethod:           m.AttendanceMethod,
		AttendanceCheckInAt:        m.AttendanceCheckInAt,
		AttendanceCheckOutAt:       m.AttendanceCheckOutAt,
		AttendanceStatus:           m.AttendanceStatus,
		AttendanceMinutesValidated: m.AttendanceMinutesValidated,
		AttendanceMeta:             m.AttendanceMeta,
	}
}

func FromAttendanceModels(ms []checkinModel.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromAttendanceModel(m))
	}
	return out
}

type HoursRecordResponse struct {
	HoursRecordId              uuid.UUID  `json:"hours_records_id"`
	HoursRecordAttendanceId    uuid.UUID  `json:"hours_records_attendance_id"`
	HoursRecordStudentRecordId uuid.UUID  `json:"hours_records_student_record_id"`
	HoursRecordOwnerType       string     `json:"hours_records_owner_type"`
	HoursRecordOwnerId         uuid.UUID  `json:"hours_records_owner_id"`
	HoursRecordPeriodId        *uuid.UUID `json:"hours_records_period_id,omitempty"`
	HoursRecordDate            string     `json:"hours_records_date"`
	HoursRecordMinutes         int        `json:"hours_records_minutes"`
	HoursRecordStatus          string     `json:"hours_records_status"`
}

func FromHoursRecordModel(m checkinModel.HoursRecordModel) HoursRecordResponse {
	return HoursRecordResponse{
		HoursRecordId:              m.HoursRecordId,
		HoursRecordAttendanceId:    m.HoursRecordAttendanceId,
		HoursRecordStudentRecordId: m.HoursRecordStudentRecordId,
		HoursRecordOwnerType:       m.HoursRecordOwnerType,
		HoursRecordOwnerId:         m.HoursRecordOwnerId,
		HoursRecordPeriodId:        m.HoursRecordPeriodId,
		HoursRecordDate:            m.HoursRecordDate.Format("2006-01-02"),
		HoursRecordMinutes:         m.HoursRecordMinutes,
		HoursRecordStatus:          m.HoursRecordStatus,
	}
}

func FromHoursRecordModels(ms []checkinModel.HoursRecordModel) []HoursRecordResponse {
	out := make([]HoursRecordResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromHoursRecordModel(m))
	}
	return out
}
