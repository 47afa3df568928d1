// file: internals/features/academics/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	studentModel "kampusku_backend/internals/features/academics/students/model"
)

type CreateStudentRecordRequest struct {
	StudentRecordUserId   uuid.UUID  `json:"student_records_user_id" validate:"required"`
	StudentRecordCode     string     `json:"student_records_code"    validate:"required,min=3,max=50"`
	StudentRecordPeriodId *uuid.UUID `json:"student_records_period_id,omitempty"`
}

type UpdateStudentRecordRequest struct {
	StudentRecordCode     *string    `json:"student_records_code,omitempty" validate:"omitempty,min=3,max=50"`
	StudentRecordPeriodId *uuid.UUID `json:"student_records_period_id,omitempty"`
	StudentRecordActive   *bool      `json:"student_records_active,omitempty"`
}

type StudentRecordResponse struct {
	StudentRecordId        uuid.UUID  `json:"student_records_id"`
	StudentRecordUserId    uuid.UUID  `json:"student_records_user_id"`
	StudentRecordCode      string     `json:"student_records_code"`
	StudentRecordPeriodId  *uuid.UUID `json:"student_records_period_id,omitempty"`
	StudentRecordActive    bool       `json:"student_records_active"`
	StudentRecordCreatedAt time.Time  `json:"student_records_created_at"`
}

func FromStudentRecordModel(m studentModel.StudentRecordModel) StudentRecordResponse {
	return StudentRecordResponse{
		StudentRecordId:        m.StudentRecordId,
		StudentRecordUserId:    m.StudentRecordUserId,
		StudentRecordCode:      m.StudentRecordCode,
		StudentRecordPeriodId:  m.StudentRecordPeriodId,
		StudentRecordActive:    m.StudentRecordActive,
		StudentRecordCreatedAt: m.StudentRecordCreatedAt,
	}
}

func FromStudentRecordModels(ms []studentModel.StudentRecordModel) []StudentRecordResponse {
	out := make([]StudentRecordResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromStudentRecordModel(m))
	}
	return out
}
