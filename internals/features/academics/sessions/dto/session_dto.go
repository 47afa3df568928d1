// file: internals/features/academics/sessions/dto/session_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	sessionModel "kampusku_backend/internals/features/academics/sessions/model"
)

type CreateActivitySessionRequest struct {
	ActivitySessionOwnerType string    `json:"activity_sessions_owner_type" validate:"required,oneof=process event"`
	ActivitySessionOwnerId   uuid.UUID `json:"activity_sessions_owner_id"   validate:"required"`
	ActivitySessionDate      string    `json:"activity_sessions_date"       validate:"required"`
	ActivitySessionStartTime string    `json:"activity_sessions_start_time" validate:"required"`
	ActivitySessionEndTime   string    `json:"activity_sessions_end_time"   validate:"required"`
}

type UpdateActivitySessionRequest struct {
	ActivitySessionDate      *string `json:"activity_sessions_date,omitempty"`
	ActivitySessionStartTime *string `json:"activity_sessions_start_time,omitempty"`
	ActivitySessionEndTime   *string `json:"activity_sessions_end_time,omitempty"`
	ActivitySessionStatus    *string `json:"activity_sessions_status,omitempty" validate:"omitempty,oneof=planned in_progress closed cancelled"`
}

type ScheduleSessionsRequest struct {
	ActivitySessionOwnerType string    `json:"activity_sessions_owner_type" validate:"required,oneof=process event"`
	ActivitySessionOwnerId   uuid.UUID `json:"activity_sessions_owner_id"   validate:"required"`
	StartTime                string    `json:"start_time"                   validate:"required"`
	EndTime                  string    `json:"end_time"                     validate:"required"`
	Dates                    []string  `json:"dates,omitempty"`
	RangeStart               string    `json:"range_start,omitempty"`
	RangeEnd                 string    `json:"range_end,omitempty"`
	Weekdays                 []string  `json:"weekdays,omitempty"`
}

type RecalcOwnerRequest struct {
	OwnerType string    `json:"owner_type" validate:"required,oneof=process event"`
	OwnerId   uuid.UUID `json:"owner_id"   validate:"required"`
}

type ActivitySessionResponse struct {
	ActivitySessionId        uuid.UUID `json:"activity_sessions_id"`
	ActivitySessionOwnerType string    `json:"activity_sessions_owner_type"`
	ActivitySessionOwnerId   uuid.UUID `json:"activity_sessions_owner_id"`
	ActivitySessionDate      string    `json:"activity_sessions_date"`
	ActivitySessionStartTime string    `json:"activity_sessions_start_time"`
	ActivitySessionEndTime   string    `json:"activity_sessions_end_time"`
	ActivitySessionStatus    string    `json:"activity_sessions_status"`
	ActivitySessionCreatedAt time.Time `json:"activity_sessions_created_at"`
}

func FromActivitySessionModel(m sessionModel.ActivitySessionModel) ActivitySessionResponse {
	return ActivitySessionResponse{
		ActivitySessionId:        m.ActivitySessionId,
		ActivitySessionOwnerType: m.ActivitySessionOwnerType,
		ActivitySessionOwnerId:   m.ActivitySessionOwnerId,
		ActivitySessionDate:      m.ActivitySessionDate.Format("2006-01-02"),
		ActivitySessionStartTime: m.ActivitySessionStartTime.Format("15:04:05"),
		ActivitySessionEndTime:   m.ActivitySessionEndTime.Format("15:04:05"),
		ActivitySessionStatus:    m.ActivitySessionStatus,
		ActivitySessionCreatedAt: m.ActivitySessionCreatedAt,
	}
}

func FromActivitySessionModels(ms []sessionModel.ActivitySessionModel) []ActivitySessionResponse {
	out := make([]ActivitySessionResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromActivitySessionModel(m))
	}
	return out
}
