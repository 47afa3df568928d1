// file: internals/features/academics/activities/dto/activity_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	activityModel "kampusku_backend/internals/features/academics/activities/model"
)

/* ===================== PROJECT ===================== */

type CreateProjectRequest struct {
	AcademicProjectName        string     `json:"academic_projects_name" validate:"required,min=3,max=150"`
	AcademicProjectSlug        string     `json:"academic_projects_slug" validate:"required,min=3,max=100"`
	AcademicProjectDescription *string    `json:"academic_projects_description,omitempty"`
	AcademicProjectTags        []string   `json:"academic_projects_tags,omitempty"`
	AcademicProjectPeriodId    *uuid.UUID `json:"academic_projects_period_id,omitempty"`
}

type UpdateProjectRequest struct {
	AcademicProjectName        *string    `json:"academic_projects_name,omitempty" validate:"omitempty,min=3,max=150"`
	AcademicProjectDescription *string    `json:"academic_projects_description,omitempty"`
	AcademicProjectTags        []string   `json:"academic_projects_tags,omitempty"`
	AcademicProjectPeriodId    *uuid.UUID `json:"academic_projects_period_id,omitempty"`
}

type ProjectResponse struct {
	AcademicProjectId          uuid.UUID      `json:"academic_projects_id"`
	AcademicProjectName        string         `json:"academic_projects_name"`
	AcademicProjectSlug        string         `json:"academic_projects_slug"`
	AcademicProjectDescription *string        `json:"academic_projects_description,omitempty"`
	AcademicProjectTags        pq.StringArray `json:"academic_projects_tags,omitempty"`
	AcademicProjectStatus      string         `json:"academic_projects_status"`
	AcademicProjectPeriodId    *uuid.UUID     `json:"academic_projects_period_id,omitempty"`
	AcademicProjectCreatedAt   time.Time      `json:"academic_projects_created_at"`
}

func FromProjectModel(m activityModel.AcademicProjectModel) ProjectResponse {
	return ProjectResponse{
		AcademicProjectId:          m.AcademicProjectId,
		AcademicProjectName:        m.AcademicProjectName,
		AcademicProjectSlug:        m.AcademicProjectSlug,
		AcademicProjectDescription: m.AcademicProjectDescription,
		AcademicProjectTags:        m.AcademicProjectTags,
		AcademicProjectStatus:      m.AcademicProjectStatus,
		AcademicProjectPeriodId:    m.AcademicProjectPeriodId,
		AcademicProjectCreatedAt:   m.AcademicProjectCreatedAt,
	}
}

func FromProjectModels(ms []activityModel.AcademicProjectModel) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromProjectModel(m))
	}
	return out
}

/* ===================== PROCESS ===================== */

type CreateProcessRequest struct {
	AcademicProcessProjectId uuid.UUID `json:"academic_processes_project_id" validate:"required"`
	AcademicProcessName      string    `json:"academic_processes_name"       validate:"required,min=3,max=150"`
	AcademicProcessPosition  int       `json:"academic_processes_position"   validate:"gte=0"`
}

type UpdateProcessRequest struct {
	AcademicProcessName     *string `json:"academic_processes_name,omitempty" validate:"omitempty,min=3,max=150"`
	AcademicProcessPosition *int    `json:"academic_processes_position,omitempty" validate:"omitempty,gte=0"`
}

type ProcessResponse struct {
	AcademicProcessId        uuid.UUID `json:"academic_processes_id"`
	AcademicProcessProjectId uuid.UUID `json:"academic_processes_project_id"`
	AcademicProcessName      string    `json:"academic_processes_name"`
	AcademicProcessPosition  int       `json:"academic_processes_position"`
	AcademicProcessStatus    string    `json:"academic_processes_status"`
	AcademicProcessCreatedAt time.Time `json:"academic_processes_created_at"`
}

func FromProcessModel(m activityModel.AcademicProcessModel) ProcessResponse {
	return ProcessResponse{
		AcademicProcessId:        m.AcademicProcessId,
		AcademicProcessProjectId: m.AcademicProcessProjectId,
		AcademicProcessName:      m.AcademicProcessName,
		AcademicProcessPosition:  m.AcademicProcessPosition,
		AcademicProcessStatus:    m.AcademicProcessStatus,
		AcademicProcessCreatedAt: m.AcademicProcessCreatedAt,
	}
}

func FromProcessModels(ms []activityModel.AcademicProcessModel) []ProcessResponse {
	out := make([]ProcessResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromProcessModel(m))
	}
	return out
}

/* ===================== EVENT ===================== */

type CreateEventRequest struct {
	AcademicEventName        string     `json:"academic_events_name" validate:"required,min=3,max=150"`
	AcademicEventLocation    *string    `json:"academic_events_location,omitempty"`
	AcademicEventDescription *string    `json:"academic_events_description,omitempty"`
	AcademicEventPeriodId    *uuid.UUID `json:"academic_events_period_id,omitempty"`
}

type UpdateEventRequest struct {
	AcademicEventName        *string    `json:"academic_events_name,omitempty" validate:"omitempty,min=3,max=150"`
	AcademicEventLocation    *string    `json:"academic_events_location,omitempty"`
	AcademicEventDescription *string    `json:"academic_events_description,omitempty"`
	AcademicEventPeriodId    *uuid.UUID `json:"academic_events_period_id,omitempty"`
}

type EventResponse struct {
	AcademicEventId          uuid.UUID  `json:"academic_events_id"`
	AcademicEventName        string     `json:"academic_events_name"`
	AcademicEventLocation    *string    `json:"academic_events_location,omitempty"`
	AcademicEventDescription *string    `json:"academic_events_description,omitempty"`
	AcademicEventStatus      string     `json:"academic_events_status"`
	AcademicEventPeriodId    *uuid.UUID `json:"academic_events_period_id,omitempty"`
	AcademicEventCreatedAt   time.Time  `json:"academic_events_created_at"`
}

func FromEventModel(m activityModel.AcademicEventModel) EventResponse {
	return EventResponse{
		AcademicEventId:          m.AcademicEventId,
		AcademicEventName:        m.AcademicEventName,
		AcademicEventLocation:    m.AcademicEventLocation,
		AcademicEventDescription: m.AcademicEventDescription,
		AcademicEventStatus:      m.AcademicEventStatus,
		AcademicEventPeriodId:    m.AcademicEventPeriodId,
		AcademicEventCreatedAt:   m.AcademicEventCreatedAt,
	}
}

func FromEventModels(ms []activityModel.AcademicEventModel) []EventResponse {
	out := make([]EventResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromEventModel(m))
	}
	return out
}

/* ===================== PERIOD ===================== */

type CreatePeriodRequest struct {
	AcademicPeriodName      string `json:"academic_periods_name"       validate:"required,min=3,max=100"`
	AcademicPeriodStartDate string `json:"academic_periods_start_date" validate:"required"`
	AcademicPeriodEndDate   string `json:"academic_periods_end_date"   validate:"required"`
}

type PeriodResponse struct {
	AcademicPeriodId        uuid.UUID `json:"academic_periods_id"`
	AcademicPeriodName      string    `json:"academic_periods_name"`
	AcademicPeriodStartDate string    `json:"academic_periods_start_date"`
	AcademicPeriodEndDate   string    `json:"academic_periods_end_date"`
}

func FromPeriodModel(m activityModel.AcademicPeriodModel) PeriodResponse {
	return PeriodResponse{
		AcademicPeriodId:        m.AcademicPeriodId,
		AcademicPeriodName:      m.AcademicPeriodName,
		AcademicPeriodStartDate: m.AcademicPeriodStartDate.Format("2006-01-02"),
		AcademicPeriodEndDate:   m.AcademicPeriodEndDate.Format("2006-01-02"),
	}
}

func FromPeriodModels(ms []activityModel.AcademicPeriodModel) []PeriodResponse {
	out := make([]PeriodResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromPeriodModel(m))
	}
	return out
}

/* ===================== SCOPE ADMIN ===================== */

type GrantScopeAdminRequest struct {
	ScopeAdminOwnerType string    `json:"scope_admins_owner_type" validate:"required,oneof=process event"`
	ScopeAdminOwnerId   uuid.UUID `json:"scope_admins_owner_id"   validate:"required"`
	ScopeAdminUserId    uuid.UUID `json:"scope_admins_user_id"    validate:"required"`
}

type ScopeAdminResponse struct {
	ScopeAdminId        uuid.UUID `json:"scope_admins_id"`
	ScopeAdminOwnerType string    `json:"scope_admins_owner_type"`
	ScopeAdminOwnerId   uuid.UUID `json:"scope_admins_owner_id"`
	ScopeAdminUserId    uuid.UUID `json:"scope_admins_user_id"`
	ScopeAdminCreatedAt time.Time `json:"scope_admins_created_at"`
}

func FromScopeAdminModel(m activityModel.ScopeAdminModel) ScopeAdminResponse {
	return ScopeAdminResponse{
		ScopeAdminId:        m.ScopeAdminId,
		ScopeAdminOwnerType: m.ScopeAdminOwnerType,
		ScopeAdminOwnerId:   m.ScopeAdminOwnerId,
		ScopeAdminUserId:    m.ScopeAdminUserId,
		ScopeAdminCreatedAt: m.ScopeAdminCreatedAt,
	}
}

func FromScopeAdminModels(ms []activityModel.ScopeAdminModel) []ScopeAdminResponse {
	out := make([]ScopeAdminResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromScopeAdminModel(m))
	}
	return out
}
