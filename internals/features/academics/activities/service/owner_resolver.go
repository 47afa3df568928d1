// file: internals/features/academics/activities/service/owner_resolver.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/activities/model"
	helper "kampusku_backend/internals/helpers"
)

// ResolvedOwner: hasil lookup OwnerRef — status sekarang plus parent project
// kalau ownernya process.
type ResolvedOwner struct {
	Ref       model.OwnerRef
	Status    string
	ProjectId *uuid.UUID
}

type OwnerResolver struct {
	DB *gorm.DB
}

func NewOwnerResolver(db *gorm.DB) *OwnerResolver {
	return &OwnerResolver{DB: db}
}

func (r *OwnerResolver) db(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.DB
}

// Resolve menelusuri OwnerRef ke record konkret lewat switch eksplisit.
// Ref yang tidak bisa ditelusuri = ownership error.
func (r *OwnerResolver) Resolve(tx *gorm.DB, ref model.OwnerRef) (*ResolvedOwner, error) {
	if err := ref.Validate(); err != nil {
		return nil, helper.WrapAppError(helper.ErrKindOwnership, "Owner reference tidak valid", err)
	}

	switch ref.Type {
	case model.OwnerTypeProcess:
		var p model.AcademicProcessModel
		if err := r.db(tx).
			Where("academic_processes_id = ?", ref.ID).
			Take(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, helper.WrapAppError(helper.ErrKindOwnership, "Process pemilik tidak ditemukan", err)
			}
			return nil, helper.ClassifyDBError(err, "Gagal membaca process pemilik")
		}
		projectID := p.AcademicProcessProjectId
		return &ResolvedOwner{Ref: ref, Status: p.AcademicProcessStatus, ProjectId: &projectID}, nil

	case model.OwnerTypeEvent:
		var e model.AcademicEventModel
		if err := r.db(tx).
			Where("academic_events_id = ?", ref.ID).
			Take(&e).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, helper.WrapAppError(helper.ErrKindOwnership, "Event pemilik tidak ditemukan", err)
			}
			return nil, helper.ClassifyDBError(err, "Gagal membaca event pemilik")
		}
		return &ResolvedOwner{Ref: ref, Status: e.AcademicEventStatus}, nil
	}

	return nil, helper.NewAppError(helper.ErrKindOwnership, "Owner type tidak dikenal")
}

// UpdateOwnerStatus menulis status baru ke record owner yang sesuai ref.
func (r *OwnerResolver) UpdateOwnerStatus(tx *gorm.DB, ref model.OwnerRef, status string) error {
	switch ref.Type {
	case model.OwnerTypeProcess:
		return r.db(tx).Model(&model.AcademicProcessModel{}).
			Where("academic_processes_id = ?", ref.ID).
			Update("academic_processes_status", status).Error
	case model.OwnerTypeEvent:
		return r.db(tx).Model(&model.AcademicEventModel{}).
			Where("academic_events_id = ?", ref.ID).
			Update("academic_events_status", status).Error
	}
	return helper.NewAppError(helper.ErrKindOwnership, "Owner type tidak dikenal")
}

// ProjectStatus membaca status project (untuk guard sticky cancelled).
func (r *OwnerResolver) ProjectStatus(tx *gorm.DB, projectID uuid.UUID) (string, error) {
	var p model.AcademicProjectModel
	if err := r.db(tx).
		Select("academic_projects_status").
		Where("academic_projects_id = ?", projectID).
		Take(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", helper.WrapAppError(helper.ErrKindOwnership, "Project induk tidak ditemukan", err)
		}
		return "", helper.ClassifyDBError(err, "Gagal membaca project induk")
	}
	return p.AcademicProjectStatus, nil
}

func (r *OwnerResolver) UpdateProjectStatus(tx *gorm.DB, projectID uuid.UUID, status string) error {
	return r.db(tx).Model(&model.AcademicProjectModel{}).
		Where("academic_projects_id = ?", projectID).
		Update("academic_projects_status", status).Error
}

// ProcessIDsOfProject: semua process id milik sebuah project (untuk agregasi
// session lintas process saat cascade ke project).
func (r *OwnerResolver) ProcessIDsOfProject(tx *gorm.DB, projectID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db(tx).Model(&model.AcademicProcessModel{}).
		Where("academic_processes_project_id = ?", projectID).
		Pluck("academic_processes_id", &ids).Error; err != nil {
		return nil, helper.ClassifyDBError(err, "Gagal membaca daftar process project")
	}
	return ids, nil
}
