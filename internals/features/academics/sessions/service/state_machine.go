// file: internals/features/academics/sessions/service/state_machine.go
package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "kampusku_backend/internals/features/academics/activities/model"
	activityService "kampusku_backend/internals/features/academics/activities/service"
	sessionModel "kampusku_backend/internals/features/academics/sessions/model"
	helper "kampusku_backend/internals/helpers"
)

// Alias status supaya package ini tidak perlu import model activities di
// tiap file.
const (
	StatusPlanned    = activityModel.StatusPlanned
	StatusInProgress = activityModel.StatusInProgress
	StatusClosed     = activityModel.StatusClosed
	StatusCancelled  = activityModel.StatusCancelled
)

// DeriveOwnerStatus: aturan dasar + koreksi + override running.
//
// Dasar: tanpa session → planned; now < min_start → planned;
// now >= max_end → closed; sisanya in_progress.
//
// Koreksi: min/max naif salah mengklasifikasi set yang interleaved
// (ada yang sudah lewat DAN ada yang belum mulai). Kalau hasil dasar planned
// padahal total > 0: past+future → in_progress; hanya past → closed.
//
// Override: satu saja session yang individual in_progress memaksa owner jadi
// in_progress, apa pun sinyal lainnya.
func DeriveOwnerStatus(stats WindowStats, now time.Time) string {
	if stats.HasRunning {
		return StatusInProgress
	}

	status := StatusPlanned
	switch {
	case stats.Total == 0 || stats.MinStart.IsZero() || stats.MaxEnd.IsZero():
		status = StatusPlanned
	case now.Before(stats.MinStart):
		status = StatusPlanned
	case !now.Before(stats.MaxEnd):
		status = StatusClosed
	default:
		status = StatusInProgress
	}

	if status == StatusPlanned && stats.Total > 0 {
		if stats.HasPast && stats.HasFuture {
			status = StatusInProgress
		} else if stats.HasPast {
			status = StatusClosed
		}
	}
	return status
}

// DeriveSessionStatus: normalisasi status satu session terhadap jendelanya
// sendiri. Mengembalikan status target ("" kalau tidak perlu berubah).
// cancelled & closed tidak pernah dinormalisasi.
func DeriveSessionStatus(s *sessionModel.ActivitySessionModel, now time.Time) string {
	start, end := SessionBounds(s, now.Location())
	switch s.ActivitySessionStatus {
	case StatusPlanned:
		if !now.Before(end) {
			return StatusClosed
		}
		if !now.Before(start) {
			return StatusInProgress
		}
	case StatusInProgress:
		if !now.Before(end) {
			return StatusClosed
		}
	}
	return ""
}

// RecalcService: entry point rekalkulasi status owner (Process/Event) dan
// cascade ke Project. Dipanggil eksplisit dari mutasi session (create/update/
// delete) dan dari reconcile job — tidak ada hook ORM tersembunyi.
type RecalcService struct {
	DB *gorm.DB
}

func NewRecalcService(db *gorm.DB) *RecalcService {
	return &RecalcService{DB: db}
}

func (s *RecalcService) db(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return s.DB
}

// RecalcOwner menerima owner type apa pun. Owner cancelled tidak pernah
// dihitung ulang (early exit). Rekalkulasi process juga men-trigger
// rekalkulasi project induknya dengan session teragregasi lintas SEMUA
// process milik project tsb.
func (s *RecalcService) RecalcOwner(tx *gorm.DB, ref activityModel.OwnerRef, now time.Time) error {
	db := s.db(tx)

	resolver := activityService.NewOwnerResolver(db)
	owner, err := resolver.Resolve(db, ref)
	if err != nil {
		return err
	}

	if owner.Status != StatusCancelled {
		sessions, err := s.loadOwnerSessions(db, []activityModel.OwnerRef{ref})
		if err != nil {
			return err
		}

		// Self-healing best-effort: normalisasi status per session dulu.
		// Gagal di sini TIDAK membatalkan rekalkulasi owner.
		if n, err := s.NormalizeSessionStatuses(db, sessions, now); err != nil {
			log.Printf("[RECALC WARN] normalisasi session %s gagal: %v", ref, err)
		} else if n > 0 {
			log.Printf("[RECALC] %d session %s dinormalisasi", n, ref)
		}

		target := DeriveOwnerStatus(EvaluateWindows(sessions, now), now)
		if target != owner.Status {
			if err := resolver.UpdateOwnerStatus(db, ref, target); err != nil {
				return helper.ClassifyDBError(err, "Gagal menulis status owner")
			}
		}
	}

	// Cascade: process → project.
	if ref.Type == activityModel.OwnerTypeProcess && owner.ProjectId != nil {
		return s.recalcProject(db, resolver, *owner.ProjectId, now)
	}
	return nil
}

// RecalcProject: agregasi session lintas semua process milik project.
func (s *RecalcService) RecalcProject(tx *gorm.DB, projectID uuid.UUID, now time.Time) error {
	db := s.db(tx)
	return s.recalcProject(db, activityService.NewOwnerResolver(db), projectID, now)
}

func (s *RecalcService) recalcProject(db *gorm.DB, resolver *activityService.OwnerResolver, projectID uuid.UUID, now time.Time) error {
	current, err := resolver.ProjectStatus(db, projectID)
	if err != nil {
		return err
	}
	if current == StatusCancelled {
		return nil
	}

	processIDs, err := resolver.ProcessIDsOfProject(db, projectID)
	if err != nil {
		return err
	}

	refs := make([]activityModel.OwnerRef, 0, len(processIDs))
	for _, id := range processIDs {
		refs = append(refs, activityModel.OwnerRef{Type: activityModel.OwnerTypeProcess, ID: id})
	}
	sessions, err := s.loadOwnerSessions(db, refs)
	if err != nil {
		return err
	}

	target := DeriveOwnerStatus(EvaluateWindows(sessions, now), now)
	if target != current {
		if err := resolver.UpdateProjectStatus(db, projectID, target); err != nil {
			return helper.ClassifyDBError(err, "Gagal menulis status project")
		}
	}
	return nil
}

// NormalizeSessionStatuses: planned→in_progress kalau now di dalam jendela
// session, planned/in_progress→closed kalau now sudah di/atau lewat end.
// Mengubah slice in place supaya agregasi berikutnya pakai status terbaru.
func (s *RecalcService) NormalizeSessionStatuses(db *gorm.DB, sessions []sessionModel.ActivitySessionModel, now time.Time) (int, error) {
	changed := 0
	var firstErr error
	for i := range sessions {
		target := DeriveSessionStatus(&sessions[i], now)
		if target == "" {
			continue
		}
		err := db.Model(&sessionModel.ActivitySessionModel{}).
			Where("activity_sessions_id = ? AND activity_sessions_status = ?",
				sessions[i].ActivitySessionId, sessions[i].ActivitySessionStatus).
			Update("activity_sessions_status", target).Error
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		sessions[i].ActivitySessionStatus = target
		changed++
	}
	return changed, firstErr
}

func (s *RecalcService) loadOwnerSessions(db *gorm.DB, refs []activityModel.OwnerRef) ([]sessionModel.ActivitySessionModel, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(refs))
	for _, r := range refs {
		ids = append(ids, r.ID)
	}
	var sessions []sessionModel.ActivitySessionModel
	if err := db.
		Where("activity_sessions_owner_type = ? AND activity_sessions_owner_id IN ?", refs[0].Type, ids).
		Order("activity_sessions_date, activity_sessions_start_time").
		Find(&sessions).Error; err != nil {
		return nil, helper.ClassifyDBError(err, "Gagal membaca session owner")
	}
	return sessions, nil
}
