// file: internals/features/academics/sessions/scheduler/reconcile.go
package scheduler

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kampusku_backend/internals/configs"
	activityModel "kampusku_backend/internals/features/academics/activities/model"
	sessionModel "kampusku_backend/internals/features/academics/sessions/model"
	"kampusku_backend/internals/features/academics/sessions/service"
	helper "kampusku_backend/internals/helpers"
)

const (
	reconcileLockName = "sessions_reconcile"
	maxRecordRetries  = 3
)

// Predicate SQL untuk jendela waktu, dengan rollover overnight:
// end <= start berarti end jatuh di hari berikutnya.
const (
	sqlStartTS = "(activity_sessions_date + activity_sessions_start_time)"
	sqlEndTS   = "(activity_sessions_date + activity_sessions_end_time" +
		" + CASE WHEN activity_sessions_end_time <= activity_sessions_start_time" +
		" THEN INTERVAL '1 day' ELSE INTERVAL '0 day' END)"
)

// ReconcileJob: re-evaluasi periodik semua session + owner-nya, tanpa trigger
// manual. Single-writer lintas node lewat lease di job_locks; run yang masih
// jalan tidak boleh ditimpa run baru, dan lease basi (TTL lewat) boleh
// diambil alih supaya run macet tidak mengunci selamanya.
type ReconcileJob struct {
	DB        *gorm.DB
	Recalc    *service.RecalcService
	LockTTL   time.Duration
	ChunkSize int

	owner string // identitas pemegang lease, unik per instance proses
}

func NewReconcileJob(db *gorm.DB, lockTTL time.Duration, chunkSize int) *ReconcileJob {
	if chunkSize <= 0 {
		chunkSize = 200
	}
	return &ReconcileJob{
		DB:        db,
		Recalc:    service.NewRecalcService(db),
		LockTTL:   lockTTL,
		ChunkSize: chunkSize,
		owner:     uuid.NewString(),
	}
}

// StartSessionReconcileScheduler: loop periodik ala scheduler lain di repo ini.
// Interval & TTL dari env.
func StartSessionReconcileScheduler(db *gorm.DB) {
	interval := time.Duration(configs.GetEnvInt("RECONCILE_INTERVAL_SECONDS", 60)) * time.Second
	lockTTL := time.Duration(configs.GetEnvInt("RECONCILE_LOCK_TTL_SECONDS", 300)) * time.Second
	chunk := configs.GetEnvInt("RECONCILE_CHUNK_SIZE", 200)

	job := NewReconcileJob(db, lockTTL, chunk)

	go func() {
		log.Printf("[RECONCILE] scheduler aktif (interval %s, lock TTL %s)", interval, lockTTL)
		for {
			if err := job.RunOnce(time.Now()); err != nil {
				// Catastrophic (bukan per-record): dicatat, proses host tidak mati.
				log.Printf("[RECONCILE ERROR] %v", err)
			}
			time.Sleep(interval)
		}
	}()
}

// RunOnce menjalankan satu siklus reconcile. Return error hanya untuk
// kegagalan catastrophic; kegagalan per-record diisolasi, dihitung, dan
// dilaporkan sebagai warning summary.
func (j *ReconcileJob) RunOnce(now time.Time) error {
	acquired, err := j.acquireLock(now)
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !acquired {
		reconcileSkippedLock.Inc()
		return nil
	}
	defer j.releaseLock()

	reconcileRuns.Inc()
	failures := 0

	// Sweep 1: planned dan now di dalam [start, end) → in_progress
	started, err := j.sweep(now,
		j.DB.Where("activity_sessions_status = ?", service.StatusPlanned).
			Where(sqlStartTS+" <= ?", naive(now)).
			Where(sqlEndTS+" > ?", naive(now)),
		service.StatusInProgress, &failures)
	if err != nil {
		return fmt.Errorf("sweep in_progress: %w", err)
	}
	reconcileStarted.Add(float64(started))

	// Sweep 2: planned/in_progress dan now >= end → closed
	closed, err := j.sweep(now,
		j.DB.Where("activity_sessions_status IN ?", []string{service.StatusPlanned, service.StatusInProgress}).
			Where(sqlEndTS+" <= ?", naive(now)),
		service.StatusClosed, &failures)
	if err != nil {
		return fmt.Errorf("sweep closed: %w", err)
	}
	reconcileClosed.Add(float64(closed))

	if failures > 0 {
		log.Printf("[RECONCILE WARN] selesai dengan %d kegagalan per-record (started=%d closed=%d)",
			failures, started, closed)
	} else if started > 0 || closed > 0 {
		log.Printf("[RECONCILE] started=%d closed=%d", started, closed)
	}
	return nil
}

// sweep memproses semua session yang cocok dengan predicate, chunk demi chunk
// diurutkan id. Tiap record dapat transaksi pendek sendiri (≤3 percobaan untuk
// error transient); satu record gagal tidak menggagalkan yang lain.
func (j *ReconcileJob) sweep(now time.Time, cond *gorm.DB, target string, failures *int) (int, error) {
	applied := 0
	lastID := uuid.Nil

	for {
		var chunk []sessionModel.ActivitySessionModel
		q := j.DB.Model(&sessionModel.ActivitySessionModel{}).
			Where(cond).
			Order("activity_sessions_id").
			Limit(j.ChunkSize)
		if lastID != uuid.Nil {
			q = q.Where("activity_sessions_id > ?", lastID)
		}
		if err := q.Find(&chunk).Error; err != nil {
			return applied, err
		}
		if len(chunk) == 0 {
			return applied, nil
		}

		for i := range chunk {
			sess := &chunk[i]
			lastID = sess.ActivitySessionId

			if err := j.applyTransition(sess, target, now); err != nil {
				*failures++
				reconcileRecordFailures.Inc()
				log.Printf("[RECONCILE WARN] session %s (%s/%s) gagal: %v",
					sess.ActivitySessionId, sess.ActivitySessionOwnerType, sess.ActivitySessionOwnerId, err)
				continue
			}
			applied++
		}

		if len(chunk) < j.ChunkSize {
			return applied, nil
		}
	}
}

// applyTransition: transaksi pendek per record — set status (dengan guard
// status lama supaya tidak menimpa perubahan paralel) lalu rekalkulasi owner.
// Retry kecil hanya untuk error transient (lock contention / deadlock).
func (j *ReconcileJob) applyTransition(sess *sessionModel.ActivitySessionModel, target string, now time.Time) error {
	var lastErr error
	for attempt := 1; attempt <= maxRecordRetries; attempt++ {
		lastErr = j.DB.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&sessionModel.ActivitySessionModel{}).
				Where("activity_sessions_id = ? AND activity_sessions_status = ?",
					sess.ActivitySessionId, sess.ActivitySessionStatus).
				Update("activity_sessions_status", target)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// Sudah ditransisikan pihak lain; tidak apa-apa.
				return nil
			}
			ref := activityModel.OwnerRef{
				Type: sess.ActivitySessionOwnerType,
				ID:   sess.ActivitySessionOwnerId,
			}
			return j.Recalc.RecalcOwner(tx, ref, now)
		})
		if lastErr == nil {
			return nil
		}
		if !helper.IsTransientPG(lastErr) {
			return lastErr
		}
		time.Sleep(time.Duration(attempt) * 50 * time.Millisecond)
	}
	return lastErr
}

/* ===============================
   Lease lock (job_locks)
=================================*/

// leaseGrantable: lock boleh diambil kalau belum ada, sudah kita pegang
// sendiri, atau sudah basi (expires_at <= now).
func leaseGrantable(lock *sessionModel.JobLockModel, owner string, now time.Time) bool {
	if lock == nil {
		return true
	}
	return lock.JobLockOwner == owner || !lock.JobLockExpiresAt.After(now)
}

func (j *ReconcileJob) acquireLock(now time.Time) (bool, error) {
	granted := false
	err := j.DB.Transaction(func(tx *gorm.DB) error {
		var lock sessionModel.JobLockModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("job_locks_name = ?", reconcileLockName).
			Take(&lock).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			lock = sessionModel.JobLockModel{
				JobLockName:      reconcileLockName,
				JobLockOwner:     j.owner,
				JobLockExpiresAt: now.Add(j.LockTTL),
			}
			if cerr := tx.Create(&lock).Error; cerr != nil {
				// Kalah race insert dengan node lain: lock tetap tidak kita pegang.
				if helper.IsUniqueViolation(cerr) {
					return nil
				}
				return cerr
			}
			granted = true
			return nil
		}
		if err != nil {
			return err
		}
		if !leaseGrantable(&lock, j.owner, now) {
			return nil
		}
		if uerr := tx.Model(&sessionModel.JobLockModel{}).
			Where("job_locks_name = ?", reconcileLockName).
			Updates(map[string]interface{}{
				"job_locks_owner":      j.owner,
				"job_locks_expires_at": now.Add(j.LockTTL),
			}).Error; uerr != nil {
			return uerr
		}
		granted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return granted, nil
}

func (j *ReconcileJob) releaseLock() {
	if err := j.DB.
		Where("job_locks_name = ? AND job_locks_owner = ?", reconcileLockName, j.owner).
		Delete(&sessionModel.JobLockModel{}).Error; err != nil {
		log.Printf("[RECONCILE WARN] release lock gagal: %v", err)
	}
}

// naive: kirim timestamp tanpa zona supaya komparasi dengan
// (date + time) di Postgres tidak kena cast timezone.
func naive(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
