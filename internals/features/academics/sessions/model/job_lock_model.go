package model

import "time"

// JobLock: lease sederhana untuk eksekusi single-writer lintas node.
// Pemegang lock = baris dengan owner kita & expires_at di masa depan;
// lock basi (expires_at lewat) boleh diambil alih.
type JobLockModel struct {
	JobLockName      string    `gorm:"primaryKey;column:job_locks_name"     json:"job_locks_name"`
	JobLockOwner     string    `gorm:"not null;column:job_locks_owner"      json:"job_locks_owner"`
	JobLockExpiresAt time.Time `gorm:"not null;column:job_locks_expires_at" json:"job_locks_expires_at"`
}

func (JobLockModel) TableName() string { return "job_locks" }
